package wampproto

import (
	"crypto/ed25519"
	"encoding/hex"
	"errors"
	"fmt"
)

// CryptoSignAuthenticator answers a CHALLENGE by Ed25519-signing the raw
// bytes of the hex-encoded challenge at challenge.Extra["challenge"],
// returning hex(signature) with the challenge's own hex re-appended — the
// verifier recovers the exact bytes it sent without a round trip.
type CryptoSignAuthenticator struct {
	authid     string
	privateKey ed25519.PrivateKey
	extra      map[string]Value
}

// NewCryptoSignAuthenticator derives an Ed25519 key from a 32-byte hex seed
// and injects the corresponding public key (hex-encoded) into authextra
// under "pubkey", as routers expect to find it.
func NewCryptoSignAuthenticator(authid, privateKeyHex string, extra map[string]Value) (*CryptoSignAuthenticator, error) {
	seed, err := hex.DecodeString(privateKeyHex)
	if err != nil {
		return nil, fmt.Errorf("invalid hex or wrong length: %w", err)
	}
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("invalid hex or wrong length: want %d bytes, got %d", ed25519.SeedSize, len(seed))
	}

	key := ed25519.NewKeyFromSeed(seed)
	pub := key.Public().(ed25519.PublicKey)

	merged := make(map[string]Value, len(extra)+1)
	for k, v := range extra {
		merged[k] = v
	}
	merged["pubkey"] = StringValue(hex.EncodeToString(pub))

	return &CryptoSignAuthenticator{authid: authid, privateKey: key, extra: merged}, nil
}

func (c *CryptoSignAuthenticator) AuthMethod() string          { return "cryptosign" }
func (c *CryptoSignAuthenticator) AuthID() string              { return c.authid }
func (c *CryptoSignAuthenticator) AuthExtra() map[string]Value { return c.extra }

func (c *CryptoSignAuthenticator) Authenticate(challenge *Challenge) (*Authenticate, error) {
	challengeHex, ok := dictGetStr(challenge.Extra, "challenge")
	if !ok {
		return nil, errors.New("challenge missing in authextra or is none")
	}

	challengeRaw, err := hex.DecodeString(challengeHex)
	if err != nil {
		return nil, fmt.Errorf("failed to decode challenge hex: %w", err)
	}

	signature := ed25519.Sign(c.privateKey, challengeRaw)
	signed := hex.EncodeToString(signature) + challengeHex

	return &Authenticate{Signature: signed, Extra: map[string]Value{}}, nil
}
