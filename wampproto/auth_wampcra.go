package wampproto

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// WAMPCRAAuthenticator answers a CHALLENGE by HMAC-SHA256-signing the
// challenge string found at challenge.Extra["challenge"], base64-encoding
// the digest as the signature.
//
// When the challenge extra also carries "salt" (and optionally
// "iterations"/"keylen"), the secret is first stretched through
// PBKDF2-HMAC-SHA256 and the stretched, base64-encoded key is used as the
// HMAC key instead of the raw secret. This salted variant is not present in
// the retrieved original_source/ excerpt; it follows spec.md's description
// of the WAMP-CRA salted path (see DESIGN.md).
type WAMPCRAAuthenticator struct {
	authid string
	secret string
	extra  map[string]Value
}

func NewWAMPCRAAuthenticator(authid, secret string, extra map[string]Value) *WAMPCRAAuthenticator {
	return &WAMPCRAAuthenticator{authid: authid, secret: secret, extra: extra}
}

func (w *WAMPCRAAuthenticator) AuthMethod() string          { return "wampcra" }
func (w *WAMPCRAAuthenticator) AuthID() string              { return w.authid }
func (w *WAMPCRAAuthenticator) AuthExtra() map[string]Value { return w.extra }

func (w *WAMPCRAAuthenticator) Authenticate(challenge *Challenge) (*Authenticate, error) {
	challengeStr, ok := dictGetStr(challenge.Extra, "challenge")
	if !ok {
		return nil, errors.New("challenge missing in auth extra or is none")
	}

	key, err := w.craKey(challenge.Extra)
	if err != nil {
		return nil, err
	}

	signature, err := signCRAChallenge(challengeStr, key)
	if err != nil {
		return nil, err
	}

	return &Authenticate{Signature: signature, Extra: w.extra}, nil
}

// craKey returns the raw secret, or the PBKDF2-stretched, base64-encoded
// key when the challenge carries salting parameters.
func (w *WAMPCRAAuthenticator) craKey(extra map[string]Value) ([]byte, error) {
	salt, hasSalt := dictGetStr(extra, "salt")
	if !hasSalt {
		return []byte(w.secret), nil
	}

	iterations := 1000
	if v, ok := extra["iterations"]; ok {
		if n, ok := v.Int(); ok {
			iterations = int(n)
		}
	}

	keylen := 32
	if v, ok := extra["keylen"]; ok {
		if n, ok := v.Int(); ok {
			keylen = int(n)
		}
	}

	derived := pbkdf2.Key([]byte(w.secret), []byte(salt), iterations, keylen, sha256.New)
	encoded := base64.StdEncoding.EncodeToString(derived)
	return []byte(encoded), nil
}

func signCRAChallenge(challenge string, key []byte) (string, error) {
	mac := hmac.New(sha256.New, key)
	if _, err := mac.Write([]byte(challenge)); err != nil {
		return "", fmt.Errorf("wampcra: sign challenge: %w", err)
	}
	return base64.StdEncoding.EncodeToString(mac.Sum(nil)), nil
}
