package commands

import (
	"errors"
	"fmt"

	"github.com/xconnio/wampproto-go/internal/config"
	"github.com/xconnio/wampproto-go/wampproto"
)

// errUnknownAuthMethod mirrors config.ErrInvalidAuthMethod but is raised
// here because the authenticator construction, not validation, is the
// last place that knows the full method set.
var errUnknownAuthMethod = errors.New("unknown authentication method")

// errUnknownSerializer mirrors config.ErrInvalidSerializer for the same
// reason errUnknownAuthMethod mirrors config.ErrInvalidAuthMethod.
var errUnknownSerializer = errors.New("unknown serializer")

// buildAuthenticator constructs the ClientAuthenticator named by c.Auth,
// already validated by config.Validate to carry whatever credential that
// method requires.
func buildAuthenticator(c *config.Config) (wampproto.ClientAuthenticator, error) {
	switch c.Auth.Method {
	case "anonymous":
		return wampproto.NewAnonymousAuthenticator(c.Auth.AuthID, nil), nil
	case "ticket":
		return wampproto.NewTicketAuthenticator(c.Auth.AuthID, c.Auth.Ticket, nil), nil
	case "wampcra":
		return wampproto.NewWAMPCRAAuthenticator(c.Auth.AuthID, c.Auth.Secret, nil), nil
	case "cryptosign":
		return wampproto.NewCryptoSignAuthenticator(c.Auth.AuthID, c.Auth.PrivateKey, nil)
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownAuthMethod, c.Auth.Method)
	}
}

// buildSerializer returns the Serializer and matching rawsocket
// SerializerID for c.Transport.Serializer, already validated by
// config.Validate to be one of the two below.
func buildSerializer(c *config.Config) (wampproto.Serializer, wampproto.SerializerID, error) {
	switch c.Transport.Serializer {
	case "cbor":
		return wampproto.NewCBORSerializer(), wampproto.SerializerIDCBOR, nil
	case "msgpack":
		return wampproto.NewMsgpackSerializer(), wampproto.SerializerIDMsgpack, nil
	default:
		return nil, 0, fmt.Errorf("%w: %q", errUnknownSerializer, c.Transport.Serializer)
	}
}
