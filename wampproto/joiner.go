package wampproto

import "fmt"

type joinerState int

const (
	joinerStateNone joinerState = iota
	joinerStateHelloSent
	joinerStateAuthenticateSent
	joinerStateJoined
)

// joinerWelcomeStates and joinerChallengeStates gate which joiner states may
// legally receive a WELCOME or CHALLENGE, mirroring the state-table idiom
// used elsewhere in this codebase for transition validity.
var joinerWelcomeStates = map[joinerState]bool{
	joinerStateHelloSent:        true,
	joinerStateAuthenticateSent: true,
}

var joinerChallengeStates = map[joinerState]bool{
	joinerStateHelloSent: true,
}

// clientRoles returns the empty-features role announcement every HELLO
// sends: this library speaks caller, callee, publisher and subscriber but
// advertises no WAMP Advanced Profile features under any of them.
func clientRoles() map[string]Value {
	role := func() Value { return DictValue(map[string]Value{"features": DictValue(nil)}) }
	return map[string]Value{
		"caller":     role(),
		"callee":     role(),
		"publisher":  role(),
		"subscriber": role(),
	}
}

// Joiner drives the HELLO -> (CHALLENGE/AUTHENTICATE)* -> WELCOME handshake
// for one session attempt. It is sans-I/O: SendHello and Receive produce
// and consume bytes, but never touch a transport themselves.
type Joiner struct {
	state   joinerState
	realm   string
	details *SessionDetails

	serializer    Serializer
	authenticator ClientAuthenticator
}

func NewJoiner(realm string, serializer Serializer, authenticator ClientAuthenticator) *Joiner {
	return &Joiner{realm: realm, serializer: serializer, authenticator: authenticator}
}

// SendHello builds and serializes the HELLO that opens the join attempt.
func (j *Joiner) SendHello() ([]byte, error) {
	hello := NewHello(j.realm, j.authenticator.AuthID(), j.authenticator.AuthExtra(), clientRoles(),
		[]string{j.authenticator.AuthMethod()})

	data, err := j.serializer.Serialize(hello)
	if err != nil {
		return nil, err
	}

	j.state = joinerStateHelloSent
	return data, nil
}

// Receive deserializes one incoming frame and, if the handshake calls for a
// reply (an AUTHENTICATE in answer to a CHALLENGE), serializes it. A nil
// slice with a nil error means the handshake advanced with nothing to send
// back (WELCOME).
func (j *Joiner) Receive(data []byte) ([]byte, error) {
	msgIn, err := j.serializer.Deserialize(data)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize message: %w", err)
	}

	msgOut, err := j.ReceiveMessage(msgIn)
	if err != nil {
		return nil, err
	}
	if msgOut == nil {
		return nil, nil
	}

	return j.serializer.Serialize(msgOut)
}

// ReceiveMessage is the deserialized-domain half of Receive, exposed so
// callers that already have a Message (e.g. from a shared Session) can
// drive the Joiner without a second round of codec work.
func (j *Joiner) ReceiveMessage(msg Message) (Message, error) {
	switch msg.Type() {
	case MessageTypeWelcome:
		if !joinerWelcomeStates[j.state] {
			return nil, fmt.Errorf("%w: received WELCOME", ErrUnexpectedJoinerState)
		}

		welcome := msg.(*Welcome)
		realm := welcome.Realm
		if realm == "" {
			realm = j.realm
		}

		j.details = NewSessionDetails(welcome.SessionID, realm, welcome.AuthID, welcome.AuthRole, false)
		j.state = joinerStateJoined
		return nil, nil

	case MessageTypeChallenge:
		if !joinerChallengeStates[j.state] {
			return nil, fmt.Errorf("%w: received CHALLENGE", ErrUnexpectedJoinerState)
		}

		challenge := msg.(*Challenge)
		authenticate, err := j.authenticator.Authenticate(challenge)
		if err != nil {
			return nil, fmt.Errorf("failed to authenticate: %w", err)
		}

		j.state = joinerStateAuthenticateSent
		return authenticate, nil

	case MessageTypeAbort:
		abort := msg.(*Abort)
		return nil, fmt.Errorf("%w: %s", ErrJoinAborted, abort.Reason)

	default:
		return nil, fmt.Errorf("received unexpected message type %d", msg.Type())
	}
}

// SessionDetails returns the details captured from WELCOME. It errors if
// the join has not completed yet.
func (j *Joiner) SessionDetails() (*SessionDetails, error) {
	if j.details == nil {
		return nil, fmt.Errorf("session is not setup yet")
	}
	return j.details, nil
}
