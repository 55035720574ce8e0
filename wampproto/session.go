package wampproto

import (
	"errors"
	"fmt"
	"sync"
)

// MetricsHook lets a caller observe Session correlation failures without
// this package depending on any particular metrics backend. A nil hook on
// a Session is never called; use noopMetricsHook as the zero value instead
// of checking for nil at every call site.
type MetricsHook interface {
	// CorrelationError is called whenever ReceiveMessage rejects a
	// message for an unknown or already-resolved request/subscription/
	// registration id.
	CorrelationError()
}

type noopMetricsHook struct{}

func (noopMetricsHook) CorrelationError() {}

// SessionOption configures optional Session behavior.
type SessionOption func(*Session)

// WithMetrics attaches a MetricsHook to the session. If h is nil, the
// default no-op hook is used.
func WithMetrics(h MetricsHook) SessionOption {
	return func(s *Session) {
		if h != nil {
			s.metrics = h
		}
	}
}

// Session tracks in-flight request/response correlation for one joined
// WAMP session: every CALL, REGISTER, PUBLISH (with acknowledge), and
// SUBSCRIBE gets an entry here when sent, and the entry is resolved (or
// rejected) when the matching reply arrives. One session-wide mutex (mu)
// guards every container, so requests of all families serialize on the
// same lock; the containers have no mutexes of their own.
type Session struct {
	serializer Serializer
	metrics    MetricsHook

	mu            sync.Mutex
	callRequests  map[int64]struct{}
	registerRequests map[int64]struct{}
	registrations map[int64]struct{}
	// unregisterRequests maps a pending UNREGISTER's request_id to the
	// registration_id it targets, so UNREGISTERED can retire the right
	// registration.
	unregisterRequests map[int64]int64
	invocationRequests map[int64]struct{}

	publishRequests map[int64]struct{}
	subscribeRequests map[int64]struct{}
	subscriptions     map[int64]struct{}
	// unsubscribeRequests maps a pending UNSUBSCRIBE's request_id to the
	// subscription_id it targets. The original crate this was ported from
	// tracked only the request_id here, which left no way to know which
	// subscription to retire on UNSUBSCRIBED; this mirrors the (correct)
	// unregisterRequests pattern instead. See DESIGN.md.
	unsubscribeRequests map[int64]int64
}

func NewSession(serializer Serializer, opts ...SessionOption) *Session {
	s := &Session{
		serializer: serializer,
		metrics:    noopMetricsHook{},

		callRequests:        make(map[int64]struct{}),
		registerRequests:    make(map[int64]struct{}),
		registrations:       make(map[int64]struct{}),
		unregisterRequests:  make(map[int64]int64),
		invocationRequests:  make(map[int64]struct{}),
		publishRequests:     make(map[int64]struct{}),
		subscribeRequests:   make(map[int64]struct{}),
		subscriptions:       make(map[int64]struct{}),
		unsubscribeRequests: make(map[int64]int64),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// SendMessage serializes an outgoing message and records whatever
// correlation bookkeeping it implies. It returns an error instead of bytes
// when a precondition the message itself asserts doesn't hold (e.g. an
// UNSUBSCRIBE for a subscription this session never made).
func (s *Session) SendMessage(msg Message) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch m := msg.(type) {
	case *Call:
		s.callRequests[m.RequestID] = struct{}{}
	case *Yield:
		delete(s.invocationRequests, m.RequestID)
	case *Register:
		s.registerRequests[m.RequestID] = struct{}{}
	case *Unregister:
		s.unregisterRequests[m.RequestID] = m.RegistrationID
	case *Publish:
		if ack, ok := m.Options["acknowledge"]; ok {
			if b, ok := ack.Bool(); ok && b {
				s.publishRequests[m.RequestID] = struct{}{}
			}
		}
	case *Subscribe:
		s.subscribeRequests[m.RequestID] = struct{}{}
	case *Unsubscribe:
		if _, ok := s.subscriptions[m.SubscriptionID]; !ok {
			return nil, fmt.Errorf("unsubscribe request for non existent subscription %d", m.SubscriptionID)
		}
		s.unsubscribeRequests[m.RequestID] = m.SubscriptionID
	case *ErrorMessage:
		if m.MessageType != MessageTypeInvocation {
			return nil, fmt.Errorf("error message can only be sent for message_type=INVOCATION")
		}
		delete(s.invocationRequests, m.RequestID)
	case *Goodbye:
		// passthrough, nothing to record
	default:
		return nil, fmt.Errorf("send not supported for message of type %s", kindName(msg))
	}

	data, err := s.serializer.Serialize(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize: %w", err)
	}
	return data, nil
}

// Receive deserializes an incoming frame and resolves the bookkeeping its
// reply type implies.
func (s *Session) Receive(data []byte) (Message, error) {
	msg, err := s.serializer.Deserialize(data)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize: %w", err)
	}

	if err := s.ReceiveMessage(msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// ReceiveMessage validates and resolves the correlation state an incoming
// message implies, without touching the wire. Exposed so a caller that
// already deserialized via a shared codec path can still drive the
// bookkeeping.
func (s *Session) ReceiveMessage(msg Message) error {
	err := s.receiveMessageLocked(msg)
	if errors.Is(err, ErrUnknownCorrelation) {
		s.metrics.CorrelationError()
	}

	return err
}

func (s *Session) receiveMessageLocked(msg Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch m := msg.(type) {
	case *Result:
		if _, ok := s.callRequests[m.RequestID]; !ok {
			return fmt.Errorf("%w: received RESULT for invalid request_id %d", ErrUnknownCorrelation, m.RequestID)
		}
		delete(s.callRequests, m.RequestID)
		return nil

	case *Registered:
		if _, ok := s.registerRequests[m.RequestID]; !ok {
			return fmt.Errorf("%w: received REGISTERED for invalid request_id %d", ErrUnknownCorrelation, m.RequestID)
		}
		delete(s.registerRequests, m.RequestID)
		s.registrations[m.RegistrationID] = struct{}{}
		return nil

	case *Unregistered:
		regID, ok := s.unregisterRequests[m.RequestID]
		if !ok {
			return fmt.Errorf("%w: received UNREGISTERED for invalid request_id %d", ErrUnknownCorrelation, m.RequestID)
		}
		delete(s.unregisterRequests, m.RequestID)
		if _, ok := s.registrations[regID]; !ok {
			return fmt.Errorf("%w: received UNREGISTERED for invalid registration_id %d", ErrUnknownCorrelation, regID)
		}
		delete(s.registrations, regID)
		return nil

	case *Invocation:
		if _, ok := s.registrations[m.RegistrationID]; !ok {
			return fmt.Errorf("%w: received INVOCATION for invalid registration_id %d", ErrUnknownCorrelation, m.RegistrationID)
		}
		s.invocationRequests[m.RequestID] = struct{}{}
		return nil

	case *Published:
		if _, ok := s.publishRequests[m.RequestID]; !ok {
			return fmt.Errorf("%w: received PUBLISHED for invalid request_id %d", ErrUnknownCorrelation, m.RequestID)
		}
		delete(s.publishRequests, m.RequestID)
		return nil

	case *Subscribed:
		if _, ok := s.subscribeRequests[m.RequestID]; !ok {
			return fmt.Errorf("%w: received SUBSCRIBED for invalid request_id %d", ErrUnknownCorrelation, m.RequestID)
		}
		s.subscriptions[m.SubscriptionID] = struct{}{}
		return nil

	case *Unsubscribed:
		subID, ok := s.unsubscribeRequests[m.RequestID]
		if !ok {
			return fmt.Errorf("%w: received UNSUBSCRIBED for invalid request_id %d", ErrUnknownCorrelation, m.RequestID)
		}
		delete(s.unsubscribeRequests, m.RequestID)
		if _, ok := s.subscriptions[subID]; !ok {
			return fmt.Errorf("%w: received UNSUBSCRIBED for invalid subscription_id %d", ErrUnknownCorrelation, subID)
		}
		delete(s.subscriptions, subID)
		return nil

	case *Event:
		if _, ok := s.subscriptions[m.SubscriptionID]; !ok {
			return fmt.Errorf("%w: received EVENT for invalid subscription_id %d", ErrUnknownCorrelation, m.SubscriptionID)
		}
		return nil

	case *ErrorMessage:
		return s.receiveError(m)

	case *Goodbye:
		return nil

	default:
		return fmt.Errorf("received unexpected message type %d", msg.Type())
	}
}

func (s *Session) receiveError(m *ErrorMessage) error {
	switch m.MessageType {
	case MessageTypeCall:
		if _, ok := s.callRequests[m.RequestID]; !ok {
			return fmt.Errorf("%w: received ERROR for invalid call request", ErrUnknownCorrelation)
		}
		delete(s.callRequests, m.RequestID)
	case MessageTypeRegister:
		if _, ok := s.registerRequests[m.RequestID]; !ok {
			return fmt.Errorf("%w: received ERROR for invalid register request", ErrUnknownCorrelation)
		}
		delete(s.registerRequests, m.RequestID)
	case MessageTypeUnregister:
		if _, ok := s.unregisterRequests[m.RequestID]; !ok {
			return fmt.Errorf("%w: received ERROR for invalid unregister request", ErrUnknownCorrelation)
		}
		delete(s.unregisterRequests, m.RequestID)
	case MessageTypeSubscribe:
		if _, ok := s.subscribeRequests[m.RequestID]; !ok {
			return fmt.Errorf("%w: received ERROR for invalid subscribe request", ErrUnknownCorrelation)
		}
		delete(s.subscribeRequests, m.RequestID)
	case MessageTypeUnsubscribe:
		if _, ok := s.unsubscribeRequests[m.RequestID]; !ok {
			return fmt.Errorf("%w: received ERROR for invalid unsubscribe request", ErrUnknownCorrelation)
		}
		delete(s.unsubscribeRequests, m.RequestID)
	case MessageTypePublish:
		if _, ok := s.publishRequests[m.RequestID]; !ok {
			return fmt.Errorf("%w: received ERROR for invalid publish request", ErrUnknownCorrelation)
		}
		delete(s.publishRequests, m.RequestID)
	default:
		return fmt.Errorf("unknown error message type %d", m.MessageType)
	}
	return nil
}
