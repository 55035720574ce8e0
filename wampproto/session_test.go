package wampproto

import (
	"errors"
	"testing"
)

func TestSessionCallResultRoundTrip(t *testing.T) {
	t.Parallel()

	s := NewSession(NewCBORSerializer())

	call := &Call{RequestID: 1, Options: map[string]Value{}, Procedure: "com.example.add"}
	if _, err := s.SendMessage(call); err != nil {
		t.Fatalf("SendMessage(call): %v", err)
	}

	result := &Result{RequestID: 1, Details: map[string]Value{}}
	if err := s.ReceiveMessage(result); err != nil {
		t.Fatalf("ReceiveMessage(result): %v", err)
	}

	// The call is resolved now; a second RESULT for the same request_id
	// must be rejected.
	if err := s.ReceiveMessage(result); !errors.Is(err, ErrUnknownCorrelation) {
		t.Fatalf("err = %v, want ErrUnknownCorrelation", err)
	}
}

func TestSessionSubscribeUnsubscribeRoundTrip(t *testing.T) {
	t.Parallel()

	s := NewSession(NewCBORSerializer())

	subscribe := &Subscribe{RequestID: 1, Options: map[string]Value{}, Topic: "com.example.topic"}
	if _, err := s.SendMessage(subscribe); err != nil {
		t.Fatalf("SendMessage(subscribe): %v", err)
	}

	subscribed := &Subscribed{RequestID: 1, SubscriptionID: 100}
	if err := s.ReceiveMessage(subscribed); err != nil {
		t.Fatalf("ReceiveMessage(subscribed): %v", err)
	}

	unsubscribe := &Unsubscribe{RequestID: 2, SubscriptionID: 100}
	if _, err := s.SendMessage(unsubscribe); err != nil {
		t.Fatalf("SendMessage(unsubscribe): %v", err)
	}

	unsubscribed := &Unsubscribed{RequestID: 2}
	if err := s.ReceiveMessage(unsubscribed); err != nil {
		t.Fatalf("ReceiveMessage(unsubscribed): %v", err)
	}

	// The subscription is retired now; a second UNSUBSCRIBE against it
	// must be rejected since SendMessage checks subscriptions, not just
	// unsubscribeRequests.
	if _, err := s.SendMessage(&Unsubscribe{RequestID: 3, SubscriptionID: 100}); err == nil {
		t.Fatal("expected an error unsubscribing from an already-retired subscription")
	}
}

// TestSessionUnsubscribeTracksSubscriptionIDNotRequestID is the regression
// test for the unsubscribe_requests correlation: when request_id and
// subscription_id differ, UNSUBSCRIBED must retire the subscription that
// was actually requested, not one that happens to share the request's
// numeric id.
func TestSessionUnsubscribeTracksSubscriptionIDNotRequestID(t *testing.T) {
	t.Parallel()

	s := NewSession(NewCBORSerializer())

	if _, err := s.SendMessage(&Subscribe{RequestID: 1, Options: map[string]Value{}, Topic: "a"}); err != nil {
		t.Fatalf("SendMessage(subscribe): %v", err)
	}
	if err := s.ReceiveMessage(&Subscribed{RequestID: 1, SubscriptionID: 500}); err != nil {
		t.Fatalf("ReceiveMessage(subscribed): %v", err)
	}

	// Unsubscribe request_id (42) is deliberately different from the
	// subscription_id (500) it targets.
	if _, err := s.SendMessage(&Unsubscribe{RequestID: 42, SubscriptionID: 500}); err != nil {
		t.Fatalf("SendMessage(unsubscribe): %v", err)
	}
	if err := s.ReceiveMessage(&Unsubscribed{RequestID: 42}); err != nil {
		t.Fatalf("ReceiveMessage(unsubscribed): %v", err)
	}

	if _, ok := s.subscriptions[500]; ok {
		t.Fatal("subscription 500 should have been retired")
	}
}

func TestSessionUnsubscribeRejectsUnknownSubscription(t *testing.T) {
	t.Parallel()

	s := NewSession(NewCBORSerializer())
	if _, err := s.SendMessage(&Unsubscribe{RequestID: 1, SubscriptionID: 999}); err == nil {
		t.Fatal("expected an error unsubscribing from a subscription this session never made")
	}
}

func TestSessionRegisterUnregisterRoundTrip(t *testing.T) {
	t.Parallel()

	s := NewSession(NewCBORSerializer())

	if _, err := s.SendMessage(&Register{RequestID: 1, Options: map[string]Value{}, Procedure: "com.example.proc"}); err != nil {
		t.Fatalf("SendMessage(register): %v", err)
	}
	if err := s.ReceiveMessage(&Registered{RequestID: 1, RegistrationID: 77}); err != nil {
		t.Fatalf("ReceiveMessage(registered): %v", err)
	}

	if _, err := s.SendMessage(&Unregister{RequestID: 2, RegistrationID: 77}); err != nil {
		t.Fatalf("SendMessage(unregister): %v", err)
	}
	if err := s.ReceiveMessage(&Unregistered{RequestID: 2}); err != nil {
		t.Fatalf("ReceiveMessage(unregistered): %v", err)
	}

	if _, ok := s.registrations[77]; ok {
		t.Fatal("registration 77 should have been retired")
	}
}

func TestSessionInvocationYieldRoundTrip(t *testing.T) {
	t.Parallel()

	s := NewSession(NewCBORSerializer())

	if _, err := s.SendMessage(&Register{RequestID: 1, Options: map[string]Value{}, Procedure: "com.example.proc"}); err != nil {
		t.Fatalf("SendMessage(register): %v", err)
	}
	if err := s.ReceiveMessage(&Registered{RequestID: 1, RegistrationID: 77}); err != nil {
		t.Fatalf("ReceiveMessage(registered): %v", err)
	}

	if err := s.ReceiveMessage(&Invocation{RequestID: 10, RegistrationID: 77, Details: map[string]Value{}}); err != nil {
		t.Fatalf("ReceiveMessage(invocation): %v", err)
	}

	if _, err := s.SendMessage(&Yield{RequestID: 10, Options: map[string]Value{}}); err != nil {
		t.Fatalf("SendMessage(yield): %v", err)
	}
}

func TestSessionPublishAcknowledgedOnlyWhenRequested(t *testing.T) {
	t.Parallel()

	s := NewSession(NewCBORSerializer())

	unacked := &Publish{RequestID: 1, Options: map[string]Value{}, Topic: "a"}
	if _, err := s.SendMessage(unacked); err != nil {
		t.Fatalf("SendMessage(unacked publish): %v", err)
	}
	if _, ok := s.publishRequests[1]; ok {
		t.Fatal("an unacknowledged PUBLISH must not be tracked")
	}

	acked := &Publish{RequestID: 2, Options: map[string]Value{"acknowledge": BoolValue(true)}, Topic: "a"}
	if _, err := s.SendMessage(acked); err != nil {
		t.Fatalf("SendMessage(acked publish): %v", err)
	}
	if err := s.ReceiveMessage(&Published{RequestID: 2, PublicationID: 9}); err != nil {
		t.Fatalf("ReceiveMessage(published): %v", err)
	}
}

func TestSessionErrorResolvesCallRequest(t *testing.T) {
	t.Parallel()

	s := NewSession(NewCBORSerializer())
	if _, err := s.SendMessage(&Call{RequestID: 1, Options: map[string]Value{}, Procedure: "p"}); err != nil {
		t.Fatalf("SendMessage(call): %v", err)
	}

	errMsg := &ErrorMessage{MessageType: MessageTypeCall, RequestID: 1, Options: map[string]Value{}, URI: "wamp.error.no_such_procedure"}
	if err := s.ReceiveMessage(errMsg); err != nil {
		t.Fatalf("ReceiveMessage(error): %v", err)
	}
	if _, ok := s.callRequests[1]; ok {
		t.Fatal("call request should be resolved by the ERROR")
	}
}

func TestSessionSendErrorRejectsNonInvocationType(t *testing.T) {
	t.Parallel()

	s := NewSession(NewCBORSerializer())
	errMsg := &ErrorMessage{MessageType: MessageTypeCall, RequestID: 1, Options: map[string]Value{}, URI: "x"}
	if _, err := s.SendMessage(errMsg); err == nil {
		t.Fatal("expected an error: ERROR can only be sent for message_type=INVOCATION")
	}
}

func TestSessionUnknownMessageTypeOnSend(t *testing.T) {
	t.Parallel()

	s := NewSession(NewCBORSerializer())
	if _, err := s.SendMessage(&Welcome{Details: map[string]Value{}}); err == nil {
		t.Fatal("expected an error for a message kind with no send-side behavior")
	}
}

// countingMetricsHook counts CorrelationError calls for WithMetrics tests.
type countingMetricsHook struct {
	correlationErrors int
}

func (h *countingMetricsHook) CorrelationError() { h.correlationErrors++ }

func TestSessionWithMetricsObservesCorrelationErrors(t *testing.T) {
	t.Parallel()

	hook := &countingMetricsHook{}
	s := NewSession(NewCBORSerializer(), WithMetrics(hook))

	result := &Result{RequestID: 1, Details: map[string]Value{}}
	if err := s.ReceiveMessage(result); !errors.Is(err, ErrUnknownCorrelation) {
		t.Fatalf("err = %v, want ErrUnknownCorrelation", err)
	}
	if hook.correlationErrors != 1 {
		t.Errorf("correlationErrors = %d, want 1", hook.correlationErrors)
	}

	// A resolvable receive must not trip the hook.
	call := &Call{RequestID: 2, Options: map[string]Value{}, Procedure: "com.example.add"}
	if _, err := s.SendMessage(call); err != nil {
		t.Fatalf("SendMessage(call): %v", err)
	}
	if err := s.ReceiveMessage(&Result{RequestID: 2, Details: map[string]Value{}}); err != nil {
		t.Fatalf("ReceiveMessage(result): %v", err)
	}
	if hook.correlationErrors != 1 {
		t.Errorf("correlationErrors = %d after successful receive, want unchanged 1", hook.correlationErrors)
	}
}

func TestSessionWithMetricsNilHookKeepsDefault(t *testing.T) {
	t.Parallel()

	// WithMetrics(nil) must not panic or replace the default no-op hook.
	s := NewSession(NewCBORSerializer(), WithMetrics(nil))
	if err := s.ReceiveMessage(&Result{RequestID: 99, Details: map[string]Value{}}); !errors.Is(err, ErrUnknownCorrelation) {
		t.Fatalf("err = %v, want ErrUnknownCorrelation", err)
	}
}
