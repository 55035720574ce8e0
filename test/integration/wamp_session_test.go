//go:build integration

// Package integration_test drives wampproto-go end to end: a real TCP
// rawsocket connection between a client built on wamptransport.Dial plus
// wampproto.Joiner/Session, and a minimal test router hand-rolled on top of
// wampproto's wire-framing primitives.
package integration_test

import (
	"context"
	"io"
	"net"
	"testing"
	"time"

	"github.com/xconnio/wampproto-go/internal/wamptransport"
	"github.com/xconnio/wampproto-go/wampproto"
)

// testRouter answers one client connection on a real TCP listener with an
// anonymous WELCOME, then serves CALL/PUBLISH/SUBSCRIBE/REGISTER against a
// single canned procedure, topic, and registration, enough to exercise the
// client library's whole message surface without a production router.
type testRouter struct {
	listener   net.Listener
	serializer wampproto.Serializer
}

func newTestRouter(t *testing.T) *testRouter {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	t.Cleanup(func() { _ = ln.Close() })

	return &testRouter{listener: ln, serializer: wampproto.NewCBORSerializer()}
}

func (r *testRouter) addr() string { return r.listener.Addr().String() }

// serve accepts a single connection, completes the rawsocket handshake and
// WAMP join, then loops answering requests until the client closes the
// connection or sends YIELD.
func (r *testRouter) serve(t *testing.T) {
	t.Helper()

	nc, err := r.listener.Accept()
	if err != nil {
		return
	}
	defer nc.Close()

	if err := r.handshake(nc); err != nil {
		t.Errorf("router handshake: %v", err)
		return
	}

	subscriptionID := int64(9001)
	registrationID := int64(9002)

	for {
		body, err := r.readFrame(nc)
		if err != nil {
			if err == io.EOF {
				return
			}
			t.Errorf("router read frame: %v", err)
			return
		}

		msg, err := r.serializer.Deserialize(body)
		if err != nil {
			t.Errorf("router deserialize: %v", err)
			return
		}

		switch m := msg.(type) {
		case *wampproto.Hello:
			welcome := &wampproto.Welcome{
				SessionID: 1,
				Realm:     m.Realm,
				AuthID:    "anonymous",
				AuthRole:  "anonymous",
				Details:   map[string]wampproto.Value{"authid": wampproto.StringValue("anonymous"), "authrole": wampproto.StringValue("anonymous")},
			}
			if err := r.writeMessage(nc, welcome); err != nil {
				t.Errorf("router send welcome: %v", err)
				return
			}

		case *wampproto.Call:
			result := &wampproto.Result{RequestID: m.RequestID, Details: map[string]wampproto.Value{}, Args: m.Args, HasArgs: m.HasArgs}
			if err := r.writeMessage(nc, result); err != nil {
				t.Errorf("router send result: %v", err)
				return
			}

		case *wampproto.Publish:
			if ack, ok := m.Options["acknowledge"]; ok {
				if b, _ := ack.Bool(); b {
					published := &wampproto.Published{RequestID: m.RequestID, PublicationID: 42}
					if err := r.writeMessage(nc, published); err != nil {
						t.Errorf("router send published: %v", err)
						return
					}
				}
			}

		case *wampproto.Subscribe:
			subscribed := &wampproto.Subscribed{RequestID: m.RequestID, SubscriptionID: subscriptionID}
			if err := r.writeMessage(nc, subscribed); err != nil {
				t.Errorf("router send subscribed: %v", err)
				return
			}
			event := &wampproto.Event{
				SubscriptionID: subscriptionID,
				PublicationID:  43,
				Details:        map[string]wampproto.Value{},
				Args:           []wampproto.Value{wampproto.StringValue("hello")},
				HasArgs:        true,
			}
			if err := r.writeMessage(nc, event); err != nil {
				t.Errorf("router send event: %v", err)
				return
			}

		case *wampproto.Register:
			registered := &wampproto.Registered{RequestID: m.RequestID, RegistrationID: registrationID}
			if err := r.writeMessage(nc, registered); err != nil {
				t.Errorf("router send registered: %v", err)
				return
			}
			invocation := &wampproto.Invocation{
				RequestID:      1001,
				RegistrationID: registrationID,
				Details:        map[string]wampproto.Value{},
			}
			if err := r.writeMessage(nc, invocation); err != nil {
				t.Errorf("router send invocation: %v", err)
				return
			}

		case *wampproto.Yield:
			// Nothing to answer; returning closes the test's done channel,
			// which is how the test observes that the YIELD arrived.
			return

		default:
			t.Errorf("router got unexpected message kind %T", msg)
			return
		}
	}
}

func (r *testRouter) handshake(nc net.Conn) error {
	buf := make([]byte, 4)
	if _, err := io.ReadFull(nc, buf); err != nil {
		return err
	}
	hs, err := wampproto.ReceiveHandshake(buf)
	if err != nil {
		return err
	}
	reply, err := wampproto.SendHandshake(hs)
	if err != nil {
		return err
	}
	_, err = nc.Write(reply)
	return err
}

func (r *testRouter) readFrame(nc net.Conn) ([]byte, error) {
	hdrBytes := make([]byte, 4)
	if _, err := io.ReadFull(nc, hdrBytes); err != nil {
		return nil, err
	}
	hdr, err := wampproto.ReceiveMessageHeader(hdrBytes)
	if err != nil {
		return nil, err
	}
	body := make([]byte, hdr.Length)
	if _, err := io.ReadFull(nc, body); err != nil {
		return nil, err
	}
	return body, nil
}

func (r *testRouter) writeMessage(nc net.Conn, msg wampproto.Message) error {
	data, err := r.serializer.Serialize(msg)
	if err != nil {
		return err
	}
	hdr, err := wampproto.SendMessageHeader(wampproto.MessageHeader{Kind: wampproto.FrameKindWamp, Length: len(data)})
	if err != nil {
		return err
	}
	if _, err := nc.Write(hdr); err != nil {
		return err
	}
	_, err = nc.Write(data)
	return err
}

// TestClientSessionLifecycle joins a real TCP rawsocket router and drives
// one CALL, one acknowledged PUBLISH, one SUBSCRIBE followed by an EVENT,
// and one REGISTER followed by an INVOCATION answered with YIELD.
func TestClientSessionLifecycle(t *testing.T) {
	router := newTestRouter(t)
	done := make(chan struct{})
	go func() {
		defer close(done)
		router.serve(t)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	serializer := wampproto.NewCBORSerializer()
	authenticator := wampproto.NewAnonymousAuthenticator("alice", nil)

	conn, err := wamptransport.Dial(ctx, router.addr(), wampproto.SerializerIDCBOR, 1<<20)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	joiner := wampproto.NewJoiner("realm1", serializer, authenticator)
	hello, err := joiner.SendHello()
	if err != nil {
		t.Fatalf("send hello: %v", err)
	}
	if err := conn.Send(hello); err != nil {
		t.Fatalf("write hello: %v", err)
	}

	in, err := conn.Receive()
	if err != nil {
		t.Fatalf("receive welcome: %v", err)
	}
	if out, err := joiner.Receive(in); err != nil || out != nil {
		t.Fatalf("join: out=%v err=%v", out, err)
	}

	details, err := joiner.SessionDetails()
	if err != nil {
		t.Fatalf("session details: %v", err)
	}
	if details.Realm != "realm1" {
		t.Errorf("Realm = %q, want %q", details.Realm, "realm1")
	}

	session := wampproto.NewSession(serializer)

	// CALL
	call := &wampproto.Call{RequestID: 1, Options: map[string]wampproto.Value{}, Procedure: "com.example.add", Args: []wampproto.Value{wampproto.IntValue(1), wampproto.IntValue(2)}, HasArgs: true}
	out, err := session.SendMessage(call)
	if err != nil {
		t.Fatalf("send call: %v", err)
	}
	if err := conn.Send(out); err != nil {
		t.Fatalf("write call: %v", err)
	}
	in, err = conn.Receive()
	if err != nil {
		t.Fatalf("receive result: %v", err)
	}
	reply, err := session.Receive(in)
	if err != nil {
		t.Fatalf("result: %v", err)
	}
	result, ok := reply.(*wampproto.Result)
	if !ok {
		t.Fatalf("reply is %T, want *Result", reply)
	}
	if len(result.Args) != 2 {
		t.Errorf("len(result.Args) = %d, want 2", len(result.Args))
	}

	// PUBLISH with acknowledge
	publish := &wampproto.Publish{RequestID: 2, Options: map[string]wampproto.Value{"acknowledge": wampproto.BoolValue(true)}, Topic: "com.example.topic"}
	out, err = session.SendMessage(publish)
	if err != nil {
		t.Fatalf("send publish: %v", err)
	}
	if err := conn.Send(out); err != nil {
		t.Fatalf("write publish: %v", err)
	}
	in, err = conn.Receive()
	if err != nil {
		t.Fatalf("receive published: %v", err)
	}
	if _, err := session.Receive(in); err != nil {
		t.Fatalf("published: %v", err)
	}

	// SUBSCRIBE, expect SUBSCRIBED then one EVENT
	subscribe := &wampproto.Subscribe{RequestID: 3, Options: map[string]wampproto.Value{}, Topic: "com.example.topic"}
	out, err = session.SendMessage(subscribe)
	if err != nil {
		t.Fatalf("send subscribe: %v", err)
	}
	if err := conn.Send(out); err != nil {
		t.Fatalf("write subscribe: %v", err)
	}
	in, err = conn.Receive()
	if err != nil {
		t.Fatalf("receive subscribed: %v", err)
	}
	if _, err := session.Receive(in); err != nil {
		t.Fatalf("subscribed: %v", err)
	}
	in, err = conn.Receive()
	if err != nil {
		t.Fatalf("receive event: %v", err)
	}
	msg, err := session.Receive(in)
	if err != nil {
		t.Fatalf("event: %v", err)
	}
	event, ok := msg.(*wampproto.Event)
	if !ok {
		t.Fatalf("msg is %T, want *Event", msg)
	}
	if len(event.Args) != 1 {
		t.Errorf("len(event.Args) = %d, want 1", len(event.Args))
	}

	// REGISTER, expect REGISTERED then one INVOCATION, answered with YIELD
	register := &wampproto.Register{RequestID: 4, Options: map[string]wampproto.Value{}, Procedure: "com.example.echo"}
	out, err = session.SendMessage(register)
	if err != nil {
		t.Fatalf("send register: %v", err)
	}
	if err := conn.Send(out); err != nil {
		t.Fatalf("write register: %v", err)
	}
	in, err = conn.Receive()
	if err != nil {
		t.Fatalf("receive registered: %v", err)
	}
	if _, err := session.Receive(in); err != nil {
		t.Fatalf("registered: %v", err)
	}
	in, err = conn.Receive()
	if err != nil {
		t.Fatalf("receive invocation: %v", err)
	}
	msg, err = session.Receive(in)
	if err != nil {
		t.Fatalf("invocation: %v", err)
	}
	invocation, ok := msg.(*wampproto.Invocation)
	if !ok {
		t.Fatalf("msg is %T, want *Invocation", msg)
	}

	yield := &wampproto.Yield{RequestID: invocation.RequestID, Options: map[string]wampproto.Value{}}
	out, err = session.SendMessage(yield)
	if err != nil {
		t.Fatalf("send yield: %v", err)
	}
	if err := conn.Send(out); err != nil {
		t.Fatalf("write yield: %v", err)
	}

	select {
	case <-done:
	case <-ctx.Done():
		t.Fatal("router did not finish within timeout")
	}
}
