// Package wamptransport drives the rawsocket framing in wampproto over a
// real net.Conn: the handshake, then length-prefixed message frames. None
// of this belongs in wampproto itself, which stays sans-I/O.
package wamptransport

import (
	"context"
	"fmt"
	"io"
	"net"
	"sync"

	"github.com/xconnio/wampproto-go/wampproto"
)

// Conn is a rawsocket connection that has completed its handshake. Reads
// and writes are safe to call from different goroutines: concurrent Send
// calls serialize on writeMu, concurrent Receive calls serialize on
// readMu, and the pong Receive writes in answer to a ping also takes
// writeMu. The two mutexes guard the two directions independently,
// mirroring the read/write split the teacher's UDPSender and Listener
// types keep.
type Conn struct {
	nc             net.Conn
	maxMessageSize int

	writeMu sync.Mutex
	readMu  sync.Mutex
}

// Dial opens a TCP connection to addr and performs the rawsocket
// handshake, requesting serializerID and announcing maxMessageSize as the
// largest frame this side accepts.
func Dial(ctx context.Context, addr string, serializerID wampproto.SerializerID, maxMessageSize int) (*Conn, error) {
	var d net.Dialer

	nc, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}

	c := &Conn{nc: nc, maxMessageSize: maxMessageSize}

	if err := c.handshake(serializerID, maxMessageSize); err != nil {
		_ = nc.Close()
		return nil, err
	}

	return c, nil
}

func (c *Conn) handshake(serializerID wampproto.SerializerID, maxMessageSize int) error {
	out, err := wampproto.SendHandshake(wampproto.Handshake{
		SerializerID:   serializerID,
		MaxMessageSize: maxMessageSize,
	})
	if err != nil {
		return fmt.Errorf("build handshake: %w", err)
	}

	if _, err := c.nc.Write(out); err != nil {
		return fmt.Errorf("write handshake: %w", err)
	}

	reply := make([]byte, 4)
	if _, err := io.ReadFull(c.nc, reply); err != nil {
		return fmt.Errorf("read handshake reply: %w", err)
	}

	hs, err := wampproto.ReceiveHandshake(reply)
	if err != nil {
		return fmt.Errorf("decode handshake reply: %w", err)
	}

	if hs.SerializerID != serializerID {
		return fmt.Errorf("peer negotiated serializer %d, requested %d", hs.SerializerID, serializerID)
	}

	if hs.MaxMessageSize < c.maxMessageSize {
		c.maxMessageSize = hs.MaxMessageSize
	}

	return nil
}

// Send writes payload as one rawsocket WAMP frame.
func (c *Conn) Send(payload []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	hdr, err := wampproto.SendMessageHeader(wampproto.MessageHeader{
		Kind:   wampproto.FrameKindWamp,
		Length: len(payload),
	})
	if err != nil {
		return fmt.Errorf("build message header: %w", err)
	}

	if _, err := c.nc.Write(hdr); err != nil {
		return fmt.Errorf("write message header: %w", err)
	}
	if _, err := c.nc.Write(payload); err != nil {
		return fmt.Errorf("write message body: %w", err)
	}

	return nil
}

// Receive blocks for one rawsocket frame and returns its body. Ping/pong
// keepalive frames are answered in place (a pong of the same body) and
// skipped, so the caller only ever sees WAMP frames.
func (c *Conn) Receive() ([]byte, error) {
	c.readMu.Lock()
	defer c.readMu.Unlock()

	for {
		hdrBytes := make([]byte, 4)
		if _, err := io.ReadFull(c.nc, hdrBytes); err != nil {
			return nil, fmt.Errorf("read message header: %w", err)
		}

		hdr, err := wampproto.ReceiveMessageHeader(hdrBytes)
		if err != nil {
			return nil, fmt.Errorf("decode message header: %w", err)
		}

		if hdr.Length > c.maxMessageSize {
			return nil, fmt.Errorf("frame of %d bytes exceeds negotiated max %d", hdr.Length, c.maxMessageSize)
		}

		body := make([]byte, hdr.Length)
		if _, err := io.ReadFull(c.nc, body); err != nil {
			return nil, fmt.Errorf("read message body: %w", err)
		}

		switch hdr.Kind {
		case wampproto.FrameKindWamp:
			return body, nil
		case wampproto.FrameKindPing:
			if err := c.sendPong(body); err != nil {
				return nil, err
			}
		case wampproto.FrameKindPong:
			// Unsolicited pong; ignore and keep reading.
		}
	}
}

func (c *Conn) sendPong(body []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	hdr, err := wampproto.SendMessageHeader(wampproto.MessageHeader{
		Kind:   wampproto.FrameKindPong,
		Length: len(body),
	})
	if err != nil {
		return fmt.Errorf("build pong header: %w", err)
	}

	if _, err := c.nc.Write(hdr); err != nil {
		return fmt.Errorf("write pong header: %w", err)
	}
	if _, err := c.nc.Write(body); err != nil {
		return fmt.Errorf("write pong body: %w", err)
	}

	return nil
}

// Close closes the underlying connection.
func (c *Conn) Close() error {
	return c.nc.Close()
}

// MaxMessageSize returns the negotiated ceiling on frame body size.
func (c *Conn) MaxMessageSize() int {
	return c.maxMessageSize
}
