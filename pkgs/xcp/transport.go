package xcp

import (
	"fmt"
	"net"
	"time"
)

// Transport performs one request/response round trip with a fixed peer.
// The returned buffer is raw and may be empty; classification is the
// decoder's job.
type Transport interface {
	Exchange(req []byte) ([]byte, error)
	Close() error
}

// DefaultTimeout is the per-exchange read window when none is configured.
const DefaultTimeout = time.Second

const recvBufferSize = 2048

// NewUDPTransport binds a UDP transport to a single slave for the lifetime
// of a session.
func NewUDPTransport(netAddr string, netPort uint16) (*UDPTransport, error) {
	t := UDPTransport{Timeout: DefaultTimeout}
	return &t, t.connect(fmt.Sprintf("%s:%d", netAddr, netPort))
}

type UDPTransport struct {
	conn    net.Conn
	Timeout time.Duration
}

func (t *UDPTransport) connect(netAddr string) error {
	conn, err := net.Dial("udp", netAddr)
	if err != nil {
		return fmt.Errorf("UDP dial error while connecting to XCP slave: %w", err)
	}
	t.conn = conn
	return nil
}

// Exchange sends one datagram and waits for the next one from the peer,
// up to the configured timeout.
func (t *UDPTransport) Exchange(req []byte) ([]byte, error) {
	if _, err := t.conn.Write(req); err != nil {
		return nil, fmt.Errorf("cannot send request: %w", err)
	}
	_ = t.conn.SetReadDeadline(time.Now().Add(t.Timeout))
	buf := make([]byte, recvBufferSize)
	n, err := t.conn.Read(buf)
	if err != nil {
		if ne, ok := err.(net.Error); ok && ne.Timeout() {
			return nil, ErrTimeout
		}
		return nil, fmt.Errorf("cannot read response: %w", err)
	}
	return buf[:n], nil
}

func (t *UDPTransport) Close() error {
	return t.conn.Close()
}
