package device

import (
	"context"
	"errors"
	"net"
	"os"
	"time"
)

// aLongTimeAgo is a deadline in the past used to unblock pending I/O.
var aLongTimeAgo = time.Unix(1, 0)

// Conn adapts a net.Conn. Cancelling the context passed to Read or Write
// interrupts the pending operation through the connection deadline.
type Conn struct {
	conn net.Conn
}

// NewConn returns a Device backed by conn.
func NewConn(conn net.Conn) *Conn {
	return &Conn{conn: conn}
}

// Read implements Device.
func (c *Conn) Read(ctx context.Context, p []byte) (int, error) {
	stop := context.AfterFunc(ctx, func() {
		_ = c.conn.SetReadDeadline(aLongTimeAgo)
	})
	defer stop()

	n, err := c.conn.Read(p)
	return n, c.mapErr(ctx, err)
}

// Write implements Device.
func (c *Conn) Write(ctx context.Context, p []byte) error {
	stop := context.AfterFunc(ctx, func() {
		_ = c.conn.SetWriteDeadline(aLongTimeAgo)
	})
	defer stop()

	_, err := c.conn.Write(p)
	return c.mapErr(ctx, err)
}

// Close closes the underlying connection.
func (c *Conn) Close() error {
	return c.conn.Close()
}

// RemoteAddr returns the peer address.
func (c *Conn) RemoteAddr() string {
	return c.conn.RemoteAddr().String()
}

func (c *Conn) mapErr(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, os.ErrDeadlineExceeded) && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}
