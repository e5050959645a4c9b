// Package device defines the byte I/O capability a menu runs on and adapters
// that expose standard Go streams and network connections through it.
//
// Every Device call is a suspension point of the menu loop: Read blocks until
// at least one byte, closure (io.EOF) or an error is available, and Write
// blocks until the device accepted all bytes or failed.
package device

import (
	"context"
	"io"
)

// Device is the byte-level I/O capability consumed by the menu engine.
type Device interface {
	// Read fills p with available input and returns the byte count. It
	// returns io.EOF once the device is closed. Implementations should block
	// until data arrives; a read of zero bytes with a nil error means nothing
	// arrived and the caller simply polls again.
	Read(ctx context.Context, p []byte) (int, error)

	// Write delivers all of p to the device or returns an error.
	Write(ctx context.Context, p []byte) error
}

// Stream adapts an io.Reader/io.Writer pair, such as os.Stdin and os.Stdout.
// Blocking reads on a plain stream cannot be interrupted; the context is
// checked before each operation.
type Stream struct {
	r io.Reader
	w io.Writer
}

// NewStream returns a Device reading from r and writing to w.
func NewStream(r io.Reader, w io.Writer) *Stream {
	return &Stream{r: r, w: w}
}

// Read implements Device.
func (s *Stream) Read(ctx context.Context, p []byte) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	n, err := s.r.Read(p)
	if n > 0 {
		// Surface the bytes now; a pending error repeats on the next Read.
		return n, nil
	}
	return n, err
}

// Write implements Device.
func (s *Stream) Write(ctx context.Context, p []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for len(p) > 0 {
		n, err := s.w.Write(p)
		if err != nil {
			return err
		}
		if n == 0 {
			return io.ErrShortWrite
		}
		p = p[n:]
	}
	return nil
}
