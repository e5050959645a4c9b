// Package output implements the bounded text writer commands use to answer.
//
// An Output accumulates bytes in a caller-supplied buffer and delivers them to
// a device on Flush. It never grows the buffer: a write that does not fit is
// rejected as a whole with a BUFFER_OVERFLOW error and leaves both the buffer
// content and the cursor untouched.
package output

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/picomenu/pkg/device"
	"github.com/arthur-debert/picomenu/pkg/errors"
)

// fmtFault opens every fmt formatting failure: %!d(string=x), %!s(MISSING),
// %!(EXTRA int=1), %!(NOVERB), %!v(PANIC=String method: boom).
const fmtFault = "%!"

var fmtFaultWords = []string{"(EXTRA ", "(NOVERB)", "(BADWIDTH)", "(BADPREC)", "(BADINDEX)"}

// Output wraps a fixed-size buffer and the device it is flushed to.
// Invariant: cursor <= len(buf).
type Output struct {
	dev    device.Device
	buf    []byte
	cursor int
}

// New returns an Output that accumulates into buf and flushes to dev.
func New(dev device.Device, buf []byte) *Output {
	return &Output{dev: dev, buf: buf}
}

// Write appends p as a whole or not at all. It implements io.Writer so
// commands can hand an Output to any writer-based helper.
func (o *Output) Write(p []byte) (int, error) {
	if err := o.reserve(len(p)); err != nil {
		return 0, err
	}
	o.cursor += copy(o.buf[o.cursor:], p)
	return len(p), nil
}

// WriteString appends s as a whole or not at all.
func (o *Output) WriteString(s string) error {
	if err := o.reserve(len(s)); err != nil {
		return err
	}
	o.cursor += copy(o.buf[o.cursor:], s)
	return nil
}

// Writeln appends s followed by a newline as a single unit.
func (o *Output) Writeln(s string) error {
	if err := o.reserve(len(s) + 1); err != nil {
		return err
	}
	o.cursor += copy(o.buf[o.cursor:], s)
	o.buf[o.cursor] = '\n'
	o.cursor++
	return nil
}

// Printf formats directly into the free tail of the buffer. The cursor only
// moves when the whole formatted text fits and formatting succeeded.
func (o *Output) Printf(format string, args ...interface{}) error {
	tail := o.buf[o.cursor:o.cursor:len(o.buf)]
	formatted := fmt.Appendf(tail, format, args...)

	if len(formatted) > cap(tail) {
		return overflow(len(formatted), o.Available())
	}
	if formatFailed(formatted, format, args) {
		return errors.Newf(errors.ErrFormat, "cannot format %q", format).
			WithDetail("output", string(formatted))
	}

	o.cursor += len(formatted)
	return nil
}

// Flush writes the pending bytes to the device and resets the cursor.
// This is a suspension point. Device failures are reported as IO errors and
// leave the pending bytes in place.
func (o *Output) Flush(ctx context.Context) error {
	if o.cursor == 0 {
		return nil
	}
	if err := o.dev.Write(ctx, o.buf[:o.cursor]); err != nil {
		return errors.Wrap(err, errors.ErrIO, "write output")
	}
	o.cursor = 0
	return nil
}

// FlushRetry runs write and, when it fails for lack of room, flushes the
// pending bytes once and runs it again. Writers that stream more text than the
// buffer holds use it to make progress; a single piece larger than the whole
// buffer still fails with BUFFER_OVERFLOW.
func (o *Output) FlushRetry(ctx context.Context, write func() error) error {
	err := write()
	if !errors.IsErrorCode(err, errors.ErrBufferOverflow) || o.cursor == 0 {
		return err
	}
	if ferr := o.Flush(ctx); ferr != nil {
		return ferr
	}
	return write()
}

// Len returns the number of pending bytes.
func (o *Output) Len() int { return o.cursor }

// Cap returns the buffer capacity.
func (o *Output) Cap() int { return len(o.buf) }

// Available returns how many more bytes fit before the next flush.
func (o *Output) Available() int { return len(o.buf) - o.cursor }

// Bytes returns the pending bytes. The slice aliases the buffer and is only
// valid until the next write or flush.
func (o *Output) Bytes() []byte { return o.buf[:o.cursor] }

// Reset drops pending bytes without writing them.
func (o *Output) Reset() { o.cursor = 0 }

func (o *Output) reserve(n int) error {
	if n > o.Available() {
		return overflow(n, o.Available())
	}
	return nil
}

func overflow(needed, available int) error {
	return errors.New(errors.ErrBufferOverflow, "output buffer overflow").
		WithDetails(map[string]interface{}{
			"buffer":    "output",
			"needed":    needed,
			"available": available,
		})
}

// formatFailed reports whether fmt wrote failure markers of its own into
// formatted. Markers already present in the format's literal text or in the
// arguments' own text are content and are discounted.
func formatFailed(formatted []byte, format string, args []interface{}) bool {
	faults := countFaults(formatted, true)
	if faults == 0 {
		return false
	}
	faults -= countFaults([]byte(strings.ReplaceAll(format, "%%", "%")), true)
	for _, arg := range args {
		// Panics in an argument stay failures.
		faults -= countFaults(fmt.Appendf(nil, "%v", arg), false)
	}
	return faults > 0
}

// countFaults counts fmt failure markers in b. Panic markers are only counted
// when withPanics is set.
func countFaults(b []byte, withPanics bool) int {
	n := 0
	for {
		i := bytes.Index(b, []byte(fmtFault))
		if i < 0 {
			return n
		}
		b = b[i+len(fmtFault):]
		if isFault(b, withPanics) {
			n++
		}
	}
}

func isFault(rest []byte, withPanics bool) bool {
	for _, word := range fmtFaultWords {
		if bytes.HasPrefix(rest, []byte(word)) {
			return true
		}
	}
	_, size := utf8.DecodeRune(rest)
	if size == 0 || len(rest) <= size || rest[size] != '(' {
		return false
	}
	if !withPanics && bytes.HasPrefix(rest[size:], []byte("(PANIC=")) {
		return false
	}
	return true
}
