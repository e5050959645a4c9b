package testutil

import (
	"context"
	"io"
	"strings"
)

// MockDevice is a scripted device.Device for tests. Reads return the scripted
// chunks in order (splitting a chunk when the caller's buffer is smaller) and
// then ReadErr, io.EOF by default. Every successful write is recorded as one
// packet.
type MockDevice struct {
	chunks  []string
	packets []string

	// ReadErr is returned once the script is exhausted. Nil means io.EOF.
	ReadErr error

	// WriteErr, when set, fails every write.
	WriteErr error

	// FailWritesAfter fails writes once this many packets were accepted.
	// Zero disables it.
	FailWritesAfter int

	// ReadFunc and WriteFunc replace the scripted behaviour when set.
	ReadFunc  func(ctx context.Context, p []byte) (int, error)
	WriteFunc func(ctx context.Context, p []byte) error
}

// NewMockDevice returns a device that will deliver chunks one per Read.
func NewMockDevice(chunks ...string) *MockDevice {
	return &MockDevice{chunks: chunks}
}

// Feed appends chunks to the read script.
func (m *MockDevice) Feed(chunks ...string) {
	m.chunks = append(m.chunks, chunks...)
}

// Read implements device.Device.
func (m *MockDevice) Read(ctx context.Context, p []byte) (int, error) {
	if m.ReadFunc != nil {
		return m.ReadFunc(ctx, p)
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(m.chunks) == 0 {
		if m.ReadErr != nil {
			return 0, m.ReadErr
		}
		return 0, io.EOF
	}

	chunk := m.chunks[0]
	n := copy(p, chunk)
	if n < len(chunk) {
		m.chunks[0] = chunk[n:]
	} else {
		m.chunks = m.chunks[1:]
	}
	return n, nil
}

// Write implements device.Device.
func (m *MockDevice) Write(ctx context.Context, p []byte) error {
	if m.WriteFunc != nil {
		return m.WriteFunc(ctx, p)
	}
	if m.WriteErr != nil {
		return m.WriteErr
	}
	if m.FailWritesAfter > 0 && len(m.packets) >= m.FailWritesAfter {
		return io.ErrClosedPipe
	}
	m.packets = append(m.packets, string(p))
	return nil
}

// Output returns everything written so far.
func (m *MockDevice) Output() string {
	return strings.Join(m.packets, "")
}

// Packets returns each accepted write separately.
func (m *MockDevice) Packets() []string {
	return append([]string(nil), m.packets...)
}

// Lines returns the written output split into lines without terminators.
func (m *MockDevice) Lines() []string {
	out := strings.TrimSuffix(m.Output(), "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}
