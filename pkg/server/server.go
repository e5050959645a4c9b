// Package server runs menu sessions over TCP, one session per connection.
//
// Each accepted connection is wrapped in a device.Conn and handed to the
// SessionFunc, which typically builds a fresh menu with its own buffers and
// state and runs it. The number of concurrent sessions is bounded; once the
// limit is reached the accept loop waits for a session to end.
package server

import (
	"context"
	stderrors "errors"
	"net"
	"sync/atomic"

	"github.com/arthur-debert/picomenu/pkg/device"
	"github.com/arthur-debert/picomenu/pkg/errors"
	"github.com/arthur-debert/picomenu/pkg/logging"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// DefaultMaxSessions bounds concurrent sessions when no option is given.
const DefaultMaxSessions = 8

// SessionFunc serves one connection until it closes or ctx is cancelled.
type SessionFunc func(ctx context.Context, dev device.Device) error

// Option configures a Server.
type Option func(*Server)

// WithMaxSessions bounds the number of concurrent sessions.
func WithMaxSessions(n int) Option {
	return func(s *Server) { s.maxSessions = n }
}

// WithLogger replaces the default "server" component logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Server) { s.log = logger }
}

// Server accepts connections and runs a session for each.
type Server struct {
	listener    net.Listener
	session     SessionFunc
	maxSessions int
	log         zerolog.Logger

	active atomic.Int64
	served atomic.Int64
}

// New returns a server accepting on ln.
func New(ln net.Listener, session SessionFunc, opts ...Option) *Server {
	s := &Server{
		listener:    ln,
		session:     session,
		maxSessions: DefaultMaxSessions,
		log:         logging.GetLogger("server"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Listen opens a TCP listener on addr and returns a server for it.
func Listen(ctx context.Context, addr string, session SessionFunc, opts ...Option) (*Server, error) {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrIO, "listen on %s", addr).
			WithDetail("address", addr)
	}
	return New(ln, session, opts...), nil
}

// Addr returns the listening address.
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Active returns the number of sessions currently running.
func (s *Server) Active() int {
	return int(s.active.Load())
}

// Served returns the number of sessions that have ended.
func (s *Server) Served() int {
	return int(s.served.Load())
}

// Serve accepts connections until ctx is cancelled, then closes the listener
// and waits for running sessions to end. Cancellation returns nil.
func (s *Server) Serve(ctx context.Context) error {
	if s.maxSessions < 1 {
		return errors.Newf(errors.ErrInvalidInput, "max sessions must be at least 1, got %d", s.maxSessions)
	}

	stop := context.AfterFunc(ctx, func() {
		_ = s.listener.Close()
	})
	defer stop()

	var g errgroup.Group
	g.SetLimit(s.maxSessions)

	s.log.Info().
		Str("address", s.Addr().String()).
		Int("maxSessions", s.maxSessions).
		Msg("Accepting connections")

	var acceptErr error
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if ctx.Err() == nil && !stderrors.Is(err, net.ErrClosed) {
				s.log.Error().Err(err).Msg("Accept failed")
				acceptErr = errors.Wrap(err, errors.ErrIO, "accept connection")
			}
			break
		}
		g.Go(func() error {
			s.handle(ctx, conn)
			return nil
		})
	}

	_ = g.Wait()
	s.log.Info().Int("served", s.Served()).Msg("Server stopped")
	return acceptErr
}

// Close stops accepting connections.
func (s *Server) Close() error {
	return s.listener.Close()
}

func (s *Server) handle(ctx context.Context, conn net.Conn) {
	dev := device.NewConn(conn)
	defer func() {
		_ = dev.Close()
	}()

	s.active.Add(1)
	defer func() {
		s.active.Add(-1)
		s.served.Add(1)
	}()

	logger := s.log.With().Str("remote", dev.RemoteAddr()).Logger()
	done := logging.LogOperationStart(logger, "session")
	defer done()

	if err := s.session(ctx, dev); err != nil && ctx.Err() == nil {
		logger.Warn().Err(err).Msg("Session ended with error")
	}
}
