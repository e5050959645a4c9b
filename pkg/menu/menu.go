package menu

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"runtime"
	"unicode/utf8"

	"github.com/arthur-debert/picomenu/pkg/device"
	"github.com/arthur-debert/picomenu/pkg/errors"
	"github.com/arthur-debert/picomenu/pkg/logging"
	"github.com/arthur-debert/picomenu/pkg/output"
	"github.com/arthur-debert/picomenu/pkg/registry"
	"github.com/rs/zerolog"
)

const (
	// DefaultMaxCommands is the command table capacity, built-in help included.
	DefaultMaxCommands = 16

	// HelpCommandName is the name of the built-in command listing.
	HelpCommandName = "help"

	reportPrefix = "Error: "
)

type settings struct {
	maxCommands int
	prompt      string
	logger      *zerolog.Logger
}

// Option configures a Menu at construction.
type Option func(*settings)

// WithMaxCommands sets the command table capacity, built-in help included.
func WithMaxCommands(n int) Option {
	return func(s *settings) { s.maxCommands = n }
}

// WithPrompt sets a prompt written when Run starts and after every line.
func WithPrompt(prompt string) Option {
	return func(s *settings) { s.prompt = prompt }
}

// WithLogger replaces the default "menu" component logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *settings) { s.logger = &logger }
}

// Menu drives a device with a fixed set of commands sharing the state S.
type Menu[S any] struct {
	dev      device.Device
	state    *S
	input    []byte
	inputLen int
	out      *output.Output
	commands registry.Registry[Command[S]]
	prompt   string
	log      zerolog.Logger

	running bool
	err     error
}

// New builds a menu over dev. inBuf holds at most one pending line and
// outBuf holds what commands write between flushes; neither ever grows.
// Construction problems are latched and returned by Err and Run.
func New[S any](dev device.Device, state *S, inBuf, outBuf []byte, opts ...Option) *Menu[S] {
	cfg := settings{maxCommands: DefaultMaxCommands}
	for _, opt := range opts {
		opt(&cfg)
	}

	m := &Menu[S]{
		dev:    dev,
		state:  state,
		input:  inBuf,
		prompt: cfg.prompt,
	}
	if cfg.logger != nil {
		m.log = *cfg.logger
	} else {
		m.log = logging.GetLogger("menu")
	}

	switch {
	case dev == nil:
		m.err = errors.New(errors.ErrInvalidInput, "menu needs a device")
	case state == nil:
		m.err = errors.New(errors.ErrInvalidInput, "menu needs a state")
	case len(inBuf) == 0:
		m.err = errors.New(errors.ErrInvalidInput, "input buffer is empty")
	case len(outBuf) == 0:
		m.err = errors.New(errors.ErrInvalidInput, "output buffer is empty")
	case cfg.maxCommands < 1:
		m.err = errors.Newf(errors.ErrInvalidInput, "command capacity must be at least 1, got %d", cfg.maxCommands)
	}
	if m.err != nil {
		m.commands = registry.New[Command[S]](0)
		return m
	}

	m.out = output.New(dev, outBuf)
	m.commands = registry.New[Command[S]](cfg.maxCommands)
	registry.MustRegister[Command[S]](m.commands, HelpCommandName, helpCommand[S]{commands: m.commands})
	return m
}

// WithCommand registers cmd after the ones already attached. The first
// registration error is latched; later calls are ignored.
func (m *Menu[S]) WithCommand(cmd Command[S]) *Menu[S] {
	if m.err != nil {
		return m
	}
	if cmd == nil {
		m.err = errors.New(errors.ErrInvalidInput, "command is nil")
		return m
	}
	if name := cmd.Name(); containsSpace(name) {
		m.err = errors.Newf(errors.ErrInvalidInput, "command name %q contains whitespace", name)
		return m
	}
	if err := m.commands.Register(cmd.Name(), cmd); err != nil {
		m.log.Error().Err(err).Str("command", cmd.Name()).Msg("Failed to register command")
		m.err = err
	}
	return m
}

// Err returns the construction error, if any.
func (m *Menu[S]) Err() error {
	return m.err
}

// State returns the state shared by the commands. The host must not touch it
// while Run is executing.
func (m *Menu[S]) State() *S {
	return m.state
}

// Commands returns the registered commands in registration order.
func (m *Menu[S]) Commands() []Command[S] {
	cmds := make([]Command[S], 0, m.commands.Count())
	_ = m.commands.Each(func(_ string, cmd Command[S]) error {
		cmds = append(cmds, cmd)
		return nil
	})
	return cmds
}

// Run writes the prompt and processes lines until the device closes, the
// context is cancelled or the device fails. Device closure returns nil.
func (m *Menu[S]) Run(ctx context.Context) error {
	if err := m.start(); err != nil {
		return err
	}
	defer m.stop()

	done := logging.LogOperationStart(m.log, "menu run")
	defer done()

	if err := m.writePrompt(ctx); err != nil {
		return err
	}
	if err := m.out.Flush(ctx); err != nil {
		return m.deviceFailed(err)
	}

	for {
		if err := m.poll(ctx); err != nil {
			if stderrors.Is(err, io.EOF) {
				m.log.Debug().Msg("Device closed")
				return nil
			}
			return err
		}
	}
}

// Poll performs a single device read and processes every line it completes.
// It returns io.EOF once the device is closed.
func (m *Menu[S]) Poll(ctx context.Context) error {
	if err := m.start(); err != nil {
		return err
	}
	defer m.stop()
	return m.poll(ctx)
}

func (m *Menu[S]) start() error {
	if m.err != nil {
		return m.err
	}
	if m.running {
		return errors.New(errors.ErrInternal, "menu is already running")
	}
	m.running = true
	m.commands.Freeze()
	return nil
}

func (m *Menu[S]) stop() {
	m.running = false
}

func (m *Menu[S]) poll(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	n, err := m.dev.Read(ctx, m.input[m.inputLen:])
	if n == 0 && err == nil {
		// Empty read from a non-blocking device.
		runtime.Gosched()
		return ctx.Err()
	}
	if n > 0 {
		m.inputLen += n
		if perr := m.processInput(ctx); perr != nil {
			return perr
		}
	}
	if err != nil {
		if stderrors.Is(err, io.EOF) {
			return io.EOF
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return m.deviceFailed(errors.Wrap(err, errors.ErrIO, "read input"))
	}
	return nil
}

// processInput dispatches every terminated line in the input buffer and moves
// the unterminated remainder to the front. A full buffer without a terminator
// is dropped and reported; the bytes read afterwards start a new line.
func (m *Menu[S]) processInput(ctx context.Context) error {
	start := 0
	for {
		idx := bytes.IndexByte(m.input[start:m.inputLen], '\n')
		if idx < 0 {
			break
		}
		line := m.input[start : start+idx]
		start += idx + 1

		if err := m.handleLine(ctx, line); err != nil {
			return err
		}
	}

	if start > 0 {
		m.inputLen = copy(m.input, m.input[start:m.inputLen])
	}
	if m.inputLen < len(m.input) {
		return nil
	}

	m.inputLen = 0
	m.log.Warn().Int("capacity", len(m.input)).Msg("Input line overflowed buffer")
	overflow := errors.New(errors.ErrBufferOverflow, "input buffer overflow").
		WithDetail("buffer", "input").
		WithDetail("capacity", len(m.input))
	if err := m.report(ctx, overflow); err != nil {
		return err
	}
	if err := m.out.Flush(ctx); err != nil {
		return m.deviceFailed(err)
	}
	return nil
}

func (m *Menu[S]) handleLine(ctx context.Context, raw []byte) error {
	if line := trimSpace(raw); len(line) > 0 {
		if err := m.dispatch(ctx, line); err != nil {
			return err
		}
	}
	return m.finishLine(ctx)
}

func (m *Menu[S]) finishLine(ctx context.Context) error {
	if err := m.writePrompt(ctx); err != nil {
		return err
	}
	if err := m.out.Flush(ctx); err != nil {
		return m.deviceFailed(err)
	}
	return nil
}

func (m *Menu[S]) dispatch(ctx context.Context, line []byte) error {
	if !utf8.Valid(line) {
		return m.report(ctx, errors.New(errors.ErrInvalidInput, "input is not valid UTF-8"))
	}

	name, args := parseLine(string(line))
	cmd, err := m.commands.Get(name)
	if err != nil {
		m.log.Debug().Str("command", name).Msg("Unknown command")
		return m.report(ctx, errors.Newf(errors.ErrUnknownCommand, "unknown command %q", name).
			WithDetail("command", name))
	}

	text, hasArgs := args.Value()
	logging.LogDispatch(m.log, name, text, hasArgs)

	err = m.execute(ctx, cmd, args)
	if err == nil {
		return nil
	}
	if errors.IsTerminal(err) {
		return m.deviceFailed(err)
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	var menuErr *errors.MenuError
	if !stderrors.As(err, &menuErr) {
		err = errors.Wrapf(err, errors.ErrCommandFailed, "command %q failed", name).
			WithDetail("command", name)
	}
	m.log.Warn().Err(err).Str("command", name).Msg("Command failed")
	return m.report(ctx, err)
}

func (m *Menu[S]) execute(ctx context.Context, cmd Command[S], args Args) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf(errors.ErrCommandFailed, "command %q panicked: %v", cmd.Name(), r).
				WithDetail("command", cmd.Name())
		}
	}()
	return cmd.Execute(ctx, args, m.out, m.state)
}

// report writes err as an "Error: ..." line after whatever the command already
// wrote. A report that cannot fit even after a flush is dropped.
func (m *Menu[S]) report(ctx context.Context, err error) error {
	msg := reportPrefix + err.Error()
	werr := m.out.FlushRetry(ctx, func() error {
		return m.out.Writeln(msg)
	})
	if werr == nil {
		return nil
	}
	if errors.IsTerminal(werr) {
		return m.deviceFailed(werr)
	}
	m.log.Error().Err(werr).Str("report", msg).Msg("Dropped error report")
	return nil
}

func (m *Menu[S]) writePrompt(ctx context.Context) error {
	if m.prompt == "" {
		return nil
	}
	err := m.out.FlushRetry(ctx, func() error {
		return m.out.WriteString(m.prompt)
	})
	if err == nil {
		return nil
	}
	if errors.IsTerminal(err) {
		return m.deviceFailed(err)
	}
	m.log.Error().Err(err).Msg("Dropped prompt")
	return nil
}

func (m *Menu[S]) deviceFailed(err error) error {
	m.log.Error().Err(err).Msg("Device failed")
	return err
}
