package logging

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestLogDispatch(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	LogDispatch(logger, "hello", "Ada", true)

	output := buf.String()
	assert.Contains(t, output, `"command":"hello"`)
	assert.Contains(t, output, `"args":"Ada"`)
	assert.Contains(t, output, "Dispatching command")
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	logger := GetLogger("menu")
	logger.Info().Msg("test message")

	assert.Contains(t, buf.String(), `"component":"menu"`)
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	logger := WithFields(map[string]interface{}{
		"session": "127.0.0.1:4000",
		"lines":   3,
	})
	logger.Info().Msg("test message with fields")

	output := buf.String()
	assert.Contains(t, output, `"session":"127.0.0.1:4000"`)
	assert.Contains(t, output, `"lines":3`)
}

func TestLogDuration(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	start := time.Now().Add(-5 * time.Second)
	LogDuration(start, "test-operation")

	output := buf.String()
	assert.Contains(t, output, "test-operation")
	assert.Contains(t, output, "duration")
	assert.True(t, strings.Contains(output, "5") || strings.Contains(output, "5000"))
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	done := LogOperationStart(logger, "session")
	done()

	output := buf.String()
	assert.Contains(t, output, "Operation started")
	assert.Contains(t, output, "Operation completed")
}

func TestMust_NoError(t *testing.T) {
	assert.NotPanics(t, func() {
		Must(nil, "this should not panic")
	})
}

func TestMust_WithError(t *testing.T) {
	if os.Getenv("BE_CRASHER") == "1" {
		Must(errors.New("test error"), "expected exit")
		return
	}

	cmd := os.Args[0]
	args := []string{"-test.run=TestMust_WithError"}
	env := append(os.Environ(), "BE_CRASHER=1")

	proc := &os.ProcAttr{
		Env:   env,
		Files: []*os.File{os.Stdin, os.Stdout, os.Stderr},
	}

	process, err := os.StartProcess(cmd, append([]string{cmd}, args...), proc)
	if err != nil {
		t.Fatal(err)
	}

	state, err := process.Wait()
	if err != nil {
		t.Fatal(err)
	}

	assert.False(t, state.Success(), "process should have exited with error")
}
