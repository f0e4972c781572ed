package logio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	var out bytes.Buffer
	var log Logger
	log.SetOutput(&out)

	log.ErrorIf(nil)
	assert.Equal(t, 0, log.ExitCode())
	assert.Equal(t, "", out.String())

	log.ErrorIf(errors.New("boom"))
	assert.Equal(t, 1, log.ExitCode())

	log.Errorf("read %q failed", "stdin")
	log.ErrorIf(fmt.Errorf("rpncalc: %w", io.ErrUnexpectedEOF))
	assert.Equal(t, 1, log.ExitCode())

	assert.Equal(t, lines(
		"ERROR: boom",
		`ERROR: read "stdin" failed`,
		"ERROR: rpncalc: unexpected EOF",
	), out.String())
}

func TestLogger_noOutput(t *testing.T) {
	var log Logger
	log.Errorf("nowhere")
	assert.Equal(t, 1, log.ExitCode())
}

func TestLogger_brokenOutput(t *testing.T) {
	var log Logger
	log.SetOutput(brokenWriter{})
	log.Errorf("lost")
	assert.Equal(t, 2, log.ExitCode())
	log.Errorf("still lost")
	assert.Equal(t, 2, log.ExitCode(), "a broken stream outranks logged errors")
}

func lines(parts ...string) (s string) {
	for _, part := range parts {
		s += part + "\n"
	}
	return s
}

type brokenWriter struct{}

func (brokenWriter) Write(p []byte) (int, error) { return 0, io.ErrClosedPipe }
