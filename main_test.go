package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_runSession(t *testing.T) {
	t.Run("end of input", func(t *testing.T) {
		var out bytes.Buffer
		calc := New(
			WithInput(strings.NewReader("1\n2\n+\n")),
			WithOutput(&out),
		)
		require.NoError(t, runSession(context.Background(), calc, time.Second))
		assert.Equal(t, lines(
			"Stack: [1.00]",
			"Stack: [1.00, 2.00]",
			"Stack: [3.00]",
		), out.String())
	})

	t.Run("canceled before start", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		calc := New(WithInput(strings.NewReader("1\n")))
		assert.NoError(t, runSession(ctx, calc, time.Second), "cancellation is not a failure")
	})

	t.Run("canceled while reading", func(t *testing.T) {
		pr, pw := io.Pipe()
		defer pw.Close()

		calc := New(WithInput(pr), WithBanner("hi\n"))

		ctx, cancel := context.WithCancel(context.Background())
		time.AfterFunc(10*time.Millisecond, cancel)

		start := time.Now()
		assert.NoError(t, runSession(ctx, calc, 20*time.Millisecond))
		assert.Less(t, time.Since(start), time.Second, "blocked input is abandoned")
	})

	t.Run("canceled while reading releases resources", func(t *testing.T) {
		pr, pw := io.Pipe()
		defer pw.Close()
		flr := &fakeLineReader{}
		calc := New(WithLineReader(blockingLineReader{pr, flr}))

		ctx, cancel := context.WithCancel(context.Background())
		time.AfterFunc(10*time.Millisecond, cancel)
		assert.NoError(t, runSession(ctx, calc, 20*time.Millisecond))
		assert.True(t, flr.closed, "expected line reader to be closed")
	})

	t.Run("write error", func(t *testing.T) {
		errBroken := errors.New("broken pipe")
		calc := New(
			WithInput(strings.NewReader("1\n")),
			WithOutput(errWriter{errBroken}),
		)
		err := runSession(context.Background(), calc, time.Second)
		assert.True(t, errors.Is(err, errBroken), "expected %v, got %v", errBroken, err)
	})
}

// blockingLineReader blocks reading r, closing through its fake.
type blockingLineReader struct {
	r io.Reader
	*fakeLineReader
}

func (blr blockingLineReader) ReadLine(prompt string) (string, error) {
	var buf [1]byte
	_, err := blr.r.Read(buf[:])
	if err != nil {
		return "", err
	}
	return string(buf[:]), nil
}
