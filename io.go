package main

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/peterh/liner"
)

// LineReader reads one line of input, presenting prompt to the user
// however it sees fit. It returns io.EOF once the session's input is over.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

type ioCore struct {
	in      *bufio.Reader
	lines   LineReader
	out     *bufio.Writer
	closers []io.Closer
}

// Close flushes any buffered output, then closes any resources held by
// the session, e.g. a terminal line editor.
func (ioc *ioCore) Close() (err error) {
	if ioc.out != nil {
		err = ioc.out.Flush()
	}
	if cerr := ioc.release(); err == nil {
		err = cerr
	}
	return err
}

// release closes held resources without touching output, for a session
// whose Run is still blocked on input and so still owns the writer.
func (ioc *ioCore) release() (err error) {
	for i := len(ioc.closers) - 1; i >= 0; i-- {
		if cerr := ioc.closers[i].Close(); err == nil {
			err = cerr
		}
	}
	ioc.closers = nil
	return err
}

func (calc *Calc) readLine() string {
	if calc.lines == nil {
		calc.writeString(calc.prompt)
	}
	calc.haltif(calc.out.Flush())

	if calc.lines != nil {
		line, err := calc.lines.ReadLine(calc.prompt)
		calc.haltif(err)
		return line
	}

	line, err := calc.in.ReadString('\n')
	if isEOF(err) && line != "" {
		// a final line without a line feed is still a line
		err = nil
	}
	calc.haltif(err)
	return line
}

func (calc *Calc) writeString(s string) {
	if _, err := io.WriteString(calc.out, s); err != nil {
		calc.halt(err)
	}
}

func isEOF(err error) bool { return errors.Is(err, io.EOF) }

// linerReader reads lines from a terminal with line editing and an
// in-memory history; ctrl+c ends the session just like end of input.
type linerReader struct{ *liner.State }

func newLinerReader() linerReader {
	ln := liner.NewLiner()
	ln.SetCtrlCAborts(true)
	return linerReader{ln}
}

func (lr linerReader) ReadLine(prompt string) (string, error) {
	line, err := lr.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", io.EOF
	}
	if err == nil && strings.TrimSpace(line) != "" {
		lr.AppendHistory(line)
	}
	return line, err
}
