package lineReader

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rotisserie/eris"
	"github.com/t-kuni/jobconf/domain/system/lineReader"
)

// NewReader returns the interactive reader when in is a terminal and the plain one otherwise.
func NewReader(in io.Reader, out io.Writer) lineReader.Reader {
	if f, ok := in.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return NewTerminalReader(f, out)
	}
	return NewPlainReader(in, out)
}

// PlainReader reads newline terminated answers from a pipe or file.
// A line ending in a Tab byte is a completion request: a single candidate becomes
// the start of the answer and the next line is appended to it, several candidates
// are listed.
type PlainReader struct {
	in  *bufio.Reader
	out io.Writer

	// pending is a read still running after its caller was cancelled.
	pending chan rawLine
}

type rawLine struct {
	text string
	err  error
}

func NewPlainReader(in io.Reader, out io.Writer) *PlainReader {
	return &PlainReader{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (r *PlainReader) ReadLine(ctx context.Context, prompt string, complete lineReader.Completer) (string, error) {
	fmt.Fprint(r.out, prompt)

	buffer := ""
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		raw, err := r.readRaw(ctx)
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return "", eris.Wrap(err, "failed to read input")
			}
			if raw == "" && buffer == "" {
				return "", io.EOF
			}
		}

		line := buffer + strings.TrimRight(raw, "\r\n")
		if complete == nil || !strings.HasSuffix(line, "\t") {
			return line, nil
		}

		buffer = strings.TrimSuffix(line, "\t")
		result, err := complete(buffer)
		switch {
		case err != nil:
			fmt.Fprintf(r.out, "completion failed: %s\n", err)
		case result.Descended:
			buffer = result.Candidates[0]
		case len(result.Candidates) == 0:
			fmt.Fprintln(r.out, "no matches")
		default:
			for _, candidate := range result.Candidates {
				fmt.Fprintln(r.out, candidate)
			}
		}
		fmt.Fprint(r.out, prompt+buffer)
	}
}

// readRaw returns as soon as ctx is done, even while the underlying read blocks.
func (r *PlainReader) readRaw(ctx context.Context) (string, error) {
	if r.pending == nil {
		ch := make(chan rawLine, 1)
		go func() {
			text, err := r.in.ReadString('\n')
			ch <- rawLine{text: text, err: err}
		}()
		r.pending = ch
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line := <-r.pending:
		r.pending = nil
		return line.text, line.err
	}
}
