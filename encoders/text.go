package encoders

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/reusee/mpl/mplang"
)

// TextEncoder writes the numbered human-readable listing, one token per
// line: index -> file:line:col [Token].
type TextEncoder struct {
	writer *bufio.Writer
	n      int
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{
		writer: bufio.NewWriter(w),
	}
}

func (e *TextEncoder) EncodeToken(token *mplang.Token) error {
	e.n++
	file := ""
	if token.Pos.Source != nil {
		file = token.Pos.Source.Name
	}
	_, err := fmt.Fprintf(e.writer, "%d -> %s:%d:%d %s\n",
		e.n, file, token.Pos.Line, token.Pos.Column, token)
	return err
}

func (e *TextEncoder) EncodeError(err error) error {
	msg := err.Error()
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	_, werr := e.writer.WriteString(msg)
	return werr
}

func (e *TextEncoder) Close() error {
	return e.writer.Flush()
}
