package encoders

import (
	"fmt"
	"io"

	"github.com/reusee/mpl/mplang"
)

const (
	Text    = "text"
	JSON    = "json"
	Msgpack = "msgpack"
)

// Encoder writes a token listing in one of the supported formats.
type Encoder interface {
	EncodeToken(token *mplang.Token) error
	EncodeError(err error) error

	io.Closer
}

// Get list of supported format names.
func SupportedFormats() []string {
	return []string{Text, JSON, Msgpack}
}

// Create new encoder instance by format name.
func New(w io.Writer, format string) (Encoder, error) {
	switch format {
	case Text:
		return NewTextEncoder(w), nil
	case JSON:
		return NewJSONEncoder(w), nil
	case Msgpack:
		return NewMsgpackEncoder(w), nil
	}
	return nil, fmt.Errorf("unsupported format: %q", format)
}

type tokenRecord struct {
	File  string  `json:"file" codec:"file"`
	Line  int     `json:"line" codec:"line"`
	Col   int     `json:"col" codec:"col"`
	Kind  string  `json:"kind" codec:"kind"`
	Text  string  `json:"text,omitempty" codec:"text"`
	Int   int32   `json:"int,omitempty" codec:"int,omitempty"`
	Float float64 `json:"float,omitempty" codec:"float,omitempty"`
}

type errorRecord struct {
	Error string `json:"error" codec:"error"`
}

func newTokenRecord(token *mplang.Token) tokenRecord {
	record := tokenRecord{
		Line: token.Pos.Line,
		Col:  token.Pos.Column,
		Kind: token.Kind.String(),
		Text: token.Text,
	}
	if token.Pos.Source != nil {
		record.File = token.Pos.Source.Name
	}
	switch token.Kind {
	case mplang.TokenInteger:
		record.Int = token.Int
	case mplang.TokenFloat:
		record.Float = token.Float
	}
	return record
}
