package encoders

import (
	"encoding/json"
	"io"

	"github.com/reusee/mpl/mplang"
)

// JSONEncoder writes a stream of records, one JSON object per line.
type JSONEncoder struct {
	encoder *json.Encoder
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{
		encoder: json.NewEncoder(w),
	}
}

func (e *JSONEncoder) EncodeToken(token *mplang.Token) error {
	return e.encoder.Encode(newTokenRecord(token))
}

func (e *JSONEncoder) EncodeError(err error) error {
	return e.encoder.Encode(errorRecord{
		Error: err.Error(),
	})
}

func (e *JSONEncoder) Close() error {
	return nil
}
