package encoders

import (
	"io"

	"github.com/reusee/mpl/mplang"
	backend "github.com/ugorji/go/codec"
)

// MsgpackEncoder writes a stream of MSGPACK records.
type MsgpackEncoder struct {
	encoder *backend.Encoder
}

func NewMsgpackEncoder(w io.Writer) *MsgpackEncoder {
	h := new(backend.MsgpackHandle)
	return &MsgpackEncoder{
		encoder: backend.NewEncoder(w, h),
	}
}

func (e *MsgpackEncoder) EncodeToken(token *mplang.Token) error {
	return e.encoder.Encode(newTokenRecord(token))
}

func (e *MsgpackEncoder) EncodeError(err error) error {
	return e.encoder.Encode(errorRecord{
		Error: err.Error(),
	})
}

func (e *MsgpackEncoder) Close() error {
	return nil
}
