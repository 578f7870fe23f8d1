package encoders

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/reusee/mpl/mplang"
	"github.com/stretchr/testify/assert"
	backend "github.com/ugorji/go/codec"
)

func testTokens(t *testing.T) []*mplang.Token {
	t.Helper()
	tokens, err := mplang.LexSource(mplang.NewSource("test.mpl", `let x = 42`))
	assert.NoError(t, err)
	return tokens
}

func TestTextEncoder(t *testing.T) {
	buf := new(bytes.Buffer)
	enc, err := New(buf, Text)
	assert.NoError(t, err)

	for _, token := range testTokens(t) {
		assert.NoError(t, enc.EncodeToken(token))
	}
	assert.NoError(t, enc.Close())

	expected := `1 -> test.mpl:1:1 [Let]
2 -> test.mpl:1:5 [Ident x]
3 -> test.mpl:1:7 [Equal]
4 -> test.mpl:1:9 [Integer 42]
5 -> test.mpl:1:11 [Eof]
`
	assert.Equal(t, expected, buf.String())
}

func TestJSONEncoder(t *testing.T) {
	buf := new(bytes.Buffer)
	enc, err := New(buf, JSON)
	assert.NoError(t, err)

	for _, token := range testTokens(t) {
		assert.NoError(t, enc.EncodeToken(token))
	}
	assert.NoError(t, enc.Close())

	decoder := json.NewDecoder(buf)
	var records []tokenRecord
	for decoder.More() {
		var record tokenRecord
		assert.NoError(t, decoder.Decode(&record))
		records = append(records, record)
	}

	assert.Len(t, records, 5)
	assert.Equal(t, tokenRecord{
		File: "test.mpl",
		Line: 1,
		Col:  1,
		Kind: "Let",
		Text: "let",
	}, records[0])
	assert.Equal(t, tokenRecord{
		File: "test.mpl",
		Line: 1,
		Col:  9,
		Kind: "Integer",
		Text: "42",
		Int:  42,
	}, records[3])
	assert.Equal(t, "Eof", records[4].Kind)
}

func TestJSONEncoderFloatValue(t *testing.T) {
	buf := new(bytes.Buffer)
	enc, err := New(buf, JSON)
	assert.NoError(t, err)

	tokens, err := mplang.LexSource(mplang.NewSource("test.mpl", `3.14`))
	assert.NoError(t, err)
	for _, token := range tokens {
		assert.NoError(t, enc.EncodeToken(token))
	}
	assert.NoError(t, enc.Close())

	var record tokenRecord
	assert.NoError(t, json.NewDecoder(buf).Decode(&record))
	assert.Equal(t, "Float", record.Kind)
	assert.Equal(t, 3.14, record.Float)
}

func TestMsgpackEncoder(t *testing.T) {
	buf := new(bytes.Buffer)
	enc, err := New(buf, Msgpack)
	assert.NoError(t, err)

	for _, token := range testTokens(t) {
		assert.NoError(t, enc.EncodeToken(token))
	}
	assert.NoError(t, enc.Close())

	h := new(backend.MsgpackHandle)
	decoder := backend.NewDecoder(buf, h)
	var records []tokenRecord
	for {
		var record tokenRecord
		if err := decoder.Decode(&record); err != nil {
			break
		}
		records = append(records, record)
	}

	assert.Len(t, records, 5)
	assert.Equal(t, "Integer", records[3].Kind)
	assert.Equal(t, "42", records[3].Text)
	assert.Equal(t, int32(42), records[3].Int)
}

func testLexError(t *testing.T) error {
	t.Helper()
	_, err := mplang.LexSource(mplang.NewSource("test.mpl", `let s = "oops`))
	assert.Error(t, err)
	return err
}

func TestTextEncoderError(t *testing.T) {
	buf := new(bytes.Buffer)
	enc, err := New(buf, Text)
	assert.NoError(t, err)

	assert.NoError(t, enc.EncodeError(testLexError(t)))
	assert.NoError(t, enc.Close())

	out := buf.String()
	assert.Contains(t, out, "unclosed string at test.mpl:1:14")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestJSONEncoderError(t *testing.T) {
	buf := new(bytes.Buffer)
	enc, err := New(buf, JSON)
	assert.NoError(t, err)

	assert.NoError(t, enc.EncodeError(testLexError(t)))
	assert.NoError(t, enc.Close())

	var record errorRecord
	assert.NoError(t, json.NewDecoder(buf).Decode(&record))
	assert.Contains(t, record.Error, "unclosed string")
}

func TestMsgpackEncoderError(t *testing.T) {
	buf := new(bytes.Buffer)
	enc, err := New(buf, Msgpack)
	assert.NoError(t, err)

	assert.NoError(t, enc.EncodeError(testLexError(t)))
	assert.NoError(t, enc.Close())

	h := new(backend.MsgpackHandle)
	var record errorRecord
	assert.NoError(t, backend.NewDecoder(buf, h).Decode(&record))
	assert.Contains(t, record.Error, "unclosed string")
}

func TestUnsupportedFormat(t *testing.T) {
	_, err := New(new(bytes.Buffer), "yaml")
	assert.Error(t, err)
}

func TestSupportedFormats(t *testing.T) {
	assert.Equal(t, []string{Text, JSON, Msgpack}, SupportedFormats())
}
