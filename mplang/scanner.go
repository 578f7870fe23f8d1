package mplang

// Scanner is a cursor over one file's text. Recognizers probe it
// speculatively: take a Checkpoint, consume, and Restore when the guess
// does not pan out.
type Scanner struct {
	text []rune
	i    int
	pos  Pos
}

func NewScanner(src *Source) *Scanner {
	return &Scanner{
		text: []rune(src.Content),
		pos: Pos{
			Source: src,
			Line:   1,
			Column: 1,
		},
	}
}

// Checkpoint is an opaque snapshot of the cursor.
type Checkpoint struct {
	i   int
	pos Pos
}

func (s *Scanner) Save() Checkpoint {
	return Checkpoint{
		i:   s.i,
		pos: s.pos,
	}
}

func (s *Scanner) Restore(cp Checkpoint) {
	s.i = cp.i
	s.pos = cp.pos
}

func (s *Scanner) Pos() Pos {
	return s.pos
}

func (s *Scanner) AtEnd() bool {
	return s.i >= len(s.text)
}

// Next consumes the current rune, NUL at end of input. A newline bumps the
// line and resets the column to 1.
func (s *Scanner) Next() rune {
	if s.i >= len(s.text) {
		return 0
	}
	r := s.text[s.i]
	s.i++
	if r == '\n' {
		s.pos.Line++
		s.pos.Column = 1
	} else {
		s.pos.Column++
	}
	return r
}

func (s *Scanner) Skip(n int) {
	for range n {
		s.Next()
	}
}

// Peek is non-consuming lookahead of exactly n runes, ok is false when
// fewer remain.
func (s *Scanner) Peek(n int) (string, bool) {
	if s.i+n > len(s.text) {
		return "", false
	}
	return string(s.text[s.i : s.i+n]), true
}
