package mplang

import (
	"fmt"
	"strconv"
	"strings"
)

// Lexer produces the flat token sequence for one file. Each run owns its
// own Scanner and position, nothing is shared across files.
type Lexer struct {
	src     *Source
	scanner *Scanner
}

func NewLexer(src *Source) *Lexer {
	return &Lexer{
		src:     src,
		scanner: NewScanner(src),
	}
}

func LexSource(src *Source) ([]*Token, error) {
	return NewLexer(src).Tokenize()
}

// Tokenize runs the scan loop to the end of input or the first error.
// Strategy order is significant: trivia, end of input, string literal,
// single-character symbol, number, keyword/identifier.
func (l *Lexer) Tokenize() ([]*Token, error) {
	var tokens []*Token
	for {
		if err := l.skipTrivia(); err != nil {
			return nil, err
		}

		pos := l.scanner.Pos()

		if l.scanner.AtEnd() {
			tokens = append(tokens, &Token{Kind: TokenEOF, Pos: pos})
			return tokens, nil
		}

		str, ok, err := l.tryString()
		if err != nil {
			return nil, err
		}
		if ok {
			tokens = append(tokens, &Token{Kind: TokenStr, Text: str, Pos: pos})
			continue
		}

		if kind, text, ok := l.trySymbol(); ok {
			tokens = append(tokens, &Token{Kind: kind, Text: text, Pos: pos})
			continue
		}

		if lexeme, ok := l.tryNumber(); ok {
			token, err := numberToken(lexeme, pos)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, token)
			continue
		}

		word := l.nextWord()
		if kind, ok := Classify(word); ok {
			tokens = append(tokens, &Token{Kind: kind, Text: word, Pos: pos})
			continue
		}
		if isValidIdent(word) {
			tokens = append(tokens, &Token{Kind: TokenIdent, Text: word, Pos: pos})
			continue
		}
		return nil, WithPos(fmt.Errorf("%w [%s]", ErrUnknownToken, word), pos)
	}
}

// skipTrivia consumes whitespace and comments until neither applies. A
// block comment not followed by whitespace must not shift the next token,
// so the whole pass repeats until no progress is made.
func (l *Lexer) skipTrivia() error {
	for {
		progress := false

		for {
			cp := l.scanner.Save()
			r := l.scanner.Next()
			if r != ' ' && r != '\t' && r != '\r' && r != '\n' {
				l.scanner.Restore(cp)
				break
			}
			progress = true
		}

		if la, ok := l.scanner.Peek(2); ok && la == "//" {
			l.scanner.Skip(2)
			for !l.scanner.AtEnd() {
				if l.scanner.Next() == '\n' {
					break
				}
			}
			progress = true
		}

		if la, ok := l.scanner.Peek(2); ok && la == "/*" {
			l.scanner.Skip(2)
			for {
				if la, ok := l.scanner.Peek(2); ok && la == "*/" {
					l.scanner.Skip(2)
					break
				}
				if l.scanner.AtEnd() {
					return WithPos(ErrUnclosedComment, l.scanner.Pos())
				}
				l.scanner.Next()
			}
			progress = true
		}

		if !progress {
			return nil
		}
	}
}

// tryString recognizes a double-quoted literal, taken verbatim between the
// quotes. No escape processing.
func (l *Lexer) tryString() (string, bool, error) {
	cp := l.scanner.Save()
	if l.scanner.Next() != '"' {
		l.scanner.Restore(cp)
		return "", false, nil
	}
	var sb strings.Builder
	for {
		r := l.scanner.Next()
		if r == 0 || r == '\n' || r == '\r' {
			return "", false, WithPos(ErrUnclosedString, l.scanner.Pos())
		}
		if r == '"' {
			return sb.String(), true, nil
		}
		sb.WriteRune(r)
	}
}

func (l *Lexer) trySymbol() (TokenKind, string, bool) {
	cp := l.scanner.Save()
	text := string(l.scanner.Next())
	if kind, ok := Classify(text); ok {
		return kind, text, true
	}
	l.scanner.Restore(cp)
	return TokenInvalid, "", false
}

// tryNumber recognizes a maximal run of digits and dots. The lexeme is
// handed to numberToken for the dot-presence parse rule.
func (l *Lexer) tryNumber() (string, bool) {
	cp := l.scanner.Save()
	r := l.scanner.Next()
	if !isDigitOrDot(r) {
		l.scanner.Restore(cp)
		return "", false
	}
	var sb strings.Builder
	sb.WriteRune(r)
	for {
		cp := l.scanner.Save()
		r := l.scanner.Next()
		if !isDigitOrDot(r) {
			l.scanner.Restore(cp)
			break
		}
		sb.WriteRune(r)
	}
	return sb.String(), true
}

func numberToken(lexeme string, pos Pos) (*Token, error) {
	if strings.ContainsRune(lexeme, '.') {
		f, err := strconv.ParseFloat(lexeme, 64)
		if err != nil {
			return nil, WithPos(fmt.Errorf("%w [%s]", ErrInvalidNumber, lexeme), pos)
		}
		return &Token{Kind: TokenFloat, Text: lexeme, Float: f, Pos: pos}, nil
	}
	n, err := strconv.ParseInt(lexeme, 10, 32)
	if err != nil {
		return nil, WithPos(fmt.Errorf("%w [%s]", ErrInvalidNumber, lexeme), pos)
	}
	return &Token{Kind: TokenInteger, Text: lexeme, Int: int32(n), Pos: pos}, nil
}

// nextWord accumulates runes up to whitespace, end of input, or any rune
// the classifier knows as a token of its own.
func (l *Lexer) nextWord() string {
	var sb strings.Builder
	for {
		cp := l.scanner.Save()
		r := l.scanner.Next()
		if r == 0 || r == ' ' || r == '\t' || r == '\r' || r == '\n' {
			l.scanner.Restore(cp)
			break
		}
		if _, ok := Classify(string(r)); ok {
			l.scanner.Restore(cp)
			break
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func isDigitOrDot(r rune) bool {
	return r == '.' || (r >= '0' && r <= '9')
}

func isValidIdent(word string) bool {
	if word == "" {
		return false
	}
	for i, r := range word {
		if i == 0 {
			if !isASCIILetter(r) {
				return false
			}
			continue
		}
		if !isASCIILetter(r) && !(r >= '0' && r <= '9') && r != '_' {
			return false
		}
	}
	return true
}

func isASCIILetter(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}
