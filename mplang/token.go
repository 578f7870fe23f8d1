package mplang

import (
	"fmt"
	"strconv"
)

type Token struct {
	Kind  TokenKind
	Text  string
	Int   int32
	Float float64
	Pos   Pos
}

type TokenKind uint8

const (
	TokenInvalid TokenKind = iota

	// keywords
	TokenImport
	TokenFn
	TokenMain
	TokenPrint
	TokenPrintln
	TokenCall
	TokenToStr
	TokenLocal
	TokenTrue
	TokenFalse
	TokenIntType
	TokenFloatType
	TokenLet
	TokenFor
	TokenTo
	TokenStep
	TokenNext
	TokenBreak
	TokenNl

	// symbols
	TokenLBracket
	TokenRBracket
	TokenLParen
	TokenRParen
	TokenLBrace
	TokenRBrace
	TokenComma
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenColon
	TokenDot
	TokenEqual

	// literals
	TokenIdent
	TokenStr
	TokenInteger
	TokenFloat

	TokenEOF
)

type Pos struct {
	Source *Source
	Line   int
	Column int
}

var lexemeKinds = map[string]TokenKind{
	"import":  TokenImport,
	"fn":      TokenFn,
	"main":    TokenMain,
	"print":   TokenPrint,
	"println": TokenPrintln,
	"call":    TokenCall,
	"to_str":  TokenToStr,
	"local":   TokenLocal,
	"true":    TokenTrue,
	"false":   TokenFalse,
	"int":     TokenIntType,
	"float":   TokenFloatType,
	"let":     TokenLet,
	"for":     TokenFor,
	"to":      TokenTo,
	"step":    TokenStep,
	"next":    TokenNext,
	"break":   TokenBreak,
	"nl":      TokenNl,

	"[": TokenLBracket,
	"]": TokenRBracket,
	"(": TokenLParen,
	")": TokenRParen,
	"{": TokenLBrace,
	"}": TokenRBrace,
	",": TokenComma,
	"+": TokenPlus,
	"-": TokenMinus,
	"*": TokenStar,
	"/": TokenSlash,
	":": TokenColon,
	".": TokenDot,
	"=": TokenEqual,
}

// Classify maps an exact lexeme spelling to its token kind. It is a pure
// table lookup so recognizers can probe it speculatively.
func Classify(lexeme string) (TokenKind, bool) {
	kind, ok := lexemeKinds[lexeme]
	return kind, ok
}

var kindNames = map[TokenKind]string{
	TokenInvalid:   "Invalid",
	TokenImport:    "Import",
	TokenFn:        "Fn",
	TokenMain:      "Main",
	TokenPrint:     "Print",
	TokenPrintln:   "Println",
	TokenCall:      "Call",
	TokenToStr:     "ToStr",
	TokenLocal:     "Local",
	TokenTrue:      "True",
	TokenFalse:     "False",
	TokenIntType:   "IntType",
	TokenFloatType: "FloatType",
	TokenLet:       "Let",
	TokenFor:       "For",
	TokenTo:        "To",
	TokenStep:      "Step",
	TokenNext:      "Next",
	TokenBreak:     "Break",
	TokenNl:        "Nl",
	TokenLBracket:  "LBracket",
	TokenRBracket:  "RBracket",
	TokenLParen:    "LParen",
	TokenRParen:    "RParen",
	TokenLBrace:    "LBrace",
	TokenRBrace:    "RBrace",
	TokenComma:     "Comma",
	TokenPlus:      "Plus",
	TokenMinus:     "Minus",
	TokenStar:      "Star",
	TokenSlash:     "Slash",
	TokenColon:     "Colon",
	TokenDot:       "Dot",
	TokenEqual:     "Equal",
	TokenIdent:     "Ident",
	TokenStr:       "Str",
	TokenInteger:   "Integer",
	TokenFloat:     "Float",
	TokenEOF:       "Eof",
}

func (k TokenKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("TokenKind(%d)", k)
}

func (t *Token) String() string {
	switch t.Kind {
	case TokenIdent:
		return fmt.Sprintf("[Ident %s]", t.Text)
	case TokenStr:
		return fmt.Sprintf("[Str %q]", t.Text)
	case TokenInteger:
		return fmt.Sprintf("[Integer %d]", t.Int)
	case TokenFloat:
		return fmt.Sprintf("[Float %s]", strconv.FormatFloat(t.Float, 'g', -1, 64))
	}
	return "[" + t.Kind.String() + "]"
}

// Equal is structural equality, position not included.
func (t *Token) Equal(o *Token) bool {
	if t.Kind != o.Kind {
		return false
	}
	switch t.Kind {
	case TokenIdent, TokenStr:
		return t.Text == o.Text
	case TokenInteger:
		return t.Int == o.Int
	case TokenFloat:
		return t.Float == o.Float
	}
	return true
}
