package calc

import (
	"strconv"
	"strings"
	"unicode"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokPow
	tokPercent
	tokBang
	tokLParen
	tokRParen
	tokComma
)

var tokenNames = map[tokenKind]string{
	tokEOF:     "end of input",
	tokNumber:  "number",
	tokIdent:   "identifier",
	tokPlus:    "'+'",
	tokMinus:   "'-'",
	tokStar:    "'*'",
	tokSlash:   "'/'",
	tokPow:     "'^'",
	tokPercent: "'%'",
	tokBang:    "'!'",
	tokLParen:  "'('",
	tokRParen:  "')'",
	tokComma:   "','",
}

func (k tokenKind) String() string { return tokenNames[k] }

type token struct {
	kind tokenKind
	text string
	num  float64
	pos  int
}

// glyphs maps the calculator's display symbols onto plain operators and names.
var glyphs = strings.NewReplacer("×", "*", "÷", "/", "π", "PI")

// normalize rewrites display glyphs. Standalone e is resolved by the
// constant table, so it needs no textual rewrite.
func normalize(expr string) string {
	return glyphs.Replace(expr)
}

// tokenize splits a normalized expression. Positions are rune offsets.
func tokenize(expr string) ([]token, error) {
	src := []rune(expr)
	var toks []token

	for i := 0; i < len(src); {
		r := src[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case isDigit(r) || r == '.':
			tok, next, err := scanNumber(src, i)
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
			i = next
		case isIdentStart(r):
			start := i
			for i < len(src) && isIdentPart(src[i]) {
				i++
			}
			toks = append(toks, token{kind: tokIdent, text: string(src[start:i]), pos: start})
		default:
			kind, width, ok := scanOperator(src, i)
			if !ok {
				return nil, &SyntaxError{Pos: i, Msg: "unexpected character " + strconv.QuoteRune(r)}
			}
			toks = append(toks, token{kind: kind, text: string(src[i : i+width]), pos: i})
			i += width
		}
	}

	return append(toks, token{kind: tokEOF, pos: len(src)}), nil
}

func scanOperator(src []rune, i int) (tokenKind, int, bool) {
	switch src[i] {
	case '+':
		return tokPlus, 1, true
	case '-':
		return tokMinus, 1, true
	case '*':
		if i+1 < len(src) && src[i+1] == '*' {
			return tokPow, 2, true
		}
		return tokStar, 1, true
	case '/':
		return tokSlash, 1, true
	case '^':
		return tokPow, 1, true
	case '%':
		return tokPercent, 1, true
	case '!':
		return tokBang, 1, true
	case '(':
		return tokLParen, 1, true
	case ')':
		return tokRParen, 1, true
	case ',':
		return tokComma, 1, true
	}
	return tokEOF, 0, false
}

// scanNumber reads a decimal literal with an optional exponent so that
// chained results such as 1.5e-7 parse back.
func scanNumber(src []rune, start int) (token, int, error) {
	i := start
	digits := 0
	for i < len(src) && isDigit(src[i]) {
		i++
		digits++
	}
	if i < len(src) && src[i] == '.' {
		i++
		for i < len(src) && isDigit(src[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return token{}, 0, &SyntaxError{Pos: start, Msg: "malformed number"}
	}

	if i < len(src) && (src[i] == 'e' || src[i] == 'E') {
		j := i + 1
		if j < len(src) && (src[j] == '+' || src[j] == '-') {
			j++
		}
		if j < len(src) && isDigit(src[j]) {
			for j < len(src) && isDigit(src[j]) {
				j++
			}
			i = j
		}
	}

	text := string(src[start:i])
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// out of range literals still parse to ±Inf
		if ne, ok := err.(*strconv.NumError); !ok || ne.Err != strconv.ErrRange {
			return token{}, 0, &SyntaxError{Pos: start, Msg: "malformed number " + strconv.Quote(text)}
		}
	}

	return token{kind: tokNumber, text: text, num: v, pos: start}, i, nil
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isIdentStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentPart(r rune) bool { return isIdentStart(r) || isDigit(r) }
