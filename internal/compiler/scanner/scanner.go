package scanner

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/arnavsurve/lox/internal/compiler/token"
)

// state is the lexeme class currently being accumulated. At most one class
// is open at any time; the scanner returns to idle after closing a lexeme.
type state int

const (
	idle state = iota
	inString
	inNumber
	inIdentifier
)

// Scanner converts Lox source text into an ordered token sequence in a
// single forward pass. The source is processed as a raw byte sequence with
// each byte reinterpreted as one character; multi-byte UTF-8 sequences are
// not decoded.
type Scanner struct {
	source string
	offset int
	tokens []token.Token
}

func NewScanner(source string) *Scanner {
	return &Scanner{source: source}
}

// Scan is a convenience wrapper around NewScanner(source).Scan().
func Scan(source string) ([]token.Token, error) {
	return NewScanner(source).Scan()
}

// Scan tokenizes the owned source buffer. On success it returns the complete
// token sequence terminated by a single EOF token. If any lexical errors were
// encountered the token sequence is discarded and the returned error carries
// one "[line:column] Error: message" line per error, newline-joined, in
// discovery order. Errors never abort the pass early; the whole buffer is
// always scanned so that every diagnostic is reported in one call.
//
// Scan consumes the Scanner: it drains the token sequence it built, so a
// Scanner must not be reused after the call.
func (s *Scanner) Scan() ([]token.Token, error) {
	// Ensure the final lexeme is properly closed. Without the trailing
	// blank, an identifier or number at the very end of the source would
	// never be pushed to the result.
	s.source += " "

	var (
		errs       []string
		st         state
		escapeNext bool   // only meaningful while st == inString
		start      int    // start offset of the open lexeme
		buf        []byte // accumulated characters of the open lexeme
	)

	for s.offset < len(s.source) {
		c := s.source[s.offset]
		current := s.offset
		s.offset++

		if st == inString {
			if escapeNext {
				buf = append(buf, c)
				escapeNext = false
				continue
			}
			if c == '"' {
				st = idle
				s.tokens = append(s.tokens, token.Token{Type: token.TokenString, Literal: string(buf)})
				buf = buf[:0]
				continue
			}
			if c == '\\' {
				escapeNext = true
				continue
			}
			buf = append(buf, c)
			continue
		}

		if st == inNumber {
			if isDigit(c) || c == '.' {
				buf = append(buf, c)
				continue
			}

			st = idle
			lit := string(buf)
			buf = buf[:0]

			if num, err := strconv.ParseFloat(lit, 64); err == nil {
				s.tokens = append(s.tokens, token.Token{Type: token.TokenNumber, Number: num})
			} else {
				errs = append(errs, s.report(fmt.Sprintf("Invalid number '%s'", lit), start))
			}
			// c closed the lexeme but has not been consumed for lexing;
			// fall through and re-examine it below.
		}

		if st == inIdentifier {
			if isLetter(c) || isDigit(c) {
				buf = append(buf, c)
				continue
			}

			st = idle
			lit := string(buf)
			buf = buf[:0]

			s.tokens = append(s.tokens, token.Token{Type: token.LookupIdent(lit), Literal: lit})
			// Same as numbers: re-examine the closing character below.
		}

		if isWhitespace(c) {
			continue
		}

		switch c {
		case '(':
			s.tokens = append(s.tokens, token.Token{Type: token.TokenLParen})
		case ')':
			s.tokens = append(s.tokens, token.Token{Type: token.TokenRParen})
		case '{':
			s.tokens = append(s.tokens, token.Token{Type: token.TokenLBrace})
		case '}':
			s.tokens = append(s.tokens, token.Token{Type: token.TokenRBrace})
		case ',':
			s.tokens = append(s.tokens, token.Token{Type: token.TokenComma})
		case '.':
			s.tokens = append(s.tokens, token.Token{Type: token.TokenDot})
		case '-':
			s.tokens = append(s.tokens, token.Token{Type: token.TokenMinus})
		case '+':
			s.tokens = append(s.tokens, token.Token{Type: token.TokenPlus})
		case ';':
			s.tokens = append(s.tokens, token.Token{Type: token.TokenSemicolon})
		case '*':
			s.tokens = append(s.tokens, token.Token{Type: token.TokenStar})
		case '"':
			start = current
			st = inString
		case '!', '=', '<', '>':
			// Maximal munch with one character of lookahead: prefer the
			// two-character operator when the next character is '='.
			if s.offset < len(s.source) && s.source[s.offset] == '=' {
				s.offset++
				switch c {
				case '!':
					s.tokens = append(s.tokens, token.Token{Type: token.TokenBangEqual})
				case '=':
					s.tokens = append(s.tokens, token.Token{Type: token.TokenEqualEqual})
				case '<':
					s.tokens = append(s.tokens, token.Token{Type: token.TokenLessEqual})
				case '>':
					s.tokens = append(s.tokens, token.Token{Type: token.TokenGreaterEqual})
				}
			} else {
				switch c {
				case '!':
					s.tokens = append(s.tokens, token.Token{Type: token.TokenBang})
				case '=':
					s.tokens = append(s.tokens, token.Token{Type: token.TokenEqual})
				case '<':
					s.tokens = append(s.tokens, token.Token{Type: token.TokenLess})
				case '>':
					s.tokens = append(s.tokens, token.Token{Type: token.TokenGreater})
				}
			}
		case '/':
			if s.offset < len(s.source) && s.source[s.offset] == '/' {
				// Single line comment: skip up to (not including) the
				// next newline or end of input.
				for s.offset < len(s.source) && s.source[s.offset] != '\n' {
					s.offset++
				}
			} else {
				s.tokens = append(s.tokens, token.Token{Type: token.TokenSlash})
			}
		default:
			switch {
			case isDigit(c):
				start = current
				st = inNumber
				buf = append(buf, c)
			case isLetter(c):
				start = current
				st = inIdentifier
				buf = append(buf, c)
			default:
				errs = append(errs, s.report(fmt.Sprintf("Invalid token '%c'", c), current))
			}
		}
	}

	if st == inString {
		errs = append(errs, s.report(fmt.Sprintf("Unterminated string %s", string(buf)), start))
	}

	s.tokens = append(s.tokens, token.Token{Type: token.TokenEOF})

	if len(errs) > 0 {
		s.tokens = nil
		return nil, errors.New(strings.Join(errs, "\n"))
	}

	tokens := s.tokens
	s.tokens = nil
	return tokens, nil
}

// location re-walks the buffer from the start, counting characters and
// newlines, to turn an absolute byte offset into a 1-indexed (line, column)
// pair. O(n) per call, which is fine for the rare diagnostic path.
func (s *Scanner) location(offset int) (line, column int) {
	line, column = 1, 1
	for i := 0; i < offset; i++ {
		if s.source[i] == '\n' {
			line++
			column = 1
		}
		column++
	}
	return line, column
}

func (s *Scanner) report(message string, offset int) string {
	line, column := s.location(offset)
	return fmt.Sprintf("[%d:%d] Error: %s", line, column, message)
}

func isLetter(ch byte) bool {
	return unicode.IsLetter(rune(ch))
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isWhitespace(ch byte) bool {
	return unicode.IsSpace(rune(ch))
}
