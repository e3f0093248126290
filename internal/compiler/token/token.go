package token

import "fmt"

type TokenType string

const (
	// Single character tokens
	TokenLParen    TokenType = "LPAREN"    // (
	TokenRParen    TokenType = "RPAREN"    // )
	TokenLBrace    TokenType = "LBRACE"    // {
	TokenRBrace    TokenType = "RBRACE"    // }
	TokenComma     TokenType = "COMMA"     // ,
	TokenDot       TokenType = "DOT"       // .
	TokenMinus     TokenType = "MINUS"     // -
	TokenPlus      TokenType = "PLUS"      // +
	TokenSemicolon TokenType = "SEMICOLON" // ;
	TokenSlash     TokenType = "SLASH"     // / (division)
	TokenStar      TokenType = "STAR"      // *

	// One or two character tokens
	TokenBang         TokenType = "BANG"          // !
	TokenBangEqual    TokenType = "BANG_EQUAL"    // !=
	TokenEqual        TokenType = "EQUAL"         // =
	TokenEqualEqual   TokenType = "EQUAL_EQUAL"   // ==
	TokenGreater      TokenType = "GREATER"       // >
	TokenGreaterEqual TokenType = "GREATER_EQUAL" // >=
	TokenLess         TokenType = "LESS"          // <
	TokenLessEqual    TokenType = "LESS_EQUAL"    // <=

	// Literals & Identifiers
	TokenString TokenType = "STRING" // "..."
	TokenNumber TokenType = "NUMBER" // 43, 1.5
	TokenIdent  TokenType = "IDENT"  // Identifier (e.g. variable name)

	// Keywords
	TokenAnd    TokenType = "AND"
	TokenClass  TokenType = "CLASS"
	TokenElse   TokenType = "ELSE"
	TokenFalse  TokenType = "FALSE"
	TokenFun    TokenType = "FUN"
	TokenFor    TokenType = "FOR"
	TokenIf     TokenType = "IF"
	TokenNil    TokenType = "NIL"
	TokenOr     TokenType = "OR"
	TokenPrint  TokenType = "PRINT"
	TokenReturn TokenType = "RETURN"
	TokenSuper  TokenType = "SUPER"
	TokenThis   TokenType = "THIS"
	TokenTrue   TokenType = "TRUE"
	TokenVar    TokenType = "VAR"
	TokenWhile  TokenType = "WHILE"

	// Special
	TokenEOF TokenType = "EOF"
)

// Token is one classified lexical unit. Literal holds the decoded string
// contents for TokenString and the spelling for TokenIdent and keywords;
// Number holds the parsed value for TokenNumber. Tokens carry no source
// position (positions are only used transiently for diagnostics).
type Token struct {
	Type    TokenType
	Literal string
	Number  float64
}

func (t Token) String() string {
	switch t.Type {
	case TokenString:
		return fmt.Sprintf("STRING(%q)", t.Literal)
	case TokenNumber:
		return fmt.Sprintf("NUMBER(%v)", t.Number)
	case TokenIdent:
		return fmt.Sprintf("IDENT(%s)", t.Literal)
	default:
		return string(t.Type)
	}
}

// keywords maps reserved spellings to their corresponding token types.
var keywords = map[string]TokenType{
	"and":    TokenAnd,
	"class":  TokenClass,
	"else":   TokenElse,
	"false":  TokenFalse,
	"fun":    TokenFun,
	"for":    TokenFor,
	"if":     TokenIf,
	"nil":    TokenNil,
	"or":     TokenOr,
	"print":  TokenPrint,
	"return": TokenReturn,
	"super":  TokenSuper,
	"this":   TokenThis,
	"true":   TokenTrue,
	"var":    TokenVar,
	"while":  TokenWhile,
}

// LookupIdent checks if an identifier is a reserved word, returning the
// keyword's token type or TokenIdent if it's not a keyword.
func LookupIdent(ident string) TokenType {
	// Use case-sensitive lookup
	if tokType, ok := keywords[ident]; ok {
		return tokType
	}
	// Not a keyword, it's a user-defined identifier
	return TokenIdent
}
