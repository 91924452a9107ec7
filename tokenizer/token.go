package tokenizer

// TokenType represents the type of a token
type TokenType int

const (
	EOF        TokenType = iota
	WHITESPACE           // spaces and tabs between properties
	WORD                 // property key: run of characters up to a space or '('
	PAYLOAD              // parenthesized payload; Value holds the text between the parentheses
)

// String returns the string representation of TokenType
func (t TokenType) String() string {
	switch t {
	case EOF:
		return "EOF"
	case WHITESPACE:
		return "WHITESPACE"
	case WORD:
		return "WORD"
	case PAYLOAD:
		return "PAYLOAD"
	default:
		return "UNKNOWN"
	}
}

// Position represents a position in the property line
type Position struct {
	Column int // 1-based byte column
	Offset int // 0-based byte offset
}

// Token represents a token
type Token struct {
	Type     TokenType
	Value    string
	Raw      string // source text, including parentheses for PAYLOAD
	Position Position
}

// String returns the string representation of Token
func (t Token) String() string {
	return t.Type.String() + ": " + t.Value
}
