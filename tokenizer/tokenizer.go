// Package tokenizer splits a single property-list line such as
// "Common Var(x) Init(1) Warning" into words and parenthesized payloads.
//
// Payloads are not nested: a payload ends at the first ')' after its '(' and
// may contain spaces, commas and any other character.
package tokenizer

import (
	"fmt"
	"iter"

	"github.com/shibukawa/gccopt"
)

// TokenIterator yields tokens up to and including EOF.
type TokenIterator iter.Seq2[Token, error]

// PropertyTokenizer is a tokenizer that returns an iterator
type PropertyTokenizer struct {
	input string
}

// NewPropertyTokenizer creates a new PropertyTokenizer
func NewPropertyTokenizer(input string) *PropertyTokenizer {
	return &PropertyTokenizer{input: input}
}

// Tokens returns an iterator of tokens. After an error the iterator stops.
func (t *PropertyTokenizer) Tokens() TokenIterator {
	return func(yield func(Token, error) bool) {
		tokenizer := &tokenizer{input: t.input}

		for {
			token, err := tokenizer.nextToken()
			if err != nil {
				yield(Token{}, err)
				return
			}

			if !yield(token, nil) || token.Type == EOF {
				return
			}
		}
	}
}

// AllTokens gets all tokens as a slice, including the trailing EOF token.
func (t *PropertyTokenizer) AllTokens() ([]Token, error) {
	tokens := make([]Token, 0, 16)

	for token, err := range t.Tokens() {
		if err != nil {
			return nil, err
		}

		tokens = append(tokens, token)
	}

	return tokens, nil
}

// Internal tokenizer implementation
type tokenizer struct {
	input    string
	position int
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

// nextToken gets the next token
func (t *tokenizer) nextToken() (Token, error) {
	if t.position >= len(t.input) {
		return t.newToken(EOF, t.position, "", ""), nil
	}

	start := t.position

	switch c := t.input[t.position]; {
	case isSpace(c):
		for t.position < len(t.input) && isSpace(t.input[t.position]) {
			t.position++
		}

		text := t.input[start:t.position]

		return t.newToken(WHITESPACE, start, text, text), nil
	case c == '(':
		for t.position < len(t.input) && t.input[t.position] != ')' {
			t.position++
		}

		if t.position >= len(t.input) {
			return Token{}, fmt.Errorf("%w at column %d: %q", gccopt.ErrUnterminatedPayload, start+1, t.input[start:])
		}

		t.position++ // consume ')'

		return t.newToken(PAYLOAD, start, t.input[start+1:t.position-1], t.input[start:t.position]), nil
	default:
		for t.position < len(t.input) && !isSpace(t.input[t.position]) && t.input[t.position] != '(' {
			t.position++
		}

		text := t.input[start:t.position]

		return t.newToken(WORD, start, text, text), nil
	}
}

func (t *tokenizer) newToken(tokenType TokenType, start int, value, raw string) Token {
	return Token{
		Type:  tokenType,
		Value: value,
		Raw:   raw,
		Position: Position{
			Column: start + 1,
			Offset: start,
		},
	}
}
