package properties

import (
	"fmt"
	"slices"

	"github.com/shibukawa/gccopt"
	tok "github.com/shibukawa/gccopt/tokenizer"
	pc "github.com/shibukawa/parsercombinator"
)

var (
	word    = primitiveType("word", tok.WORD)
	payload = primitiveType("payload", tok.PAYLOAD)
	space   = pc.Drop(pc.ZeroOrMore("space", primitiveType("space", tok.WHITESPACE)))

	// property matches a key optionally followed by its payload, then any
	// separating whitespace. Adjacent properties such as "Init(1)Var(x)"
	// need no separator.
	property = pc.Trace("property", pc.Seq(word, pc.Optional(payload), space))

	// propertyList consumes as many properties as possible; whatever is left
	// over is malformed.
	propertyList = pc.Seq(space, pc.ZeroOrMore("properties", property))
)

func primitiveType(typeName string, types ...tok.TokenType) pc.Parser[tok.Token] {
	return func(pctx *pc.ParseContext[tok.Token], tokens []pc.Token[tok.Token]) (int, []pc.Token[tok.Token], error) {
		if len(tokens) > 0 && slices.Contains(types, tokens[0].Val.Type) {
			return 1, tokens[:1], nil
		}

		return 0, nil, pc.ErrNotMatch
	}
}

func toParserToken(tokens []tok.Token) []pc.Token[tok.Token] {
	results := make([]pc.Token[tok.Token], 0, len(tokens))

	for _, token := range tokens {
		if token.Type == tok.EOF {
			break
		}

		results = append(results, pc.Token[tok.Token]{
			Type: "raw",
			Pos: &pc.Pos{
				Line:  1,
				Col:   token.Position.Column,
				Index: token.Position.Offset,
			},
			Val: token,
			Raw: token.Raw,
		})
	}

	return results
}

// Parse decodes a property-list line into a Map.
func Parse(line string) (*Map, error) {
	tokens, err := tok.NewPropertyTokenizer(line).AllTokens()
	if err != nil {
		return nil, err
	}

	pTokens := toParserToken(tokens)
	pctx := pc.NewParseContext[tok.Token]()

	consumed, matched, err := propertyList(pctx, pTokens)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", gccopt.ErrFormat, line)
	}

	if consumed < len(pTokens) {
		rest := pTokens[consumed]
		return nil, fmt.Errorf("%w at column %d: %q", gccopt.ErrEmptyKey, rest.Val.Position.Column, rest.Raw)
	}

	result := NewMap()

	var current *Property

	for _, t := range matched {
		switch t.Val.Type {
		case tok.WORD:
			if current != nil {
				result.Set(*current)
			}

			current = &Property{Key: t.Val.Value}
		case tok.PAYLOAD:
			current.Payload = t.Val.Value
			current.HasPayload = true
		}
	}

	if current != nil {
		result.Set(*current)
	}

	return result, nil
}

// MustParse is like Parse but panics on malformed input. It is meant for tests
// and static tables.
func MustParse(line string) *Map {
	m, err := Parse(line)
	if err != nil {
		panic(err)
	}

	return m
}
