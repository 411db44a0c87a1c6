package scanner

import "strings"

// Token is one (type, name) declaration pulled from a definition line.
type Token struct {
	Type string `json:"type"` // raw type token, e.g. "float64[]" or "geometry_msgs/Pose"
	Name string `json:"name"` // raw field name with any "=value" suffix removed
}

// Tokenize splits definition-file text into declaration tokens in source order.
// ok is false only for empty input; a file holding nothing but comments yields
// ok=true and no tokens.
//
// Constant declarations keep their type and name only:
// "uint8 PENDING = 0  # comment" tokenizes to {uint8 PENDING}.
func Tokenize(source string) (tokens []Token, ok bool) {
	if source == "" {
		return nil, false
	}

	tokens = []Token{}
	for _, line := range strings.Split(source, "\n") {
		if tok, ok := tokenizeLine(line); ok {
			tokens = append(tokens, tok)
		}
	}
	return tokens, true
}

func tokenizeLine(line string) (Token, bool) {
	line = strings.ReplaceAll(line, "\t", " ")
	fragments := strings.Fields(line)
	if len(fragments) < 2 {
		return Token{}, false
	}
	if strings.HasPrefix(fragments[0], "#") {
		return Token{}, false
	}

	name := fragments[1]
	if idx := strings.IndexByte(name, '='); idx >= 0 {
		name = name[:idx]
	}

	return Token{Type: fragments[0], Name: name}, true
}
