package llm

import (
	"context"
	"errors"
	"strings"
)

// ChatModel is a minimal abstraction for chat-based LLMs used by the domain.
// It intentionally hides concrete providers to preserve dependency direction.
type ChatModel interface {
	Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// ErrNoJSON is returned when a reply carries no JSON object.
var ErrNoJSON = errors.New("no json object in model reply")

// ExtractJSONObject returns the span from the first '{' to the last '}' of a
// model reply, so commentary and code fences around the payload are ignored.
func ExtractJSONObject(reply string) (string, error) {
	i := strings.Index(reply, "{")
	j := strings.LastIndex(reply, "}")
	if i < 0 || j <= i {
		return "", ErrNoJSON
	}
	return reply[i : j+1], nil
}
