package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// decodeModelJSON parses a model reply whose JSON body may be wrapped in a
// markdown code fence. The accepted grammar is: an optional leading line that
// is exactly "```json", the JSON body, an optional trailing "```" line. Bare
// JSON passes through untouched; any other framing is a decode failure.
func decodeModelJSON(raw string, v any) error {
	text := strings.TrimSpace(raw)
	if text == "" {
		return errors.New("model output is empty")
	}

	if strings.HasPrefix(text, "```") {
		first, rest, ok := strings.Cut(text, "\n")
		if !ok {
			return fmt.Errorf("fenced output has no body: %q", first)
		}
		if strings.TrimSpace(first) != "```json" {
			return fmt.Errorf("unexpected opening fence %q", strings.TrimSpace(first))
		}
		body, found := strings.CutSuffix(strings.TrimSpace(rest), "```")
		if !found {
			return errors.New("missing closing fence")
		}
		text = strings.TrimSpace(body)
	}

	return json.Unmarshal([]byte(text), v)
}
