package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// MalformedResponseError means every repair tier failed to produce
// parseable JSON. Diag carries the last parser diagnostic.
type MalformedResponseError struct {
	Diag string
}

func (e *MalformedResponseError) Error() string {
	return "malformed AI response: " + e.Diag
}

// UnexpectedShapeError means the response parsed but its top level is not
// a JSON object.
type UnexpectedShapeError struct {
	Got string
}

func (e *UnexpectedShapeError) Error() string {
	return "AI response is not a JSON object (got " + e.Got + ")"
}

// Sanitize recovers the JSON object embedded in a model's raw text output.
// The text may carry prose wrapping, markdown fences, or stray control
// characters. Cleanup escalates over three parse attempts, narrowest
// repair first:
//
//  1. fence extraction plus a conservative control strip that keeps
//     newline, tab and carriage return;
//  2. the same text with DEL stripped and raw newline/CR/tab characters
//     inside quoted strings escaped to their two-character forms;
//  3. an unconditional strip of the full C0+C1 control range.
//
// The first successful parse wins. A parsed non-object fails immediately
// with UnexpectedShapeError; exhausting all tiers fails with
// MalformedResponseError carrying the last parser diagnostic. No side
// effects happen before this succeeds.
func Sanitize(raw string) (map[string]any, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil, &MalformedResponseError{Diag: "empty response"}
	}

	cleaned := stripControl(extractFenced(text), false)

	tiers := []string{
		cleaned,
		escapeStringControls(stripControl(cleaned, true)),
		stripAllControl(cleaned),
	}

	var lastErr error
	for _, attempt := range tiers {
		obj, err := parseObject(attempt)
		if err == nil {
			return obj, nil
		}
		var shapeErr *UnexpectedShapeError
		if errors.As(err, &shapeErr) {
			return nil, err
		}
		lastErr = err
	}
	return nil, &MalformedResponseError{Diag: lastErr.Error()}
}

// extractFenced pulls the content between the first ```json fence pair,
// falling back to the first generic fence pair, else the full text.
func extractFenced(text string) string {
	for _, marker := range []string{"```json", "```"} {
		idx := strings.Index(text, marker)
		if idx < 0 {
			continue
		}
		rest := text[idx+len(marker):]
		if end := strings.Index(rest, "```"); end >= 0 {
			rest = rest[:end]
		}
		return strings.TrimSpace(rest)
	}
	return text
}

// stripControl removes the control characters that are never legal in the
// model's intended JSON, preserving newline, tab and carriage return.
// The aggressive form also removes DEL.
func stripControl(s string, aggressive bool) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 0x00 && r <= 0x08:
			return -1
		case r == 0x0B || r == 0x0C:
			return -1
		case r >= 0x0E && r <= 0x1F:
			return -1
		case aggressive && r == 0x7F:
			return -1
		}
		return r
	}, s)
}

// stripAllControl removes the full C0+C1 range unconditionally. This is
// the most destructive tier and runs last.
func stripAllControl(s string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 0x00 && r <= 0x1F) || (r >= 0x7F && r <= 0x9F) {
			return -1
		}
		return r
	}, s)
}

// escapeStringControls walks the text with a quote-toggle state machine
// (with backslash-escape lookahead) and rewrites raw newline, carriage
// return and tab characters found inside quoted string values to their
// escaped two-character forms. Characters outside strings pass through.
func escapeStringControls(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inString := false
	escaped := false
	for _, r := range s {
		if escaped {
			b.WriteRune(r)
			escaped = false
			continue
		}
		switch {
		case r == '\\':
			b.WriteRune(r)
			escaped = true
		case r == '"':
			inString = !inString
			b.WriteRune(r)
		case inString && r == '\n':
			b.WriteString(`\n`)
		case inString && r == '\r':
			b.WriteString(`\r`)
		case inString && r == '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func parseObject(text string) (map[string]any, error) {
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return nil, err
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, &UnexpectedShapeError{Got: fmt.Sprintf("%T", v)}
	}
	return obj, nil
}
