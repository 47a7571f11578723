// Package parse turns raw language-model completions into validated
// structured payloads. Model output is expected to be JSON but routinely
// arrives wrapped in prose or markdown fences, or truncated mid-object; this
// package isolates the recovery heuristics so their failure modes stay
// testable on their own.
package parse

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"docsage/internal/domain"
)

var (
	reFenceOpen  = regexp.MustCompile("(?i)```(?:json)?")
	reTrailComma = regexp.MustCompile(`,\s*([}\]])`)
)

// clean strips markdown code fences and ASCII control characters that break
// decoding, keeping valid escape sequences intact.
func clean(s string) string {
	s = reFenceOpen.ReplaceAllString(s, "")
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 0x20 && c != '\n' && c != '\r' && c != '\t' {
			continue
		}
		if c == 0x7F {
			continue
		}
		b.WriteByte(c)
	}
	return strings.TrimSpace(b.String())
}

// extractObject locates the first balanced {...} span in s using a
// bracket-depth scan that ignores braces inside string literals. If the text
// contains an opening brace that never balances (truncated output), the
// remainder from that brace is returned so the repair pass can try to close
// it. It fails only when no object opens at all.
func extractObject(s string) (string, error) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			if start >= 0 {
				inString = true
			}
		case '{':
			if start < 0 {
				start = i
			}
			depth++
		case '}':
			if start < 0 {
				continue
			}
			depth--
			if depth == 0 {
				return s[start : i+1], nil
			}
		}
	}

	if start < 0 {
		return "", fmt.Errorf("%w: no JSON object in completion", domain.ErrMalformedResponse)
	}
	return s[start:], nil
}

// scanOpen walks s and reports the stack of unclosed brackets and whether the
// scan ended inside a string literal.
func scanOpen(s string) (stack []byte, inString bool) {
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			stack = append(stack, '}')
		case '[':
			stack = append(stack, ']')
		case '}', ']':
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}
	return stack, inString
}

// repair applies the single repair pass: trailing commas are stripped, and a
// span left open by truncation is cut back to the last complete field
// boundary and closed. The result is a candidate, not a guarantee; the caller
// decodes it exactly once.
func repair(s string) string {
	stack, inString := scanOpen(s)
	if len(stack) > 0 || inString {
		// Find the last comma that sits outside any string literal and drop
		// everything after it, discarding the partial field.
		boundary := -1
		inStr, esc := false, false
		for i := 0; i < len(s); i++ {
			c := s[i]
			if inStr {
				switch {
				case esc:
					esc = false
				case c == '\\':
					esc = true
				case c == '"':
					inStr = false
				}
				continue
			}
			switch c {
			case '"':
				inStr = true
			case ',':
				boundary = i
			}
		}
		if boundary >= 0 {
			s = s[:boundary]
		}
		closers, _ := scanOpen(s)
		for i := len(closers) - 1; i >= 0; i-- {
			s += string(closers[i])
		}
	}
	return reTrailComma.ReplaceAllString(s, "$1")
}

// DecodeObject extracts and decodes the first JSON object from raw model
// text. On decode failure it retries once after the repair pass, then gives
// up with domain.ErrMalformedResponse. It never fabricates content.
func DecodeObject(raw string) (map[string]interface{}, error) {
	span, err := extractObject(clean(raw))
	if err != nil {
		return nil, err
	}

	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(span), &obj); err == nil {
		return obj, nil
	}

	repaired := repair(span)
	if err := json.Unmarshal([]byte(repaired), &obj); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON after repair: %v", domain.ErrMalformedResponse, err)
	}
	return obj, nil
}

// Confidence coerces an arbitrary decoded value into [0, 1]. Non-numeric or
// missing confidence becomes 0.0 rather than failing the record; confidence
// is advisory and must never block delivery of an otherwise valid payload.
func Confidence(v interface{}) float64 {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0.0
		}
		f = parsed
	default:
		return 0.0
	}
	// NaN compares false against both bounds and would survive the clamp,
	// then poison json.Marshal of the result.
	if math.IsNaN(f) {
		return 0.0
	}
	if f < 0.0 {
		return 0.0
	}
	if f > 1.0 {
		return 1.0
	}
	return f
}

func stringField(obj map[string]interface{}, key string) string {
	if v, ok := obj[key].(string); ok {
		return v
	}
	return ""
}
