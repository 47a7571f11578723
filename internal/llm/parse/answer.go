package parse

import (
	"docsage/internal/domain"
)

// AnswerPayload is the validated shape of a question-answering completion.
type AnswerPayload struct {
	Answer     string
	Confidence float64
	Reasoning  string
	Source     *domain.SourceCitation
	Verified   bool
}

// ParseAnswer decodes raw model text into an AnswerPayload. The answer text
// itself is mandatory; confidence is clamped into [0,1], source is optional,
// and verified defaults to false. A missing or undecodable object yields
// domain.ErrMalformedResponse.
func ParseAnswer(raw string) (*AnswerPayload, error) {
	obj, err := DecodeObject(raw)
	if err != nil {
		return nil, err
	}
	if err := validateShape(answerSchema, obj); err != nil {
		return nil, err
	}

	p := &AnswerPayload{
		Answer:     stringField(obj, "answer"),
		Confidence: Confidence(obj["confidence"]),
		Reasoning:  stringField(obj, "reasoning"),
	}
	if v, ok := obj["verified"].(bool); ok {
		p.Verified = v
	}
	p.Source = parseSource(obj["source"])
	return p, nil
}

// parseSource decodes the optional source citation. Anything that does not
// look like a citation object is treated as absent rather than an error.
func parseSource(v interface{}) *domain.SourceCitation {
	m, ok := v.(map[string]interface{})
	if !ok || len(m) == 0 {
		return nil
	}

	src := &domain.SourceCitation{}
	if page, ok := m["page"].(float64); ok && page >= 1 {
		n := int(page)
		src.Page = &n
	}
	if anchor, ok := m["anchor"].(string); ok {
		src.Anchor = anchor
	} else if anchor, ok := m["text"].(string); ok {
		// Some completions label the anchor snippet "text".
		src.Anchor = anchor
	}
	if method, ok := m["method"].(string); ok {
		src.Method = method
	}
	if src.Page == nil && src.Anchor == "" && src.Method == "" {
		return nil
	}
	return src
}
