package parse

import (
	"docsage/internal/domain"
)

// ParseExtraction decodes raw model text into an ExtractionResult. The
// adaptive shape carries the classification at the top level plus an
// extracted_fields object whose entries each hold a value and a confidence.
// Per-field reasoning emitted by the model is not persisted.
func ParseExtraction(raw string) (*domain.ExtractionResult, error) {
	obj, err := DecodeObject(raw)
	if err != nil {
		return nil, err
	}
	if err := validateShape(extractionSchema, obj); err != nil {
		return nil, err
	}

	result := &domain.ExtractionResult{
		Classification: domain.Classification{
			DocumentType: stringField(obj, "document_type"),
			Description:  stringField(obj, "description"),
			Confidence:   Confidence(obj["confidence"]),
		},
		Fields: map[string]domain.FieldValue{},
	}

	fields, _ := obj["extracted_fields"].(map[string]interface{})
	for name, rawField := range fields {
		fv, ok := rawField.(map[string]interface{})
		if !ok {
			// Bare scalar: keep the value, confidence unknown.
			result.Fields[name] = domain.FieldValue{Value: rawField}
			continue
		}
		result.Fields[name] = domain.FieldValue{
			Value:      fv["value"],
			Confidence: Confidence(fv["confidence"]),
		}
	}

	return result, nil
}
