package parse

import (
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"docsage/internal/domain"
)

// Structural schemas for the two payload shapes. Deliberately minimal: they
// pin down the fields the orchestrator cannot work without, while everything
// else (confidence, source, verified) is coerced leniently afterwards.
const answerSchemaJSON = `{
	"type": "object",
	"properties": {
		"answer": {"type": "string"},
		"reasoning": {"type": "string"}
	},
	"required": ["answer"]
}`

const extractionSchemaJSON = `{
	"type": "object",
	"properties": {
		"document_type": {"type": "string", "minLength": 1},
		"description": {"type": "string"},
		"extracted_fields": {"type": "object"}
	},
	"required": ["document_type"]
}`

var (
	answerSchema     = mustCompile("answer.json", answerSchemaJSON)
	extractionSchema = mustCompile("extraction.json", extractionSchemaJSON)
)

func mustCompile(name, src string) *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	if err := c.AddResource(name, strings.NewReader(src)); err != nil {
		panic(err)
	}
	return c.MustCompile(name)
}

func validateShape(schema *jsonschema.Schema, obj map[string]interface{}) error {
	if err := schema.Validate(obj); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}
	return nil
}
