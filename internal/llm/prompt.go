// Package llm holds the prompt builders shared by the orchestration services.
package llm

import (
	"fmt"
	"strings"

	"docsage/internal/domain"
)

const askPreamble = `You are an intelligent assistant helping users answer questions strictly based on the content of the attached document text.

Your task:
1. Carefully review all sections, including tables, headers, checkboxes, and form fields.
2. If the question refers to a specific field (e.g., limit, date, name), and the field is present but the value is blank or illegible, acknowledge that the field exists but is not filled in.
3. If the answer is present, extract it exactly as shown in the document.
4. Format your response as a JSON object with the following structure:
{
  "answer": (string),
  "confidence": (number between 0.0 and 1.0),
  "reasoning": (string),
  "source": (object with "page" and "anchor", or null),
  "verified": (boolean)
}

Return ONLY the JSON object, with no markdown formatting and no explanation outside it.`

// BuildAskPrompt embeds the question and the full page-segmented document
// text into the question-answering prompt. Page boundaries are preserved so
// the model can cite the page an answer came from.
func BuildAskPrompt(question string, pages []domain.Page) string {
	var b strings.Builder
	b.WriteString(askPreamble)
	b.WriteString("\n\nDocument text:\n")
	for _, p := range pages {
		fmt.Fprintf(&b, "\n--- Page %d ---\n%s\n", p.Number, p.Text)
	}
	b.WriteString("\nNow answer this question:\n")
	b.WriteString(question)
	return b.String()
}

const extractPreamble = `Analyze this document step-by-step:

1. First, determine the document type by examining layout, headers, and content structure
2. Then, identify the most critical fields that should be extracted for this specific document type
3. Finally, extract those field values with high precision

Think through each step carefully before providing your final answer.

Return JSON in this exact format:
{
  "document_type": "precise label for document type (e.g., 'bank statement', 'invoice', 'medical report')",
  "description": "brief description of document purpose and key contents",
  "confidence": 0.95,
  "extracted_fields": {
    "field_name_1": {
      "value": "extracted value",
      "confidence": 0.9,
      "reasoning": "brief explanation of why this value was chosen"
    }
  }
}

Be conservative with confidence scores - only use high confidence (>0.8) when you're very certain.
Focus on extracting the most critical fields that would be valuable for this document type.`

// BuildExtractionPrompt embeds the page-segmented document text into the
// adaptive classification-plus-extraction prompt.
func BuildExtractionPrompt(pages []domain.Page) string {
	var b strings.Builder
	b.WriteString(extractPreamble)
	b.WriteString("\n\nDocument text:\n")
	for _, p := range pages {
		fmt.Fprintf(&b, "\n--- Page %d ---\n%s\n", p.Number, p.Text)
	}
	return b.String()
}
