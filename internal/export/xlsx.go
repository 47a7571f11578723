// Package export produces XLSX workbooks from a document's conversation
// history and extraction snapshot.
package export

import (
	"context"
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"docsage/internal/domain"
	"docsage/internal/port"
)

// Service is a tiny façade over repositories that produces XLSX bytes.
type Service struct {
	convRepo port.ConversationRepository
	jobRepo  port.ExtractionJobRepository
}

// NewService creates a new export Service.
func NewService(convRepo port.ConversationRepository, jobRepo port.ExtractionJobRepository) *Service {
	return &Service{convRepo: convRepo, jobRepo: jobRepo}
}

// DocumentXLSX returns a workbook with one sheet of conversation history and,
// when extraction has succeeded, a second sheet of extracted fields.
func (s *Service) DocumentXLSX(ctx context.Context, documentHash string) ([]byte, error) {
	convs, err := s.convRepo.List(ctx, documentHash)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()

	if err := writeConversations(f, convs); err != nil {
		return nil, err
	}

	job, err := s.jobRepo.Get(ctx, documentHash)
	if err != nil {
		return nil, err
	}
	if job != nil && job.Status == domain.JobStatusSucceeded {
		result, err := job.DecodeResult()
		if err != nil {
			return nil, err
		}
		if err := writeExtraction(f, result); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

func writeConversations(f *excelize.File, convs []domain.Conversation) error {
	const sheet = "Conversations"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	headers := []string{"Asked At", "Question", "Answer", "Confidence", "Verified", "Source", "Reasoning"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for row, conv := range convs {
		write := func(col int, v interface{}) {
			cell, _ := excelize.CoordinatesToCellName(col, row+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, conv.CreatedAt.Format("2006-01-02 15:04:05"))
		write(2, conv.Question)
		write(3, conv.Answer)
		write(4, conv.Confidence)
		write(5, conv.Verified)
		write(6, sourceLabel(conv.Source))
		write(7, conv.Reasoning)
	}

	_ = f.SetColWidth(sheet, "A", "A", 20)
	_ = f.SetColWidth(sheet, "B", "C", 48)
	_ = f.SetColWidth(sheet, "D", "E", 12)
	_ = f.SetColWidth(sheet, "F", "F", 28)
	_ = f.SetColWidth(sheet, "G", "G", 60)
	return nil
}

func writeExtraction(f *excelize.File, result *domain.ExtractionResult) error {
	const sheet = "Extraction"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	_ = f.SetCellValue(sheet, "A1", "Document Type")
	_ = f.SetCellValue(sheet, "B1", result.Classification.DocumentType)
	_ = f.SetCellValue(sheet, "A2", "Description")
	_ = f.SetCellValue(sheet, "B2", result.Classification.Description)
	_ = f.SetCellValue(sheet, "A3", "Classification Confidence")
	_ = f.SetCellValue(sheet, "B3", result.Classification.Confidence)

	headers := []string{"Field", "Value", "Confidence"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 5)
		_ = f.SetCellValue(sheet, cell, h)
	}

	names := make([]string, 0, len(result.Fields))
	for name := range result.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for i, name := range names {
		fv := result.Fields[name]
		row := i + 6
		write := func(col int, v interface{}) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, name)
		write(2, fmt.Sprintf("%v", fv.Value))
		write(3, fv.Confidence)
	}

	_ = f.SetColWidth(sheet, "A", "A", 28)
	_ = f.SetColWidth(sheet, "B", "B", 48)
	_ = f.SetColWidth(sheet, "C", "C", 12)
	return nil
}

func sourceLabel(src *domain.SourceCitation) string {
	if src == nil {
		return ""
	}
	if src.Page != nil {
		return fmt.Sprintf("page %d: %s", *src.Page, src.Anchor)
	}
	return src.Anchor
}
