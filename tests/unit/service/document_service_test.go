package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"docsage/internal/domain"
	"docsage/internal/service"
	"docsage/mocks"
)

func TestDocumentService_Ingest_HashIsStable(t *testing.T) {
	texts := new(mocks.MockTextProvider)
	texts.On("PutText", mock.Anything, mock.AnythingOfType("string"), mock.Anything).Return(nil)
	svc := service.NewDocumentService(texts)

	pages := []domain.Page{{Number: 1, Text: "hello world"}}

	first, err := svc.Ingest(context.Background(), pages)
	assert.NoError(t, err)
	assert.True(t, domain.ValidDocumentHash(first))

	second, err := svc.Ingest(context.Background(), pages)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDocumentService_Ingest_DifferentTextDifferentHash(t *testing.T) {
	texts := new(mocks.MockTextProvider)
	texts.On("PutText", mock.Anything, mock.AnythingOfType("string"), mock.Anything).Return(nil)
	svc := service.NewDocumentService(texts)

	a, err := svc.Ingest(context.Background(), []domain.Page{{Number: 1, Text: "doc a"}})
	assert.NoError(t, err)
	b, err := svc.Ingest(context.Background(), []domain.Page{{Number: 1, Text: "doc b"}})
	assert.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestDocumentService_Ingest_EmptyPages(t *testing.T) {
	svc := service.NewDocumentService(new(mocks.MockTextProvider))

	hash, err := svc.Ingest(context.Background(), nil)

	assert.Empty(t, hash)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestDocumentService_Ingest_NumbersMissingPages(t *testing.T) {
	texts := new(mocks.MockTextProvider)
	var stored []domain.Page
	texts.On("PutText", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
		Run(func(args mock.Arguments) { stored = args.Get(2).([]domain.Page) }).
		Return(nil)
	svc := service.NewDocumentService(texts)

	_, err := svc.Ingest(context.Background(), []domain.Page{{Text: "first"}, {Text: "second"}})

	assert.NoError(t, err)
	assert.Equal(t, 1, stored[0].Number)
	assert.Equal(t, 2, stored[1].Number)
}

func TestDocumentService_GetText_InvalidHash(t *testing.T) {
	svc := service.NewDocumentService(new(mocks.MockTextProvider))

	pages, err := svc.GetText(context.Background(), "short")

	assert.Nil(t, pages)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
