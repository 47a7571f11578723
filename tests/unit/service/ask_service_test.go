package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"docsage/internal/domain"
	"docsage/internal/service"
	"docsage/mocks"
)

const testHash = "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"

func setupAskService() (service.AskService, *mocks.MockConversationRepo, *mocks.MockTextProvider, *mocks.MockCompletionClient) {
	convRepo := new(mocks.MockConversationRepo)
	texts := new(mocks.MockTextProvider)
	completions := new(mocks.MockCompletionClient)
	svc := service.NewAskService(convRepo, texts, completions, nil)
	return svc, convRepo, texts, completions
}

func testPages() []domain.Page {
	return []domain.Page{
		{Number: 1, Text: "Invoice INV-001 from Acme Corp. Total: $42.50"},
	}
}

// --- Ask ---

func TestAskService_Ask_CacheHit(t *testing.T) {
	svc, convRepo, _, completions := setupAskService()

	stored := &domain.Conversation{
		DocumentHash: testHash,
		Question:     "What is the total?",
		Answer:       "$42.50",
		Confidence:   0.9,
	}
	convRepo.On("Get", mock.Anything, testHash, "What is the total?").Return(stored, nil)

	result, err := svc.Ask(context.Background(), &service.AskInput{
		DocumentHash: testHash,
		Question:     "What is the total?",
	})

	assert.NoError(t, err)
	assert.Equal(t, stored, result)
	completions.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
}

func TestAskService_Ask_CacheMiss_AnswersAndPersists(t *testing.T) {
	svc, convRepo, texts, completions := setupAskService()

	convRepo.On("Get", mock.Anything, testHash, "What is the total?").
		Return(nil, domain.ErrConversationNotFound)
	texts.On("GetText", mock.Anything, testHash).Return(testPages(), nil)
	completions.On("Complete", mock.Anything, mock.AnythingOfType("string")).
		Return(`{"answer":"$42.50","confidence":0.9,"reasoning":"summary line","verified":false}`, nil)
	convRepo.On("Put", mock.Anything, mock.AnythingOfType("*domain.Conversation")).Return(nil)

	result, err := svc.Ask(context.Background(), &service.AskInput{
		DocumentHash: testHash,
		Question:     "  What is the total?  ",
	})

	assert.NoError(t, err)
	assert.Equal(t, "$42.50", result.Answer)
	assert.Equal(t, 0.9, result.Confidence)
	// The question is trimmed before it becomes the record key.
	assert.Equal(t, "What is the total?", result.Question)
	assert.Equal(t, testHash, result.DocumentHash)
	assert.NotEqual(t, result.ID.String(), "00000000-0000-0000-0000-000000000000")
	convRepo.AssertCalled(t, "Put", mock.Anything, mock.AnythingOfType("*domain.Conversation"))
}

func TestAskService_Ask_DocumentNotFound(t *testing.T) {
	svc, convRepo, texts, _ := setupAskService()

	convRepo.On("Get", mock.Anything, testHash, "Who signed it?").
		Return(nil, domain.ErrConversationNotFound)
	texts.On("GetText", mock.Anything, testHash).
		Return(nil, domain.ErrDocumentNotFound)

	result, err := svc.Ask(context.Background(), &service.AskInput{
		DocumentHash: testHash,
		Question:     "Who signed it?",
	})

	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domain.ErrDocumentNotFound))
}

func TestAskService_Ask_MalformedCompletion(t *testing.T) {
	svc, convRepo, texts, completions := setupAskService()

	convRepo.On("Get", mock.Anything, testHash, "What is the total?").
		Return(nil, domain.ErrConversationNotFound)
	texts.On("GetText", mock.Anything, testHash).Return(testPages(), nil)
	completions.On("Complete", mock.Anything, mock.Anything).
		Return("I cannot find that information.", nil)

	result, err := svc.Ask(context.Background(), &service.AskInput{
		DocumentHash: testHash,
		Question:     "What is the total?",
	})

	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domain.ErrMalformedResponse))
	convRepo.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
}

func TestAskService_Ask_UpstreamUnavailable(t *testing.T) {
	svc, convRepo, texts, completions := setupAskService()

	convRepo.On("Get", mock.Anything, testHash, "What is the total?").
		Return(nil, domain.ErrConversationNotFound)
	texts.On("GetText", mock.Anything, testHash).Return(testPages(), nil)
	completions.On("Complete", mock.Anything, mock.Anything).
		Return("", domain.ErrUpstreamUnavailable)

	result, err := svc.Ask(context.Background(), &service.AskInput{
		DocumentHash: testHash,
		Question:     "What is the total?",
	})

	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domain.ErrUpstreamUnavailable))
}

func TestAskService_Ask_ConcurrentIdenticalAsksShareOneCompletion(t *testing.T) {
	svc, convRepo, texts, completions := setupAskService()

	convRepo.On("Get", mock.Anything, testHash, "What is the total?").
		Return(nil, domain.ErrConversationNotFound)
	texts.On("GetText", mock.Anything, testHash).Return(testPages(), nil)

	release := make(chan struct{})
	completions.On("Complete", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { <-release }).
		Return(`{"answer":"$42.50","confidence":0.9}`, nil)
	convRepo.On("Put", mock.Anything, mock.AnythingOfType("*domain.Conversation")).Return(nil)

	const callers = 5
	var wg sync.WaitGroup
	answers := make([]*domain.Conversation, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			conv, err := svc.Ask(context.Background(), &service.AskInput{
				DocumentHash: testHash,
				Question:     "What is the total?",
			})
			assert.NoError(t, err)
			answers[i] = conv
		}(i)
	}

	// Hold the model call open until every caller has had time to join the
	// in-flight request.
	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()

	completions.AssertNumberOfCalls(t, "Complete", 1)
	for _, conv := range answers {
		if assert.NotNil(t, conv) {
			assert.Equal(t, "$42.50", conv.Answer)
		}
	}
}

func TestAskService_Ask_InvalidInput(t *testing.T) {
	svc, _, _, _ := setupAskService()

	cases := []struct {
		name  string
		input *service.AskInput
	}{
		{"empty question", &service.AskInput{DocumentHash: testHash, Question: "   "}},
		{"short hash", &service.AskInput{DocumentHash: "abc123", Question: "valid?"}},
		{"uppercase hash", &service.AskInput{DocumentHash: "9F86D081884C7D659A2FEAA0C55AD015A3BF4F1B2B0B822CD15D6C15B0F00A08", Question: "valid?"}},
		{"non-hex hash", &service.AskInput{DocumentHash: "zz86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08", Question: "valid?"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := svc.Ask(context.Background(), tc.input)
			assert.Nil(t, result)
			assert.True(t, errors.Is(err, domain.ErrInvalidInput))
		})
	}
}

// --- List / Delete / DeleteAll ---

func TestAskService_List(t *testing.T) {
	svc, convRepo, _, _ := setupAskService()

	convs := []domain.Conversation{
		{DocumentHash: testHash, Question: "q1"},
		{DocumentHash: testHash, Question: "q2"},
	}
	convRepo.On("List", mock.Anything, testHash).Return(convs, nil)

	result, err := svc.List(context.Background(), testHash)

	assert.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestAskService_List_InvalidHash(t *testing.T) {
	svc, _, _, _ := setupAskService()

	result, err := svc.List(context.Background(), "not-a-hash")

	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestAskService_Delete_NotFound(t *testing.T) {
	svc, convRepo, _, _ := setupAskService()

	convRepo.On("Delete", mock.Anything, testHash, "never asked").
		Return(domain.ErrConversationNotFound)

	err := svc.Delete(context.Background(), testHash, "never asked")

	assert.True(t, errors.Is(err, domain.ErrConversationNotFound))
}

func TestAskService_DeleteAll(t *testing.T) {
	svc, convRepo, _, _ := setupAskService()

	convRepo.On("DeleteAll", mock.Anything, testHash).Return(int64(3), nil)

	n, err := svc.DeleteAll(context.Background(), testHash)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestAskService_DeleteAll_ForcesFreshAnswer(t *testing.T) {
	svc, convRepo, texts, completions := setupAskService()

	stored := &domain.Conversation{
		DocumentHash: testHash,
		Question:     "What is the total?",
		Answer:       "$42.50",
	}
	convRepo.On("Get", mock.Anything, testHash, "What is the total?").Return(stored, nil).Once()
	convRepo.On("DeleteAll", mock.Anything, testHash).Return(int64(1), nil)
	convRepo.On("Get", mock.Anything, testHash, "What is the total?").
		Return(nil, domain.ErrConversationNotFound)
	texts.On("GetText", mock.Anything, testHash).Return(testPages(), nil)
	completions.On("Complete", mock.Anything, mock.Anything).
		Return(`{"answer":"$42.50","confidence":0.9}`, nil)
	convRepo.On("Put", mock.Anything, mock.AnythingOfType("*domain.Conversation")).Return(nil)

	input := &service.AskInput{DocumentHash: testHash, Question: "What is the total?"}

	first, err := svc.Ask(context.Background(), input)
	assert.NoError(t, err)
	assert.Equal(t, stored, first)
	completions.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)

	n, err := svc.DeleteAll(context.Background(), testHash)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), n)

	// The identical question now misses the cache and goes back to the model.
	second, err := svc.Ask(context.Background(), input)
	assert.NoError(t, err)
	assert.Equal(t, "$42.50", second.Answer)
	completions.AssertNumberOfCalls(t, "Complete", 1)
	convRepo.AssertCalled(t, "Put", mock.Anything, mock.AnythingOfType("*domain.Conversation"))
}
