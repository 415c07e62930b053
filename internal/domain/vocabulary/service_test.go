package vocabulary

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, v *Vocabulary) (int, error) {
	args := m.Called(ctx, v)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) Get(ctx context.Context, userID, id int) (*Vocabulary, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Vocabulary), args.Error(1)
}

func (m *MockRepository) ListByUser(ctx context.Context, userID int, languages []string) ([]Vocabulary, error) {
	args := m.Called(ctx, userID, languages)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Vocabulary), args.Error(1)
}

func (m *MockRepository) ListDue(ctx context.Context, userID int, language string) ([]Vocabulary, error) {
	args := m.Called(ctx, userID, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Vocabulary), args.Error(1)
}

func (m *MockRepository) CountByStatus(ctx context.Context, userID int, language string) (StatusCounts, error) {
	args := m.Called(ctx, userID, language)
	return args.Get(0).(StatusCounts), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, v *Vocabulary) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, userID, id int) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockRepository) SetStatusIf(ctx context.Context, userID, id int, from, to Status) (bool, error) {
	args := m.Called(ctx, userID, id, from, to)
	return args.Bool(0), args.Error(1)
}

func TestService_Create(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(v *Vocabulary) bool {
		return v.SourceText == "bonjour" &&
			v.TargetText == "Guten Tag" &&
			v.SourceLanguage == "fr" &&
			v.Status == StatusOpen &&
			v.UserID == 1
	})).Return(10, nil)

	id, err := service.Create(context.Background(), 1, "  bonjour ", " Guten Tag ", "FR")
	require.NoError(t, err)
	assert.Equal(t, 10, id)

	mockRepo.AssertExpectations(t)
}

func TestService_Create_Duplicate(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Create", mock.Anything, mock.Anything).Return(0, ErrDuplicate)

	_, err := service.Create(context.Background(), 1, "bonjour", "Guten Tag", "fr")
	assert.ErrorIs(t, err, ErrDuplicate)

	mockRepo.AssertExpectations(t)
}

func TestService_Create_Validation(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	tests := []struct {
		name       string
		sourceText string
		targetText string
		language   string
	}{
		{"empty source text", "", "Hallo", "en"},
		{"empty target text", "hello", "", "en"},
		{"whitespace source text", "   ", "Hallo", "en"},
		{"source text too long", strings.Repeat("x", 1001), "Hallo", "en"},
		{"target text too long", "hello", strings.Repeat("x", 1001), "en"},
		{"language too long", "hello", "Hallo", "eng"},
		{"language with digit", "hello", "Hallo", "e1"},
		{"empty language", "hello", "Hallo", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Create(context.Background(), 1, tt.sourceText, tt.targetText, tt.language)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	mockRepo.AssertNotCalled(t, "Create")
}

func TestService_List_GroupsAndSorts(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	now := time.Now()
	cards := []Vocabulary{
		{ID: 1, SourceLanguage: "fr", Status: StatusLearned, UpdatedAt: now},
		{ID: 2, SourceLanguage: "en", Status: StatusLearning, UpdatedAt: now.Add(-time.Hour)},
		{ID: 3, SourceLanguage: "en", Status: StatusOpen, UpdatedAt: now.Add(-2 * time.Hour)},
		{ID: 4, SourceLanguage: "en", Status: StatusOpen, UpdatedAt: now},
	}

	mockRepo.On("ListByUser", mock.Anything, 1, SupportedLanguages).Return(cards, nil)

	resp, err := service.List(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, resp.Languages, 2)

	// Groups follow the supported language order: en before fr.
	en := resp.Languages[0]
	assert.Equal(t, "en", en.Language)
	assert.Equal(t, "Englisch", en.LanguageName)

	// Open cards first, newest update wins within a status.
	require.Len(t, en.Vocabularies, 3)
	assert.Equal(t, 4, en.Vocabularies[0].ID)
	assert.Equal(t, 3, en.Vocabularies[1].ID)
	assert.Equal(t, 2, en.Vocabularies[2].ID)

	fr := resp.Languages[1]
	assert.Equal(t, "fr", fr.Language)
	assert.Equal(t, "Französisch", fr.LanguageName)

	mockRepo.AssertExpectations(t)
}

func TestService_Overview_SkipsEmptyLanguages(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	for _, lang := range SupportedLanguages {
		counts := StatusCounts{}
		if lang == "es" {
			counts = StatusCounts{Total: 5, Open: 2, Learning: 1, Learned: 2, ToLearn: 3}
		}
		mockRepo.On("CountByStatus", mock.Anything, 1, lang).Return(counts, nil)
	}

	resp, err := service.Overview(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, resp.Languages, 1)
	assert.Equal(t, "es", resp.Languages[0].Language)
	assert.Equal(t, "Spanisch", resp.Languages[0].LanguageName)
	assert.Equal(t, 3, resp.Languages[0].Counts.ToLearn)

	mockRepo.AssertExpectations(t)
}

func TestService_StartSession(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	due := make([]Vocabulary, 30)
	for i := range due {
		status := StatusOpen
		if i%2 == 0 {
			status = StatusLearning
		}
		due[i] = Vocabulary{ID: i + 1, SourceLanguage: "en", Status: status}
	}

	mockRepo.On("ListDue", mock.Anything, 1, "en").Return(due, nil)

	cards, err := service.StartSession(context.Background(), 1, "en")
	require.NoError(t, err)
	assert.Len(t, cards, SessionLimit)

	for _, card := range cards {
		assert.Contains(t, []Status{StatusOpen, StatusLearning}, card.Status)
	}

	mockRepo.AssertExpectations(t)
}

func TestService_StartSession_NothingToLearn(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("ListDue", mock.Anything, 1, "it").Return([]Vocabulary{}, nil)

	_, err := service.StartSession(context.Background(), 1, "it")
	assert.ErrorIs(t, err, ErrNothingToLearn)

	mockRepo.AssertExpectations(t)
}

func TestService_StartSession_UnsupportedLanguage(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	_, err := service.StartSession(context.Background(), 1, "xx")
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)

	mockRepo.AssertNotCalled(t, "ListDue")
}

func TestService_AdvanceCard_Correct(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Get", mock.Anything, 1, 10).Return(&Vocabulary{ID: 10, UserID: 1, Status: StatusOpen}, nil)
	mockRepo.On("SetStatusIf", mock.Anything, 1, 10, StatusOpen, StatusLearning).Return(true, nil)

	status, err := service.AdvanceCard(context.Background(), 1, 10, true)
	require.NoError(t, err)
	assert.Equal(t, StatusLearning, status)

	mockRepo.AssertExpectations(t)
}

func TestService_AdvanceCard_NoTransitionSkipsWrite(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Get", mock.Anything, 1, 10).Return(&Vocabulary{ID: 10, UserID: 1, Status: StatusLearned}, nil)

	status, err := service.AdvanceCard(context.Background(), 1, 10, true)
	require.NoError(t, err)
	assert.Equal(t, StatusLearned, status)

	mockRepo.AssertNotCalled(t, "SetStatusIf")
}

func TestService_AdvanceCard_RetriesOnContention(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	// First read sees open, but a concurrent answer moves the card
	// before our compare-and-set lands. The second round succeeds.
	mockRepo.On("Get", mock.Anything, 1, 10).Return(&Vocabulary{ID: 10, UserID: 1, Status: StatusOpen}, nil).Once()
	mockRepo.On("SetStatusIf", mock.Anything, 1, 10, StatusOpen, StatusLearning).Return(false, nil).Once()
	mockRepo.On("Get", mock.Anything, 1, 10).Return(&Vocabulary{ID: 10, UserID: 1, Status: StatusLearning}, nil).Once()
	mockRepo.On("SetStatusIf", mock.Anything, 1, 10, StatusLearning, StatusLearned).Return(true, nil).Once()

	status, err := service.AdvanceCard(context.Background(), 1, 10, true)
	require.NoError(t, err)
	assert.Equal(t, StatusLearned, status)

	mockRepo.AssertExpectations(t)
}

func TestService_AdvanceCard_NotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Get", mock.Anything, 1, 99).Return(nil, ErrNotFound)

	_, err := service.AdvanceCard(context.Background(), 1, 99, true)
	assert.ErrorIs(t, err, ErrNotFound)

	mockRepo.AssertExpectations(t)
}

func TestService_Update(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	existing := &Vocabulary{ID: 10, UserID: 1, SourceText: "old", TargetText: "alt", SourceLanguage: "en", Status: StatusOpen}
	mockRepo.On("Get", mock.Anything, 1, 10).Return(existing, nil)
	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(v *Vocabulary) bool {
		return v.ID == 10 && v.SourceText == "new" && v.TargetText == "neu" && v.Status == StatusLearned
	})).Return(nil)

	err := service.Update(context.Background(), 1, 10, "new", "neu", StatusLearned)
	require.NoError(t, err)

	mockRepo.AssertExpectations(t)
}

func TestService_Update_InvalidStatus(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	err := service.Update(context.Background(), 1, 10, "new", "neu", Status("done"))
	assert.ErrorIs(t, err, ErrInvalidInput)

	mockRepo.AssertNotCalled(t, "Update")
}
