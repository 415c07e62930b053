package changelog

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListRecent(ctx context.Context, limit int) ([]ChangeRecord, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ChangeRecord), args.Error(1)
}

func TestService_ActivityLog(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	records := []ChangeRecord{
		{ID: 2, ItemType: "Vocabulary", Event: EventCreate, Diff: json.RawMessage(`{"source_text":[null,"bonjour"]}`)},
		{ID: 1, ItemType: "User", Event: EventUpdate, Diff: json.RawMessage(`{"suspended":[false,true]}`)},
	}

	mockRepo.On("ListRecent", mock.Anything, PageLimit).Return(records, nil)

	entries, err := service.ActivityLog(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "Created vocabulary", entries[0].Summary)
	assert.Equal(t, "Suspended changed", entries[1].Summary)

	mockRepo.AssertExpectations(t)
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name   string
		record ChangeRecord
		want   string
	}{
		{
			name:   "create",
			record: ChangeRecord{ItemType: "Vocabulary", Event: EventCreate, Diff: json.RawMessage(`{"source_text":[null,"hola"]}`)},
			want:   "Created vocabulary",
		},
		{
			name:   "destroy",
			record: ChangeRecord{ItemType: "User", Event: EventDestroy, Diff: json.RawMessage(`{"email":["anna@example.com",null]}`)},
			want:   "Deleted user",
		},
		{
			name:   "update single field",
			record: ChangeRecord{ItemType: "User", Event: EventUpdate, Diff: json.RawMessage(`{"email":["a@example.com","b@example.com"]}`)},
			want:   "Email changed",
		},
		{
			name:   "update single underscored field",
			record: ChangeRecord{ItemType: "Vocabulary", Event: EventUpdate, Diff: json.RawMessage(`{"target_text":["alt","neu"]}`)},
			want:   "Target text changed",
		},
		{
			name:   "update multiple fields",
			record: ChangeRecord{ItemType: "Vocabulary", Event: EventUpdate, Diff: json.RawMessage(`{"source_text":["a","b"],"target_text":["c","d"]}`)},
			want:   "Updated 2 fields",
		},
		{
			name:   "bookkeeping columns ignored",
			record: ChangeRecord{ItemType: "Vocabulary", Event: EventUpdate, Diff: json.RawMessage(`{"status":["open","learning"],"updated_at":["x","y"]}`)},
			want:   "Status changed",
		},
		{
			name:   "only bookkeeping columns falls back",
			record: ChangeRecord{ItemType: "Vocabulary", Event: EventUpdate, Diff: json.RawMessage(`{"updated_at":["x","y"]}`)},
			want:   "UPDATE Vocabulary",
		},
		{
			name:   "missing diff falls back",
			record: ChangeRecord{ItemType: "User", Event: EventCreate},
			want:   "CREATE User",
		},
		{
			name:   "malformed diff falls back",
			record: ChangeRecord{ItemType: "User", Event: EventUpdate, Diff: json.RawMessage(`not json`)},
			want:   "UPDATE User",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Summarize(tt.record))
		})
	}
}
