package session

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
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

func (m *MockRepository) Create(ctx context.Context, userID int, tokenHash string, expiresAt time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiresAt)
	return args.Error(0)
}

func (m *MockRepository) Validate(ctx context.Context, tokenHash string) (int, error) {
	args := m.Called(ctx, tokenHash)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) DeleteExpired(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestService_Create(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	var storedHash string
	mockRepo.On("Create", mock.Anything, 42, mock.MatchedBy(func(hash string) bool {
		storedHash = hash
		_, err := hex.DecodeString(hash)
		return err == nil && len(hash) == sha256.Size*2
	}), mock.AnythingOfType("time.Time")).Return(nil)

	token, err := service.Create(context.Background(), 42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// The issued token itself must never equal what was stored.
	assert.NotEqual(t, token, storedHash)

	// And the stored value is the hex sha256 of the token.
	sum := sha256.Sum256([]byte(token))
	assert.Equal(t, hex.EncodeToString(sum[:]), storedHash)

	decoded, err := base64.URLEncoding.DecodeString(token)
	require.NoError(t, err)
	assert.Len(t, decoded, 32)

	mockRepo.AssertExpectations(t)
}

func TestService_Create_TokensAreUnique(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Create", mock.Anything, 42, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).Return(nil)

	first, err := service.Create(context.Background(), 42)
	require.NoError(t, err)
	second, err := service.Create(context.Background(), 42)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestService_Validate(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	token := "some-opaque-token"
	sum := sha256.Sum256([]byte(token))

	mockRepo.On("Validate", mock.Anything, hex.EncodeToString(sum[:])).Return(42, nil)

	userID, err := service.Validate(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, 42, userID)

	mockRepo.AssertExpectations(t)
}

func TestService_Validate_Invalid(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Validate", mock.Anything, mock.AnythingOfType("string")).Return(0, ErrInvalidSession)

	_, err := service.Validate(context.Background(), "expired-token")
	assert.ErrorIs(t, err, ErrInvalidSession)

	mockRepo.AssertExpectations(t)
}
