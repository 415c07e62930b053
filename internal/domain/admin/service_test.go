package admin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"vokabular/internal/domain/user"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListUsers(ctx context.Context) ([]user.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]user.User), args.Error(1)
}

func (m *MockRepository) Stats(ctx context.Context) (Stats, error) {
	args := m.Called(ctx)
	return args.Get(0).(Stats), args.Error(1)
}

func (m *MockRepository) SetSuspended(ctx context.Context, id int, suspended bool) error {
	args := m.Called(ctx, id, suspended)
	return args.Error(0)
}

func (m *MockRepository) SetAdmin(ctx context.Context, id int, admin bool) error {
	args := m.Called(ctx, id, admin)
	return args.Error(0)
}

func (m *MockRepository) EmailInUse(ctx context.Context, email string, excludeID int) (bool, error) {
	args := m.Called(ctx, email, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) UpdateEmail(ctx context.Context, id int, email string) error {
	args := m.Called(ctx, id, email)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestService_Index(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	users := []user.User{{ID: 1, Email: "admin@example.com", Admin: true}, {ID: 2, Email: "anna@example.com"}}
	stats := Stats{TotalUsers: 2, AdminUsers: 1, ActiveUsers: 2}

	mockRepo.On("ListUsers", mock.Anything).Return(users, nil)
	mockRepo.On("Stats", mock.Anything).Return(stats, nil)

	gotUsers, gotStats, err := service.Index(context.Background())
	require.NoError(t, err)
	assert.Equal(t, users, gotUsers)
	assert.Equal(t, stats, gotStats)

	mockRepo.AssertExpectations(t)
}

func TestService_Suspend(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("SetSuspended", mock.Anything, 2, true).Return(nil)

	require.NoError(t, service.Suspend(context.Background(), 1, 2))

	mockRepo.AssertExpectations(t)
}

func TestService_Suspend_Self(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	err := service.Suspend(context.Background(), 1, 1)
	assert.ErrorIs(t, err, ErrSelfSuspend)

	mockRepo.AssertNotCalled(t, "SetSuspended")
}

func TestService_Unsuspend_SelfAllowed(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("SetSuspended", mock.Anything, 1, false).Return(nil)

	require.NoError(t, service.Unsuspend(context.Background(), 1, 1))

	mockRepo.AssertExpectations(t)
}

func TestService_Promote_Self(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	err := service.Promote(context.Background(), 1, 1)
	assert.ErrorIs(t, err, ErrAlreadyAdmin)

	mockRepo.AssertNotCalled(t, "SetAdmin")
}

func TestService_Demote_Self(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	err := service.Demote(context.Background(), 1, 1)
	assert.ErrorIs(t, err, ErrSelfDemote)

	mockRepo.AssertNotCalled(t, "SetAdmin")
}

func TestService_Demote(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("SetAdmin", mock.Anything, 2, false).Return(nil)

	require.NoError(t, service.Demote(context.Background(), 1, 2))

	mockRepo.AssertExpectations(t)
}

func TestService_Delete_Self(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	err := service.Delete(context.Background(), 1, 1)
	assert.ErrorIs(t, err, ErrSelfDelete)

	mockRepo.AssertNotCalled(t, "Delete")
}

func TestService_ChangeEmail(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("EmailInUse", mock.Anything, "new@example.com", 2).Return(false, nil)
	mockRepo.On("UpdateEmail", mock.Anything, 2, "new@example.com").Return(nil)

	require.NoError(t, service.ChangeEmail(context.Background(), 1, 2, "  New@Example.com "))

	mockRepo.AssertExpectations(t)
}

func TestService_ChangeEmail_Empty(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	err := service.ChangeEmail(context.Background(), 1, 2, "   ")
	assert.ErrorIs(t, err, ErrEmptyEmail)

	mockRepo.AssertNotCalled(t, "UpdateEmail")
}

func TestService_ChangeEmail_Self(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	err := service.ChangeEmail(context.Background(), 1, 1, "new@example.com")
	assert.ErrorIs(t, err, ErrSelfEmailChange)

	mockRepo.AssertNotCalled(t, "EmailInUse")
	mockRepo.AssertNotCalled(t, "UpdateEmail")
}

func TestService_ChangeEmail_Taken(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("EmailInUse", mock.Anything, "taken@example.com", 2).Return(true, nil)

	err := service.ChangeEmail(context.Background(), 1, 2, "taken@example.com")
	assert.ErrorIs(t, err, user.ErrEmailTaken)

	mockRepo.AssertNotCalled(t, "UpdateEmail")
}

func TestSelfActionError_Message(t *testing.T) {
	// The message is surfaced to the admin verbatim.
	assert.Equal(t, "you cannot suspend yourself", ErrSelfSuspend.Error())
	assert.Equal(t, "you cannot delete yourself", ErrSelfDelete.Error())
}
