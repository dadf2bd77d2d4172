package commands_test

import (
	"context"
	"errors"
	"testing"

	"zones/internal/core/application/usecases/commands"
	"zones/internal/core/domain/model/kernel"
	"zones/internal/core/domain/model/tenant"
	"zones/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock implementations for testing.
type MockTenantRepository struct {
	mock.Mock
}

func (m *MockTenantRepository) Add(ctx context.Context, t *tenant.Tenant) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTenantRepository) Update(ctx context.Context, t *tenant.Tenant) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTenantRepository) Get(ctx context.Context, id kernel.UUID) (*tenant.Tenant, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*tenant.Tenant), args.Error(1)
}

func (m *MockTenantRepository) GetBySlug(ctx context.Context, slug string) (*tenant.Tenant, error) {
	args := m.Called(ctx, slug)
	return args.Get(0).(*tenant.Tenant), args.Error(1)
}

type MockTenantUoW struct {
	mock.Mock
}

func (m *MockTenantUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTenantUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTenantUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTenantUoW) TenantRepository() ports.TenantRepository {
	args := m.Called()
	return args.Get(0).(ports.TenantRepository)
}

type MockTenantUoWFactory struct {
	mock.Mock
}

func (m *MockTenantUoWFactory) Create() commands.TenantUoW {
	args := m.Called()
	return args.Get(0).(commands.TenantUoW)
}

func TestNewCreateTenantCommandHandler(t *testing.T) {
	// Arrange
	mockFactory := new(MockTenantUoWFactory)

	// Act
	handler := commands.NewCreateTenantCommandHandler(mockFactory)

	// Assert
	assert.NotNil(t, handler)
}

func TestCreateTenantCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewCreateTenantCommand("Pizza Presto", "pizza-presto")
	require.NoError(t, err)

	mockRepo := new(MockTenantRepository)
	mockUoW := new(MockTenantUoW)
	mockFactory := new(MockTenantUoWFactory)

	// Set up expectations in order
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("TenantRepository").Return(mockRepo).Once(),
		mockRepo.On("Add", ctx, mock.AnythingOfType("*tenant.Tenant")).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateTenantCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestCreateTenantCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	ctx := t.Context()
	var invalidCmd commands.CreateTenantCommand // zero value command

	mockFactory := new(MockTenantUoWFactory)
	handler := commands.NewCreateTenantCommandHandler(mockFactory)

	// Act
	err := handler.Handle(ctx, invalidCmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateTenantCommandIsNotConstructed)
	mockFactory.AssertExpectations(t) // No calls should be made to factory
}

func TestCreateTenantCommandHandler_Handle_BeginTransactionError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewCreateTenantCommand("Pizza Presto", "pizza-presto")
	require.NoError(t, err)

	expectedError := errors.New("begin transaction failed")
	mockUoW := new(MockTenantUoW)
	mockFactory := new(MockTenantUoWFactory)

	mock.InOrder(
		mockFactory.On("Create").Return(mockUoW).Once(),
		mockUoW.On("Begin", ctx).Return(expectedError).Once(),
	)

	handler := commands.NewCreateTenantCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.Equal(t, expectedError, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
}

func TestCreateTenantCommandHandler_Handle_RepositoryAddError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewCreateTenantCommand("Pizza Presto", "pizza-presto")
	require.NoError(t, err)

	expectedError := errors.New("repository add failed")
	mockRepo := new(MockTenantRepository)
	mockUoW := new(MockTenantUoW)
	mockFactory := new(MockTenantUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("TenantRepository").Return(mockRepo).Once(),
		mockRepo.On("Add", ctx, mock.AnythingOfType("*tenant.Tenant")).Return(expectedError).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateTenantCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.Equal(t, expectedError, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestCreateTenantCommandHandler_Handle_CommitErrorWithRollbackError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewCreateTenantCommand("Pizza Presto", "pizza-presto")
	require.NoError(t, err)

	commitError := errors.New("commit failed")
	rollbackError := errors.New("rollback failed")
	mockRepo := new(MockTenantRepository)
	mockUoW := new(MockTenantUoW)
	mockFactory := new(MockTenantUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("TenantRepository").Return(mockRepo).Once(),
		mockRepo.On("Add", ctx, mock.AnythingOfType("*tenant.Tenant")).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(commitError).Once(),
		mockUoW.On("Rollback", ctx).Return(rollbackError).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateTenantCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	// Should return the original commit error, not the rollback error
	require.Error(t, err)
	assert.Equal(t, commitError, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestCreateTenantCommandHandler_Handle_VerifiesTenantDataCorrectness(t *testing.T) {
	// Arrange
	ctx := t.Context()
	name := "Pasta Palazzo"
	slug := "pasta-palazzo"

	cmd, err := commands.NewCreateTenantCommand(name, slug)
	require.NoError(t, err)

	var capturedTenant *tenant.Tenant
	mockRepo := new(MockTenantRepository)
	mockUoW := new(MockTenantUoW)
	mockFactory := new(MockTenantUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("TenantRepository").Return(mockRepo).Once(),
		mockRepo.On("Add", ctx, mock.MatchedBy(func(tn *tenant.Tenant) bool {
			capturedTenant = tn
			return true
		})).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateTenantCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, capturedTenant)

	assert.Equal(t, cmd.TenantID(), capturedTenant.ID())
	assert.Equal(t, name, capturedTenant.Name())
	assert.Equal(t, slug, capturedTenant.Slug())
	assert.True(t, capturedTenant.IsActive())
	require.NoError(t, capturedTenant.Validate())

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}
