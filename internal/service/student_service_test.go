package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/checkmyxy-api/internal/domain/entity"
	apperrors "github.com/yourusername/checkmyxy-api/internal/pkg/errors"
)

func TestStudentLogin_IssuesToken(t *testing.T) {
	// Arrange
	sessionRepo := new(MockSessionRepo)
	sessionRepo.On("SaveIdentity", mock.AnythingOfType("string"),
		entity.StudentIdentity{Name: "Andi", ClassName: "8A"}, 12*time.Hour).Return(nil)
	svc := NewStudentService(sessionRepo, 12*time.Hour)

	// Act: имя и класс обрезаются от пробелов
	token, identity, err := svc.Login("  Andi ", " 8A ")

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "Andi", identity.Name)
	assert.Equal(t, "8A", identity.ClassName)
	sessionRepo.AssertExpectations(t)
}

func TestStudentLogin_RejectsEmptyFields(t *testing.T) {
	sessionRepo := new(MockSessionRepo)
	svc := NewStudentService(sessionRepo, time.Hour)

	_, _, err := svc.Login("", "8A")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, _, err = svc.Login("Andi", "   ")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	sessionRepo.AssertNotCalled(t, "SaveIdentity", mock.Anything, mock.Anything, mock.Anything)
}

func TestStudentLogin_TokensAreUnique(t *testing.T) {
	sessionRepo := new(MockSessionRepo)
	sessionRepo.On("SaveIdentity", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	svc := NewStudentService(sessionRepo, time.Hour)

	first, _, err := svc.Login("Andi", "8A")
	require.NoError(t, err)
	second, _, err := svc.Login("Andi", "8A")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestIdentityFor_UnknownToken(t *testing.T) {
	sessionRepo := new(MockSessionRepo)
	sessionRepo.On("GetIdentity", "missing").Return(entity.StudentIdentity{}, apperrors.ErrNotFound)
	svc := NewStudentService(sessionRepo, time.Hour)

	_, err := svc.IdentityFor("missing")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestLogout_DeletesSession(t *testing.T) {
	sessionRepo := new(MockSessionRepo)
	sessionRepo.On("DeleteIdentity", "token-1").Return(nil)
	svc := NewStudentService(sessionRepo, time.Hour)

	require.NoError(t, svc.Logout("token-1"))
	sessionRepo.AssertExpectations(t)
}
