package service

import (
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/yourusername/checkmyxy-api/internal/pkg/errors"
	"github.com/yourusername/checkmyxy-api/pkg/auth"
)

// AuthService аутентифицирует учителя. Учётная запись одна, без регистрации:
// пароль задаётся конфигурацией, при старте сохраняется только его bcrypt-хеш.
type AuthService struct {
	passwordHash []byte
	jwtService   *auth.JWTService
}

// NewAuthService создает сервис аутентификации учителя
func NewAuthService(teacherPassword string, jwtService *auth.JWTService) (*AuthService, error) {
	if teacherPassword == "" {
		return nil, fmt.Errorf("teacher password is required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(teacherPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash teacher password: %w", err)
	}
	return &AuthService{
		passwordHash: hash,
		jwtService:   jwtService,
	}, nil
}

// LoginTeacher проверяет пароль и выдаёт JWT с ролью учителя
func (s *AuthService) LoginTeacher(password string) (string, error) {
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		log.Printf("[AuthService] Неверный пароль учителя")
		return "", apperrors.ErrUnauthorized
	}

	token, err := s.jwtService.GenerateToken(auth.RoleTeacher)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}
