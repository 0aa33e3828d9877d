package service

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/yourusername/checkmyxy-api/internal/domain/entity"
	"github.com/yourusername/checkmyxy-api/internal/domain/repository"
)

// MockQuestionRepo - мок репозитория вопросов
type MockQuestionRepo struct {
	mock.Mock
}

func (m *MockQuestionRepo) Create(question *entity.Question) error {
	args := m.Called(question)
	return args.Error(0)
}

func (m *MockQuestionRepo) CreateBatch(questions []entity.Question) error {
	args := m.Called(questions)
	return args.Error(0)
}

func (m *MockQuestionRepo) GetAll() ([]entity.Question, error) {
	args := m.Called()
	return args.Get(0).([]entity.Question), args.Error(1)
}

func (m *MockQuestionRepo) GetByStage(stage int) ([]entity.Question, error) {
	args := m.Called(stage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Question), args.Error(1)
}

func (m *MockQuestionRepo) GetByID(id string) (*entity.Question, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Question), args.Error(1)
}

func (m *MockQuestionRepo) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockQuestionRepo) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQuestionRepo) ReplaceAll(questions []entity.Question) error {
	args := m.Called(questions)
	return args.Error(0)
}

// MockResultRepo - мок репозитория результатов
type MockResultRepo struct {
	mock.Mock
}

func (m *MockResultRepo) Create(result *entity.Result) error {
	args := m.Called(result)
	return args.Error(0)
}

func (m *MockResultRepo) GetByStudent(identity entity.StudentIdentity) ([]entity.Result, error) {
	args := m.Called(identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Result), args.Error(1)
}

func (m *MockResultRepo) GetByStudentAndStage(identity entity.StudentIdentity, stage int) (*entity.Result, error) {
	args := m.Called(identity, stage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Result), args.Error(1)
}

func (m *MockResultRepo) GetAll() ([]entity.Result, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Result), args.Error(1)
}

func (m *MockResultRepo) GetByID(id uint) (*entity.Result, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Result), args.Error(1)
}

func (m *MockResultRepo) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockResultRepo) Stats() (*repository.DashboardStats, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.DashboardStats), args.Error(1)
}

// MockSessionRepo - мок хранилища сессий учеников
type MockSessionRepo struct {
	mock.Mock
}

func (m *MockSessionRepo) SaveIdentity(token string, identity entity.StudentIdentity, ttl time.Duration) error {
	args := m.Called(token, identity, ttl)
	return args.Error(0)
}

func (m *MockSessionRepo) GetIdentity(token string) (entity.StudentIdentity, error) {
	args := m.Called(token)
	return args.Get(0).(entity.StudentIdentity), args.Error(1)
}

func (m *MockSessionRepo) DeleteIdentity(token string) error {
	args := m.Called(token)
	return args.Error(0)
}
