package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или ресурс не найдены.
	ErrNotFound = errors.New("record not found")

	// ErrUnauthorized используется для ошибок авторизации (неверный токен, неверный пароль).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrValidation используется для ошибок валидации входных данных.
	ErrValidation = errors.New("validation failed")

	// ErrConflict используется для конфликтов состояния (например, повторное сохранение
	// результата для уже пройденного этапа).
	ErrConflict = errors.New("resource state conflict")
)

// Ошибки предметной области: прохождение этапов и активные попытки
var (
	// ErrStageLocked возвращается при попытке начать этап, предыдущий этап которого не пройден.
	ErrStageLocked = errors.New("stage is locked")

	// ErrStageCompleted возвращается при попытке создать вторую попытку для уже пройденного этапа.
	ErrStageCompleted = errors.New("stage already completed")

	// ErrNoQuestions возвращается, когда для запрошенного этапа не настроено ни одного вопроса.
	ErrNoQuestions = errors.New("no questions configured for stage")

	// ErrNoActiveAttempt возвращается для операций навигации/оценивания без активной попытки.
	ErrNoActiveAttempt = errors.New("no active attempt")
)
