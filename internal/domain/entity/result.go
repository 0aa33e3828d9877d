package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// AnswerDetail — итог по одному вопросу внутри результата этапа.
// Пояснение сохраняется всегда, даже для правильных ответов.
type AnswerDetail struct {
	QuestionText  string `json:"question_text"`
	GivenAnswer   string `json:"given_answer"`
	CorrectAnswer string `json:"correct_answer"`
	IsCorrect     bool   `json:"is_correct"`
	Explanation   string `json:"explanation"`
}

// AnswerDetailList - пользовательский тип для хранения деталей попытки в JSONB
type AnswerDetailList []AnswerDetail

// Scan реализует интерфейс sql.Scanner для AnswerDetailList
func (d *AnswerDetailList) Scan(value interface{}) error {
	if value == nil {
		*d = AnswerDetailList{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to unmarshal JSONB value: expected []byte")
	}

	if len(bytes) == 0 {
		*d = AnswerDetailList{}
		return nil
	}

	return json.Unmarshal(bytes, d)
}

// Value реализует интерфейс driver.Valuer для AnswerDetailList
func (d AnswerDetailList) Value() (driver.Value, error) {
	if len(d) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(d)
}

// Result представляет неизменяемый результат одной завершённой попытки этапа.
// Уникальный индекс (student, class_name, stage) страхует от гонки двух
// одновременных завершений; основное правило "один результат на этап"
// обеспечивает движок прохождения этапов, а не хранилище.
type Result struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	Student     string           `gorm:"size:100;not null;uniqueIndex:idx_student_stage" json:"student"`
	ClassName   string           `gorm:"size:100;not null;uniqueIndex:idx_student_stage" json:"class_name"`
	Stage       int              `gorm:"not null;uniqueIndex:idx_student_stage" json:"stage"`
	Correct     int              `gorm:"not null;default:0" json:"correct"`
	Wrong       int              `gorm:"not null;default:0" json:"wrong"`
	Total       int              `gorm:"not null;default:0" json:"total"`
	Percentage  int              `gorm:"not null;default:0" json:"percentage"`
	Detail      AnswerDetailList `gorm:"type:jsonb;not null" json:"detail"`
	CompletedAt time.Time        `gorm:"not null;index" json:"completed_at"`
	CreatedAt   time.Time        `json:"created_at"`
}

// TableName определяет имя таблицы для GORM
func (Result) TableName() string {
	return "results"
}
