package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Типы вопросов. Значения совпадают с форматом экспорта банка вопросов.
const (
	QuestionTypeMCQ       = "mcq"   // выбор одного варианта из списка
	QuestionTypeTrueFalse = "tf"    // Benar / Salah
	QuestionTypeShort     = "short" // короткий текстовый ответ
)

// Границы этапов: три фиксированных уровня сложности.
const (
	MinStage = 1
	MaxStage = 3
)

// TrueFalseOptions — фиксированная пара вариантов для вопросов типа tf.
func TrueFalseOptions() StringArray {
	return StringArray{"Benar", "Salah"}
}

// StringArray - пользовательский тип для хранения списка строк в JSONB
type StringArray []string

// Scan реализует интерфейс sql.Scanner для StringArray.
// GORM использует его при чтении JSONB колонки из базы.
func (o *StringArray) Scan(value interface{}) error {
	if value == nil {
		*o = StringArray{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to unmarshal JSONB value: expected []byte")
	}

	if len(bytes) == 0 {
		*o = StringArray{}
		return nil
	}

	return json.Unmarshal(bytes, o)
}

// Value реализует интерфейс driver.Valuer для StringArray
func (o StringArray) Value() (driver.Value, error) {
	if len(o) == 0 {
		// Пустой JSON массив вместо null
		return []byte("[]"), nil
	}
	return json.Marshal(o)
}

// Question представляет один вопрос банка заданий.
// Каждый вопрос принадлежит ровно одному этапу (stage 1..3).
type Question struct {
	ID        string      `gorm:"primaryKey;size:64" json:"id"`
	Stage     int         `gorm:"not null;index" json:"stage"`
	Type      string      `gorm:"size:10;not null" json:"type"`
	Text      string      `gorm:"type:text;not null" json:"text"`
	Options   StringArray `gorm:"type:jsonb;not null" json:"options"`
	Answer    string      `gorm:"size:255;not null" json:"answer"`
	Score     int         `gorm:"not null;default:1" json:"score"`
	Explain   string      `gorm:"type:text" json:"explain"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// IsChoice сообщает, выбирается ли ответ из списка вариантов.
func (q *Question) IsChoice() bool {
	return q.Type == QuestionTypeMCQ || q.Type == QuestionTypeTrueFalse
}

// Validate проверяет инварианты вопроса перед сохранением:
// этап в диапазоне 1..3, положительный вес, для mcq есть хотя бы один вариант,
// для tf варианты ровно {Benar, Salah}.
func (q *Question) Validate() error {
	if q.Stage < MinStage || q.Stage > MaxStage {
		return fmt.Errorf("stage must be between %d and %d, got %d", MinStage, MaxStage, q.Stage)
	}
	if q.Text == "" {
		return errors.New("question text is required")
	}
	if q.Answer == "" {
		return errors.New("answer key is required")
	}
	if q.Score <= 0 {
		return fmt.Errorf("score must be positive, got %d", q.Score)
	}
	switch q.Type {
	case QuestionTypeMCQ:
		if len(q.Options) < 1 {
			return errors.New("mcq question requires at least one option")
		}
	case QuestionTypeTrueFalse:
		tf := TrueFalseOptions()
		if len(q.Options) != 2 || q.Options[0] != tf[0] || q.Options[1] != tf[1] {
			return errors.New("tf question options must be exactly {Benar, Salah}")
		}
	case QuestionTypeShort:
		// Варианты для короткого ответа не используются
	default:
		return fmt.Errorf("unknown question type %q", q.Type)
	}
	return nil
}
