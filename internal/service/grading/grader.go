// Package grading реализует движок оценивания: чистая функция Grade
// сравнивает ответы ученика с ключами и считает взвешенный процент.
package grading

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/yourusername/checkmyxy-api/internal/domain/entity"
	apperrors "github.com/yourusername/checkmyxy-api/internal/pkg/errors"
)

// Report — итог оценивания одной попытки. Детали сохраняют исходный порядок вопросов.
type Report struct {
	Correct    int
	Wrong      int
	Total      int
	Percentage int
	Detail     entity.AnswerDetailList
}

// Grade оценивает попытку: для каждого вопроса сравнивает данный ответ с ключом,
// накапливает взвешенный счёт и формирует детали с пояснениями.
// Функция чистая: без I/O, одинаковый вход всегда даёт одинаковый результат.
// Слайс answers выровнен по questions; пустой набор вопросов — ошибка вызывающего,
// деление на ноль исключено.
func Grade(questions []entity.Question, answers []string) (*Report, error) {
	if len(questions) == 0 {
		return nil, apperrors.ErrNoQuestions
	}
	if len(answers) != len(questions) {
		return nil, fmt.Errorf("%w: got %d answers for %d questions", apperrors.ErrValidation, len(answers), len(questions))
	}

	report := &Report{
		Total:  len(questions),
		Detail: make(entity.AnswerDetailList, 0, len(questions)),
	}

	totalScore := 0
	earned := 0
	for i, q := range questions {
		given := strings.TrimSpace(answers[i])
		key := strings.TrimSpace(q.Answer)

		weight := q.Score
		if weight <= 0 {
			weight = 1
		}
		totalScore += weight

		correct := matches(&q, given, key)
		if correct {
			report.Correct++
			earned += weight
		} else {
			report.Wrong++
		}

		shown := given
		if shown == "" {
			shown = "-"
		}
		report.Detail = append(report.Detail, entity.AnswerDetail{
			QuestionText:  q.Text,
			GivenAnswer:   shown,
			CorrectAnswer: key,
			IsCorrect:     correct,
			Explanation:   q.Explain,
		})
	}

	// Процент взвешен по весам вопросов, а не по их количеству
	report.Percentage = int(math.Round(100 * float64(earned) / float64(totalScore)))
	return report, nil
}

// matches сравнивает данный ответ с ключом по правилам типа вопроса.
// Для вопросов с вариантами пустой ответ всегда неверен; для короткого ответа
// после строкового сравнения пробуется числовой путь.
func matches(q *entity.Question, given, key string) bool {
	if q.Type == entity.QuestionTypeShort {
		if strings.EqualFold(given, key) {
			return true
		}
		gv, gok := parseNumeric(given)
		kv, kok := parseNumeric(key)
		return gok && kok && gv == kv
	}
	return given != "" && strings.EqualFold(given, key)
}

// parseNumeric нормализует строку и пытается разобрать её как число.
// Нормализация: нижний регистр, отбрасывание префикса валюты "rp",
// удаление точек-разделителей тысяч, запятая становится десятичной точкой.
// Так "Rp2.000" и "2000" сходятся к одному значению 2000.
func parseNumeric(s string) (float64, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, false
	}
	s = strings.TrimPrefix(s, "rp")
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
