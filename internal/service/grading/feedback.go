package grading

import "math"

// Тексты отзывов по уровням результата
const (
	FeedbackTop  = "Mantap, kamu keren 🤩"
	FeedbackMid  = "Bagus! 👍"
	FeedbackLow  = "Semangat — jangan menyerah, belajar lagi"
	midThreshold = 75
)

// Feedback возвращает текст отзыва для процента.
// Одни и те же пороги используются и для этапа, и для накопленного среднего.
func Feedback(percentage int) string {
	switch {
	case percentage == 100:
		return FeedbackTop
	case percentage >= midThreshold:
		return FeedbackMid
	default:
		return FeedbackLow
	}
}

// Average возвращает невзвешенное среднее арифметическое процентов,
// округлённое до целого. Второе значение false для пустого входа.
func Average(percentages []int) (int, bool) {
	if len(percentages) == 0 {
		return 0, false
	}
	sum := 0
	for _, p := range percentages {
		sum += p
	}
	return int(math.Round(float64(sum) / float64(len(percentages)))), true
}
