package entity

import "strings"

// StudentIdentity — пара "имя + класс", которую ученик вводит при входе.
// Это не аутентифицированный аккаунт, а просто метка: два ученика с одинаковой
// парой считаются одним и тем же учеником.
type StudentIdentity struct {
	Name      string `json:"name"`
	ClassName string `json:"class_name"`
}

// NewStudentIdentity обрезает пробелы и возвращает идентичность.
// Валидация минимальна: оба поля обязательны, всё остальное принимается как есть.
func NewStudentIdentity(name, className string) (StudentIdentity, bool) {
	id := StudentIdentity{
		Name:      strings.TrimSpace(name),
		ClassName: strings.TrimSpace(className),
	}
	return id, id.Name != "" && id.ClassName != ""
}

// Key возвращает составной ключ идентичности для карт и журналов.
func (s StudentIdentity) Key() string {
	return s.ClassName + "||" + s.Name
}
