package websocket

import (
	"encoding/json"
	"log"

	"github.com/yourusername/checkmyxy-api/internal/domain/entity"
)

// Event — конверт события для подписчиков панели учителя
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// ResultCreatedData — полезная нагрузка события о новом результате.
// Разбор ответов не включается: панели достаточно сводки.
type ResultCreatedData struct {
	Student     string `json:"student"`
	ClassName   string `json:"class_name"`
	Stage       int    `json:"stage"`
	Percentage  int    `json:"percentage"`
	CompletedAt string `json:"completed_at"`
}

// Manager публикует доменные события в хаб
type Manager struct {
	hub *Hub
}

// NewManager создает менеджер событий и запускает хаб
func NewManager() *Manager {
	hub := NewHub()
	go hub.Run()
	return &Manager{hub: hub}
}

// Hub возвращает хаб для регистрации новых подключений
func (m *Manager) Hub() *Hub {
	return m.hub
}

// NotifyResultCreated рассылает событие о сохранённом результате
func (m *Manager) NotifyResultCreated(result *entity.Result) {
	event := Event{
		Type: "result:created",
		Data: ResultCreatedData{
			Student:     result.Student,
			ClassName:   result.ClassName,
			Stage:       result.Stage,
			Percentage:  result.Percentage,
			CompletedAt: result.CompletedAt.Format("2006-01-02T15:04:05Z07:00"),
		},
	}

	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("[WebSocket] Ошибка сериализации события: %v", err)
		return
	}
	m.hub.Broadcast(payload)
}
