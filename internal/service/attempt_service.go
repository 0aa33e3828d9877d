package service

import (
	"fmt"
	"log"
	"sync"

	"github.com/yourusername/checkmyxy-api/internal/domain/entity"
	"github.com/yourusername/checkmyxy-api/internal/domain/repository"
	apperrors "github.com/yourusername/checkmyxy-api/internal/pkg/errors"
	"github.com/yourusername/checkmyxy-api/internal/service/grading"
)

// AttemptService владеет активными попытками учеников и конечным автоматом
// потока {Login, Dashboard, Quiz, Result}. Идентичность ученика всегда
// передаётся явным параметром; сервис не читает никакого внешнего состояния.
// Попытки живут только в памяти: рестарт процесса или выход ученика их стирает.
type AttemptService struct {
	questionRepo  repository.QuestionRepository
	resultRepo    repository.ResultRepository
	resultService *ResultService

	mu    sync.Mutex
	flows map[string]*studentFlow
}

// studentFlow — состояние потока одного ученика
type studentFlow struct {
	state   FlowState
	session *QuizSession
}

// QuestionView — текущий вопрос попытки для отображения.
// Question содержит ключ и пояснение; их скрывает слой DTO.
type QuestionView struct {
	Stage    int
	Index    int
	Total    int
	Question entity.Question
	Given    string
	AtStart  bool
	AtEnd    bool
}

// StartOutcome — результат команды "начать этап": либо сохранённый результат
// уже пройденного этапа, либо первый вопрос новой попытки.
type StartOutcome struct {
	Completed *entity.Result
	View      *QuestionView
}

// DashboardView — панель ученика: состояния этапов и накопленный итог
type DashboardView struct {
	Statuses   []StageStatus
	HasAverage bool
	Average    int
	Feedback   string
}

// NewAttemptService создает новый сервис попыток
func NewAttemptService(
	questionRepo repository.QuestionRepository,
	resultRepo repository.ResultRepository,
	resultService *ResultService,
) *AttemptService {
	return &AttemptService{
		questionRepo:  questionRepo,
		resultRepo:    resultRepo,
		resultService: resultService,
		flows:         make(map[string]*studentFlow),
	}
}

// flowFor возвращает поток ученика, создавая его в состоянии Dashboard.
// Отсутствие потока после рестарта сервера при живой сессии Redis —
// нормальная ситуация, ученик просто оказывается на панели.
func (s *AttemptService) flowFor(identity entity.StudentIdentity) *studentFlow {
	key := identity.Key()
	flow, ok := s.flows[key]
	if !ok {
		flow = &studentFlow{state: FlowDashboard}
		s.flows[key] = flow
	}
	return flow
}

// Dashboard выполняет команду перехода на панель ученика.
// Переход с активной попытки бросает её: незавершённые ответы не сохраняются.
func (s *AttemptService) Dashboard(identity entity.StudentIdentity) (*DashboardView, error) {
	history, err := s.resultRepo.GetByStudent(identity)
	if err != nil {
		return nil, fmt.Errorf("failed to load result history: %w", err)
	}

	s.mu.Lock()
	flow := s.flowFor(identity)
	if flow.state == FlowQuiz && flow.session != nil {
		log.Printf("[AttemptService] Попытка этапа %d брошена учеником %q (переход на панель)", flow.session.Stage, identity.Key())
	}
	flow.state = FlowDashboard
	flow.session = nil
	s.mu.Unlock()

	view := &DashboardView{Statuses: StageStatuses(history)}
	percentages := make([]int, 0, len(history))
	for _, r := range history {
		percentages = append(percentages, r.Percentage)
	}
	if avg, ok := grading.Average(percentages); ok {
		view.HasAverage = true
		view.Average = avg
		view.Feedback = grading.Feedback(avg)
	}
	return view, nil
}

// StartStage выполняет команду "начать этап N".
//   - пройденный этап: возвращает сохранённый результат, новая попытка не создаётся;
//   - закрытый этап: ErrStageLocked;
//   - этап без вопросов: ErrNoQuestions, попытка не создаётся;
//   - иначе создаётся попытка и возвращается первый вопрос.
func (s *AttemptService) StartStage(identity entity.StudentIdentity, stage int) (*StartOutcome, error) {
	if stage < entity.MinStage || stage > entity.MaxStage {
		return nil, fmt.Errorf("%w: stage %d out of range", apperrors.ErrValidation, stage)
	}

	history, err := s.resultRepo.GetByStudent(identity)
	if err != nil {
		return nil, fmt.Errorf("failed to load result history: %w", err)
	}

	status := stageStatusFor(history, stage)
	switch status.State {
	case StageCompleted:
		// Идемпотентность: повторный старт пройденного этапа — чтение, не запись
		s.setFlow(identity, FlowResult, nil)
		return &StartOutcome{Completed: status.Result}, nil
	case StageLocked:
		return nil, fmt.Errorf("%w: stage %d requires stage %d result", apperrors.ErrStageLocked, stage, stage-1)
	}

	questions, err := s.questionRepo.GetByStage(stage)
	if err != nil {
		return nil, fmt.Errorf("failed to load questions for stage %d: %w", stage, err)
	}

	session, err := NewQuizSession(stage, questions)
	if err != nil {
		return nil, err
	}

	s.setFlow(identity, FlowQuiz, session)
	log.Printf("[AttemptService] Ученик %q начал этап %d (%d вопросов)", identity.Key(), stage, session.Len())

	view := s.viewOf(session)
	return &StartOutcome{View: &view}, nil
}

// CurrentQuestion возвращает текущий вопрос активной попытки
func (s *AttemptService) CurrentQuestion(identity entity.StudentIdentity) (*QuestionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.activeSession(identity)
	if err != nil {
		return nil, err
	}
	view := s.viewOf(session)
	return &view, nil
}

// RecordAnswer записывает ответ в слот вопроса index активной попытки
func (s *AttemptService) RecordAnswer(identity entity.StudentIdentity, index int, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.activeSession(identity)
	if err != nil {
		return err
	}
	return session.RecordAnswer(index, value)
}

// Next переходит к следующему вопросу (no-op на последнем)
func (s *AttemptService) Next(identity entity.StudentIdentity) (*QuestionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.activeSession(identity)
	if err != nil {
		return nil, err
	}
	session.Next()
	view := s.viewOf(session)
	return &view, nil
}

// Back возвращается к предыдущему вопросу (no-op на первом)
func (s *AttemptService) Back(identity entity.StudentIdentity) (*QuestionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.activeSession(identity)
	if err != nil {
		return nil, err
	}
	session.Back()
	view := s.viewOf(session)
	return &view, nil
}

// Finish завершает активную попытку: оценивает ответы, сохраняет результат
// и переводит поток в состояние Result. Попытка уничтожается.
func (s *AttemptService) Finish(identity entity.StudentIdentity) (*entity.Result, error) {
	s.mu.Lock()
	session, err := s.activeSession(identity)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	questions, answers := session.Snapshot()
	stage := session.Stage
	s.mu.Unlock()

	// Оценивание и запись вне мьютекса: I/O не должен держать реестр попыток
	result, err := s.resultService.RecordAttempt(identity, stage, questions, answers)
	if err != nil {
		return nil, err
	}

	s.setFlow(identity, FlowResult, nil)
	return result, nil
}

// Drop забывает поток ученика (команда выхода)
func (s *AttemptService) Drop(identity entity.StudentIdentity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.flows, identity.Key())
}

// activeSession возвращает попытку потока в состоянии Quiz. Вызывается под мьютексом.
func (s *AttemptService) activeSession(identity entity.StudentIdentity) (*QuizSession, error) {
	flow, ok := s.flows[identity.Key()]
	if !ok || flow.state != FlowQuiz || flow.session == nil {
		return nil, apperrors.ErrNoActiveAttempt
	}
	return flow.session, nil
}

// setFlow переводит поток ученика в новое состояние
func (s *AttemptService) setFlow(identity entity.StudentIdentity, state FlowState, session *QuizSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	flow := s.flowFor(identity)
	flow.state = state
	flow.session = session
}

// viewOf строит представление текущего вопроса попытки
func (s *AttemptService) viewOf(session *QuizSession) QuestionView {
	question, given := session.Current()
	return QuestionView{
		Stage:    session.Stage,
		Index:    session.Index(),
		Total:    session.Len(),
		Question: question,
		Given:    given,
		AtStart:  session.AtStart(),
		AtEnd:    session.AtEnd(),
	}
}
