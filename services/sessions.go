package services

import "sync"

// Step — текущий шаг диалога с пользователем.
type Step int

const (
	StepRegisterName Step = iota + 1
	StepRegisterDepartment
	StepRegisterConfirm
	StepTicketTitle
	StepTicketDescription
)

// Session — незавершённый диалог одного пользователя: шаг и уже
// собранные поля. Живёт только до конца диалога.
type Session struct {
	Step       Step
	FirstName  string
	LastName   string
	Department string
	Title      string
}

// Sessions хранит активные диалоги по uid. Повторный вход в диалог
// затирает прежнее состояние.
type Sessions struct {
	mu     sync.Mutex
	active map[int64]*Session
}

func NewSessions() *Sessions {
	return &Sessions{active: make(map[int64]*Session)}
}

func (s *Sessions) Begin(uid int64, step Step) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	session := &Session{Step: step}
	s.active[uid] = session
	return session
}

func (s *Sessions) Get(uid int64) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.active[uid]
	return session, ok
}

func (s *Sessions) End(uid int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.active, uid)
}
