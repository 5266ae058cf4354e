package services

import (
	"sync"

	"go.uber.org/zap"

	"github.com/SoraAki000/Tg-HelpDeskBot/db"
)

// Бюджет попыток запуска без ключа до блокировки.
const accessAttempts = 5

// AccessGate считает неудачные попытки входа и управляет блокировками.
// Счётчик попыток живёт только в памяти процесса и сбрасывается рестартом,
// блокировки хранятся в базе.
type AccessGate struct {
	store *db.Store
	log   *zap.Logger

	mu        sync.Mutex
	remaining map[int64]int
}

func NewAccessGate(store *db.Store, log *zap.Logger) *AccessGate {
	return &AccessGate{
		store:     store,
		log:       log,
		remaining: make(map[int64]int),
	}
}

func (g *AccessGate) IsBlocked(uid int64) bool {
	blocked, err := g.store.IsBlocked(uid)
	if err != nil {
		g.log.Error("blocked check failed", zap.Int64("uid", uid), zap.Error(err))
		return false
	}
	return blocked
}

// RecordFailedAccess уменьшает счётчик попыток пользователя и возвращает
// остаток. Ноль означает, что пользователя пора блокировать.
func (g *AccessGate) RecordFailedAccess(uid int64) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	remaining, ok := g.remaining[uid]
	if !ok {
		remaining = accessAttempts
	}
	remaining--
	g.remaining[uid] = remaining
	return remaining
}

func (g *AccessGate) Block(uid int64, reason string) error {
	if err := g.store.AddBlockedUser(uid, reason); err != nil {
		return err
	}
	g.log.Info("user blocked", zap.Int64("uid", uid), zap.String("reason", reason))
	return nil
}

// Unblock снимает блокировку и обязательно сбрасывает счётчик попыток,
// иначе после разблокировки остался бы старый остаток.
func (g *AccessGate) Unblock(uid int64) error {
	if err := g.store.UnblockUser(uid); err != nil {
		return err
	}
	g.mu.Lock()
	delete(g.remaining, uid)
	g.mu.Unlock()
	g.log.Info("user unblocked", zap.Int64("uid", uid))
	return nil
}
