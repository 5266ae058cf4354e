package services

import (
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/SoraAki000/Tg-HelpDeskBot/config"
	"github.com/SoraAki000/Tg-HelpDeskBot/db"
	"github.com/SoraAki000/Tg-HelpDeskBot/models"
)

const adminUID int64 = 42

func newTestStore(t *testing.T) *db.Store {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	store, err := db.NewStore(gdb)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return store
}

// fakeSender записывает всё, что бот пытается отправить.
type fakeSender struct {
	sent []tgbotapi.Chattable
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	return tgbotapi.Message{MessageID: len(f.sent)}, nil
}

func (f *fakeSender) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	f.sent = append(f.sent, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (f *fakeSender) messagesTo(chatID int64) []tgbotapi.MessageConfig {
	var out []tgbotapi.MessageConfig
	for _, c := range f.sent {
		if m, ok := c.(tgbotapi.MessageConfig); ok && m.ChatID == chatID {
			out = append(out, m)
		}
	}
	return out
}

func (f *fakeSender) lastTextTo(t *testing.T, chatID int64) string {
	t.Helper()
	msgs := f.messagesTo(chatID)
	if len(msgs) == 0 {
		t.Fatalf("no messages sent to %d", chatID)
	}
	return msgs[len(msgs)-1].Text
}

func (f *fakeSender) edits() []tgbotapi.EditMessageTextConfig {
	var out []tgbotapi.EditMessageTextConfig
	for _, c := range f.sent {
		if e, ok := c.(tgbotapi.EditMessageTextConfig); ok {
			out = append(out, e)
		}
	}
	return out
}

func newTestBot(t *testing.T) (*Bot, *fakeSender, *db.Store) {
	t.Helper()
	store := newTestStore(t)
	api := &fakeSender{}
	log := zap.NewNop()
	cfg := &config.Config{AdminID: adminUID, AccessKey: "secret"}
	gate := NewAccessGate(store, log)
	tickets := NewLifecycle(store, &telegramNotifier{api: api}, adminUID, log)
	bot := NewBot(api, store, gate, NewSessions(), tickets, cfg, log)
	return bot, api, store
}

func testUser(uid int64) *tgbotapi.User {
	return &tgbotapi.User{ID: uid, FirstName: "Иван", LastName: "Петров", UserName: "ivan"}
}

func commandUpdate(from *tgbotapi.User, text string) tgbotapi.Update {
	cmdLen := len(text)
	if i := strings.Index(text, " "); i != -1 {
		cmdLen = i
	}
	return tgbotapi.Update{Message: &tgbotapi.Message{
		From:     from,
		Chat:     &tgbotapi.Chat{ID: from.ID},
		Text:     text,
		Entities: []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: cmdLen}},
	}}
}

func textUpdate(from *tgbotapi.User, text string) tgbotapi.Update {
	return tgbotapi.Update{Message: &tgbotapi.Message{
		From: from,
		Chat: &tgbotapi.Chat{ID: from.ID},
		Text: text,
	}}
}

func callbackUpdate(uid int64, data string) tgbotapi.Update {
	return tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
		ID:      "cb",
		From:    &tgbotapi.User{ID: uid},
		Data:    data,
		Message: &tgbotapi.Message{MessageID: 7, Chat: &tgbotapi.Chat{ID: uid}},
	}}
}

func registerTestUser(t *testing.T, store *db.Store, uid int64, department string) {
	t.Helper()
	user := &models.User{UserUID: uid, FirstName: "Иван", LastName: "Петров", Department: department}
	if err := store.AddUser(user); err != nil {
		t.Fatalf("seed user %d: %v", uid, err)
	}
}
