package services

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/SoraAki000/Tg-HelpDeskBot/config"
	"github.com/SoraAki000/Tg-HelpDeskBot/db"
)

// telegramNotifier отправляет уведомления контроллера заявок через Telegram.
type telegramNotifier struct {
	api Sender
}

func (n *telegramNotifier) Notify(uid int64, text string) error {
	_, err := n.api.Send(tgbotapi.NewMessage(uid, text))
	return err
}

// Run подключается к Telegram и базе и обрабатывает обновления до
// закрытия канала. События одного пользователя обрабатываются по очереди.
func Run(cfg *config.Config, log *zap.Logger) error {
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return fmt.Errorf("create bot: %w", err)
	}
	log.Info("authorized", zap.String("account", api.Self.UserName))

	store, err := db.Open(cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}

	gate := NewAccessGate(store, log)
	sessions := NewSessions()
	tickets := NewLifecycle(store, &telegramNotifier{api: api}, cfg.AdminID, log)
	bot := NewBot(api, store, gate, sessions, tickets, cfg, log)

	// Приглашение со стартовой ссылкой уходит администратору при запуске.
	link := fmt.Sprintf("https://t.me/%s?start=%s", api.Self.UserName, cfg.AccessKey)
	if _, err := api.Send(tgbotapi.NewMessage(cfg.AdminID, fmt.Sprintf(
		"Бот запущен, приглашение работает по ссылке %s", link))); err != nil {
		log.Warn("startup notice failed", zap.Error(err))
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	for update := range api.GetUpdatesChan(u) {
		bot.HandleUpdate(update)
	}
	return nil
}
