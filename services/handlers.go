package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/SoraAki000/Tg-HelpDeskBot/config"
	"github.com/SoraAki000/Tg-HelpDeskBot/db"
	"github.com/SoraAki000/Tg-HelpDeskBot/models"
)

const (
	blockedText = "Вы заблокированы. Обратитесь к администратору."
	helpText    = "Основные команды для работы:\n" +
		"/register - команда для регистрации пользователя.\n" +
		"/new_ticket - команда для создания новой заявки.\n" +
		"/tickets - команда для проверки ваших заявок.\n" +
		"/cancel - команда для отмены заявки /cancel (номер тикета для отмены).\n" +
		"/complete - команда для самостоятельного закрытия заявки /complete (номер тикета для завершения)."
)

// Sender — минимальная поверхность Telegram API, нужная обработчикам.
// *tgbotapi.BotAPI ей удовлетворяет.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Bot маршрутизирует входящие события по командам, диалогам и кнопкам.
type Bot struct {
	api       Sender
	store     *db.Store
	gate      *AccessGate
	sessions  *Sessions
	tickets   *Lifecycle
	adminID   int64
	accessKey string
	log       *zap.Logger
}

func NewBot(api Sender, store *db.Store, gate *AccessGate, sessions *Sessions,
	tickets *Lifecycle, cfg *config.Config, log *zap.Logger) *Bot {
	return &Bot{
		api:       api,
		store:     store,
		gate:      gate,
		sessions:  sessions,
		tickets:   tickets,
		adminID:   cfg.AdminID,
		accessKey: cfg.AccessKey,
		log:       log,
	}
}

func (b *Bot) HandleUpdate(update tgbotapi.Update) {
	switch {
	case update.MyChatMember != nil:
		b.handleChatMember(update.MyChatMember)
	case update.CallbackQuery != nil:
		b.handleCallback(update.CallbackQuery)
	case update.Message != nil:
		b.handleMessage(update.Message)
	}
}

func (b *Bot) handleMessage(msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}
	if msg.IsCommand() {
		b.handleCommand(msg)
		return
	}

	session, ok := b.sessions.Get(msg.From.ID)
	if !ok {
		return
	}
	if b.gate.IsBlocked(msg.From.ID) {
		b.sessions.End(msg.From.ID)
		b.reply(msg.Chat.ID, blockedText)
		return
	}
	b.advanceSession(msg, session)
}

func (b *Bot) handleCommand(msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		b.cmdStart(msg)
	case "help":
		b.cmdHelp(msg)
	case "register":
		b.cmdRegister(msg)
	case "new_ticket":
		b.cmdNewTicket(msg)
	case "tickets":
		b.cmdTickets(msg)
	case "cancel":
		b.cmdCancel(msg)
	case "complete":
		b.cmdComplete(msg)
	case "check_admin":
		b.cmdCheckAdmin(msg)
	case "block":
		b.cmdBlock(msg)
	case "unblock":
		b.cmdUnblock(msg)
	case "confirm", "reject":
		if session, ok := b.sessions.Get(msg.From.ID); ok && session.Step == StepRegisterConfirm {
			b.finishRegistration(msg, session)
			return
		}
		b.reply(msg.Chat.ID, "Неизвестная команда. Используйте /help.")
	default:
		b.reply(msg.Chat.ID, "Неизвестная команда. Используйте /help.")
	}
}

// --- Вход и блокировка ---

func (b *Bot) cmdStart(msg *tgbotapi.Message) {
	uid := msg.From.ID
	if b.gate.IsBlocked(uid) {
		b.reply(msg.Chat.ID, blockedText)
		return
	}

	if msg.CommandArguments() == b.accessKey {
		b.setCommandMenu(msg.Chat.ID == b.adminID)
		b.reply(msg.Chat.ID, "Добро пожаловать в бот!\nДля продолжения пройдите регистрацию /register "+
			"или воспользуйтесь помощью по командам /help.")
		return
	}

	remaining := b.gate.RecordFailedAccess(uid)
	if remaining > 0 {
		b.reply(msg.Chat.ID, fmt.Sprintf(
			"Вы не предоставили ключ доступа к боту или ваш ключ неверен. "+
				"У вас осталось %d попыток до блокировки.", remaining))
		return
	}

	if err := b.gate.Block(uid, msg.From.UserName); err != nil {
		b.log.Error("block failed", zap.Int64("uid", uid), zap.Error(err))
		return
	}
	b.reply(msg.Chat.ID, "Вы были заблокированы. Обратитесь к администратору бота для разблокировки.")
	notice := tgbotapi.NewMessage(b.adminID, fmt.Sprintf(
		"Пользователь %d был заблокирован за %d попыток запуска без ключа.", uid, accessAttempts))
	notice.ReplyMarkup = unlockKeyboard(uid)
	b.send(notice)
}

func (b *Bot) cmdHelp(msg *tgbotapi.Message) {
	if b.gate.IsBlocked(msg.From.ID) {
		b.reply(msg.Chat.ID, blockedText)
		return
	}
	b.reply(msg.Chat.ID, helpText)
}

// --- Регистрация ---

func (b *Bot) cmdRegister(msg *tgbotapi.Message) {
	uid := msg.From.ID
	if b.gate.IsBlocked(uid) {
		b.reply(msg.Chat.ID, blockedText)
		return
	}

	// Если Telegram уже знает имя и фамилию, шаг ввода имени пропускается.
	if msg.From.FirstName != "" && msg.From.LastName != "" {
		session := b.sessions.Begin(uid, StepRegisterDepartment)
		session.FirstName = msg.From.FirstName
		session.LastName = msg.From.LastName
		b.reply(msg.Chat.ID, "Введите ваш отдел.\nНапример: Отдел разработки")
		return
	}
	b.sessions.Begin(uid, StepRegisterName)
	b.reply(msg.Chat.ID, "Введите ваши имя и фамилию.\nНапример: Иван Иванов")
}

func (b *Bot) advanceSession(msg *tgbotapi.Message, session *Session) {
	switch session.Step {
	case StepRegisterName:
		parts := strings.Fields(msg.Text)
		if len(parts) < 2 {
			b.reply(msg.Chat.ID, "Неверный формат. Введите имя и фамилию.")
			return
		}
		session.FirstName = parts[0]
		session.LastName = parts[1]
		session.Step = StepRegisterDepartment
		b.reply(msg.Chat.ID, "Введите ваш отдел.\nНапример: Отдел разработки")

	case StepRegisterDepartment:
		department := strings.TrimSpace(msg.Text)
		if department == "" {
			b.reply(msg.Chat.ID, "Неверный формат. Введите отдел.")
			return
		}
		session.Department = department
		session.Step = StepRegisterConfirm
		b.reply(msg.Chat.ID, fmt.Sprintf(
			"Проверьте данные и подтвердите регистрацию.\nИмя: %s\nФамилия: %s\nОтдел: %s\n\n"+
				"Нажмите /confirm, чтобы подтвердить,\nили /reject, чтобы отменить.",
			session.FirstName, session.LastName, session.Department))

	case StepRegisterConfirm:
		b.reply(msg.Chat.ID, "Неверная команда. Нажмите /confirm, чтобы подтвердить,\nили /reject, чтобы отменить.")

	case StepTicketTitle:
		session.Title = msg.Text
		session.Step = StepTicketDescription
		b.reply(msg.Chat.ID, "Теперь введите описание вашей проблемы:")

	case StepTicketDescription:
		b.finishTicket(msg, session)
	}
}

func (b *Bot) finishRegistration(msg *tgbotapi.Message, session *Session) {
	uid := msg.From.ID
	b.sessions.End(uid)

	if msg.Command() == "reject" {
		b.reply(msg.Chat.ID, "Регистрация отменена.")
		return
	}

	answer := b.registerUser(uid, session.FirstName, session.LastName, session.Department)
	b.reply(msg.Chat.ID, fmt.Sprintf("%s, добро пожаловать в бот!\n%s", session.FirstName, answer))
}

// registerUser создаёт пользователя, если его ещё нет. Администратор
// регистрируется с приоритетом 99 и отделом Admin.
func (b *Bot) registerUser(uid int64, firstName, lastName, department string) string {
	if _, err := b.store.GetUserByUID(uid); err == nil {
		return "Вы уже зарегистрированы!"
	} else if !errors.Is(err, db.ErrNotFound) {
		b.log.Error("registration lookup failed", zap.Int64("uid", uid), zap.Error(err))
		return "Не удалось проверить регистрацию, попробуйте позже."
	}

	user := &models.User{
		UserUID:    uid,
		FirstName:  firstName,
		LastName:   lastName,
		Department: department,
	}
	if uid == b.adminID {
		user.Department = "Admin"
		user.Priority = 99
	}
	if err := b.store.AddUser(user); err != nil {
		b.log.Error("registration failed", zap.Int64("uid", uid), zap.Error(err))
		return "Не удалось сохранить регистрацию, попробуйте позже."
	}
	return "Вы успешно зарегистрировались!"
}

func (b *Bot) registeredUser(uid int64) *models.User {
	user, err := b.store.GetUserByUID(uid)
	if err != nil {
		if !errors.Is(err, db.ErrNotFound) {
			b.log.Error("user lookup failed", zap.Int64("uid", uid), zap.Error(err))
		}
		return nil
	}
	return user
}

// --- Заявки ---

func (b *Bot) cmdNewTicket(msg *tgbotapi.Message) {
	uid := msg.From.ID
	if b.gate.IsBlocked(uid) {
		b.reply(msg.Chat.ID, blockedText)
		return
	}
	if b.registeredUser(uid) == nil {
		b.reply(msg.Chat.ID, "Вы не зарегистрированы в боте, введите команду /register.")
		return
	}
	b.sessions.Begin(uid, StepTicketTitle)
	b.reply(msg.Chat.ID, "Введите кратко суть вашей проблемы:")
}

func (b *Bot) finishTicket(msg *tgbotapi.Message, session *Session) {
	uid := msg.From.ID
	b.sessions.End(uid)

	ticket, err := b.tickets.Create(uid, session.Title, msg.Text)
	if err != nil {
		b.log.Error("ticket create failed", zap.Int64("uid", uid), zap.Error(err))
		b.reply(msg.Chat.ID, "Не удалось сохранить заявку, попробуйте позже.")
		return
	}

	summary := b.ticketSummary(ticket)
	notice := tgbotapi.NewMessage(b.adminID, fmt.Sprintf(
		"Новая заявка: \n%s\nПод номером %d создана.", summary, ticket.ID))
	notice.ReplyMarkup = acceptKeyboard(ticket.ID)
	b.send(notice)

	if uid != b.adminID {
		copyMsg := tgbotapi.NewMessage(msg.Chat.ID, summary)
		copyMsg.ReplyMarkup = rejectKeyboard(ticket.ID)
		b.send(copyMsg)
	}
}

func (b *Bot) cmdTickets(msg *tgbotapi.Message) {
	uid := msg.From.ID
	if b.gate.IsBlocked(uid) {
		b.reply(msg.Chat.ID, blockedText)
		return
	}
	if b.registeredUser(uid) == nil {
		b.reply(msg.Chat.ID, "Вы не зарегистрированы.")
		return
	}
	args := strings.TrimSpace(msg.CommandArguments())

	if uid != b.adminID {
		if args != "" {
			b.reply(msg.Chat.ID, "! Не пишите лишние аргументы !")
		}
		tickets, err := b.tickets.ListFor(uid, "")
		if err != nil {
			b.log.Error("list tickets failed", zap.Int64("uid", uid), zap.Error(err))
			return
		}
		if len(tickets) == 0 {
			b.reply(msg.Chat.ID, "Вы ещё не создали ни одного тикета.")
			return
		}
		for i := range tickets {
			b.reply(msg.Chat.ID, b.ticketSummary(&tickets[i]))
		}
		return
	}

	var status models.Status
	if args == "new" {
		status = models.StatusNew
	}
	tickets, err := b.tickets.ListFor(uid, status)
	if err != nil {
		b.log.Error("list tickets failed", zap.Int64("uid", uid), zap.Error(err))
		return
	}
	if len(tickets) == 0 {
		b.reply(msg.Chat.ID, "В базе данных нет тикетов.")
		return
	}
	for i := range tickets {
		b.reply(msg.Chat.ID, b.ticketSummary(&tickets[i]))
	}
}

func (b *Bot) cmdCancel(msg *tgbotapi.Message) {
	uid := msg.From.ID
	if b.gate.IsBlocked(uid) {
		b.reply(msg.Chat.ID, blockedText)
		return
	}
	args := strings.TrimSpace(msg.CommandArguments())
	if args == "" {
		b.reply(msg.Chat.ID, "Правильный вызов данной команды: /cancel <номер тикета для отмены>.\n"+
			"Под отменой подразумевается, что ваша проблема решаться не будет "+
			"(например, тикет создан по ошибке).")
		b.reply(msg.Chat.ID, b.activeTickets(uid))
		return
	}
	id, err := strconv.ParseInt(args, 10, 64)
	if err != nil {
		b.reply(msg.Chat.ID, "Номер тикета должен быть числом.")
		return
	}
	if _, err := b.tickets.Cancel(id, uid); err != nil {
		b.reply(msg.Chat.ID, transitionErrorText(err, id))
		return
	}
	b.reply(msg.Chat.ID, fmt.Sprintf("Ваш тикет под номером %d успешно отменен.", id))
}

func (b *Bot) cmdComplete(msg *tgbotapi.Message) {
	uid := msg.From.ID
	if b.gate.IsBlocked(uid) {
		b.reply(msg.Chat.ID, blockedText)
		return
	}
	args := strings.TrimSpace(msg.CommandArguments())
	if args == "" {
		b.reply(msg.Chat.ID, "Правильный вызов данной команды: /complete <номер тикета для завершения>.\n"+
			"Использовать, если проблема решена.")
		b.reply(msg.Chat.ID, b.activeTickets(uid))
		return
	}
	id, err := strconv.ParseInt(args, 10, 64)
	if err != nil {
		b.reply(msg.Chat.ID, "Номер тикета должен быть числом.")
		return
	}
	if _, err := b.tickets.Complete(id, uid); err != nil {
		b.reply(msg.Chat.ID, transitionErrorText(err, id))
		return
	}
	b.reply(msg.Chat.ID, fmt.Sprintf("Ваш тикет под номером %d успешно завершен.", id))
}

// activeTickets — список незавершённых заявок пользователя для подсказки.
func (b *Bot) activeTickets(uid int64) string {
	tickets, err := b.store.ListTickets(db.TicketFilter{UserUID: uid})
	if err != nil {
		b.log.Error("list tickets failed", zap.Int64("uid", uid), zap.Error(err))
		return "Не удалось получить список тикетов."
	}

	var sb strings.Builder
	sb.WriteString("Список ваших активных тикетов:")
	active := 0
	for _, t := range tickets {
		if t.Status.Terminal() {
			continue
		}
		active++
		fmt.Fprintf(&sb, "\n%d: %s. Статус: %s", t.ID, t.Description, t.Status)
	}
	if active == 0 {
		return "У вас нет активных тикетов."
	}
	return sb.String()
}

// --- Команды администратора ---

func (b *Bot) cmdCheckAdmin(msg *tgbotapi.Message) {
	uid := msg.From.ID
	if b.gate.IsBlocked(uid) {
		b.reply(msg.Chat.ID, blockedText)
		return
	}
	if uid != b.adminID {
		b.reply(msg.Chat.ID, "Нет прав администратора.")
		return
	}
	b.reply(msg.Chat.ID, "Права администратора подтверждены.")

	// Администратор записывается в users при первой проверке прав.
	if b.registeredUser(uid) != nil || msg.From.FirstName == "" || msg.From.LastName == "" {
		return
	}
	answer := b.registerUser(uid, msg.From.FirstName, msg.From.LastName, "Admin")
	b.reply(msg.Chat.ID, fmt.Sprintf("%s, добро пожаловать в бот!\n%s", msg.From.FirstName, answer))
}

func (b *Bot) cmdBlock(msg *tgbotapi.Message) {
	if msg.From.ID != b.adminID {
		return
	}
	args := strings.TrimSpace(msg.CommandArguments())
	if args == "" {
		b.reply(msg.Chat.ID, "Укажите UID пользователя для блокировки.")
		return
	}
	target, err := strconv.ParseInt(args, 10, 64)
	if err != nil {
		b.reply(msg.Chat.ID, "UID пользователя должен быть числом.")
		return
	}
	if err := b.gate.Block(target, "Added by admin."); err != nil {
		b.log.Error("block failed", zap.Int64("uid", target), zap.Error(err))
		b.reply(msg.Chat.ID, "Не удалось заблокировать пользователя.")
		return
	}
	b.send(tgbotapi.NewMessage(target, "Вы были заблокированы администратором бота."))
	b.reply(msg.Chat.ID, fmt.Sprintf("Пользователь %d заблокирован.", target))
}

func (b *Bot) cmdUnblock(msg *tgbotapi.Message) {
	if msg.From.ID != b.adminID {
		return
	}
	args := strings.TrimSpace(msg.CommandArguments())
	if args == "" {
		b.reply(msg.Chat.ID, "Укажите UID пользователя для разблокировки.")
		blocked, err := b.store.ListBlockedUsers()
		if err != nil {
			b.log.Error("list blocked failed", zap.Error(err))
			return
		}
		if len(blocked) == 0 {
			b.reply(msg.Chat.ID, "На данный момент нет заблокированных пользователей.")
			return
		}
		for _, user := range blocked {
			item := tgbotapi.NewMessage(msg.Chat.ID, fmt.Sprintf("%d: %s", user.UserUID, user.Username))
			item.ReplyMarkup = unlockKeyboard(user.UserUID)
			b.send(item)
		}
		return
	}
	target, err := strconv.ParseInt(args, 10, 64)
	if err != nil {
		b.reply(msg.Chat.ID, "UID пользователя должен быть числом.")
		return
	}
	b.unblock(target, msg.Chat.ID)
}

func (b *Bot) unblock(target, replyTo int64) {
	if err := b.gate.Unblock(target); err != nil {
		b.log.Error("unblock failed", zap.Int64("uid", target), zap.Error(err))
		b.reply(replyTo, "Не удалось разблокировать пользователя.")
		return
	}
	b.send(tgbotapi.NewMessage(target, "Вы были разблокированы администратором бота."))
	b.reply(replyTo, fmt.Sprintf("Пользователь %d разблокирован.", target))
}

// --- Кнопки ---

func (b *Bot) handleCallback(cb *tgbotapi.CallbackQuery) {
	defer b.request(tgbotapi.NewCallback(cb.ID, ""))

	switch {
	case strings.HasPrefix(cb.Data, "user_unlock_"):
		b.callbackUnlock(cb)
	case strings.HasPrefix(cb.Data, "ticket_"):
		b.callbackTicket(cb)
	default:
		b.log.Warn("unknown callback", zap.String("data", cb.Data))
	}
}

func (b *Bot) callbackUnlock(cb *tgbotapi.CallbackQuery) {
	if cb.From.ID != b.adminID || cb.Message == nil {
		return
	}
	target, err := strconv.ParseInt(strings.TrimPrefix(cb.Data, "user_unlock_"), 10, 64)
	if err != nil {
		b.log.Warn("bad unlock callback", zap.String("data", cb.Data))
		return
	}
	if err := b.gate.Unblock(target); err != nil {
		b.log.Error("unblock failed", zap.Int64("uid", target), zap.Error(err))
		return
	}
	b.send(tgbotapi.NewEditMessageText(cb.Message.Chat.ID, cb.Message.MessageID,
		fmt.Sprintf("Пользователь %d разблокирован.", target)))
	b.send(tgbotapi.NewMessage(target, "Вы были разблокированы администратором бота."))
}

func (b *Bot) callbackTicket(cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		return
	}
	parts := strings.Split(cb.Data, "_")
	if len(parts) != 3 {
		b.log.Warn("bad ticket callback", zap.String("data", cb.Data))
		return
	}
	id, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		b.log.Warn("bad ticket callback", zap.String("data", cb.Data))
		return
	}
	chatID := cb.Message.Chat.ID
	messageID := cb.Message.MessageID

	switch parts[1] {
	case "accept":
		if cb.From.ID != b.adminID {
			return
		}
		ticket, err := b.tickets.Accept(id)
		if err != nil {
			b.reply(chatID, transitionErrorText(err, id))
			return
		}
		b.send(tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID,
			fmt.Sprintf("Заявка %d принята в работу. \nОписание заявки: %s", id, ticket.Description),
			completeKeyboard(id)))

	case "canceled":
		if cb.From.ID != b.adminID {
			return
		}
		if _, err := b.tickets.Cancel(id, cb.From.ID); err != nil {
			b.reply(chatID, transitionErrorText(err, id))
			return
		}
		b.send(tgbotapi.NewEditMessageText(chatID, messageID, fmt.Sprintf("Заявка %d отменена.", id)))

	case "usercancel":
		if _, err := b.tickets.Cancel(id, cb.From.ID); err != nil {
			b.reply(chatID, transitionErrorText(err, id))
			return
		}
		b.send(tgbotapi.NewEditMessageText(chatID, messageID, fmt.Sprintf("Вы отменили заявку %d.", id)))

	case "completed":
		if cb.From.ID != b.adminID {
			return
		}
		if _, err := b.tickets.Complete(id, cb.From.ID); err != nil {
			b.reply(chatID, transitionErrorText(err, id))
			return
		}
		b.send(tgbotapi.NewEditMessageText(chatID, messageID, fmt.Sprintf("Заявка %d завершена.", id)))

	default:
		b.log.Warn("unknown ticket action", zap.String("data", cb.Data))
	}
}

func (b *Bot) handleChatMember(ev *tgbotapi.ChatMemberUpdated) {
	if !ev.Chat.IsGroup() && !ev.Chat.IsSuperGroup() {
		return
	}
	if ev.NewChatMember.Status != "member" && ev.NewChatMember.Status != "administrator" {
		return
	}
	b.reply(ev.Chat.ID, "Я не работаю в группах.")
	b.request(tgbotapi.LeaveChatConfig{ChatID: ev.Chat.ID})
}

// --- Вспомогательные ---

func transitionErrorText(err error, id int64) string {
	switch {
	case errors.Is(err, ErrTicketNotFound), errors.Is(err, ErrNotTicketOwner):
		return "Вы не создавали тикета с таким номером."
	case errors.Is(err, ErrTicketDone):
		return fmt.Sprintf("Заявка %d уже обработана.", id)
	default:
		return "Не удалось обновить заявку."
	}
}

func (b *Bot) ticketSummary(ticket *models.Ticket) string {
	var lines []string
	if user, err := b.store.GetUserByUID(ticket.UserUID); err == nil {
		lines = append(lines,
			fmt.Sprintf("От пользователя: %s %s", user.FirstName, user.LastName),
			fmt.Sprintf("Отдел: %s", user.Department),
			fmt.Sprintf("Приоритет: %d", user.Priority),
		)
	}
	lines = append(lines,
		fmt.Sprintf("Заголовок: %s", ticket.Title),
		fmt.Sprintf("Описание: %s", ticket.Description),
		fmt.Sprintf("Статус: %s", ticket.Status),
	)
	return strings.Join(lines, "\n")
}

func acceptKeyboard(id int64) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Принять заявку", fmt.Sprintf("ticket_accept_%d", id)),
			tgbotapi.NewInlineKeyboardButtonData("Отменить заявку", fmt.Sprintf("ticket_canceled_%d", id)),
		),
	)
}

func completeKeyboard(id int64) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Отменить заявку", fmt.Sprintf("ticket_canceled_%d", id)),
			tgbotapi.NewInlineKeyboardButtonData("Закрыть заявку", fmt.Sprintf("ticket_completed_%d", id)),
		),
	)
}

func rejectKeyboard(id int64) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Отменить заявку", fmt.Sprintf("ticket_usercancel_%d", id)),
		),
	)
}

func unlockKeyboard(uid int64) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Разблокировать пользователя.", fmt.Sprintf("user_unlock_%d", uid)),
		),
	)
}

func (b *Bot) setCommandMenu(isAdmin bool) {
	commands := []tgbotapi.BotCommand{
		{Command: "register", Description: "Регистрация пользователя"},
		{Command: "new_ticket", Description: "Создание новой заявки"},
		{Command: "tickets", Description: "Проверка ваших заявок"},
		{Command: "cancel", Description: "Отмена заявки"},
		{Command: "complete", Description: "Самостоятельное закрытие заявки"},
		{Command: "help", Description: "Справка по командам"},
	}
	if !isAdmin {
		b.request(tgbotapi.NewSetMyCommandsWithScope(tgbotapi.NewBotCommandScopeDefault(), commands...))
		return
	}
	commands = append(commands,
		tgbotapi.BotCommand{Command: "check_admin", Description: "Проверка статуса Admin"},
		tgbotapi.BotCommand{Command: "block", Description: "Блокировка пользователя"},
		tgbotapi.BotCommand{Command: "unblock", Description: "Разблокировка пользователя"},
	)
	b.request(tgbotapi.NewSetMyCommandsWithScope(tgbotapi.NewBotCommandScopeChat(b.adminID), commands...))
}

func (b *Bot) reply(chatID int64, text string) {
	b.send(tgbotapi.NewMessage(chatID, text))
}

func (b *Bot) send(c tgbotapi.Chattable) {
	if _, err := b.api.Send(c); err != nil {
		b.log.Error("send failed", zap.Error(err))
	}
}

func (b *Bot) request(c tgbotapi.Chattable) {
	if _, err := b.api.Request(c); err != nil {
		b.log.Error("request failed", zap.Error(err))
	}
}
