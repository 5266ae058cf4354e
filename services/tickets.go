package services

import (
	"errors"
	"fmt"

	"github.com/guregu/null/v5"
	"go.uber.org/zap"

	"github.com/SoraAki000/Tg-HelpDeskBot/db"
	"github.com/SoraAki000/Tg-HelpDeskBot/models"
)

// Причины закрытия заявок по умолчанию.
const (
	ReasonAdminCancel   = "Заявка отменена администратором."
	ReasonUserCancel    = "Заявка отменена пользователем."
	ReasonUserComplete  = "Заявка завершена пользователем."
	ReasonAdminComplete = "Тикет завершен администратором."
)

var (
	ErrTicketNotFound = errors.New("ticket not found")
	ErrTicketDone     = errors.New("ticket already handled")
	ErrNotTicketOwner = errors.New("ticket belongs to another user")
)

// Notifier доставляет уведомление стороне, не инициировавшей действие.
type Notifier interface {
	Notify(uid int64, text string) error
}

// Lifecycle — единственная точка смены статуса заявок. Следит за графом
// переходов и уведомляет противоположную сторону о каждом изменении.
type Lifecycle struct {
	store    *db.Store
	notifier Notifier
	adminID  int64
	log      *zap.Logger
}

func NewLifecycle(store *db.Store, notifier Notifier, adminID int64, log *zap.Logger) *Lifecycle {
	return &Lifecycle{store: store, notifier: notifier, adminID: adminID, log: log}
}

// Create сохраняет новую заявку и возвращает её с присвоенным номером.
func (l *Lifecycle) Create(uid int64, title, description string) (*models.Ticket, error) {
	ticket := &models.Ticket{UserUID: uid, Title: title, Description: description}
	if _, err := l.store.AddTicket(ticket); err != nil {
		return nil, err
	}
	l.log.Info("ticket created", zap.Int64("ticket", ticket.ID), zap.Int64("uid", uid))
	return ticket, nil
}

// Accept переводит новую заявку в работу. Действие администратора.
func (l *Lifecycle) Accept(ticketID int64) (*models.Ticket, error) {
	ticket, err := l.transition(ticketID, 0, models.StatusInWork, "")
	if err != nil {
		return nil, err
	}
	l.notify(ticket.UserUID, fmt.Sprintf(
		"Ваша заявка: %d \nОписание: %s\nпринята в работу!", ticket.ID, ticket.Description))
	return ticket, nil
}

// Cancel переводит заявку в rejected. Администратор может отменить любую
// заявку, пользователь — только свою.
func (l *Lifecycle) Cancel(ticketID, actorUID int64) (*models.Ticket, error) {
	if actorUID == l.adminID {
		ticket, err := l.transition(ticketID, 0, models.StatusRejected, ReasonAdminCancel)
		if err != nil {
			return nil, err
		}
		l.notify(ticket.UserUID, fmt.Sprintf("Ваша заявка %d отменена.", ticket.ID))
		return ticket, nil
	}

	ticket, err := l.transition(ticketID, actorUID, models.StatusRejected, ReasonUserCancel)
	if err != nil {
		return nil, err
	}
	l.notify(l.adminID, fmt.Sprintf("Заявка %d отменена пользователем.", ticket.ID))
	return ticket, nil
}

// Complete переводит заявку в completed.
func (l *Lifecycle) Complete(ticketID, actorUID int64) (*models.Ticket, error) {
	if actorUID == l.adminID {
		ticket, err := l.transition(ticketID, 0, models.StatusCompleted, ReasonAdminComplete)
		if err != nil {
			return nil, err
		}
		l.notify(ticket.UserUID, fmt.Sprintf(
			"Ваша заявка: %d \nОписание: %s\nвыполнена!", ticket.ID, ticket.Description))
		return ticket, nil
	}

	ticket, err := l.transition(ticketID, actorUID, models.StatusCompleted, ReasonUserComplete)
	if err != nil {
		return nil, err
	}
	l.notify(l.adminID, fmt.Sprintf("Заявка %d завершена пользователем.", ticket.ID))
	return ticket, nil
}

// ListFor возвращает заявки с учётом прав: не администратор всегда видит
// только свои, фильтр по статусу доступен только администратору.
func (l *Lifecycle) ListFor(uid int64, status models.Status) ([]models.Ticket, error) {
	filter := db.TicketFilter{}
	if uid != l.adminID {
		filter.UserUID = uid
	} else {
		filter.Status = status
	}
	return l.store.ListTickets(filter)
}

// transition проверяет владельца и допустимость перехода, затем пишет статус.
// ownerUID == 0 отключает проверку владельца (администратор).
func (l *Lifecycle) transition(ticketID, ownerUID int64, status models.Status, reason string) (*models.Ticket, error) {
	ticket, err := l.store.GetTicketByID(ticketID)
	if errors.Is(err, db.ErrNotFound) {
		return nil, ErrTicketNotFound
	}
	if err != nil {
		return nil, err
	}
	if ownerUID != 0 && ticket.UserUID != ownerUID {
		return nil, ErrNotTicketOwner
	}
	if !canTransition(ticket.Status, status) {
		return nil, ErrTicketDone
	}
	if err := l.store.UpdateTicketStatus(ticketID, status, reason); err != nil {
		return nil, err
	}
	l.log.Info("ticket status changed",
		zap.Int64("ticket", ticketID),
		zap.String("from", string(ticket.Status)),
		zap.String("to", string(status)))
	ticket.Status = status
	if status.Terminal() && reason != "" {
		ticket.UpdateReason = null.StringFrom(reason)
	}
	return ticket, nil
}

// canTransition — граф статусов. Из конечных статусов выхода нет; переход
// new -> completed оставлен для самостоятельного закрытия владельцем.
func canTransition(from, to models.Status) bool {
	switch from {
	case models.StatusNew:
		return to == models.StatusInWork || to == models.StatusRejected || to == models.StatusCompleted
	case models.StatusInWork:
		return to == models.StatusRejected || to == models.StatusCompleted
	default:
		return false
	}
}

func (l *Lifecycle) notify(uid int64, text string) {
	if err := l.notifier.Notify(uid, text); err != nil {
		l.log.Error("notify failed", zap.Int64("uid", uid), zap.Error(err))
	}
}
