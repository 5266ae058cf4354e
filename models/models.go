package models

import (
	"time"

	"github.com/guregu/null/v5"
)

// Status — статус заявки. Допустимые переходы описаны в services.Lifecycle.
type Status string

const (
	StatusNew       Status = "new"
	StatusInWork    Status = "in_work"
	StatusCompleted Status = "completed"
	StatusRejected  Status = "rejected"
)

// Terminal сообщает, является ли статус конечным.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusRejected
}

// User — зарегистрированный пользователь бота. После регистрации не меняется.
type User struct {
	ID         int64  `gorm:"primaryKey"`
	UserUID    int64  `gorm:"uniqueIndex"`
	FirstName  string `gorm:"size:30"`
	LastName   string `gorm:"size:30"`
	Department string `gorm:"size:50"`
	Priority   int
}

// Ticket — заявка пользователя. UpdateReason заполняется только при переходе
// в конечный статус.
type Ticket struct {
	ID           int64  `gorm:"primaryKey"`
	UserUID      int64  `gorm:"index"`
	Title        string `gorm:"size:30"`
	Description  string `gorm:"type:text"`
	Status       Status `gorm:"size:16"`
	UpdateReason null.String
	CreatedAt    time.Time
	LastUpdated  time.Time
}

// BlockedUser — запись о блокировке. Наличие записи и есть признак блокировки.
type BlockedUser struct {
	ID       int64 `gorm:"primaryKey"`
	UserUID  int64 `gorm:"uniqueIndex"`
	Username string
}
