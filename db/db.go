package db

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/SoraAki000/Tg-HelpDeskBot/config"
	"github.com/SoraAki000/Tg-HelpDeskBot/models"
)

// ErrNotFound возвращается, когда запрошенной записи нет в базе.
var ErrNotFound = errors.New("record not found")

// TicketFilter ограничивает выборку заявок. Нулевые поля не фильтруют.
type TicketFilter struct {
	UserUID int64
	Status  models.Status
}

// Store — единственная точка доступа к базе данных.
type Store struct {
	db *gorm.DB
}

// Open подключается к базе по настройкам и накатывает схему.
func Open(cfg *config.Config) (*Store, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "sqlite":
		dialector = sqlite.Open(cfg.DBDSN)
	case "mysql":
		dialector = mysql.Open(cfg.DBDSN)
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return NewStore(gdb)
}

// NewStore оборачивает готовое подключение и мигрирует схему.
func NewStore(gdb *gorm.DB) (*Store, error) {
	if err := gdb.AutoMigrate(&models.User{}, &models.Ticket{}, &models.BlockedUser{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: gdb}, nil
}

func (s *Store) GetUserByUID(uid int64) (*models.User, error) {
	var user models.User
	err := s.db.Where("user_uid = ?", uid).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", uid, err)
	}
	return &user, nil
}

func (s *Store) AddUser(user *models.User) error {
	if err := s.db.Create(user).Error; err != nil {
		return fmt.Errorf("add user %d: %w", user.UserUID, err)
	}
	return nil
}

func (s *Store) AddBlockedUser(uid int64, username string) error {
	blocked := models.BlockedUser{UserUID: uid, Username: username}
	if err := s.db.Create(&blocked).Error; err != nil {
		return fmt.Errorf("block user %d: %w", uid, err)
	}
	return nil
}

func (s *Store) UnblockUser(uid int64) error {
	if err := s.db.Where("user_uid = ?", uid).Delete(&models.BlockedUser{}).Error; err != nil {
		return fmt.Errorf("unblock user %d: %w", uid, err)
	}
	return nil
}

func (s *Store) IsBlocked(uid int64) (bool, error) {
	var count int64
	err := s.db.Model(&models.BlockedUser{}).Where("user_uid = ?", uid).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check blocked %d: %w", uid, err)
	}
	return count > 0, nil
}

func (s *Store) ListBlockedUsers() ([]models.BlockedUser, error) {
	var blocked []models.BlockedUser
	if err := s.db.Order("id").Find(&blocked).Error; err != nil {
		return nil, fmt.Errorf("list blocked users: %w", err)
	}
	return blocked, nil
}

// AddTicket сохраняет новую заявку, присваивая ей номер и статус new.
func (s *Store) AddTicket(ticket *models.Ticket) (int64, error) {
	now := time.Now().UTC()
	ticket.Status = models.StatusNew
	ticket.CreatedAt = now
	ticket.LastUpdated = now
	if err := s.db.Create(ticket).Error; err != nil {
		return 0, fmt.Errorf("add ticket: %w", err)
	}
	return ticket.ID, nil
}

func (s *Store) GetTicketByID(id int64) (*models.Ticket, error) {
	var ticket models.Ticket
	err := s.db.First(&ticket, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get ticket %d: %w", id, err)
	}
	return &ticket, nil
}

// ListTickets возвращает заявки в порядке создания.
func (s *Store) ListTickets(filter TicketFilter) ([]models.Ticket, error) {
	q := s.db.Order("id")
	if filter.UserUID != 0 {
		q = q.Where("user_uid = ?", filter.UserUID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	var tickets []models.Ticket
	if err := q.Find(&tickets).Error; err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	return tickets, nil
}

// UpdateTicketStatus пишет новый статус и время обновления. Причина
// записывается только для конечных статусов.
func (s *Store) UpdateTicketStatus(id int64, status models.Status, reason string) error {
	updates := map[string]any{
		"status":       status,
		"last_updated": time.Now().UTC(),
	}
	if status.Terminal() && reason != "" {
		updates["update_reason"] = reason
	}
	res := s.db.Model(&models.Ticket{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("update ticket %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
