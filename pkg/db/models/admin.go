package models

import (
	"time"

	"github.com/google/uuid"
)

// Admin represents a back-office operator account.
type Admin struct {
	ID                  uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Username            string    `gorm:"column:username;not null;uniqueIndex"`
	FirstName           string    `gorm:"column:first_name;not null"`
	LastName            string    `gorm:"column:last_name;not null"`
	Email               *string   `gorm:"column:email"`
	PhoneNumber         *string   `gorm:"column:phone_number"`
	Photo               *string   `gorm:"column:photo"`
	AccountBalanceCents int64     `gorm:"column:account_balance_cents;not null;default:0"`
	MonthlyReports      bool      `gorm:"column:monthly_reports;not null;default:false"`
	CreatedAt           time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt           time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
