package model

import (
	"time"
)

// CheckoutRecordModel is the GORM-specific struct for the 'checkout_records' table.
// It maps one user's checkout idempotency key to the order it produced.
type CheckoutRecordModel struct {
	UserID         int64   `gorm:"primaryKey;autoIncrement:false"`
	IdempotencyKey string  `gorm:"type:varchar(64);primaryKey"`
	Status         string  `gorm:"type:varchar(20);not null"`
	OrderID        *int64  `gorm:"index"`
	Confirmation   *string `gorm:"type:jsonb"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (CheckoutRecordModel) TableName() string {
	return "checkout_records"
}
