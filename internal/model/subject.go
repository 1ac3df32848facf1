package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Subject is a tenant-owned course offering.
type Subject struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	AdminID     uint            `json:"adminId" gorm:"index;not null"`
	Name        string          `json:"name" gorm:"size:255;not null"`
	Code        string          `json:"code" gorm:"size:50"`
	Description string          `json:"description" gorm:"size:1024"`
	Teacher     string          `json:"teacher" gorm:"size:255"`
	Grade       string          `json:"grade" gorm:"size:255"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	Duration    string          `json:"duration" gorm:"size:100"`
	Status      string          `json:"status" gorm:"size:50;default:'active'"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
