package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment states of a subscription.
const (
	PaymentPaid   = "paid"
	PaymentUnpaid = "unpaid"
)

// Subscription is a tenant-owned enrollment of a student into a subject with
// a teacher. Student, subject and teacher are referenced by name.
type Subscription struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	AdminID       uint            `json:"adminId" gorm:"index;not null"`
	StudentName   string          `json:"studentName" gorm:"size:255;not null"`
	StudentEmail  string          `json:"studentEmail" gorm:"size:255"`
	Subject       string          `json:"subject" gorm:"size:255"`
	Teacher       string          `json:"teacher" gorm:"size:255"`
	Price         decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	StartDate     string          `json:"startDate" gorm:"size:50"`
	EndDate       string          `json:"endDate" gorm:"size:50"`
	Status        string          `json:"status" gorm:"size:50;default:'active'"`
	PaymentStatus string          `json:"paymentStatus" gorm:"size:50;default:'unpaid'"`
	PaymentMethod string          `json:"paymentMethod" gorm:"size:100"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}
