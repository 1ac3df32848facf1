package model

import "time"

// Teacher is a tenant-owned instructor record.
type Teacher struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	AdminID    uint      `json:"adminId" gorm:"index;not null"`
	Name       string    `json:"name" gorm:"size:255;not null"`
	Email      string    `json:"email" gorm:"size:255"`
	Phone      string    `json:"phone" gorm:"size:50"`
	Subject    string    `json:"subject" gorm:"size:255"`
	Experience string    `json:"experience" gorm:"size:255"`
	Status     string    `json:"status" gorm:"size:50;default:'active'"`
	JoinDate   string    `json:"joinDate" gorm:"size:50"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
