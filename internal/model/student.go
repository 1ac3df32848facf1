package model

import "time"

// Statuses shared by students, teachers, subjects and subscriptions.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Student is a tenant-owned enrollee record. Grade references a Level by
// name; there is no foreign key, the level service guards deletion instead.
type Student struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	AdminID   uint      `json:"adminId" gorm:"index;not null"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Email     string    `json:"email" gorm:"size:255"`
	Phone     string    `json:"phone" gorm:"size:50"`
	Grade     string    `json:"grade" gorm:"size:255;index"`
	Subjects  []string  `json:"subjects" gorm:"serializer:json"`
	Status    string    `json:"status" gorm:"size:50;default:'active'"`
	JoinDate  string    `json:"joinDate" gorm:"size:50"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
