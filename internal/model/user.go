package model

import "time"

// Roles assignable to a user account.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents a back-office account. Users with tenant-owned resources
// act as the owning admin for those rows.
type User struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Username     string     `json:"username" gorm:"uniqueIndex;size:255;not null"`
	Email        string     `json:"email" gorm:"size:255"`
	PasswordHash string     `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         string     `json:"role" gorm:"size:50;default:'user'"`
	IsActive     bool       `json:"isActive" gorm:"default:true;index"`
	Phone        string     `json:"phone" gorm:"size:50"`
	Language     string     `json:"language" gorm:"size:10;default:'ar'"`
	Timezone     string     `json:"timezone" gorm:"size:100;default:'Asia/Riyadh'"`
	Avatar       string     `json:"avatar,omitempty" gorm:"size:512"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}
