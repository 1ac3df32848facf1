package model

import "time"

// Level is a tenant-owned grade level. Name is unique per tenant; the
// uniqueness check lives in the service so renames can exclude the row itself.
type Level struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	AdminID     uint      `json:"adminId" gorm:"index;not null"`
	Name        string    `json:"name" gorm:"size:255;not null"`
	Description string    `json:"description" gorm:"size:1024"`
	Order       int       `json:"order" gorm:"column:sort_order;default:0"`
	IsActive    bool      `json:"isActive" gorm:"default:true"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
