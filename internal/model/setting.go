package model

import "time"

// NotificationSettings controls which events notify the tenant admin.
type NotificationSettings struct {
	EmailNotifications      bool `json:"emailNotifications"`
	NewStudentNotifications bool `json:"newStudentNotifications"`
	PaymentNotifications    bool `json:"paymentNotifications"`
	MaintenanceReminders    bool `json:"maintenanceReminders"`
	SystemUpdates           bool `json:"systemUpdates"`
}

// SystemSettings holds per-tenant display and behavior preferences.
type SystemSettings struct {
	SystemName        string `json:"systemName"`
	SystemDescription string `json:"systemDescription"`
	MaintenanceMode   bool   `json:"maintenanceMode"`
	AutoLogin         bool   `json:"autoLogin"`
	Currency          string `json:"currency"`
	DateFormat        string `json:"dateFormat"`
}

// Setting is the single per-tenant settings row, created lazily on first update.
type Setting struct {
	ID            uint                 `json:"id" gorm:"primaryKey"`
	AdminID       uint                 `json:"adminId" gorm:"uniqueIndex;not null"`
	Notifications NotificationSettings `json:"notifications" gorm:"serializer:json"`
	System        SystemSettings       `json:"system" gorm:"serializer:json"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

// DefaultNotificationSettings returns the defaults served before a tenant
// stores anything.
func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		EmailNotifications:      true,
		NewStudentNotifications: true,
		PaymentNotifications:    true,
		MaintenanceReminders:    true,
		SystemUpdates:           true,
	}
}

// DefaultSystemSettings returns the defaults served before a tenant stores anything.
func DefaultSystemSettings() SystemSettings {
	return SystemSettings{
		SystemName:        "Madrasa",
		SystemDescription: "Tutoring center management system",
		MaintenanceMode:   false,
		AutoLogin:         true,
		Currency:          "USD",
		DateFormat:        "DD/MM/YYYY",
	}
}
