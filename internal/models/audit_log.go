package models

import "time"

type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Action     string `gorm:"size:50;not null;index" json:"action"`
	BarberName string `gorm:"size:100;index" json:"barberName,omitempty"`

	Entity   string `gorm:"size:50" json:"entity"`
	EntityID *uint  `json:"entityId,omitempty"`
	Metadata string `gorm:"type:text" json:"metadata,omitempty"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}
