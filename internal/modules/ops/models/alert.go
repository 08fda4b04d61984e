package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Alert severity constants
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// Alert represents an operational alert raised for a store
type Alert struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StoreID uuid.UUID `gorm:"type:uuid;not null;index:idx_alerts_store" json:"store_id"`

	Title    string `gorm:"type:text;not null" json:"title"`
	Message  string `gorm:"type:text" json:"message,omitempty"`
	Severity string `gorm:"type:text;not null;default:'low'" json:"severity"`
	Category string `gorm:"type:text" json:"category,omitempty"` // e.g. "cash", "fuel", "equipment"

	Resolved   bool       `gorm:"type:boolean;default:false;index:idx_alerts_store" json:"resolved"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	ResolvedBy string     `gorm:"type:text" json:"resolved_by,omitempty"`

	Metadata datatypes.JSON `gorm:"type:jsonb" json:"metadata,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationship
	Store Store `gorm:"foreignKey:StoreID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name
func (Alert) TableName() string {
	return "alerts"
}

// BeforeCreate sets UUID before creating
func (a *Alert) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// ValidSeverity reports whether s is a known severity level.
func ValidSeverity(s string) bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// CreateAlertRequest represents the payload to raise an alert
type CreateAlertRequest struct {
	Title    string         `json:"title"`
	Message  string         `json:"message,omitempty"`
	Severity string         `json:"severity"`
	Category string         `json:"category,omitempty"`
	Metadata datatypes.JSON `json:"metadata,omitempty"`
}
