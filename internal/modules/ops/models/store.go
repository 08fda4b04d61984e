package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store represents one retail location
type Store struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name     string    `gorm:"type:text;not null" json:"name"`
	Code     string    `gorm:"type:text;unique;not null" json:"code"`
	Address  string    `gorm:"type:text" json:"address,omitempty"`
	Timezone string    `gorm:"type:text;default:'America/New_York'" json:"timezone"`

	// Manager contact, used for alert notifications and daily digests
	ManagerName  string `gorm:"type:text" json:"manager_name,omitempty"`
	ManagerPhone string `gorm:"type:text" json:"manager_phone,omitempty"`

	IsActive bool `gorm:"type:boolean;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name
func (Store) TableName() string {
	return "stores"
}

// BeforeCreate sets UUID before creating
func (s *Store) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// CreateStoreRequest represents the payload to register a store
type CreateStoreRequest struct {
	Name         string `json:"name"`
	Code         string `json:"code"`
	Address      string `json:"address,omitempty"`
	Timezone     string `json:"timezone,omitempty"`
	ManagerName  string `json:"manager_name,omitempty"`
	ManagerPhone string `json:"manager_phone,omitempty"`
}

// UpdateStoreRequest represents a partial store update
type UpdateStoreRequest struct {
	Name         *string `json:"name,omitempty"`
	Address      *string `json:"address,omitempty"`
	Timezone     *string `json:"timezone,omitempty"`
	ManagerName  *string `json:"manager_name,omitempty"`
	ManagerPhone *string `json:"manager_phone,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
}
