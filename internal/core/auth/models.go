package auth

import (
	"time"

	"github.com/google/uuid"
)

// User represents an operations user that can sign in to the backend:
// head-office admin, store manager, or store staff.
type User struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`

	Email string `gorm:"type:text;unique;not null" json:"email"`
	Name  string `gorm:"type:text" json:"name"`
	Phone string `gorm:"type:text" json:"phone,omitempty"`
	Role  string `gorm:"type:text;not null" json:"role"` // admin, manager, staff

	PasswordHash string `gorm:"type:text" json:"-"`

	// Optional home store for manager/staff accounts
	StoreID *uuid.UUID `gorm:"type:uuid" json:"store_id,omitempty"`

	IsActive bool `gorm:"type:boolean;default:true" json:"is_active"`

	RefreshToken          string     `gorm:"type:text" json:"-"`
	RefreshTokenExpiresAt *time.Time `json:"-"`

	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}

// LoginRequest represents login request payload
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest represents registration request payload
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role"`
	StoreID  string `json:"store_id,omitempty"`
}

// RefreshTokenRequest represents refresh token request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresIn    int64     `json:"expires_in"` // seconds
	User         *UserInfo `json:"user"`
}

// UserInfo represents user information in auth response
type UserInfo struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	StoreID string `json:"store_id,omitempty"`
}

// TokenClaims represents JWT token claims
type TokenClaims struct {
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	StoreID string `json:"store_id"`
}
