package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ShiftReport represents a single submitted record of sales and transaction
// data for one operating shift at a store. Monetary fields are nullable:
// a nil value means the figure was not captured for that shift.
type ShiftReport struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StoreID uuid.UUID `gorm:"type:uuid;not null;index:idx_shift_reports_store_date,priority:1" json:"store_id"`

	ReportDate time.Time `gorm:"not null;index:idx_shift_reports_store_date,priority:2" json:"report_date"`
	ShiftName  string    `gorm:"type:text" json:"shift_name,omitempty"` // e.g. "morning", "swing", "graveyard"

	// Amounts are non-negative except cash_variance, which may be negative
	// (shortage) or positive (overage).
	GrossSales        *decimal.Decimal `gorm:"type:decimal(12,2)" json:"gross_sales,omitempty"`
	FuelSales         *decimal.Decimal `gorm:"type:decimal(12,2)" json:"fuel_sales,omitempty"`
	InsideSales       *decimal.Decimal `gorm:"type:decimal(12,2)" json:"inside_sales,omitempty"`
	CashVariance      *decimal.Decimal `gorm:"type:decimal(12,2)" json:"cash_variance,omitempty"`
	TotalTransactions *int64           `gorm:"type:bigint" json:"total_transactions,omitempty"`

	Notes    string         `gorm:"type:text" json:"notes,omitempty"`
	Metadata datatypes.JSON `gorm:"type:jsonb" json:"metadata,omitempty"` // pump readings, lottery counts, etc.

	SubmittedBy string `gorm:"type:text" json:"submitted_by,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationship
	Store Store `gorm:"foreignKey:StoreID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name
func (ShiftReport) TableName() string {
	return "shift_reports"
}

// BeforeCreate sets UUID before creating
func (r *ShiftReport) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// CreateShiftReportRequest represents the payload to submit a shift report
type CreateShiftReportRequest struct {
	ReportDate        time.Time        `json:"report_date"`
	ShiftName         string           `json:"shift_name,omitempty"`
	GrossSales        *decimal.Decimal `json:"gross_sales,omitempty"`
	FuelSales         *decimal.Decimal `json:"fuel_sales,omitempty"`
	InsideSales       *decimal.Decimal `json:"inside_sales,omitempty"`
	CashVariance      *decimal.Decimal `json:"cash_variance,omitempty"`
	TotalTransactions *int64           `json:"total_transactions,omitempty"`
	Notes             string           `json:"notes,omitempty"`
	Metadata          datatypes.JSON   `json:"metadata,omitempty"`
}
