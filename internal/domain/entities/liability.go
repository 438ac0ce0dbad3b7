package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type LiabilityStatus string

const (
	LiabilityStatusOutstanding   LiabilityStatus = "outstanding"
	LiabilityStatusPartiallyPaid LiabilityStatus = "partially_paid"
	LiabilityStatusPaid          LiabilityStatus = "paid"
)

func (s LiabilityStatus) Valid() bool {
	switch s {
	case LiabilityStatusOutstanding, LiabilityStatusPartiallyPaid, LiabilityStatusPaid:
		return true
	}
	return false
}

// Liability is money the business owes to a creditor.
type Liability struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Amount    decimal.Decimal `json:"amount"`
	Creditor  string          `json:"creditor,omitempty"`
	Owner     string          `json:"owner,omitempty"`
	DueDate   *time.Time      `json:"dueDate,omitempty"`
	Status    LiabilityStatus `json:"status"`
	Notes     string          `json:"notes,omitempty"`
	IsActive  bool            `json:"isActive"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`

	OwnerDetails *Owner `json:"-"`
}

type LiabilityPatch struct {
	Title    *string
	Amount   *decimal.Decimal
	Creditor *string
	Owner    *string
	DueDate  *time.Time
	Status   *LiabilityStatus
	Notes    *string
}

func (p LiabilityPatch) Apply(l *Liability) {
	setString(&l.Title, p.Title)
	setDecimal(&l.Amount, p.Amount)
	setString(&l.Creditor, p.Creditor)
	setString(&l.Owner, p.Owner)
	if p.DueDate != nil {
		l.DueDate = p.DueDate
	}
	if p.Status != nil {
		l.Status = *p.Status
	}
	setString(&l.Notes, p.Notes)
}
