package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PartnershipAccount is an owner's stake in the business.
type PartnershipAccount struct {
	ID                  string          `json:"id"`
	AccountTitle        string          `json:"accountTitle"`
	Owner               string          `json:"owner"`
	SharePercentage     decimal.Decimal `json:"sharePercentage"`
	CapitalContribution decimal.Decimal `json:"capitalContribution"`
	Balance             decimal.Decimal `json:"balance"`
	Notes               string          `json:"notes,omitempty"`
	IsActive            bool            `json:"isActive"`
	CreatedAt           time.Time       `json:"createdAt"`
	UpdatedAt           time.Time       `json:"updatedAt"`

	OwnerDetails *Owner `json:"-"`
}

type PartnershipAccountPatch struct {
	AccountTitle        *string
	Owner               *string
	SharePercentage     *decimal.Decimal
	CapitalContribution *decimal.Decimal
	Balance             *decimal.Decimal
	Notes               *string
}

func (p PartnershipAccountPatch) Apply(a *PartnershipAccount) {
	setString(&a.AccountTitle, p.AccountTitle)
	setString(&a.Owner, p.Owner)
	setDecimal(&a.SharePercentage, p.SharePercentage)
	setDecimal(&a.CapitalContribution, p.CapitalContribution)
	setDecimal(&a.Balance, p.Balance)
	setString(&a.Notes, p.Notes)
}

// PropertyAccount tracks a property held by the business or one of its owners.
type PropertyAccount struct {
	ID            string          `json:"id"`
	PropertyName  string          `json:"propertyName"`
	Location      string          `json:"location,omitempty"`
	Owner         string          `json:"owner,omitempty"`
	PurchaseValue decimal.Decimal `json:"purchaseValue"`
	CurrentValue  decimal.Decimal `json:"currentValue"`
	MonthlyRent   decimal.Decimal `json:"monthlyRent"`
	Notes         string          `json:"notes,omitempty"`
	IsActive      bool            `json:"isActive"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`

	OwnerDetails *Owner `json:"-"`
}

type PropertyAccountPatch struct {
	PropertyName  *string
	Location      *string
	Owner         *string
	PurchaseValue *decimal.Decimal
	CurrentValue  *decimal.Decimal
	MonthlyRent   *decimal.Decimal
	Notes         *string
}

func (p PropertyAccountPatch) Apply(a *PropertyAccount) {
	setString(&a.PropertyName, p.PropertyName)
	setString(&a.Location, p.Location)
	setString(&a.Owner, p.Owner)
	setDecimal(&a.PurchaseValue, p.PurchaseValue)
	setDecimal(&a.CurrentValue, p.CurrentValue)
	setDecimal(&a.MonthlyRent, p.MonthlyRent)
	setString(&a.Notes, p.Notes)
}
