package response

import (
	"time"

	"logistics_backoffice/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type TransporterResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	ContactPerson  string    `json:"contactPerson,omitempty"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email,omitempty"`
	VehicleNumbers []string  `json:"vehicleNumbers"`
	Routes         []string  `json:"routes"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func FromTransporter(t entities.Transporter) TransporterResponse {
	vehicles := t.VehicleNumbers
	if vehicles == nil {
		vehicles = []string{}
	}
	routes := t.Routes
	if routes == nil {
		routes = []string{}
	}
	return TransporterResponse{
		ID:             t.ID,
		Name:           t.Name,
		ContactPerson:  t.ContactPerson,
		Phone:          t.Phone,
		Email:          t.Email,
		VehicleNumbers: vehicles,
		Routes:         routes,
		IsActive:       t.IsActive,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

type OwnerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CNIC      string    `json:"cnic,omitempty"`
	Address   string    `json:"address,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromOwner(o entities.Owner) OwnerResponse {
	return OwnerResponse{
		ID:        o.ID,
		Name:      o.Name,
		Email:     o.Email,
		Phone:     o.Phone,
		CNIC:      o.CNIC,
		Address:   o.Address,
		IsActive:  o.IsActive,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func ownerRef(id string, details *entities.Owner) any {
	if details != nil {
		return FromOwner(*details)
	}
	if id == "" {
		return nil
	}
	return id
}

type LiabilityResponse struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Amount    decimal.Decimal `json:"amount"`
	Creditor  string          `json:"creditor,omitempty"`
	Owner     any             `json:"owner,omitempty"`
	DueDate   *time.Time      `json:"dueDate,omitempty"`
	Status    string          `json:"status"`
	Notes     string          `json:"notes,omitempty"`
	IsActive  bool            `json:"isActive"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func FromLiability(l entities.Liability) LiabilityResponse {
	return LiabilityResponse{
		ID:        l.ID,
		Title:     l.Title,
		Amount:    l.Amount,
		Creditor:  l.Creditor,
		Owner:     ownerRef(l.Owner, l.OwnerDetails),
		DueDate:   l.DueDate,
		Status:    string(l.Status),
		Notes:     l.Notes,
		IsActive:  l.IsActive,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

type PartnershipAccountResponse struct {
	ID                  string          `json:"id"`
	AccountTitle        string          `json:"accountTitle"`
	Owner               any             `json:"owner,omitempty"`
	SharePercentage     decimal.Decimal `json:"sharePercentage"`
	CapitalContribution decimal.Decimal `json:"capitalContribution"`
	Balance             decimal.Decimal `json:"balance"`
	Notes               string          `json:"notes,omitempty"`
	IsActive            bool            `json:"isActive"`
	CreatedAt           time.Time       `json:"createdAt"`
	UpdatedAt           time.Time       `json:"updatedAt"`
}

func FromPartnershipAccount(a entities.PartnershipAccount) PartnershipAccountResponse {
	return PartnershipAccountResponse{
		ID:                  a.ID,
		AccountTitle:        a.AccountTitle,
		Owner:               ownerRef(a.Owner, a.OwnerDetails),
		SharePercentage:     a.SharePercentage,
		CapitalContribution: a.CapitalContribution,
		Balance:             a.Balance,
		Notes:               a.Notes,
		IsActive:            a.IsActive,
		CreatedAt:           a.CreatedAt,
		UpdatedAt:           a.UpdatedAt,
	}
}

type PropertyAccountResponse struct {
	ID            string          `json:"id"`
	PropertyName  string          `json:"propertyName"`
	Location      string          `json:"location,omitempty"`
	Owner         any             `json:"owner,omitempty"`
	PurchaseValue decimal.Decimal `json:"purchaseValue"`
	CurrentValue  decimal.Decimal `json:"currentValue"`
	MonthlyRent   decimal.Decimal `json:"monthlyRent"`
	Notes         string          `json:"notes,omitempty"`
	IsActive      bool            `json:"isActive"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

func FromPropertyAccount(a entities.PropertyAccount) PropertyAccountResponse {
	return PropertyAccountResponse{
		ID:            a.ID,
		PropertyName:  a.PropertyName,
		Location:      a.Location,
		Owner:         ownerRef(a.Owner, a.OwnerDetails),
		PurchaseValue: a.PurchaseValue,
		CurrentValue:  a.CurrentValue,
		MonthlyRent:   a.MonthlyRent,
		Notes:         a.Notes,
		IsActive:      a.IsActive,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}
