package request

import (
	"logistics_backoffice/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const (
	MsgTransporterRequiredFields        = "Please provide name and phone"
	MsgOwnerRequiredFields              = "Please provide name"
	MsgLiabilityRequiredFields          = "Please provide title and amount"
	MsgPartnershipAccountRequiredFields = "Please provide accountTitle and owner"
	MsgPropertyAccountRequiredFields    = "Please provide propertyName"
)

type TransporterRequest struct {
	Name           *string   `json:"name"`
	ContactPerson  *string   `json:"contactPerson"`
	Phone          *string   `json:"phone"`
	Email          *string   `json:"email"`
	VehicleNumbers *[]string `json:"vehicleNumbers"`
	Routes         *[]string `json:"routes"`
}

func (r TransporterRequest) HasRequired() bool {
	return present(r.Name) && present(r.Phone)
}

func (r TransporterRequest) ToEntity() entities.Transporter {
	t := entities.Transporter{
		Name:          str(r.Name),
		ContactPerson: str(r.ContactPerson),
		Phone:         str(r.Phone),
		Email:         str(r.Email),
	}
	if r.VehicleNumbers != nil {
		t.VehicleNumbers = *r.VehicleNumbers
	}
	if r.Routes != nil {
		t.Routes = *r.Routes
	}
	return t
}

func (r TransporterRequest) ToPatch() entities.TransporterPatch {
	return entities.TransporterPatch{
		Name:           trimmed(r.Name),
		ContactPerson:  trimmed(r.ContactPerson),
		Phone:          trimmed(r.Phone),
		Email:          trimmed(r.Email),
		VehicleNumbers: r.VehicleNumbers,
		Routes:         r.Routes,
	}
}

type OwnerRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	CNIC    *string `json:"cnic"`
	Address *string `json:"address"`
}

func (r OwnerRequest) HasRequired() bool {
	return present(r.Name)
}

func (r OwnerRequest) ToEntity() entities.Owner {
	return entities.Owner{
		Name:    str(r.Name),
		Email:   str(r.Email),
		Phone:   str(r.Phone),
		CNIC:    str(r.CNIC),
		Address: str(r.Address),
	}
}

func (r OwnerRequest) ToPatch() entities.OwnerPatch {
	return entities.OwnerPatch{
		Name:    trimmed(r.Name),
		Email:   trimmed(r.Email),
		Phone:   trimmed(r.Phone),
		CNIC:    trimmed(r.CNIC),
		Address: trimmed(r.Address),
	}
}

type LiabilityRequest struct {
	Title    *string          `json:"title"`
	Amount   *decimal.Decimal `json:"amount"`
	Creditor *string          `json:"creditor"`
	Owner    *string          `json:"owner"`
	DueDate  *Date            `json:"dueDate"`
	Status   *string          `json:"status"`
	Notes    *string          `json:"notes"`
}

func (r LiabilityRequest) HasRequired() bool {
	return present(r.Title) && r.Amount != nil
}

func (r LiabilityRequest) ToEntity() entities.Liability {
	return entities.Liability{
		Title:    str(r.Title),
		Amount:   dec(r.Amount),
		Creditor: str(r.Creditor),
		Owner:    str(r.Owner),
		DueDate:  timePtr(r.DueDate),
		Status:   entities.LiabilityStatus(str(r.Status)),
		Notes:    str(r.Notes),
	}
}

func (r LiabilityRequest) ToPatch() entities.LiabilityPatch {
	p := entities.LiabilityPatch{
		Title:    trimmed(r.Title),
		Amount:   r.Amount,
		Creditor: trimmed(r.Creditor),
		Owner:    trimmed(r.Owner),
		DueDate:  timePtr(r.DueDate),
		Notes:    r.Notes,
	}
	if r.Status != nil {
		st := entities.LiabilityStatus(str(r.Status))
		p.Status = &st
	}
	return p
}

type PartnershipAccountRequest struct {
	AccountTitle        *string          `json:"accountTitle"`
	Owner               *string          `json:"owner"`
	SharePercentage     *decimal.Decimal `json:"sharePercentage"`
	CapitalContribution *decimal.Decimal `json:"capitalContribution"`
	Balance             *decimal.Decimal `json:"balance"`
	Notes               *string          `json:"notes"`
}

func (r PartnershipAccountRequest) HasRequired() bool {
	return present(r.AccountTitle) && present(r.Owner)
}

func (r PartnershipAccountRequest) ToEntity() entities.PartnershipAccount {
	return entities.PartnershipAccount{
		AccountTitle:        str(r.AccountTitle),
		Owner:               str(r.Owner),
		SharePercentage:     dec(r.SharePercentage),
		CapitalContribution: dec(r.CapitalContribution),
		Balance:             dec(r.Balance),
		Notes:               str(r.Notes),
	}
}

func (r PartnershipAccountRequest) ToPatch() entities.PartnershipAccountPatch {
	return entities.PartnershipAccountPatch{
		AccountTitle:        trimmed(r.AccountTitle),
		Owner:               trimmed(r.Owner),
		SharePercentage:     r.SharePercentage,
		CapitalContribution: r.CapitalContribution,
		Balance:             r.Balance,
		Notes:               r.Notes,
	}
}

type PropertyAccountRequest struct {
	PropertyName  *string          `json:"propertyName"`
	Location      *string          `json:"location"`
	Owner         *string          `json:"owner"`
	PurchaseValue *decimal.Decimal `json:"purchaseValue"`
	CurrentValue  *decimal.Decimal `json:"currentValue"`
	MonthlyRent   *decimal.Decimal `json:"monthlyRent"`
	Notes         *string          `json:"notes"`
}

func (r PropertyAccountRequest) HasRequired() bool {
	return present(r.PropertyName)
}

func (r PropertyAccountRequest) ToEntity() entities.PropertyAccount {
	return entities.PropertyAccount{
		PropertyName:  str(r.PropertyName),
		Location:      str(r.Location),
		Owner:         str(r.Owner),
		PurchaseValue: dec(r.PurchaseValue),
		CurrentValue:  dec(r.CurrentValue),
		MonthlyRent:   dec(r.MonthlyRent),
		Notes:         str(r.Notes),
	}
}

func (r PropertyAccountRequest) ToPatch() entities.PropertyAccountPatch {
	return entities.PropertyAccountPatch{
		PropertyName:  trimmed(r.PropertyName),
		Location:      trimmed(r.Location),
		Owner:         trimmed(r.Owner),
		PurchaseValue: r.PurchaseValue,
		CurrentValue:  r.CurrentValue,
		MonthlyRent:   r.MonthlyRent,
		Notes:         r.Notes,
	}
}
