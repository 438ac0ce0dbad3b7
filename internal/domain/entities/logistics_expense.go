package entities

import (
	"time"

	"logistics_backoffice/internal/domain/finance"

	"github.com/shopspring/decimal"
)

// TransportStatus tracks where the goods behind an expense are.
// Writes only check membership; there is no transition table.
type TransportStatus string

const (
	TransportStatusPending   TransportStatus = "pending"
	TransportStatusInTransit TransportStatus = "in_transit"
	TransportStatusDelivered TransportStatus = "delivered"
	TransportStatusCancelled TransportStatus = "cancelled"
)

var TransportStatuses = []TransportStatus{
	TransportStatusPending,
	TransportStatusInTransit,
	TransportStatusDelivered,
	TransportStatusCancelled,
}

func (s TransportStatus) Valid() bool {
	for _, v := range TransportStatuses {
		if s == v {
			return true
		}
	}
	return false
}

const DefaultExpenseCurrency = "USD"

// LogisticsExpense is the cost of moving goods along a route, in a foreign
// currency, converted to PKR.
//
// TotalCost and AmountInPKR are derived; AmountInPKR stays nil when
// TotalCost is zero.
type LogisticsExpense struct {
	ID                      string           `json:"id"`
	Shipment                string           `json:"shipment,omitempty"`
	Transporter             string           `json:"transporter,omitempty"`
	Route                   string           `json:"route"`
	Description             string           `json:"description,omitempty"`
	Currency                string           `json:"currency"`
	FreightCost             decimal.Decimal  `json:"freightCost"`
	BorderCrossingCharges   decimal.Decimal  `json:"borderCrossingCharges"`
	TransporterCommission   decimal.Decimal  `json:"transporterCommission"`
	ServiceFee              decimal.Decimal  `json:"serviceFee"`
	TransitWarehouseCharges decimal.Decimal  `json:"transitWarehouseCharges"`
	LocalTransportCharges   decimal.Decimal  `json:"localTransportCharges"`
	ExchangeRate            decimal.Decimal  `json:"exchangeRate"`
	TotalCost               decimal.Decimal  `json:"totalCost"`
	AmountInPKR             *decimal.Decimal `json:"amountInPKR,omitempty"`
	TransportStatus         TransportStatus  `json:"transportStatus"`
	ExpenseDate             time.Time        `json:"expenseDate"`
	Notes                   string           `json:"notes,omitempty"`
	IsActive                bool             `json:"isActive"`
	CreatedAt               time.Time        `json:"createdAt"`
	UpdatedAt               time.Time        `json:"updatedAt"`

	ShipmentDetails    *Shipment    `json:"-"`
	TransporterDetails *Transporter `json:"-"`
}

func (e LogisticsExpense) Components() finance.ExpenseComponents {
	return finance.ExpenseComponents{
		FreightCost:             &e.FreightCost,
		BorderCrossingCharges:   &e.BorderCrossingCharges,
		TransporterCommission:   &e.TransporterCommission,
		ServiceFee:              &e.ServiceFee,
		TransitWarehouseCharges: &e.TransitWarehouseCharges,
		LocalTransportCharges:   &e.LocalTransportCharges,
	}
}

// Amounts returns every money input, used for the non-negative check.
func (e LogisticsExpense) Amounts() []decimal.Decimal {
	return []decimal.Decimal{
		e.FreightCost,
		e.BorderCrossingCharges,
		e.TransporterCommission,
		e.ServiceFee,
		e.TransitWarehouseCharges,
		e.LocalTransportCharges,
		e.ExchangeRate,
	}
}

// LogisticsExpensePatch lists the fields a client may change after creation.
type LogisticsExpensePatch struct {
	Shipment                *string
	Transporter             *string
	Route                   *string
	Description             *string
	Currency                *string
	FreightCost             *decimal.Decimal
	BorderCrossingCharges   *decimal.Decimal
	TransporterCommission   *decimal.Decimal
	ServiceFee              *decimal.Decimal
	TransitWarehouseCharges *decimal.Decimal
	LocalTransportCharges   *decimal.Decimal
	ExchangeRate            *decimal.Decimal
	TransportStatus         *TransportStatus
	ExpenseDate             *time.Time
	Notes                   *string
}

func (p LogisticsExpensePatch) Apply(e *LogisticsExpense) {
	setString(&e.Shipment, p.Shipment)
	setString(&e.Transporter, p.Transporter)
	setString(&e.Route, p.Route)
	setString(&e.Description, p.Description)
	setString(&e.Currency, p.Currency)
	setDecimal(&e.FreightCost, p.FreightCost)
	setDecimal(&e.BorderCrossingCharges, p.BorderCrossingCharges)
	setDecimal(&e.TransporterCommission, p.TransporterCommission)
	setDecimal(&e.ServiceFee, p.ServiceFee)
	setDecimal(&e.TransitWarehouseCharges, p.TransitWarehouseCharges)
	setDecimal(&e.LocalTransportCharges, p.LocalTransportCharges)
	setDecimal(&e.ExchangeRate, p.ExchangeRate)
	if p.TransportStatus != nil {
		e.TransportStatus = *p.TransportStatus
	}
	if p.ExpenseDate != nil {
		e.ExpenseDate = *p.ExpenseDate
	}
	setString(&e.Notes, p.Notes)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setDecimal(dst *decimal.Decimal, v *decimal.Decimal) {
	if v != nil {
		*dst = *v
	}
}
