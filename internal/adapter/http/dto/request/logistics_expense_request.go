package request

import (
	"time"

	"logistics_backoffice/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const MsgLogisticsExpenseRequiredFields = "Please provide route, freightCost and exchangeRate"

// LogisticsExpenseRequest is the body of POST and PUT /logistics-expenses.
// totalCost and amountInPKR are always derived and never read from clients.
type LogisticsExpenseRequest struct {
	Shipment                *string          `json:"shipment"`
	Transporter             *string          `json:"transporter"`
	Route                   *string          `json:"route"`
	Description             *string          `json:"description"`
	Currency                *string          `json:"currency"`
	FreightCost             *decimal.Decimal `json:"freightCost"`
	BorderCrossingCharges   *decimal.Decimal `json:"borderCrossingCharges"`
	TransporterCommission   *decimal.Decimal `json:"transporterCommission"`
	ServiceFee              *decimal.Decimal `json:"serviceFee"`
	TransitWarehouseCharges *decimal.Decimal `json:"transitWarehouseCharges"`
	LocalTransportCharges   *decimal.Decimal `json:"localTransportCharges"`
	ExchangeRate            *decimal.Decimal `json:"exchangeRate"`
	TransportStatus         *string          `json:"transportStatus"`
	ExpenseDate             *Date            `json:"expenseDate"`
	Notes                   *string          `json:"notes"`
}

func (r LogisticsExpenseRequest) HasRequired() bool {
	return present(r.Route) && r.FreightCost != nil && r.ExchangeRate != nil
}

func (r LogisticsExpenseRequest) ToEntity() entities.LogisticsExpense {
	var expenseDate time.Time
	if t := timePtr(r.ExpenseDate); t != nil {
		expenseDate = *t
	}
	return entities.LogisticsExpense{
		Shipment:                str(r.Shipment),
		Transporter:             str(r.Transporter),
		Route:                   str(r.Route),
		Description:             str(r.Description),
		Currency:                str(r.Currency),
		FreightCost:             dec(r.FreightCost),
		BorderCrossingCharges:   dec(r.BorderCrossingCharges),
		TransporterCommission:   dec(r.TransporterCommission),
		ServiceFee:              dec(r.ServiceFee),
		TransitWarehouseCharges: dec(r.TransitWarehouseCharges),
		LocalTransportCharges:   dec(r.LocalTransportCharges),
		ExchangeRate:            dec(r.ExchangeRate),
		TransportStatus:         entities.TransportStatus(str(r.TransportStatus)),
		ExpenseDate:             expenseDate,
		Notes:                   str(r.Notes),
	}
}

func (r LogisticsExpenseRequest) ToPatch() entities.LogisticsExpensePatch {
	p := entities.LogisticsExpensePatch{
		Shipment:                trimmed(r.Shipment),
		Transporter:             trimmed(r.Transporter),
		Route:                   trimmed(r.Route),
		Description:             r.Description,
		Currency:                trimmed(r.Currency),
		FreightCost:             r.FreightCost,
		BorderCrossingCharges:   r.BorderCrossingCharges,
		TransporterCommission:   r.TransporterCommission,
		ServiceFee:              r.ServiceFee,
		TransitWarehouseCharges: r.TransitWarehouseCharges,
		LocalTransportCharges:   r.LocalTransportCharges,
		ExchangeRate:            r.ExchangeRate,
		ExpenseDate:             timePtr(r.ExpenseDate),
		Notes:                   r.Notes,
	}
	if r.TransportStatus != nil {
		st := entities.TransportStatus(str(r.TransportStatus))
		p.TransportStatus = &st
	}
	return p
}
