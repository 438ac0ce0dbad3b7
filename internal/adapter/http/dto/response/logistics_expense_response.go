package response

import (
	"time"

	"logistics_backoffice/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type LogisticsExpenseResponse struct {
	ID                      string           `json:"id"`
	Shipment                any              `json:"shipment,omitempty"`
	Transporter             any              `json:"transporter,omitempty"`
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
	TransportStatus         string           `json:"transportStatus"`
	ExpenseDate             time.Time        `json:"expenseDate"`
	Notes                   string           `json:"notes,omitempty"`
	IsActive                bool             `json:"isActive"`
	CreatedAt               time.Time        `json:"createdAt"`
	UpdatedAt               time.Time        `json:"updatedAt"`
}

func FromLogisticsExpense(e entities.LogisticsExpense) LogisticsExpenseResponse {
	var shipment any
	switch {
	case e.ShipmentDetails != nil:
		shipment = FromShipment(*e.ShipmentDetails)
	case e.Shipment != "":
		shipment = e.Shipment
	}
	return LogisticsExpenseResponse{
		ID:                      e.ID,
		Shipment:                shipment,
		Transporter:             transporterRef(e.Transporter, e.TransporterDetails),
		Route:                   e.Route,
		Description:             e.Description,
		Currency:                e.Currency,
		FreightCost:             e.FreightCost,
		BorderCrossingCharges:   e.BorderCrossingCharges,
		TransporterCommission:   e.TransporterCommission,
		ServiceFee:              e.ServiceFee,
		TransitWarehouseCharges: e.TransitWarehouseCharges,
		LocalTransportCharges:   e.LocalTransportCharges,
		ExchangeRate:            e.ExchangeRate,
		TotalCost:               e.TotalCost,
		AmountInPKR:             e.AmountInPKR,
		TransportStatus:         string(e.TransportStatus),
		ExpenseDate:             e.ExpenseDate,
		Notes:                   e.Notes,
		IsActive:                e.IsActive,
		CreatedAt:               e.CreatedAt,
		UpdatedAt:               e.UpdatedAt,
	}
}
