package repository

import (
	"context"

	"logistics_backoffice/internal/domain/entities"
	"logistics_backoffice/internal/domain/query"
	"logistics_backoffice/internal/usecase/interfaces"
	"logistics_backoffice/pkg"
)

const defaultLogisticsExpensesTableName = "logistics_expenses"

type logisticsExpenseItem struct {
	ID                      string `dynamodbav:"id"`
	Shipment                string `dynamodbav:"shipment,omitempty"`
	Transporter             string `dynamodbav:"transporter,omitempty"`
	Route                   string `dynamodbav:"route"`
	Description             string `dynamodbav:"description,omitempty"`
	Currency                string `dynamodbav:"currency"`
	FreightCost             string `dynamodbav:"freight_cost"`
	BorderCrossingCharges   string `dynamodbav:"border_crossing_charges"`
	TransporterCommission   string `dynamodbav:"transporter_commission"`
	ServiceFee              string `dynamodbav:"service_fee"`
	TransitWarehouseCharges string `dynamodbav:"transit_warehouse_charges"`
	LocalTransportCharges   string `dynamodbav:"local_transport_charges"`
	ExchangeRate            string `dynamodbav:"exchange_rate"`
	TotalCost               string `dynamodbav:"total_cost"`
	AmountInPKR             string `dynamodbav:"amount_in_pkr,omitempty"`
	TransportStatus         string `dynamodbav:"transport_status"`
	ExpenseDate             string `dynamodbav:"expense_date"`
	Notes                   string `dynamodbav:"notes,omitempty"`
	IsActive                bool   `dynamodbav:"is_active"`
	CreatedAt               string `dynamodbav:"created_at"`
	UpdatedAt               string `dynamodbav:"updated_at"`
}

// LogisticsExpenseDynamoRepository persists LogisticsExpense entities in DynamoDB.
// total_cost and amount_in_pkr are stored as computed by the usecase.
type LogisticsExpenseDynamoRepository struct {
	table dynamoTable[logisticsExpenseItem, entities.LogisticsExpense]
}

var _ interfaces.ILogisticsExpenseRepository = (*LogisticsExpenseDynamoRepository)(nil)

func NewLogisticsExpenseDynamoRepository(ddb DynamoAPI) *LogisticsExpenseDynamoRepository {
	return &LogisticsExpenseDynamoRepository{
		table: dynamoTable[logisticsExpenseItem, entities.LogisticsExpense]{
			ddb:       ddb,
			tableName: pkg.GetenvDefault("LOGISTICS_EXPENSES_TABLE", defaultLogisticsExpensesTableName),
			area:      "expense",
			idOf:      func(e entities.LogisticsExpense) string { return e.ID },
			toItem:    toLogisticsExpenseItem,
			fromItem:  fromLogisticsExpenseItem,
			filterable: map[string]string{
				"route":           "route",
				"currency":        "currency",
				"transportStatus": "transport_status",
				"shipment":        "shipment",
				"transporter":     "transporter",
			},
			fields: LogisticsExpenseFields,
		},
	}
}

var LogisticsExpenseFields = map[string]query.Field[entities.LogisticsExpense]{
	"route":           func(e entities.LogisticsExpense) any { return e.Route },
	"description":     func(e entities.LogisticsExpense) any { return e.Description },
	"currency":        func(e entities.LogisticsExpense) any { return e.Currency },
	"transportStatus": func(e entities.LogisticsExpense) any { return string(e.TransportStatus) },
	"shipment":        func(e entities.LogisticsExpense) any { return e.Shipment },
	"transporter":     func(e entities.LogisticsExpense) any { return e.Transporter },
	"freightCost":     func(e entities.LogisticsExpense) any { return e.FreightCost },
	"exchangeRate":    func(e entities.LogisticsExpense) any { return e.ExchangeRate },
	"totalCost":       func(e entities.LogisticsExpense) any { return e.TotalCost },
	"amountInPKR":     func(e entities.LogisticsExpense) any { return e.AmountInPKR },
	"expenseDate":     func(e entities.LogisticsExpense) any { return e.ExpenseDate },
	"createdAt":       func(e entities.LogisticsExpense) any { return e.CreatedAt },
	"updatedAt":       func(e entities.LogisticsExpense) any { return e.UpdatedAt },
}

func (r *LogisticsExpenseDynamoRepository) Create(ctx context.Context, e entities.LogisticsExpense) (entities.LogisticsExpense, error) {
	return r.table.create(ctx, e)
}

func (r *LogisticsExpenseDynamoRepository) GetByID(ctx context.Context, id string) (entities.LogisticsExpense, error) {
	return r.table.get(ctx, id)
}

func (r *LogisticsExpenseDynamoRepository) Save(ctx context.Context, e entities.LogisticsExpense) (entities.LogisticsExpense, error) {
	return r.table.save(ctx, e)
}

func (r *LogisticsExpenseDynamoRepository) Deactivate(ctx context.Context, id string) (entities.LogisticsExpense, error) {
	return r.table.deactivate(ctx, id)
}

func (r *LogisticsExpenseDynamoRepository) List(ctx context.Context, q query.ListQuery) (query.Page[entities.LogisticsExpense], error) {
	return r.table.list(ctx, q)
}

func toLogisticsExpenseItem(e entities.LogisticsExpense) logisticsExpenseItem {
	return logisticsExpenseItem{
		ID:                      e.ID,
		Shipment:                e.Shipment,
		Transporter:             e.Transporter,
		Route:                   e.Route,
		Description:             e.Description,
		Currency:                e.Currency,
		FreightCost:             decimalToString(e.FreightCost),
		BorderCrossingCharges:   decimalToString(e.BorderCrossingCharges),
		TransporterCommission:   decimalToString(e.TransporterCommission),
		ServiceFee:              decimalToString(e.ServiceFee),
		TransitWarehouseCharges: decimalToString(e.TransitWarehouseCharges),
		LocalTransportCharges:   decimalToString(e.LocalTransportCharges),
		ExchangeRate:            decimalToString(e.ExchangeRate),
		TotalCost:               decimalToString(e.TotalCost),
		AmountInPKR:             optionalDecimalToString(e.AmountInPKR),
		TransportStatus:         string(e.TransportStatus),
		ExpenseDate:             timeToString(e.ExpenseDate),
		Notes:                   e.Notes,
		IsActive:                e.IsActive,
		CreatedAt:               timeToString(e.CreatedAt),
		UpdatedAt:               timeToString(e.UpdatedAt),
	}
}

func fromLogisticsExpenseItem(it logisticsExpenseItem) entities.LogisticsExpense {
	return entities.LogisticsExpense{
		ID:                      it.ID,
		Shipment:                it.Shipment,
		Transporter:             it.Transporter,
		Route:                   it.Route,
		Description:             it.Description,
		Currency:                it.Currency,
		FreightCost:             decimalFromString(it.FreightCost),
		BorderCrossingCharges:   decimalFromString(it.BorderCrossingCharges),
		TransporterCommission:   decimalFromString(it.TransporterCommission),
		ServiceFee:              decimalFromString(it.ServiceFee),
		TransitWarehouseCharges: decimalFromString(it.TransitWarehouseCharges),
		LocalTransportCharges:   decimalFromString(it.LocalTransportCharges),
		ExchangeRate:            decimalFromString(it.ExchangeRate),
		TotalCost:               decimalFromString(it.TotalCost),
		AmountInPKR:             optionalDecimalFromString(it.AmountInPKR),
		TransportStatus:         entities.TransportStatus(it.TransportStatus),
		ExpenseDate:             timeFromString(it.ExpenseDate),
		Notes:                   it.Notes,
		IsActive:                it.IsActive,
		CreatedAt:               timeFromString(it.CreatedAt),
		UpdatedAt:               timeFromString(it.UpdatedAt),
	}
}
