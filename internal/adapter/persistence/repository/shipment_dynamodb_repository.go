package repository

import (
	"context"

	"logistics_backoffice/internal/domain/entities"
	"logistics_backoffice/internal/domain/query"
	"logistics_backoffice/internal/usecase/interfaces"
	"logistics_backoffice/pkg"
)

const defaultShipmentsTableName = "shipments"

type shipmentProductItem struct {
	Product   string `dynamodbav:"product"`
	Name      string `dynamodbav:"name,omitempty"`
	Quantity  string `dynamodbav:"quantity"`
	UnitPrice string `dynamodbav:"unit_price"`
}

type shipmentItem struct {
	ID                  string                `dynamodbav:"id"`
	ShipmentID          string                `dynamodbav:"shipment_id"`
	BatchNo             string                `dynamodbav:"batch_no"`
	TrackingNumber      string                `dynamodbav:"tracking_number"`
	Transporter         string                `dynamodbav:"transporter,omitempty"`
	Origin              string                `dynamodbav:"origin"`
	Destination         string                `dynamodbav:"destination"`
	Currency            string                `dynamodbav:"currency"`
	Products            []shipmentProductItem `dynamodbav:"products"`
	TotalValue          string                `dynamodbav:"total_value,omitempty"`
	Status              string                `dynamodbav:"status"`
	DepartureDate       string                `dynamodbav:"departure_date,omitempty"`
	ExpectedArrivalDate string                `dynamodbav:"expected_arrival_date,omitempty"`
	Notes               string                `dynamodbav:"notes,omitempty"`
	IsActive            bool                  `dynamodbav:"is_active"`
	CreatedAt           string                `dynamodbav:"created_at"`
	UpdatedAt           string                `dynamodbav:"updated_at"`
}

// ShipmentDynamoRepository persists Shipment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// shipment_id, batch_no and tracking_number are written once by Create and
// carried unchanged by every Save.

type ShipmentDynamoRepository struct {
	table dynamoTable[shipmentItem, entities.Shipment]
}

var _ interfaces.IShipmentRepository = (*ShipmentDynamoRepository)(nil)

func NewShipmentDynamoRepository(ddb DynamoAPI) *ShipmentDynamoRepository {
	return &ShipmentDynamoRepository{
		table: dynamoTable[shipmentItem, entities.Shipment]{
			ddb:       ddb,
			tableName: pkg.GetenvDefault("SHIPMENTS_TABLE", defaultShipmentsTableName),
			area:      "shipment",
			idOf:      func(s entities.Shipment) string { return s.ID },
			toItem:    toShipmentItem,
			fromItem:  fromShipmentItem,
			filterable: map[string]string{
				"status":         "status",
				"currency":       "currency",
				"origin":         "origin",
				"destination":    "destination",
				"transporter":    "transporter",
				"shipmentId":     "shipment_id",
				"batchNo":        "batch_no",
				"trackingNumber": "tracking_number",
			},
			fields: ShipmentFields,
		},
	}
}

// ShipmentFields are the attributes a shipment list can sort and match on.
var ShipmentFields = map[string]query.Field[entities.Shipment]{
	"shipmentId":     func(s entities.Shipment) any { return s.ShipmentID },
	"batchNo":        func(s entities.Shipment) any { return s.BatchNo },
	"trackingNumber": func(s entities.Shipment) any { return s.TrackingNumber },
	"origin":         func(s entities.Shipment) any { return s.Origin },
	"destination":    func(s entities.Shipment) any { return s.Destination },
	"currency":       func(s entities.Shipment) any { return s.Currency },
	"status":         func(s entities.Shipment) any { return string(s.Status) },
	"transporter":    func(s entities.Shipment) any { return s.Transporter },
	"notes":          func(s entities.Shipment) any { return s.Notes },
	"totalValue":     func(s entities.Shipment) any { return s.TotalValue },
	"createdAt":      func(s entities.Shipment) any { return s.CreatedAt },
	"updatedAt":      func(s entities.Shipment) any { return s.UpdatedAt },
}

func (r *ShipmentDynamoRepository) Create(ctx context.Context, s entities.Shipment) (entities.Shipment, error) {
	return r.table.create(ctx, s)
}

func (r *ShipmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Shipment, error) {
	return r.table.get(ctx, id)
}

func (r *ShipmentDynamoRepository) Save(ctx context.Context, s entities.Shipment) (entities.Shipment, error) {
	return r.table.save(ctx, s)
}

func (r *ShipmentDynamoRepository) Deactivate(ctx context.Context, id string) (entities.Shipment, error) {
	return r.table.deactivate(ctx, id)
}

func (r *ShipmentDynamoRepository) List(ctx context.Context, q query.ListQuery) (query.Page[entities.Shipment], error) {
	return r.table.list(ctx, q)
}

func (r *ShipmentDynamoRepository) CountAll(ctx context.Context) (int64, error) {
	return r.table.count(ctx)
}

func toShipmentItem(s entities.Shipment) shipmentItem {
	products := make([]shipmentProductItem, 0, len(s.Products))
	for _, p := range s.Products {
		products = append(products, shipmentProductItem{
			Product:   p.Product,
			Name:      p.Name,
			Quantity:  decimalToString(p.Quantity),
			UnitPrice: decimalToString(p.UnitPrice),
		})
	}
	return shipmentItem{
		ID:                  s.ID,
		ShipmentID:          s.ShipmentID,
		BatchNo:             s.BatchNo,
		TrackingNumber:      s.TrackingNumber,
		Transporter:         s.Transporter,
		Origin:              s.Origin,
		Destination:         s.Destination,
		Currency:            s.Currency,
		Products:            products,
		TotalValue:          optionalDecimalToString(s.TotalValue),
		Status:              string(s.Status),
		DepartureDate:       optionalTimeToString(s.DepartureDate),
		ExpectedArrivalDate: optionalTimeToString(s.ExpectedArrivalDate),
		Notes:               s.Notes,
		IsActive:            s.IsActive,
		CreatedAt:           timeToString(s.CreatedAt),
		UpdatedAt:           timeToString(s.UpdatedAt),
	}
}

func fromShipmentItem(it shipmentItem) entities.Shipment {
	products := make([]entities.ShipmentProduct, 0, len(it.Products))
	for _, p := range it.Products {
		products = append(products, entities.ShipmentProduct{
			Product:   p.Product,
			Name:      p.Name,
			Quantity:  decimalFromString(p.Quantity),
			UnitPrice: decimalFromString(p.UnitPrice),
		})
	}
	return entities.Shipment{
		ID:                  it.ID,
		ShipmentID:          it.ShipmentID,
		BatchNo:             it.BatchNo,
		TrackingNumber:      it.TrackingNumber,
		Transporter:         it.Transporter,
		Origin:              it.Origin,
		Destination:         it.Destination,
		Currency:            it.Currency,
		Products:            products,
		TotalValue:          optionalDecimalFromString(it.TotalValue),
		Status:              entities.ShipmentStatus(it.Status),
		DepartureDate:       optionalTimeFromString(it.DepartureDate),
		ExpectedArrivalDate: optionalTimeFromString(it.ExpectedArrivalDate),
		Notes:               it.Notes,
		IsActive:            it.IsActive,
		CreatedAt:           timeFromString(it.CreatedAt),
		UpdatedAt:           timeFromString(it.UpdatedAt),
	}
}
