package repository

import (
	"context"

	"logistics_backoffice/internal/domain/entities"
	"logistics_backoffice/internal/domain/query"
	"logistics_backoffice/internal/usecase/interfaces"
	"logistics_backoffice/pkg"
)

const defaultTransportersTableName = "transporters"

type transporterItem struct {
	ID             string   `dynamodbav:"id"`
	Name           string   `dynamodbav:"name"`
	ContactPerson  string   `dynamodbav:"contact_person,omitempty"`
	Phone          string   `dynamodbav:"phone"`
	Email          string   `dynamodbav:"email,omitempty"`
	VehicleNumbers []string `dynamodbav:"vehicle_numbers"`
	Routes         []string `dynamodbav:"routes"`
	IsActive       bool     `dynamodbav:"is_active"`
	CreatedAt      string   `dynamodbav:"created_at"`
	UpdatedAt      string   `dynamodbav:"updated_at"`
}

type TransporterDynamoRepository struct {
	table dynamoTable[transporterItem, entities.Transporter]
}

var _ interfaces.ITransporterRepository = (*TransporterDynamoRepository)(nil)

func NewTransporterDynamoRepository(ddb DynamoAPI) *TransporterDynamoRepository {
	return &TransporterDynamoRepository{
		table: dynamoTable[transporterItem, entities.Transporter]{
			ddb:       ddb,
			tableName: pkg.GetenvDefault("TRANSPORTERS_TABLE", defaultTransportersTableName),
			area:      "transporter",
			idOf:      func(t entities.Transporter) string { return t.ID },
			toItem:    toTransporterItem,
			fromItem:  fromTransporterItem,
			filterable: map[string]string{
				"name":  "name",
				"phone": "phone",
				"email": "email",
			},
			fields: TransporterFields,
		},
	}
}

var TransporterFields = map[string]query.Field[entities.Transporter]{
	"name":          func(t entities.Transporter) any { return t.Name },
	"contactPerson": func(t entities.Transporter) any { return t.ContactPerson },
	"phone":         func(t entities.Transporter) any { return t.Phone },
	"email":         func(t entities.Transporter) any { return t.Email },
	"createdAt":     func(t entities.Transporter) any { return t.CreatedAt },
	"updatedAt":     func(t entities.Transporter) any { return t.UpdatedAt },
}

func (r *TransporterDynamoRepository) Create(ctx context.Context, t entities.Transporter) (entities.Transporter, error) {
	return r.table.create(ctx, t)
}

func (r *TransporterDynamoRepository) GetByID(ctx context.Context, id string) (entities.Transporter, error) {
	return r.table.get(ctx, id)
}

func (r *TransporterDynamoRepository) Save(ctx context.Context, t entities.Transporter) (entities.Transporter, error) {
	return r.table.save(ctx, t)
}

func (r *TransporterDynamoRepository) Deactivate(ctx context.Context, id string) (entities.Transporter, error) {
	return r.table.deactivate(ctx, id)
}

func (r *TransporterDynamoRepository) List(ctx context.Context, q query.ListQuery) (query.Page[entities.Transporter], error) {
	return r.table.list(ctx, q)
}

func toTransporterItem(t entities.Transporter) transporterItem {
	return transporterItem{
		ID:             t.ID,
		Name:           t.Name,
		ContactPerson:  t.ContactPerson,
		Phone:          t.Phone,
		Email:          t.Email,
		VehicleNumbers: t.VehicleNumbers,
		Routes:         t.Routes,
		IsActive:       t.IsActive,
		CreatedAt:      timeToString(t.CreatedAt),
		UpdatedAt:      timeToString(t.UpdatedAt),
	}
}

func fromTransporterItem(it transporterItem) entities.Transporter {
	vehicles := it.VehicleNumbers
	if vehicles == nil {
		vehicles = []string{}
	}
	routes := it.Routes
	if routes == nil {
		routes = []string{}
	}
	return entities.Transporter{
		ID:             it.ID,
		Name:           it.Name,
		ContactPerson:  it.ContactPerson,
		Phone:          it.Phone,
		Email:          it.Email,
		VehicleNumbers: vehicles,
		Routes:         routes,
		IsActive:       it.IsActive,
		CreatedAt:      timeFromString(it.CreatedAt),
		UpdatedAt:      timeFromString(it.UpdatedAt),
	}
}
