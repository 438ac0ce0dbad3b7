package repository

import (
	"context"

	"logistics_backoffice/internal/domain/entities"
	"logistics_backoffice/internal/domain/query"
	"logistics_backoffice/internal/usecase/interfaces"
	"logistics_backoffice/pkg"
)

const defaultOwnersTableName = "owners"

type ownerItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Email     string `dynamodbav:"email,omitempty"`
	Phone     string `dynamodbav:"phone,omitempty"`
	CNIC      string `dynamodbav:"cnic,omitempty"`
	Address   string `dynamodbav:"address,omitempty"`
	IsActive  bool   `dynamodbav:"is_active"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

type OwnerDynamoRepository struct {
	table dynamoTable[ownerItem, entities.Owner]
}

var _ interfaces.IOwnerRepository = (*OwnerDynamoRepository)(nil)

func NewOwnerDynamoRepository(ddb DynamoAPI) *OwnerDynamoRepository {
	return &OwnerDynamoRepository{
		table: dynamoTable[ownerItem, entities.Owner]{
			ddb:       ddb,
			tableName: pkg.GetenvDefault("OWNERS_TABLE", defaultOwnersTableName),
			area:      "owner",
			idOf:      func(o entities.Owner) string { return o.ID },
			toItem: func(o entities.Owner) ownerItem {
				return ownerItem{
					ID:        o.ID,
					Name:      o.Name,
					Email:     o.Email,
					Phone:     o.Phone,
					CNIC:      o.CNIC,
					Address:   o.Address,
					IsActive:  o.IsActive,
					CreatedAt: timeToString(o.CreatedAt),
					UpdatedAt: timeToString(o.UpdatedAt),
				}
			},
			fromItem: func(it ownerItem) entities.Owner {
				return entities.Owner{
					ID:        it.ID,
					Name:      it.Name,
					Email:     it.Email,
					Phone:     it.Phone,
					CNIC:      it.CNIC,
					Address:   it.Address,
					IsActive:  it.IsActive,
					CreatedAt: timeFromString(it.CreatedAt),
					UpdatedAt: timeFromString(it.UpdatedAt),
				}
			},
			filterable: map[string]string{
				"name":  "name",
				"email": "email",
				"phone": "phone",
				"cnic":  "cnic",
			},
			fields: OwnerFields,
		},
	}
}

var OwnerFields = map[string]query.Field[entities.Owner]{
	"name":      func(o entities.Owner) any { return o.Name },
	"email":     func(o entities.Owner) any { return o.Email },
	"phone":     func(o entities.Owner) any { return o.Phone },
	"cnic":      func(o entities.Owner) any { return o.CNIC },
	"address":   func(o entities.Owner) any { return o.Address },
	"createdAt": func(o entities.Owner) any { return o.CreatedAt },
	"updatedAt": func(o entities.Owner) any { return o.UpdatedAt },
}

func (r *OwnerDynamoRepository) Create(ctx context.Context, o entities.Owner) (entities.Owner, error) {
	return r.table.create(ctx, o)
}

func (r *OwnerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Owner, error) {
	return r.table.get(ctx, id)
}

func (r *OwnerDynamoRepository) Save(ctx context.Context, o entities.Owner) (entities.Owner, error) {
	return r.table.save(ctx, o)
}

func (r *OwnerDynamoRepository) Deactivate(ctx context.Context, id string) (entities.Owner, error) {
	return r.table.deactivate(ctx, id)
}

func (r *OwnerDynamoRepository) List(ctx context.Context, q query.ListQuery) (query.Page[entities.Owner], error) {
	return r.table.list(ctx, q)
}
