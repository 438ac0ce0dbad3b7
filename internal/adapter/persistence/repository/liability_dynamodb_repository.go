package repository

import (
	"context"

	"logistics_backoffice/internal/domain/entities"
	"logistics_backoffice/internal/domain/query"
	"logistics_backoffice/internal/usecase/interfaces"
	"logistics_backoffice/pkg"
)

const defaultLiabilitiesTableName = "liabilities"

type liabilityItem struct {
	ID        string `dynamodbav:"id"`
	Title     string `dynamodbav:"title"`
	Amount    string `dynamodbav:"amount"`
	Creditor  string `dynamodbav:"creditor,omitempty"`
	Owner     string `dynamodbav:"owner,omitempty"`
	DueDate   string `dynamodbav:"due_date,omitempty"`
	Status    string `dynamodbav:"status"`
	Notes     string `dynamodbav:"notes,omitempty"`
	IsActive  bool   `dynamodbav:"is_active"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

type LiabilityDynamoRepository struct {
	table dynamoTable[liabilityItem, entities.Liability]
}

var _ interfaces.ILiabilityRepository = (*LiabilityDynamoRepository)(nil)

func NewLiabilityDynamoRepository(ddb DynamoAPI) *LiabilityDynamoRepository {
	return &LiabilityDynamoRepository{
		table: dynamoTable[liabilityItem, entities.Liability]{
			ddb:       ddb,
			tableName: pkg.GetenvDefault("LIABILITIES_TABLE", defaultLiabilitiesTableName),
			area:      "liability",
			idOf:      func(l entities.Liability) string { return l.ID },
			toItem: func(l entities.Liability) liabilityItem {
				return liabilityItem{
					ID:        l.ID,
					Title:     l.Title,
					Amount:    decimalToString(l.Amount),
					Creditor:  l.Creditor,
					Owner:     l.Owner,
					DueDate:   optionalTimeToString(l.DueDate),
					Status:    string(l.Status),
					Notes:     l.Notes,
					IsActive:  l.IsActive,
					CreatedAt: timeToString(l.CreatedAt),
					UpdatedAt: timeToString(l.UpdatedAt),
				}
			},
			fromItem: func(it liabilityItem) entities.Liability {
				return entities.Liability{
					ID:        it.ID,
					Title:     it.Title,
					Amount:    decimalFromString(it.Amount),
					Creditor:  it.Creditor,
					Owner:     it.Owner,
					DueDate:   optionalTimeFromString(it.DueDate),
					Status:    entities.LiabilityStatus(it.Status),
					Notes:     it.Notes,
					IsActive:  it.IsActive,
					CreatedAt: timeFromString(it.CreatedAt),
					UpdatedAt: timeFromString(it.UpdatedAt),
				}
			},
			filterable: map[string]string{
				"status":   "status",
				"owner":    "owner",
				"creditor": "creditor",
			},
			fields: LiabilityFields,
		},
	}
}

var LiabilityFields = map[string]query.Field[entities.Liability]{
	"title":     func(l entities.Liability) any { return l.Title },
	"amount":    func(l entities.Liability) any { return l.Amount },
	"creditor":  func(l entities.Liability) any { return l.Creditor },
	"owner":     func(l entities.Liability) any { return l.Owner },
	"status":    func(l entities.Liability) any { return string(l.Status) },
	"createdAt": func(l entities.Liability) any { return l.CreatedAt },
	"updatedAt": func(l entities.Liability) any { return l.UpdatedAt },
}

func (r *LiabilityDynamoRepository) Create(ctx context.Context, l entities.Liability) (entities.Liability, error) {
	return r.table.create(ctx, l)
}

func (r *LiabilityDynamoRepository) GetByID(ctx context.Context, id string) (entities.Liability, error) {
	return r.table.get(ctx, id)
}

func (r *LiabilityDynamoRepository) Save(ctx context.Context, l entities.Liability) (entities.Liability, error) {
	return r.table.save(ctx, l)
}

func (r *LiabilityDynamoRepository) Deactivate(ctx context.Context, id string) (entities.Liability, error) {
	return r.table.deactivate(ctx, id)
}

func (r *LiabilityDynamoRepository) List(ctx context.Context, q query.ListQuery) (query.Page[entities.Liability], error) {
	return r.table.list(ctx, q)
}
