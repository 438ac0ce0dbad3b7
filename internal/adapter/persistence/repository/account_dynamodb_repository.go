package repository

import (
	"context"

	"logistics_backoffice/internal/domain/entities"
	"logistics_backoffice/internal/domain/query"
	"logistics_backoffice/internal/usecase/interfaces"
	"logistics_backoffice/pkg"
)

const (
	defaultPartnershipAccountsTableName = "partnership_accounts"
	defaultPropertyAccountsTableName    = "property_accounts"
)

type partnershipAccountItem struct {
	ID                  string `dynamodbav:"id"`
	AccountTitle        string `dynamodbav:"account_title"`
	Owner               string `dynamodbav:"owner"`
	SharePercentage     string `dynamodbav:"share_percentage"`
	CapitalContribution string `dynamodbav:"capital_contribution"`
	Balance             string `dynamodbav:"balance"`
	Notes               string `dynamodbav:"notes,omitempty"`
	IsActive            bool   `dynamodbav:"is_active"`
	CreatedAt           string `dynamodbav:"created_at"`
	UpdatedAt           string `dynamodbav:"updated_at"`
}

type PartnershipAccountDynamoRepository struct {
	table dynamoTable[partnershipAccountItem, entities.PartnershipAccount]
}

var _ interfaces.IPartnershipAccountRepository = (*PartnershipAccountDynamoRepository)(nil)

func NewPartnershipAccountDynamoRepository(ddb DynamoAPI) *PartnershipAccountDynamoRepository {
	return &PartnershipAccountDynamoRepository{
		table: dynamoTable[partnershipAccountItem, entities.PartnershipAccount]{
			ddb:       ddb,
			tableName: pkg.GetenvDefault("PARTNERSHIP_ACCOUNTS_TABLE", defaultPartnershipAccountsTableName),
			area:      "partnership",
			idOf:      func(a entities.PartnershipAccount) string { return a.ID },
			toItem: func(a entities.PartnershipAccount) partnershipAccountItem {
				return partnershipAccountItem{
					ID:                  a.ID,
					AccountTitle:        a.AccountTitle,
					Owner:               a.Owner,
					SharePercentage:     decimalToString(a.SharePercentage),
					CapitalContribution: decimalToString(a.CapitalContribution),
					Balance:             decimalToString(a.Balance),
					Notes:               a.Notes,
					IsActive:            a.IsActive,
					CreatedAt:           timeToString(a.CreatedAt),
					UpdatedAt:           timeToString(a.UpdatedAt),
				}
			},
			fromItem: func(it partnershipAccountItem) entities.PartnershipAccount {
				return entities.PartnershipAccount{
					ID:                  it.ID,
					AccountTitle:        it.AccountTitle,
					Owner:               it.Owner,
					SharePercentage:     decimalFromString(it.SharePercentage),
					CapitalContribution: decimalFromString(it.CapitalContribution),
					Balance:             decimalFromString(it.Balance),
					Notes:               it.Notes,
					IsActive:            it.IsActive,
					CreatedAt:           timeFromString(it.CreatedAt),
					UpdatedAt:           timeFromString(it.UpdatedAt),
				}
			},
			filterable: map[string]string{
				"owner":        "owner",
				"accountTitle": "account_title",
			},
			fields: PartnershipAccountFields,
		},
	}
}

var PartnershipAccountFields = map[string]query.Field[entities.PartnershipAccount]{
	"accountTitle":        func(a entities.PartnershipAccount) any { return a.AccountTitle },
	"owner":               func(a entities.PartnershipAccount) any { return a.Owner },
	"sharePercentage":     func(a entities.PartnershipAccount) any { return a.SharePercentage },
	"capitalContribution": func(a entities.PartnershipAccount) any { return a.CapitalContribution },
	"balance":             func(a entities.PartnershipAccount) any { return a.Balance },
	"createdAt":           func(a entities.PartnershipAccount) any { return a.CreatedAt },
	"updatedAt":           func(a entities.PartnershipAccount) any { return a.UpdatedAt },
}

func (r *PartnershipAccountDynamoRepository) Create(ctx context.Context, a entities.PartnershipAccount) (entities.PartnershipAccount, error) {
	return r.table.create(ctx, a)
}

func (r *PartnershipAccountDynamoRepository) GetByID(ctx context.Context, id string) (entities.PartnershipAccount, error) {
	return r.table.get(ctx, id)
}

func (r *PartnershipAccountDynamoRepository) Save(ctx context.Context, a entities.PartnershipAccount) (entities.PartnershipAccount, error) {
	return r.table.save(ctx, a)
}

func (r *PartnershipAccountDynamoRepository) Deactivate(ctx context.Context, id string) (entities.PartnershipAccount, error) {
	return r.table.deactivate(ctx, id)
}

func (r *PartnershipAccountDynamoRepository) List(ctx context.Context, q query.ListQuery) (query.Page[entities.PartnershipAccount], error) {
	return r.table.list(ctx, q)
}

type propertyAccountItem struct {
	ID            string `dynamodbav:"id"`
	PropertyName  string `dynamodbav:"property_name"`
	Location      string `dynamodbav:"location,omitempty"`
	Owner         string `dynamodbav:"owner,omitempty"`
	PurchaseValue string `dynamodbav:"purchase_value"`
	CurrentValue  string `dynamodbav:"current_value"`
	MonthlyRent   string `dynamodbav:"monthly_rent"`
	Notes         string `dynamodbav:"notes,omitempty"`
	IsActive      bool   `dynamodbav:"is_active"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

type PropertyAccountDynamoRepository struct {
	table dynamoTable[propertyAccountItem, entities.PropertyAccount]
}

var _ interfaces.IPropertyAccountRepository = (*PropertyAccountDynamoRepository)(nil)

func NewPropertyAccountDynamoRepository(ddb DynamoAPI) *PropertyAccountDynamoRepository {
	return &PropertyAccountDynamoRepository{
		table: dynamoTable[propertyAccountItem, entities.PropertyAccount]{
			ddb:       ddb,
			tableName: pkg.GetenvDefault("PROPERTY_ACCOUNTS_TABLE", defaultPropertyAccountsTableName),
			area:      "property",
			idOf:      func(a entities.PropertyAccount) string { return a.ID },
			toItem: func(a entities.PropertyAccount) propertyAccountItem {
				return propertyAccountItem{
					ID:            a.ID,
					PropertyName:  a.PropertyName,
					Location:      a.Location,
					Owner:         a.Owner,
					PurchaseValue: decimalToString(a.PurchaseValue),
					CurrentValue:  decimalToString(a.CurrentValue),
					MonthlyRent:   decimalToString(a.MonthlyRent),
					Notes:         a.Notes,
					IsActive:      a.IsActive,
					CreatedAt:     timeToString(a.CreatedAt),
					UpdatedAt:     timeToString(a.UpdatedAt),
				}
			},
			fromItem: func(it propertyAccountItem) entities.PropertyAccount {
				return entities.PropertyAccount{
					ID:            it.ID,
					PropertyName:  it.PropertyName,
					Location:      it.Location,
					Owner:         it.Owner,
					PurchaseValue: decimalFromString(it.PurchaseValue),
					CurrentValue:  decimalFromString(it.CurrentValue),
					MonthlyRent:   decimalFromString(it.MonthlyRent),
					Notes:         it.Notes,
					IsActive:      it.IsActive,
					CreatedAt:     timeFromString(it.CreatedAt),
					UpdatedAt:     timeFromString(it.UpdatedAt),
				}
			},
			filterable: map[string]string{
				"owner":        "owner",
				"location":     "location",
				"propertyName": "property_name",
			},
			fields: PropertyAccountFields,
		},
	}
}

var PropertyAccountFields = map[string]query.Field[entities.PropertyAccount]{
	"propertyName":  func(a entities.PropertyAccount) any { return a.PropertyName },
	"location":      func(a entities.PropertyAccount) any { return a.Location },
	"owner":         func(a entities.PropertyAccount) any { return a.Owner },
	"purchaseValue": func(a entities.PropertyAccount) any { return a.PurchaseValue },
	"currentValue":  func(a entities.PropertyAccount) any { return a.CurrentValue },
	"monthlyRent":   func(a entities.PropertyAccount) any { return a.MonthlyRent },
	"createdAt":     func(a entities.PropertyAccount) any { return a.CreatedAt },
	"updatedAt":     func(a entities.PropertyAccount) any { return a.UpdatedAt },
}

func (r *PropertyAccountDynamoRepository) Create(ctx context.Context, a entities.PropertyAccount) (entities.PropertyAccount, error) {
	return r.table.create(ctx, a)
}

func (r *PropertyAccountDynamoRepository) GetByID(ctx context.Context, id string) (entities.PropertyAccount, error) {
	return r.table.get(ctx, id)
}

func (r *PropertyAccountDynamoRepository) Save(ctx context.Context, a entities.PropertyAccount) (entities.PropertyAccount, error) {
	return r.table.save(ctx, a)
}

func (r *PropertyAccountDynamoRepository) Deactivate(ctx context.Context, id string) (entities.PropertyAccount, error) {
	return r.table.deactivate(ctx, id)
}

func (r *PropertyAccountDynamoRepository) List(ctx context.Context, q query.ListQuery) (query.Page[entities.PropertyAccount], error) {
	return r.table.list(ctx, q)
}
