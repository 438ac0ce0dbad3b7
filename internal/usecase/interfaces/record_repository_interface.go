package interfaces

import (
	"context"

	"logistics_backoffice/internal/domain/entities"
	"logistics_backoffice/internal/domain/query"
)

// IRecordRepository abstracts DynamoDB persistence shared by every back office record.
//
// Lookups return the zero value (empty ID) when nothing matches:
//   - GetByID finds active and soft-deleted records alike
//   - Save only overwrites an existing record
//   - Deactivate flips is_active to false (soft delete)
//   - List only returns active records

type IRecordRepository[T any] interface {
	Create(ctx context.Context, record T) (T, error)
	GetByID(ctx context.Context, id string) (T, error)
	Save(ctx context.Context, record T) (T, error)
	Deactivate(ctx context.Context, id string) (T, error)
	List(ctx context.Context, q query.ListQuery) (query.Page[T], error)
}

type IShipmentRepository interface {
	IRecordRepository[entities.Shipment]
	// CountAll counts every shipment, soft-deleted ones included.
	CountAll(ctx context.Context) (int64, error)
}

type ILogisticsExpenseRepository interface {
	IRecordRepository[entities.LogisticsExpense]
}

type ITransporterRepository interface {
	IRecordRepository[entities.Transporter]
}

type IOwnerRepository interface {
	IRecordRepository[entities.Owner]
}

type ILiabilityRepository interface {
	IRecordRepository[entities.Liability]
}

type IPartnershipAccountRepository interface {
	IRecordRepository[entities.PartnershipAccount]
}

type IPropertyAccountRepository interface {
	IRecordRepository[entities.PropertyAccount]
}
