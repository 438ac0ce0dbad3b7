package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"logistics_backoffice/internal/domain/entities"
	"logistics_backoffice/internal/domain/query"
	"logistics_backoffice/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrPartnershipAccountNotFound     = errors.New("partnership account not found")
	ErrInvalidPartnershipAccountID    = errors.New("invalid partnership account id")
	ErrMissingPartnershipAccountField = errors.New("accountTitle and owner are required")
	ErrInvalidSharePercentage         = errors.New("sharePercentage must be between 0 and 100")
	ErrNegativeAccountAmount          = errors.New("amounts must be non-negative")

	ErrPropertyAccountNotFound     = errors.New("property account not found")
	ErrInvalidPropertyAccountID    = errors.New("invalid property account id")
	ErrMissingPropertyAccountField = errors.New("propertyName is required")
)

var hundred = decimal.NewFromInt(100)

type IPartnershipAccountUseCase interface {
	Create(ctx context.Context, a entities.PartnershipAccount) (entities.PartnershipAccount, error)
	GetByID(ctx context.Context, id string) (entities.PartnershipAccount, error)
	List(ctx context.Context, q query.ListQuery) (query.Page[entities.PartnershipAccount], error)
	Update(ctx context.Context, id string, patch entities.PartnershipAccountPatch) (entities.PartnershipAccount, error)
	Delete(ctx context.Context, id string) (entities.PartnershipAccount, error)
}

type PartnershipAccountUseCase struct {
	repo      interfaces.IPartnershipAccountRepository
	ownerRepo interfaces.IOwnerRepository
	ops       recordOps[entities.PartnershipAccount]
	now       func() time.Time
}

var _ IPartnershipAccountUseCase = (*PartnershipAccountUseCase)(nil)

func NewPartnershipAccountUseCase(repo interfaces.IPartnershipAccountRepository, ownerRepo interfaces.IOwnerRepository) *PartnershipAccountUseCase {
	return &PartnershipAccountUseCase{
		repo:      repo,
		ownerRepo: ownerRepo,
		ops: recordOps[entities.PartnershipAccount]{
			repo:     repo,
			idOf:     func(a entities.PartnershipAccount) string { return a.ID },
			activeOf: func(a entities.PartnershipAccount) bool { return a.IsActive },
			area:     "partnership",
			invalid:  ErrInvalidPartnershipAccountID,
			notFound: ErrPartnershipAccountNotFound,
		},
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (u *PartnershipAccountUseCase) Create(ctx context.Context, a entities.PartnershipAccount) (entities.PartnershipAccount, error) {
	if err := validatePartnershipAccount(&a); err != nil {
		return entities.PartnershipAccount{}, err
	}
	now := u.now()
	a.ID = uuid.NewString()
	a.IsActive = true
	a.CreatedAt = now
	a.UpdatedAt = now
	return u.ops.create(ctx, a)
}

func (u *PartnershipAccountUseCase) GetByID(ctx context.Context, id string) (entities.PartnershipAccount, error) {
	a, err := u.ops.load(ctx, id)
	if err != nil {
		return entities.PartnershipAccount{}, err
	}
	a.OwnerDetails, err = populateOwner(ctx, u.ownerRepo, a.Owner)
	if err != nil {
		return entities.PartnershipAccount{}, err
	}
	return a, nil
}

func (u *PartnershipAccountUseCase) List(ctx context.Context, q query.ListQuery) (query.Page[entities.PartnershipAccount], error) {
	return u.repo.List(ctx, q)
}

func (u *PartnershipAccountUseCase) Update(ctx context.Context, id string, patch entities.PartnershipAccountPatch) (entities.PartnershipAccount, error) {
	a, err := u.ops.loadActive(ctx, id)
	if err != nil {
		return entities.PartnershipAccount{}, err
	}
	patch.Apply(&a)
	if err := validatePartnershipAccount(&a); err != nil {
		return entities.PartnershipAccount{}, err
	}
	a.UpdatedAt = u.now()
	return u.ops.save(ctx, a)
}

func (u *PartnershipAccountUseCase) Delete(ctx context.Context, id string) (entities.PartnershipAccount, error) {
	return u.ops.deactivate(ctx, id)
}

func validatePartnershipAccount(a *entities.PartnershipAccount) error {
	a.AccountTitle = strings.TrimSpace(a.AccountTitle)
	a.Owner = strings.TrimSpace(a.Owner)
	if a.AccountTitle == "" || a.Owner == "" {
		return ErrMissingPartnershipAccountField
	}
	if a.SharePercentage.IsNegative() || a.SharePercentage.GreaterThan(hundred) {
		return ErrInvalidSharePercentage
	}
	if anyNegative(a.CapitalContribution) {
		return ErrNegativeAccountAmount
	}
	return nil
}

type IPropertyAccountUseCase interface {
	Create(ctx context.Context, a entities.PropertyAccount) (entities.PropertyAccount, error)
	GetByID(ctx context.Context, id string) (entities.PropertyAccount, error)
	List(ctx context.Context, q query.ListQuery) (query.Page[entities.PropertyAccount], error)
	Update(ctx context.Context, id string, patch entities.PropertyAccountPatch) (entities.PropertyAccount, error)
	Delete(ctx context.Context, id string) (entities.PropertyAccount, error)
}

type PropertyAccountUseCase struct {
	repo      interfaces.IPropertyAccountRepository
	ownerRepo interfaces.IOwnerRepository
	ops       recordOps[entities.PropertyAccount]
	now       func() time.Time
}

var _ IPropertyAccountUseCase = (*PropertyAccountUseCase)(nil)

func NewPropertyAccountUseCase(repo interfaces.IPropertyAccountRepository, ownerRepo interfaces.IOwnerRepository) *PropertyAccountUseCase {
	return &PropertyAccountUseCase{
		repo:      repo,
		ownerRepo: ownerRepo,
		ops: recordOps[entities.PropertyAccount]{
			repo:     repo,
			idOf:     func(a entities.PropertyAccount) string { return a.ID },
			activeOf: func(a entities.PropertyAccount) bool { return a.IsActive },
			area:     "property",
			invalid:  ErrInvalidPropertyAccountID,
			notFound: ErrPropertyAccountNotFound,
		},
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (u *PropertyAccountUseCase) Create(ctx context.Context, a entities.PropertyAccount) (entities.PropertyAccount, error) {
	if err := validatePropertyAccount(&a); err != nil {
		return entities.PropertyAccount{}, err
	}
	now := u.now()
	a.ID = uuid.NewString()
	a.IsActive = true
	a.CreatedAt = now
	a.UpdatedAt = now
	return u.ops.create(ctx, a)
}

func (u *PropertyAccountUseCase) GetByID(ctx context.Context, id string) (entities.PropertyAccount, error) {
	a, err := u.ops.load(ctx, id)
	if err != nil {
		return entities.PropertyAccount{}, err
	}
	a.OwnerDetails, err = populateOwner(ctx, u.ownerRepo, a.Owner)
	if err != nil {
		return entities.PropertyAccount{}, err
	}
	return a, nil
}

func (u *PropertyAccountUseCase) List(ctx context.Context, q query.ListQuery) (query.Page[entities.PropertyAccount], error) {
	return u.repo.List(ctx, q)
}

func (u *PropertyAccountUseCase) Update(ctx context.Context, id string, patch entities.PropertyAccountPatch) (entities.PropertyAccount, error) {
	a, err := u.ops.loadActive(ctx, id)
	if err != nil {
		return entities.PropertyAccount{}, err
	}
	patch.Apply(&a)
	if err := validatePropertyAccount(&a); err != nil {
		return entities.PropertyAccount{}, err
	}
	a.UpdatedAt = u.now()
	return u.ops.save(ctx, a)
}

func (u *PropertyAccountUseCase) Delete(ctx context.Context, id string) (entities.PropertyAccount, error) {
	return u.ops.deactivate(ctx, id)
}

func validatePropertyAccount(a *entities.PropertyAccount) error {
	a.PropertyName = strings.TrimSpace(a.PropertyName)
	if a.PropertyName == "" {
		return ErrMissingPropertyAccountField
	}
	if anyNegative(a.PurchaseValue, a.CurrentValue, a.MonthlyRent) {
		return ErrNegativeAccountAmount
	}
	return nil
}
