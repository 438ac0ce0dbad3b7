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
)

var (
	ErrLiabilityNotFound       = errors.New("liability not found")
	ErrInvalidLiabilityID      = errors.New("invalid liability id")
	ErrMissingLiabilityFields  = errors.New("title and amount are required")
	ErrNegativeLiabilityAmount = errors.New("amount must be non-negative")
	ErrInvalidLiabilityStatus  = errors.New("invalid liability status")
)

type ILiabilityUseCase interface {
	Create(ctx context.Context, l entities.Liability) (entities.Liability, error)
	GetByID(ctx context.Context, id string) (entities.Liability, error)
	List(ctx context.Context, q query.ListQuery) (query.Page[entities.Liability], error)
	Update(ctx context.Context, id string, patch entities.LiabilityPatch) (entities.Liability, error)
	Delete(ctx context.Context, id string) (entities.Liability, error)
}

type LiabilityUseCase struct {
	repo      interfaces.ILiabilityRepository
	ownerRepo interfaces.IOwnerRepository
	ops       recordOps[entities.Liability]
	now       func() time.Time
}

var _ ILiabilityUseCase = (*LiabilityUseCase)(nil)

func NewLiabilityUseCase(repo interfaces.ILiabilityRepository, ownerRepo interfaces.IOwnerRepository) *LiabilityUseCase {
	return &LiabilityUseCase{
		repo:      repo,
		ownerRepo: ownerRepo,
		ops: recordOps[entities.Liability]{
			repo:     repo,
			idOf:     func(l entities.Liability) string { return l.ID },
			activeOf: func(l entities.Liability) bool { return l.IsActive },
			area:     "liability",
			invalid:  ErrInvalidLiabilityID,
			notFound: ErrLiabilityNotFound,
		},
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (u *LiabilityUseCase) Create(ctx context.Context, l entities.Liability) (entities.Liability, error) {
	if err := validateLiability(&l); err != nil {
		return entities.Liability{}, err
	}
	now := u.now()
	l.ID = uuid.NewString()
	l.IsActive = true
	l.CreatedAt = now
	l.UpdatedAt = now
	return u.ops.create(ctx, l)
}

func (u *LiabilityUseCase) GetByID(ctx context.Context, id string) (entities.Liability, error) {
	l, err := u.ops.load(ctx, id)
	if err != nil {
		return entities.Liability{}, err
	}
	l.OwnerDetails, err = populateOwner(ctx, u.ownerRepo, l.Owner)
	if err != nil {
		return entities.Liability{}, err
	}
	return l, nil
}

func (u *LiabilityUseCase) List(ctx context.Context, q query.ListQuery) (query.Page[entities.Liability], error) {
	return u.repo.List(ctx, q)
}

func (u *LiabilityUseCase) Update(ctx context.Context, id string, patch entities.LiabilityPatch) (entities.Liability, error) {
	l, err := u.ops.loadActive(ctx, id)
	if err != nil {
		return entities.Liability{}, err
	}
	patch.Apply(&l)
	if err := validateLiability(&l); err != nil {
		return entities.Liability{}, err
	}
	l.UpdatedAt = u.now()
	return u.ops.save(ctx, l)
}

func (u *LiabilityUseCase) Delete(ctx context.Context, id string) (entities.Liability, error) {
	return u.ops.deactivate(ctx, id)
}

func validateLiability(l *entities.Liability) error {
	l.Title = strings.TrimSpace(l.Title)
	if l.Title == "" {
		return ErrMissingLiabilityFields
	}
	if l.Amount.IsNegative() {
		return ErrNegativeLiabilityAmount
	}
	if l.Status == "" {
		l.Status = entities.LiabilityStatusOutstanding
	}
	if !l.Status.Valid() {
		return ErrInvalidLiabilityStatus
	}
	return nil
}
