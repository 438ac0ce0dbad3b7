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
	ErrOwnerNotFound     = errors.New("owner not found")
	ErrInvalidOwnerID    = errors.New("invalid owner id")
	ErrMissingOwnerField = errors.New("name is required")
)

type IOwnerUseCase interface {
	Create(ctx context.Context, o entities.Owner) (entities.Owner, error)
	GetByID(ctx context.Context, id string) (entities.Owner, error)
	List(ctx context.Context, q query.ListQuery) (query.Page[entities.Owner], error)
	Update(ctx context.Context, id string, patch entities.OwnerPatch) (entities.Owner, error)
	Delete(ctx context.Context, id string) (entities.Owner, error)
}

type OwnerUseCase struct {
	repo interfaces.IOwnerRepository
	ops  recordOps[entities.Owner]
	now  func() time.Time
}

var _ IOwnerUseCase = (*OwnerUseCase)(nil)

func NewOwnerUseCase(repo interfaces.IOwnerRepository) *OwnerUseCase {
	return &OwnerUseCase{
		repo: repo,
		ops: recordOps[entities.Owner]{
			repo:     repo,
			idOf:     func(o entities.Owner) string { return o.ID },
			activeOf: func(o entities.Owner) bool { return o.IsActive },
			area:     "owner",
			invalid:  ErrInvalidOwnerID,
			notFound: ErrOwnerNotFound,
		},
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (u *OwnerUseCase) Create(ctx context.Context, o entities.Owner) (entities.Owner, error) {
	o.Name = strings.TrimSpace(o.Name)
	if o.Name == "" {
		return entities.Owner{}, ErrMissingOwnerField
	}
	now := u.now()
	o.ID = uuid.NewString()
	o.IsActive = true
	o.CreatedAt = now
	o.UpdatedAt = now
	return u.ops.create(ctx, o)
}

func (u *OwnerUseCase) GetByID(ctx context.Context, id string) (entities.Owner, error) {
	return u.ops.load(ctx, id)
}

func (u *OwnerUseCase) List(ctx context.Context, q query.ListQuery) (query.Page[entities.Owner], error) {
	return u.repo.List(ctx, q)
}

func (u *OwnerUseCase) Update(ctx context.Context, id string, patch entities.OwnerPatch) (entities.Owner, error) {
	o, err := u.ops.loadActive(ctx, id)
	if err != nil {
		return entities.Owner{}, err
	}
	patch.Apply(&o)
	o.Name = strings.TrimSpace(o.Name)
	if o.Name == "" {
		return entities.Owner{}, ErrMissingOwnerField
	}
	o.UpdatedAt = u.now()
	return u.ops.save(ctx, o)
}

func (u *OwnerUseCase) Delete(ctx context.Context, id string) (entities.Owner, error) {
	return u.ops.deactivate(ctx, id)
}
