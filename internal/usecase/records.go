package usecase

import (
	"context"
	"log"
	"strings"

	"logistics_backoffice/internal/domain/entities"
	"logistics_backoffice/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// recordOps are the lookups shared by the plain CRUD usecases.
type recordOps[T any] struct {
	repo     interfaces.IRecordRepository[T]
	idOf     func(T) string
	activeOf func(T) bool
	area     string
	invalid  error
	notFound error
}

func (o recordOps[T]) load(ctx context.Context, id string) (T, error) {
	var zero T
	id = strings.TrimSpace(id)
	if id == "" {
		return zero, o.invalid
	}
	rec, err := o.repo.GetByID(ctx, id)
	if err != nil {
		return zero, err
	}
	if o.idOf(rec) == "" {
		return zero, o.notFound
	}
	return rec, nil
}

// loadActive is load for write paths: soft-deleted records are not found.
func (o recordOps[T]) loadActive(ctx context.Context, id string) (T, error) {
	rec, err := o.load(ctx, id)
	if err != nil {
		return rec, err
	}
	if !o.activeOf(rec) {
		var zero T
		return zero, o.notFound
	}
	return rec, nil
}

func (o recordOps[T]) create(ctx context.Context, rec T) (T, error) {
	var zero T
	created, err := o.repo.Create(ctx, rec)
	if err != nil {
		log.Printf("[%s][usecase] repository create failed err=%v", o.area, err)
		return zero, err
	}
	log.Printf("[%s][usecase] create success id=%s", o.area, o.idOf(created))
	return created, nil
}

func (o recordOps[T]) save(ctx context.Context, rec T) (T, error) {
	var zero T
	saved, err := o.repo.Save(ctx, rec)
	if err != nil {
		log.Printf("[%s][usecase] repository save failed id=%s err=%v", o.area, o.idOf(rec), err)
		return zero, err
	}
	if o.idOf(saved) == "" {
		return zero, o.notFound
	}
	return saved, nil
}

func (o recordOps[T]) deactivate(ctx context.Context, id string) (T, error) {
	var zero T
	id = strings.TrimSpace(id)
	if id == "" {
		return zero, o.invalid
	}
	rec, err := o.repo.Deactivate(ctx, id)
	if err != nil {
		log.Printf("[%s][usecase] deactivate failed id=%s err=%v", o.area, id, err)
		return zero, err
	}
	if o.idOf(rec) == "" {
		return zero, o.notFound
	}
	log.Printf("[%s][usecase] soft deleted id=%s", o.area, id)
	return rec, nil
}

// populateOwner resolves an owner reference; a dangling reference is left unpopulated.
func populateOwner(ctx context.Context, repo interfaces.IOwnerRepository, ownerID string) (*entities.Owner, error) {
	if ownerID == "" || repo == nil {
		return nil, nil
	}
	o, err := repo.GetByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if o.ID == "" {
		return nil, nil
	}
	return &o, nil
}

func anyNegative(values ...decimal.Decimal) bool {
	for _, v := range values {
		if v.IsNegative() {
			return true
		}
	}
	return false
}
