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
	ErrTransporterNotFound      = errors.New("transporter not found")
	ErrInvalidTransporterID     = errors.New("invalid transporter id")
	ErrMissingTransporterFields = errors.New("name and phone are required")
)

type ITransporterUseCase interface {
	Create(ctx context.Context, t entities.Transporter) (entities.Transporter, error)
	GetByID(ctx context.Context, id string) (entities.Transporter, error)
	List(ctx context.Context, q query.ListQuery) (query.Page[entities.Transporter], error)
	Update(ctx context.Context, id string, patch entities.TransporterPatch) (entities.Transporter, error)
	Delete(ctx context.Context, id string) (entities.Transporter, error)
}

type TransporterUseCase struct {
	repo interfaces.ITransporterRepository
	ops  recordOps[entities.Transporter]
	now  func() time.Time
}

var _ ITransporterUseCase = (*TransporterUseCase)(nil)

func NewTransporterUseCase(repo interfaces.ITransporterRepository) *TransporterUseCase {
	return &TransporterUseCase{
		repo: repo,
		ops: recordOps[entities.Transporter]{
			repo:     repo,
			idOf:     func(t entities.Transporter) string { return t.ID },
			activeOf: func(t entities.Transporter) bool { return t.IsActive },
			area:     "transporter",
			invalid:  ErrInvalidTransporterID,
			notFound: ErrTransporterNotFound,
		},
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (u *TransporterUseCase) Create(ctx context.Context, t entities.Transporter) (entities.Transporter, error) {
	if err := validateTransporter(&t); err != nil {
		return entities.Transporter{}, err
	}
	now := u.now()
	t.ID = uuid.NewString()
	t.IsActive = true
	t.CreatedAt = now
	t.UpdatedAt = now
	return u.ops.create(ctx, t)
}

func (u *TransporterUseCase) GetByID(ctx context.Context, id string) (entities.Transporter, error) {
	return u.ops.load(ctx, id)
}

func (u *TransporterUseCase) List(ctx context.Context, q query.ListQuery) (query.Page[entities.Transporter], error) {
	return u.repo.List(ctx, q)
}

func (u *TransporterUseCase) Update(ctx context.Context, id string, patch entities.TransporterPatch) (entities.Transporter, error) {
	t, err := u.ops.loadActive(ctx, id)
	if err != nil {
		return entities.Transporter{}, err
	}
	patch.Apply(&t)
	if err := validateTransporter(&t); err != nil {
		return entities.Transporter{}, err
	}
	t.UpdatedAt = u.now()
	return u.ops.save(ctx, t)
}

func (u *TransporterUseCase) Delete(ctx context.Context, id string) (entities.Transporter, error) {
	return u.ops.deactivate(ctx, id)
}

func validateTransporter(t *entities.Transporter) error {
	t.Name = strings.TrimSpace(t.Name)
	t.Phone = strings.TrimSpace(t.Phone)
	if t.Name == "" || t.Phone == "" {
		return ErrMissingTransporterFields
	}
	if t.VehicleNumbers == nil {
		t.VehicleNumbers = []string{}
	}
	if t.Routes == nil {
		t.Routes = []string{}
	}
	return nil
}
