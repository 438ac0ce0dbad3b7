package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"logistics_backoffice/internal/domain/entities"
	"logistics_backoffice/internal/domain/finance"
	"logistics_backoffice/internal/domain/query"
	"logistics_backoffice/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrLogisticsExpenseNotFound    = errors.New("logistics expense not found")
	ErrInvalidLogisticsExpenseID   = errors.New("invalid logistics expense id")
	ErrMissingLogisticsExpenseData = errors.New("route, freightCost and exchangeRate are required")
	ErrNegativeExpenseAmount       = errors.New("cost components and exchange rate must be non-negative")
	ErrInvalidTransportStatus      = errors.New("invalid transport status")
	ErrInvalidRoute                = errors.New("invalid route")
)

const EventLogisticsExpenseStatusChanged = "logistics_expense.status_changed"

// ILogisticsExpenseUseCase exposes logistics expense operations.
//
// Every write recomputes totalCost and amountInPKR from the values on the
// record at that moment (after the patch is applied).

type ILogisticsExpenseUseCase interface {
	Create(ctx context.Context, e entities.LogisticsExpense) (entities.LogisticsExpense, error)
	GetByID(ctx context.Context, id string) (entities.LogisticsExpense, error)
	List(ctx context.Context, q query.ListQuery) (query.Page[entities.LogisticsExpense], error)
	ListByRoute(ctx context.Context, route string, q query.ListQuery) (query.Page[entities.LogisticsExpense], error)
	Update(ctx context.Context, id string, patch entities.LogisticsExpensePatch) (entities.LogisticsExpense, error)
	UpdateStatus(ctx context.Context, id string, status entities.TransportStatus) (entities.LogisticsExpense, error)
	Delete(ctx context.Context, id string) (entities.LogisticsExpense, error)
}

type LogisticsExpenseUseCase struct {
	repo            interfaces.ILogisticsExpenseRepository
	shipmentRepo    interfaces.IShipmentRepository
	transporterRepo interfaces.ITransporterRepository
	events          interfaces.IEventPublisher
	now             func() time.Time
}

var _ ILogisticsExpenseUseCase = (*LogisticsExpenseUseCase)(nil)

func NewLogisticsExpenseUseCase(
	repo interfaces.ILogisticsExpenseRepository,
	shipmentRepo interfaces.IShipmentRepository,
	transporterRepo interfaces.ITransporterRepository,
	events interfaces.IEventPublisher,
) *LogisticsExpenseUseCase {
	return &LogisticsExpenseUseCase{
		repo:            repo,
		shipmentRepo:    shipmentRepo,
		transporterRepo: transporterRepo,
		events:          events,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// ApplyExpenseTotals recomputes the derived fields of e in place.
func ApplyExpenseTotals(e *entities.LogisticsExpense) {
	totals := finance.DeriveExpenseTotals(e.Components(), &e.ExchangeRate)
	e.TotalCost = totals.TotalCost
	e.AmountInPKR = totals.AmountInPKR
}

func (u *LogisticsExpenseUseCase) Create(ctx context.Context, e entities.LogisticsExpense) (entities.LogisticsExpense, error) {
	e.Route = strings.TrimSpace(e.Route)
	if e.Route == "" {
		return entities.LogisticsExpense{}, ErrMissingLogisticsExpenseData
	}
	if err := validateExpense(&e); err != nil {
		return entities.LogisticsExpense{}, err
	}

	now := u.now()
	e.ID = uuid.NewString()
	e.IsActive = true
	e.CreatedAt = now
	e.UpdatedAt = now
	if e.ExpenseDate.IsZero() {
		e.ExpenseDate = now
	}
	ApplyExpenseTotals(&e)

	log.Printf("[expense][usecase] create start route=%q total_cost=%s", e.Route, e.TotalCost)
	created, err := u.repo.Create(ctx, e)
	if err != nil {
		log.Printf("[expense][usecase] repository create failed route=%q err=%v", e.Route, err)
		return entities.LogisticsExpense{}, err
	}
	log.Printf("[expense][usecase] create success id=%s total_cost=%s", created.ID, created.TotalCost)
	return created, nil
}

func (u *LogisticsExpenseUseCase) GetByID(ctx context.Context, id string) (entities.LogisticsExpense, error) {
	e, err := u.load(ctx, id)
	if err != nil {
		return entities.LogisticsExpense{}, err
	}
	if e.Shipment != "" && u.shipmentRepo != nil {
		s, err := u.shipmentRepo.GetByID(ctx, e.Shipment)
		if err != nil {
			return entities.LogisticsExpense{}, err
		}
		if s.ID != "" {
			e.ShipmentDetails = &s
		}
	}
	if e.Transporter != "" && u.transporterRepo != nil {
		t, err := u.transporterRepo.GetByID(ctx, e.Transporter)
		if err != nil {
			return entities.LogisticsExpense{}, err
		}
		if t.ID != "" {
			e.TransporterDetails = &t
		}
	}
	return e, nil
}

func (u *LogisticsExpenseUseCase) List(ctx context.Context, q query.ListQuery) (query.Page[entities.LogisticsExpense], error) {
	return u.repo.List(ctx, q)
}

func (u *LogisticsExpenseUseCase) ListByRoute(ctx context.Context, route string, q query.ListQuery) (query.Page[entities.LogisticsExpense], error) {
	route = strings.TrimSpace(route)
	if route == "" {
		return query.Page[entities.LogisticsExpense]{}, ErrInvalidRoute
	}
	return u.repo.List(ctx, q.WithFilter("route", route))
}

func (u *LogisticsExpenseUseCase) Update(ctx context.Context, id string, patch entities.LogisticsExpensePatch) (entities.LogisticsExpense, error) {
	if patch.TransportStatus != nil && !patch.TransportStatus.Valid() {
		return entities.LogisticsExpense{}, ErrInvalidTransportStatus
	}

	e, err := u.loadActive(ctx, id)
	if err != nil {
		return entities.LogisticsExpense{}, err
	}
	previous := e.TransportStatus

	patch.Apply(&e)
	e.Route = strings.TrimSpace(e.Route)
	if e.Route == "" {
		return entities.LogisticsExpense{}, ErrMissingLogisticsExpenseData
	}
	if err := validateExpense(&e); err != nil {
		return entities.LogisticsExpense{}, err
	}
	ApplyExpenseTotals(&e)
	e.UpdatedAt = u.now()

	saved, err := u.save(ctx, e)
	if err != nil {
		return entities.LogisticsExpense{}, err
	}
	if saved.TransportStatus != previous {
		u.publishStatus(ctx, saved, previous)
	}
	return saved, nil
}

// UpdateStatus only checks enum membership; any status may follow any other.
func (u *LogisticsExpenseUseCase) UpdateStatus(ctx context.Context, id string, status entities.TransportStatus) (entities.LogisticsExpense, error) {
	if !status.Valid() {
		return entities.LogisticsExpense{}, ErrInvalidTransportStatus
	}
	e, err := u.loadActive(ctx, id)
	if err != nil {
		return entities.LogisticsExpense{}, err
	}
	previous := e.TransportStatus

	e.TransportStatus = status
	ApplyExpenseTotals(&e)
	e.UpdatedAt = u.now()

	saved, err := u.save(ctx, e)
	if err != nil {
		return entities.LogisticsExpense{}, err
	}
	log.Printf("[expense][usecase] status updated id=%s from=%s to=%s", saved.ID, previous, saved.TransportStatus)
	u.publishStatus(ctx, saved, previous)
	return saved, nil
}

func (u *LogisticsExpenseUseCase) Delete(ctx context.Context, id string) (entities.LogisticsExpense, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.LogisticsExpense{}, ErrInvalidLogisticsExpenseID
	}
	e, err := u.repo.Deactivate(ctx, id)
	if err != nil {
		log.Printf("[expense][usecase] deactivate failed id=%s err=%v", id, err)
		return entities.LogisticsExpense{}, err
	}
	if e.ID == "" {
		return entities.LogisticsExpense{}, ErrLogisticsExpenseNotFound
	}
	return e, nil
}

func (u *LogisticsExpenseUseCase) load(ctx context.Context, id string) (entities.LogisticsExpense, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.LogisticsExpense{}, ErrInvalidLogisticsExpenseID
	}
	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.LogisticsExpense{}, err
	}
	if e.ID == "" {
		return entities.LogisticsExpense{}, ErrLogisticsExpenseNotFound
	}
	return e, nil
}

// loadActive is load for write paths: soft-deleted expenses are not found.
func (u *LogisticsExpenseUseCase) loadActive(ctx context.Context, id string) (entities.LogisticsExpense, error) {
	e, err := u.load(ctx, id)
	if err != nil {
		return entities.LogisticsExpense{}, err
	}
	if !e.IsActive {
		return entities.LogisticsExpense{}, ErrLogisticsExpenseNotFound
	}
	return e, nil
}

func (u *LogisticsExpenseUseCase) save(ctx context.Context, e entities.LogisticsExpense) (entities.LogisticsExpense, error) {
	saved, err := u.repo.Save(ctx, e)
	if err != nil {
		log.Printf("[expense][usecase] repository save failed id=%s err=%v", e.ID, err)
		return entities.LogisticsExpense{}, err
	}
	if saved.ID == "" {
		return entities.LogisticsExpense{}, ErrLogisticsExpenseNotFound
	}
	log.Printf("[expense][usecase] save success id=%s total_cost=%s", saved.ID, saved.TotalCost)
	return saved, nil
}

func (u *LogisticsExpenseUseCase) publishStatus(ctx context.Context, e entities.LogisticsExpense, previous entities.TransportStatus) {
	if u.events == nil {
		return
	}
	ev := map[string]any{
		"type":           EventLogisticsExpenseStatusChanged,
		"id":             e.ID,
		"route":          e.Route,
		"status":         e.TransportStatus,
		"previousStatus": previous,
		"occurredAt":     e.UpdatedAt,
	}
	if err := u.events.Publish(ctx, e.ID, ev); err != nil {
		log.Printf("[expense][usecase] publish failed id=%s err=%v", e.ID, err)
	}
}

func validateExpense(e *entities.LogisticsExpense) error {
	for _, v := range e.Amounts() {
		if v.IsNegative() {
			return ErrNegativeExpenseAmount
		}
	}
	e.Currency = strings.ToUpper(strings.TrimSpace(e.Currency))
	if e.Currency == "" {
		e.Currency = entities.DefaultExpenseCurrency
	}
	if e.TransportStatus == "" {
		e.TransportStatus = entities.TransportStatusPending
	}
	if !e.TransportStatus.Valid() {
		return ErrInvalidTransportStatus
	}
	return nil
}
