package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"logistics_backoffice/internal/domain/entities"
	"logistics_backoffice/internal/domain/finance"
	"logistics_backoffice/internal/domain/identifier"
	"logistics_backoffice/internal/domain/query"
	"logistics_backoffice/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrShipmentNotFound      = errors.New("shipment not found")
	ErrInvalidShipmentID     = errors.New("invalid shipment id")
	ErrMissingShipmentFields = errors.New("origin, destination and currency are required")
	ErrInvalidShipmentStatus = errors.New("invalid shipment status")
	ErrInvalidShipmentItems  = errors.New("product quantity and unit price must be non-negative")
)

const (
	EventShipmentCreated       = "shipment.created"
	EventShipmentStatusChanged = "shipment.status_changed"

	analyticsCacheKey = "shipments:analytics"
)

// IShipmentUseCase exposes shipment operations.
//
//   - Create assigns shipmentId/batchNo/trackingNumber once and derives totalValue.
//   - Update applies an allow-listed patch and derives totalValue again.
//   - UpdateStatus accepts any member of the status enum, from any status.

type IShipmentUseCase interface {
	Create(ctx context.Context, s entities.Shipment) (entities.Shipment, error)
	GetByID(ctx context.Context, id string) (entities.Shipment, error)
	List(ctx context.Context, q query.ListQuery) (query.Page[entities.Shipment], error)
	Update(ctx context.Context, id string, patch entities.ShipmentPatch) (entities.Shipment, error)
	UpdateStatus(ctx context.Context, id string, status entities.ShipmentStatus) (entities.Shipment, error)
	Delete(ctx context.Context, id string) (entities.Shipment, error)
	Analytics(ctx context.Context) (entities.ShipmentAnalytics, error)
}

type ShipmentUseCase struct {
	repo            interfaces.IShipmentRepository
	transporterRepo interfaces.ITransporterRepository
	ids             *identifier.Generator
	events          interfaces.IEventPublisher
	cache           interfaces.ICache
	cacheTTL        time.Duration
	now             func() time.Time
}

var _ IShipmentUseCase = (*ShipmentUseCase)(nil)

func NewShipmentUseCase(
	repo interfaces.IShipmentRepository,
	transporterRepo interfaces.ITransporterRepository,
	ids *identifier.Generator,
	events interfaces.IEventPublisher,
	cache interfaces.ICache,
	cacheTTL time.Duration,
) *ShipmentUseCase {
	return &ShipmentUseCase{
		repo:            repo,
		transporterRepo: transporterRepo,
		ids:             ids,
		events:          events,
		cache:           cache,
		cacheTTL:        cacheTTL,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

func (u *ShipmentUseCase) Create(ctx context.Context, s entities.Shipment) (entities.Shipment, error) {
	s.Origin = strings.TrimSpace(s.Origin)
	s.Destination = strings.TrimSpace(s.Destination)
	s.Currency = strings.ToUpper(strings.TrimSpace(s.Currency))
	if s.Origin == "" || s.Destination == "" || s.Currency == "" {
		return entities.Shipment{}, ErrMissingShipmentFields
	}
	if err := validateProducts(s.Products); err != nil {
		return entities.Shipment{}, err
	}
	if s.Status == "" {
		s.Status = entities.ShipmentStatusPending
	}
	if !s.Status.Valid() {
		return entities.Shipment{}, ErrInvalidShipmentStatus
	}

	log.Printf("[shipment][usecase] create start origin=%q destination=%q products=%d", s.Origin, s.Destination, len(s.Products))
	ids, err := u.ids.ShipmentIdentifiers(ctx)
	if err != nil {
		log.Printf("[shipment][usecase] identifier generation failed err=%v", err)
		return entities.Shipment{}, err
	}

	now := u.now()
	s.ID = uuid.NewString()
	s.ShipmentID = ids.ShipmentID
	s.BatchNo = ids.BatchNo
	s.TrackingNumber = ids.TrackingNumber
	s.IsActive = true
	s.CreatedAt = now
	s.UpdatedAt = now
	s.TotalValue = finance.DeriveShipmentValue(s.LineItems())

	created, err := u.repo.Create(ctx, s)
	if err != nil {
		log.Printf("[shipment][usecase] repository create failed shipment_id=%s err=%v", s.ShipmentID, err)
		return entities.Shipment{}, err
	}
	log.Printf("[shipment][usecase] create success id=%s shipment_id=%s batch_no=%s", created.ID, created.ShipmentID, created.BatchNo)

	u.publish(ctx, created.ID, shipmentEvent(EventShipmentCreated, created, ""))
	return created, nil
}

func (u *ShipmentUseCase) GetByID(ctx context.Context, id string) (entities.Shipment, error) {
	s, err := u.load(ctx, id)
	if err != nil {
		return entities.Shipment{}, err
	}
	if s.Transporter != "" && u.transporterRepo != nil {
		t, err := u.transporterRepo.GetByID(ctx, s.Transporter)
		if err != nil {
			return entities.Shipment{}, err
		}
		if t.ID != "" {
			s.TransporterDetails = &t
		}
	}
	return s, nil
}

func (u *ShipmentUseCase) List(ctx context.Context, q query.ListQuery) (query.Page[entities.Shipment], error) {
	return u.repo.List(ctx, q)
}

func (u *ShipmentUseCase) Update(ctx context.Context, id string, patch entities.ShipmentPatch) (entities.Shipment, error) {
	if patch.Status != nil && !patch.Status.Valid() {
		return entities.Shipment{}, ErrInvalidShipmentStatus
	}
	if patch.Products != nil {
		if err := validateProducts(*patch.Products); err != nil {
			return entities.Shipment{}, err
		}
	}

	s, err := u.loadActive(ctx, id)
	if err != nil {
		return entities.Shipment{}, err
	}
	previous := s.Status

	patch.Apply(&s)
	s.Origin = strings.TrimSpace(s.Origin)
	s.Destination = strings.TrimSpace(s.Destination)
	s.Currency = strings.ToUpper(strings.TrimSpace(s.Currency))
	if s.Origin == "" || s.Destination == "" || s.Currency == "" {
		return entities.Shipment{}, ErrMissingShipmentFields
	}
	s.TotalValue = finance.DeriveShipmentValue(s.LineItems())
	s.UpdatedAt = u.now()

	saved, err := u.save(ctx, s)
	if err != nil {
		return entities.Shipment{}, err
	}
	if saved.Status != previous {
		u.publish(ctx, saved.ID, shipmentEvent(EventShipmentStatusChanged, saved, previous))
	}
	return saved, nil
}

// UpdateStatus only checks enum membership; backward moves and skipped steps are accepted.
func (u *ShipmentUseCase) UpdateStatus(ctx context.Context, id string, status entities.ShipmentStatus) (entities.Shipment, error) {
	if !status.Valid() {
		return entities.Shipment{}, ErrInvalidShipmentStatus
	}
	s, err := u.loadActive(ctx, id)
	if err != nil {
		return entities.Shipment{}, err
	}
	previous := s.Status

	s.Status = status
	s.TotalValue = finance.DeriveShipmentValue(s.LineItems())
	s.UpdatedAt = u.now()

	saved, err := u.save(ctx, s)
	if err != nil {
		return entities.Shipment{}, err
	}
	log.Printf("[shipment][usecase] status updated id=%s from=%s to=%s", saved.ID, previous, saved.Status)
	u.publish(ctx, saved.ID, shipmentEvent(EventShipmentStatusChanged, saved, previous))
	return saved, nil
}

func (u *ShipmentUseCase) Delete(ctx context.Context, id string) (entities.Shipment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Shipment{}, ErrInvalidShipmentID
	}
	s, err := u.repo.Deactivate(ctx, id)
	if err != nil {
		log.Printf("[shipment][usecase] deactivate failed id=%s err=%v", id, err)
		return entities.Shipment{}, err
	}
	if s.ID == "" {
		return entities.Shipment{}, ErrShipmentNotFound
	}
	log.Printf("[shipment][usecase] soft deleted id=%s shipment_id=%s", s.ID, s.ShipmentID)
	return s, nil
}

func (u *ShipmentUseCase) Analytics(ctx context.Context) (entities.ShipmentAnalytics, error) {
	if u.cache != nil {
		if raw, err := u.cache.Get(ctx, analyticsCacheKey); err != nil {
			log.Printf("[shipment][usecase] analytics cache get failed err=%v", err)
		} else if raw != "" {
			var cached entities.ShipmentAnalytics
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return cached, nil
			}
		}
	}

	page, err := u.repo.List(ctx, query.All())
	if err != nil {
		return entities.ShipmentAnalytics{}, err
	}

	out := entities.ShipmentAnalytics{
		TotalShipments:       page.Total,
		ByStatus:             map[entities.ShipmentStatus]int{},
		TotalValueByCurrency: map[string]decimal.Decimal{},
	}
	for _, s := range page.Items {
		out.ByStatus[s.Status]++
		switch s.Status {
		case entities.ShipmentStatusInTransit:
			out.InTransitShipments++
		case entities.ShipmentStatusDelivered:
			out.DeliveredShipments++
		}
		if s.TotalValue != nil {
			out.TotalValueByCurrency[s.Currency] = out.TotalValueByCurrency[s.Currency].Add(*s.TotalValue)
		}
	}

	if u.cache != nil {
		if b, err := json.Marshal(out); err == nil {
			if err := u.cache.Set(ctx, analyticsCacheKey, string(b), u.cacheTTL); err != nil {
				log.Printf("[shipment][usecase] analytics cache set failed err=%v", err)
			}
		}
	}
	return out, nil
}

func (u *ShipmentUseCase) load(ctx context.Context, id string) (entities.Shipment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Shipment{}, ErrInvalidShipmentID
	}
	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Shipment{}, err
	}
	if s.ID == "" {
		return entities.Shipment{}, ErrShipmentNotFound
	}
	return s, nil
}

// loadActive is load for write paths: soft-deleted shipments are not found.
func (u *ShipmentUseCase) loadActive(ctx context.Context, id string) (entities.Shipment, error) {
	s, err := u.load(ctx, id)
	if err != nil {
		return entities.Shipment{}, err
	}
	if !s.IsActive {
		return entities.Shipment{}, ErrShipmentNotFound
	}
	return s, nil
}

func (u *ShipmentUseCase) save(ctx context.Context, s entities.Shipment) (entities.Shipment, error) {
	saved, err := u.repo.Save(ctx, s)
	if err != nil {
		log.Printf("[shipment][usecase] repository save failed id=%s err=%v", s.ID, err)
		return entities.Shipment{}, err
	}
	if saved.ID == "" {
		return entities.Shipment{}, ErrShipmentNotFound
	}
	return saved, nil
}

func (u *ShipmentUseCase) publish(ctx context.Context, key string, event map[string]any) {
	if u.events == nil {
		return
	}
	if err := u.events.Publish(ctx, key, event); err != nil {
		log.Printf("[shipment][usecase] publish failed key=%s event=%v err=%v", key, event["type"], err)
	}
}

func shipmentEvent(eventType string, s entities.Shipment, previous entities.ShipmentStatus) map[string]any {
	ev := map[string]any{
		"type":           eventType,
		"id":             s.ID,
		"shipmentId":     s.ShipmentID,
		"trackingNumber": s.TrackingNumber,
		"status":         s.Status,
		"occurredAt":     s.UpdatedAt,
	}
	if previous != "" {
		ev["previousStatus"] = previous
	}
	return ev
}

func validateProducts(products []entities.ShipmentProduct) error {
	for _, p := range products {
		if p.Quantity.IsNegative() || p.UnitPrice.IsNegative() {
			return ErrInvalidShipmentItems
		}
	}
	return nil
}
