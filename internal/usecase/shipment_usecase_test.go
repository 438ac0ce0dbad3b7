package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"logistics_backoffice/internal/domain/entities"
	"logistics_backoffice/internal/domain/identifier"
	"logistics_backoffice/internal/domain/query"
	mock_interfaces "logistics_backoffice/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

var shipmentClock = time.Date(2025, time.March, 10, 9, 30, 0, 0, time.UTC)

type shipmentDeps struct {
	repo        *mock_interfaces.MockIShipmentRepository
	transporter *mock_interfaces.MockITransporterRepository
	events      *mock_interfaces.MockIEventPublisher
	cache       *mock_interfaces.MockICache
}

func newShipmentUseCase(t *testing.T) (*ShipmentUseCase, shipmentDeps) {
	ctrl := gomock.NewController(t)
	deps := shipmentDeps{
		repo:        mock_interfaces.NewMockIShipmentRepository(ctrl),
		transporter: mock_interfaces.NewMockITransporterRepository(ctrl),
		events:      mock_interfaces.NewMockIEventPublisher(ctrl),
		cache:       mock_interfaces.NewMockICache(ctrl),
	}
	gen := identifier.NewGeneratorWith(
		identifier.NewCountSequence(deps.repo),
		func() time.Time { return shipmentClock },
		func(int) int { return 1 },
	)
	uc := NewShipmentUseCase(deps.repo, deps.transporter, gen, deps.events, deps.cache, time.Minute)
	uc.now = func() time.Time { return shipmentClock }
	return uc, deps
}

func product(q, p string) entities.ShipmentProduct {
	return entities.ShipmentProduct{
		Product:   "prod-1",
		Quantity:  decimal.RequireFromString(q),
		UnitPrice: decimal.RequireFromString(p),
	}
}

func TestShipmentUseCase_Create(t *testing.T) {
	t.Run("missing currency", func(t *testing.T) {
		uc := NewShipmentUseCase(nil, nil, nil, nil, nil, 0)
		_, err := uc.Create(context.Background(), entities.Shipment{Origin: "Karachi", Destination: "Kabul"})
		if !errors.Is(err, ErrMissingShipmentFields) {
			t.Fatalf("expected ErrMissingShipmentFields, got %v", err)
		}
	})

	t.Run("negative quantity", func(t *testing.T) {
		uc := NewShipmentUseCase(nil, nil, nil, nil, nil, 0)
		_, err := uc.Create(context.Background(), entities.Shipment{
			Origin: "Karachi", Destination: "Kabul", Currency: "USD",
			Products: []entities.ShipmentProduct{product("-1", "10")},
		})
		if !errors.Is(err, ErrInvalidShipmentItems) {
			t.Fatalf("expected ErrInvalidShipmentItems, got %v", err)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		uc := NewShipmentUseCase(nil, nil, nil, nil, nil, 0)
		_, err := uc.Create(context.Background(), entities.Shipment{
			Origin: "Karachi", Destination: "Kabul", Currency: "USD", Status: "lost",
		})
		if !errors.Is(err, ErrInvalidShipmentStatus) {
			t.Fatalf("expected ErrInvalidShipmentStatus, got %v", err)
		}
	})

	t.Run("count error", func(t *testing.T) {
		uc, deps := newShipmentUseCase(t)
		deps.repo.EXPECT().CountAll(gomock.Any()).Return(int64(0), errors.New("db"))

		_, err := uc.Create(context.Background(), entities.Shipment{Origin: "Karachi", Destination: "Kabul", Currency: "usd"})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("create success assigns identifiers and value", func(t *testing.T) {
		uc, deps := newShipmentUseCase(t)
		deps.repo.EXPECT().CountAll(gomock.Any()).Return(int64(2), nil)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Shipment{})).DoAndReturn(
			func(_ context.Context, s entities.Shipment) (entities.Shipment, error) {
				if s.ID == "" || !s.IsActive || s.Status != entities.ShipmentStatusPending {
					t.Fatalf("unexpected shipment: %+v", s)
				}
				if s.ShipmentID != "SHP-2025-003" || s.BatchNo != "BATCH-032025-003" {
					t.Fatalf("unexpected identifiers: %s %s", s.ShipmentID, s.BatchNo)
				}
				if len(s.TrackingNumber) != 15 || s.TrackingNumber[:3] != "TRK" {
					t.Fatalf("unexpected tracking number: %s", s.TrackingNumber)
				}
				if s.Currency != "USD" {
					t.Fatalf("expected normalized currency, got %s", s.Currency)
				}
				if s.TotalValue == nil || !s.TotalValue.Equal(decimal.RequireFromString("250.5")) {
					t.Fatalf("unexpected total value: %v", s.TotalValue)
				}
				return s, nil
			},
		)
		deps.events.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, v any) error {
				ev := v.(map[string]any)
				if ev["type"] != EventShipmentCreated || ev["shipmentId"] != "SHP-2025-003" {
					t.Fatalf("unexpected event: %+v", ev)
				}
				return nil
			},
		)

		res, err := uc.Create(context.Background(), entities.Shipment{
			Origin: " Karachi ", Destination: "Kabul", Currency: "usd",
			Products: []entities.ShipmentProduct{product("10", "20"), product("1", "50.5")},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Origin != "Karachi" {
			t.Fatalf("expected trimmed origin, got %q", res.Origin)
		}
	})

	t.Run("no products leaves value unset", func(t *testing.T) {
		uc, deps := newShipmentUseCase(t)
		deps.repo.EXPECT().CountAll(gomock.Any()).Return(int64(0), nil)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Shipment) (entities.Shipment, error) {
				if s.TotalValue != nil {
					t.Fatalf("expected unset total value, got %s", s.TotalValue)
				}
				if s.ShipmentID != "SHP-2025-001" {
					t.Fatalf("unexpected shipment id %s", s.ShipmentID)
				}
				return s, nil
			},
		)
		deps.events.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		if _, err := uc.Create(context.Background(), entities.Shipment{Origin: "A", Destination: "B", Currency: "PKR"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("publish failure does not fail the request", func(t *testing.T) {
		uc, deps := newShipmentUseCase(t)
		deps.repo.EXPECT().CountAll(gomock.Any()).Return(int64(0), nil)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Shipment) (entities.Shipment, error) { return s, nil },
		)
		deps.events.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		if _, err := uc.Create(context.Background(), entities.Shipment{Origin: "A", Destination: "B", Currency: "PKR"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("repo create error", func(t *testing.T) {
		uc, deps := newShipmentUseCase(t)
		deps.repo.EXPECT().CountAll(gomock.Any()).Return(int64(0), nil)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Shipment{}, errors.New("ConditionalCheckFailed"))

		_, err := uc.Create(context.Background(), entities.Shipment{Origin: "A", Destination: "B", Currency: "PKR"})
		if err == nil || err.Error() != "ConditionalCheckFailed" {
			t.Fatalf("expected store error, got %v", err)
		}
	})
}

func TestShipmentUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewShipmentUseCase(nil, nil, nil, nil, nil, 0)
		_, err := uc.GetByID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidShipmentID) {
			t.Fatalf("expected ErrInvalidShipmentID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, deps := newShipmentUseCase(t)
		deps.repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Shipment{}, nil)

		_, err := uc.GetByID(context.Background(), "s-1")
		if !errors.Is(err, ErrShipmentNotFound) {
			t.Fatalf("expected ErrShipmentNotFound, got %v", err)
		}
	})

	t.Run("soft deleted shipment is still addressable", func(t *testing.T) {
		uc, deps := newShipmentUseCase(t)
		deps.repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Shipment{ID: "s-1", IsActive: false}, nil)

		res, err := uc.GetByID(context.Background(), "s-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.IsActive {
			t.Fatalf("expected inactive shipment")
		}
	})

	t.Run("populates transporter", func(t *testing.T) {
		uc, deps := newShipmentUseCase(t)
		deps.repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Shipment{ID: "s-1", Transporter: "t-1"}, nil)
		deps.transporter.EXPECT().GetByID(gomock.Any(), "t-1").Return(entities.Transporter{ID: "t-1", Name: "Khyber Cargo"}, nil)

		res, err := uc.GetByID(context.Background(), " s-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.TransporterDetails == nil || res.TransporterDetails.Name != "Khyber Cargo" {
			t.Fatalf("expected populated transporter, got %+v", res.TransporterDetails)
		}
	})

	t.Run("dangling transporter reference", func(t *testing.T) {
		uc, deps := newShipmentUseCase(t)
		deps.repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Shipment{ID: "s-1", Transporter: "gone"}, nil)
		deps.transporter.EXPECT().GetByID(gomock.Any(), "gone").Return(entities.Transporter{}, nil)

		res, err := uc.GetByID(context.Background(), "s-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.TransporterDetails != nil {
			t.Fatalf("expected no transporter")
		}
	})
}

func TestShipmentUseCase_Update(t *testing.T) {
	existing := func() entities.Shipment {
		tv := decimal.NewFromInt(100)
		return entities.Shipment{
			ID: "s-1", ShipmentID: "SHP-2025-001", BatchNo: "BATCH-012025-001", TrackingNumber: "TRK123456ABCDEF",
			Origin: "Karachi", Destination: "Kabul", Currency: "USD",
			Products:   []entities.ShipmentProduct{product("10", "10")},
			TotalValue: &tv, Status: entities.ShipmentStatusPending, IsActive: true,
		}
	}

	t.Run("recomputes value and keeps identifiers", func(t *testing.T) {
		uc, deps := newShipmentUseCase(t)
		deps.repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(existing(), nil)
		deps.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Shipment) (entities.Shipment, error) {
				if s.TotalValue == nil || !s.TotalValue.Equal(decimal.NewFromInt(60)) {
					t.Fatalf("expected recomputed value 60, got %v", s.TotalValue)
				}
				if s.ShipmentID != "SHP-2025-001" || s.BatchNo != "BATCH-012025-001" || s.TrackingNumber != "TRK123456ABCDEF" {
					t.Fatalf("identifiers changed: %+v", s)
				}
				if !s.UpdatedAt.Equal(shipmentClock) {
					t.Fatalf("expected updated timestamp")
				}
				return s, nil
			},
		)

		products := []entities.ShipmentProduct{product("2", "30")}
		if _, err := uc.Update(context.Background(), "s-1", entities.ShipmentPatch{Products: &products}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("emptying products unsets value", func(t *testing.T) {
		uc, deps := newShipmentUseCase(t)
		deps.repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(existing(), nil)
		deps.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Shipment) (entities.Shipment, error) {
				if s.TotalValue != nil {
					t.Fatalf("expected unset value")
				}
				return s, nil
			},
		)

		empty := []entities.ShipmentProduct{}
		if _, err := uc.Update(context.Background(), "s-1", entities.ShipmentPatch{Products: &empty}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("status change through update publishes", func(t *testing.T) {
		uc, deps := newShipmentUseCase(t)
		deps.repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(existing(), nil)
		deps.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Shipment) (entities.Shipment, error) { return s, nil },
		)
		deps.events.EXPECT().Publish(gomock.Any(), "s-1", gomock.Any()).Return(nil)

		st := entities.ShipmentStatusShipped
		if _, err := uc.Update(context.Background(), "s-1", entities.ShipmentPatch{Status: &st}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("clearing a required field", func(t *testing.T) {
		uc, deps := newShipmentUseCase(t)
		deps.repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(existing(), nil)

		blank := "  "
		_, err := uc.Update(context.Background(), "s-1", entities.ShipmentPatch{Currency: &blank})
		if !errors.Is(err, ErrMissingShipmentFields) {
			t.Fatalf("expected ErrMissingShipmentFields, got %v", err)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		uc := NewShipmentUseCase(nil, nil, nil, nil, nil, 0)
		st := entities.ShipmentStatus("lost")
		_, err := uc.Update(context.Background(), "s-1", entities.ShipmentPatch{Status: &st})
		if !errors.Is(err, ErrInvalidShipmentStatus) {
			t.Fatalf("expected ErrInvalidShipmentStatus, got %v", err)
		}
	})

	t.Run("record vanished before save", func(t *testing.T) {
		uc, deps := newShipmentUseCase(t)
		deps.repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(existing(), nil)
		deps.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.Shipment{}, nil)

		notes := "x"
		_, err := uc.Update(context.Background(), "s-1", entities.ShipmentPatch{Notes: &notes})
		if !errors.Is(err, ErrShipmentNotFound) {
			t.Fatalf("expected ErrShipmentNotFound, got %v", err)
		}
	})
}

func TestShipmentUseCase_UpdateStatus(t *testing.T) {
	t.Run("pending straight to delivered is accepted", func(t *testing.T) {
		uc, deps := newShipmentUseCase(t)
		deps.repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Shipment{ID: "s-1", Status: entities.ShipmentStatusPending, IsActive: true}, nil)
		deps.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Shipment) (entities.Shipment, error) { return s, nil },
		)
		deps.events.EXPECT().Publish(gomock.Any(), "s-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, v any) error {
				ev := v.(map[string]any)
				if ev["previousStatus"] != entities.ShipmentStatusPending || ev["status"] != entities.ShipmentStatusDelivered {
					t.Fatalf("unexpected event: %+v", ev)
				}
				return nil
			},
		)

		res, err := uc.UpdateStatus(context.Background(), "s-1", entities.ShipmentStatusDelivered)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.ShipmentStatusDelivered {
			t.Fatalf("expected delivered, got %s", res.Status)
		}
	})

	t.Run("delivered back to pending is accepted", func(t *testing.T) {
		uc, deps := newShipmentUseCase(t)
		deps.repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Shipment{ID: "s-1", Status: entities.ShipmentStatusDelivered, IsActive: true}, nil)
		deps.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Shipment) (entities.Shipment, error) { return s, nil },
		)
		deps.events.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		res, err := uc.UpdateStatus(context.Background(), "s-1", entities.ShipmentStatusPending)
		if err != nil || res.Status != entities.ShipmentStatusPending {
			t.Fatalf("unexpected result: %+v %v", res, err)
		}
	})

	t.Run("not in enum", func(t *testing.T) {
		uc := NewShipmentUseCase(nil, nil, nil, nil, nil, 0)
		_, err := uc.UpdateStatus(context.Background(), "s-1", "teleported")
		if !errors.Is(err, ErrInvalidShipmentStatus) {
			t.Fatalf("expected ErrInvalidShipmentStatus, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, deps := newShipmentUseCase(t)
		deps.repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Shipment{}, nil)

		_, err := uc.UpdateStatus(context.Background(), "s-1", entities.ShipmentStatusShipped)
		if !errors.Is(err, ErrShipmentNotFound) {
			t.Fatalf("expected ErrShipmentNotFound, got %v", err)
		}
	})
}

func TestShipmentUseCase_SoftDeletedIsReadOnly(t *testing.T) {
	deleted := entities.Shipment{ID: "s-1", Origin: "Karachi", Destination: "Kabul", Currency: "USD", Status: entities.ShipmentStatusPending}

	t.Run("update", func(t *testing.T) {
		uc, deps := newShipmentUseCase(t)
		notes := "reopen"
		deps.repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(deleted, nil)

		_, err := uc.Update(context.Background(), "s-1", entities.ShipmentPatch{Notes: &notes})
		if !errors.Is(err, ErrShipmentNotFound) {
			t.Fatalf("expected ErrShipmentNotFound, got %v", err)
		}
	})

	t.Run("status", func(t *testing.T) {
		uc, deps := newShipmentUseCase(t)
		deps.repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(deleted, nil)

		_, err := uc.UpdateStatus(context.Background(), "s-1", entities.ShipmentStatusDelivered)
		if !errors.Is(err, ErrShipmentNotFound) {
			t.Fatalf("expected ErrShipmentNotFound, got %v", err)
		}
	})

	t.Run("still readable by id", func(t *testing.T) {
		uc, deps := newShipmentUseCase(t)
		deps.repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(deleted, nil)

		res, err := uc.GetByID(context.Background(), "s-1")
		if err != nil || res.ID != "s-1" || res.IsActive {
			t.Fatalf("unexpected result: %+v %v", res, err)
		}
	})
}

func TestShipmentUseCase_Delete(t *testing.T) {
	t.Run("soft delete", func(t *testing.T) {
		uc, deps := newShipmentUseCase(t)
		deps.repo.EXPECT().Deactivate(gomock.Any(), "s-1").Return(entities.Shipment{ID: "s-1", IsActive: false}, nil)

		res, err := uc.Delete(context.Background(), "s-1")
		if err != nil || res.IsActive {
			t.Fatalf("unexpected result: %+v %v", res, err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, deps := newShipmentUseCase(t)
		deps.repo.EXPECT().Deactivate(gomock.Any(), "s-1").Return(entities.Shipment{}, nil)

		_, err := uc.Delete(context.Background(), "s-1")
		if !errors.Is(err, ErrShipmentNotFound) {
			t.Fatalf("expected ErrShipmentNotFound, got %v", err)
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		uc := NewShipmentUseCase(nil, nil, nil, nil, nil, 0)
		_, err := uc.Delete(context.Background(), "")
		if !errors.Is(err, ErrInvalidShipmentID) {
			t.Fatalf("expected ErrInvalidShipmentID, got %v", err)
		}
	})
}

func TestShipmentUseCase_Analytics(t *testing.T) {
	v1 := decimal.NewFromInt(100)
	v2 := decimal.RequireFromString("50.25")
	v3 := decimal.NewFromInt(7)
	items := []entities.Shipment{
		{ID: "1", Status: entities.ShipmentStatusInTransit, Currency: "USD", TotalValue: &v1},
		{ID: "2", Status: entities.ShipmentStatusDelivered, Currency: "USD", TotalValue: &v2},
		{ID: "3", Status: entities.ShipmentStatusDelivered, Currency: "AFN", TotalValue: &v3},
		{ID: "4", Status: entities.ShipmentStatusPending, Currency: "USD"},
	}

	t.Run("computes and caches", func(t *testing.T) {
		uc, deps := newShipmentUseCase(t)
		deps.cache.EXPECT().Get(gomock.Any(), analyticsCacheKey).Return("", nil)
		deps.repo.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q query.ListQuery) (query.Page[entities.Shipment], error) {
				if q.Limit != 0 {
					t.Fatalf("expected unpaginated query, got limit %d", q.Limit)
				}
				return query.Page[entities.Shipment]{Items: items, Total: len(items), Page: 1, Pages: 1}, nil
			},
		)
		deps.cache.EXPECT().Set(gomock.Any(), analyticsCacheKey, gomock.Any(), time.Minute).Return(nil)

		res, err := uc.Analytics(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.TotalShipments != 4 || res.DeliveredShipments != 2 || res.InTransitShipments != 1 {
			t.Fatalf("unexpected counts: %+v", res)
		}
		if res.ByStatus[entities.ShipmentStatusDelivered] != 2 || res.ByStatus[entities.ShipmentStatusPending] != 1 {
			t.Fatalf("unexpected by status: %+v", res.ByStatus)
		}
		if !res.TotalValueByCurrency["USD"].Equal(decimal.RequireFromString("150.25")) || !res.TotalValueByCurrency["AFN"].Equal(v3) {
			t.Fatalf("unexpected values: %+v", res.TotalValueByCurrency)
		}
	})

	t.Run("cache hit skips the store", func(t *testing.T) {
		uc, deps := newShipmentUseCase(t)
		deps.cache.EXPECT().Get(gomock.Any(), analyticsCacheKey).Return(`{"totalShipments":9,"byStatus":{"pending":9},"totalValueByCurrency":{},"inTransitShipments":0,"deliveredShipments":0}`, nil)

		res, err := uc.Analytics(context.Background())
		if err != nil || res.TotalShipments != 9 {
			t.Fatalf("unexpected result: %+v %v", res, err)
		}
	})

	t.Run("store error", func(t *testing.T) {
		uc, deps := newShipmentUseCase(t)
		deps.cache.EXPECT().Get(gomock.Any(), analyticsCacheKey).Return("", errors.New("redis down"))
		deps.repo.EXPECT().List(gomock.Any(), gomock.Any()).Return(query.Page[entities.Shipment]{}, errors.New("db"))

		_, err := uc.Analytics(context.Background())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
