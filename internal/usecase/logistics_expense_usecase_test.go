package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"logistics_backoffice/internal/domain/entities"
	"logistics_backoffice/internal/domain/query"
	mock_interfaces "logistics_backoffice/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

var expenseClock = time.Date(2025, time.April, 2, 8, 0, 0, 0, time.UTC)

type expenseDeps struct {
	repo        *mock_interfaces.MockILogisticsExpenseRepository
	shipments   *mock_interfaces.MockIShipmentRepository
	transporter *mock_interfaces.MockITransporterRepository
	events      *mock_interfaces.MockIEventPublisher
}

func newExpenseUseCase(t *testing.T) (*LogisticsExpenseUseCase, expenseDeps) {
	ctrl := gomock.NewController(t)
	deps := expenseDeps{
		repo:        mock_interfaces.NewMockILogisticsExpenseRepository(ctrl),
		shipments:   mock_interfaces.NewMockIShipmentRepository(ctrl),
		transporter: mock_interfaces.NewMockITransporterRepository(ctrl),
		events:      mock_interfaces.NewMockIEventPublisher(ctrl),
	}
	uc := NewLogisticsExpenseUseCase(deps.repo, deps.shipments, deps.transporter, deps.events)
	uc.now = func() time.Time { return expenseClock }
	return uc, deps
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func storedExpense() entities.LogisticsExpense {
	return entities.LogisticsExpense{
		ID:              "e-1",
		Route:           "Karachi-Kabul",
		Currency:        "USD",
		FreightCost:     dec("1000"),
		ServiceFee:      dec("200"),
		ExchangeRate:    dec("280"),
		TotalCost:       dec("1200"),
		TransportStatus: entities.TransportStatusPending,
		IsActive:        true,
	}
}

func echoSave(_ context.Context, e entities.LogisticsExpense) (entities.LogisticsExpense, error) {
	return e, nil
}

func TestLogisticsExpenseUseCase_Create(t *testing.T) {
	t.Run("missing route", func(t *testing.T) {
		uc := NewLogisticsExpenseUseCase(nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), entities.LogisticsExpense{Route: "  "})
		if !errors.Is(err, ErrMissingLogisticsExpenseData) {
			t.Fatalf("expected ErrMissingLogisticsExpenseData, got %v", err)
		}
	})

	t.Run("negative component", func(t *testing.T) {
		uc := NewLogisticsExpenseUseCase(nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), entities.LogisticsExpense{Route: "r", ServiceFee: dec("-5")})
		if !errors.Is(err, ErrNegativeExpenseAmount) {
			t.Fatalf("expected ErrNegativeExpenseAmount, got %v", err)
		}
	})

	t.Run("derives totals and defaults", func(t *testing.T) {
		uc, deps := newExpenseUseCase(t)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.LogisticsExpense) (entities.LogisticsExpense, error) {
				return e, nil
			})

		got, err := uc.Create(context.Background(), entities.LogisticsExpense{
			Route:                 " Karachi-Kabul ",
			Currency:              "aed",
			FreightCost:           dec("1000"),
			BorderCrossingCharges: dec("150.25"),
			LocalTransportCharges: dec("49.75"),
			ExchangeRate:          dec("76.5"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID == "" || !got.IsActive || got.Route != "Karachi-Kabul" || got.Currency != "AED" {
			t.Fatalf("unexpected record: %+v", got)
		}
		if got.TransportStatus != entities.TransportStatusPending || !got.ExpenseDate.Equal(expenseClock) {
			t.Fatalf("defaults not applied: %+v", got)
		}
		if !got.TotalCost.Equal(dec("1200")) || got.AmountInPKR == nil || !got.AmountInPKR.Equal(dec("91800")) {
			t.Fatalf("unexpected totals: total=%s pkr=%v", got.TotalCost, got.AmountInPKR)
		}
	})

	t.Run("zero total leaves amount in PKR unset", func(t *testing.T) {
		uc, deps := newExpenseUseCase(t)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.LogisticsExpense) (entities.LogisticsExpense, error) {
				return e, nil
			})

		got, err := uc.Create(context.Background(), entities.LogisticsExpense{Route: "r", ExchangeRate: dec("280")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.TotalCost.IsZero() || got.AmountInPKR != nil {
			t.Fatalf("expected zero total without PKR amount, got %s %v", got.TotalCost, got.AmountInPKR)
		}
		if got.Currency != entities.DefaultExpenseCurrency {
			t.Fatalf("expected default currency, got %q", got.Currency)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		uc, deps := newExpenseUseCase(t)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.LogisticsExpense{}, errors.New("put failed"))

		if _, err := uc.Create(context.Background(), entities.LogisticsExpense{Route: "r"}); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestLogisticsExpenseUseCase_GetByID(t *testing.T) {
	t.Run("populates shipment and transporter", func(t *testing.T) {
		uc, deps := newExpenseUseCase(t)
		e := storedExpense()
		e.Shipment = "s-1"
		e.Transporter = "t-1"
		deps.repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(e, nil)
		deps.shipments.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Shipment{ID: "s-1"}, nil)
		deps.transporter.EXPECT().GetByID(gomock.Any(), "t-1").Return(entities.Transporter{ID: "t-1"}, nil)

		got, err := uc.GetByID(context.Background(), "e-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ShipmentDetails == nil || got.TransporterDetails == nil {
			t.Fatalf("expected populated refs: %+v", got)
		}
	})

	t.Run("dangling shipment stays an id", func(t *testing.T) {
		uc, deps := newExpenseUseCase(t)
		e := storedExpense()
		e.Shipment = "s-gone"
		deps.repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(e, nil)
		deps.shipments.EXPECT().GetByID(gomock.Any(), "s-gone").Return(entities.Shipment{}, nil)

		got, err := uc.GetByID(context.Background(), "e-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ShipmentDetails != nil || got.Shipment != "s-gone" {
			t.Fatalf("unexpected shipment ref: %+v", got)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, deps := newExpenseUseCase(t)
		deps.repo.EXPECT().GetByID(gomock.Any(), "e-9").Return(entities.LogisticsExpense{}, nil)

		if _, err := uc.GetByID(context.Background(), "e-9"); !errors.Is(err, ErrLogisticsExpenseNotFound) {
			t.Fatalf("expected ErrLogisticsExpenseNotFound, got %v", err)
		}
	})

	t.Run("blank id", func(t *testing.T) {
		uc, _ := newExpenseUseCase(t)
		if _, err := uc.GetByID(context.Background(), " "); !errors.Is(err, ErrInvalidLogisticsExpenseID) {
			t.Fatalf("expected ErrInvalidLogisticsExpenseID, got %v", err)
		}
	})
}

func TestLogisticsExpenseUseCase_ListByRoute(t *testing.T) {
	t.Run("adds the route filter", func(t *testing.T) {
		uc, deps := newExpenseUseCase(t)
		q := query.ListQuery{Filters: map[string]string{"currency": "USD"}, Page: 1, Limit: 10}
		deps.repo.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, got query.ListQuery) (query.Page[entities.LogisticsExpense], error) {
				if got.Filters["route"] != "Karachi-Kabul" || got.Filters["currency"] != "USD" {
					t.Fatalf("unexpected filters: %v", got.Filters)
				}
				return query.Page[entities.LogisticsExpense]{Page: 1}, nil
			})

		if _, err := uc.ListByRoute(context.Background(), "Karachi-Kabul", q); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := q.Filters["route"]; ok {
			t.Fatal("caller query must not be modified")
		}
	})

	t.Run("blank route", func(t *testing.T) {
		uc, _ := newExpenseUseCase(t)
		if _, err := uc.ListByRoute(context.Background(), "", query.All()); !errors.Is(err, ErrInvalidRoute) {
			t.Fatalf("expected ErrInvalidRoute, got %v", err)
		}
	})
}

func TestLogisticsExpenseUseCase_Update(t *testing.T) {
	t.Run("freight change derives totals again", func(t *testing.T) {
		uc, deps := newExpenseUseCase(t)
		freight := dec("1500")
		deps.repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(storedExpense(), nil)
		deps.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(echoSave)

		got, err := uc.Update(context.Background(), "e-1", entities.LogisticsExpensePatch{FreightCost: &freight})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.TotalCost.Equal(dec("1700")) || !got.AmountInPKR.Equal(dec("476000")) {
			t.Fatalf("unexpected totals: %s %v", got.TotalCost, got.AmountInPKR)
		}
		if !got.UpdatedAt.Equal(expenseClock) {
			t.Fatalf("updatedAt not refreshed: %v", got.UpdatedAt)
		}
	})

	t.Run("status change publishes", func(t *testing.T) {
		uc, deps := newExpenseUseCase(t)
		status := entities.TransportStatusDelivered
		deps.repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(storedExpense(), nil)
		deps.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(echoSave)
		deps.events.EXPECT().Publish(gomock.Any(), "e-1", gomock.Any()).Return(nil)

		if _, err := uc.Update(context.Background(), "e-1", entities.LogisticsExpensePatch{TransportStatus: &status}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		uc, _ := newExpenseUseCase(t)
		status := entities.TransportStatus("lost")
		_, err := uc.Update(context.Background(), "e-1", entities.LogisticsExpensePatch{TransportStatus: &status})
		if !errors.Is(err, ErrInvalidTransportStatus) {
			t.Fatalf("expected ErrInvalidTransportStatus, got %v", err)
		}
	})

	t.Run("blank route rejected", func(t *testing.T) {
		uc, deps := newExpenseUseCase(t)
		route := " "
		deps.repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(storedExpense(), nil)

		_, err := uc.Update(context.Background(), "e-1", entities.LogisticsExpensePatch{Route: &route})
		if !errors.Is(err, ErrMissingLogisticsExpenseData) {
			t.Fatalf("expected ErrMissingLogisticsExpenseData, got %v", err)
		}
	})

	t.Run("record vanished before save", func(t *testing.T) {
		uc, deps := newExpenseUseCase(t)
		notes := "late"
		deps.repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(storedExpense(), nil)
		deps.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.LogisticsExpense{}, nil)

		_, err := uc.Update(context.Background(), "e-1", entities.LogisticsExpensePatch{Notes: &notes})
		if !errors.Is(err, ErrLogisticsExpenseNotFound) {
			t.Fatalf("expected ErrLogisticsExpenseNotFound, got %v", err)
		}
	})
}

func TestLogisticsExpenseUseCase_UpdateStatus(t *testing.T) {
	t.Run("publishes the previous status", func(t *testing.T) {
		uc, deps := newExpenseUseCase(t)
		deps.repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(storedExpense(), nil)
		deps.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(echoSave)
		deps.events.EXPECT().Publish(gomock.Any(), "e-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, v any) error {
				ev := v.(map[string]any)
				if ev["previousStatus"] != entities.TransportStatusPending || ev["status"] != entities.TransportStatusInTransit {
					t.Fatalf("unexpected event: %v", ev)
				}
				return errors.New("broker down")
			})

		got, err := uc.UpdateStatus(context.Background(), "e-1", entities.TransportStatusInTransit)
		if err != nil {
			t.Fatalf("publish failure must not fail the write: %v", err)
		}
		if got.TransportStatus != entities.TransportStatusInTransit {
			t.Fatalf("unexpected status: %s", got.TransportStatus)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		uc, _ := newExpenseUseCase(t)
		if _, err := uc.UpdateStatus(context.Background(), "e-1", "unknown"); !errors.Is(err, ErrInvalidTransportStatus) {
			t.Fatalf("expected ErrInvalidTransportStatus, got %v", err)
		}
	})
}

func TestLogisticsExpenseUseCase_SoftDeletedIsReadOnly(t *testing.T) {
	deleted := func() entities.LogisticsExpense {
		e := storedExpense()
		e.IsActive = false
		return e
	}

	t.Run("update", func(t *testing.T) {
		uc, deps := newExpenseUseCase(t)
		freight := dec("5")
		deps.repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(deleted(), nil)

		_, err := uc.Update(context.Background(), "e-1", entities.LogisticsExpensePatch{FreightCost: &freight})
		if !errors.Is(err, ErrLogisticsExpenseNotFound) {
			t.Fatalf("expected ErrLogisticsExpenseNotFound, got %v", err)
		}
	})

	t.Run("status", func(t *testing.T) {
		uc, deps := newExpenseUseCase(t)
		deps.repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(deleted(), nil)

		_, err := uc.UpdateStatus(context.Background(), "e-1", entities.TransportStatusDelivered)
		if !errors.Is(err, ErrLogisticsExpenseNotFound) {
			t.Fatalf("expected ErrLogisticsExpenseNotFound, got %v", err)
		}
	})

	t.Run("second delete", func(t *testing.T) {
		uc, deps := newExpenseUseCase(t)
		// the conditional update fails on an inactive item, which the repository reports as zero
		deps.repo.EXPECT().Deactivate(gomock.Any(), "e-1").Return(entities.LogisticsExpense{}, nil)

		if _, err := uc.Delete(context.Background(), "e-1"); !errors.Is(err, ErrLogisticsExpenseNotFound) {
			t.Fatalf("expected ErrLogisticsExpenseNotFound, got %v", err)
		}
	})
}

func TestLogisticsExpenseUseCase_Delete(t *testing.T) {
	t.Run("soft delete", func(t *testing.T) {
		uc, deps := newExpenseUseCase(t)
		e := storedExpense()
		e.IsActive = false
		deps.repo.EXPECT().Deactivate(gomock.Any(), "e-1").Return(e, nil)

		got, err := uc.Delete(context.Background(), "e-1")
		if err != nil || got.IsActive {
			t.Fatalf("unexpected result: %+v %v", got, err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, deps := newExpenseUseCase(t)
		deps.repo.EXPECT().Deactivate(gomock.Any(), "e-9").Return(entities.LogisticsExpense{}, nil)

		if _, err := uc.Delete(context.Background(), "e-9"); !errors.Is(err, ErrLogisticsExpenseNotFound) {
			t.Fatalf("expected ErrLogisticsExpenseNotFound, got %v", err)
		}
	})
}
