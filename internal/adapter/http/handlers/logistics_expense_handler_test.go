package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"logistics_backoffice/internal/adapter/http/handlers/mocks"
	"logistics_backoffice/internal/domain/entities"
	"logistics_backoffice/internal/domain/query"
	"logistics_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newExpenseRouter(t *testing.T) (*gin.Engine, *mocks.MockILogisticsExpenseUseCase) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockILogisticsExpenseUseCase(ctrl)
	h := NewLogisticsExpenseHandler(uc)

	r := gin.New()
	r.GET("/v1/logistics-expenses", h.ListLogisticsExpenses)
	r.GET("/v1/logistics-expenses/route/:route", h.ListLogisticsExpensesByRoute)
	r.GET("/v1/logistics-expenses/:id", h.GetLogisticsExpense)
	r.POST("/v1/logistics-expenses", h.CreateLogisticsExpense)
	r.PUT("/v1/logistics-expenses/:id", h.UpdateLogisticsExpense)
	r.PUT("/v1/logistics-expenses/:id/status", h.UpdateLogisticsExpenseStatus)
	r.DELETE("/v1/logistics-expenses/:id", h.DeleteLogisticsExpense)
	return r, uc
}

func TestLogisticsExpenseHandler_CreateLogisticsExpense(t *testing.T) {
	t.Run("missing exchange rate", func(t *testing.T) {
		r, _ := newExpenseRouter(t)

		w := serve(r, http.MethodPost, "/v1/logistics-expenses", `{"route":"Karachi-Kabul","freightCost":1000}`)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if b := decodeBody(t, w); b.Message != "Please provide route, freightCost and exchangeRate" {
			t.Fatalf("unexpected message: %q", b.Message)
		}
	})

	t.Run("negative amount", func(t *testing.T) {
		r, uc := newExpenseRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.LogisticsExpense{}, usecase.ErrNegativeExpenseAmount)

		w := serve(r, http.MethodPost, "/v1/logistics-expenses", `{"route":"r","freightCost":-1,"exchangeRate":280}`)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created with derived totals", func(t *testing.T) {
		r, uc := newExpenseRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, e entities.LogisticsExpense) (entities.LogisticsExpense, error) {
				if e.Route != "Karachi-Kabul" || !e.FreightCost.Equal(decimal.NewFromInt(1000)) {
					t.Fatalf("unexpected entity: %+v", e)
				}
				pkr := decimal.NewFromInt(330000)
				e.ID = "e-1"
				e.TotalCost = decimal.NewFromInt(1200)
				e.AmountInPKR = &pkr
				return e, nil
			})

		w := serve(r, http.MethodPost, "/v1/logistics-expenses",
			`{"route":"Karachi-Kabul","freightCost":1000,"serviceFee":200,"exchangeRate":275}`)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var data map[string]any
		if err := json.Unmarshal(decodeBody(t, w).Data, &data); err != nil {
			t.Fatal(err)
		}
		if data["totalCost"] != float64(1200) || data["amountInPKR"] != float64(330000) {
			t.Fatalf("unexpected totals: %v", data)
		}
	})
}

func TestLogisticsExpenseHandler_ListLogisticsExpensesByRoute(t *testing.T) {
	r, uc := newExpenseRouter(t)
	uc.EXPECT().ListByRoute(gomock.Any(), "Karachi-Kabul", gomock.Any()).Return(query.Page[entities.LogisticsExpense]{
		Items: []entities.LogisticsExpense{{ID: "e-1", Route: "Karachi-Kabul"}, {ID: "e-2", Route: "Karachi-Kabul"}},
		Total: 2,
		Page:  1,
		Pages: 1,
	}, nil)

	w := serve(r, http.MethodGet, "/v1/logistics-expenses/route/Karachi-Kabul", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if b := decodeBody(t, w); *b.Results != 2 || *b.Total != 2 {
		t.Fatalf("unexpected body: %+v", b)
	}
}

func TestLogisticsExpenseHandler_GetLogisticsExpense(t *testing.T) {
	r, uc := newExpenseRouter(t)
	uc.EXPECT().GetByID(gomock.Any(), "e-404").Return(entities.LogisticsExpense{}, usecase.ErrLogisticsExpenseNotFound)

	w := serve(r, http.MethodGet, "/v1/logistics-expenses/e-404", "")

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if b := decodeBody(t, w); b.Message != "No logistics expense found with that ID" {
		t.Fatalf("unexpected message: %q", b.Message)
	}
}

func TestLogisticsExpenseHandler_UpdateLogisticsExpenseStatus(t *testing.T) {
	r, uc := newExpenseRouter(t)
	uc.EXPECT().UpdateStatus(gomock.Any(), "e-1", entities.TransportStatusInTransit).
		Return(entities.LogisticsExpense{ID: "e-1", TransportStatus: entities.TransportStatusInTransit}, nil)

	w := serve(r, http.MethodPut, "/v1/logistics-expenses/e-1/status", `{"status":"in_transit"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestLogisticsExpenseHandler_DeleteLogisticsExpense(t *testing.T) {
	r, uc := newExpenseRouter(t)
	uc.EXPECT().Delete(gomock.Any(), "e-1").Return(entities.LogisticsExpense{ID: "e-1"}, nil)

	w := serve(r, http.MethodDelete, "/v1/logistics-expenses/e-1", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if b := decodeBody(t, w); b.Message != "Logistics expense deleted successfully" {
		t.Fatalf("unexpected message: %q", b.Message)
	}
}
