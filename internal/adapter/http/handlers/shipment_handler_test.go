package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"logistics_backoffice/internal/adapter/http/handlers/mocks"
	"logistics_backoffice/internal/domain/entities"
	"logistics_backoffice/internal/domain/query"
	"logistics_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type body struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Results *int            `json:"results"`
	Total   *int            `json:"total"`
	Page    *int            `json:"page"`
	Pages   *int            `json:"pages"`
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) body {
	t.Helper()
	var b body
	if err := json.Unmarshal(w.Body.Bytes(), &b); err != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
	}
	return b
}

func serve(r *gin.Engine, method, target, payload string) *httptest.ResponseRecorder {
	var req *http.Request
	if payload == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func newShipmentRouter(t *testing.T) (*gin.Engine, *mocks.MockIShipmentUseCase) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIShipmentUseCase(ctrl)
	h := NewShipmentHandler(uc)

	r := gin.New()
	r.GET("/v1/shipments", h.ListShipments)
	r.GET("/v1/shipments/analytics", h.GetShipmentAnalytics)
	r.GET("/v1/shipments/:id", h.GetShipment)
	r.POST("/v1/shipments", h.CreateShipment)
	r.PUT("/v1/shipments/:id", h.UpdateShipment)
	r.PUT("/v1/shipments/:id/status", h.UpdateShipmentStatus)
	r.DELETE("/v1/shipments/:id", h.DeleteShipment)
	return r, uc
}

func TestShipmentHandler_CreateShipment(t *testing.T) {
	t.Run("missing currency", func(t *testing.T) {
		r, _ := newShipmentRouter(t)

		w := serve(r, http.MethodPost, "/v1/shipments", `{"origin":"Karachi","destination":"Kabul"}`)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		b := decodeBody(t, w)
		if b.Status != "fail" || b.Message != "Please provide origin, destination and currency" {
			t.Fatalf("unexpected body: %+v", b)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		r, _ := newShipmentRouter(t)

		w := serve(r, http.MethodPost, "/v1/shipments", "{")

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if b := decodeBody(t, w); b.Status != "error" || b.Message == "" {
			t.Fatalf("unexpected body: %+v", b)
		}
	})

	t.Run("created", func(t *testing.T) {
		r, uc := newShipmentRouter(t)
		total := decimal.RequireFromString("250.5")
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, s entities.Shipment) (entities.Shipment, error) {
				if s.Currency != "USD" || len(s.Products) != 1 {
					t.Fatalf("unexpected entity: %+v", s)
				}
				s.ID = "s-1"
				s.ShipmentID = "SHP-2025-003"
				s.TotalValue = &total
				return s, nil
			})

		w := serve(r, http.MethodPost, "/v1/shipments",
			`{"origin":"Karachi","destination":"Kabul","currency":"usd","products":[{"product":"p1","quantity":3,"unitPrice":83.5}]}`)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var data map[string]any
		if err := json.Unmarshal(decodeBody(t, w).Data, &data); err != nil {
			t.Fatal(err)
		}
		if data["shipmentId"] != "SHP-2025-003" || data["totalValue"] != 250.5 {
			t.Fatalf("unexpected data: %v", data)
		}
	})

	t.Run("usecase failure surfaces raw error", func(t *testing.T) {
		r, uc := newShipmentRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Shipment{}, errors.New("dynamo down"))

		w := serve(r, http.MethodPost, "/v1/shipments", `{"origin":"a","destination":"b","currency":"USD"}`)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if b := decodeBody(t, w); b.Status != "error" || b.Message != "dynamo down" {
			t.Fatalf("unexpected body: %+v", b)
		}
	})
}

func TestShipmentHandler_GetShipment(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		r, uc := newShipmentRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Shipment{}, usecase.ErrShipmentNotFound)

		w := serve(r, http.MethodGet, "/v1/shipments/missing", "")

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if b := decodeBody(t, w); b.Status != "fail" || b.Message != "No shipment found with that ID" {
			t.Fatalf("unexpected body: %+v", b)
		}
	})

	t.Run("populated transporter", func(t *testing.T) {
		r, uc := newShipmentRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Shipment{
			ID:                 "s-1",
			Transporter:        "t-1",
			TransporterDetails: &entities.Transporter{ID: "t-1", Name: "Khan Logistics"},
		}, nil)

		w := serve(r, http.MethodGet, "/v1/shipments/s-1", "")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var data struct {
			Transporter map[string]any `json:"transporter"`
		}
		if err := json.Unmarshal(decodeBody(t, w).Data, &data); err != nil {
			t.Fatal(err)
		}
		if data.Transporter["name"] != "Khan Logistics" {
			t.Fatalf("transporter not populated: %v", data.Transporter)
		}
	})
}

func TestShipmentHandler_ListShipments(t *testing.T) {
	r, uc := newShipmentRouter(t)
	uc.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, q query.ListQuery) (query.Page[entities.Shipment], error) {
			if q.Page != 2 || q.Limit != 1 || q.Filters["status"] != "pending" {
				t.Fatalf("unexpected query: %+v", q)
			}
			return query.Page[entities.Shipment]{
				Items: []entities.Shipment{{ID: "s-2", Origin: "Karachi", Status: entities.ShipmentStatusPending}},
				Total: 3,
				Page:  2,
				Pages: 3,
			}, nil
		})

	w := serve(r, http.MethodGet, "/v1/shipments?page=2&limit=1&status=pending&fields=origin", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	b := decodeBody(t, w)
	if *b.Results != 1 || *b.Total != 3 || *b.Page != 2 || *b.Pages != 3 {
		t.Fatalf("unexpected paging: %+v", b)
	}
	var data []map[string]any
	if err := json.Unmarshal(b.Data, &data); err != nil {
		t.Fatal(err)
	}
	if len(data) != 1 || len(data[0]) != 2 || data[0]["id"] != "s-2" || data[0]["origin"] != "Karachi" {
		t.Fatalf("unexpected projection: %v", data)
	}
}

func TestShipmentHandler_UpdateShipmentStatus(t *testing.T) {
	t.Run("missing status", func(t *testing.T) {
		r, _ := newShipmentRouter(t)

		w := serve(r, http.MethodPut, "/v1/shipments/s-1/status", `{}`)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if b := decodeBody(t, w); b.Message != "Please provide status" {
			t.Fatalf("unexpected message: %q", b.Message)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		r, uc := newShipmentRouter(t)
		uc.EXPECT().UpdateStatus(gomock.Any(), "s-1", entities.ShipmentStatus("lost")).
			Return(entities.Shipment{}, usecase.ErrInvalidShipmentStatus)

		w := serve(r, http.MethodPut, "/v1/shipments/s-1/status", `{"status":"lost"}`)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("updated", func(t *testing.T) {
		r, uc := newShipmentRouter(t)
		uc.EXPECT().UpdateStatus(gomock.Any(), "s-1", entities.ShipmentStatusDelivered).
			Return(entities.Shipment{ID: "s-1", Status: entities.ShipmentStatusDelivered}, nil)

		w := serve(r, http.MethodPut, "/v1/shipments/s-1/status", `{"status":"delivered"}`)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestShipmentHandler_DeleteShipment(t *testing.T) {
	r, uc := newShipmentRouter(t)
	uc.EXPECT().Delete(gomock.Any(), "s-1").Return(entities.Shipment{ID: "s-1"}, nil)

	w := serve(r, http.MethodDelete, "/v1/shipments/s-1", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if b := decodeBody(t, w); b.Message != "Shipment deleted successfully" {
		t.Fatalf("unexpected message: %q", b.Message)
	}
}

func TestShipmentHandler_GetShipmentAnalytics(t *testing.T) {
	r, uc := newShipmentRouter(t)
	uc.EXPECT().Analytics(gomock.Any()).Return(entities.ShipmentAnalytics{}, errors.New("scan failed"))

	w := serve(r, http.MethodGet, "/v1/shipments/analytics", "")

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
