package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"logistics_backoffice/internal/adapter/http/handlers/mocks"
	"logistics_backoffice/internal/domain/entities"
	"logistics_backoffice/internal/domain/query"
	"logistics_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newTransporterRouter(t *testing.T) (*gin.Engine, *mocks.MockITransporterUseCase) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockITransporterUseCase(ctrl)
	h := NewTransporterHandler(uc)

	r := gin.New()
	r.GET("/v1/transporters", h.ListTransporters)
	r.GET("/v1/transporters/:id", h.GetTransporter)
	r.POST("/v1/transporters", h.CreateTransporter)
	r.PUT("/v1/transporters/:id", h.UpdateTransporter)
	r.DELETE("/v1/transporters/:id", h.DeleteTransporter)
	return r, uc
}

func TestTransporterHandler(t *testing.T) {
	t.Run("create requires name and phone", func(t *testing.T) {
		r, _ := newTransporterRouter(t)

		w := serve(r, http.MethodPost, "/v1/transporters", `{"name":"Khan Logistics"}`)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if b := decodeBody(t, w); b.Message != "Please provide name and phone" {
			t.Fatalf("unexpected message: %q", b.Message)
		}
	})

	t.Run("create", func(t *testing.T) {
		r, uc := newTransporterRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, tr entities.Transporter) (entities.Transporter, error) {
				tr.ID = "t-1"
				return tr, nil
			})

		w := serve(r, http.MethodPost, "/v1/transporters", `{"name":"Khan Logistics","phone":"0300","routes":["Karachi-Kabul"]}`)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var data map[string]any
		if err := json.Unmarshal(decodeBody(t, w).Data, &data); err != nil {
			t.Fatal(err)
		}
		if data["id"] != "t-1" || data["name"] != "Khan Logistics" {
			t.Fatalf("unexpected data: %v", data)
		}
	})

	t.Run("list", func(t *testing.T) {
		r, uc := newTransporterRouter(t)
		uc.EXPECT().List(gomock.Any(), gomock.Any()).Return(query.Page[entities.Transporter]{
			Items: []entities.Transporter{{ID: "t-1"}},
			Total: 1,
			Page:  1,
			Pages: 1,
		}, nil)

		w := serve(r, http.MethodGet, "/v1/transporters", "")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if b := decodeBody(t, w); *b.Results != 1 {
			t.Fatalf("unexpected body: %+v", b)
		}
	})

	t.Run("invalid regex filter", func(t *testing.T) {
		r, _ := newTransporterRouter(t)

		w := serve(r, http.MethodGet, "/v1/transporters?name[regex]=(", "")

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("get not found", func(t *testing.T) {
		r, uc := newTransporterRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "t-9").Return(entities.Transporter{}, usecase.ErrTransporterNotFound)

		w := serve(r, http.MethodGet, "/v1/transporters/t-9", "")

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("update failure", func(t *testing.T) {
		r, uc := newTransporterRouter(t)
		uc.EXPECT().Update(gomock.Any(), "t-1", gomock.Any()).Return(entities.Transporter{}, errors.New("throttled"))

		w := serve(r, http.MethodPut, "/v1/transporters/t-1", `{"phone":"0311"}`)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if b := decodeBody(t, w); b.Message != "throttled" {
			t.Fatalf("unexpected message: %q", b.Message)
		}
	})

	t.Run("delete", func(t *testing.T) {
		r, uc := newTransporterRouter(t)
		uc.EXPECT().Delete(gomock.Any(), "t-1").Return(entities.Transporter{ID: "t-1"}, nil)

		w := serve(r, http.MethodDelete, "/v1/transporters/t-1", "")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if b := decodeBody(t, w); b.Message != "Transporter deleted successfully" {
			t.Fatalf("unexpected message: %q", b.Message)
		}
	})
}

func TestLiabilityHandler_CreateRequiresTitleAndAmount(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	h := NewLiabilityHandler(mocks.NewMockILiabilityUseCase(ctrl))
	r := gin.New()
	r.POST("/v1/liabilities", h.CreateLiability)

	w := serve(r, http.MethodPost, "/v1/liabilities", `{"title":"Bank loan"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if b := decodeBody(t, w); b.Message != "Please provide title and amount" {
		t.Fatalf("unexpected message: %q", b.Message)
	}
}
