package response

import (
	"encoding/json"
	"strings"
	"testing"

	"logistics_backoffice/internal/domain/entities"
	"logistics_backoffice/internal/domain/query"

	"github.com/shopspring/decimal"
)

func TestFromShipment_TransporterReference(t *testing.T) {
	t.Run("raw id when not populated", func(t *testing.T) {
		res := FromShipment(entities.Shipment{ID: "s-1", Transporter: "t-1"})
		if res.Transporter != "t-1" {
			t.Fatalf("expected raw id, got %#v", res.Transporter)
		}
	})

	t.Run("populated document", func(t *testing.T) {
		res := FromShipment(entities.Shipment{
			ID: "s-1", Transporter: "t-1",
			TransporterDetails: &entities.Transporter{ID: "t-1", Name: "Khyber Cargo"},
		})
		tr, ok := res.Transporter.(TransporterResponse)
		if !ok || tr.Name != "Khyber Cargo" || tr.VehicleNumbers == nil {
			t.Fatalf("expected populated transporter, got %#v", res.Transporter)
		}
	})

	t.Run("omitted when empty", func(t *testing.T) {
		b, _ := json.Marshal(FromShipment(entities.Shipment{ID: "s-1"}))
		if strings.Contains(string(b), `"transporter"`) || strings.Contains(string(b), `"totalValue"`) {
			t.Fatalf("expected transporter and totalValue omitted: %s", b)
		}
	})
}

func TestFromLogisticsExpense_MoneyAsNumbers(t *testing.T) {
	amount := decimal.RequireFromString("28000")
	b, err := json.Marshal(FromLogisticsExpense(entities.LogisticsExpense{
		ID:           "e-1",
		TotalCost:    decimal.NewFromInt(100),
		ExchangeRate: decimal.NewFromInt(280),
		AmountInPKR:  &amount,
	}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(b), `"totalCost":100`) || !strings.Contains(string(b), `"amountInPKR":28000`) {
		t.Fatalf("expected unquoted amounts: %s", b)
	}
}

func TestList(t *testing.T) {
	page := query.Page[entities.Owner]{
		Items: []entities.Owner{{ID: "o-1", Name: "Ali", Email: "ali@example.com"}},
		Total: 11, Page: 2, Pages: 2,
	}
	env := List(page, []string{"name"}, FromOwner)

	b, err := json.Marshal(env)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got struct {
		Status  string           `json:"status"`
		Data    []map[string]any `json:"data"`
		Results int              `json:"results"`
		Total   int              `json:"total"`
		Page    int              `json:"page"`
		Pages   int              `json:"pages"`
	}
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Status != "success" || got.Results != 1 || got.Total != 11 || got.Page != 2 || got.Pages != 2 {
		t.Fatalf("unexpected envelope %s", b)
	}
	if len(got.Data[0]) != 2 || got.Data[0]["id"] != "o-1" || got.Data[0]["name"] != "Ali" {
		t.Fatalf("expected projected id and name, got %+v", got.Data[0])
	}
}

func TestProject_NoFields(t *testing.T) {
	o := FromOwner(entities.Owner{ID: "o-1"})
	if _, ok := Project(o, nil).(OwnerResponse); !ok {
		t.Fatalf("expected value unchanged")
	}
}
