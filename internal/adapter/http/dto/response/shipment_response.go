package response

import (
	"time"

	"logistics_backoffice/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type ShipmentProductResponse struct {
	Product   string          `json:"product"`
	Name      string          `json:"name,omitempty"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// ShipmentResponse renders transporter as the populated document when it was
// resolved, otherwise as the raw reference id.
type ShipmentResponse struct {
	ID                  string                    `json:"id"`
	ShipmentID          string                    `json:"shipmentId"`
	BatchNo             string                    `json:"batchNo"`
	TrackingNumber      string                    `json:"trackingNumber"`
	Transporter         any                       `json:"transporter,omitempty"`
	Origin              string                    `json:"origin"`
	Destination         string                    `json:"destination"`
	Currency            string                    `json:"currency"`
	Products            []ShipmentProductResponse `json:"products"`
	TotalValue          *decimal.Decimal          `json:"totalValue,omitempty"`
	Status              string                    `json:"status"`
	DepartureDate       *time.Time                `json:"departureDate,omitempty"`
	ExpectedArrivalDate *time.Time                `json:"expectedArrivalDate,omitempty"`
	Notes               string                    `json:"notes,omitempty"`
	IsActive            bool                      `json:"isActive"`
	CreatedAt           time.Time                 `json:"createdAt"`
	UpdatedAt           time.Time                 `json:"updatedAt"`
}

func FromShipment(s entities.Shipment) ShipmentResponse {
	products := make([]ShipmentProductResponse, 0, len(s.Products))
	for _, p := range s.Products {
		products = append(products, ShipmentProductResponse{
			Product:   p.Product,
			Name:      p.Name,
			Quantity:  p.Quantity,
			UnitPrice: p.UnitPrice,
		})
	}
	return ShipmentResponse{
		ID:                  s.ID,
		ShipmentID:          s.ShipmentID,
		BatchNo:             s.BatchNo,
		TrackingNumber:      s.TrackingNumber,
		Transporter:         transporterRef(s.Transporter, s.TransporterDetails),
		Origin:              s.Origin,
		Destination:         s.Destination,
		Currency:            s.Currency,
		Products:            products,
		TotalValue:          s.TotalValue,
		Status:              string(s.Status),
		DepartureDate:       s.DepartureDate,
		ExpectedArrivalDate: s.ExpectedArrivalDate,
		Notes:               s.Notes,
		IsActive:            s.IsActive,
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           s.UpdatedAt,
	}
}

type ShipmentAnalyticsResponse struct {
	TotalShipments       int                        `json:"totalShipments"`
	ByStatus             map[string]int             `json:"byStatus"`
	TotalValueByCurrency map[string]decimal.Decimal `json:"totalValueByCurrency"`
	InTransitShipments   int                        `json:"inTransitShipments"`
	DeliveredShipments   int                        `json:"deliveredShipments"`
}

func FromShipmentAnalytics(a entities.ShipmentAnalytics) ShipmentAnalyticsResponse {
	byStatus := make(map[string]int, len(a.ByStatus))
	for k, v := range a.ByStatus {
		byStatus[string(k)] = v
	}
	values := a.TotalValueByCurrency
	if values == nil {
		values = map[string]decimal.Decimal{}
	}
	return ShipmentAnalyticsResponse{
		TotalShipments:       a.TotalShipments,
		ByStatus:             byStatus,
		TotalValueByCurrency: values,
		InTransitShipments:   a.InTransitShipments,
		DeliveredShipments:   a.DeliveredShipments,
	}
}

func transporterRef(id string, details *entities.Transporter) any {
	if details != nil {
		return FromTransporter(*details)
	}
	if id == "" {
		return nil
	}
	return id
}
