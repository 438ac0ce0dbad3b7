package request

import (
	"strings"

	"logistics_backoffice/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const MsgShipmentRequiredFields = "Please provide origin, destination and currency"

type ShipmentProductRequest struct {
	Product   string          `json:"product"`
	Name      string          `json:"name"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// ShipmentRequest is the body of POST and PUT /shipments. Identifiers,
// totalValue and isActive are not part of it and are ignored when sent.
type ShipmentRequest struct {
	Transporter         *string                   `json:"transporter"`
	Origin              *string                   `json:"origin"`
	Destination         *string                   `json:"destination"`
	Currency            *string                   `json:"currency"`
	Products            *[]ShipmentProductRequest `json:"products"`
	Status              *string                   `json:"status"`
	DepartureDate       *Date                     `json:"departureDate"`
	ExpectedArrivalDate *Date                     `json:"expectedArrivalDate"`
	Notes               *string                   `json:"notes"`
}

func (r ShipmentRequest) HasRequired() bool {
	return present(r.Origin) && present(r.Destination) && present(r.Currency)
}

func (r ShipmentRequest) ToEntity() entities.Shipment {
	s := entities.Shipment{
		Transporter:         str(r.Transporter),
		Origin:              str(r.Origin),
		Destination:         str(r.Destination),
		Currency:            strings.ToUpper(str(r.Currency)),
		Products:            r.products(),
		Status:              entities.ShipmentStatus(str(r.Status)),
		DepartureDate:       timePtr(r.DepartureDate),
		ExpectedArrivalDate: timePtr(r.ExpectedArrivalDate),
		Notes:               str(r.Notes),
	}
	if s.Products == nil {
		s.Products = []entities.ShipmentProduct{}
	}
	return s
}

func (r ShipmentRequest) ToPatch() entities.ShipmentPatch {
	p := entities.ShipmentPatch{
		Transporter:         trimmed(r.Transporter),
		Origin:              trimmed(r.Origin),
		Destination:         trimmed(r.Destination),
		Currency:            trimmed(r.Currency),
		DepartureDate:       timePtr(r.DepartureDate),
		ExpectedArrivalDate: timePtr(r.ExpectedArrivalDate),
		Notes:               r.Notes,
	}
	if r.Products != nil {
		products := r.products()
		if products == nil {
			products = []entities.ShipmentProduct{}
		}
		p.Products = &products
	}
	if r.Status != nil {
		st := entities.ShipmentStatus(str(r.Status))
		p.Status = &st
	}
	return p
}

func (r ShipmentRequest) products() []entities.ShipmentProduct {
	if r.Products == nil {
		return nil
	}
	out := make([]entities.ShipmentProduct, 0, len(*r.Products))
	for _, p := range *r.Products {
		out = append(out, entities.ShipmentProduct{
			Product:   strings.TrimSpace(p.Product),
			Name:      strings.TrimSpace(p.Name),
			Quantity:  p.Quantity,
			UnitPrice: p.UnitPrice,
		})
	}
	return out
}
