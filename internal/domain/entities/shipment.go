package entities

import (
	"time"

	"logistics_backoffice/internal/domain/finance"

	"github.com/shopspring/decimal"
)

// ShipmentStatus is a free-form enum: any member may follow any other.
type ShipmentStatus string

const (
	ShipmentStatusPending          ShipmentStatus = "pending"
	ShipmentStatusShipped          ShipmentStatus = "shipped"
	ShipmentStatusInTransit        ShipmentStatus = "in_transit"
	ShipmentStatusCustomsClearance ShipmentStatus = "customs_clearance"
	ShipmentStatusDelivered        ShipmentStatus = "delivered"
	ShipmentStatusCancelled        ShipmentStatus = "cancelled"
)

var ShipmentStatuses = []ShipmentStatus{
	ShipmentStatusPending,
	ShipmentStatusShipped,
	ShipmentStatusInTransit,
	ShipmentStatusCustomsClearance,
	ShipmentStatusDelivered,
	ShipmentStatusCancelled,
}

func (s ShipmentStatus) Valid() bool {
	for _, v := range ShipmentStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// ShipmentProduct is one ordered line of a shipment.
type ShipmentProduct struct {
	Product   string          `json:"product"`
	Name      string          `json:"name,omitempty"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// Shipment is a consignment of products moved by a transporter.
//
// Storage model (DynamoDB):
//   - PK: id
//   - shipment_id, batch_no and tracking_number are assigned on creation and never rewritten.
//
// TotalValue is derived from Products and is nil when there are no products.
type Shipment struct {
	ID                  string            `json:"id"`
	ShipmentID          string            `json:"shipmentId"`
	BatchNo             string            `json:"batchNo"`
	TrackingNumber      string            `json:"trackingNumber"`
	Transporter         string            `json:"transporter,omitempty"`
	Origin              string            `json:"origin"`
	Destination         string            `json:"destination"`
	Currency            string            `json:"currency"`
	Products            []ShipmentProduct `json:"products"`
	TotalValue          *decimal.Decimal  `json:"totalValue,omitempty"`
	Status              ShipmentStatus    `json:"status"`
	DepartureDate       *time.Time        `json:"departureDate,omitempty"`
	ExpectedArrivalDate *time.Time        `json:"expectedArrivalDate,omitempty"`
	Notes               string            `json:"notes,omitempty"`
	IsActive            bool              `json:"isActive"`
	CreatedAt           time.Time         `json:"createdAt"`
	UpdatedAt           time.Time         `json:"updatedAt"`

	// Populated on reads, never persisted.
	TransporterDetails *Transporter `json:"-"`
}

func (s Shipment) LineItems() []finance.LineItem {
	items := make([]finance.LineItem, 0, len(s.Products))
	for _, p := range s.Products {
		items = append(items, finance.LineItem{Quantity: p.Quantity, UnitPrice: p.UnitPrice})
	}
	return items
}

// ShipmentPatch lists the fields a client may change after creation.
type ShipmentPatch struct {
	Transporter         *string
	Origin              *string
	Destination         *string
	Currency            *string
	Products            *[]ShipmentProduct
	Status              *ShipmentStatus
	DepartureDate       *time.Time
	ExpectedArrivalDate *time.Time
	Notes               *string
}

func (p ShipmentPatch) Apply(s *Shipment) {
	if p.Transporter != nil {
		s.Transporter = *p.Transporter
	}
	if p.Origin != nil {
		s.Origin = *p.Origin
	}
	if p.Destination != nil {
		s.Destination = *p.Destination
	}
	if p.Currency != nil {
		s.Currency = *p.Currency
	}
	if p.Products != nil {
		s.Products = *p.Products
	}
	if p.Status != nil {
		s.Status = *p.Status
	}
	if p.DepartureDate != nil {
		s.DepartureDate = p.DepartureDate
	}
	if p.ExpectedArrivalDate != nil {
		s.ExpectedArrivalDate = p.ExpectedArrivalDate
	}
	if p.Notes != nil {
		s.Notes = *p.Notes
	}
}

// ShipmentAnalytics summarizes the active shipments.
type ShipmentAnalytics struct {
	TotalShipments       int                        `json:"totalShipments"`
	ByStatus             map[ShipmentStatus]int     `json:"byStatus"`
	TotalValueByCurrency map[string]decimal.Decimal `json:"totalValueByCurrency"`
	InTransitShipments   int                        `json:"inTransitShipments"`
	DeliveredShipments   int                        `json:"deliveredShipments"`
}
