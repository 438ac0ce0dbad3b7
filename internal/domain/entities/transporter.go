package entities

import "time"

// Transporter is a carrier company hired for shipments.
type Transporter struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	ContactPerson  string    `json:"contactPerson,omitempty"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email,omitempty"`
	VehicleNumbers []string  `json:"vehicleNumbers"`
	Routes         []string  `json:"routes"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type TransporterPatch struct {
	Name           *string
	ContactPerson  *string
	Phone          *string
	Email          *string
	VehicleNumbers *[]string
	Routes         *[]string
}

func (p TransporterPatch) Apply(t *Transporter) {
	setString(&t.Name, p.Name)
	setString(&t.ContactPerson, p.ContactPerson)
	setString(&t.Phone, p.Phone)
	setString(&t.Email, p.Email)
	if p.VehicleNumbers != nil {
		t.VehicleNumbers = *p.VehicleNumbers
	}
	if p.Routes != nil {
		t.Routes = *p.Routes
	}
}
