package entities

import "time"

type Owner struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CNIC      string    `json:"cnic,omitempty"`
	Address   string    `json:"address,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type OwnerPatch struct {
	Name    *string
	Email   *string
	Phone   *string
	CNIC    *string
	Address *string
}

func (p OwnerPatch) Apply(o *Owner) {
	setString(&o.Name, p.Name)
	setString(&o.Email, p.Email)
	setString(&o.Phone, p.Phone)
	setString(&o.CNIC, p.CNIC)
	setString(&o.Address, p.Address)
}
