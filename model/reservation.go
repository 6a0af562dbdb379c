package model

import (
	"time"

	"gorm.io/datatypes"
)

const (
	StatusAvailable = "available"
	StatusReserved  = "reserved"
	StatusBlocked   = "blocked"
	StatusPending   = "pending"
)

type Customer struct {
	FullName  string   `json:"fullName"`
	BirthDate string   `json:"birthDate"`
	Cpf       string   `json:"cpf"`
	Phone     string   `json:"phone"`
	Guests    []string `json:"guests"`
	Timestamp int64    `json:"timestamp"`
	Receipt   string   `json:"receipt,omitempty"`
	Age       string   `json:"age"`
}

// Reservation is one occupied or locked spot. A spot with no row is available.
type Reservation struct {
	ID        string                        `gorm:"primaryKey" json:"id"`
	Day       string                        `gorm:"not null;index" json:"day"`
	Type      string                        `gorm:"not null" json:"type"`
	Number    string                        `gorm:"not null" json:"number"`
	Status    string                        `gorm:"not null" json:"status"`
	Price     float64                       `json:"price"`
	ExpiresAt *int64                        `json:"expires_at,omitempty"`
	HeldBy    string                        `json:"heldBy,omitempty"`
	Customer  datatypes.JSONType[*Customer] `json:"customer"`
	CreatedAt time.Time                     `json:"createdAt"`
	UpdatedAt time.Time                     `json:"updatedAt"`
}

func (r Reservation) Spot() SpotID {
	return SpotID{Day: r.Day, Type: r.Type, Number: r.Number}
}

func (r Reservation) CustomerData() *Customer {
	return r.Customer.Data()
}

// Public strips the customer record and hold token for anonymous viewers.
func (r Reservation) Public() Reservation {
	r.Customer = datatypes.NewJSONType[*Customer](nil)
	r.HeldBy = ""
	return r
}

// Expired reports whether a pending hold has lapsed at now (unix millis).
func (r Reservation) Expired(nowMillis int64) bool {
	return r.Status == StatusPending && r.ExpiresAt != nil && *r.ExpiresAt < nowMillis
}

// GuestForm is what the customer types before paying. Field names line up with
// Customer so the form can be copied over.
type GuestForm struct {
	FullName  string `json:"name" form:"name" validate:"required"`
	BirthDate string `json:"birth" form:"birth"`
	Cpf       string `json:"cpf" form:"cpf"`
	Phone     string `json:"phone" form:"phone" validate:"required"`
	GuestList string `json:"guests" form:"guests"`
	Age       string `json:"age" form:"age" validate:"required,numeric"`
}

type Receipt struct {
	Data []byte
}
