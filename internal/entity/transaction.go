package entity

import (
	"time"

	"github.com/google/uuid"
)

// Transaction represents a property deal for data transfer between layers.
type Transaction struct {
	ID                uuid.UUID  `json:"id"`
	Status            string     `json:"status"`
	PropertyAddress   string     `json:"property_address"`
	Address           string     `json:"address,omitempty"`
	City              string     `json:"city,omitempty"`
	State             string     `json:"state,omitempty"`
	ZipCode           string     `json:"zip_code,omitempty"`
	Price             *float64   `json:"price,omitempty"`
	CommissionPercent *float64   `json:"commission_percent,omitempty"`
	ClientName        string     `json:"client_name,omitempty"`
	SellerName        string     `json:"seller_name,omitempty"`
	ClosingDate       *time.Time `json:"closing_date,omitempty"`
	ContractDate      *time.Time `json:"contract_date,omitempty"`
	ListingDate       *time.Time `json:"listing_date,omitempty"`
	PropertyType      string     `json:"property_type,omitempty"`
	Bedrooms          *int       `json:"bedrooms,omitempty"`
	Bathrooms         *float64   `json:"bathrooms,omitempty"`
	SquareFootage     *int       `json:"square_footage,omitempty"`
	LotSize           string     `json:"lot_size,omitempty"`
	YearBuilt         *int       `json:"year_built,omitempty"`
	MLSNumber         string     `json:"mls_number,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}
