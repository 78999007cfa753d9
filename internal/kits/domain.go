package kits

import "time"

// Kit is a curated set of items staged for a given aircraft type.
type Kit struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	AircraftTypeID int64     `json:"aircraft_type_id"`
	Description    string    `json:"description"`
	Status         string    `json:"status"`
	ItemCount      int       `json:"item_count"`
	MissingCount   int       `json:"missing_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// KitInput is the create/edit form payload.
type KitInput struct {
	Name           string `json:"name" validate:"required,max=120"`
	AircraftTypeID int64  `json:"aircraft_type_id" validate:"required,gt=0"`
	Description    string `json:"description" validate:"max=300"`
}

// ReorderRequest asks for replenishment of a missing kit item.
type ReorderRequest struct {
	ItemID   int64  `json:"item_id" validate:"required,gt=0"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
	Note     string `json:"note" validate:"max=300"`
}
