package warehouses

import "time"

// Warehouse represents a storage location for chemicals, tools and kits.
type Warehouse struct {
	ID        int64     `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WarehouseInput is the create/edit form payload.
type WarehouseInput struct {
	Code    string `json:"code" validate:"required,max=16"`
	Name    string `json:"name" validate:"required,max=120"`
	Address string `json:"address" validate:"max=300"`
}
