package chemicals

import "time"

// Chemical represents a tracked chemical lot.
type Chemical struct {
	ID             int64      `json:"id"`
	PartNumber     string     `json:"part_number"`
	LotNumber      string     `json:"lot_number"`
	Description    string     `json:"description"`
	Manufacturer   string     `json:"manufacturer"`
	Quantity       float64    `json:"quantity"`
	Unit           string     `json:"unit"`
	WarehouseID    int64      `json:"warehouse_id"`
	ReorderLevel   float64    `json:"reorder_level"`
	ExpirationDate *time.Time `json:"expiration_date,omitempty"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// ChemicalInput is the create/edit form payload.
type ChemicalInput struct {
	PartNumber     string     `json:"part_number" validate:"required,max=64"`
	LotNumber      string     `json:"lot_number" validate:"required,max=64"`
	Description    string     `json:"description" validate:"required,max=300"`
	Manufacturer   string     `json:"manufacturer" validate:"max=120"`
	Quantity       float64    `json:"quantity" validate:"gte=0"`
	Unit           string     `json:"unit" validate:"required,max=16"`
	WarehouseID    int64      `json:"warehouse_id" validate:"required,gt=0"`
	ReorderLevel   float64    `json:"reorder_level" validate:"gte=0"`
	ExpirationDate *time.Time `json:"expiration_date,omitempty"`
}

// IssueInput records handing out a quantity of a chemical.
type IssueInput struct {
	Quantity  float64 `json:"quantity" validate:"required,gt=0"`
	IssuedTo  string  `json:"issued_to" validate:"required,max=120"`
	WorkOrder string  `json:"work_order" validate:"max=64"`
	Purpose   string  `json:"purpose" validate:"max=300"`
}

// Issuance is one history entry of a chemical being issued.
type Issuance struct {
	ID         int64     `json:"id"`
	ChemicalID int64     `json:"chemical_id"`
	Quantity   float64   `json:"quantity"`
	IssuedTo   string    `json:"issued_to"`
	IssuedBy   int64     `json:"issued_by"`
	WorkOrder  string    `json:"work_order,omitempty"`
	Purpose    string    `json:"purpose,omitempty"`
	IssuedAt   time.Time `json:"issued_at"`
}
