package orders

import "time"

// Order is a purchase/replenishment request.
type Order struct {
	ID          int64       `json:"id"`
	Number      string      `json:"number"`
	Status      string      `json:"status"`
	RequestedBy int64       `json:"requested_by"`
	Items       []OrderItem `json:"items"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// OrderItem is one line of an order.
type OrderItem struct {
	ID          int64   `json:"id"`
	PartNumber  string  `json:"part_number"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
}

// OrderInput is the create form payload.
type OrderInput struct {
	Items []OrderItemInput `json:"items" validate:"required,min=1,dive"`
	Note  string           `json:"note" validate:"max=500"`
}

// OrderItemInput is one requested line.
type OrderItemInput struct {
	PartNumber  string  `json:"part_number" validate:"required,max=64"`
	Description string  `json:"description" validate:"max=300"`
	Quantity    float64 `json:"quantity" validate:"required,gt=0"`
	Unit        string  `json:"unit" validate:"required,max=16"`
}

// Order statuses understood by the client.
const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusOrdered   = "ordered"
	StatusReceived  = "received"
	StatusCancelled = "cancelled"
)
