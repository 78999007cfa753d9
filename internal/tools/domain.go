package tools

import "time"

// Tool represents a serialized tool subject to calibration tracking.
type Tool struct {
	ID              int64      `json:"id"`
	ToolNumber      string     `json:"tool_number"`
	SerialNumber    string     `json:"serial_number"`
	Description     string     `json:"description"`
	Condition       string     `json:"condition"`
	Status          string     `json:"status"`
	WarehouseID     int64      `json:"warehouse_id"`
	CalibrationDue  *time.Time `json:"calibration_due,omitempty"`
	LastCalibration *time.Time `json:"last_calibration,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// ToolInput is the create/edit form payload.
type ToolInput struct {
	ToolNumber     string     `json:"tool_number" validate:"required,max=64"`
	SerialNumber   string     `json:"serial_number" validate:"required,max=64"`
	Description    string     `json:"description" validate:"required,max=300"`
	Condition      string     `json:"condition" validate:"omitempty,oneof=new good fair poor"`
	WarehouseID    int64      `json:"warehouse_id" validate:"required,gt=0"`
	CalibrationDue *time.Time `json:"calibration_due,omitempty"`
}

// CalibrationInput records a completed calibration.
type CalibrationInput struct {
	PerformedAt time.Time  `json:"performed_at" validate:"required"`
	NextDue     *time.Time `json:"next_due,omitempty"`
	Notes       string     `json:"notes" validate:"max=500"`
}
