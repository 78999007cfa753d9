package dashboard

// ToolCounts aggregates tool statuses from the admin stats endpoint.
type ToolCounts struct {
	Available          int `json:"available"`
	CheckedOut         int `json:"checked_out"`
	InMaintenance      int `json:"in_maintenance"`
	CalibrationDueSoon int `json:"calibration_due_soon"`
	CalibrationOverdue int `json:"calibration_overdue"`
}

// ChemicalCounts aggregates chemical stock and expiry statuses.
type ChemicalCounts struct {
	Available    int `json:"available"`
	LowStock     int `json:"low_stock"`
	OutOfStock   int `json:"out_of_stock"`
	ExpiringSoon int `json:"expiring_soon"`
	Expired      int `json:"expired"`
}

// KitCounts aggregates kit statuses.
type KitCounts struct {
	Complete        int `json:"complete"`
	PendingReorders int `json:"pending_reorders"`
}

// Stats is the precomputed aggregate counts object returned by the backend.
type Stats struct {
	Tools     ToolCounts     `json:"tools"`
	Chemicals ChemicalCounts `json:"chemicals"`
	Kits      KitCounts      `json:"kits"`
}
