package reports

import "time"

// Report kinds understood by the reporting endpoints.
const (
	KindTools     = "tools"
	KindChemicals = "chemicals"
	KindKits      = "kits"
	KindOrders    = "orders"
	KindAdmin     = "admin"
)

// Export formats supported by the backend.
const (
	FormatPDF   = "pdf"
	FormatExcel = "excel"
)

// Report is a generated snapshot for a single kind. Summary maps metric
// names to counts and Rows carries the tabular detail as returned by the
// backend.
type Report struct {
	Kind        string           `json:"kind"`
	GeneratedAt time.Time        `json:"generated_at"`
	Summary     map[string]int   `json:"summary"`
	Rows        []map[string]any `json:"rows"`
}

// Export is a downloaded report document.
type Export struct {
	Filename    string
	ContentType string
	Data        []byte
}
