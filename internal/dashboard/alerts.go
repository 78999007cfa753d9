package dashboard

import (
	"sort"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Severity classifies an alert for display.
type Severity string

// Alert severities, ordered error < warning < info < success.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
)

var severityRank = map[Severity]int{
	SeverityError:   0,
	SeverityWarning: 1,
	SeverityInfo:    2,
	SeveritySuccess: 3,
}

// Alert is one display record derived from inventory counts.
type Alert struct {
	Severity    Severity `json:"severity"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Count       int      `json:"count,omitempty"`
	Link        string   `json:"link"`
}

var printer = message.NewPrinter(language.English)

// BuildAlerts converts aggregate counts into a prioritized alert list. Rules
// are evaluated in a fixed priority sequence and each fires only when its
// count is greater than zero, so the result already orders errors before
// warnings before info. A single "inventory healthy" success alert is
// emitted when nothing fired and available stock exists.
func BuildAlerts(stats Stats) []Alert {
	var alerts []Alert
	emit := func(severity Severity, count int, title, description, link string) {
		if count <= 0 {
			return
		}
		alerts = append(alerts, Alert{
			Severity:    severity,
			Title:       title,
			Description: description,
			Count:       count,
			Link:        link,
		})
	}

	emit(SeverityError, stats.Tools.CalibrationOverdue,
		"Calibration overdue",
		printer.Sprintf("%d tools are overdue for calibration", stats.Tools.CalibrationOverdue),
		"/tools?filter=calibration_overdue")
	emit(SeverityError, stats.Chemicals.Expired,
		"Expired chemicals",
		printer.Sprintf("%d chemicals are past their expiration date", stats.Chemicals.Expired),
		"/chemicals?filter=expired")
	emit(SeverityError, stats.Chemicals.OutOfStock,
		"Out of stock",
		printer.Sprintf("%d chemicals are out of stock", stats.Chemicals.OutOfStock),
		"/chemicals?filter=out_of_stock")

	emit(SeverityWarning, stats.Tools.CalibrationDueSoon,
		"Calibration due soon",
		printer.Sprintf("%d tools need calibration soon", stats.Tools.CalibrationDueSoon),
		"/tools?filter=calibration_due")
	emit(SeverityWarning, stats.Chemicals.LowStock,
		"Low stock",
		printer.Sprintf("%d chemicals are running low", stats.Chemicals.LowStock),
		"/chemicals?filter=low_stock")
	emit(SeverityWarning, stats.Chemicals.ExpiringSoon,
		"Expiring soon",
		printer.Sprintf("%d chemicals expire soon", stats.Chemicals.ExpiringSoon),
		"/chemicals?filter=expiring_soon")

	emit(SeverityInfo, stats.Kits.PendingReorders,
		"Pending kit reorders",
		printer.Sprintf("%d kit items await reorder", stats.Kits.PendingReorders),
		"/kits?filter=reorder")
	emit(SeverityInfo, stats.Tools.InMaintenance,
		"Tools in maintenance",
		printer.Sprintf("%d tools are in maintenance", stats.Tools.InMaintenance),
		"/tools?filter=maintenance")
	emit(SeverityInfo, stats.Tools.CheckedOut,
		"Tools checked out",
		printer.Sprintf("%d tools are currently checked out", stats.Tools.CheckedOut),
		"/tools?filter=checked_out")

	if len(alerts) == 0 {
		healthy := stats.Tools.Available + stats.Chemicals.Available
		emit(SeveritySuccess, healthy,
			"Inventory healthy",
			printer.Sprintf("%d items available with no outstanding issues", healthy),
			"/dashboard")
	}

	return alerts
}

// SortBySeverity orders alerts error < warning < info < success, keeping the
// construction order within each severity.
func SortBySeverity(alerts []Alert) {
	sort.SliceStable(alerts, func(i, j int) bool {
		return severityRank[alerts[i].Severity] < severityRank[alerts[j].Severity]
	})
}
