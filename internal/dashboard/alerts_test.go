package dashboard

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOverdueCalibrationOnly(t *testing.T) {
	stats := Stats{Tools: ToolCounts{CalibrationOverdue: 3}}

	alerts := BuildAlerts(stats)
	require.Len(t, alerts, 1)
	require.Equal(t, SeverityError, alerts[0].Severity)
	require.Equal(t, 3, alerts[0].Count)
	require.Equal(t, "Calibration overdue", alerts[0].Title)
}

func TestHealthyInventorySuccessAlert(t *testing.T) {
	stats := Stats{
		Tools:     ToolCounts{Available: 5},
		Chemicals: ChemicalCounts{Available: 2},
	}

	alerts := BuildAlerts(stats)
	require.Len(t, alerts, 1)
	require.Equal(t, SeveritySuccess, alerts[0].Severity)
	require.Equal(t, 7, alerts[0].Count)
}

func TestSuccessSuppressedWhenProblemsExist(t *testing.T) {
	stats := Stats{
		Tools:     ToolCounts{Available: 5, CalibrationOverdue: 1},
		Chemicals: ChemicalCounts{Available: 2},
	}

	alerts := BuildAlerts(stats)
	for _, alert := range alerts {
		require.NotEqual(t, SeveritySuccess, alert.Severity)
	}
}

func TestZeroCountsEmitNothing(t *testing.T) {
	require.Empty(t, BuildAlerts(Stats{}))
}

func TestFixedPriorityOrdering(t *testing.T) {
	stats := Stats{
		Tools:     ToolCounts{CheckedOut: 4, InMaintenance: 2, CalibrationDueSoon: 3, CalibrationOverdue: 1},
		Chemicals: ChemicalCounts{LowStock: 6, OutOfStock: 2, ExpiringSoon: 1, Expired: 5},
		Kits:      KitCounts{PendingReorders: 7},
	}

	alerts := BuildAlerts(stats)
	require.Len(t, alerts, 9)

	lastRank := -1
	for _, alert := range alerts {
		rank := severityRank[alert.Severity]
		require.GreaterOrEqual(t, rank, lastRank, "alert %q out of order", alert.Title)
		lastRank = rank
	}
	require.Equal(t, "Calibration overdue", alerts[0].Title)
	require.Equal(t, "Tools checked out", alerts[8].Title)
}

func TestSortBySeverityReordersArbitraryInput(t *testing.T) {
	alerts := []Alert{
		{Severity: SeverityInfo, Title: "info-a"},
		{Severity: SeverityError, Title: "error-a"},
		{Severity: SeveritySuccess, Title: "success-a"},
		{Severity: SeverityWarning, Title: "warning-a"},
		{Severity: SeverityError, Title: "error-b"},
	}

	SortBySeverity(alerts)

	titles := make([]string, len(alerts))
	for i, alert := range alerts {
		titles[i] = alert.Title
	}
	require.Equal(t, []string{"error-a", "error-b", "warning-a", "info-a", "success-a"}, titles)
}

func TestAlertDescriptionsCarryCounts(t *testing.T) {
	stats := Stats{Chemicals: ChemicalCounts{Expired: 1250}}

	alerts := BuildAlerts(stats)
	require.Len(t, alerts, 1)
	require.Contains(t, alerts[0].Description, "1,250")
}
