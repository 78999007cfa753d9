package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/shared"
	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/store"
)

type stubRepo struct {
	calls int
	stats Stats
}

func (r *stubRepo) GetStats(context.Context) (Stats, error) {
	r.calls++
	return r.stats, nil
}

func TestStatsCachedUnderStatsTag(t *testing.T) {
	repo := &stubRepo{stats: Stats{Tools: ToolCounts{Available: 12}}}
	cache := store.New(time.Minute)
	svc := NewService(repo, cache)
	ctx := context.Background()

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, 12, stats.Tools.Available)

	_, err = svc.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, repo.calls)

	cache.Invalidate(shared.TagStats)

	_, err = svc.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, repo.calls)
}

func TestAlertsDeriveFromCurrentStats(t *testing.T) {
	repo := &stubRepo{stats: Stats{
		Tools:     ToolCounts{CalibrationOverdue: 2},
		Chemicals: ChemicalCounts{LowStock: 4},
	}}
	svc := NewService(repo, store.New(time.Minute))

	alerts, err := svc.Alerts(context.Background())
	require.NoError(t, err)
	require.Len(t, alerts, 2)
	require.Equal(t, SeverityError, alerts[0].Severity)
	require.Equal(t, 2, alerts[0].Count)
	require.Equal(t, SeverityWarning, alerts[1].Severity)
}

func TestWatchFiresOnStatsInvalidation(t *testing.T) {
	repo := &stubRepo{stats: Stats{Chemicals: ChemicalCounts{Expired: 1}}}
	cache := store.New(time.Minute)
	svc := NewService(repo, cache)

	var got [][]Alert
	cancel := svc.Watch(context.Background(), func(alerts []Alert, err error) {
		require.NoError(t, err)
		got = append(got, alerts)
	})
	defer cancel()

	cache.Invalidate(shared.TagStats)
	require.Len(t, got, 1)
	require.Len(t, got[0], 1)
	require.Equal(t, "Expired chemicals", got[0][0].Title)

	cancel()
	cache.Invalidate(shared.TagStats)
	require.Len(t, got, 1, "cancelled watchers receive nothing")
}
