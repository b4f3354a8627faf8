package repo

import (
	"context"
	"testing"

	"github.com/bizplatform/pmcore/internal/modules/model"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRepo_UpsertOverwritesSameDay(t *testing.T) {
	d := newTestDB(t)
	ctx := context.Background()
	owner := seedUser(t, d, "owner", "")
	p := seedProject(t, d, "PRJ-S", owner)
	r := NewSnapshotRepo(d)

	first := &model.ProjectMetricsSnapshot{ProjectID: p.ID, SnapshotDate: day("2025-01-10"), TasksTotal: 4, TasksCompleted: 1, HealthScore: 90, CPI: decimal.NewFromInt(1), SPI: decimal.NewFromInt(1)}
	require.NoError(t, r.Upsert(ctx, first))
	firstID := first.ID

	second := &model.ProjectMetricsSnapshot{ProjectID: p.ID, SnapshotDate: day("2025-01-10"), TasksTotal: 4, TasksCompleted: 3, HealthScore: 70, CPI: decimal.RequireFromString("0.8"), SPI: decimal.NewFromInt(1)}
	require.NoError(t, r.Upsert(ctx, second))

	assert.Equal(t, firstID, second.ID, "same row survives")
	assert.Equal(t, 3, second.TasksCompleted)

	var count int64
	require.NoError(t, d.Model(&model.ProjectMetricsSnapshot{}).Where("project_id = ?", p.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	got, err := r.ListRange(ctx, p.ID, day("2025-01-01"), day("2025-01-31"))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 70, got[0].HealthScore)
	assert.True(t, decimal.RequireFromString("0.8").Equal(got[0].CPI))
}

func TestSnapshotRepo_ListRangeAscending(t *testing.T) {
	d := newTestDB(t)
	ctx := context.Background()
	owner := seedUser(t, d, "owner", "")
	p := seedProject(t, d, "PRJ-S", owner)
	other := seedProject(t, d, "PRJ-O", owner)
	r := NewSnapshotRepo(d)

	for _, s := range []string{"2025-01-20", "2025-01-05", "2024-12-01", "2025-01-12"} {
		require.NoError(t, r.Upsert(ctx, &model.ProjectMetricsSnapshot{ProjectID: p.ID, SnapshotDate: day(s)}))
	}
	require.NoError(t, r.Upsert(ctx, &model.ProjectMetricsSnapshot{ProjectID: other.ID, SnapshotDate: day("2025-01-06")}))

	got, err := r.ListRange(ctx, p.ID, day("2025-01-01"), day("2025-01-20"))
	require.NoError(t, err)

	dates := make([]string, 0, len(got))
	for _, s := range got {
		dates = append(dates, s.SnapshotDate.Format(model.DateLayout))
	}
	assert.Equal(t, []string{"2025-01-05", "2025-01-12", "2025-01-20"}, dates)
}

func TestSnapshotRepo_UpsertRepeatedOverwrites(t *testing.T) {
	d := newTestDB(t)
	ctx := context.Background()
	owner := seedUser(t, d, "owner", "")
	p := seedProject(t, d, "PRJ-R", owner)
	r := NewSnapshotRepo(d)

	var firstID uuid.UUID
	for i, health := range []int{90, 70, 55} {
		s := &model.ProjectMetricsSnapshot{
			ID:           uuid.New(),
			ProjectID:    p.ID,
			SnapshotDate: day("2025-01-10"),
			HealthScore:  health,
		}
		require.NoError(t, r.Upsert(ctx, s), "write %d", i)
		if i == 0 {
			firstID = s.ID
		}
		assert.Equal(t, firstID, s.ID)
		assert.Equal(t, health, s.HealthScore)
	}

	got, err := r.ListRange(ctx, p.ID, day("2025-01-10"), day("2025-01-10"))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 55, got[0].HealthScore)
	assert.Equal(t, firstID, got[0].ID)
}
