package repo

import (
	"context"
	"testing"

	"github.com/bizplatform/pmcore/internal/modules/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceRepo_ListAssignmentsOverlapping(t *testing.T) {
	d := newTestDB(t)
	ctx := context.Background()
	owner := seedUser(t, d, "owner", "")
	p := seedProject(t, d, "PRJ-R", owner)
	r := NewResourceRepo(d)

	res := &model.Resource{Name: "Dana", WorkingHoursPerDay: 8, AvailabilityPercentage: 100}
	require.NoError(t, r.Create(ctx, res))
	otherRes := &model.Resource{Name: "Eli", WorkingHoursPerDay: 6, AvailabilityPercentage: 50}
	require.NoError(t, r.Create(ctx, otherRes))

	windows := [][2]string{
		{"2024-12-20", "2024-12-31"}, // before
		{"2024-12-28", "2025-01-03"}, // straddles start
		{"2025-01-05", "2025-01-06"}, // inside
		{"2025-01-10", "2025-01-20"}, // touches end
		{"2025-01-11", "2025-01-20"}, // after
	}
	for _, w := range windows {
		require.NoError(t, r.CreateAssignment(ctx, &model.ResourceAssignment{ResourceID: res.ID, ProjectID: p.ID, StartDate: day(w[0]), EndDate: day(w[1]), Hours: 10}))
	}
	require.NoError(t, r.CreateAssignment(ctx, &model.ResourceAssignment{ResourceID: otherRes.ID, ProjectID: p.ID, StartDate: day("2025-01-05"), EndDate: day("2025-01-06"), Hours: 10}))

	got, err := r.ListAssignments(ctx, res.ID, day("2025-01-01"), day("2025-01-10"))
	require.NoError(t, err)
	starts := []string{}
	for _, a := range got {
		starts = append(starts, a.StartDate.Format(model.DateLayout))
	}
	assert.Equal(t, []string{"2024-12-28", "2025-01-05", "2025-01-10"}, starts)

	all, err := r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, "Dana", all[0].Name)

	_, err = r.Get(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}
