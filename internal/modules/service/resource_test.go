package service

import (
	"context"
	"testing"

	"github.com/bizplatform/pmcore/internal/analytics"
	"github.com/bizplatform/pmcore/internal/modules/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestResourceService_Create(t *testing.T) {
	tests := []struct {
		name      string
		in        CreateResourceInput
		wantField string
		wantHours float64
		wantAvail float64
	}{
		{name: "defaults", in: CreateResourceInput{Name: "Ana"}, wantHours: 8, wantAvail: 100},
		{name: "part time", in: CreateResourceInput{Name: "Ben", WorkingHoursPerDay: 6, AvailabilityPercentage: 50}, wantHours: 6, wantAvail: 50},
		{name: "empty name", in: CreateResourceInput{}, wantField: "name"},
		{name: "too many hours", in: CreateResourceInput{Name: "x", WorkingHoursPerDay: 25}, wantField: "working_hours_per_day"},
		{name: "over availability", in: CreateResourceInput{Name: "x", AvailabilityPercentage: 120}, wantField: "availability_percentage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &MockResourceRepo{}
			r.On("Create", mock.Anything, mock.Anything).Return(nil).Maybe()

			svc := NewResourceService(r, &MockProjectRepo{})
			got, err := svc.Create(context.Background(), tt.in)
			if tt.wantField != "" {
				var cfgErr *ConfigurationError
				require.ErrorAs(t, err, &cfgErr)
				assert.Equal(t, tt.wantField, cfgErr.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHours, got.WorkingHoursPerDay)
			assert.Equal(t, tt.wantAvail, got.AvailabilityPercentage)
		})
	}
}

func TestResourceService_Assign(t *testing.T) {
	resourceID, projectID := uuid.New(), uuid.New()

	t.Run("end before start", func(t *testing.T) {
		svc := NewResourceService(&MockResourceRepo{}, &MockProjectRepo{})
		_, err := svc.Assign(context.Background(), resourceID, CreateAssignmentInput{
			ProjectID: projectID, StartDate: day("2025-02-10"), EndDate: day("2025-02-09"), Hours: 8,
		})
		var cfgErr *ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "end_date", cfgErr.Field)
	})

	t.Run("unknown project", func(t *testing.T) {
		r := &MockResourceRepo{}
		r.On("Get", mock.Anything, resourceID).Return(&model.Resource{ID: resourceID}, nil)
		projects := &MockProjectRepo{}
		projects.On("Get", mock.Anything, projectID).Return(nil, ErrNotFound)

		svc := NewResourceService(r, projects)
		_, err := svc.Assign(context.Background(), resourceID, CreateAssignmentInput{
			ProjectID: projectID, StartDate: day("2025-02-10"), EndDate: day("2025-02-14"), Hours: 8,
		})
		var cfgErr *ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "project_id", cfgErr.Field)
		r.AssertNotCalled(t, "CreateAssignment", mock.Anything, mock.Anything)
	})

	t.Run("stored", func(t *testing.T) {
		r := &MockResourceRepo{}
		r.On("Get", mock.Anything, resourceID).Return(&model.Resource{ID: resourceID}, nil)
		r.On("CreateAssignment", mock.Anything, mock.MatchedBy(func(a *model.ResourceAssignment) bool {
			return a.ResourceID == resourceID && a.ProjectID == projectID && a.Hours == 16
		})).Return(nil)
		projects := &MockProjectRepo{}
		projects.On("Get", mock.Anything, projectID).Return(&model.Project{ID: projectID}, nil)

		svc := NewResourceService(r, projects)
		_, err := svc.Assign(context.Background(), resourceID, CreateAssignmentInput{
			ProjectID: projectID, StartDate: day("2025-02-10"), EndDate: day("2025-02-11"), Hours: 16,
		})
		require.NoError(t, err)
		r.AssertExpectations(t)
	})
}

func TestResourceService_Capacity(t *testing.T) {
	busy := model.Resource{ID: uuid.New(), Name: "Ana", WorkingHoursPerDay: 8, AvailabilityPercentage: 100}
	idle := model.Resource{ID: uuid.New(), Name: "Ben", WorkingHoursPerDay: 8, AvailabilityPercentage: 100}
	start, end := day("2025-02-10"), day("2025-02-14")

	r := &MockResourceRepo{}
	r.On("List", mock.Anything).Return([]model.Resource{busy, idle}, nil)
	r.On("ListAssignments", mock.Anything, busy.ID, start, end).Return([]model.ResourceAssignment{
		{ResourceID: busy.ID, StartDate: start, EndDate: end, Hours: 44},
	}, nil)
	r.On("ListAssignments", mock.Anything, idle.ID, start, end).Return([]model.ResourceAssignment{}, nil)

	svc := NewResourceService(r, &MockProjectRepo{})
	got, err := svc.Capacity(context.Background(), start, end)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "Ana", got[0].Name)
	assert.Equal(t, 40.0, got[0].AvailableHours)
	assert.Equal(t, 110.0, got[0].Percentage)
	assert.Equal(t, analytics.CapacityOverallocated, got[0].Capacity)
	assert.Equal(t, analytics.CapacityAvailable, got[1].Capacity)
}
