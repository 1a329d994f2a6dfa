package services

import (
	"context"
	"net/http"
	"testing"

	apperrors "nexustech/errors"
	"nexustech/models"
	"nexustech/services/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorkService(t *testing.T) *WorkService {
	return NewWorkService(WorkServiceOptions{DB: newTestDB(t), Logger: logger.Nop{}})
}

func workEntry(email, name, date string, hours float64) *models.WorkLog {
	return &models.WorkLog{
		EmployeeEmail: email,
		EmployeeName:  name,
		Task:          "Sales",
		HoursWorked:   hours,
		WorkedDate:    date,
	}
}

func TestSubmitWorkRejectsSameDay(t *testing.T) {
	ctx := context.Background()
	work := newTestWorkService(t)

	require.NoError(t, work.SubmitWork(ctx, workEntry("emp@example.com", "Emp", "2024-03-01", 8)))

	err := work.SubmitWork(ctx, workEntry("EMP@example.com", "Emp", "2024-03-01", 4))
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperrors.GetAppError(err).Status())

	// another day or another employee is fine
	require.NoError(t, work.SubmitWork(ctx, workEntry("emp@example.com", "Emp", "2024-03-02", 8)))
	require.NoError(t, work.SubmitWork(ctx, workEntry("other@example.com", "Other", "2024-03-01", 8)))

	entries, err := work.ListWork(ctx, "emp@example.com")
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestSubmitWorkValidation(t *testing.T) {
	ctx := context.Background()
	work := newTestWorkService(t)

	tests := []struct {
		name  string
		entry *models.WorkLog
	}{
		{"zero hours", workEntry("emp@example.com", "Emp", "2024-03-01", 0)},
		{"too many hours", workEntry("emp@example.com", "Emp", "2024-03-01", 25)},
		{"bad date", workEntry("emp@example.com", "Emp", "01/03/2024", 8)},
		{"no task", &models.WorkLog{EmployeeEmail: "emp@example.com", HoursWorked: 1, WorkedDate: "2024-03-01"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := work.SubmitWork(ctx, tt.entry)
			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, apperrors.GetAppError(err).Status())
		})
	}
}

func TestUpdateWork(t *testing.T) {
	ctx := context.Background()
	work := newTestWorkService(t)

	first := workEntry("emp@example.com", "Emp", "2024-03-01", 8)
	require.NoError(t, work.SubmitWork(ctx, first))
	second := workEntry("emp@example.com", "Emp", "2024-03-02", 8)
	require.NoError(t, work.SubmitWork(ctx, second))

	t.Run("replaces own entry", func(t *testing.T) {
		updated, err := work.UpdateWork(ctx, first.ID, "emp@example.com", workEntry("", "", "2024-03-03", 6))
		require.NoError(t, err)
		assert.Equal(t, "2024-03-03", updated.WorkedDate)
		assert.Equal(t, "Emp", updated.EmployeeName)
		assert.Equal(t, 6.0, updated.HoursWorked)
	})

	t.Run("creates when absent", func(t *testing.T) {
		created, err := work.UpdateWork(ctx, 500, "emp@example.com", workEntry("", "Emp", "2024-03-10", 2))
		require.NoError(t, err)
		assert.EqualValues(t, 500, created.ID)

		entries, err := work.ListWork(ctx, "emp@example.com")
		require.NoError(t, err)
		assert.Len(t, entries, 3)
	})

	t.Run("someone else's entry is forbidden", func(t *testing.T) {
		_, err := work.UpdateWork(ctx, second.ID, "intruder@example.com", workEntry("", "X", "2024-04-01", 1))
		assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeForbidden))
	})

	t.Run("date clash is a conflict", func(t *testing.T) {
		_, err := work.UpdateWork(ctx, second.ID, "emp@example.com", workEntry("", "Emp", "2024-03-03", 1))
		assert.Equal(t, http.StatusConflict, apperrors.GetAppError(err).Status())
	})
}

func TestDeleteWork(t *testing.T) {
	ctx := context.Background()
	work := newTestWorkService(t)

	entry := workEntry("emp@example.com", "Emp", "2024-03-01", 8)
	require.NoError(t, work.SubmitWork(ctx, entry))

	_, err := work.DeleteWork(ctx, entry.ID, "other@example.com")
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeForbidden))

	result, err := work.DeleteWork(ctx, entry.ID, "emp@example.com")
	require.NoError(t, err)
	assert.EqualValues(t, 1, result.Deleted)

	result, err = work.DeleteWork(ctx, entry.ID, "emp@example.com")
	require.NoError(t, err)
	assert.EqualValues(t, 0, result.Deleted)
}

func TestWorkSummary(t *testing.T) {
	ctx := context.Background()
	work := newTestWorkService(t)

	require.NoError(t, work.SubmitWork(ctx, workEntry("john@example.com", "John Smith", "2024-03-01", 8)))
	require.NoError(t, work.SubmitWork(ctx, workEntry("john@example.com", "John Smith", "2024-03-02", 4)))
	require.NoError(t, work.SubmitWork(ctx, workEntry("john@example.com", "John Smith", "2024-04-01", 5)))
	require.NoError(t, work.SubmitWork(ctx, workEntry("jose@example.com", "José Ortega", "2024-03-01", 7)))

	tests := []struct {
		name       string
		month      string
		filter     string
		wantHours  float64
		wantCount  int
		wantResult bool
	}{
		{"everything", "", "", 24, 4, true},
		{"by month number", "3", "", 19, 3, true},
		{"by month name", "april", "", 5, 1, true},
		{"by name", "", "john smith", 17, 3, true},
		{"accent insensitive", "", "jose ortega", 7, 1, true},
		{"close typo is not a match", "", "Jon Smith", 0, 0, false},
		{"month and name", "March", "John Smith", 12, 2, true},
		{"no match", "12", "", 0, 0, false},
		{"unknown name", "", "Margaret Hamilton", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary, err := work.Summary(ctx, tt.month, tt.filter)
			require.NoError(t, err)
			if !tt.wantResult {
				assert.Empty(t, summary)
				assert.NotNil(t, summary)
				return
			}
			require.Len(t, summary, 1)
			assert.InDelta(t, tt.wantHours, summary[0].TotalHours, 0.001)
			assert.Len(t, summary[0].Entries, tt.wantCount)
		})
	}

	_, err := work.Summary(ctx, "Smarch", "")
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeValidation))
}

func TestWorkSummaryNameWithoutEntries(t *testing.T) {
	ctx := context.Background()
	work := newTestWorkService(t)

	require.NoError(t, work.SubmitWork(ctx, workEntry("anna@example.com", "Anna Lee", "2024-03-01", 8)))

	summary, err := work.Summary(ctx, "", "Ann Lee")
	require.NoError(t, err)
	assert.NotNil(t, summary)
	assert.Empty(t, summary)

	suggestion, err := work.SuggestName(ctx, "Ann Lee")
	require.NoError(t, err)
	assert.Equal(t, "Anna Lee", suggestion)

	suggestion, err = work.SuggestName(ctx, "anna  LEE")
	require.NoError(t, err)
	assert.Empty(t, suggestion)

	suggestion, err = work.SuggestName(ctx, "Margaret Hamilton")
	require.NoError(t, err)
	assert.Empty(t, suggestion)
}
