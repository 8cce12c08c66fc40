// Copyright (c) 2026 ERP Cell. All rights reserved.

package attendance_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erpcell/erpcell/internal/platform/apperr"
	"github.com/erpcell/erpcell/internal/records/attendance"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeRepository struct {
	written []*attendance.Entry
}

func (repository *fakeRepository) UpsertEntries(_ context.Context, entries []*attendance.Entry) error {
	repository.written = append(repository.written, entries...)
	return nil
}

func (repository *fakeRepository) GetSheet(_ context.Context, _ int64, _ string) ([]*attendance.Entry, error) {
	return nil, nil
}

func (repository *fakeRepository) SummarizeStudent(_ context.Context, _ int64) ([]*attendance.SubjectSummary, error) {
	return nil, nil
}

/*
TestService_MarkSheet writes a full sheet and verifies every row carries the
shared subject and date.
*/
func TestService_MarkSheet(t *testing.T) {
	repo := &fakeRepository{}
	service := attendance.NewService(repo, discardLogger())

	count, err := service.MarkSheet(context.Background(), attendance.MarkInput{
		SubjectID: 3,
		Date:      "2026-04-02",
		Entries: []attendance.MarkStatus{
			{StudentID: 1, Status: attendance.StatusPresent},
			{StudentID: 2, Status: attendance.StatusAbsent},
			{StudentID: 3, Status: attendance.StatusPresent},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 3, count)
	require.Len(t, repo.written, 3)
	for _, entry := range repo.written {
		assert.Equal(t, int64(3), entry.SubjectID)
		assert.Equal(t, "2026-04-02", entry.Date)
	}
	assert.Equal(t, attendance.StatusAbsent, repo.written[1].Status)
}

/*
TestService_MarkSheet_WholeSheetValidated proves that one bad row rejects the
entire sheet before anything is written.
*/
func TestService_MarkSheet_WholeSheetValidated(t *testing.T) {
	tests := []struct {
		name  string
		input attendance.MarkInput
	}{
		{
			"empty_sheet",
			attendance.MarkInput{SubjectID: 3, Date: "2026-04-02"},
		},
		{
			"unknown_status",
			attendance.MarkInput{
				SubjectID: 3, Date: "2026-04-02",
				Entries: []attendance.MarkStatus{
					{StudentID: 1, Status: attendance.StatusPresent},
					{StudentID: 2, Status: "Late"},
				},
			},
		},
		{
			"bad_student_id",
			attendance.MarkInput{
				SubjectID: 3, Date: "2026-04-02",
				Entries: []attendance.MarkStatus{
					{StudentID: 0, Status: attendance.StatusPresent},
				},
			},
		},
		{
			"impossible_date",
			attendance.MarkInput{
				SubjectID: 3, Date: "2026-02-30",
				Entries: []attendance.MarkStatus{
					{StudentID: 1, Status: attendance.StatusPresent},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepository{}
			service := attendance.NewService(repo, discardLogger())

			_, err := service.MarkSheet(context.Background(), tt.input)

			require.Error(t, err)
			assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
			assert.Empty(t, repo.written, "a rejected sheet must write nothing")
		})
	}
}

func TestService_GetSheet_Validation(t *testing.T) {
	service := attendance.NewService(&fakeRepository{}, discardLogger())

	_, err := service.GetSheet(context.Background(), 0, "2026-04-02")
	require.Error(t, err)

	_, err = service.GetSheet(context.Background(), 3, "not-a-date")
	require.Error(t, err)
}
