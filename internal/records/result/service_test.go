// Copyright (c) 2026 ERP Cell. All rights reserved.

package result_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erpcell/erpcell/internal/platform/apperr"
	"github.com/erpcell/erpcell/internal/records/result"
	"github.com/erpcell/erpcell/pkg/pointer"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeRepository records the last upserted result.
type fakeRepository struct {
	upserted *result.Result
	byID     int64
}

func (repository *fakeRepository) UpsertResult(_ context.Context, r *result.Result) error {
	repository.byID++
	r.ID = repository.byID
	repository.upserted = r
	return nil
}

func (repository *fakeRepository) ListByStudent(_ context.Context, studentID int64, semester int) ([]*result.Result, error) {
	return nil, nil
}

func (repository *fakeRepository) ListBySubject(_ context.Context, subjectID int64) ([]*result.Result, error) {
	return nil, nil
}

func TestDeriveGrade(t *testing.T) {
	tests := []struct {
		average float64
		grade   string
	}{
		{100, result.GradeAPlus},
		{90, result.GradeAPlus},
		{89.9, result.GradeA},
		{80, result.GradeA},
		{70, result.GradeB},
		{60, result.GradeC},
		{50, result.GradeD},
		{49.9, result.GradeFail},
		{0, result.GradeFail},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.grade, result.DeriveGrade(tt.average), "average %v", tt.average)
	}
}

/*
TestService_EnterMarks_DerivesGrade proves the grade is computed from the
present components and never taken from input.
*/
func TestService_EnterMarks_DerivesGrade(t *testing.T) {
	tests := []struct {
		name      string
		theory    *int
		practical *int
		wantGrade string
	}{
		{"both_components_averaged", pointer.To(80), pointer.To(100), result.GradeAPlus},
		{"theory_only", pointer.To(72), nil, result.GradeB},
		{"practical_only", nil, pointer.To(45), result.GradeFail},
		{"boundary_is_inclusive", pointer.To(90), pointer.To(90), result.GradeAPlus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepository{}
			service := result.NewService(repo, discardLogger())

			stored, err := service.EnterMarks(context.Background(), result.EnterInput{
				StudentID:      1,
				SubjectID:      2,
				ExamDate:       "2026-05-20",
				TheoryMarks:    tt.theory,
				PracticalMarks: tt.practical,
				Semester:       4,
			})

			require.NoError(t, err)
			assert.Equal(t, tt.wantGrade, stored.Grade)
			assert.Equal(t, stored, repo.upserted)
		})
	}
}

/*
TestService_EnterMarks_Validation covers the rejection paths: bad marks,
no components, bad semester, bad date.
*/
func TestService_EnterMarks_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input result.EnterInput
	}{
		{
			"no_components",
			result.EnterInput{StudentID: 1, SubjectID: 2, ExamDate: "2026-05-20", Semester: 4},
		},
		{
			"marks_over_100",
			result.EnterInput{StudentID: 1, SubjectID: 2, ExamDate: "2026-05-20", TheoryMarks: pointer.To(101), Semester: 4},
		},
		{
			"negative_marks",
			result.EnterInput{StudentID: 1, SubjectID: 2, ExamDate: "2026-05-20", TheoryMarks: pointer.To(-1), Semester: 4},
		},
		{
			"semester_out_of_range",
			result.EnterInput{StudentID: 1, SubjectID: 2, ExamDate: "2026-05-20", TheoryMarks: pointer.To(50), Semester: 9},
		},
		{
			"impossible_exam_date",
			result.EnterInput{StudentID: 1, SubjectID: 2, ExamDate: "2026-02-30", TheoryMarks: pointer.To(50), Semester: 4},
		},
		{
			"missing_student",
			result.EnterInput{SubjectID: 2, ExamDate: "2026-05-20", TheoryMarks: pointer.To(50), Semester: 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepository{}
			service := result.NewService(repo, discardLogger())

			_, err := service.EnterMarks(context.Background(), tt.input)

			require.Error(t, err)
			assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
			assert.Nil(t, repo.upserted, "invalid input must not reach storage")
		})
	}
}

func TestResult_Passed(t *testing.T) {
	assert.True(t, (&result.Result{Grade: result.GradeD}).Passed())
	assert.False(t, (&result.Result{Grade: result.GradeFail}).Passed())
}
