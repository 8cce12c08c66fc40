// Copyright (c) 2026 ERP Cell. All rights reserved.

// Package result stores exam marks and derives grades from them.
//
// Marks are optional pointers: a subject may have only a theory or only a
// practical component. The grade is always derived server-side from the
// average of the components that are present, never accepted from input.
package result

import "time"

// Result represents one student's outcome for a subject's exam.
type Result struct {
	ID             int64     `json:"result_id"`
	StudentID      int64     `json:"student_id"`
	SubjectID      int64     `json:"subject_id"`
	ExamDate       string    `json:"exam_date"`
	TheoryMarks    *int      `json:"theory_marks"`
	PracticalMarks *int      `json:"practical_marks"`
	Grade          string    `json:"grade"`
	Semester       int       `json:"semester"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	SubjectName *string `json:"subject_name,omitempty"`
}

// Passed reports whether the grade is a passing one.
func (r *Result) Passed() bool {
	return r.Grade != GradeFail
}

// Grades, best to worst.
const (
	GradeAPlus = "A+"
	GradeA     = "A"
	GradeB     = "B"
	GradeC     = "C"
	GradeD     = "D"
	GradeFail  = "F"
)

// DeriveGrade maps an average mark (0-100) to a letter grade.
func DeriveGrade(average float64) string {
	switch {
	case average >= 90:
		return GradeAPlus
	case average >= 80:
		return GradeA
	case average >= 70:
		return GradeB
	case average >= 60:
		return GradeC
	case average >= 50:
		return GradeD
	default:
		return GradeFail
	}
}

const (
	FieldStudent   = "student_id"
	FieldSubject   = "subject_id"
	FieldExamDate  = "exam_date"
	FieldTheory    = "theory_marks"
	FieldPractical = "practical_marks"
	FieldSemester  = "semester"

	maxSemester = 8
)
