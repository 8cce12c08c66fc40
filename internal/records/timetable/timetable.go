// Copyright (c) 2026 ERP Cell. All rights reserved.

// Package timetable manages the weekly class schedule.
package timetable

// Days classes can be scheduled on.
var AllowedDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// Entry represents one scheduled class slot.
type Entry struct {
	ID        int64  `json:"entry_id"`
	SubjectID int64  `json:"subject_id"`
	FacultyID int64  `json:"faculty_id"`
	DayOfWeek string `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Location  string `json:"location"`

	// Joined on reads.
	SubjectName *string `json:"subject_name,omitempty"`
	FacultyName *string `json:"faculty_name,omitempty"`
}

// Filter narrows schedule listings.
type Filter struct {
	DeptID    int64  // 0 means all, matched through the subject
	Semester  int    // 0 means all
	Day       string // empty means all
	FacultyID int64  // 0 means all
}

const (
	FieldSubject  = "subject_id"
	FieldFaculty  = "faculty_id"
	FieldDay      = "day_of_week"
	FieldStart    = "start_time"
	FieldEnd      = "end_time"
	FieldLocation = "location"
)
