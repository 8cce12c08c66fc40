// Copyright (c) 2026 ERP Cell. All rights reserved.

// Package fee tracks fee charges and payments per student.
//
// Amounts are validated as non-negative with an upper bound and stored as
// NUMERIC(9,2); they travel as plain JSON numbers.
package fee

import "time"

// Statuses a fee record can be in.
const (
	StatusPending = "Pending"
	StatusPaid    = "Paid"
)

var AllowedStatuses = []string{StatusPending, StatusPaid}

// Fee represents a single fee charge for a student.
type Fee struct {
	ID          int64     `json:"fee_id"`
	StudentID   int64     `json:"student_id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Status      string    `json:"status"`
	PaidDate    *string   `json:"paid_date"`
	CreatedAt   time.Time `json:"created_at"`
}

// History is a student's fee records together with the settled total.
type History struct {
	Fees      []*Fee  `json:"fees"`
	TotalPaid float64 `json:"total_paid"`
	TotalDue  float64 `json:"total_due"`
}

const (
	FieldStudent     = "student_id"
	FieldDescription = "description"
	FieldAmount      = "amount"
	FieldStatus      = "status"
	FieldPaidDate    = "paid_date"
)
