package models

import (
	"fmt"
	"time"
)

// Status is the workflow state of a service item. Any status may follow any
// other; only membership in the set is checked.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusConference Status = "conference"
	StatusReview     Status = "review"
	StatusApproved   Status = "approved"
	StatusDelivered  Status = "delivered"
)

var statuses = []Status{
	StatusPending, StatusInProgress, StatusConference,
	StatusReview, StatusApproved, StatusDelivered,
}

// Statuses lists the workflow statuses in display order.
func Statuses() []Status {
	out := make([]Status, len(statuses))
	copy(out, statuses)
	return out
}

func (s Status) Valid() bool {
	for _, v := range statuses {
		if s == v {
			return true
		}
	}
	return false
}

// ParseStatus validates s. An empty string means pending.
func ParseStatus(s string) (Status, error) {
	if s == "" {
		return StatusPending, nil
	}
	st := Status(s)
	if !st.Valid() {
		return "", fmt.Errorf("unknown status %q", s)
	}
	return st, nil
}

// Workflow is the set of fields written by a workflow save. Nil dates are
// stored as NULL.
type Workflow struct {
	Status                Status
	ExecutorID            *string
	ReceptionDate         *time.Time
	InternalDeadline      *time.Time
	ClientDeadline        *time.Time
	StartReviewDate       *time.Time
	EndReviewDate         *time.Time
	SupervisorObservation *string
	ClientApprovalDate    *time.Time
	ArtEmissionDate       *time.Time
	InvoiceEmissionDate   *time.Time
	BillingDeadline       *time.Time
}

// ServiceItem is one line of a contract (an "OS").
type ServiceItem struct {
	ID          string
	ContractID  string
	Description string
	Unit        string
	Quantity    float64
	UnitPrice   float64
	TotalPrice  float64
	Date        time.Time
	UserCreated string

	Workflow

	// MeasuredTotal is filled by listings: the sum of measured quantities.
	MeasuredTotal float64
}

// Balance is the contracted quantity not yet measured. It goes negative on
// over-measurement.
func (i *ServiceItem) Balance() float64 {
	return i.Quantity - i.MeasuredTotal
}
