package models

import (
	"strings"

	"tienda/pkg/apperror"
)

// Status is the lifecycle state of a supplier order.
type Status string

const (
	StatusPending   Status = "pending"
	StatusShipped   Status = "shipped"
	StatusReceived  Status = "received"
	StatusCancelled Status = "cancelled"
)

var statuses = []Status{StatusPending, StatusShipped, StatusReceived, StatusCancelled}

// Statuses returns every valid status in declaration order.
func Statuses() []Status {
	out := make([]Status, len(statuses))
	copy(out, statuses)
	return out
}

// Valid reports whether s is one of the declared statuses.
func (s Status) Valid() bool {
	for _, candidate := range statuses {
		if s == candidate {
			return true
		}
	}
	return false
}

func (s Status) String() string { return string(s) }

// ParseStatus converts raw text into a Status. Matching is exact: "Pending" is rejected.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", apperror.Validation(
			"invalid status, must be one of: "+StatusNames(),
			apperror.WithDetail("status", raw),
		)
	}
	return s, nil
}

// StatusNames lists the valid statuses in declaration order, comma separated.
func StatusNames() string {
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}
