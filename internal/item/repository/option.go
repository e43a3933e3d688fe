package repository

import "time"

// MinTimeStep is the stored time resolution.
const MinTimeStep = time.Millisecond

// FindManyOptions bounds a collection scan.
type FindManyOptions struct {
	Limit int64
}

// UpdateFields is the explicit set of fields an update writes. Nil pointers are
// not written. UpdatedTime is a lower bound: the stored updated_time becomes
// the later of UpdatedTime and the previous value plus MinTimeStep.
type UpdateFields struct {
	Name        *string
	Type        *string
	UpdatedTime time.Time
}
