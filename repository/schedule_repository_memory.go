package repository

import (
	"sync"

	"mortgage-agent/domain"
)

type scheduleEntry struct {
	input  domain.MortgageInput
	result domain.ScheduleResult
}

// ScheduleRepositoryMemory is an in-memory implementation of
// ScheduleRepository, keeping the calculation history for the process
// lifetime.
type ScheduleRepositoryMemory struct {
	mu      sync.Mutex
	entries []scheduleEntry
}

// NewScheduleRepositoryMemory creates a new in-memory schedule repository.
func NewScheduleRepositoryMemory() *ScheduleRepositoryMemory {
	return &ScheduleRepositoryMemory{}
}

// Save stores the computed schedule in memory.
func (r *ScheduleRepositoryMemory) Save(
	input domain.MortgageInput,
	result domain.ScheduleResult,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, scheduleEntry{input: input, result: result})
	return nil
}

// Len returns the number of stored calculations.
func (r *ScheduleRepositoryMemory) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.entries)
}
