package selftest

import (
	"sync"
	"time"
)

// Status represents the outcome of a known-answer check
type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
)

// Check represents the result of one known-answer test
type Check struct {
	Name     string        `json:"name"`
	Status   Status        `json:"status"`
	Message  string        `json:"message,omitempty"`
	Duration time.Duration `json:"duration_ns"`
}

// CheckFunc performs a known-answer test and returns nil on success
type CheckFunc func() error

// Checker runs registered known-answer tests
type Checker struct {
	checks map[string]CheckFunc
	mu     sync.RWMutex
}

// Report represents the overall self-test result
type Report struct {
	Status    Status           `json:"status"`
	Timestamp time.Time        `json:"timestamp"`
	Checks    map[string]Check `json:"checks"`
}
