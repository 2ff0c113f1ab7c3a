// Package selftest runs known-answer tests against every primitive so a
// host can confirm the build behaves before trusting it.
package selftest

import (
	"time"
)

// NewChecker creates an empty checker
func NewChecker() *Checker {
	return &Checker{
		checks: make(map[string]CheckFunc),
	}
}

// NewDefaultChecker creates a checker with the built-in known-answer tests
func NewDefaultChecker() *Checker {
	c := NewChecker()
	c.Register("sha256", SHA256Check)
	c.Register("ed25519", Ed25519Check)
	c.Register("aes256gcm", AESGCMCheck)
	c.Register("zstd", ZstdCheck)
	c.Register("random", RandomCheck)
	return c
}

// Register adds or replaces a named check
func (c *Checker) Register(name string, check CheckFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.checks[name] = check
}

// Run executes every check. Any failure fails the report.
func (c *Checker) Run() Report {
	c.mu.RLock()
	defer c.mu.RUnlock()

	report := Report{
		Status:    StatusPass,
		Timestamp: time.Now(),
		Checks:    make(map[string]Check, len(c.checks)),
	}

	for name, fn := range c.checks {
		start := time.Now()
		err := fn()

		check := Check{
			Name:     name,
			Status:   StatusPass,
			Duration: time.Since(start),
		}
		if err != nil {
			check.Status = StatusFail
			check.Message = err.Error()
			report.Status = StatusFail
		}
		report.Checks[name] = check
	}

	return report
}
