// Package certify scores a processed customer record against the data quality
// checks a data product must pass before it can be served.
package certify

import (
	"math/rand"
	"sync"
)

type Check struct {
	Passed bool    `json:"passed"`
	Score  float64 `json:"score"`
}

type Report struct {
	CertificationStatus string           `json:"certification_status"`
	OverallScore        float64          `json:"overall_score"`
	Checks              map[string]Check `json:"checks"`
}

const passThreshold = 0.75

type Certifier struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewCertifier(rng *rand.Rand) *Certifier {
	return &Certifier{rng: rng}
}

// Certify runs the four standard checks. Completeness, consistency, and
// timeliness score in the 0.8-1.0 band; privacy spans 0.6-1.0 and is the
// check that occasionally drags a product down to a conditional pass.
func (c *Certifier) Certify(dataProduct string, customerID string) Report {
	c.mu.Lock()
	checks := map[string]Check{
		"completeness": c.check(0.8, 1.0),
		"consistency":  c.check(0.8, 1.0),
		"privacy":      c.check(0.6, 1.0),
		"timeliness":   c.check(0.8, 1.0),
	}
	c.mu.Unlock()

	failed := 0
	total := 0.0
	for _, check := range checks {
		total += check.Score
		if !check.Passed {
			failed++
		}
	}

	status := "passed"
	switch {
	case failed == 1:
		status = "conditional_pass"
	case failed > 1:
		status = "failed"
	}

	return Report{
		CertificationStatus: status,
		OverallScore:        total / float64(len(checks)),
		Checks:              checks,
	}
}

func (c *Certifier) check(min, max float64) Check {
	score := min + c.rng.Float64()*(max-min)
	return Check{
		Passed: score >= passThreshold,
		Score:  score,
	}
}
