package texverify

import (
	"github.com/gogpu/texverify/internal/parallel"
)

// Case is one independent verification work item. Verify returns
// whether the observed result is admissible.
type Case struct {
	Name   string
	Verify func() bool
}

// CaseResult pairs a case name with its outcome.
type CaseResult struct {
	Name string
	OK   bool
}

// VerifyBatch runs the cases on a worker pool and returns a result per
// case in input order. workers <= 0 selects GOMAXPROCS.
func VerifyBatch(workers int, cases []Case) []CaseResult {
	results := make([]CaseResult, len(cases))
	if len(cases) == 0 {
		return results
	}

	pool := parallel.NewPool(workers)
	defer pool.Close()

	log := Logger()
	log.Info("verifying batch", "cases", len(cases), "workers", pool.Workers())

	jobs := make([]func(), len(cases))
	for i, c := range cases {
		i, c := i, c
		jobs[i] = func() {
			ok := c.Verify()
			results[i] = CaseResult{Name: c.Name, OK: ok}
			if !ok {
				log.Debug("case failed", "case", c.Name)
			}
		}
	}
	pool.Run(jobs)

	failed := 0
	for _, r := range results {
		if !r.OK {
			failed++
		}
	}
	log.Info("batch complete", "cases", len(cases), "failed", failed)

	return results
}
