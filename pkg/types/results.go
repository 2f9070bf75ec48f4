package types

// Outcome is what happened to a single target path
type Outcome string

const (
	// OutcomeDeleted means the path existed and was removed
	OutcomeDeleted Outcome = "deleted"
	// OutcomeSkipped means the path did not exist; not an error
	OutcomeSkipped Outcome = "skipped"
	// OutcomeFailed means the path existed but could not be removed
	OutcomeFailed Outcome = "failed"
	// OutcomeWouldDelete is reported in dry-run mode instead of OutcomeDeleted
	OutcomeWouldDelete Outcome = "would-delete"
)

// Result records the outcome for one target path
type Result struct {
	Path    string
	Outcome Outcome
	Err     error
}

// Report is the ordered list of results from a deletion run
type Report struct {
	Results []Result
	DryRun  bool
}

// Add appends a result, preserving visit order
func (r *Report) Add(result Result) {
	r.Results = append(r.Results, result)
}

// Count returns how many results have the given outcome
func (r *Report) Count(outcome Outcome) int {
	n := 0
	for _, res := range r.Results {
		if res.Outcome == outcome {
			n++
		}
	}
	return n
}

// Paths returns the visited paths in order
func (r *Report) Paths() []string {
	paths := make([]string, len(r.Results))
	for i, res := range r.Results {
		paths[i] = res.Path
	}
	return paths
}

// HasFailures reports whether any path failed
func (r *Report) HasFailures() bool {
	return r.Count(OutcomeFailed) > 0
}
