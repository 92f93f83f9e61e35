package lint

// DocumentResult is the validation outcome for one document.
type DocumentResult struct {
	Identifier  string
	Diagnostics []Diagnostic
}

// Valid reports whether the document passed every check.
func (r DocumentResult) Valid() bool {
	return len(r.Diagnostics) == 0
}

// RunReport aggregates per-document results for one invocation. Results keep
// discovery order; a fresh report is built per run and never persisted.
type RunReport struct {
	Results      []DocumentResult
	ValidCount   int
	InvalidCount int
}

// add records one document's outcome.
func (r *RunReport) add(result DocumentResult) {
	r.Results = append(r.Results, result)
	if result.Valid() {
		r.ValidCount++
	} else {
		r.InvalidCount++
	}
}

// Diagnostics returns every diagnostic in report order.
func (r *RunReport) Diagnostics() []Diagnostic {
	var diags []Diagnostic
	for _, result := range r.Results {
		diags = append(diags, result.Diagnostics...)
	}
	return diags
}

// Success reports whether every document validated cleanly.
func (r *RunReport) Success() bool {
	return r.InvalidCount == 0
}

// ExitCode maps the report to the process exit contract consumed by CI.
func (r *RunReport) ExitCode() int {
	if r.Success() {
		return 0
	}
	return 1
}
