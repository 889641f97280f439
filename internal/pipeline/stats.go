package pipeline

// RunStats tracks aggregate counters and byte totals across a batch run.
type RunStats struct {
	Total     int
	Current   int
	Converted int
	Skipped   int
	Failed    int

	// Projection mode tallies for the batch summary.
	OneD int
	TwoD int

	TotalInputBytes  int64
	TotalOutputBytes int64
}
