package metric

// SampleRecord is a single timed execution of one algorithm.
type SampleRecord struct {
	RunID      string  `csv:"run_id"`
	Size       int     `csv:"size"`
	Algorithm  string  `csv:"algorithm"`
	Trial      int     `csv:"trial"`
	DurationMs float64 `csv:"duration_ms"`
}

// ResultRecord is one cell of the results table in long form.
type ResultRecord struct {
	RunID     string  `csv:"run_id"`
	Size      int     `csv:"size"`
	Algorithm string  `csv:"algorithm"`
	MeanMs    float64 `csv:"mean_ms"`
}
