package completion

// Result is the answer to a completion request.
// When Descended is true Candidates holds exactly one path ending in a separator,
// otherwise Candidates holds the matching entry names of the listed directory.
type Result struct {
	Input      string
	Candidates []string
	Descended  bool
}
