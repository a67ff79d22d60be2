package model

// ComparisonStatus is the relation of the head commit to the base commit
type ComparisonStatus string

const (
	ComparisonAhead     ComparisonStatus = "ahead"
	ComparisonBehind    ComparisonStatus = "behind"
	ComparisonIdentical ComparisonStatus = "identical"
	ComparisonDiverged  ComparisonStatus = "diverged"
)

// Comparison is the result of comparing two commits
type Comparison struct {
	StatusCode int
	Status     ComparisonStatus
	Files      []string // Changed file paths in API order
}

// IsAhead returns true if head is strictly ahead of base
func (c *Comparison) IsAhead() bool {
	return c.Status == ComparisonAhead
}
