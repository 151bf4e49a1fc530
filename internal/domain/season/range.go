package season

import "fmt"

// Range is an inclusive span of season years.
type Range struct {
	Min int
	Max int
}

// Empty reports whether the range selects nothing.
func (r Range) Empty() bool {
	return r.Min > r.Max
}

// Contains reports whether label parses to a year inside the range.
func (r Range) Contains(label string) bool {
	year, ok := Year(label)
	if !ok {
		return false
	}
	return year >= r.Min && year <= r.Max
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}
