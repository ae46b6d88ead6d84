package analytics

import "fmt"

// ReferentialGapError reports a foreign key with no matching row in the
// referenced table. That is an upstream contract violation, not a valid
// business state, so the affected computation fails loudly instead of
// silently dropping rows and skewing its aggregates.
type ReferentialGapError struct {
	Table      string
	Column     string
	Value      int
	Referenced string
}

func (e *ReferentialGapError) Error() string {
	return fmt.Sprintf("referential gap: %s.%s=%d has no matching row in %s",
		e.Table, e.Column, e.Value, e.Referenced)
}
