package models

// Finding is a single validation result: a human-readable message paired
// with a machine-readable kind.
type Finding struct {
	Message string
	Kind    string
}

// ValidationFinding collects all findings for one offending row, together
// with a snapshot of the row as it looked when validated.
type ValidationFinding struct {
	RowIndex int
	Messages []string
	Kinds    []string
	Row      Transaction
}
