package scoring

// Config holds every scoring weight and threshold as a named field. It is
// passed in by callers and never read from process state, so alternative rule
// sets stay a construction-time concern.
type Config struct {
	// DefinitionWeight is the maximum points for the definition component.
	DefinitionWeight int
	// DefinitionFullLength is the trimmed length that earns full definition
	// points; DefinitionPartialLength earns half.
	DefinitionFullLength    int
	DefinitionPartialLength int

	// CoreAttributesWeight is the maximum points for the core-attribute
	// component.
	CoreAttributesWeight int

	// PrimaryActionsWeight is the maximum points for the primary-action
	// component.
	PrimaryActionsWeight int

	// CRUDCoverageWeight is the maximum points for CRUD coverage and
	// CRUDTypePoints the points per distinct CRUD type present.
	CRUDCoverageWeight int
	CRUDTypePoints     int

	// CoreAttributesMinimum and similar thresholds drive warning emission.
	CoreAttributesMinimum int

	// ExportReadyScore is the per-object score at or above which an object
	// counts as ready for export.
	ExportReadyScore int
}

// DefaultConfig returns the standard rule set: component maxima sum to 100.
func DefaultConfig() Config {
	return Config{
		DefinitionWeight:        20,
		DefinitionFullLength:    20,
		DefinitionPartialLength: 10,
		CoreAttributesWeight:    30,
		PrimaryActionsWeight:    25,
		CRUDCoverageWeight:      25,
		CRUDTypePoints:          6,
		CoreAttributesMinimum:   2,
		ExportReadyScore:        60,
	}
}
