// Standard attribute keys for plotkit log records.
//
// Keys follow a hierarchical naming convention ("matrix.groups",
// "figure.format") so that records can be filtered consistently.

package log

// Operation context.
const (
	// ComponentKey identifies which package is logging.
	// Examples: "pairwise", "plotting", "cli"
	ComponentKey = "component"

	// OperationKey names the operation being performed.
	// Standard values are the Operation* constants below.
	OperationKey = "op"
)

// Pairwise matrix attributes.
const (
	// GroupsKey is the number of input groups, i.e. the matrix order n.
	GroupsKey = "matrix.groups"

	// MethodKey is the scoring method: a preset name or "custom".
	MethodKey = "matrix.method"

	// EvaluationsKey is the number of score evaluations (n²).
	EvaluationsKey = "matrix.evaluations"

	// WorkersKey is the number of concurrent row workers.
	WorkersKey = "matrix.workers"

	// NonFiniteKey is the number of NaN/Inf entries in a result.
	NonFiniteKey = "matrix.non_finite"
)

// Figure attributes.
const (
	// FormatKey is the export format: "png", "svg" or "pdf".
	FormatKey = "figure.format"

	// OutputPathKey is the path a figure was written to.
	OutputPathKey = "figure.path"

	// BytesKey is the number of bytes written.
	BytesKey = "figure.bytes"

	// DPIKey is the raster resolution of PNG exports.
	DPIKey = "figure.dpi"

	// AxesKey is the number of axes in a figure.
	AxesKey = "figure.axes"
)

// Performance attributes.
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"
)

// Error attributes.
const (
	// ErrorTypeKey categorizes the type of error encountered.
	ErrorTypeKey = "error.type"

	// SuggestionKey provides a hint for resolving an issue.
	SuggestionKey = "error.suggestion"
)

// Standard attribute values.
const (
	OperationSimilarity  = "similarity_matrix"
	OperationCorrelation = "correlation_matrix"
	OperationHeatmap     = "heatmap"
	OperationSave        = "save"
)
