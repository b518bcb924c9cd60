package logging

// Standardized field names for structured logging.
// These constants keep log output consistent across the engines,
// making logs easier to parse, filter, and analyze.
const (
	FieldCategory   = "category"
	FieldConfidence = "confidence"
	FieldMethod     = "method"
	FieldMerchant   = "merchant"
	FieldStrategy   = "strategy"
	FieldCheck      = "check"
	FieldKind       = "error_kind"
	FieldRowIndex   = "row_index"
	FieldCount      = "count"
	FieldFile       = "file_path"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
)
