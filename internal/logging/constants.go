package logging

// Standardized field names for structured logging, kept consistent so log
// output stays easy to filter.
const (
	FieldFile     = "file_path"
	FieldRow      = "row"
	FieldCount    = "count"
	FieldSkipped  = "skipped"
	FieldCategory = "category"
	FieldAmount   = "amount"
	FieldReason   = "reason"
	FieldPort     = "port"
)
