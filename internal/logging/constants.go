package logging

// Standardized field names for structured logging. Keeping these in one
// place makes log output consistent and easy to filter.
const (
	FieldFile        = "file_path"
	FieldStore       = "store"
	FieldCategory    = "category"
	FieldTier        = "tier"
	FieldUserID      = "user_id"
	FieldDescription = "description"
	FieldConfidence  = "confidence"
	FieldTotal       = "total"
	FieldCount       = "count"
	FieldOperation   = "operation"
	FieldDuration    = "duration_ms"
	FieldInputFile   = "input_file"
	FieldOutputFile  = "output_file"
)
