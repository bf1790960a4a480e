package logging

// Standardized field names for structured logging. These constants keep the
// application's log output consistent and easy to filter.
const (
	FieldFile        = "file_path"
	FieldParser      = "parser"
	FieldCategory    = "category"
	FieldKeyword     = "keyword"
	FieldCount       = "count"
	FieldRow         = "row"
	FieldQuery       = "query"
	FieldHour        = "hour"
	FieldDescription = "description"
)
