// Package parsererror defines the typed errors surfaced by the loading and
// query pipeline. Callers distinguish failure classes with errors.As.
package parsererror

import "fmt"

// NotFoundError reports that the input statement file does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("文件未找到: %s", e.Path)
}

// ValidationError reports a malformed input table, typically a required
// column missing from the header row.
type ValidationError struct {
	FilePath string
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.FilePath, e.Reason)
}

// ParseError reports a value that could not be parsed into the expected
// type, with enough context to locate the offending cell.
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NotLoadedError reports a query issued before any statement was
// successfully loaded into the session.
type NotLoadedError struct{}

func (e *NotLoadedError) Error() string {
	return "抱歉，目前没有可供查询的银行流水数据。请先加载并分析您的银行流水。"
}
