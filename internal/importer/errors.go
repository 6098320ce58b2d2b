package importer

import "fmt"

// InvalidDocumentError reports a CSV body that could not be parsed as
// tabular text. Unlike per-row skips, this aborts the whole import with no
// partial effect on the caller's store.
type InvalidDocumentError struct {
	Reason string
	Err    error
}

func (e *InvalidDocumentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid CSV document: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid CSV document: %s", e.Reason)
}

func (e *InvalidDocumentError) Unwrap() error {
	return e.Err
}
