package skills

import "fmt"

// TableError represents an invalid variant table definition
type TableError struct {
	Message string
	Key     string
}

func (e *TableError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("variant table error for key %q: %s", e.Key, e.Message)
	}
	return fmt.Sprintf("variant table error: %s", e.Message)
}
