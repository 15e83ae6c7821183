package mesh

import "fmt"

// InvalidParameterError reports a modeling parameter rejected before any
// geometry is generated.
type InvalidParameterError struct {
	Param  string
	Value  int
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid %s %d: %s", e.Param, e.Value, e.Reason)
}
