package collector

import "fmt"

// CollectorError wraps a node source failure with the display name of the
// source, e.g. "Jenkins Controller: 401 Unauthorized".
type CollectorError struct {
	Collector string
	Err       error
}

func (e *CollectorError) Error() string {
	return fmt.Sprintf("%s: %v", e.Collector, e.Err)
}

func (e *CollectorError) Unwrap() error {
	return e.Err
}
