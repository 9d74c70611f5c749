package segmentation

import "fmt"

// LoadError reports input that cannot be parsed as a volumetric image.
type LoadError struct {
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Err == nil {
		return "failed to load volume: " + e.Reason
	}

	return fmt.Sprintf("failed to load volume: %s: %v", e.Reason, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func loadError(err error, format string, args ...any) error {
	return &LoadError{Reason: fmt.Sprintf(format, args...), Err: err}
}
