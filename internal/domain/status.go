package domain

import "slices"

type Status string

const (
	StatusUploaded             Status = "uploaded"
	StatusProcessing           Status = "processing"
	StatusProcessedSuccess     Status = "processed_success"
	StatusProcessedError       Status = "processed_error"
	StatusErrorNoInputPath     Status = "error_no_input_path"
	StatusErrorProcessingFatal Status = "error_processing_fatal"
)

var terminalStatuses = []Status{
	StatusProcessedSuccess,
	StatusProcessedError,
	StatusErrorNoInputPath,
	StatusErrorProcessingFatal,
}

// IsTerminal reports whether no further automatic transition leaves s.
func (s Status) IsTerminal() bool {
	return slices.Contains(terminalStatuses, s)
}

func (s Status) IsValid() bool {
	return s == StatusUploaded || s == StatusProcessing || s.IsTerminal()
}
