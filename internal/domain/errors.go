package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidation            = errors.New("validation failed")
	ErrExamNotFound          = errors.New("exam not found")
	ErrConflict              = errors.New("exam already finalized")
	ErrInvalidState          = errors.New("exam is in an invalid state for this operation")
	ErrBadInput              = errors.New("principal input path is missing or invalid")
	ErrReportUnavailable     = errors.New("report is not available for the exam status")
	ErrFindingsNotFound      = errors.New("findings artifact not found")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	ErrPersistence           = errors.New("failed to persist exam record")
	ErrStatusChanged         = errors.New("exam status changed concurrently")
	ErrBlobNotFound          = errors.New("blob not found")
)

var (
	ErrNoFiles         = fmt.Errorf("%w: no files were uploaded", ErrValidation)
	ErrInvalidFilename = fmt.Errorf("%w: invalid filename", ErrValidation)
	ErrInvalidExamID   = fmt.Errorf("%w: invalid exam id", ErrValidation)
	ErrInvalidStatus   = fmt.Errorf("%w: invalid status", ErrValidation)
)
