package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// VolumetricSuffixes are the file name endings accepted as a principal input.
var VolumetricSuffixes = []string{".nii", ".nii.gz"}

type Exam struct {
	ID                 uuid.UUID `db:"id"                   json:"exam_id"`
	Status             Status    `db:"status"               json:"status"`
	CreatedAt          time.Time `db:"created_at"           json:"created_at"`
	UpdatedAt          time.Time `db:"updated_at"           json:"updated_at"`
	OriginalFilenames  []string  `db:"original_filenames"   json:"original_filenames"`
	RawFilePaths       []string  `db:"raw_file_paths"       json:"raw_file_paths"`
	PrincipalInputPath *string   `db:"principal_input_path" json:"principal_input_path"`
	OutputMaskPath     *string   `db:"output_mask_path"     json:"output_mask_path"`
	OutputFindingsPath *string   `db:"output_findings_path" json:"output_findings_path"`
	ErrorMessage       *string   `db:"error_message"        json:"error_message"`
}

// ExamUpdate is the full set of mutable fields written by a status transition.
// Nil pointers are stored as NULL.
type ExamUpdate struct {
	Status             Status
	UpdatedAt          time.Time
	OutputMaskPath     *string
	OutputFindingsPath *string
	ErrorMessage       *string
}

// UploadFile is a single payload received with an upload request.
type UploadFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// IsVolumetric reports whether filename carries a recognized volumetric suffix.
func IsVolumetric(filename string) bool {
	lower := strings.ToLower(filename)
	for _, suffix := range VolumetricSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}

	return false
}
