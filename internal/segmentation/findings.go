package segmentation

import (
	"fmt"
	"strconv"
	"strings"
)

const notComputable = "N/A"

// Findings is the human-readable summary of one segmentation run.
type Findings struct {
	Source   string
	MaskFile string
	Result   Result
}

func (f Findings) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Simple analysis report for: %s\n", f.Source)
	fmt.Fprintf(&b, "- Method: %s\n", MethodName)
	fmt.Fprintf(&b, "- Computed intensity threshold: %s\n", FormatThreshold(f.Result))
	fmt.Fprintf(&b, "- Mask file: %s\n", f.MaskFile)
	fmt.Fprintf(&b, "- Voxels in mask: %d\n", f.Result.MaskVoxels)
	b.WriteString("- Status: processed successfully\n")

	return b.String()
}

func FormatThreshold(r Result) string {
	if !r.Computable {
		return notComputable
	}

	return strconv.FormatFloat(r.Threshold, 'f', 2, 64)
}
