package domain

type AnalysisResult struct {
	MaskPath     string // filled in case of a success
	FindingsPath string // may be filled on failure too, when the error text was stored
	Failure      string // filled in case of a reported failure
}

func (r *AnalysisResult) Failed() bool {
	return r.Failure != ""
}
