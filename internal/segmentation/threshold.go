// Package segmentation computes a binary mask over a volumetric image by
// thresholding voxel intensities at a fixed percentile.
package segmentation

import (
	"math"
	"slices"
)

const (
	Percentile = 95.0
	MethodName = "intensity threshold segmentation (95th percentile)"
)

type Result struct {
	Mask       []uint8
	Threshold  float64
	Computable bool // false for empty or constant input
	MaskVoxels int
}

// Segment marks every voxel strictly above the 95th percentile intensity.
func Segment(v *Volume) Result {
	return SegmentValues(v.Data)
}

func SegmentValues(values []float32) Result {
	mask := make([]uint8, len(values))

	if isConstant(values) {
		return Result{Mask: mask}
	}

	threshold := PercentileOf(values, Percentile)

	selected := 0
	for i, v := range values {
		if float64(v) > threshold {
			mask[i] = 1
			selected++
		}
	}

	return Result{
		Mask:       mask,
		Threshold:  threshold,
		Computable: true,
		MaskVoxels: selected,
	}
}

// PercentileOf interpolates linearly between the two closest ranks.
func PercentileOf(values []float32, p float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}

	sorted := make([]float64, len(values))
	for i, v := range values {
		sorted[i] = float64(v)
	}
	slices.Sort(sorted)

	rank := float64(len(sorted)-1) * p / 100
	lo := math.Floor(rank)
	i := int(lo)
	if i+1 >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	return sorted[i] + (rank-lo)*(sorted[i+1]-sorted[i])
}

func isConstant(values []float32) bool {
	for _, v := range values {
		if v != values[0] {
			return false
		}
	}

	return true
}
