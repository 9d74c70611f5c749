// Package analysis runs the segmentation step against blob-stored inputs and
// stores its artifacts.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/kurochkinivan/exam_analyzer/internal/domain"
	"github.com/kurochkinivan/exam_analyzer/internal/segmentation"
)

const (
	maskContentType     = "application/gzip"
	findingsContentType = "text/plain; charset=utf-8"
)

type BlobStore interface {
	Put(ctx context.Context, bucket, key string, data []byte, contentType string) (string, error)
	Get(ctx context.Context, path, localDestination string) error
}

type Runner struct {
	log          *slog.Logger
	blobs        BlobStore
	outputBucket string
}

func NewRunner(log *slog.Logger, blobs BlobStore, outputBucket string) *Runner {
	return &Runner{
		log:          log,
		blobs:        blobs,
		outputBucket: outputBucket,
	}
}

// Analyze returns a reported failure in the result for transfer problems and
// an error when the input cannot be decoded.
func (r *Runner) Analyze(ctx context.Context, examID uuid.UUID, principalPath string) (_ *domain.AnalysisResult, err error) {
	source := path.Base(principalPath)
	base := baseName(source)
	maskName := base + "_mask.nii.gz"
	maskKey := examID.String() + "/" + maskName
	findingsKey := examID.String() + "/" + base + "_findings.txt"

	log := r.log.With(
		slog.String("exam_id", examID.String()),
		slog.String("input", principalPath),
	)

	tmpDir, err := os.MkdirTemp("", "analysis-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create work directory: %w", err)
	}
	defer func() { err = errors.Join(err, os.RemoveAll(tmpDir)) }()

	localInput := filepath.Join(tmpDir, "input")
	if err := r.blobs.Get(ctx, principalPath, localInput); err != nil {
		return r.fail(ctx, log, findingsKey, fmt.Sprintf("failed to download %s: %v", principalPath, err)), nil
	}

	volume, err := r.load(localInput)
	if err != nil {
		return nil, err
	}

	log.DebugContext(ctx, "volume loaded", slog.Any("dims", volume.Dims), slog.Int("voxels", len(volume.Data)))

	result := segmentation.Segment(volume)

	log.InfoContext(ctx, "mask computed",
		slog.String("threshold", segmentation.FormatThreshold(result)),
		slog.Int("mask_voxels", result.MaskVoxels),
	)

	mask, err := volume.EncodeMask(result.Mask)
	if err != nil {
		return r.fail(ctx, log, findingsKey, fmt.Sprintf("failed to encode mask for %s: %v", principalPath, err)), nil
	}

	findings := segmentation.Findings{Source: source, MaskFile: maskName, Result: result}.String()

	maskPath, err := r.blobs.Put(ctx, r.outputBucket, maskKey, mask, maskContentType)
	if err != nil {
		return r.fail(ctx, log, findingsKey, fmt.Sprintf("failed to store mask for %s: %v", principalPath, err)), nil
	}

	findingsPath, err := r.blobs.Put(ctx, r.outputBucket, findingsKey, []byte(findings), findingsContentType)
	if err != nil {
		return r.fail(ctx, log, findingsKey, fmt.Sprintf("failed to store findings for %s: %v", principalPath, err)), nil
	}

	return &domain.AnalysisResult{
		MaskPath:     maskPath,
		FindingsPath: findingsPath,
	}, nil
}

func (r *Runner) load(filename string) (_ *segmentation.Volume, err error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open downloaded input: %w", err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	return segmentation.Decode(f)
}

// fail stores the failure text as the findings artifact when possible.
func (r *Runner) fail(ctx context.Context, log *slog.Logger, findingsKey, message string) *domain.AnalysisResult {
	log.ErrorContext(ctx, "analysis failed", slog.String("err", message))

	result := &domain.AnalysisResult{Failure: message}

	findingsPath, err := r.blobs.Put(ctx, r.outputBucket, findingsKey, []byte(message), findingsContentType)
	if err != nil {
		log.ErrorContext(ctx, "failed to store failure findings", slog.String("err", err.Error()))
		return result
	}

	result.FindingsPath = findingsPath

	return result
}

// baseName strips every extension: "scan.nii.gz" -> "scan".
func baseName(filename string) string {
	base, _, _ := strings.Cut(filename, ".")
	if base == "" {
		return "input"
	}

	return base
}
