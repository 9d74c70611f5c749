package report_generator

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontfamily"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/johnfercher/maroto/v2/pkg/repository"
)

const (
	DefaultFontPath = "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"

	customFamily = "report-utf8"
	title        = "CBCT Scan Report"

	titleHeight = 14
	idHeight    = 10
	lineHeight  = 6
)

type RenderError struct {
	ExamID string
	Err    error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("failed to render report for exam %s: %v", e.ExamID, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

type Generator struct {
	log   *slog.Logger
	fonts []*entity.CustomFont
}

// New loads the TTF at fontPath once. A missing or unreadable font leaves the
// generator on the built-in Helvetica.
func New(log *slog.Logger, fontPath string) *Generator {
	g := &Generator{log: log}

	if fontPath == "" {
		return g
	}

	if _, err := os.Stat(fontPath); err != nil {
		log.Warn("report font not found, using built-in font", slog.String("path", fontPath))
		return g
	}

	fonts, err := repository.New().
		AddUTF8Font(customFamily, fontstyle.Normal, fontPath).
		AddUTF8Font(customFamily, fontstyle.Bold, fontPath).
		Load()
	if err != nil {
		log.Warn("failed to load report font, using built-in font",
			slog.String("path", fontPath),
			slog.String("err", err.Error()),
		)
		return g
	}

	g.fonts = fonts

	return g
}

func (g *Generator) Render(examID, findings string) ([]byte, error) {
	if g.fonts != nil {
		doc, err := g.generate(examID, findings, customFamily, g.fonts)
		if err == nil {
			return doc, nil
		}

		g.log.Warn("report generation with custom font failed, retrying with built-in font",
			slog.String("exam_id", examID),
			slog.String("err", err.Error()),
		)
	}

	doc, err := g.generate(examID, findings, fontfamily.Helvetica, nil)
	if err != nil {
		return nil, &RenderError{ExamID: examID, Err: err}
	}

	return doc, nil
}

func (g *Generator) generate(examID, findings, family string, fonts []*entity.CustomFont) (_ []byte, err error) {
	// gofpdf паникует на битых шрифтах
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf engine panic: %v", r)
		}
	}()

	builder := config.NewBuilder().
		WithDefaultFont(&props.Font{Family: family, Style: fontstyle.Normal, Size: 11})
	if fonts != nil {
		builder = builder.WithCustomFonts(fonts)
	}

	m := maroto.New(builder.Build())

	m.AddRows(
		text.NewRow(titleHeight, title, props.Text{
			Family: family,
			Style:  fontstyle.Bold,
			Size:   18,
			Align:  align.Center,
		}),
		text.NewRow(idHeight, "Exam ID: "+examID, props.Text{
			Family: family,
			Style:  fontstyle.Bold,
			Size:   12,
			Align:  align.Left,
			Top:    2,
		}),
	)
	m.AddRows(findingsRows(findings, family)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate pdf: %w", err)
	}

	data := doc.GetBytes()
	if len(data) == 0 {
		return nil, errors.New("generated pdf is empty")
	}

	return data, nil
}

func findingsRows(findings, family string) []core.Row {
	lines := strings.Split(strings.TrimRight(findings, "\n"), "\n")

	rows := make([]core.Row, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, text.NewRow(lineHeight, line, props.Text{
			Family: family,
			Style:  fontstyle.Normal,
			Size:   10,
			Align:  align.Left,
		}))
	}

	return rows
}
