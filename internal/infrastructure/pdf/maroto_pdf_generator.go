// Package pdf genera la versión imprimible del reporte de funcionarios por cargo.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título │ fecha de generación                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cargo | Quantidade | % do total                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL                                                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestorpro-api/internal/application/dto"
	"github.com/jhoicas/gestorpro-api/internal/application/usecase"
)

var _ usecase.HeadcountPDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa usecase.HeadcountPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	appName string
}

// NewMarotoPDFGenerator construye el generador. appName va como autor del documento.
func NewMarotoPDFGenerator(appName string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{appName: nonEmpty(appName, "GestorPro")}
}

// GenerateHeadcountPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateHeadcountPDF(
	_ context.Context,
	rows []dto.HeadcountRow,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Relatório de Funcionários por Cargo", true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	total := totalCount(rows)
	m.AddRows(tableHeaderRow())
	if len(rows) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Nenhum funcionário cadastrado.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 3,
			}),
		)))
	}
	m.AddRows(tableDetailRows(rows, total)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(total))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(generatedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("Funcionários por Cargo", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Gerado em "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Color: colorGray, Top: 5,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Cargo", 6, align.Left),
		h("Quantidade", 3, align.Right),
		h("% do total", 3, align.Right),
	)
}

// tableDetailRows: una fila por cargo, en el orden recibido.
func tableDetailRows(rows []dto.HeadcountRow, total int64) []core.Row {
	out := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		out = append(out, row.New(7).Add(
			col.New(6).Add(text.New(r.RoleName, props.Text{Size: 9, Top: 1})),
			col.New(3).Add(text.New(fmt.Sprintf("%d", r.Count), props.Text{Size: 9, Align: align.Right, Top: 1})),
			col.New(3).Add(text.New(percent(r.Count, total), props.Text{
				Size: 9, Align: align.Right, Top: 1, Color: colorGray,
			})),
		))
	}
	return out
}

func totalRow(total int64) core.Row {
	return row.New(8).Add(
		col.New(6).Add(text.New("TOTAL", props.Text{Style: fontstyle.Bold, Size: 10, Top: 2})),
		col.New(3).Add(text.New(fmt.Sprintf("%d", total), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2,
		})),
		col.New(3),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func totalCount(rows []dto.HeadcountRow) int64 {
	var n int64
	for _, r := range rows {
		n += r.Count
	}
	return n
}

// percent con una casa decimal y coma como separador: 3 de 4 → "75,0%".
func percent(count, total int64) string {
	if total == 0 {
		return "0,0%"
	}
	p := decimal.NewFromInt(count).Mul(decimal.NewFromInt(100)).Div(decimal.NewFromInt(total))
	return commaDecimal(p.StringFixed(1)) + "%"
}

func commaDecimal(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c == '.' {
			b[i] = ','
		}
	}
	return string(b)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
