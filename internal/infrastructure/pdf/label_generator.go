// Package pdf renders the printable QR label sheet for a product's
// units. Each label carries the unit's serial code as QR payload, so a
// warehouse scan resolves straight to one physical item.
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/edievo/edsis-api/internal/application/usecase"
	"github.com/edievo/edsis-api/internal/domain/entity"
)

var (
	colorInk  = &props.Color{Red: 30, Green: 30, Blue: 30}
	colorGray = &props.Color{Red: 110, Green: 110, Blue: 110}
)

var _ usecase.LabelGenerator = (*MarotoLabelGenerator)(nil)

// MarotoLabelGenerator renders unit labels with Maroto v2.
type MarotoLabelGenerator struct{}

// NewMarotoLabelGenerator builds the generator.
func NewMarotoLabelGenerator() *MarotoLabelGenerator { return &MarotoLabelGenerator{} }

// UnitLabels renders the label sheet: a page header with the product
// identity, then one framed label row per unit.
func (g *MarotoLabelGenerator) UnitLabels(product *entity.Product, units []*entity.InventoryUnit) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Unit Labels "+product.Code, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(product))
	m.AddRows(line.NewRow(1, props.Line{Color: colorInk, Thickness: 0.5}))

	for _, u := range units {
		m.AddRows(labelRow(product, u))
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.2}))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate labels: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: product identity on the left, unit count on the right.
func headerRow(product *entity.Product) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(product.Brand+" - "+product.Collection, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorInk, Top: 1,
			}),
			text.New(product.Code+"  ·  "+product.Category, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("UNIT LABELS", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorGray, Top: 1,
			}),
			text.New(fmt.Sprintf("%d units", product.TotalStock), props.Text{
				Size: 9, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// labelRow: QR on the left, serial and location on the right.
func labelRow(product *entity.Product, u *entity.InventoryUnit) core.Row {
	return row.New(34).Add(
		col.New(3).Add(code.NewQr(u.SerialCode, props.Rect{
			Percent: 90,
			Center:  true,
		})),
		col.New(9).Add(
			text.New(u.SerialCode, props.Text{
				Style: fontstyle.Bold, Size: 12, Top: 6, Left: 2, Color: colorInk,
			}),
			text.New(product.Brand+" - "+product.Collection, props.Text{
				Size: 9, Top: 14, Left: 2, Color: colorGray,
			}),
			text.New("Location: "+nonEmpty(u.CurrentLocation, "-"), props.Text{
				Size: 8, Top: 21, Left: 2, Color: colorGray,
			}),
		),
	)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
