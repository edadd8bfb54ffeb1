package oriscan

import (
	"fmt"
	"image/color"

	"github.com/Dhanushsk16/BBL434-DhanushSk/internal/scan"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var (
	purple = color.RGBA{R: 128, B: 128, A: 255}
	green  = color.RGBA{G: 128, A: 255}
	blue   = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	red    = color.RGBA{R: 255, A: 255}

	dashes = []vg.Length{vg.Points(4), vg.Points(4)}
)

// chart is a line plot of a windowed series against genome position.
type chart struct {
	title  string
	yLabel string

	// legend entry and color of the series
	label string
	color color.Color

	// draw a dashed line at y = 0
	zeroLine bool

	// mark a position with a dashed vertical line, ex: the predicted ORI
	marker      *scan.Point
	markerLabel string
}

// save renders series to a PNG (or any format gonum/plot knows from the
// extension) at path.
func (c chart) save(path string, series scan.Series) error {
	p := plot.New()
	p.Title.Text = c.title
	p.X.Label.Text = "Genome Position (bp)"
	p.Y.Label.Text = c.yLabel
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	points := make(plotter.XYs, len(series))
	for i, pt := range series {
		points[i].X = float64(pt.Pos)
		points[i].Y = pt.Value
	}

	line, err := plotter.NewLine(points)
	if err != nil {
		return fmt.Errorf("failed to plot %s: %v", c.label, err)
	}
	line.Color = c.color
	p.Add(line)
	p.Legend.Add(c.label, line)

	if c.zeroLine {
		zero := plotter.NewFunction(func(float64) float64 { return 0 })
		zero.Color = color.Black
		zero.Width = vg.Points(0.5)
		zero.Dashes = dashes
		p.Add(zero)
	}

	if c.marker != nil {
		_, _, ymin, ymax := plotter.XYRange(points)
		x := float64(c.marker.Pos)
		mark, err := plotter.NewLine(plotter.XYs{{X: x, Y: ymin}, {X: x, Y: ymax}})
		if err != nil {
			return fmt.Errorf("failed to mark %s: %v", c.markerLabel, err)
		}
		mark.Color = red
		mark.Dashes = dashes
		p.Add(mark)
		p.Legend.Add(c.markerLabel, mark)
	}

	if err := p.Save(12*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save plot to %s: %v", path, err)
	}
	return nil
}
