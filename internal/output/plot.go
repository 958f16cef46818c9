package output

import (
	"errors"
	"image/color"

	"github.com/daryltucker/pi-runner/internal/model"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var lineColor = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}

// WritePlot draws elapsed time against worker count. The image format
// follows the file extension of path (png, svg, pdf, ...).
func WritePlot(path string, points []model.ScalingPoint) error {
	if len(points) == 0 {
		return errors.New("no scaling points to plot")
	}

	p := plot.New()
	p.Title.Text = "Vectorized runtime by worker count"
	p.X.Label.Text = "Workers"
	p.Y.Label.Text = "Elapsed time (s)"
	p.Add(plotter.NewGrid())

	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i].X = float64(pt.Workers)
		xys[i].Y = pt.Elapsed.Seconds()
	}

	line, marks, err := plotter.NewLinePoints(xys)
	if err != nil {
		return err
	}
	line.Color = lineColor
	marks.Color = lineColor
	marks.Shape = draw.CircleGlyph{}
	p.Add(line, marks)

	return p.Save(7*vg.Inch, 4*vg.Inch, path)
}
