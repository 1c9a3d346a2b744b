package chart

import (
	"fmt"

	"pricewatch/internal/application"
	"pricewatch/internal/domain"
	"pricewatch/internal/infrastructure/csvstore"

	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	DefaultWidth  = 12 * vg.Inch
	DefaultHeight = 6 * vg.Inch
	tickFormat    = "15:04:05"
)

// Plotter renders price against time from a durable-storage file. The image
// format follows the extension of Output (png, svg, pdf, ...).
type Plotter struct {
	Output string
	Width  vg.Length
	Height vg.Length
	Log    *zap.Logger
}

var _ application.ChartRenderer = (*Plotter)(nil)

// Render reads the samples at path and saves the chart to p.Output. Nothing is
// written when the file cannot be read or holds no samples.
func (p *Plotter) Render(path string) error {
	series, err := csvstore.New(path).Read()
	if err != nil {
		return fmt.Errorf("chart: %w", err)
	}
	if series.Len() == 0 {
		return fmt.Errorf("chart: %s: %w", path, domain.ErrEmptySeries)
	}

	plt, err := build(series)
	if err != nil {
		return fmt.Errorf("chart: %w", err)
	}

	w, h := p.Width, p.Height
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	if err := plt.Save(w, h, p.Output); err != nil {
		return fmt.Errorf("chart: save %s: %w", p.Output, err)
	}

	if p.Log != nil {
		p.Log.Info("chart_rendered", zap.String("source", path), zap.String("output", p.Output), zap.Int("points", series.Len()))
	}
	return nil
}

func build(series domain.SampleSeries) (*plot.Plot, error) {
	first := series[0]

	plt := plot.New()
	plt.Title.Text = fmt.Sprintf("%s Price Over Time on %s", first.Pair, first.Exchange)
	plt.X.Label.Text = "Timestamp"
	plt.Y.Label.Text = fmt.Sprintf("%s Price (USD)", first.Pair)
	plt.X.Tick.Marker = plot.TimeTicks{Format: tickFormat}
	plt.Add(plotter.NewGrid())

	line, points, err := plotter.NewLinePoints(toXYs(series))
	if err != nil {
		return nil, fmt.Errorf("build line: %w", err)
	}
	points.Shape = draw.CircleGlyph{}
	plt.Add(line, points)
	return plt, nil
}

// toXYs maps timestamps to unix seconds, the unit plot.TimeTicks expects.
func toXYs(series domain.SampleSeries) plotter.XYs {
	xys := make(plotter.XYs, series.Len())
	for i, smp := range series {
		xys[i].X = float64(smp.Timestamp.UnixNano()) / 1e9
		xys[i].Y = smp.Price.InexactFloat64()
	}
	return xys
}
