// Package render draws viewership distributions as pages of bar charts.
//
// Each page is a PNG holding up to 16 charts in a grid of at most 4×4.
// Chart N is captioned "Viewership Distribution for Clique N" (N counted
// across pages from 1), has one bar per member labelled with its vertex ID
// and a percent y-axis fixed to [0%, 100%]. Pages are written as
// <dir>/<prefix>_<page>.png with page numbers from 1.
package render

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/katalvlaran/lvclique/stats"
)

// MaxPerPage is the largest number of charts that fit the 4×4 grid.
const MaxPerPage = 16

// ErrInvalidOption reports an option outside its range.
var ErrInvalidOption = errors.New("render: invalid option")

var barColor = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}

// Option configures Charts.
type Option func(*Options)

// Options holds page layout settings.
type Options struct {
	Dir     string // output directory, created when missing
	Prefix  string // file name prefix
	PerPage int    // charts per page, 1..MaxPerPage
	Width   int    // page width in pixels
	Height  int    // page height in pixels

	err error
}

// DefaultOptions returns 1024×768 pages of 16 charts in the working directory.
func DefaultOptions() Options {
	return Options{
		Dir:     ".",
		Prefix:  "viewership_distribution",
		PerPage: MaxPerPage,
		Width:   1024,
		Height:  768,
	}
}

// WithDir sets the output directory.
func WithDir(dir string) Option {
	return func(o *Options) {
		if dir != "" {
			o.Dir = dir
		}
	}
}

// WithPrefix sets the file name prefix.
func WithPrefix(prefix string) Option {
	return func(o *Options) {
		if prefix != "" {
			o.Prefix = prefix
		}
	}
}

// WithPerPage sets how many charts share one page.
func WithPerPage(n int) Option {
	return func(o *Options) {
		if n < 1 || n > MaxPerPage {
			o.err = fmt.Errorf("%w: per page %d not in [1,%d]", ErrInvalidOption, n, MaxPerPage)
			return
		}
		o.PerPage = n
	}
}

// WithSize sets the page size in pixels.
func WithSize(width, height int) Option {
	return func(o *Options) {
		if width <= 0 || height <= 0 {
			o.err = fmt.Errorf("%w: size %dx%d", ErrInvalidOption, width, height)
			return
		}
		o.Width, o.Height = width, height
	}
}

// Charts renders dists and returns the written file paths in page order.
// No distributions means no pages.
func Charts(dists []stats.Distribution, opts ...Option) ([]string, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if len(dists) == 0 {
		return nil, nil
	}
	if err := os.MkdirAll(o.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("render: create %s: %w", o.Dir, err)
	}

	var paths []string
	for page, start := 1, 0; start < len(dists); page, start = page+1, start+o.PerPage {
		end := start + o.PerPage
		if end > len(dists) {
			end = len(dists)
		}
		path := filepath.Join(o.Dir, o.Prefix+"_"+strconv.Itoa(page)+".png")
		if err := drawPage(path, dists[start:end], start, o); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}

	return paths, nil
}

// Grid returns the rows and columns used for n charts: the smallest
// near-square layout holding n, capped at 4×4.
func Grid(n int) (rows, cols int) {
	if n <= 0 {
		return 0, 0
	}
	root := math.Sqrt(float64(n))
	rows, cols = int(math.Floor(root)), int(math.Ceil(root))
	if rows*cols < n {
		rows++
	}

	return min(rows, 4), min(cols, 4)
}

func drawPage(path string, chunk []stats.Distribution, offset int, o Options) error {
	rows, cols := Grid(len(chunk))
	plots := make([][]*plot.Plot, rows)
	for r := range plots {
		plots[r] = make([]*plot.Plot, cols)
	}
	for i, d := range chunk {
		p, err := chart(d, offset+i+1)
		if err != nil {
			return err
		}
		plots[i/cols][i%cols] = p
	}

	img := vgimg.NewWith(vgimg.UseWH(vg.Length(o.Width), vg.Length(o.Height)), vgimg.UseDPI(72))
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: rows, Cols: cols,
		PadX: vg.Millimeter, PadY: vg.Millimeter,
		PadTop: vg.Millimeter, PadBottom: vg.Millimeter,
		PadLeft: vg.Millimeter, PadRight: vg.Millimeter,
	}
	canvases := plot.Align(plots, tiles, dc)
	for r := range plots {
		for c, p := range plots[r] {
			if p != nil {
				p.Draw(canvases[r][c])
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("render: write %s: %w", path, err)
	}

	return f.Close()
}

// chart builds the bar chart of one clique; n is its 1-based index.
func chart(d stats.Distribution, n int) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Viewership Distribution for Clique %d", n)
	p.X.Label.Text = "Node ID"
	p.Y.Label.Text = "Share of views"
	p.Y.Min, p.Y.Max = 0, 1
	p.Y.Tick.Marker = plot.TickerFunc(percentTicks)

	if len(d.Shares) == 0 {
		return p, nil
	}
	values := make(plotter.Values, len(d.Shares))
	names := make([]string, len(d.Shares))
	for i, s := range d.Shares {
		values[i] = s.Fraction
		names[i] = strconv.FormatUint(uint64(s.ID), 10)
	}
	bars, err := plotter.NewBarChart(values, vg.Points(12))
	if err != nil {
		return nil, fmt.Errorf("render: clique %d: %w", n, err)
	}
	bars.Color = barColor
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalX(names...)

	return p, nil
}

// percentTicks labels the unit interval in quarters.
func percentTicks(_, _ float64) []plot.Tick {
	ticks := make([]plot.Tick, 0, 5)
	for q := 0; q <= 4; q++ {
		ticks = append(ticks, plot.Tick{Value: float64(q) / 4, Label: strconv.Itoa(q*25) + "%"})
	}

	return ticks
}
