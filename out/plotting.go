// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"image/color"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// default size of figures
var (
	FigWidth  = 8 * vg.Inch
	FigHeight = 5 * vg.Inch
)

// colors of series
var colors = []color.Color{
	color.RGBA{R: 0, G: 0, B: 139, A: 255},
	color.RGBA{R: 200, G: 0, B: 0, A: 255},
	color.RGBA{R: 0, G: 100, B: 0, A: 255},
	color.RGBA{R: 255, G: 140, B: 0, A: 255},
}

// Plot creates a plot of ykeys versus xkey
func (o *History) Plot(title, xkey string, ykeys ...string) (p *plot.Plot, err error) {
	x, err := o.Get(xkey)
	if err != nil {
		return
	}
	p = plot.New()
	p.Title.Text = title
	p.X.Label.Text = Label(xkey)
	if len(ykeys) == 1 {
		p.Y.Label.Text = Label(ykeys[0])
	}
	p.Add(plotter.NewGrid())
	for i, key := range ykeys {
		y, e := o.Get(key)
		if e != nil {
			return nil, e
		}
		xy := make(plotter.XYs, len(x))
		for k := range x {
			xy[k].X, xy[k].Y = x[k], y[k]
		}
		line, points, e := plotter.NewLinePoints(xy)
		if e != nil {
			return nil, e
		}
		clr := colors[i%len(colors)]
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = clr
		points.GlyphStyle.Color = clr
		points.GlyphStyle.Radius = vg.Points(3)
		points.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(line, points)
		if len(ykeys) > 1 {
			p.Legend.Add(Label(key), line, points)
		}
	}
	return
}

// SavePlot saves a plot of ykeys versus xkey to <dirout>/<fnkey>.png
//  Note: the extension of fnkey selects the format; e.g. ".svg" or ".pdf"
func (o *History) SavePlot(dirout, fnkey, xkey string, ykeys ...string) (fn string, err error) {
	p, err := o.Plot(fnkey, xkey, ykeys...)
	if err != nil {
		return
	}
	err = os.MkdirAll(dirout, 0777)
	if err != nil {
		return "", chk.Err("cannot create directory for figures (%s): %v", dirout, err)
	}
	fn = filepath.Join(dirout, fnkey)
	if filepath.Ext(fnkey) == "" {
		fn += ".png"
	}
	err = p.Save(FigWidth, FigHeight, fn)
	if err != nil {
		return "", chk.Err("cannot save figure %q:\n%v", fn, err)
	}
	if io.Verbose {
		io.Pfblue2("file <%s> written\n", fn)
	}
	return
}

// SaveAll saves the default figures: stress, plastic strain and reactions versus amount
func (o *History) SaveAll(dirout, key string) (fns []string, err error) {
	for _, pair := range [][]string{{"qmax"}, {"epmax"}, {"f", "m"}} {
		fn, e := o.SavePlot(dirout, io.Sf("%s-%s", key, pair[0]), "amount", pair...)
		if e != nil {
			return nil, e
		}
		fns = append(fns, fn)
	}
	return
}
