// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/guptarohit/asciigraph"
)

// size of text plots
var (
	AsciiHeight = 12
	AsciiWidth  = 60
)

// Ascii returns a text plot of series key along the load path
func (o *History) Ascii(key string) (res string, err error) {
	y, err := o.Get(key)
	if err != nil {
		return
	}
	if len(y) == 0 {
		return "", chk.Err("cannot plot %q: history is empty", key)
	}
	caption := io.Sf("%s versus step (amount from %g to %g)", Label(key), o.Amount[0], o.Amount[len(o.Amount)-1])
	return asciigraph.Plot(y,
		asciigraph.Height(AsciiHeight),
		asciigraph.Width(AsciiWidth),
		asciigraph.Precision(3),
		asciigraph.Caption(caption),
	), nil
}
