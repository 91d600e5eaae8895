// Copyright 2025 The ocp-visualizer Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package image

import (
	"image"

	"github.com/ocp-visualizer/ocp-visualizer/pkg/config"
)

const mmPerInch = 25.4

// Geometry of the reference card, in millimeters
const (
	titleBoxHeightMM   = 20
	titleBoxMarginMM   = 20
	iconBoxSizeMM      = 60
	leftBoxSizeMM      = 20
	masterBoxTopMM     = 20
	infraBoxTopMM      = 40
	workerBoxTopMM     = 60
	nameBoxHeightMM    = 20
	rightColumnWidthMM = 20
	dividerStartXMM    = 0
	dividerEndXMM      = 20
)

var dividerYMM = []float64{40, 60}

// MMToPixels converts a length to pixels, truncating
func MMToPixels(mm float64, dpi int) int {
	return int(mm * float64(dpi) / mmPerInch)
}

// Divider is a horizontal line between two x positions
type Divider struct {
	Y, X0, X1 int
}

// Layout holds the pixel boxes of every card element
type Layout struct {
	Width, Height int
	Title         image.Rectangle
	Icon          image.Rectangle
	Master        image.Rectangle
	Infra         image.Rectangle
	Worker        image.Rectangle
	Name          image.Rectangle
	Side          image.Rectangle
	Dividers      []Divider
	FontSize      int
}

// NewLayout computes the card geometry for the configured size and DPI
func NewLayout(cfg config.ImageConfig) Layout {
	px := func(mm float64) int { return MMToPixels(mm, cfg.DPI) }
	l := Layout{
		Width:    px(cfg.WidthMM),
		Height:   px(cfg.HeightMM),
		FontSize: px(cfg.FontSizeMM),
	}
	titleLeft := px(titleBoxMarginMM)
	l.Title = image.Rect(titleLeft, 0, l.Width-titleLeft, px(titleBoxHeightMM))

	iconSize := px(iconBoxSizeMM)
	iconLeft := (l.Width - iconSize) / 2
	l.Icon = image.Rect(iconLeft, l.Title.Max.Y, iconLeft+iconSize, l.Title.Max.Y+iconSize)

	box := px(leftBoxSizeMM)
	l.Master = image.Rect(0, px(masterBoxTopMM), box, px(masterBoxTopMM)+box)
	l.Infra = image.Rect(0, px(infraBoxTopMM), box, px(infraBoxTopMM)+box)
	l.Worker = image.Rect(0, px(workerBoxTopMM), box, px(workerBoxTopMM)+box)

	l.Name = image.Rect(0, l.Worker.Max.Y, l.Width, l.Worker.Max.Y+px(nameBoxHeightMM))

	right := px(rightColumnWidthMM)
	l.Side = image.Rect(l.Width-right, 0, l.Width, l.Height)

	for _, y := range dividerYMM {
		l.Dividers = append(l.Dividers, Divider{Y: px(y), X0: px(dividerStartXMM), X1: px(dividerEndXMM)})
	}
	return l
}

// center returns the geometric center of r
func center(r image.Rectangle) (float64, float64) {
	return float64(r.Min.X) + float64(r.Dx())/2, float64(r.Min.Y) + float64(r.Dy())/2
}
