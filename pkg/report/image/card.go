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
	"bytes"
	"fmt"
	"image"
	"os"
	"strings"

	// register the PNG decoder for icon assets
	_ "image/png"

	"github.com/fogleman/gg"
	"github.com/ocp-visualizer/ocp-visualizer/assets"
	"github.com/ocp-visualizer/ocp-visualizer/pkg/config"
	"github.com/ocp-visualizer/ocp-visualizer/pkg/metadata"
	"github.com/ocp-visualizer/ocp-visualizer/pkg/util"
	"github.com/ocp-visualizer/ocp-visualizer/pkg/util/fileutils"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Counts holds the node count of each role
type Counts struct {
	Master int `json:"master"`
	Infra  int `json:"infra"`
	Worker int `json:"worker"`
}

// Card is the content of a reference image
type Card struct {
	Counts     Counts
	Name       string
	Version    string
	Platform   string
	Support    string
	WorkerVCPU int
	Variant    string
}

func (c Card) withDefaults() Card {
	if c.Name == "" {
		c.Name = "Name Box"
	}
	if c.Version == "" {
		c.Version = "Version"
	}
	if c.Platform == "" {
		c.Platform = "Unknown"
	}
	if c.Support == "" {
		c.Support = "None"
	}
	if c.Variant == "" {
		c.Variant = "?"
	}
	return c
}

// FileName returns the PNG name of a cluster card
func FileName(clusterName, fileDate string) string {
	return fmt.Sprintf("%s_%s.png", clusterName, fileDate)
}

// IconAsset returns the icon matching a support level, falling back to the "none" icon
func IconAsset(support string) string {
	tier, known := metadata.ParseSupportTier(support)
	if !known {
		log.Warnf("Unknown support level '%s', defaulting to '%s'", strings.ToLower(strings.TrimSpace(support)), metadata.TierNone)
	}
	return fmt.Sprintf("%s/ocp-%s.png", assets.IconsDir, tier)
}

// Renderer draws reference cards
type Renderer struct {
	cfg     config.ImageConfig
	layout  Layout
	regular font.Face
	bold    font.Face
}

// NewRenderer prepares the layout and loads the fonts. Empty font paths use the Go fonts
func NewRenderer(cfg config.ImageConfig) (*Renderer, error) {
	r := &Renderer{cfg: cfg, layout: NewLayout(cfg)}
	var err error
	if r.regular, err = loadFace(cfg.RegularFont, goregular.TTF, r.layout.FontSize); err != nil {
		return nil, err
	}
	if r.bold, err = loadFace(cfg.BoldFont, gobold.TTF, r.layout.FontSize); err != nil {
		return nil, err
	}
	return r, nil
}

// Layout returns the geometry used by the renderer
func (r *Renderer) Layout() Layout {
	return r.layout
}

func loadFace(path string, fallback []byte, sizePX int) (font.Face, error) {
	data := fallback
	if path != "" {
		var err error
		if data, err = os.ReadFile(util.ExpandHome(path)); err != nil {
			return nil, fmt.Errorf("reading font %s: %w", path, err)
		}
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing font %s: %w", path, err)
	}
	// 72 DPI makes the point size equal to the pixel size
	return opentype.NewFace(f, &opentype.FaceOptions{Size: float64(sizePX), DPI: 72, Hinting: font.HintingFull})
}

// Draw renders a card onto a transparent canvas
func (r *Renderer) Draw(card Card) (image.Image, error) {
	dc, err := r.draw(card)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

func (r *Renderer) draw(card Card) (*gg.Context, error) {
	card = card.withDefaults()
	l := r.layout
	dc := gg.NewContext(l.Width, l.Height)
	dc.SetHexColor(r.cfg.TextColor)

	dc.SetFontFace(r.regular)
	sideX, sideY := center(l.Side)
	dc.Push()
	dc.RotateAbout(gg.Radians(-90), sideX, sideY)
	dc.DrawStringAnchored(fmt.Sprintf("%s (%s vCPU)", card.Platform, util.FormatCount(card.WorkerVCPU)), sideX, sideY, 0.5, 0.5)
	dc.Pop()

	textBox := func(text string, box image.Rectangle) {
		x, y := center(box)
		dc.DrawStringAnchored(text, x, y, 0.5, 0.5)
	}
	textBox(fmt.Sprintf("%s - %s", card.Variant, card.Version), l.Title)
	textBox(util.FormatCount(card.Counts.Master), l.Master)
	textBox(util.FormatCount(card.Counts.Infra), l.Infra)
	textBox(util.FormatCount(card.Counts.Worker), l.Worker)
	dc.SetFontFace(r.bold)
	textBox(card.Name, l.Name)

	icon, err := loadIcon(IconAsset(card.Support), l.Icon.Dx())
	if err != nil {
		return nil, err
	}
	dc.DrawImage(icon, l.Icon.Min.X, l.Icon.Min.Y)

	dc.SetHexColor(r.cfg.LineColor)
	dc.SetLineWidth(float64(r.cfg.LineWidthPX))
	for _, d := range l.Dividers {
		dc.DrawLine(float64(d.X0), float64(d.Y), float64(d.X1), float64(d.Y))
		dc.Stroke()
	}
	return dc, nil
}

func loadIcon(name string, size int) (image.Image, error) {
	raw, err := fileutils.ReadAsset(name)
	if err != nil {
		return nil, err
	}
	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decoding icon %s: %w", name, err)
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst, nil
}

// Save draws the card and writes it as PNG to path. Nothing is left at path on failure
func (r *Renderer) Save(card Card, path string) error {
	dc, err := r.draw(card)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := util.CreateFile(path, buf.Bytes()); err != nil {
		return err
	}
	log.Infof("Image saved successfully to %s", path)
	return nil
}
