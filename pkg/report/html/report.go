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

package html

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"

	"github.com/Masterminds/sprig/v3"
	"github.com/ocp-visualizer/ocp-visualizer/assets"
	"github.com/ocp-visualizer/ocp-visualizer/pkg/metadata"
	"github.com/ocp-visualizer/ocp-visualizer/pkg/nodes"
	"github.com/ocp-visualizer/ocp-visualizer/pkg/util"
	"github.com/ocp-visualizer/ocp-visualizer/pkg/util/fileutils"
	log "github.com/sirupsen/logrus"
)

// Input is what a cluster report is built from
type Input struct {
	Cluster  metadata.ClusterRecord
	Name     string
	FileDate string
	Master   *nodes.Inventory
	Infra    *nodes.Inventory
	Worker   *nodes.Inventory
}

// Result reports where the HTML landed and the per role totals
type Result struct {
	Path   string
	Master nodes.Totals
	Infra  nodes.Totals
	Worker nodes.Totals
}

type column struct {
	Title       string
	Class       string
	FooterClass string
	Groups      []nodes.Group
	Totals      nodes.Totals
}

type page struct {
	ClusterID string
	Version   string
	Name      string
	FileDate  string
	Columns   []column
}

// Renderer writes cluster reports below a root directory
type Renderer struct {
	root string
	tmpl *template.Template
}

// NewRenderer loads the report template, the override directory wins over the embedded copy
func NewRenderer(root string) (*Renderer, error) {
	raw, err := fileutils.ReadAsset(assets.ReportTemplate)
	if err != nil {
		return nil, err
	}
	tmpl, err := template.New(assets.ReportTemplate).Option("missingkey=error").Funcs(sprig.FuncMap()).Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", assets.ReportTemplate, err)
	}
	return &Renderer{root: root, tmpl: tmpl}, nil
}

// AccountDir returns the folder the reports of an account are written to
func AccountDir(root, account string) string {
	name := util.ToUpperCamelCase(account)
	if name == "" {
		name = "UnknownAccount"
	}
	return filepath.Join(root, name)
}

// Render writes <root>/<Account>/<name>.html next to the stylesheet and logo
func (r *Renderer) Render(in Input) (Result, error) {
	var result Result
	p := page{
		ClusterID: in.Cluster.ClusterID,
		Version:   in.Cluster.Version,
		Name:      in.Name,
		FileDate:  in.FileDate,
	}
	roles := []struct {
		role        nodes.Role
		inv         *nodes.Inventory
		class       string
		footerClass string
		totals      *nodes.Totals
	}{
		{nodes.Master, in.Master, "left-column", "left-footer", &result.Master},
		{nodes.Infra, in.Infra, "center-column", "center-footer", &result.Infra},
		{nodes.Worker, in.Worker, "right-column", "right-footer", &result.Worker},
	}
	for _, role := range roles {
		*role.totals = nodes.Sum(role.inv)
		p.Columns = append(p.Columns, column{
			Title:       role.role.Display(),
			Class:       role.class,
			FooterClass: role.footerClass,
			Groups:      nodes.GroupBySpec(role.inv),
			Totals:      *role.totals,
		})
	}
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, p); err != nil {
		return result, fmt.Errorf("rendering report for %s: %w", in.Name, err)
	}
	outputDir := AccountDir(r.root, in.Cluster.Account)
	if err := util.CreateFolder(outputDir); err != nil {
		return result, err
	}
	log.Infof("Copying supporting files to: %s", outputDir)
	for _, asset := range []string{assets.Stylesheet, assets.Logo} {
		if err := fileutils.CopyAsset(asset, outputDir); err != nil {
			return result, err
		}
	}
	result.Path = filepath.Join(outputDir, in.Name+".html")
	log.Infof("Writing output file: %s", result.Path)
	if err := util.CreateFile(result.Path, buf.Bytes()); err != nil {
		return result, err
	}
	return result, nil
}
