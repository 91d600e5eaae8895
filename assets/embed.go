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

// Package assets holds the default stylesheet, logo, HTML template and support tier icons
package assets

import "embed"

const (
	Stylesheet     = "ocp-stylesheet.css"
	Logo           = "ocp-logo.png"
	ReportTemplate = "report.html.tmpl"
	IconsDir       = "icons"
)

//go:embed ocp-stylesheet.css ocp-logo.png report.html.tmpl icons/*.png
var FS embed.FS
