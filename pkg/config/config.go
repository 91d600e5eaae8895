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

package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
	"github.com/ocp-visualizer/ocp-visualizer/pkg/errors"
	"github.com/ocp-visualizer/ocp-visualizer/pkg/util"
	"github.com/ocp-visualizer/ocp-visualizer/pkg/util/fileutils"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// DefaultSpec returns the built-in configuration
func DefaultSpec() Spec {
	return Spec{
		Output: OutputConfig{
			Directory:      filepath.Join("~", "Documents", "CustomerDocs"),
			FileDateLayout: "2006-01-02",
		},
		Ingest: IngestConfig{
			DefaultVariant: "?",
		},
		Image: ImageConfig{
			DPI:         300,
			WidthMM:     100,
			HeightMM:    100,
			FontSizeMM:  7.5,
			TextColor:   "#FFFFFF",
			LineColor:   "#FFFFFF",
			LineWidthPX: 2,
		},
		Database: DatabaseConfig{
			Host:        "prod.sep.starburst.redhat.com",
			Port:        443,
			Catalog:     "s3_datahub_ccx",
			Schema:      "ccx_sensitive",
			Table:       "ccx_sensitive.cluster_accounts",
			Source:      "ocp-visualizer",
			PoolSize:    5,
			MaxOverflow: 10,
			PoolTimeout: 30 * time.Second,
		},
		IndexerConfig: IndexerConfig{
			Type:             "local",
			MetricsDirectory: "cluster-summaries",
		},
	}
}

func renderConfig(cfg []byte) ([]byte, error) {
	rendered, err := util.RenderTemplate(cfg, util.EnvToMap(), util.MissingKeyError)
	if err != nil {
		return rendered, fmt.Errorf("error rendering configuration template: %s", err)
	}
	return rendered, nil
}

// Parse reads a configuration file or URL, lays the overlays on top of it in
// order and fills everything left unset with DefaultSpec. Environment references
// are expanded in every file before merging. An empty location with no overlays
// returns the defaults.
func Parse(location string, overlays ...string) (Spec, error) {
	if location == "" && len(overlays) == 0 {
		spec := DefaultSpec()
		return spec, finalize(&spec)
	}
	var cfg []byte
	for _, loc := range append([]string{location}, overlays...) {
		if loc == "" {
			continue
		}
		rendered, err := read(loc)
		if err != nil {
			return Spec{}, err
		}
		if cfg == nil {
			cfg = rendered
			continue
		}
		if cfg, err = mergeOverlay(cfg, rendered); err != nil {
			return Spec{}, fmt.Errorf("applying overlay %s: %w", loc, err)
		}
	}
	return decode(location, cfg)
}

func read(location string) ([]byte, error) {
	f, err := fileutils.GetReader(location)
	if err != nil {
		return nil, fmt.Errorf("error reading configuration file %s: %w", location, err)
	}
	defer f.Close()
	cfg, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("error reading configuration file %s: %w", location, err)
	}
	return renderConfig(cfg)
}

func decode(location string, renderedCfg []byte) (Spec, error) {
	var spec Spec
	yamlDec := yaml.NewDecoder(bytes.NewReader(renderedCfg))
	yamlDec.KnownFields(true)
	if err := yamlDec.Decode(&spec); err != nil && err != io.EOF {
		return spec, errors.EnhanceYAMLParseError(location, err)
	}
	if err := mergo.Merge(&spec, DefaultSpec()); err != nil {
		return spec, fmt.Errorf("merging defaults into %s: %w", location, err)
	}
	log.Debugf("Loaded configuration from %s", location)
	return spec, finalize(&spec)
}

func finalize(spec *Spec) error {
	spec.Output.Directory = util.ExpandHome(spec.Output.Directory)
	spec.Assets.Directory = util.ExpandHome(spec.Assets.Directory)
	spec.Database.CachePath = util.ExpandHome(spec.Database.CachePath)
	if spec.Kubeconfig == "" {
		spec.Kubeconfig = os.Getenv("KUBECONFIG")
	}
	return validate(*spec)
}
