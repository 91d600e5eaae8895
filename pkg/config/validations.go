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
	"fmt"
	"regexp"
	"slices"

	utilerrors "k8s.io/apimachinery/pkg/util/errors"
)

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{6})$`)

var supportedIndexers = []string{"local", "elastic", "opensearch"}

func validate(spec Spec) error {
	var errs []error
	if spec.Output.FileDateLayout == "" {
		errs = append(errs, fmt.Errorf("output.fileDateLayout cannot be empty"))
	}
	if err := validateImage(spec.Image); err != nil {
		errs = append(errs, err)
	}
	if err := validateDatabase(spec.Database); err != nil {
		errs = append(errs, err)
	}
	if spec.IndexerConfig.Enabled {
		if !slices.Contains(supportedIndexers, spec.IndexerConfig.Type) {
			errs = append(errs, fmt.Errorf("unsupported indexer type %q, supported are: %v", spec.IndexerConfig.Type, supportedIndexers))
		}
		if spec.IndexerConfig.Type != "local" && len(spec.IndexerConfig.ESServers) == 0 {
			errs = append(errs, fmt.Errorf("indexer %s requires at least one entry in esServers", spec.IndexerConfig.Type))
		}
	}
	return utilerrors.NewAggregate(errs)
}

func validateImage(cfg ImageConfig) error {
	if cfg.DPI <= 0 {
		return fmt.Errorf("image.dpi must be greater than 0, got %d", cfg.DPI)
	}
	if cfg.WidthMM <= 0 || cfg.HeightMM <= 0 {
		return fmt.Errorf("image size must be positive, got %gx%gmm", cfg.WidthMM, cfg.HeightMM)
	}
	if cfg.FontSizeMM <= 0 {
		return fmt.Errorf("image.fontSizeMM must be greater than 0")
	}
	for _, c := range []string{cfg.TextColor, cfg.LineColor} {
		if !hexColor.MatchString(c) {
			return fmt.Errorf("invalid color %q, expected #RRGGBB", c)
		}
	}
	return nil
}

func validateDatabase(cfg DatabaseConfig) error {
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return fmt.Errorf("database.port out of range: %d", cfg.Port)
	}
	if cfg.PoolSize <= 0 {
		return fmt.Errorf("database.poolSize must be greater than 0")
	}
	if cfg.MaxOverflow < 0 {
		return fmt.Errorf("database.maxOverflow cannot be negative")
	}
	if cfg.PoolTimeout <= 0 {
		return fmt.Errorf("database.poolTimeout must be greater than 0")
	}
	if cfg.Table == "" {
		return fmt.Errorf("database.table cannot be empty")
	}
	return nil
}
