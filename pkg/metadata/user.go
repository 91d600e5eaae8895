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

package metadata

import (
	"fmt"
	"io"

	"github.com/ocp-visualizer/ocp-visualizer/pkg/util/fileutils"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ReadUserMetadata loads a YAML mapping from a file or URL. Its keys are
// attached to every indexed cluster summary.
func ReadUserMetadata(location string) (map[string]any, error) {
	log.Infof("Reading provided user metadata from %s", location)
	userMetadata := make(map[string]any)
	f, err := fileutils.GetReader(location)
	if err != nil {
		return userMetadata, err
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(&userMetadata); err != nil && err != io.EOF {
		return map[string]any{}, fmt.Errorf("decoding user metadata %s: %w", location, err)
	}
	return userMetadata, nil
}
