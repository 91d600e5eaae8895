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

package errors

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Stage names the pipeline step a ClusterError happened in
type Stage string

const (
	StageIngest Stage = "ingest"
	StageHTML   Stage = "html"
	StageImage  Stage = "image"
	StageIndex  Stage = "index"
)

// ClusterError ties a failure to the cluster being processed
type ClusterError struct {
	ClusterID string
	Stage     Stage
	Err       error
}

func (e *ClusterError) Error() string {
	return fmt.Sprintf("cluster %s: %s: %v", e.ClusterID, e.Stage, e.Err)
}

func (e *ClusterError) Unwrap() error {
	return e.Err
}

// NewClusterError wraps err, returning nil when err is nil
func NewClusterError(clusterID string, stage Stage, err error) error {
	if err == nil {
		return nil
	}
	return &ClusterError{ClusterID: clusterID, Stage: stage, Err: err}
}

// FailedClusters lists the cluster ids found in errs, in order and without duplicates
func FailedClusters(errs []error) []string {
	seen := map[string]struct{}{}
	var ids []string
	for _, err := range errs {
		var ce *ClusterError
		if !errors.As(err, &ce) {
			continue
		}
		if _, ok := seen[ce.ClusterID]; ok {
			continue
		}
		seen[ce.ClusterID] = struct{}{}
		ids = append(ids, ce.ClusterID)
	}
	return ids
}

// EnhanceYAMLParseError enhances YAML parsing errors with more context
func EnhanceYAMLParseError(filename string, err error) error {
	if err == nil {
		return nil
	}

	var yamlErr *yaml.TypeError
	if errors.As(err, &yamlErr) {
		return fmt.Errorf("failed to parse config file %s: %s", filename, strings.Join(yamlErr.Errors, "; "))
	}

	errStr := err.Error()
	if strings.Contains(errStr, "line ") {
		return fmt.Errorf("failed to parse config file %s: %s", filename, errStr)
	}

	return fmt.Errorf("failed to parse config file %s: %s. Please ensure the file contains valid YAML", filename, errStr)
}
