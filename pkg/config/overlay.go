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
	"maps"

	"gopkg.in/yaml.v3"
)

// mergeOverlay lays overlay on top of base. Mappings are merged key by key,
// any other value including lists is replaced by the overlay's.
func mergeOverlay(base, overlay []byte) ([]byte, error) {
	var baseMap, overlayMap map[string]any
	if err := yaml.Unmarshal(base, &baseMap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal base YAML: %w", err)
	}
	if err := yaml.Unmarshal(overlay, &overlayMap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal overlay YAML: %w", err)
	}
	merged, err := yaml.Marshal(deepMergeMap(baseMap, overlayMap))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal merged YAML: %w", err)
	}
	return merged, nil
}

func deepMergeMap(base, overlay map[string]any) map[string]any {
	result := make(map[string]any, len(base))
	maps.Copy(result, base)
	for k, v := range overlay {
		baseMap, baseIsMap := result[k].(map[string]any)
		overlayMap, overlayIsMap := v.(map[string]any)
		if baseIsMap && overlayIsMap {
			result[k] = deepMergeMap(baseMap, overlayMap)
			continue
		}
		result[k] = v
	}
	return result
}
