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

package ingest

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseList turns list text such as "['master', 'worker']" or "a, b" into its
// elements. The text is decoded as a YAML flow sequence of strings, falling
// back to splitting on commas; it is never evaluated.
func ParseList(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	var items []string
	if err := yaml.Unmarshal([]byte(text), &items); err != nil || items == nil {
		items = splitList(text)
	}
	var out []string
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func splitList(text string) []string {
	text = strings.TrimSuffix(strings.TrimPrefix(text, "["), "]")
	var items []string
	for _, item := range strings.Split(text, ",") {
		item = strings.TrimSpace(item)
		if len(item) >= 2 && (item[0] == '\'' || item[0] == '"') && item[len(item)-1] == item[0] {
			item = item[1 : len(item)-1]
		}
		items = append(items, item)
	}
	return items
}
