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

package nodes

import "strings"

// UnknownCluster is the name used when no better one can be derived
const UnknownCluster = "Unknown Cluster"

// ClusterName derives a display name from hostnames given in source order.
// Dotted hostnames yield their second label, hyphenated ones the common prefix
// of all hostnames cut to four segments, anything else the first hostname.
func ClusterName(hostnames []string) string {
	if len(hostnames) == 0 {
		return UnknownCluster
	}
	first := hostnames[0]
	var name string
	switch {
	case strings.Contains(first, "."):
		name = strings.Split(first, ".")[1]
	case strings.Contains(first, "-"):
		prefix := commonPrefix(hostnames)
		prefix = strings.TrimRight(prefix, "-_")
		segments := strings.Split(prefix, "-")
		if len(segments) > 4 {
			segments = segments[:4]
		}
		name = strings.Join(segments, "-")
	default:
		name = first
	}
	if name == "" {
		return UnknownCluster
	}
	return name
}

func commonPrefix(words []string) string {
	prefix := words[0]
	for _, w := range words[1:] {
		i := 0
		for i < len(prefix) && i < len(w) && prefix[i] == w[i] {
			i++
		}
		prefix = prefix[:i]
	}
	return prefix
}
