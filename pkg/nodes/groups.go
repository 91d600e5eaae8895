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

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"
)

// memoryRatio converts the reported memory into the marketed GiB size: 39.17 -> 40
const memoryRatio = 0.98

// Group lists the hostnames sharing a (cores, rounded memory) signature
type Group struct {
	Index     int      `json:"index"`
	Cores     int      `json:"cores"`
	MemoryGiB int      `json:"memoryGiB"`
	Hosts     []string `json:"hosts"`
}

// Totals aggregates a set of nodes. MemoryGiB is the raw, unrounded sum
type Totals struct {
	Nodes     int     `json:"nodes"`
	Cores     int     `json:"cores"`
	MemoryGiB float64 `json:"memoryGiB"`
}

// RoundMemory returns ceil(memGiB / 0.98)
func RoundMemory(memGiB float64) int {
	return int(math.Ceil(memGiB / memoryRatio))
}

// GroupBySpec groups nodes by signature, largest machines first. Hosts keep
// source order inside a group and groups are numbered from 1
func GroupBySpec(inv *Inventory) []Group {
	type key struct{ cores, mem int }
	index := map[key]int{}
	var groups []Group
	for _, n := range inv.Nodes() {
		k := key{n.Cores, RoundMemory(n.MemoryGiB)}
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group{Cores: k.cores, MemoryGiB: k.mem})
		}
		groups[i].Hosts = append(groups[i].Hosts, n.Hostname)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].Cores != groups[j].Cores {
			return groups[i].Cores > groups[j].Cores
		}
		return groups[i].MemoryGiB > groups[j].MemoryGiB
	})
	for i := range groups {
		groups[i].Index = i + 1
	}
	return groups
}

// Sum computes the totals of an inventory
func Sum(inv *Inventory) Totals {
	var cores, memory stats.Float64Data
	for _, n := range inv.Nodes() {
		cores = append(cores, float64(n.Cores))
		memory = append(memory, n.MemoryGiB)
	}
	totals := Totals{Nodes: inv.Len()}
	if totals.Nodes == 0 {
		return totals
	}
	c, _ := stats.Sum(cores)
	m, _ := stats.Sum(memory)
	totals.Cores = int(c)
	totals.MemoryGiB = m
	return totals
}
