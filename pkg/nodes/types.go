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

// Role names a node bucket
type Role string

const (
	Master Role = "Master"
	Infra  Role = "Infra"
	Worker Role = "Worker"
)

// Display returns the column title used in reports
func (r Role) Display() string {
	switch r {
	case Master:
		return "Control Plane"
	case Infra:
		return "Infrastructure"
	case Worker:
		return "Worker"
	}
	return string(r)
}

// NodeRecord is one row of a per-cluster node export
type NodeRecord struct {
	Hostname     string   `json:"hostname" yaml:"hostname"`
	Cores        int      `json:"cores" yaml:"cores"`
	MemoryGiB    float64  `json:"memoryGiB" yaml:"memoryGiB"`
	Architecture string   `json:"architecture,omitempty" yaml:"architecture,omitempty"`
	Ready        bool     `json:"ready" yaml:"ready"`
	Heartbeat    string   `json:"heartbeat,omitempty" yaml:"heartbeat,omitempty"`
	Roles        []string `json:"roles,omitempty" yaml:"roles,omitempty"`
	Master       bool     `json:"master" yaml:"master"`
	Worker       bool     `json:"worker" yaml:"worker"`
	Infra        bool     `json:"infra" yaml:"infra"`
}

// Inventory maps hostname to NodeRecord keeping first appearance order
type Inventory struct {
	order []string
	nodes map[string]NodeRecord
}

// NewInventory returns an empty inventory
func NewInventory() *Inventory {
	return &Inventory{nodes: map[string]NodeRecord{}}
}

// Set stores a record. A hostname seen before is overwritten in place
func (inv *Inventory) Set(n NodeRecord) {
	if _, ok := inv.nodes[n.Hostname]; !ok {
		inv.order = append(inv.order, n.Hostname)
	}
	inv.nodes[n.Hostname] = n
}

// Get returns the record stored for hostname
func (inv *Inventory) Get(hostname string) (NodeRecord, bool) {
	if inv == nil {
		return NodeRecord{}, false
	}
	n, ok := inv.nodes[hostname]
	return n, ok
}

// Len returns the number of nodes
func (inv *Inventory) Len() int {
	if inv == nil {
		return 0
	}
	return len(inv.order)
}

// Hostnames returns hostnames in source order
func (inv *Inventory) Hostnames() []string {
	if inv == nil {
		return nil
	}
	out := make([]string, len(inv.order))
	copy(out, inv.order)
	return out
}

// Nodes returns records in source order
func (inv *Inventory) Nodes() []NodeRecord {
	if inv == nil {
		return nil
	}
	out := make([]NodeRecord, 0, len(inv.order))
	for _, h := range inv.order {
		out = append(out, inv.nodes[h])
	}
	return out
}
