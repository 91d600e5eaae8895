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
	"strings"

	log "github.com/sirupsen/logrus"
)

// Classify returns the nodes belonging to role, in source order.
// Workers that also carry the infra flag are left out of the Worker bucket;
// no such exclusion applies to Master or Infra.
func Classify(inv *Inventory, role Role) *Inventory {
	out := NewInventory()
	var match func(NodeRecord) bool
	switch role {
	case Worker:
		match = func(n NodeRecord) bool { return n.Worker && !n.Infra }
	case Master:
		match = func(n NodeRecord) bool { return n.Master }
	case Infra:
		match = func(n NodeRecord) bool { return n.Infra }
	default:
		log.Warnf("Unknown node role %q", role)
		return out
	}
	log.Infof("Processing data for node type: %s", role)
	for _, n := range inv.Nodes() {
		if match(n) {
			out.Set(n)
		}
	}
	log.Debugf("%s nodes: %v", role, out.Hostnames())
	return out
}

// ApplyRoleLabels sets the role flags from role labels such as
// "master", "control-plane", "worker" or "infra"
func ApplyRoleLabels(n *NodeRecord) {
	for _, r := range n.Roles {
		switch strings.ToLower(strings.TrimSpace(r)) {
		case "master", "control-plane":
			n.Master = true
		case "worker":
			n.Worker = true
		case "infra":
			n.Infra = true
		}
	}
}
