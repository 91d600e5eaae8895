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
	"context"
	"fmt"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
)

const gib = 1024 * 1024 * 1024

// LoadInventory builds an inventory from the nodes of a running cluster,
// ordered by node name
func LoadInventory(ctx context.Context, clientSet kubernetes.Interface) (*Inventory, error) {
	inv := NewInventory()
	nodeList, err := clientSet.CoreV1().Nodes().List(ctx, metav1.ListOptions{})
	if err != nil {
		return inv, fmt.Errorf("failed to list nodes: %w", err)
	}
	items := nodeList.Items
	sort.Slice(items, func(i, j int) bool {
		return items[i].Name < items[j].Name
	})
	for _, n := range items {
		inv.Set(recordFromNode(n))
	}
	log.Infof("Loaded %d nodes from the cluster", inv.Len())
	return inv, nil
}

func recordFromNode(n corev1.Node) NodeRecord {
	record := NodeRecord{
		Hostname:     n.Name,
		Architecture: n.Status.NodeInfo.Architecture,
		Roles:        inferNodeRoles(n.Labels),
	}
	if cpu, ok := n.Status.Capacity[corev1.ResourceCPU]; ok {
		record.Cores = int(cpu.Value())
	}
	if mem, ok := n.Status.Capacity[corev1.ResourceMemory]; ok {
		record.MemoryGiB = float64(mem.Value()) / gib
	}
	for _, c := range n.Status.Conditions {
		if c.Type == corev1.NodeReady {
			record.Ready = c.Status == corev1.ConditionTrue
			if !c.LastHeartbeatTime.IsZero() {
				record.Heartbeat = c.LastHeartbeatTime.UTC().Format("2006-01-02 15:04:05")
			}
		}
	}
	ApplyRoleLabels(&record)
	return record
}

// inferNodeRoles returns a set of roles for a node based on standard labels.
func inferNodeRoles(labels map[string]string) []string {
	rolesSet := map[string]struct{}{}
	for k, v := range labels {
		if k == "kubernetes.io/role" && v != "" {
			rolesSet[v] = struct{}{}
		}
		if strings.HasPrefix(k, "node-role.kubernetes.io/") {
			r := strings.TrimPrefix(k, "node-role.kubernetes.io/")
			if r == "" && v != "" {
				rolesSet[v] = struct{}{}
			} else if r != "" {
				rolesSet[r] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(rolesSet))
	for r := range rolesSet {
		out = append(out, r)
	}
	sort.Strings(out)
	return out
}
