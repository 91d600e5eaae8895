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
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ocp-visualizer/ocp-visualizer/pkg/nodes"
	log "github.com/sirupsen/logrus"
)

const (
	colHostName     = "Host Name"
	colReady        = "Ready"
	colHeartbeat    = "Node Heartbeat"
	colArchitecture = "Architecture"
	colCores        = "Cores"
	colMemory       = "Memory (GB)"
	colMaster       = "Master"
	colWorker       = "Worker"
	colInfra        = "Infra"
	colRoles        = "Roles"
)

// UnknownDate is returned by DataDate when the export cannot be stat'ed
const UnknownDate = "Unknown"

var requiredNodeColumns = []string{colHostName, colCores, colMemory}

// NodeExportPath returns the location of a cluster's node export
func NodeExportPath(dir, clusterID string) string {
	return filepath.Join(dir, clusterID+".csv")
}

// ReadNodes parses a per-cluster node export. The header is the first of the
// first two lines holding a "Host Name" column.
func ReadNodes(path string) (*nodes.Inventory, error) {
	log.Infof("Opening file: %s", path)
	records, err := readTSV(path)
	if err != nil {
		return nil, err
	}
	start := -1
	for i := 0; i < len(records) && i < 2; i++ {
		if newHeader(records[i]).has(colHostName) {
			start = i
			break
		}
	}
	if start < 0 {
		return nil, fmt.Errorf("%w in %s: column %q missing", ErrNoHeader, path, colHostName)
	}
	h := newHeader(records[start])
	deriveFlags := !h.has(colMaster) && !h.has(colWorker) && !h.has(colInfra)
	inv := nodes.NewInventory()
	for i, record := range records[start+1:] {
		line := start + i + 2
		if host, _ := h.get(record, colHostName); host == "" {
			continue
		}
		if col := h.missing(record, requiredNodeColumns); col != "" {
			log.Warnf("Skipping line %d of %s: missing %q", line, path, col)
			continue
		}
		cores, err := parseCores(h.value(record, colCores))
		if err != nil {
			log.Warnf("Skipping line %d of %s: invalid %s: %v", line, path, colCores, err)
			continue
		}
		memory, err := strconv.ParseFloat(h.value(record, colMemory), 64)
		if err != nil || memory < 0 {
			log.Warnf("Skipping line %d of %s: invalid %s %q", line, path, colMemory, h.value(record, colMemory))
			continue
		}
		n := nodes.NodeRecord{
			Hostname:     h.value(record, colHostName),
			Cores:        cores,
			MemoryGiB:    memory,
			Architecture: h.value(record, colArchitecture),
			Ready:        isTrue(h.value(record, colReady)),
			Heartbeat:    h.value(record, colHeartbeat),
			Roles:        ParseList(h.value(record, colRoles)),
			Master:       isTrue(h.value(record, colMaster)),
			Worker:       isTrue(h.value(record, colWorker)),
			Infra:        isTrue(h.value(record, colInfra)),
		}
		if deriveFlags {
			nodes.ApplyRoleLabels(&n)
		}
		inv.Set(n)
	}
	log.Debugf("Node data: %+v", inv.Nodes())
	return inv, nil
}

// parseCores accepts integers and integral floats such as "8.0"
func parseCores(v string) (int, error) {
	cores, err := strconv.Atoi(v)
	if err != nil {
		f, ferr := strconv.ParseFloat(v, 64)
		if ferr != nil {
			return 0, err
		}
		cores = int(f)
	}
	if cores < 0 {
		return 0, fmt.Errorf("negative value %d", cores)
	}
	return cores, nil
}

// DataDate returns the modification date of an export formatted with layout
func DataDate(path, layout string) string {
	fi, err := os.Stat(path)
	if err != nil {
		log.Errorf("Error getting file date of %s: %v", path, err)
		return UnknownDate
	}
	return fi.ModTime().Format(layout)
}
