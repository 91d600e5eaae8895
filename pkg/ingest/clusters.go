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

	"github.com/ocp-visualizer/ocp-visualizer/pkg/metadata"
	log "github.com/sirupsen/logrus"
)

const (
	colClusterID      = "Cluster Id"
	colEBSAccount     = "EBS Account"
	colAccount        = "Account"
	colVersion        = "Version"
	colEOL            = "EOL"
	colSupport        = "Support"
	colPlatform       = "Platform"
	colNetworkType    = "Network Type"
	colInstallType    = "Install Type"
	colManagedProduct = "Managed Product"
	colUpdateRisk     = "Update Risk"
	colCI             = "ci"
	colInitialVersion = "Initial Version"
	colLastSeen       = "Last Seen"
	colAssociates     = "Associates"
	colDesiredVersion = "Desired Version"
	colInstallDate    = "Install Date"
	colUPI            = "upi"
	colVariant        = "Variant"
)

// upiIndicator is the glyph the export uses to flag UPI installs
const upiIndicator = "ⓘ"

var requiredClusterColumns = []string{colClusterID, colAccount, colVersion, colSupport, colPlatform}

// Clusters is the ordered content of a cluster export
type Clusters struct {
	order   []string
	records map[string]metadata.ClusterRecord
}

// Len returns the number of clusters
func (c *Clusters) Len() int {
	return len(c.order)
}

// IDs returns cluster ids in source order
func (c *Clusters) IDs() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Get returns a cluster by id
func (c *Clusters) Get(id string) (metadata.ClusterRecord, bool) {
	r, ok := c.records[id]
	return r, ok
}

// Records returns the clusters in source order
func (c *Clusters) Records() []metadata.ClusterRecord {
	out := make([]metadata.ClusterRecord, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.records[id])
	}
	return out
}

func (c *Clusters) set(r metadata.ClusterRecord) {
	if _, ok := c.records[r.ClusterID]; !ok {
		c.order = append(c.order, r.ClusterID)
	}
	c.records[r.ClusterID] = r
}

// ReadClusters parses a cluster export. The first line of the file is filler,
// the second one holds the column names. defaultVariant is used for clusters
// without a variant.
func ReadClusters(path, defaultVariant string) (*Clusters, error) {
	records, err := readTSV(path)
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%w in %s", ErrNoHeader, path)
	}
	h := newHeader(records[1])
	if !h.has(colClusterID) {
		return nil, fmt.Errorf("%w in %s: column %q missing", ErrNoHeader, path, colClusterID)
	}
	hasVariant := h.has(colVariant)
	if !hasVariant {
		log.Warnf("Missing %q column in %s, clusters default to %q", colVariant, path, defaultVariant)
	}
	clusters := &Clusters{records: map[string]metadata.ClusterRecord{}}
	for i, record := range records[2:] {
		line := i + 3
		if id, _ := h.get(record, colClusterID); id == "" {
			continue
		}
		if col := h.missing(record, requiredClusterColumns); col != "" {
			log.Warnf("Skipping line %d of %s: missing %q", line, path, col)
			continue
		}
		c := metadata.ClusterRecord{
			ClusterID:      h.value(record, colClusterID),
			Account:        h.value(record, colAccount),
			EBSAccount:     h.value(record, colEBSAccount),
			Version:        h.value(record, colVersion),
			DesiredVersion: h.value(record, colDesiredVersion),
			InitialVersion: h.value(record, colInitialVersion),
			Support:        h.value(record, colSupport),
			Platform:       h.value(record, colPlatform),
			NetworkType:    h.value(record, colNetworkType),
			InstallType:    h.value(record, colInstallType),
			ManagedProduct: h.value(record, colManagedProduct),
			UpdateRisk:     h.value(record, colUpdateRisk),
			EOL:            isTrue(h.value(record, colEOL)),
			CI:             isTrue(h.value(record, colCI)),
			LastSeen:       h.value(record, colLastSeen),
			InstallDate:    h.value(record, colInstallDate),
			Associates:     ParseList(h.value(record, colAssociates)),
			Variant:        h.value(record, colVariant),
		}
		upi := h.value(record, colUPI)
		c.UPI = upi == upiIndicator || isTrue(upi)
		if c.Variant == "" {
			c.Variant = defaultVariant
		}
		clusters.set(c)
	}
	log.Infof("Read %d clusters from %s", clusters.Len(), path)
	log.Debugf("Cluster data: %+v", clusters.Records())
	return clusters, nil
}
