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

package metadata

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/ocp-visualizer/ocp-visualizer/pkg/nodes"
)

// SummaryMetricName is the metricName of indexed cluster summaries
const SummaryMetricName = "clusterSummary"

// SupportTier normalized support level
type SupportTier string

const (
	TierPremium  SupportTier = "premium"
	TierStandard SupportTier = "standard"
	TierEval     SupportTier = "eval"
	TierNone     SupportTier = "none"
)

// ParseSupportTier normalizes raw support text. Unknown values map to TierNone
// and report false
func ParseSupportTier(raw string) (SupportTier, bool) {
	switch t := SupportTier(strings.ToLower(strings.TrimSpace(raw))); t {
	case TierPremium, TierStandard, TierEval, TierNone:
		return t, true
	}
	return TierNone, false
}

// ClusterRecord is one row of the top-level cluster export
type ClusterRecord struct {
	ClusterID      string   `json:"clusterId" yaml:"clusterId"`
	Account        string   `json:"account" yaml:"account"`
	EBSAccount     string   `json:"ebsAccount,omitempty" yaml:"ebsAccount,omitempty"`
	Version        string   `json:"version" yaml:"version"`
	DesiredVersion string   `json:"desiredVersion,omitempty" yaml:"desiredVersion,omitempty"`
	InitialVersion string   `json:"initialVersion,omitempty" yaml:"initialVersion,omitempty"`
	Support        string   `json:"support" yaml:"support"`
	Platform       string   `json:"platform" yaml:"platform"`
	NetworkType    string   `json:"networkType,omitempty" yaml:"networkType,omitempty"`
	InstallType    string   `json:"installType,omitempty" yaml:"installType,omitempty"`
	ManagedProduct string   `json:"managedProduct,omitempty" yaml:"managedProduct,omitempty"`
	UpdateRisk     string   `json:"updateRisk,omitempty" yaml:"updateRisk,omitempty"`
	EOL            bool     `json:"eol" yaml:"eol"`
	CI             bool     `json:"ci" yaml:"ci"`
	UPI            bool     `json:"upi" yaml:"upi"`
	Variant        string   `json:"variant" yaml:"variant"`
	LastSeen       string   `json:"lastSeen,omitempty" yaml:"lastSeen,omitempty"`
	InstallDate    string   `json:"installDate,omitempty" yaml:"installDate,omitempty"`
	Associates     []string `json:"associates" yaml:"associates"`
}

// Tier returns the normalized support tier
func (c ClusterRecord) Tier() SupportTier {
	t, _ := ParseSupportTier(c.Support)
	return t
}

// ClusterSummary is the result of processing one cluster
type ClusterSummary struct {
	MetricName  string       `json:"metricName,omitempty" yaml:"metricName,omitempty"`
	UUID        string       `json:"uuid" yaml:"uuid"`
	Timestamp   time.Time    `json:"timestamp" yaml:"timestamp"`
	ClusterID   string       `json:"clusterId" yaml:"clusterId"`
	ClusterName string       `json:"clusterName" yaml:"clusterName"`
	Account     string       `json:"account" yaml:"account"`
	Version     string       `json:"version" yaml:"version"`
	Platform    string       `json:"platform" yaml:"platform"`
	Support     string       `json:"support" yaml:"support"`
	Variant     string       `json:"variant" yaml:"variant"`
	DataDate    string       `json:"dataDate" yaml:"dataDate"`
	Master      nodes.Totals `json:"master" yaml:"master"`
	Infra       nodes.Totals `json:"infra" yaml:"infra"`
	Worker      nodes.Totals `json:"worker" yaml:"worker"`
	WorkerVCPU  int          `json:"workerVCPU" yaml:"workerVCPU"`
	HTMLPath    string       `json:"htmlPath,omitempty" yaml:"htmlPath,omitempty"`
	ImagePath   string       `json:"imagePath,omitempty" yaml:"imagePath,omitempty"`
	Failed      bool         `json:"failed" yaml:"failed"`

	// Metadata user provided keys, see ReadUserMetadata
	Metadata map[string]any `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

var (
	label  = color.New(color.Bold).SprintFunc()
	failed = color.New(color.FgRed).SprintFunc()
)

// Summaries is the printable result of a batch
type Summaries []ClusterSummary

// WriteText prints the node counts of every summary
func (s Summaries) WriteText(w io.Writer) error {
	for _, summary := range s {
		name := summary.ClusterName
		if summary.Failed {
			name = failed(name + " (failed)")
		}
		if _, err := fmt.Fprintf(w, "%s %s\n%s %d\n%s %d\n%s %d\n%s %d\n",
			label("Cluster Name:"), name,
			label("Master Node Count:"), summary.Master.Nodes,
			label("Infrastructure Node Count:"), summary.Infra.Nodes,
			label("Worker Node Count:"), summary.Worker.Nodes,
			label("Worker Node vCPU Count:"), summary.WorkerVCPU,
		); err != nil {
			return err
		}
	}
	return nil
}
