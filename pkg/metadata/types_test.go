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
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/ocp-visualizer/ocp-visualizer/pkg/nodes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSupportTier(t *testing.T) {
	testCases := []struct {
		raw   string
		tier  SupportTier
		known bool
	}{
		{"Premium", TierPremium, true},
		{"  standard ", TierStandard, true},
		{"EVAL", TierEval, true},
		{"None", TierNone, true},
		{"gold", TierNone, false},
		{"", TierNone, false},
	}
	for _, tc := range testCases {
		tier, known := ParseSupportTier(tc.raw)
		assert.Equal(t, tc.tier, tier, tc.raw)
		assert.Equal(t, tc.known, known, tc.raw)
	}
	assert.Equal(t, TierPremium, ClusterRecord{Support: "Premium"}.Tier())
}

func TestSummariesWriteText(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	s := Summaries{{
		ClusterName: "prod-east",
		Master:      nodes.Totals{Nodes: 3},
		Infra:       nodes.Totals{Nodes: 0},
		Worker:      nodes.Totals{Nodes: 6, Cores: 96},
		WorkerVCPU:  96,
	}}
	require.NoError(t, s.WriteText(&buf))
	assert.Equal(t, "Cluster Name: prod-east\nMaster Node Count: 3\nInfrastructure Node Count: 0\nWorker Node Count: 6\nWorker Node vCPU Count: 96\n", buf.String())
}
