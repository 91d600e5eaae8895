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

package visualizer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	goindexers "github.com/cloud-bulldozer/go-commons/v2/indexers"
	"github.com/ocp-visualizer/ocp-visualizer/assets"
	"github.com/ocp-visualizer/ocp-visualizer/pkg/config"
	vizerrors "github.com/ocp-visualizer/ocp-visualizer/pkg/errors"
	"github.com/ocp-visualizer/ocp-visualizer/pkg/indexers"
	"github.com/ocp-visualizer/ocp-visualizer/pkg/metadata"
	"github.com/ocp-visualizer/ocp-visualizer/pkg/nodes"
	"github.com/ocp-visualizer/ocp-visualizer/pkg/util/fileutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"
	utilerrors "k8s.io/apimachinery/pkg/util/errors"
)

type MockIndexer struct {
	mock.Mock
}

func (m *MockIndexer) Index(data []any, opts goindexers.IndexingOpts) (string, error) {
	args := m.Called(data, opts)
	return args.String(0), args.Error(1)
}

func writeUTF16(t *testing.T, path string, lines ...string) {
	t.Helper()
	encoded, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().String(strings.Join(lines, "\r\n") + "\r\n")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte(encoded), 0o644))
}

func tsv(fields ...string) string {
	return strings.Join(fields, "\t")
}

func testSpec(t *testing.T, html, images bool) config.Spec {
	t.Helper()
	fileutils.SetEmbedConfiguration(assets.FS, "")
	spec := config.DefaultSpec()
	spec.Output.Directory = filepath.Join(t.TempDir(), "docs")
	spec.Output.HTML = html
	spec.Output.Images = images
	return spec
}

func writeExports(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	clusterFile := filepath.Join(dir, "clusters.csv")
	writeUTF16(t, clusterFile,
		"Exported clusters",
		tsv("Cluster Id", "Account", "Version", "Support", "Platform", "Variant"),
		tsv("good", "acme widgets", "4.14.5", "Premium", "AWS", "OCP"),
		tsv("bad", "acme widgets", "4.15.0", "Standard", "VSphere", "OKE"),
		tsv("missing", "acme widgets", "4.16.0", "Eval", "Azure", "OCP"),
	)
	nodeHeader := tsv("Host Name", "Cores", "Memory (GB)", "Roles")
	writeUTF16(t, filepath.Join(dir, "good.csv"),
		nodeHeader,
		tsv("prod-east-master-0", "8", "31.2", "master"),
		tsv("prod-east-master-1", "8", "31.2", "master"),
		tsv("prod-east-master-2", "8", "31.2", "master"),
		tsv("prod-east-infra-0", "4", "15.6", "infra,worker"),
		tsv("prod-east-worker-0", "16", "62.5", "worker"),
		tsv("prod-east-worker-1", "16", "62.5", "worker"),
	)
	// the derived name contains a path separator, so nothing can be written for it
	writeUTF16(t, filepath.Join(dir, "bad.csv"),
		nodeHeader,
		tsv("a.b/c.example", "4", "15.6", "worker"),
	)
	return clusterFile
}

func TestRunContinuesPastFailures(t *testing.T) {
	spec := testSpec(t, true, true)
	clusterFile := writeExports(t)
	mockIndexer := new(MockIndexer)
	mockIndexer.On("Index", mock.MatchedBy(func(docs []any) bool { return len(docs) == 2 }),
		goindexers.IndexingOpts{MetricName: metadata.SummaryMetricName}).Return("ok", nil)

	v, err := New(spec, "run-1", indexers.NewPublisherFor(mockIndexer))
	require.NoError(t, err)
	summaries, err := v.Run(clusterFile)
	require.Error(t, err)
	mockIndexer.AssertExpectations(t)

	require.Len(t, summaries, 2)
	good, bad := summaries[0], summaries[1]

	assert.Equal(t, "good", good.ClusterID)
	assert.False(t, good.Failed)
	assert.Equal(t, "prod-east", good.ClusterName)
	assert.Equal(t, "run-1", good.UUID)
	assert.Equal(t, 3, good.Master.Nodes)
	assert.Equal(t, 1, good.Infra.Nodes)
	assert.Equal(t, 2, good.Worker.Nodes)
	assert.Equal(t, 32, good.WorkerVCPU)
	assert.FileExists(t, good.HTMLPath)
	assert.FileExists(t, good.ImagePath)
	assert.Equal(t, filepath.Join(spec.Output.Directory, "AcmeWidgets"), filepath.Dir(good.ImagePath))

	assert.Equal(t, "bad", bad.ClusterID)
	assert.True(t, bad.Failed)
	assert.Empty(t, bad.HTMLPath)
	assert.Empty(t, bad.ImagePath)

	agg, ok := err.(utilerrors.Aggregate)
	require.True(t, ok)
	assert.Equal(t, []string{"bad"}, vizerrors.FailedClusters(agg.Errors()))
}

func TestRunMissingClusterExport(t *testing.T) {
	v, err := New(testSpec(t, true, false), "", nil)
	require.NoError(t, err)
	_, err = v.Run(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestRunClusterDirOverride(t *testing.T) {
	spec := testSpec(t, false, false)
	clusterFile := writeExports(t)
	spec.Ingest.ClusterDir = t.TempDir()
	v, err := New(spec, "", nil)
	require.NoError(t, err)
	summaries, err := v.Run(clusterFile)
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestProcessCountsOnly(t *testing.T) {
	v, err := New(testSpec(t, false, false), "", nil)
	require.NoError(t, err)
	fixed := time.Date(2025, 3, 19, 0, 0, 0, 0, time.UTC)
	v.now = func() time.Time { return fixed }

	inv := nodes.NewInventory()
	inv.Set(nodes.NodeRecord{Hostname: "lab-master-0", Cores: 4, MemoryGiB: 16, Master: true})
	inv.Set(nodes.NodeRecord{Hostname: "lab-worker-0", Cores: 8, MemoryGiB: 32, Worker: true})
	inv.Set(nodes.NodeRecord{Hostname: "lab-worker-1", Cores: 8, MemoryGiB: 32, Worker: true, Infra: true})

	summary, err := v.Process(metadata.ClusterRecord{ClusterID: "c-1", Account: "lab"}, inv, "2025-03-19")
	require.NoError(t, err)
	assert.Equal(t, "lab", summary.ClusterName)
	assert.Equal(t, 1, summary.Master.Nodes)
	assert.Equal(t, 1, summary.Infra.Nodes)
	assert.Equal(t, 1, summary.Worker.Nodes)
	assert.Equal(t, 8, summary.WorkerVCPU)
	assert.Empty(t, summary.HTMLPath)
	assert.Empty(t, summary.ImagePath)
	assert.True(t, fixed.Equal(summary.Timestamp))
}

func TestProcessExportBadHeader(t *testing.T) {
	v, err := New(testSpec(t, false, false), "", nil)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "c-1.csv")
	writeUTF16(t, path, "a\tb", "c\td")
	summary, err := v.ProcessExport(metadata.ClusterRecord{ClusterID: "c-1"}, path)
	require.Error(t, err)
	assert.True(t, summary.Failed)
	assert.Equal(t, []string{"c-1"}, vizerrors.FailedClusters([]error{err}))
}

func TestProcessAttachesUserMetadata(t *testing.T) {
	v, err := New(testSpec(t, false, false), "", nil)
	require.NoError(t, err)
	v.SetUserMetadata(map[string]any{"requester": "tam-emea"})
	inv := nodes.NewInventory()
	inv.Set(nodes.NodeRecord{Hostname: "node-a", Cores: 4, MemoryGiB: 16, Worker: true})
	summary, err := v.Process(metadata.ClusterRecord{ClusterID: "c-1"}, inv, "2025-03-19")
	require.NoError(t, err)
	assert.Equal(t, "tam-emea", summary.Metadata["requester"])
}
