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

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "ocp-visualizer.yml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestParseDefaults(t *testing.T) {
	spec, err := Parse("")
	require.NoError(t, err)
	assert.Equal(t, 300, spec.Image.DPI)
	assert.Equal(t, 5, spec.Database.PoolSize)
	assert.Equal(t, 10, spec.Database.MaxOverflow)
	assert.Equal(t, 30*time.Second, spec.Database.PoolTimeout)
	assert.Equal(t, "?", spec.Ingest.DefaultVariant)
	assert.NotContains(t, spec.Output.Directory, "~")
}

func TestParseMergesDefaults(t *testing.T) {
	t.Setenv("REPORTS_DIR", "/srv/reports")
	p := writeConfig(t, `
output:
  directory: {{ .REPORTS_DIR }}
  html: true
image:
  dpi: 150
database:
  poolTimeout: 5s
  table: cluster_accounts
`)
	spec, err := Parse(p)
	require.NoError(t, err)
	assert.Equal(t, "/srv/reports", spec.Output.Directory)
	assert.True(t, spec.Output.HTML)
	assert.Equal(t, 150, spec.Image.DPI)
	assert.Equal(t, 100.0, spec.Image.WidthMM)
	assert.Equal(t, 5*time.Second, spec.Database.PoolTimeout)
	assert.Equal(t, "cluster_accounts", spec.Database.Table)
	assert.Equal(t, "s3_datahub_ccx", spec.Database.Catalog)
}

func TestParseRejectsUnknownFields(t *testing.T) {
	p := writeConfig(t, "image:\n  dpii: 300\n")
	_, err := Parse(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestParseMissingEnvironmentKey(t *testing.T) {
	p := writeConfig(t, "output:\n  directory: {{ .OCP_VISUALIZER_UNSET_VAR }}\n")
	_, err := Parse(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error rendering configuration template")
}

func TestValidate(t *testing.T) {
	spec := DefaultSpec()
	require.NoError(t, validate(spec))

	bad := DefaultSpec()
	bad.Image.TextColor = "white"
	bad.Database.Port = 70000
	bad.IndexerConfig = IndexerConfig{Enabled: true, Type: "opensearch"}
	err := validate(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid color")
	assert.Contains(t, err.Error(), "database.port")
	assert.Contains(t, err.Error(), "esServers")

	bad = DefaultSpec()
	bad.IndexerConfig = IndexerConfig{Enabled: true, Type: "kafka"}
	assert.ErrorContains(t, validate(bad), "unsupported indexer type")
}

func TestParseOverlays(t *testing.T) {
	t.Setenv("SUMMARY_INDEX", "ocp-summaries")
	base := writeConfig(t, `
output:
  html: true
  images: true
image:
  dpi: 150
indexerConfig:
  enabled: true
  type: opensearch
  esServers: [https://es-1:9200, https://es-2:9200]
`)
	overlay := writeConfig(t, `
output:
  images: false
indexerConfig:
  esServers: [https://es-3:9200]
  defaultIndex: {{ .SUMMARY_INDEX }}
`)
	spec, err := Parse(base, overlay)
	require.NoError(t, err)
	assert.True(t, spec.Output.HTML)
	assert.False(t, spec.Output.Images)
	assert.Equal(t, 150, spec.Image.DPI)
	assert.Equal(t, "opensearch", spec.IndexerConfig.Type)
	assert.Equal(t, []string{"https://es-3:9200"}, spec.IndexerConfig.ESServers)
	assert.Equal(t, "ocp-summaries", spec.IndexerConfig.DefaultIndex)
}

func TestMergeOverlay(t *testing.T) {
	merged, err := mergeOverlay([]byte("a:\n  b: 1\n  c: [x, y]\nd: keep\n"), []byte("a:\n  c: [z]\n  e: 2\n"))
	require.NoError(t, err)
	assert.YAMLEq(t, "a:\n  b: 1\n  c: [z]\n  e: 2\nd: keep\n", string(merged))

	_, err = mergeOverlay([]byte("a: 1\n"), []byte("[not a map"))
	assert.Error(t, err)
}
