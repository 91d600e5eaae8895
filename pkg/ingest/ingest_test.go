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
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"
)

func writeUTF16(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()
	encoded, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().String(strings.Join(lines, "\r\n") + "\r\n")
	require.NoError(t, err)
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(encoded), 0o644))
	return p
}

func tsv(fields ...string) string {
	return strings.Join(fields, "\t")
}

var clusterHeader = tsv("Cluster Id", "EBS Account", "Account", "Version", "EOL", "Support", "Platform",
	"Network Type", "Install Type", "Managed Product", "Update Risk", "ci", "Initial Version", "Last Seen",
	"Associates", "Desired Version", "Install Date", "upi", "Variant")

func TestReadClusters(t *testing.T) {
	dir := t.TempDir()
	p := writeUTF16(t, dir, "clusters.csv",
		"Exported from SupportSense",
		clusterHeader,
		tsv("c-1", "123", "acme widgets", "4.14.5", "True", "Premium", "AWS", "OVNKubernetes", "IPI", "OCP", "low", "False", "4.12.0", "2025-03-01", "['111', '222']", "4.15.0", "2024-01-01", "ⓘ", "OCP"),
		tsv("", "", "", "", "", "", ""),
		tsv("c-2", "123", "acme widgets", "4.16.0", "False", "Standard", "VSphere", "", "", "", "", "True", "", "", "", "", "", "", ""),
		tsv("c-3", "123", "acme widgets"),
		tsv("c-1", "123", "acme widgets", "4.14.6", "False", "Premium", "AWS", "", "", "", "", "", "", "", "", "", "", "True", "OKE"),
	)

	clusters, err := ReadClusters(p, "?")
	require.NoError(t, err)
	assert.Equal(t, []string{"c-1", "c-2"}, clusters.IDs())

	c1, ok := clusters.Get("c-1")
	require.True(t, ok)
	assert.Equal(t, "4.14.6", c1.Version)
	assert.Equal(t, "OKE", c1.Variant)
	assert.True(t, c1.UPI)
	assert.False(t, c1.EOL)
	assert.Nil(t, c1.Associates)

	c2, _ := clusters.Get("c-2")
	assert.Equal(t, "?", c2.Variant)
	assert.True(t, c2.CI)
	assert.False(t, c2.UPI)
	assert.Equal(t, "VSphere", c2.Platform)
}

func TestReadClustersFirstLineIgnored(t *testing.T) {
	dir := t.TempDir()
	p := writeUTF16(t, dir, "clusters.csv",
		tsv("Cluster Id", "Account", "Version", "Support", "Platform"),
		tsv("Cluster Id", "Account", "Version", "Support", "Platform", "Associates", "upi"),
		tsv("c-9", "Acme", "4.15.1", "Eval", "Azure", "a, b", "ⓘ"),
	)
	clusters, err := ReadClusters(p, "?")
	require.NoError(t, err)
	require.Equal(t, 1, clusters.Len())
	c := clusters.Records()[0]
	assert.Equal(t, "c-9", c.ClusterID)
	assert.Equal(t, []string{"a", "b"}, c.Associates)
	assert.True(t, c.UPI)
	assert.Equal(t, "?", c.Variant)
}

func TestReadClustersErrors(t *testing.T) {
	_, err := ReadClusters(filepath.Join(t.TempDir(), "missing.csv"), "?")
	assert.True(t, errors.Is(err, ErrInputNotFound))

	dir := t.TempDir()
	p := writeUTF16(t, dir, "short.csv", "only filler")
	_, err = ReadClusters(p, "?")
	assert.True(t, errors.Is(err, ErrNoHeader))

	p = writeUTF16(t, dir, "nokey.csv", "filler", tsv("Account", "Version"))
	_, err = ReadClusters(p, "?")
	assert.True(t, errors.Is(err, ErrNoHeader))
}

var nodeHeader = tsv("Host Name", "Ready", "Node Heartbeat", "Architecture", "Cores", "Memory (GB)", "Master", "Worker", "Infra", "Roles")

func TestReadNodes(t *testing.T) {
	dir := t.TempDir()
	p := writeUTF16(t, dir, "c-1.csv",
		nodeHeader,
		tsv("prod-east-master-0", "True", "2025-03-01", "amd64", "8", "31.2", "True", "False", "False", "['master', 'control-plane']"),
		tsv("prod-east-worker-0", "True", "", "amd64", "16", "62.8", "False", "True", "False", "['worker']"),
		tsv("prod-east-infra-0", "False", "", "amd64", "4", "15.6", "False", "True", "True", "['worker', 'infra']"),
		tsv("prod-east-bad-0", "True", "", "amd64", "many", "15.6", "False", "True", "False", "[]"),
		tsv("prod-east-short-0", "True"),
		tsv("", "", "", "", "", "", "", "", "", ""),
	)
	inv, err := ReadNodes(p)
	require.NoError(t, err)
	assert.Equal(t, []string{"prod-east-master-0", "prod-east-worker-0", "prod-east-infra-0"}, inv.Hostnames())

	m, _ := inv.Get("prod-east-master-0")
	assert.Equal(t, 8, m.Cores)
	assert.InDelta(t, 31.2, m.MemoryGiB, 1e-9)
	assert.True(t, m.Master)
	assert.True(t, m.Ready)
	assert.Equal(t, []string{"master", "control-plane"}, m.Roles)

	infra, _ := inv.Get("prod-east-infra-0")
	assert.True(t, infra.Worker)
	assert.True(t, infra.Infra)
	assert.False(t, infra.Ready)
}

func TestReadNodesFillerLineAndDerivedFlags(t *testing.T) {
	dir := t.TempDir()
	p := writeUTF16(t, dir, "c-2.csv",
		"Node export",
		tsv("Host Name", "Cores", "Memory (GB)", "Roles"),
		tsv("lab-w-0", "8.0", "32", "['worker']"),
		tsv("lab-m-0", "4", "16", "['control-plane']"),
		tsv("lab-x-0", "4", "16", "__import__('os').system('true')"),
	)
	inv, err := ReadNodes(p)
	require.NoError(t, err)
	require.Equal(t, 3, inv.Len())
	w, _ := inv.Get("lab-w-0")
	assert.True(t, w.Worker)
	assert.Equal(t, 8, w.Cores)
	m, _ := inv.Get("lab-m-0")
	assert.True(t, m.Master)
	x, _ := inv.Get("lab-x-0")
	assert.Equal(t, []string{"__import__('os').system('true')"}, x.Roles)
	assert.False(t, x.Master || x.Worker || x.Infra)
}

func TestReadNodesErrors(t *testing.T) {
	_, err := ReadNodes(filepath.Join(t.TempDir(), "nope.csv"))
	assert.ErrorIs(t, err, ErrInputNotFound)

	dir := t.TempDir()
	p := writeUTF16(t, dir, "bad.csv", "a\tb", "c\td", tsv("Host Name", "Cores"))
	_, err = ReadNodes(p)
	assert.ErrorIs(t, err, ErrNoHeader)
}

func TestDataDate(t *testing.T) {
	dir := t.TempDir()
	p := writeUTF16(t, dir, "c-1.csv", nodeHeader)
	mtime := time.Date(2025, 3, 19, 10, 0, 0, 0, time.Local)
	require.NoError(t, os.Chtimes(p, mtime, mtime))
	assert.Equal(t, "2025-03-19", DataDate(p, "2006-01-02"))
	assert.Equal(t, UnknownDate, DataDate(filepath.Join(dir, "missing.csv"), "2006-01-02"))
	assert.Equal(t, filepath.Join(dir, "c-1.csv"), NodeExportPath(dir, "c-1"))
}

func TestParseList(t *testing.T) {
	testCases := []struct {
		in       string
		expected []string
	}{
		{"", nil},
		{"[]", nil},
		{"['master', 'worker']", []string{"master", "worker"}},
		{`["infra"]`, []string{"infra"}},
		{"a, b ,c", []string{"a", "b", "c"}},
		{"[master, 'worker'", []string{"master", "worker"}},
		{"__import__('os')", []string{"__import__('os')"}},
		{"'solo'", []string{"solo"}},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseList(tc.in))
		})
	}
}
