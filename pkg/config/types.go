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

import "time"

// Spec configuration root
type Spec struct {
	// Output controls where and what gets written
	Output OutputConfig `yaml:"output"`
	// Ingest controls how exports are located and read
	Ingest IngestConfig `yaml:"ingest"`
	// Image holds the reference card geometry and fonts
	Image ImageConfig `yaml:"image"`
	// Assets allows overriding the embedded stylesheet, logo, icons and template
	Assets AssetsConfig `yaml:"assets"`
	// Database holds the cluster lookup connection settings
	Database DatabaseConfig `yaml:"database"`
	// IndexerConfig contains a IndexerConfig definition
	IndexerConfig IndexerConfig `yaml:"indexerConfig"`
	// Kubeconfig path to a valid kubeconfig file, used by the live node source
	Kubeconfig string `yaml:"kubeconfig"`
}

// OutputConfig holds the report output settings
type OutputConfig struct {
	// Directory root folder, reports land in <Directory>/<AccountName>/
	Directory string `yaml:"directory"`
	// HTML generate the HTML report
	HTML bool `yaml:"html"`
	// Images generate the PNG reference card
	Images bool `yaml:"images"`
	// FileDateLayout Go time layout used for the data date
	FileDateLayout string `yaml:"fileDateLayout"`
}

// IngestConfig holds the export parsing settings
type IngestConfig struct {
	// ClusterDir directory holding the per-cluster <cluster-id>.csv exports.
	// Empty means the directory of the cluster export
	ClusterDir string `yaml:"clusterDir"`
	// DefaultVariant used when the export has no Variant column
	DefaultVariant string `yaml:"defaultVariant"`
}

// ImageConfig holds the reference card settings, lengths in millimeters
type ImageConfig struct {
	DPI         int     `yaml:"dpi"`
	WidthMM     float64 `yaml:"widthMM"`
	HeightMM    float64 `yaml:"heightMM"`
	FontSizeMM  float64 `yaml:"fontSizeMM"`
	TextColor   string  `yaml:"textColor"`
	LineColor   string  `yaml:"lineColor"`
	LineWidthPX int     `yaml:"lineWidthPX"`
	RegularFont string  `yaml:"regularFont"`
	BoldFont    string  `yaml:"boldFont"`
}

// AssetsConfig points to a directory whose files take precedence over the embedded ones
type AssetsConfig struct {
	Directory string `yaml:"directory"`
}

// DatabaseConfig holds the Trino connection and pool settings
type DatabaseConfig struct {
	Host        string `yaml:"host"`
	Port        int    `yaml:"port"`
	Catalog     string `yaml:"catalog"`
	Schema      string `yaml:"schema"`
	Table       string `yaml:"table"`
	Source      string `yaml:"source"`
	Username    string `yaml:"username"`
	AccessToken string `yaml:"accessToken"`
	// PoolSize connections kept idle in the pool
	PoolSize int `yaml:"poolSize"`
	// MaxOverflow connections allowed on top of PoolSize
	MaxOverflow int `yaml:"maxOverflow"`
	// PoolTimeout bounds connection acquisition and the connectivity check
	PoolTimeout time.Duration `yaml:"poolTimeout"`
	// CachePath SQLite file keeping the last lookup per account, empty disables it
	CachePath string `yaml:"cachePath"`
}

// IndexerConfig holds the indexer configuration
type IndexerConfig struct {
	// Enabled enable indexer
	Enabled bool `yaml:"enabled"`
	// Type type of indexer: local, elastic or opensearch
	Type string `yaml:"type"`
	// ESServers List of ElasticSearch/OpenSearch instances
	ESServers []string `yaml:"esServers"`
	// DefaultIndex index to send cluster summaries to
	DefaultIndex string `yaml:"defaultIndex"`
	// InsecureSkipVerify disable TLS ceriticate verification
	InsecureSkipVerify bool `yaml:"insecureSkipVerify"`
	// MetricsDirectory directory used by the local indexer
	MetricsDirectory string `yaml:"metricsDirectory"`
	// TarballName when set, the local indexer output is packed into this gzipped tarball
	TarballName string `yaml:"tarballName"`
}
