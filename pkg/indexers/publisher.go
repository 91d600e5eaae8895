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

package indexers

import (
	"fmt"

	"github.com/cloud-bulldozer/go-commons/v2/indexers"
	"github.com/ocp-visualizer/ocp-visualizer/pkg/config"
	"github.com/ocp-visualizer/ocp-visualizer/pkg/metadata"
	log "github.com/sirupsen/logrus"
)

// Publisher sends cluster summaries to an indexer
type Publisher struct {
	indexer indexers.Indexer
}

// IndexerConfig translates the configuration section into the go-commons one
func IndexerConfig(cfg config.IndexerConfig) indexers.IndexerConfig {
	return indexers.IndexerConfig{
		Type:               indexers.IndexerType(cfg.Type),
		Servers:            cfg.ESServers,
		Index:              cfg.DefaultIndex,
		InsecureSkipVerify: cfg.InsecureSkipVerify,
		MetricsDirectory:   cfg.MetricsDirectory,
	}
}

// NewPublisher creates the configured indexer. It returns nil when indexing is disabled
func NewPublisher(cfg config.IndexerConfig) (*Publisher, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	indexerConfig := IndexerConfig(cfg)
	log.Infof("📁 Creating indexer: %s", indexerConfig.Type)
	indexer, err := indexers.NewIndexer(indexerConfig)
	if err != nil {
		return nil, fmt.Errorf("%v indexer: %w", indexerConfig.Type, err)
	}
	return NewPublisherFor(*indexer), nil
}

// NewPublisherFor wraps an existing indexer
func NewPublisherFor(indexer indexers.Indexer) *Publisher {
	return &Publisher{indexer: indexer}
}

// Publish indexes one document per summary. A nil Publisher does nothing
func (p *Publisher) Publish(summaries []metadata.ClusterSummary) error {
	if p == nil || len(summaries) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(summaries))
	for _, s := range summaries {
		s.MetricName = metadata.SummaryMetricName
		docs = append(docs, s)
	}
	log.Infof("Indexing %d cluster summaries", len(docs))
	resp, err := p.indexer.Index(docs, indexers.IndexingOpts{MetricName: metadata.SummaryMetricName})
	if err != nil {
		return fmt.Errorf("indexing cluster summaries: %w", err)
	}
	log.Info(resp)
	return nil
}
