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
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/ocp-visualizer/ocp-visualizer/pkg/config"
	vizerrors "github.com/ocp-visualizer/ocp-visualizer/pkg/errors"
	"github.com/ocp-visualizer/ocp-visualizer/pkg/indexers"
	"github.com/ocp-visualizer/ocp-visualizer/pkg/ingest"
	"github.com/ocp-visualizer/ocp-visualizer/pkg/metadata"
	"github.com/ocp-visualizer/ocp-visualizer/pkg/nodes"
	htmlreport "github.com/ocp-visualizer/ocp-visualizer/pkg/report/html"
	imagereport "github.com/ocp-visualizer/ocp-visualizer/pkg/report/image"
	"github.com/ocp-visualizer/ocp-visualizer/pkg/util"
	log "github.com/sirupsen/logrus"
	utilerrors "k8s.io/apimachinery/pkg/util/errors"
)

// Visualizer turns cluster inventories into reports
type Visualizer struct {
	spec      config.Spec
	uuid      string
	html      *htmlreport.Renderer
	image     *imagereport.Renderer
	publisher *indexers.Publisher
	metadata  map[string]any
	now       func() time.Time
}

// New prepares the renderers enabled in spec.Output. publisher may be nil
func New(spec config.Spec, uuid string, publisher *indexers.Publisher) (*Visualizer, error) {
	v := &Visualizer{spec: spec, uuid: uuid, publisher: publisher, now: time.Now}
	var err error
	if spec.Output.HTML {
		if v.html, err = htmlreport.NewRenderer(spec.Output.Directory); err != nil {
			return nil, err
		}
	}
	if spec.Output.Images {
		if v.image, err = imagereport.NewRenderer(spec.Image); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// SetUserMetadata attaches md to every summary produced afterwards
func (v *Visualizer) SetUserMetadata(md map[string]any) {
	v.metadata = md
}

// Run processes every cluster of a cluster export. A cluster failing does not
// stop the others; the returned error aggregates every failure
func (v *Visualizer) Run(clusterFile string) (metadata.Summaries, error) {
	log.Infof("Processing file: %s", clusterFile)
	clusters, err := ingest.ReadClusters(clusterFile, v.spec.Ingest.DefaultVariant)
	if err != nil {
		return nil, err
	}
	dir := v.spec.Ingest.ClusterDir
	if dir == "" {
		dir = filepath.Dir(clusterFile)
	}
	var summaries metadata.Summaries
	var errs []error
	for _, record := range clusters.Records() {
		nodeFile := ingest.NodeExportPath(dir, record.ClusterID)
		summary, err := v.ProcessExport(record, nodeFile)
		if errors.Is(err, ingest.ErrInputNotFound) {
			log.Errorf("File does not exist for cluster: %s", record.ClusterID)
			continue
		}
		if agg, ok := err.(utilerrors.Aggregate); ok {
			errs = append(errs, agg.Errors()...)
		} else if err != nil {
			errs = append(errs, err)
		}
		summaries = append(summaries, summary)
	}
	if err := v.publisher.Publish(summaries); err != nil {
		errs = append(errs, err)
	}
	for _, err := range errs {
		log.Error(err)
	}
	if failed := vizerrors.FailedClusters(errs); len(failed) > 0 {
		log.Errorf("%d of %d clusters failed: %v", len(failed), len(summaries), failed)
	}
	return summaries, utilerrors.NewAggregate(errs)
}

// ProcessExport reads a node export and processes the cluster
func (v *Visualizer) ProcessExport(record metadata.ClusterRecord, nodeFile string) (metadata.ClusterSummary, error) {
	fmt.Printf("Processing data for cluster: %s\n", record.ClusterID)
	inv, err := ingest.ReadNodes(nodeFile)
	if err != nil {
		if errors.Is(err, ingest.ErrInputNotFound) {
			return metadata.ClusterSummary{ClusterID: record.ClusterID}, err
		}
		summary := metadata.ClusterSummary{ClusterID: record.ClusterID, Failed: true}
		return summary, vizerrors.NewClusterError(record.ClusterID, vizerrors.StageIngest, err)
	}
	log.Infof("Determining date of data for cluster: %s", record.ClusterID)
	fileDate := ingest.DataDate(nodeFile, v.spec.Output.FileDateLayout)
	log.Infof("Date of data for cluster is: %s", fileDate)
	return v.Process(record, inv, fileDate)
}

// Process classifies the nodes of one cluster and writes the enabled artifacts
func (v *Visualizer) Process(record metadata.ClusterRecord, inv *nodes.Inventory, fileDate string) (metadata.ClusterSummary, error) {
	master := nodes.Classify(inv, nodes.Master)
	infra := nodes.Classify(inv, nodes.Infra)
	worker := nodes.Classify(inv, nodes.Worker)
	name := nodes.ClusterName(inv.Hostnames())
	log.Infof("Cluster Name: %s", name)

	summary := metadata.ClusterSummary{
		UUID:        v.uuid,
		Timestamp:   v.now().UTC(),
		ClusterID:   record.ClusterID,
		ClusterName: name,
		Account:     record.Account,
		Version:     record.Version,
		Platform:    record.Platform,
		Support:     record.Support,
		Variant:     record.Variant,
		DataDate:    fileDate,
		Master:      nodes.Sum(master),
		Infra:       nodes.Sum(infra),
		Worker:      nodes.Sum(worker),
		Metadata:    v.metadata,
	}
	var errs []error
	if v.html != nil {
		result, err := v.html.Render(htmlreport.Input{
			Cluster:  record,
			Name:     name,
			FileDate: fileDate,
			Master:   master,
			Infra:    infra,
			Worker:   worker,
		})
		if err != nil {
			errs = append(errs, vizerrors.NewClusterError(record.ClusterID, vizerrors.StageHTML, err))
		} else {
			summary.HTMLPath = result.Path
			summary.Master, summary.Infra, summary.Worker = result.Master, result.Infra, result.Worker
		}
	}
	summary.WorkerVCPU = summary.Worker.Cores
	if v.image != nil {
		path, err := v.writeImage(record, summary)
		if err != nil {
			errs = append(errs, vizerrors.NewClusterError(record.ClusterID, vizerrors.StageImage, err))
		} else {
			summary.ImagePath = path
		}
	}
	summary.Failed = len(errs) > 0
	return summary, utilerrors.NewAggregate(errs)
}

func (v *Visualizer) writeImage(record metadata.ClusterRecord, summary metadata.ClusterSummary) (string, error) {
	dir := htmlreport.AccountDir(v.spec.Output.Directory, record.Account)
	if err := util.CreateFolder(dir); err != nil {
		return "", err
	}
	path := filepath.Join(dir, imagereport.FileName(summary.ClusterName, summary.DataDate))
	card := imagereport.Card{
		Counts: imagereport.Counts{
			Master: summary.Master.Nodes,
			Infra:  summary.Infra.Nodes,
			Worker: summary.Worker.Nodes,
		},
		Name:       summary.ClusterName,
		Version:    record.Version,
		Platform:   record.Platform,
		Support:    record.Support,
		WorkerVCPU: summary.WorkerVCPU,
		Variant:    record.Variant,
	}
	if err := v.image.Save(card, path); err != nil {
		return "", err
	}
	return path, nil
}
