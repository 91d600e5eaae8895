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

package discovery

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	ocpmetadata "github.com/cloud-bulldozer/go-commons/v2/ocp-metadata"
	"github.com/mitchellh/go-homedir"
	"github.com/ocp-visualizer/ocp-visualizer/pkg/metadata"
	"github.com/ocp-visualizer/ocp-visualizer/pkg/nodes"
	log "github.com/sirupsen/logrus"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
)

// Options describes how a live cluster is presented in reports
type Options struct {
	Kubeconfig string
	Account    string
	Support    string
	Variant    string
}

// Cluster is the live counterpart of a cluster export row and its node export
type Cluster struct {
	Record    metadata.ClusterRecord
	Inventory *nodes.Inventory
}

// RestConfig builds a client configuration from kubeconfig, falling back to
// $KUBECONFIG and then ~/.kube/config
func RestConfig(kubeconfig string) (*rest.Config, error) {
	if kubeconfig == "" {
		kubeconfig = os.Getenv("KUBECONFIG")
	}
	if kubeconfig == "" {
		if home, err := homedir.Dir(); err == nil {
			if _, err := os.Stat(filepath.Join(home, ".kube", "config")); err == nil {
				kubeconfig = filepath.Join(home, ".kube", "config")
			}
		}
	}
	restConfig, err := clientcmd.BuildConfigFromFlags("", kubeconfig)
	if err != nil {
		return nil, fmt.Errorf("building client configuration: %w", err)
	}
	return restConfig, nil
}

// Discover reads the cluster metadata and the node inventory of a running cluster
func Discover(ctx context.Context, opts Options) (Cluster, error) {
	var cluster Cluster
	restConfig, err := RestConfig(opts.Kubeconfig)
	if err != nil {
		return cluster, err
	}
	agent, err := ocpmetadata.NewMetadata(restConfig)
	if err != nil {
		return cluster, fmt.Errorf("creating metadata agent: %w", err)
	}
	clusterMetadata, err := agent.GetClusterMetadata()
	if err != nil {
		return cluster, fmt.Errorf("error obtaining clusterMetadata: %w", err)
	}
	clientSet, err := kubernetes.NewForConfig(restConfig)
	if err != nil {
		return cluster, err
	}
	if cluster.Inventory, err = nodes.LoadInventory(ctx, clientSet); err != nil {
		return cluster, err
	}
	cluster.Record = recordFromMetadata(clusterMetadata, opts)
	log.Infof("Discovered cluster %s: %s %s", cluster.Record.ClusterID, cluster.Record.Platform, cluster.Record.Version)
	return cluster, nil
}

func recordFromMetadata(md ocpmetadata.ClusterMetadata, opts Options) metadata.ClusterRecord {
	record := metadata.ClusterRecord{
		ClusterID:   md.ClusterName,
		Account:     opts.Account,
		Version:     md.OCPVersion,
		Support:     opts.Support,
		Platform:    md.Platform,
		NetworkType: md.SDNType,
		Variant:     opts.Variant,
	}
	if record.ClusterID == "" {
		record.ClusterID = "live"
	}
	return record
}
