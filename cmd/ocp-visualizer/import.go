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

package main

import (
	"github.com/ocp-visualizer/ocp-visualizer/pkg/config"
	"github.com/ocp-visualizer/ocp-visualizer/pkg/indexers"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func importCmd() *cobra.Command {
	var configFile, tarball string
	var overlays []string
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Index the cluster summaries of a tarball created by report",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			spec, err := config.Parse(configFile, overlays...)
			if err != nil {
				log.Fatal(err.Error())
			}
			publisher, err := indexers.NewPublisher(spec.IndexerConfig)
			if err != nil {
				log.Fatal(err.Error())
			}
			if err := publisher.ImportTarball(tarball); err != nil {
				log.Fatal(err.Error())
			}
		},
	}
	cmd.Flags().StringVar(&tarball, "tarball", "", "Summaries tarball to import")
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "Config file path or URL holding the indexer to import into")
	cmd.Flags().StringSliceVar(&overlays, "overlay", nil, "Config files or URLs merged on top of --config, in order")
	cmd.MarkFlagRequired("tarball")
	cmd.MarkFlagRequired("config")
	cmd.MarkFlagFilename("tarball")
	return cmd
}

// packSummaries creates the summaries tarball when the local indexer is configured for one
func packSummaries(cfg config.IndexerConfig) {
	if !cfg.Enabled || cfg.Type != "local" || cfg.TarballName == "" {
		return
	}
	if err := indexers.CreateTarball(cfg.MetricsDirectory, cfg.TarballName); err != nil {
		log.Error(err)
	}
}
