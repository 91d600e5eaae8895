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
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/ocp-visualizer/ocp-visualizer/assets"
	"github.com/ocp-visualizer/ocp-visualizer/pkg/config"
	"github.com/ocp-visualizer/ocp-visualizer/pkg/discovery"
	"github.com/ocp-visualizer/ocp-visualizer/pkg/indexers"
	"github.com/ocp-visualizer/ocp-visualizer/pkg/metadata"
	"github.com/ocp-visualizer/ocp-visualizer/pkg/util"
	"github.com/ocp-visualizer/ocp-visualizer/pkg/util/fileutils"
	"github.com/ocp-visualizer/ocp-visualizer/pkg/visualizer"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func reportCmd() *cobra.Command {
	var file, outputFormat, clusterDir, outputDir, assetsDir, configFile string
	var kubeconfig, account, support, runID, userMetadata, query string
	var html, images, counts, live bool
	var overlays []string
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate cluster reports from node exports",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if file == "" && !live {
				return fmt.Errorf("either --file or --live is required")
			}
			if !util.IsValidOutputFormat(outputFormat) {
				return fmt.Errorf("invalid output format %q, allowed values: text, json, yaml", outputFormat)
			}
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			spec, err := config.Parse(configFile, overlays...)
			if err != nil {
				log.Fatal(err.Error())
			}
			flags := cmd.Flags()
			if flags.Changed("html") {
				spec.Output.HTML = html
			}
			if flags.Changed("generate-images") {
				spec.Output.Images = images
			}
			if !spec.Output.HTML && !spec.Output.Images && !counts {
				spec.Output.HTML = true
			}
			if outputDir != "" {
				spec.Output.Directory = util.ExpandHome(outputDir)
			}
			if clusterDir != "" {
				spec.Ingest.ClusterDir = util.ExpandHome(clusterDir)
			}
			if assetsDir != "" {
				spec.Assets.Directory = util.ExpandHome(assetsDir)
			}
			if kubeconfig != "" {
				spec.Kubeconfig = kubeconfig
			}
			fileutils.SetEmbedConfiguration(assets.FS, spec.Assets.Directory)
			log.Infof("Starting %s with UUID %s", binName, runID)

			publisher, err := indexers.NewPublisher(spec.IndexerConfig)
			if err != nil {
				log.Fatal(err.Error())
			}
			v, err := visualizer.New(spec, runID, publisher)
			if err != nil {
				log.Fatal(err.Error())
			}
			if userMetadata != "" {
				md, err := metadata.ReadUserMetadata(userMetadata)
				if err != nil {
					log.Fatalf("Error reading provided user metadata: %v", err)
				}
				v.SetUserMetadata(md)
			}
			var summaries metadata.Summaries
			var runErr error
			if live {
				cluster, err := discovery.Discover(cmd.Context(), discovery.Options{
					Kubeconfig: spec.Kubeconfig,
					Account:    account,
					Support:    support,
					Variant:    spec.Ingest.DefaultVariant,
				})
				if err != nil {
					log.Fatal(err.Error())
				}
				summary, err := v.Process(cluster.Record, cluster.Inventory, time.Now().Format(spec.Output.FileDateLayout))
				summaries = append(summaries, summary)
				runErr = err
				if err := publisher.Publish(summaries); err != nil {
					log.Error(err)
				}
			} else {
				summaries, runErr = v.Run(file)
			}
			packSummaries(spec.IndexerConfig)
			if counts {
				var out any = summaries
				if query != "" {
					if out, err = util.Query(summaries, query); err != nil {
						log.Error(err)
					}
				}
				if err == nil {
					if err := util.WriteOutput(os.Stdout, out, util.OutputFormat(outputFormat)); err != nil {
						log.Error(err)
					}
				}
			}
			if runErr != nil {
				log.Fatal(runErr.Error())
			}
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Cluster export to process")
	cmd.Flags().BoolVar(&html, "html", false, "Generate the HTML report, the default when no other output is selected")
	cmd.Flags().BoolVar(&images, "generate-images", false, "Generate the PNG reference card")
	cmd.Flags().BoolVar(&counts, "counts", false, "Print the node counts of every cluster")
	cmd.Flags().StringVar(&query, "query", "", "jq expression applied to the --counts output")
	cmd.Flags().StringVarP(&outputFormat, "output-format", "o", string(util.OutputFormatText), "Format of --counts: text, json or yaml")
	cmd.Flags().StringVar(&clusterDir, "cluster-dir", "", "Directory holding the <cluster-id>.csv node exports, defaults to the directory of --file")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "Report root directory")
	cmd.Flags().StringVar(&assetsDir, "assets-dir", "", "Directory whose stylesheet, logo, icons and template override the embedded ones")
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "Config file path or URL")
	cmd.Flags().StringSliceVar(&overlays, "overlay", nil, "Config files or URLs merged on top of --config, in order")
	cmd.Flags().StringVar(&kubeconfig, "kubeconfig", "", "Path to the kubeconfig used by --live")
	cmd.Flags().BoolVar(&live, "live", false, "Read nodes from the cluster behind --kubeconfig instead of exports")
	cmd.Flags().StringVar(&account, "account", "", "Account name used for the --live report folder")
	cmd.Flags().StringVar(&support, "support", "", "Support tier shown on the --live reference card")
	cmd.Flags().StringVar(&runID, "uuid", uuid.NewString(), "Run UUID attached to indexed summaries")
	cmd.Flags().StringVar(&userMetadata, "user-metadata", "", "YAML file or URL whose keys are attached to indexed summaries")
	cmd.MarkFlagFilename("file")
	cmd.MarkFlagFilename("config")
	cmd.MarkFlagsMutuallyExclusive("file", "live")
	cmd.Flags().SortFlags = false
	return cmd
}
