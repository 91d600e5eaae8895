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
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/ocp-visualizer/ocp-visualizer/pkg/util"
	"github.com/spf13/cobra"
)

var binName = filepath.Base(os.Args[0])

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   binName,
	Short: "Visualize OpenShift cluster node inventories",
	Long: `ocp-visualizer turns cluster and node exports into per cluster HTML reports
and printable reference cards, and looks up the clusters linked to an EBS account.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		util.ConfigureLogging(cmd)
	},
}

var completionCmd = &cobra.Command{
	Use:   "completion",
	Short: "Generates completion scripts for bash shell",
	Long: `To load completion in the current shell run
. <(ocp-visualizer completion)

To configure your bash shell to load completions for each session execute:

# ocp-visualizer completion > /etc/bash_completion.d/ocp-visualizer
	`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenBashCompletion(os.Stdout)
	},
}

func main() {
	util.SetupCmd(rootCmd)
	rootCmd.AddCommand(
		reportCmd(),
		lookupCmd(),
		importCmd(),
		completionCmd,
	)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
