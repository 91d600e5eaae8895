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

package util

import (
	"fmt"

	"github.com/cloud-bulldozer/go-commons/v2/version"
	"github.com/ocp-visualizer/ocp-visualizer/pkg/log"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Bootstraps ocp-visualizer cmd with the common verbosity flags and the version command
func SetupCmd(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolP(log.Debug, "d", false, "Set logging level to DEBUG")
	cmd.PersistentFlags().BoolP(log.Verbose, "v", false, "Set logging level to INFO (verbose)")
	cmd.PersistentFlags().BoolP(log.Error, "e", false, "Set logging level to ERROR (default)")
	cmd.PersistentFlags().String("log-level", "", "Allowed values: debug, info, warn, error. Ignored when -d, -v or -e is set")
	cmd.MarkFlagsMutuallyExclusive(log.Debug, log.Verbose, log.Error)

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number of ocp-visualizer",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Version:", version.Version)
			fmt.Println("Git Commit:", version.GitCommit)
			fmt.Println("Build Date:", version.BuildDate)
			fmt.Println("Go Version:", version.GoVersion)
			fmt.Println("OS/Arch:", version.OsArch)
		},
	}
	cmd.AddCommand(versionCmd)
}

// Verbosity returns the verbosity selected through the shorthand flags, empty when none was given
func Verbosity(cmd *cobra.Command) string {
	for _, name := range []string{log.Debug, log.Verbose, log.Error} {
		if set, _ := cmd.Flags().GetBool(name); set {
			return name
		}
	}
	return ""
}

// Configures ocp-visualizer's logging level
func ConfigureLogging(cmd *cobra.Command) {
	logrus.SetReportCaller(true)
	logrus.SetFormatter(log.Formatter())
	if verbosity := Verbosity(cmd); verbosity != "" {
		logrus.SetLevel(log.LevelFor(verbosity))
		return
	}
	logLevel, _ := cmd.Flags().GetString("log-level")
	if logLevel == "" {
		logrus.SetLevel(logrus.ErrorLevel)
		return
	}
	lvl, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Unknown log level %s", logLevel)
	}
	logrus.SetLevel(lvl)
}
