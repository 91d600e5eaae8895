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
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ocp-visualizer/ocp-visualizer/pkg/config"
	"github.com/ocp-visualizer/ocp-visualizer/pkg/lookup"
	"github.com/ocp-visualizer/ocp-visualizer/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func prompt(r *bufio.Reader, w io.Writer, question string) (string, error) {
	fmt.Fprint(w, question)
	answer, err := r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && answer != "") {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

func confirmer(r *bufio.Reader, w io.Writer, assumeYes bool) lookup.Confirmer {
	return func(ebsAccount string, names []string) (bool, error) {
		question := fmt.Sprintf("\nEBS account %s linked to %s. Proceed? [y/N]: ", ebsAccount, lookup.AccountList(names))
		if assumeYes {
			fmt.Fprintln(w, strings.TrimSuffix(question, " [y/N]: "))
			return true, nil
		}
		answer, err := prompt(r, w, question)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "y", "yes":
			return true, nil
		default:
			return false, nil
		}
	}
}

type lookupOptions struct {
	ebsAccount   string
	username     string
	configFile   string
	outputFormat string
	assumeYes    bool
	offline      bool
	overlays     []string
}

func lookupCmd() *cobra.Command {
	var opts lookupOptions
	cmd := &cobra.Command{
		Use:   "lookup",
		Short: "List the clusters linked to an EBS account",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if !util.IsValidOutputFormat(opts.outputFormat) {
				return fmt.Errorf("invalid output format %q, allowed values: text, json, yaml", opts.outputFormat)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			err := runLookupCmd(cmd.Context(), opts, os.Stdin, os.Stdout)
			if errors.Is(err, lookup.ErrUnreachable) {
				fmt.Fprintln(os.Stderr, lookup.Guidance)
			}
			return err
		},
	}
	cmd.Flags().StringVar(&opts.ebsAccount, "ebs-account", "", "EBS account number, prompted when missing")
	cmd.Flags().StringVar(&opts.username, "username", "", "Database username, prompted when missing")
	cmd.Flags().BoolVarP(&opts.assumeYes, "yes", "y", false, "Do not ask to confirm the linked account names")
	cmd.Flags().BoolVar(&opts.offline, "offline", false, "Answer from the local lookup cache without connecting")
	cmd.Flags().StringVarP(&opts.configFile, "config", "c", "", "Config file path or URL")
	cmd.Flags().StringSliceVar(&opts.overlays, "overlay", nil, "Config files or URLs merged on top of --config, in order")
	cmd.Flags().StringVarP(&opts.outputFormat, "output-format", "o", string(util.OutputFormatText), "Output format: text, json or yaml")
	cmd.MarkFlagFilename("config")
	cmd.Flags().SortFlags = false
	return cmd
}

// runLookupCmd resolves the clusters of an EBS account, prompting on out for missing values
func runLookupCmd(ctx context.Context, opts lookupOptions, in io.Reader, out io.Writer) error {
	spec, err := config.Parse(opts.configFile, opts.overlays...)
	if err != nil {
		return err
	}
	stdin := bufio.NewReader(in)
	ebsAccount := opts.ebsAccount
	if ebsAccount == "" {
		if ebsAccount, err = prompt(stdin, out, "Please enter the EBS account number: "); err != nil {
			return err
		}
	}
	if ebsAccount == "" {
		return fmt.Errorf("an EBS account number is required")
	}
	log.Infof("EBS Account: %s", ebsAccount)

	var cache *lookup.Cache
	if spec.Database.CachePath != "" {
		if cache, err = lookup.OpenCache(ctx, spec.Database.CachePath); err != nil {
			return err
		}
		defer cache.Close()
	}
	var result lookup.Result
	if opts.offline {
		if cache == nil {
			return fmt.Errorf("--offline needs database.cachePath to be configured")
		}
		var found bool
		if result, found, err = cache.Load(ctx, ebsAccount); err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("no cached lookup for EBS account: %s", ebsAccount)
		}
		log.Infof("Using cached lookup from %s", result.UpdatedAt.Format("2006-01-02 15:04:05"))
	} else {
		if opts.username != "" {
			spec.Database.Username = opts.username
		}
		if spec.Database.Username == "" {
			if spec.Database.Username, err = prompt(stdin, out, "Please enter your database username: "); err != nil {
				return err
			}
		}
		log.Infof("Database Username: %s", spec.Database.Username)
		result, err = runLookup(ctx, spec.Database, cache, ebsAccount, confirmer(stdin, out, opts.assumeYes))
		if errors.Is(err, lookup.ErrRejected) {
			log.Info("User rejected account verification. Exiting.")
			return nil
		}
		if err != nil {
			return err
		}
	}
	return util.WriteOutput(out, result, util.OutputFormat(opts.outputFormat))
}

func runLookup(ctx context.Context, cfg config.DatabaseConfig, cache *lookup.Cache, ebsAccount string, confirm lookup.Confirmer) (lookup.Result, error) {
	repo, err := lookup.NewRepository(cfg.Table)
	if err != nil {
		return lookup.Result{EBSAccount: ebsAccount}, err
	}
	manager := lookup.NewManager(cfg)
	defer manager.Close()
	if err := manager.Initialize(ctx); err != nil {
		return lookup.Result{EBSAccount: ebsAccount}, err
	}
	return lookup.NewService(manager, repo, cache).Lookup(ctx, ebsAccount, confirm)
}
