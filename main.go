// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/cybrota/avltree/avl"
	"github.com/cybrota/avltree/metrics"
)

var version = "0.1.0"

func loadConfigOrDefault() *Config {
	config, err := LoadConfig()
	if err != nil {
		log.Warn().Err(err).Msg("using default settings")
	}
	setupLogging(config.Log)
	return config
}

func newRootCmd() *cobra.Command {
	asciiLogo := fmt.Sprintf(`
   ___ _   ___    _____
  / _ \ \ / / |  |_   _| _ ___ ___
 | (_| \ V /| |__  | || '_/ -_) -_)
  \__,_|\_/ |____| |_||_| \___\___|
Self-balancing search tree explorer, shell and benchmark [Version: %s%s%s]

`, Green, version, Reset)

	runTUI := func(cmd *cobra.Command, args []string) error {
		config := loadConfigOrDefault()
		tree := avl.New()
		if err := seedTree(tree, cmd.Flag("keys").Value.String()); err != nil {
			return err
		}
		session, err := newSession(config, tree, nil)
		if err != nil {
			return err
		}
		return runBubbleTeaApp(session)
	}

	var cmdRun = &cobra.Command{
		Use:   "run",
		Short: "Launches the interactive tree explorer",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Run opens the explorer UI with a command line, the inorder list and a drawing of the tree`),
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}
	cmdRun.Flags().String("keys", "", "file of whitespace separated keys to insert first")

	var cmdShell = &cobra.Command{
		Use:   "shell",
		Short: "Reads tree commands from the terminal",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Shell starts a prompt that accepts insert, delete, find, print and the other tree commands. Type help for the list, exit to leave.`),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfigOrDefault()
			tree := avl.New()
			if err := seedTree(tree, cmd.Flag("keys").Value.String()); err != nil {
				return err
			}
			session, err := newSession(config, tree, NewOptimizedHelpCache())
			if err != nil {
				return err
			}
			return runREPL(cmd.Context(), session, config.Shell.Prompt, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmdShell.Flags().String("keys", "", "file of whitespace separated keys to insert first")

	var cmdExec = &cobra.Command{
		Use:   "exec SCRIPT...",
		Short: "Runs command scripts against one tree",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Exec runs each script in order against the same tree, one command per line. Use - to read stdin. The exit status is non-zero when any command failed.`),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfigOrDefault()
			session, err := newSession(config, avl.New(), NewOptimizedHelpCache())
			if err != nil {
				return err
			}

			stopOnError, _ := cmd.Flags().GetBool("stop-on-error")
			progress, _ := cmd.Flags().GetBool("progress")
			opts := execOptions{
				StopOnError: stopOnError,
				Progress:    progress,
				Echo:        config.Shell.Echo,
				Prompt:      config.Shell.Prompt,
			}
			_, err = runScripts(cmd.Context(), session, args, opts, cmd.InOrStdin(), cmd.OutOrStdout())
			return err
		},
	}
	cmdExec.Flags().Bool("stop-on-error", false, "stop at the first failing command")
	cmdExec.Flags().Bool("progress", false, "show a progress counter on stderr")

	var cmdBench = &cobra.Command{
		Use:   "bench",
		Short: "Runs a randomized insert, delete and lookup workload",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Bench inserts distinct random keys, deletes some of them and looks up random keys, checking every invariant after each phase. Defaults come from the bench section of the settings.`),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfigOrDefault()
			opts := benchOptionsFromConfig(config.Bench)

			flags := cmd.Flags()
			if flags.Changed("keys") {
				opts.Keys, _ = flags.GetInt("keys")
			}
			if flags.Changed("deletes") {
				opts.Deletes, _ = flags.GetInt("deletes")
			}
			if flags.Changed("lookups") {
				opts.Lookups, _ = flags.GetInt("lookups")
			}
			if flags.Changed("seed") {
				opts.Seed, _ = flags.GetInt64("seed")
			}
			if flags.Changed("bins") {
				opts.HistogramBins, _ = flags.GetInt("bins")
			}
			opts.Progress, _ = flags.GetBool("progress")
			metricsFile, _ := flags.GetString("metrics-file")
			promAddr, _ := flags.GetString("prometheus")

			lt := newLockedTree(avl.New())
			if promAddr != "" {
				go func() {
					log.Info().Str("addr", promAddr).Msg("serving metrics on /metrics")
					if err := metrics.Serve(promAddr, lt.Snapshot); err != nil {
						log.Error().Err(err).Msg("metrics server stopped")
					}
				}()
			}

			result, err := runBench(cmd.Context(), lt, opts)
			if err != nil {
				return err
			}
			if err := result.report(cmd.OutOrStdout(), opts.HistogramBins); err != nil {
				return err
			}

			if metricsFile != "" {
				if err := metrics.WriteTextfile(metricsFile, lt.Snapshot); err != nil {
					return err
				}
				log.Info().Str("file", metricsFile).Msg("wrote metrics")
			}

			if promAddr != "" {
				log.Info().Msg("workload done, press ctrl+c to stop the metrics server")
				<-cmd.Context().Done()
			}
			return nil
		},
	}
	cmdBench.Flags().Int("keys", defaultConfig.Bench.Keys, "number of distinct keys to insert")
	cmdBench.Flags().Int("deletes", defaultConfig.Bench.Deletes, "number of inserted keys to delete")
	cmdBench.Flags().Int("lookups", defaultConfig.Bench.Lookups, "number of random lookups")
	cmdBench.Flags().Int64("seed", defaultConfig.Bench.Seed, "random seed")
	cmdBench.Flags().Int("bins", defaultConfig.Bench.HistogramBins, "depth histogram bins, 0 disables it")
	cmdBench.Flags().Bool("progress", true, "show progress bars on stderr")
	cmdBench.Flags().String("metrics-file", "", "write Prometheus metrics to this file")
	cmdBench.Flags().String("prometheus", "", "serve Prometheus metrics on this address, e.g. :2112")

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print AVL Tree usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the avltree CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show configuration settings",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Settings prints the effective configuration and creates a default file when none exists`),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return displaySettings(cmd.OutOrStdout())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print AVL Tree version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:           "avltree",
		Version:       version,
		Long:          asciiLogo,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		// Default to run command when no subcommand is provided
		RunE: runTUI,
	}
	rootCmd.Flags().String("keys", "", "file of whitespace separated keys to insert first")
	rootCmd.AddCommand(cmdRun, cmdShell, cmdExec, cmdBench, cmdUsage, cmdSettings, cmdVersion)
	return rootCmd
}

func main() {
	InitializeColors()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("avltree failed")
		stop()
		os.Exit(1)
	}
}
