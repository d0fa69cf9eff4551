package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/andyle182810/liquidplanner/config"
	"github.com/andyle182810/liquidplanner/httpclient"
	"github.com/andyle182810/liquidplanner/liquidplanner"
	"github.com/andyle182810/liquidplanner/logutil"
	"github.com/andyle182810/liquidplanner/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type loadConfigFunc func(dotenvFiles ...string) (*config.Config, error)

type app struct {
	loadConfig loadConfigFunc
	stdout     io.Writer
	stderr     io.Writer

	envFile      string
	printMetrics bool

	logger   zerolog.Logger
	registry *prometheus.Registry
	client   *liquidplanner.Client
}

func newRootCommand(loadConfig loadConfigFunc, stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		loadConfig:   loadConfig,
		stdout:       stdout,
		stderr:       stderr,
		envFile:      "",
		printMetrics: false,
		logger:       zerolog.Nop(),
		registry:     nil,
		client:       nil,
	}

	root := &cobra.Command{ //nolint:exhaustruct
		Use:               "lp",
		Short:             "Command line client for the LiquidPlanner API",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if !a.printMetrics {
				return nil
			}

			return metrics.WriteText(a.stderr, a.registry)
		},
	}

	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.envFile, "env-file", ".env", "dotenv file read before the environment")
	flags.BoolVar(&a.printMetrics, "metrics", false, "print request metrics to stderr when done")

	root.AddCommand(
		a.accountCommand(),
		a.workspaceCommand(),
		a.tasksCommand(),
		a.trackTimeCommand(),
		a.estimateCommand(),
		a.membersCommand(),
		a.projectsCommand(),
	)

	return root
}

func (a *app) setup(_ *cobra.Command, _ []string) error {
	cfg, err := a.loadConfig(a.envFile)
	if err != nil {
		return err
	}

	a.logger = logutil.New(cfg.LogLevel, cfg.LogFormat, a.stderr)
	a.registry = prometheus.NewRegistry()

	collector, err := metrics.NewCollector(a.registry)
	if err != nil {
		return err
	}

	httpOpts := append(cfg.HTTPOptions(),
		httpclient.WithLogger(a.logger),
		httpclient.WithObserver(collector),
	)

	a.client, err = liquidplanner.New(cfg.WorkspaceID, cfg.Credentials(),
		liquidplanner.WithBaseURL(cfg.BaseURL),
		liquidplanner.WithHTTPOptions(httpOpts...),
	)
	if err != nil {
		return err
	}

	a.logger.Debug().
		Str("service_url", a.client.ServiceURL()).
		Msg("LiquidPlanner client ready")

	return nil
}

// print writes JSON results indented and anything else verbatim. Non-2xx
// results are printed too and then reported as an error.
func (a *app) print(result *httpclient.Result, err error) error {
	if err != nil {
		return err
	}

	if result.IsJSON() {
		out, err := json.MarshalIndent(result.Value, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to format result: %w", err)
		}

		fmt.Fprintln(a.stdout, string(out))
	} else {
		fmt.Fprintln(a.stdout, result.String())
	}

	return result.Err()
}
