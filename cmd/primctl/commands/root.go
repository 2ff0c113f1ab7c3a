package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dd0wney/cluso-primitives/pkg/config"
	"github.com/dd0wney/cluso-primitives/pkg/logging"
	"github.com/dd0wney/cluso-primitives/pkg/metrics"
	"github.com/dd0wney/cluso-primitives/pkg/primitives"
)

// app holds state shared by every subcommand for one invocation
type app struct {
	configPath string
	logLevel   string
	metricsOut string

	svc *primitives.Service
	reg *metrics.Registry
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadWithEnv(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		if !logging.ValidLevel(a.logLevel) {
			return fmt.Errorf("invalid log level %q", a.logLevel)
		}
		cfg.LogLevel = a.logLevel
	}
	if a.metricsOut != "" {
		cfg.MetricsEnabled = true
	}

	logger := logging.NewJSONLogger(cmd.ErrOrStderr(), logging.ParseLevel(cfg.LogLevel))
	a.svc, a.reg = primitives.NewServiceFromConfig(cfg, primitives.WithLogger(logger))
	return nil
}

// flushMetrics writes the registry to --metrics-out. It runs after every
// command, failed ones included, so failures_total reaches the file.
func (a *app) flushMetrics() error {
	if a.metricsOut == "" || a.reg == nil {
		return nil
	}
	return a.reg.WriteTextfile(a.metricsOut)
}

// execute runs root and then flushes metrics whatever the command returned
func (a *app) execute(root *cobra.Command) error {
	err := root.Execute()
	if ferr := a.flushMetrics(); ferr != nil {
		fmt.Fprintf(root.ErrOrStderr(), "Error: writing metrics: %v\n", ferr)
		if err == nil {
			err = ferr
		}
	}
	return err
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:          "primctl",
		Short:        "Hashing, signing, encryption, randomness and compression primitives",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.metricsOut, "metrics-out", "", "write prometheus metrics to this file on exit")

	root.AddCommand(
		hashCmd(a),
		keygenCmd(a), signCmd(a), verifyCmd(a),
		encryptCmd(a), decryptCmd(a),
		randCmd(a),
		compressCmd(a), decompressCmd(a), ratioCmd(a),
		selftestCmd(),
	)
	return root
}

// Execute runs the primctl root command
func Execute() error {
	a := &app{}
	return a.execute(newRootCmd(a))
}
