package main

import (
	"fmt"

	"github.com/spf13/cobra"

	apppkg "github.com/kk-code-lab/fir/internal/app"
	"github.com/kk-code-lab/fir/internal/config"
	"github.com/kk-code-lab/fir/internal/logging"
)

type rootOptions struct {
	configFile string
	logFile    string
	debug      bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "fir [LEFT_DIR [RIGHT_DIR]]",
		Short: "A dual-panel terminal file manager",
		Long: `fir shows two directory panels side by side. Copy, remove, create
directories and edit text files without leaving the terminal.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.configFile, "config", "", "config file (default is $XDG_CONFIG_HOME/fir/config.yaml)")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "write logs to this file (overrides log.file)")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "log at debug level")
	return cmd
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(opts *rootOptions) (*config.Config, error) {
	path := opts.configFile
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			// No config directory: run on defaults.
			path = ""
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if opts.logFile != "" {
		cfg.Log.File = opts.logFile
	}
	if opts.debug {
		cfg.Log.Level = "debug"
	}
	return cfg, nil
}

func run(opts *rootOptions, args []string) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	closer, err := logging.Configure(logging.Options{File: cfg.Log.File, Level: cfg.Log.Level})
	if err != nil {
		return err
	}
	defer closer.Close()

	appOpts := apppkg.Options{Config: cfg}
	if len(args) > 0 {
		appOpts.LeftDir = args[0]
	}
	if len(args) > 1 {
		appOpts.RightDir = args[1]
	}

	app, err := apppkg.NewApplication(appOpts)
	if err != nil {
		return fmt.Errorf("initialize application: %w", err)
	}
	defer func() {
		_ = app.Close()
	}()

	reason, err := app.Run()
	if err != nil {
		return err
	}
	logging.For("main").WithField("reason", reason.String()).Debug("exit")
	return nil
}
