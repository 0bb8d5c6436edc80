package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Faultbox/lithophane/internal/config"
	"github.com/Faultbox/lithophane/internal/logger"
)

// app carries state shared by all subcommands once flags are parsed.
type app struct {
	flags *config.Flags
	cfg   *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "lithophane",
		Short:         "Turn images into printable lithophane meshes",
		Long:          `lithophane converts photos into STL meshes whose wall thickness follows image brightness, as flat panels, cylinders or N-sided prism lamps.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.flags)
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			a.cfg = cfg

			var fileCfg logger.FileConfig
			if cfg.Logging.LogFile != "" {
				fileCfg = logger.DefaultFileConfig(cfg.Logging.LogFile)
			}
			if err := logger.InitWithFileConfig(cfg.Logging.Level, fileCfg, cmd.ErrOrStderr()); err != nil {
				return fmt.Errorf("logger: %w", err)
			}
			logger.Sugar.Debugf("config: %+v", cfg)
			return nil
		},
	}

	a.flags = config.BindFlags(root.PersistentFlags())

	root.AddCommand(newGenerateCmd(a))
	root.AddCommand(newInspectCmd(a))
	root.AddCommand(newConfigCmd(a))

	return root
}
