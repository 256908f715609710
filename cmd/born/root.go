package main

import (
	"github.com/spf13/cobra"

	"github.com/born-ml/bornffi/internal/config"
	"github.com/born-ml/bornffi/internal/shim"
)

func newRootCmd() *cobra.Command {
	var (
		cfgFile  string
		logLevel string
	)

	root := &cobra.Command{
		Use:           "born",
		Short:         "Inspect the Born scalar and device boundary",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.Logging.Level = logLevel
			}
			return shim.Init(cfg)
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "override logging.level")

	root.AddCommand(
		newVersionCmd(),
		newDevicesCmd(),
		newSeedCmd(),
		newScalarCmd(),
	)
	return root
}
