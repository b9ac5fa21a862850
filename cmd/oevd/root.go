package main

import (
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/GPTx-global/oev-relay/oevd/config"
	"github.com/GPTx-global/oev-relay/oevd/log"
	"github.com/GPTx-global/oev-relay/x/oev/client/cli"
)

const (
	flagHome    = "home"
	flagVerbose = "verbose"

	envPrefix = "OEVD"
)

// NewRootCmd creates the oevd root command. Flags may also be given as
// OEVD_<FLAG> environment variables.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:           "oevd",
		Short:         "Offline tooling for OEV searcher bids",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}

			log.InitLogger(v.GetBool(flagVerbose))

			home := v.GetString(flagHome)
			if err := config.Load(home); err != nil {
				return err
			}
			if config.Verbose() {
				log.InitLogger(true)
			}
			if config.LogToFile() {
				if err := log.ResetLogger(home); err != nil {
					return err
				}
			}

			sdk.GetConfig().SetBech32PrefixForAccount(config.Bech32Prefix(), config.Bech32Prefix()+sdk.PrefixPublic)
			return nil
		},
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	rootCmd.PersistentFlags().String(flagHome, config.DefaultHome(), "oevd home directory")
	rootCmd.PersistentFlags().Bool(flagVerbose, false, "Print debug logs")

	rootCmd.AddCommand(
		cli.GetBidCmd(),
		newConfigCmd(),
	)

	return rootCmd
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create the config file if missing and print the loaded config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			config.Print()
			return nil
		},
	}
}
