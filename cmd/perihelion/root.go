/*
 * Copyright (c) 2024, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package perihelion

import (
	"fmt"
	"os"

	"github.com/astralkit/perihelion/cmd/perihelion/inspect"
	"github.com/astralkit/perihelion/cmd/perihelion/query"
	"github.com/astralkit/perihelion/cmd/perihelion/server"
	"github.com/astralkit/perihelion/cmd/perihelion/shell"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	Version        = "develop"
	CommitHash     = "n/a"
	BuildTimestamp = "n/a"

	rootCmd = &cobra.Command{
		Use:   "perihelion",
		Short: "Query near-Earth objects and their close approaches to Earth",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initLogging()
			initLogLevel()
			initConfig(cmd.Root().PersistentFlags().Lookup("config").Value.String())
			initLogLevel()
			traceConfig()
		},
		Version: Version,
	}
)

func init() {
	// Configure the root binary options
	rootCmd.PersistentFlags().CountP("verbose", "v", "-v for debug logs (-vv for trace)")
	rootCmd.PersistentFlags().Bool("local", true, "Configures the logger to print readable logs")
	rootCmd.PersistentFlags().StringP("neofile", "n", "data/neos.csv", "Path to the near-Earth object CSV file")
	rootCmd.PersistentFlags().StringP("cadfile", "a", "data/cad.json", "Path to the close approach JSON file")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the perihelion config file (default ./config.toml)")

	// Bind viper config to the root flags
	viper.BindPFlag("perihelion.local", rootCmd.PersistentFlags().Lookup("local"))
	viper.BindPFlag("perihelion.verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("perihelion.neofile", rootCmd.PersistentFlags().Lookup("neofile"))
	viper.BindPFlag("perihelion.cadfile", rootCmd.PersistentFlags().Lookup("cadfile"))
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	rootCmd.SetVersionTemplate(fmt.Sprintf("perihelion version: %s git_commit: %s build_time: %s\n", Version, CommitHash, BuildTimestamp))

	// Bind viper flags to ENV variables
	viper.AutomaticEnv()

	// Register commands on the root binary command
	query.Command.Version = rootCmd.Version
	inspect.Command.Version = rootCmd.Version
	shell.Command.Version = rootCmd.Version
	server.Command.Version = rootCmd.Version
	rootCmd.AddCommand(query.Command)
	rootCmd.AddCommand(inspect.Command)
	rootCmd.AddCommand(shell.Command)
	rootCmd.AddCommand(server.Command)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("root command failed")
		os.Exit(1)
	}
}
