/*
 * Copyright (c) 2024, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"github.com/astralkit/perihelion/pkg/feed"
	"github.com/astralkit/perihelion/pkg/server"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Command = &cobra.Command{
	Use:   "server",
	Short: "Serve the query API over HTTP",

	Run: func(cmd *cobra.Command, args []string) {
		logger := viper.Get("logger").(zerolog.Logger)

		db, err := feed.LoadDatabase(logger,
			viper.GetString("perihelion.neofile"),
			viper.GetString("perihelion.cadfile"))
		if err != nil {
			logger.Fatal().Err(err).Msg("unable to build database")
		}

		srv := server.New(logger, db, viper.GetInt("perihelion.port"))
		if err := srv.ListenAndServe(); err != nil {
			logger.Fatal().Err(err).Msg("error listening and serving")
		}
	},
}

func init() {
	// Flags for this command
	Command.Flags().IntP("port", "p", 8020, "Port for the query API and /metrics")

	// Bind flags to viper
	viper.BindPFlag("perihelion.port", Command.Flags().Lookup("port"))
}
