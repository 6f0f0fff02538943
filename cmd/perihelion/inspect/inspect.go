/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package inspect

import (
	"fmt"

	"github.com/astralkit/perihelion/pkg/database"
	"github.com/astralkit/perihelion/pkg/feed"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Command = &cobra.Command{
	Use:   "inspect",
	Short: "Look up a single near-Earth object by designation or name",

	Run: func(cmd *cobra.Command, args []string) {
		log := viper.Get("logger").(zerolog.Logger)

		pdes, _ := cmd.Flags().GetString("pdes")
		name, _ := cmd.Flags().GetString("name")
		if pdes == "" && name == "" {
			log.Fatal().Msg("either --pdes or --name is required")
		}

		db, err := feed.LoadDatabase(log,
			viper.GetString("perihelion.neofile"),
			viper.GetString("perihelion.cadfile"))
		if err != nil {
			log.Fatal().Err(err).Msg("unable to build database")
		}

		var neo *database.NearEarthObject
		if pdes != "" {
			neo = db.GetNEOByDesignation(pdes)
		} else {
			neo = db.GetNEOByName(name)
		}
		if neo == nil {
			log.Fatal().Msg("no matching NEO")
		}

		fmt.Println(neo.ToString())
		if list, _ := cmd.Flags().GetBool("approaches"); list {
			for _, ca := range neo.Approaches {
				fmt.Println("-", ca.ToString())
			}
		}
	},
}

func init() {
	// Flags for this command
	Command.Flags().StringP("pdes", "p", "", "Primary designation of the NEO to inspect")
	Command.Flags().String("name", "", "IAU name of the NEO to inspect")
	Command.Flags().Bool("approaches", false, "Also list the NEO's close approaches")
}
