/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package query

import (
	"os"
	"time"

	"github.com/astralkit/perihelion/pkg/database"
	"github.com/astralkit/perihelion/pkg/export"
	"github.com/astralkit/perihelion/pkg/feed"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DateLayout is the date-only form accepted on the command line.
const DateLayout = "2006-01-02"

var Command = &cobra.Command{
	Use:   "query",
	Short: "Query close approaches matching a set of filter criteria",

	Run: func(cmd *cobra.Command, args []string) {
		log := viper.Get("logger").(zerolog.Logger)

		output, _ := cmd.Flags().GetString("output")
		switch output {
		case "csv", "json", "text":
		default:
			log.Fatal().Str("output", output).Msg("unsupported output format")
		}

		db, err := feed.LoadDatabase(log,
			viper.GetString("perihelion.neofile"),
			viper.GetString("perihelion.cadfile"))
		if err != nil {
			log.Fatal().Err(err).Msg("unable to build database")
		}

		q, err := buildQuery(cmd.Flags())
		if err != nil {
			log.Fatal().Err(err).Msg("unable to build query")
		}

		outfile, _ := cmd.Flags().GetString("outfile")
		out := os.Stdout
		if outfile != "" {
			out, err = os.Create(outfile)
			if err != nil {
				log.Fatal().Err(err).Str("file", outfile).Msg("unable to create output file")
			}
			defer out.Close()
		}

		limit, _ := cmd.Flags().GetInt("limit")
		results := database.Limit(db.Query(q), limit)
		if err := export.NewOutputWriter(out, output).Write(results); err != nil {
			log.Fatal().Err(err).Msg("unable to write results")
		}
	},
}

// buildQuery maps the filter flags onto the criteria struct, leaving
// untouched flags unset.
func buildQuery(flags *pflag.FlagSet) (database.Query, error) {
	var q database.Query
	var err error

	if q.Date, err = dateFlag(flags, "date"); err != nil {
		return q, err
	}
	if q.StartDate, err = dateFlag(flags, "start-date"); err != nil {
		return q, err
	}
	if q.EndDate, err = dateFlag(flags, "end-date"); err != nil {
		return q, err
	}

	q.DistanceMin = floatFlag(flags, "distance-min")
	q.DistanceMax = floatFlag(flags, "distance-max")
	q.VelocityMin = floatFlag(flags, "velocity-min")
	q.VelocityMax = floatFlag(flags, "velocity-max")
	q.DiameterMin = floatFlag(flags, "diameter-min")
	q.DiameterMax = floatFlag(flags, "diameter-max")

	hazardous, _ := flags.GetBool("hazardous")
	notHazardous, _ := flags.GetBool("not-hazardous")
	if hazardous && notHazardous {
		return q, errors.New("--hazardous and --not-hazardous are mutually exclusive")
	}
	if flags.Changed("hazardous") || notHazardous {
		want := hazardous
		q.Hazardous = &want
	}

	return q, nil
}

func dateFlag(flags *pflag.FlagSet, name string) (*time.Time, error) {
	if !flags.Changed(name) {
		return nil, nil
	}
	raw, _ := flags.GetString(name)
	t, err := time.ParseInLocation(DateLayout, raw, time.UTC)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func floatFlag(flags *pflag.FlagSet, name string) *float64 {
	if !flags.Changed(name) {
		return nil
	}
	v, _ := flags.GetFloat64(name)
	return &v
}

func addFilterFlags(flags *pflag.FlagSet) {
	flags.String("date", "", "Only match approaches on this date (YYYY-MM-DD)")
	flags.String("start-date", "", "Only match approaches on or after this date")
	flags.String("end-date", "", "Only match approaches on or before this date")
	flags.Float64("distance-min", 0, "Minimum approach distance in au")
	flags.Float64("distance-max", 0, "Maximum approach distance in au")
	flags.Float64("velocity-min", 0, "Minimum approach velocity in km/s")
	flags.Float64("velocity-max", 0, "Maximum approach velocity in km/s")
	flags.Float64("diameter-min", 0, "Minimum object diameter in km")
	flags.Float64("diameter-max", 0, "Maximum object diameter in km")
	flags.Bool("hazardous", false, "Only match potentially hazardous objects")
	flags.Bool("not-hazardous", false, "Only match objects that are not potentially hazardous")
}

func init() {
	// Flags for this command
	addFilterFlags(Command.Flags())
	Command.Flags().IntP("limit", "l", 10, "Maximum number of results (0 for no limit)")
	Command.Flags().StringP("output", "o", "text", "Output format of results [csv, json, text]")
	Command.Flags().StringP("outfile", "f", "", "Write results to this file instead of stdout")
}
