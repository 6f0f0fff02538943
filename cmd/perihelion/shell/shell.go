/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package shell

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/astralkit/perihelion/pkg/database"
	"github.com/astralkit/perihelion/pkg/export"
	"github.com/astralkit/perihelion/pkg/feed"
	"github.com/astralkit/perihelion/pkg/server"
	"github.com/chzyer/readline"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Command = &cobra.Command{
	Use:   "shell",
	Short: "Interactive prompt for exploring a loaded database",

	Run: func(cmd *cobra.Command, args []string) {
		log := viper.Get("logger").(zerolog.Logger)

		db, err := feed.LoadDatabase(log,
			viper.GetString("perihelion.neofile"),
			viper.GetString("perihelion.cadfile"))
		if err != nil {
			log.Fatal().Err(err).Msg("unable to build database")
		}

		output, _ := cmd.Flags().GetString("output")
		prompt(log, db, output)
	},
}

var criteria = []string{
	"date", "start-date", "end-date",
	"distance-min", "distance-max",
	"velocity-min", "velocity-max",
	"diameter-min", "diameter-max",
	"hazardous", "limit",
}

func completer() *readline.PrefixCompleter {
	items := make([]readline.PrefixCompleterInterface, 0, len(criteria))
	for _, c := range criteria {
		items = append(items, readline.PcItem(c+"="))
	}

	return readline.NewPrefixCompleter(
		readline.PcItem("neo"),
		readline.PcItem("name"),
		readline.PcItem("query", items...),
		readline.PcItem("help"),
		readline.PcItem("exit"),
	)
}

func prompt(log zerolog.Logger, db *database.Database, output string) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "peri> ",
		HistoryFile:     "/tmp/perihelion-history.tmp",
		AutoComplete:    completer(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("unable to initialize readline")
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		} else if err == io.EOF {
			break
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "exit", "quit":
			return
		case "help":
			usage()
		case "neo":
			if len(fields) != 2 {
				fmt.Println("usage: neo <designation>")
				continue
			}
			describe(db.GetNEOByDesignation(fields[1]))
		case "name":
			if len(fields) < 2 {
				fmt.Println("usage: name <IAU name>")
				continue
			}
			describe(db.GetNEOByName(strings.Join(fields[1:], " ")))
		case "query":
			runQuery(db, fields[1:], output)
		default:
			fmt.Printf("unknown command %q, try 'help'\n", fields[0])
		}
	}
}

func usage() {
	fmt.Println("commands:")
	fmt.Println("  neo <designation>      look up an object by primary designation")
	fmt.Println("  name <IAU name>        look up an object by name")
	fmt.Println("  query [field=value]... filter close approaches")
	fmt.Println("  exit")
	fmt.Printf("query fields: %s\n", strings.Join(criteria, ", "))
}

func describe(neo *database.NearEarthObject) {
	if neo == nil {
		fmt.Println("no matching NEO")
		return
	}
	fmt.Println(neo.ToString())
	for _, ca := range neo.Approaches {
		fmt.Println("-", ca.ToString())
	}
}

// runQuery parses field=value tokens with the same rules as the HTTP
// query parameters, then renders matches to stdout.
func runQuery(db *database.Database, args []string, output string) {
	params := url.Values{}
	for _, arg := range args {
		field, value, ok := strings.Cut(arg, "=")
		if !ok {
			fmt.Printf("malformed criterion %q, want field=value\n", arg)
			return
		}
		params.Set(field, value)
	}

	q, limit, err := server.QueryFromParams(params)
	if err != nil {
		fmt.Println(err)
		return
	}

	results := database.Limit(db.Query(q), limit)
	if err := export.NewOutputWriter(os.Stdout, output).Write(results); err != nil {
		fmt.Println(err)
	}
}

func init() {
	// Flags for this command
	Command.Flags().StringP("output", "o", "text", "Output format of results [csv, json, text]")
}
