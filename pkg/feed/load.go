/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package feed

import (
	"github.com/astralkit/perihelion/pkg/database"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
)

// LoadDatabase reads both data files and links them into a database.
func LoadDatabase(log zerolog.Logger, neofile, cadfile string) (*database.Database, error) {
	neos, err := LoadNEOs(neofile)
	if err != nil {
		return nil, err
	}
	log.Info().Str("file", neofile).Msgf("loaded %s near-Earth objects", humanize.Comma(int64(len(neos))))

	approaches, err := LoadApproaches(cadfile)
	if err != nil {
		return nil, err
	}
	log.Info().Str("file", cadfile).Msgf("loaded %s close approaches", humanize.Comma(int64(len(approaches))))

	return database.NewDatabase(neos, approaches)
}
