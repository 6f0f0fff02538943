/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package feed reads the NASA/JPL small-body and close-approach data
// sets into collections the database package can link. All field
// coercion and malformed-value handling happens here; the core never
// sees a raw string.
package feed

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/astralkit/perihelion/pkg/database"
	"github.com/pkg/errors"
)

// Columns we need from the small-body data set. The file carries many
// more; the rest are ignored.
var neoColumns = []string{"pdes", "name", "diameter", "pha"}

// LoadNEOs reads near-Earth objects from a CSV file with named header
// columns. An empty name stays empty, an empty diameter becomes NaN,
// and the hazard flag is true only for the code "Y".
func LoadNEOs(path string) ([]*database.NearEarthObject, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to open NEO csv")
	}
	defer f.Close()

	return ReadNEOs(f)
}

// ReadNEOs is LoadNEOs over an arbitrary reader.
func ReadNEOs(r io.Reader) ([]*database.NearEarthObject, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "unable to read csv header")
	}

	cols := make(map[string]int, len(neoColumns))
	for i, name := range header {
		cols[name] = i
	}
	for _, name := range neoColumns {
		if _, ok := cols[name]; !ok {
			return nil, errors.Errorf("csv header is missing required column %q", name)
		}
	}

	var neos []*database.NearEarthObject
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "unable to read csv row at line %d", line)
		}

		diameter := math.NaN()
		if raw := row[cols["diameter"]]; raw != "" {
			diameter, err = strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "malformed diameter %q at line %d", raw, line)
			}
		}

		neos = append(neos, database.NewNEO(
			row[cols["pdes"]],
			row[cols["name"]],
			diameter,
			row[cols["pha"]] == "Y",
		))
	}

	return neos, nil
}
