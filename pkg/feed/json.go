/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package feed

import (
	"encoding/json"
	"io"
	"os"
	"strconv"

	"github.com/astralkit/perihelion/pkg/database"
	"github.com/pkg/errors"
)

// Positions of the fields we use within each close-approach record.
const (
	cadDesignation = 0
	cadDistance    = 3
	cadVelocity    = 4
	cadTime        = 7
)

// cadFile is the envelope of the close-approach data set: an array of
// positional records plus the field names that describe the positions.
type cadFile struct {
	Fields []string         `json:"fields"`
	Data   [][]cadFieldJSON `json:"data"`
}

// cadFieldJSON tolerates the data set's mix of strings, bare numbers,
// and nulls; either way we keep the raw text for parsing. Elements are
// values, not pointers, so a null still reaches UnmarshalJSON instead
// of leaving a nil hole in the record.
type cadFieldJSON struct {
	raw string
}

func (f *cadFieldJSON) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		f.raw = s
		return nil
	}
	f.raw = string(b)
	return nil
}

// LoadApproaches reads close approaches from the JPL close-approach
// JSON file. The owning object is recorded only as a designation
// string; linking happens when the database is built.
func LoadApproaches(path string) ([]*database.CloseApproach, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to open close approach json")
	}
	defer f.Close()

	return ReadApproaches(f)
}

// ReadApproaches is LoadApproaches over an arbitrary reader.
func ReadApproaches(r io.Reader) ([]*database.CloseApproach, error) {
	var file cadFile
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return nil, errors.Wrap(err, "unable to decode close approach json")
	}

	approaches := make([]*database.CloseApproach, 0, len(file.Data))
	for i, row := range file.Data {
		if len(row) <= cadTime {
			return nil, errors.Errorf("close approach record %d has %d fields, want at least %d", i, len(row), cadTime+1)
		}

		t, err := database.ParseApproachTime(row[cadTime].raw)
		if err != nil {
			return nil, errors.Wrapf(err, "malformed approach time %q in record %d", row[cadTime].raw, i)
		}

		distance, err := strconv.ParseFloat(row[cadDistance].raw, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "malformed distance %q in record %d", row[cadDistance].raw, i)
		}

		velocity, err := strconv.ParseFloat(row[cadVelocity].raw, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "malformed velocity %q in record %d", row[cadVelocity].raw, i)
		}

		approaches = append(approaches, &database.CloseApproach{
			Designation: row[cadDesignation].raw,
			Time:        t,
			Distance:    distance,
			Velocity:    velocity,
		})
	}

	return approaches, nil
}
