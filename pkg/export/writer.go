/*
 * Copyright (c) 2024, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package export serializes query results to CSV, JSON, or a
// human-readable table.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"iter"
	"math"
	"strconv"

	"github.com/astralkit/perihelion/pkg/database"
	"github.com/olekukonko/tablewriter"
)

// Fieldnames is the output column set, shared by the CSV header and the
// table header.
var Fieldnames = []string{
	"datetime_utc",
	"distance_au",
	"velocity_km_s",
	"designation",
	"name",
	"diameter_km",
	"potentially_hazardous",
}

type OutputWriter interface {
	Write(results iter.Seq[*database.CloseApproach]) error
}

type CSVWriter struct {
	w io.Writer
}

type TextWriter struct {
	w io.Writer
}

type JSONWriter struct {
	w io.Writer
}

func NewOutputWriter(w io.Writer, t string) OutputWriter {
	switch t {
	case "csv":
		return CSVWriter{
			w,
		}
	case "json":
		return JSONWriter{
			w,
		}
	}
	return TextWriter{
		w,
	}
}

// Record is the structured form of one close approach, with the owning
// object nested under "neo". An unknown diameter is encoded as null,
// since JSON has no NaN.
type Record struct {
	DatetimeUTC string    `json:"datetime_utc"`
	DistanceAU  float64   `json:"distance_au"`
	VelocityKmS float64   `json:"velocity_km_s"`
	NEO         NEORecord `json:"neo"`
}

type NEORecord struct {
	Designation string   `json:"designation"`
	Name        string   `json:"name"`
	DiameterKm  *float64 `json:"diameter_km"`
	Hazardous   bool     `json:"potentially_hazardous"`
}

// NewRecord flattens a linked close approach for serialization.
func NewRecord(ca *database.CloseApproach) Record {
	return Record{
		DatetimeUTC: ca.TimeStr(),
		DistanceAU:  ca.Distance,
		VelocityKmS: ca.Velocity,
		NEO:         NewNEORecord(ca.NEO),
	}
}

// NewNEORecord flattens a NEO, mapping an unknown diameter to null.
func NewNEORecord(neo *database.NearEarthObject) NEORecord {
	var diameter *float64
	if !math.IsNaN(neo.Diameter) {
		d := neo.Diameter
		diameter = &d
	}

	return NEORecord{
		Designation: neo.Designation,
		Name:        neo.Name,
		DiameterKm:  diameter,
		Hazardous:   neo.Hazardous,
	}
}

// formatFloat renders a float with the shortest representation that
// parses back to the same value.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func row(ca *database.CloseApproach) []string {
	diameter := ""
	if !math.IsNaN(ca.NEO.Diameter) {
		diameter = formatFloat(ca.NEO.Diameter)
	}

	return []string{
		ca.TimeStr(),
		formatFloat(ca.Distance),
		formatFloat(ca.Velocity),
		ca.NEO.Designation,
		ca.NEO.Name,
		diameter,
		strconv.FormatBool(ca.NEO.Hazardous),
	}
}

func (w CSVWriter) Write(results iter.Seq[*database.CloseApproach]) error {
	wtr := csv.NewWriter(w.w)
	if err := wtr.Write(Fieldnames); err != nil {
		return err
	}
	for ca := range results {
		if err := wtr.Write(row(ca)); err != nil {
			return err
		}
	}
	wtr.Flush()
	return wtr.Error()
}

func (w TextWriter) Write(results iter.Seq[*database.CloseApproach]) error {
	rows := [][]string{}
	for ca := range results {
		rows = append(rows, row(ca))
	}

	table := tablewriter.NewWriter(w.w)
	table.SetHeader(Fieldnames)
	table.AppendBulk(rows)
	table.Render()
	return nil
}

func (w JSONWriter) Write(results iter.Seq[*database.CloseApproach]) error {
	records := []Record{}
	for ca := range results {
		records = append(records, NewRecord(ca))
	}

	enc := json.NewEncoder(w.w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
