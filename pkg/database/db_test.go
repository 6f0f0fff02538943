/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package database

import (
	"math"
	"strings"
	"testing"
	"time"
)

func mustParse(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := ParseApproachTime(s)
	if err != nil {
		t.Fatalf("unable to parse %q: %v", s, err)
	}
	return parsed
}

func testNEOs() []*NearEarthObject {
	return []*NearEarthObject{
		NewNEO("433", "Eros", 16.84, false),
		NewNEO("99942", "Apophis", 0.34, true),
		NewNEO("2010 PK9", "", math.NaN(), true),
		NewNEO("2020 AY1", "", math.NaN(), false),
	}
}

func testApproaches(t *testing.T) []*CloseApproach {
	t.Helper()
	return []*CloseApproach{
		{Designation: "433", Time: mustParse(t, "2020-Jan-01 06:00"), Distance: 0.15, Velocity: 5.2},
		{Designation: "99942", Time: mustParse(t, "2020-Jan-01 12:30"), Distance: 0.01, Velocity: 7.6},
		{Designation: "2010 PK9", Time: mustParse(t, "2020-Feb-15 00:00"), Distance: 0.05, Velocity: 12.0},
		{Designation: "2020 AY1", Time: mustParse(t, "2020-Mar-10 23:59"), Distance: 0.30, Velocity: 3.1},
		{Designation: "433", Time: mustParse(t, "2021-Jul-04 00:00"), Distance: 0.025, Velocity: 9.9},
	}
}

func testDB(t *testing.T) *Database {
	t.Helper()
	db, err := NewDatabase(testNEOs(), testApproaches(t))
	if err != nil {
		t.Fatalf("unexpected error building database: %v", err)
	}
	return db
}

func TestLookupByDesignation(t *testing.T) {
	db := testDB(t)

	for _, neo := range db.NEOs {
		if got := db.GetNEOByDesignation(neo.Designation); got != neo {
			t.Errorf("GetNEOByDesignation(%q) = %v, want %v", neo.Designation, got, neo)
		}
	}

	if got := db.GetNEOByDesignation("1 Ceres"); got != nil {
		t.Errorf("expected nil for an unknown designation, got %v", got)
	}

	// Matching is exact, no normalization
	if got := db.GetNEOByDesignation("eros"); got != nil {
		t.Errorf("expected nil for a non-designation string, got %v", got)
	}
}

func TestLookupByName(t *testing.T) {
	db := testDB(t)

	if got := db.GetNEOByName("Eros"); got == nil || got.Designation != "433" {
		t.Errorf("GetNEOByName(\"Eros\") = %v, want designation 433", got)
	}
	if got := db.GetNEOByName("Apophis"); got == nil || got.Designation != "99942" {
		t.Errorf("GetNEOByName(\"Apophis\") = %v, want designation 99942", got)
	}

	// Unnamed objects are never indexed, and the empty string never matches
	if got := db.GetNEOByName(""); got != nil {
		t.Errorf("expected nil for the empty name, got %v", got)
	}
	if got := db.GetNEOByName("eros"); got != nil {
		t.Errorf("name matching should be case-sensitive, got %v", got)
	}
}

func TestDuplicateDesignationLastWriteWins(t *testing.T) {
	first := NewNEO("433", "Eros", 16.84, false)
	second := NewNEO("433", "Eros", 17.0, true)

	db, err := NewDatabase([]*NearEarthObject{first, second}, nil)
	if err != nil {
		t.Fatalf("unexpected error building database: %v", err)
	}

	if got := db.GetNEOByDesignation("433"); got != second {
		t.Errorf("expected the later object under a duplicate designation, got %v", got)
	}
	if got := db.GetNEOByName("Eros"); got != second {
		t.Errorf("expected the later object under a duplicate name, got %v", got)
	}
	if len(db.NEOs) != 2 {
		t.Errorf("both objects should remain in the raw collection, found %d", len(db.NEOs))
	}
}

func TestLinking(t *testing.T) {
	db := testDB(t)

	for _, ca := range db.Approaches {
		if ca.NEO == nil {
			t.Fatalf("approach at %s was not linked", ca.TimeStr())
		}
		if ca.NEO.Designation != ca.Designation {
			t.Errorf("approach linked to %q, want %q", ca.NEO.Designation, ca.Designation)
		}

		seen := 0
		for _, owned := range ca.NEO.Approaches {
			if owned == ca {
				seen++
			}
		}
		if seen != 1 {
			t.Errorf("approach appears %d times in its owner's collection, want exactly once", seen)
		}
	}

	// Appended in input order
	eros := db.GetNEOByDesignation("433")
	if len(eros.Approaches) != 2 {
		t.Fatalf("expected 2 approaches for 433, found %d", len(eros.Approaches))
	}
	if !eros.Approaches[0].Time.Before(eros.Approaches[1].Time) {
		t.Error("approaches for 433 are out of input order")
	}
}

func TestUnknownDesignationFailsConstruction(t *testing.T) {
	approaches := []*CloseApproach{
		{Designation: "99999 XB", Time: mustParse(t, "2020-Jan-01 06:00"), Distance: 0.1, Velocity: 1.0},
	}

	db, err := NewDatabase(testNEOs(), approaches)
	if err == nil {
		t.Fatal("expected a data-integrity error for an unknown designation")
	}
	if db != nil {
		t.Error("no database should be produced on a linking failure")
	}
	if !strings.Contains(err.Error(), "99999 XB") {
		t.Errorf("error should name the offending designation, got %q", err.Error())
	}
}

func TestErosScenario(t *testing.T) {
	neos := []*NearEarthObject{NewNEO("433", "Eros", 16.84, false)}
	approaches := []*CloseApproach{
		{Designation: "433", Time: mustParse(t, "2020-Jan-01 06:00"), Distance: 0.15, Velocity: 5.2},
	}

	db, err := NewDatabase(neos, approaches)
	if err != nil {
		t.Fatalf("unexpected error building database: %v", err)
	}

	if got := db.GetNEOByDesignation("433"); got != neos[0] {
		t.Errorf("GetNEOByDesignation(\"433\") = %v, want the Eros object", got)
	}

	date := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	var matched []*CloseApproach
	for ca := range db.Query(Query{Date: &date}) {
		matched = append(matched, ca)
	}
	if len(matched) != 1 || matched[0] != approaches[0] {
		t.Errorf("query for 2020-01-01 matched %v, want exactly the one approach", matched)
	}

	next := date.AddDate(0, 0, 1)
	for ca := range db.Query(Query{Date: &next}) {
		t.Errorf("query for 2020-01-02 unexpectedly matched %v", ca)
	}
}
