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

func TestParseApproachTime(t *testing.T) {
	tt := []struct {
		test string
		in   string
		want time.Time
		err  bool
	}{
		{
			"data set form",
			"2020-Jan-01 06:00",
			time.Date(2020, time.January, 1, 6, 0, 0, 0, time.UTC),
			false,
		},
		{
			"december abbreviation",
			"1999-Dec-31 23:59",
			time.Date(1999, time.December, 31, 23, 59, 0, 0, time.UTC),
			false,
		},
		{
			"numeric month is rejected",
			"2020-01-01 06:00",
			time.Time{},
			true,
		},
		{
			"seconds are rejected",
			"2020-Jan-01 06:00:00",
			time.Time{},
			true,
		},
	}

	for _, tc := range tt {
		t.Run(tc.test, func(t *testing.T) {
			got, err := ParseApproachTime(tc.in)
			if tc.err {
				if err == nil {
					t.Fatalf("expected %q to fail parsing", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("parsed %v, want %v", got, tc.want)
			}
			if got.Location() != time.UTC {
				t.Errorf("parsed location %v, want UTC", got.Location())
			}
		})
	}
}

func TestTimeStr(t *testing.T) {
	ca := CloseApproach{Time: time.Date(2020, time.January, 1, 6, 0, 0, 0, time.UTC)}
	if got := ca.TimeStr(); got != "2020-01-01 06:00" {
		t.Errorf("TimeStr() = %q, want \"2020-01-01 06:00\"", got)
	}
}

func TestFullname(t *testing.T) {
	named := NewNEO("433", "Eros", 16.84, false)
	if got := named.Fullname(); got != "433 (Eros)" {
		t.Errorf("Fullname() = %q, want \"433 (Eros)\"", got)
	}

	unnamed := NewNEO("2010 PK9", "", math.NaN(), true)
	if got := unnamed.Fullname(); got != "2010 PK9" {
		t.Errorf("Fullname() = %q, want \"2010 PK9\"", got)
	}
}

func TestUnknownDiameterComparesFalse(t *testing.T) {
	neo := NewNEO("2010 PK9", "", math.NaN(), true)

	// Every ordering against the sentinel must be false
	if neo.Diameter >= 0 || neo.Diameter <= 0 || neo.Diameter == 0 {
		t.Error("comparisons against an unknown diameter should never hold")
	}
	if !math.IsNaN(neo.Diameter) {
		t.Error("unknown diameter should be NaN")
	}
}

func TestToString(t *testing.T) {
	neo := NewNEO("433", "Eros", 16.84, false)
	s := neo.ToString()
	if !strings.Contains(s, "433 (Eros)") || !strings.Contains(s, "not potentially hazardous") {
		t.Errorf("unexpected description %q", s)
	}

	unknown := NewNEO("2010 PK9", "", math.NaN(), true)
	s = unknown.ToString()
	if !strings.Contains(s, "unknown diameter") || strings.Contains(s, "not potentially") {
		t.Errorf("unexpected description %q", s)
	}
}
