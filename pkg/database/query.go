/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package database

import (
	"iter"
	"time"
)

// The Query object represents a single query on a database. Every
// criterion is optional; nil means no constraint on that field. A query
// with nothing set matches every close approach.
//
// Date, if set, takes precedence over the StartDate/EndDate pair; a
// caller should not set both.
type Query struct {
	Date      *time.Time // match the date component exactly
	StartDate *time.Time // inclusive lower bound on the date
	EndDate   *time.Time // inclusive upper bound on the date

	DistanceMin *float64 // au, inclusive
	DistanceMax *float64
	VelocityMin *float64 // km/s, inclusive
	VelocityMax *float64
	DiameterMin *float64 // km, inclusive; never matches an unknown diameter
	DiameterMax *float64

	Hazardous *bool
}

// A Predicate decides whether a single close approach satisfies one
// criterion.
type Predicate func(*CloseApproach) bool

type Predicates []Predicate

// Match is the short-circuiting AND over all predicates. The first
// failing criterion rejects the candidate without evaluating the rest.
func (p Predicates) Match(ca *CloseApproach) bool {
	for _, pred := range p {
		if !pred(ca) {
			return false
		}
	}
	return true
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// dateOnly truncates to midnight UTC so date bounds compare the date
// component alone.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Predicates compiles the set criteria into single-field closures, in
// evaluation order: date, distance, velocity, diameter, hazard flag.
func (q Query) Predicates() Predicates {
	var preds Predicates

	if q.Date != nil {
		want := *q.Date
		preds = append(preds, func(ca *CloseApproach) bool {
			return sameDate(ca.Time, want)
		})
	} else {
		if q.StartDate != nil {
			start := dateOnly(*q.StartDate)
			preds = append(preds, func(ca *CloseApproach) bool {
				return !dateOnly(ca.Time).Before(start)
			})
		}
		if q.EndDate != nil {
			end := dateOnly(*q.EndDate)
			preds = append(preds, func(ca *CloseApproach) bool {
				return !dateOnly(ca.Time).After(end)
			})
		}
	}

	if q.DistanceMin != nil {
		min := *q.DistanceMin
		preds = append(preds, func(ca *CloseApproach) bool {
			return ca.Distance >= min
		})
	}
	if q.DistanceMax != nil {
		max := *q.DistanceMax
		preds = append(preds, func(ca *CloseApproach) bool {
			return ca.Distance <= max
		})
	}

	if q.VelocityMin != nil {
		min := *q.VelocityMin
		preds = append(preds, func(ca *CloseApproach) bool {
			return ca.Velocity >= min
		})
	}
	if q.VelocityMax != nil {
		max := *q.VelocityMax
		preds = append(preds, func(ca *CloseApproach) bool {
			return ca.Velocity <= max
		})
	}

	// NaN fails both comparisons, so an unknown diameter never matches
	// either bound
	if q.DiameterMin != nil {
		min := *q.DiameterMin
		preds = append(preds, func(ca *CloseApproach) bool {
			return ca.NEO.Diameter >= min
		})
	}
	if q.DiameterMax != nil {
		max := *q.DiameterMax
		preds = append(preds, func(ca *CloseApproach) bool {
			return ca.NEO.Diameter <= max
		})
	}

	if q.Hazardous != nil {
		want := *q.Hazardous
		preds = append(preds, func(ca *CloseApproach) bool {
			return ca.NEO.Hazardous == want
		})
	}

	return preds
}

// Query produces the close approaches matching every set criterion, in
// the stored order. The sequence is lazy and restartable; ranging over
// it a second time makes a fresh pass over the database. The database
// is never mutated.
func (d *Database) Query(q Query) iter.Seq[*CloseApproach] {
	preds := q.Predicates()
	return func(yield func(*CloseApproach) bool) {
		if len(preds) == 0 {
			for _, ca := range d.Approaches {
				if !yield(ca) {
					return
				}
			}
			return
		}
		for _, ca := range d.Approaches {
			if !preds.Match(ca) {
				continue
			}
			if !yield(ca) {
				return
			}
		}
	}
}

// Limit caps a result sequence at n elements. Zero or negative n passes
// everything through.
func Limit(seq iter.Seq[*CloseApproach], n int) iter.Seq[*CloseApproach] {
	if n <= 0 {
		return seq
	}
	return func(yield func(*CloseApproach) bool) {
		i := 0
		for ca := range seq {
			if !yield(ca) {
				return
			}
			i++
			if i >= n {
				return
			}
		}
	}
}
