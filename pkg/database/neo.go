/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package database

import (
	"fmt"
	"math"
	"time"
)

// ApproachTimeLayout is the timestamp form used by the NASA/JPL close
// approach data set, with a 3-letter calendar month.
const ApproachTimeLayout = "2006-Jan-02 15:04"

// TimeLayout is the canonical minute-precision form used everywhere we
// render an approach time. The source data has no seconds.
const TimeLayout = "2006-01-02 15:04"

// A NearEarthObject is a single astronomical body tracked by the data
// set. The primary designation is required and unique; the IAU name and
// the diameter are frequently missing. An unknown diameter is NaN, so
// that bound comparisons against it are simply false.
//
// Approaches starts empty and is populated exactly once, when the
// object is linked into a Database.
type NearEarthObject struct {
	Designation string
	Name        string  // empty when the object has no IAU name
	Diameter    float64 // kilometers; NaN when unknown
	Hazardous   bool
	Approaches  []*CloseApproach
}

// NewNEO builds a NearEarthObject from already-coerced field values.
// Callers pass NaN for an unknown diameter; field coercion from the raw
// data set lives in the feed package.
func NewNEO(designation, name string, diameter float64, hazardous bool) *NearEarthObject {
	return &NearEarthObject{
		Designation: designation,
		Name:        name,
		Diameter:    diameter,
		Hazardous:   hazardous,
	}
}

// Named reports whether the object carries an IAU name.
func (n *NearEarthObject) Named() bool {
	return n.Name != ""
}

// Fullname is the designation, plus the name in parentheses when there
// is one.
func (n *NearEarthObject) Fullname() string {
	if n.Named() {
		return fmt.Sprintf("%s (%s)", n.Designation, n.Name)
	}
	return n.Designation
}

func (n *NearEarthObject) ToString() string {
	hazard := "is not potentially hazardous"
	if n.Hazardous {
		hazard = "is potentially hazardous"
	}
	if math.IsNaN(n.Diameter) {
		return fmt.Sprintf("%s has an unknown diameter and %s", n.Fullname(), hazard)
	}
	return fmt.Sprintf("%s has a diameter of %.3f km and %s", n.Fullname(), n.Diameter, hazard)
}

// A CloseApproach records one pass of a NearEarthObject by Earth. Until
// the approach is linked into a Database only the owning object's
// designation string is known; NEO is resolved at construction time.
type CloseApproach struct {
	Designation string
	Time        time.Time // UTC, minute precision
	Distance    float64   // astronomical units
	Velocity    float64   // km/s
	NEO         *NearEarthObject
}

// ParseApproachTime parses the data set's timestamp form into a UTC
// time.
func ParseApproachTime(s string) (time.Time, error) {
	return time.ParseInLocation(ApproachTimeLayout, s, time.UTC)
}

// TimeStr renders the approach time in the canonical minute-precision
// form.
func (c *CloseApproach) TimeStr() string {
	return c.Time.Format(TimeLayout)
}

func (c *CloseApproach) ToString() string {
	return fmt.Sprintf("On %s, %s approaches Earth at a distance of %.2f au and a velocity of %.2f km/s",
		c.TimeStr(), c.NEO.Fullname(), c.Distance, c.Velocity)
}
