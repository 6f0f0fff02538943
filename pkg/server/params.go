/*
 * Copyright (c) 2024, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"net/url"
	"strconv"
	"time"

	"github.com/astralkit/perihelion/pkg/database"
	"github.com/pkg/errors"
)

// DateLayout is the date-only form accepted by the query parameters.
const DateLayout = "2006-01-02"

// QueryFromParams maps URL query parameters onto the criteria struct.
// Absent parameters stay unset; a malformed value rejects the request.
func QueryFromParams(params url.Values) (database.Query, int, error) {
	var q database.Query

	dates := map[string]**time.Time{
		"date":       &q.Date,
		"start-date": &q.StartDate,
		"end-date":   &q.EndDate,
	}
	for name, field := range dates {
		raw := params.Get(name)
		if raw == "" {
			continue
		}
		t, err := time.ParseInLocation(DateLayout, raw, time.UTC)
		if err != nil {
			return q, 0, errors.Wrapf(err, "malformed %s %q", name, raw)
		}
		*field = &t
	}

	bounds := map[string]**float64{
		"distance-min": &q.DistanceMin,
		"distance-max": &q.DistanceMax,
		"velocity-min": &q.VelocityMin,
		"velocity-max": &q.VelocityMax,
		"diameter-min": &q.DiameterMin,
		"diameter-max": &q.DiameterMax,
	}
	for name, field := range bounds {
		raw := params.Get(name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return q, 0, errors.Wrapf(err, "malformed %s %q", name, raw)
		}
		*field = &v
	}

	if raw := params.Get("hazardous"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return q, 0, errors.Wrapf(err, "malformed hazardous %q", raw)
		}
		q.Hazardous = &v
	}

	limit := 0
	if raw := params.Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return q, 0, errors.Wrapf(err, "malformed limit %q", raw)
		}
		limit = v
	}

	return q, limit, nil
}
