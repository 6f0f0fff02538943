/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package database

import (
	"github.com/pkg/errors"
)

// A Database holds the full collection of near-Earth objects and close
// approaches, linked together and indexed for point lookups. It is
// built once from already-constructed collections and is read-only
// afterwards, so queries need no locking.
type Database struct {
	NEOs       []*NearEarthObject
	Approaches []*CloseApproach

	// Private fields

	// Lookup maps are marked private since the collections are the
	// source of truth
	byDesignation map[string]*NearEarthObject
	byName        map[string]*NearEarthObject
}

// NewDatabase links approaches to their owning objects and builds the
// designation and name indexes.
//
// Duplicate designations (or names) are last-write-wins in the indexes;
// the earlier object still exists in the raw collection. Objects with
// no name are never indexed by name. An approach whose designation
// matches no object is a data-integrity error and no database is
// produced.
func NewDatabase(neos []*NearEarthObject, approaches []*CloseApproach) (*Database, error) {
	db := Database{
		NEOs:          neos,
		Approaches:    approaches,
		byDesignation: make(map[string]*NearEarthObject, len(neos)),
		byName:        make(map[string]*NearEarthObject),
	}

	for _, neo := range neos {
		db.byDesignation[neo.Designation] = neo
		if neo.Named() {
			db.byName[neo.Name] = neo
		}
	}

	for _, ca := range approaches {
		neo, ok := db.byDesignation[ca.Designation]
		if !ok {
			return nil, errors.Errorf("close approach references unknown designation %q", ca.Designation)
		}
		ca.NEO = neo
		neo.Approaches = append(neo.Approaches, ca)
	}

	return &db, nil
}

// GetNEOByDesignation returns the object with the given primary
// designation, or nil. Matching is exact and case-sensitive.
func (d *Database) GetNEOByDesignation(designation string) *NearEarthObject {
	return d.byDesignation[designation]
}

// GetNEOByName returns the object with the given IAU name, or nil.
// Matching is exact and case-sensitive; the empty string never matches.
func (d *Database) GetNEOByName(name string) *NearEarthObject {
	return d.byName[name]
}
