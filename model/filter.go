// /home/krylon/go/src/github.com/blicero/camdash/model/filter.go
// -*- mode: go; coding: utf-8; -*-
// Created on 03. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-10 16:44:05 krylon>

package model

import "strings"

// All is the filter value that lets everything through.
const All = "All"

// Criteria describes which Cameras the dashboard is supposed to show.
// The zero value matches everything.
type Criteria struct {
	Search   string
	Status   string
	Location string
}

// Match returns true if the Camera satisfies all of the receiver's
// conditions. The name search ignores case, status and location must match
// exactly.
func (c *Criteria) Match(cam *Camera) bool {
	if c.Search != "" &&
		!strings.Contains(strings.ToLower(cam.Name), strings.ToLower(c.Search)) {
		return false
	} else if c.Status != "" && c.Status != All && string(cam.Status) != c.Status {
		return false
	} else if c.Location != "" && c.Location != All && cam.Location != c.Location {
		return false
	}

	return true
} // func (c *Criteria) Match(cam *Camera) bool

// Filter returns the Cameras matching the given Criteria, in their original
// order. The input is not modified.
func Filter(cams []Camera, c Criteria) []Camera {
	var res = make([]Camera, 0, len(cams))

	for idx := range cams {
		if c.Match(&cams[idx]) {
			res = append(res, cams[idx])
		}
	}

	return res
} // func Filter(cams []Camera, c Criteria) []Camera

// Locations returns the distinct, non-empty locations of the given Cameras in
// the order they are first seen.
func Locations(cams []Camera) []string {
	var (
		seen = make(map[string]bool, len(cams))
		locs = make([]string, 0)
	)

	for _, c := range cams {
		if c.Location != "" && !seen[c.Location] {
			seen[c.Location] = true
			locs = append(locs, c.Location)
		}
	}

	return locs
} // func Locations(cams []Camera) []string

// CountByStatus returns how many of the given Cameras are Active and how many
// are Inactive.
func CountByStatus(cams []Camera) (active, inactive int) {
	for _, c := range cams {
		if c.Status.IsActive() {
			active++
		} else {
			inactive++
		}
	}

	return
} // func CountByStatus(cams []Camera) (active, inactive int)
