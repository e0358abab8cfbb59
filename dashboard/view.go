// /home/krylon/go/src/github.com/blicero/camdash/dashboard/view.go
// -*- mode: go; coding: utf-8; -*-
// Created on 04. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-11 22:03:16 krylon>

package dashboard

import (
	"github.com/blicero/camdash/model"
)

// View is what the user gets to see of a State. It is computed from the
// State every time and never stored.
type View struct {
	Cameras      []model.Camera `json:"cameras"` // Visible page
	Filtered     int            `json:"filtered"`
	Total        int            `json:"total"`
	Active       int            `json:"active"`
	Inactive     int            `json:"inactive"`
	Page         model.Page     `json:"page"`
	Locations    []string       `json:"locations"`
	Search       string         `json:"search"`
	Status       string         `json:"status"`
	Location     string         `json:"location"`
	PageSizes    []int          `json:"page_sizes"`
	Loading      bool           `json:"loading"`
	Loaded       bool           `json:"loaded"`
	LoadErr      string         `json:"load_error,omitempty"`
	DeleteOpen   bool           `json:"delete_open"`
	DeleteTarget *model.Camera  `json:"delete_target,omitempty"`
}

// Derive computes the View of a State.
func Derive(s State) View {
	var (
		filtered = s.Filtered()
		page     = model.Paginate(len(filtered), s.PerPage, s.CurrentPage)
		v        = View{
			Cameras:    append([]model.Camera{}, model.Slice(filtered, page)...),
			Filtered:   len(filtered),
			Total:      len(s.Cameras),
			Page:       page,
			Locations:  model.Locations(s.Cameras),
			Search:     s.Search,
			Status:     s.Status,
			Location:   s.Location,
			PageSizes:  model.PageSizes,
			Loading:    s.Loading,
			Loaded:     s.Loaded,
			LoadErr:    s.LoadErr,
			DeleteOpen: s.DeleteOpen,
		}
	)

	v.Active, v.Inactive = model.CountByStatus(s.Cameras)

	if s.DeleteOpen {
		if idx := s.IndexOf(s.DeleteTarget); idx != -1 {
			var c = s.Cameras[idx]
			v.DeleteTarget = &c
		}
	}

	return v
} // func Derive(s State) View

// Empty returns true if no Camera passes the current filters.
func (v *View) Empty() bool {
	return v.Filtered == 0
} // func (v *View) Empty() bool

// FirstDisabled returns true if the "first" and "previous" controls should
// be disabled.
func (v *View) FirstDisabled() bool {
	return !v.Page.HasPrev()
} // func (v *View) FirstDisabled() bool

// LastDisabled returns true if the "next" and "last" controls should be
// disabled.
func (v *View) LastDisabled() bool {
	return !v.Page.HasNext()
} // func (v *View) LastDisabled() bool
