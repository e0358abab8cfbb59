// /home/krylon/go/src/github.com/blicero/camdash/dashboard/state.go
// -*- mode: go; coding: utf-8; -*-
// Created on 04. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-12 21:17:40 krylon>

// Package dashboard holds the state of a camera dashboard and the rules by
// which it changes.
//
// All state lives in a State value. Changes are expressed as Intents, which
// Reduce applies without side effects. The Controller wraps a State, talks
// to the camera API and feeds the results back in as Intents.
package dashboard

import (
	"strings"

	"github.com/blicero/camdash/model"
)

// State is everything the dashboard knows. Treat it as a value: Reduce
// never modifies the State it is given, in particular not the Cameras slice.
type State struct {
	Cameras      []model.Camera
	Search       string
	Status       string // model.All, "Active" or "Inactive"
	Location     string // model.All or a location
	CurrentPage  int    // 1-based
	PerPage      int
	Loading      bool
	Loaded       bool
	LoadErr      string
	LoadGen      uint64
	DeleteOpen   bool
	DeleteTarget model.CameraID
}

// NewState returns the initial State. An invalid perPage is replaced by the
// default page size.
func NewState(perPage int) State {
	if !model.ValidPageSize(perPage) {
		perPage = model.DefaultPageSize
	}

	return State{
		Cameras:     []model.Camera{},
		Status:      model.All,
		Location:    model.All,
		CurrentPage: 1,
		PerPage:     perPage,
	}
} // func NewState(perPage int) State

// Criteria returns the filter criteria of the State.
func (s *State) Criteria() model.Criteria {
	return model.Criteria{
		Search:   s.Search,
		Status:   s.Status,
		Location: s.Location,
	}
} // func (s *State) Criteria() model.Criteria

// Filtered returns the Cameras that pass the current filters.
func (s *State) Filtered() []model.Camera {
	return model.Filter(s.Cameras, s.Criteria())
} // func (s *State) Filtered() []model.Camera

// Page returns the pagination state for the current filters.
func (s *State) Page() model.Page {
	var (
		n = 0
		c = s.Criteria()
	)

	for idx := range s.Cameras {
		if c.Match(&s.Cameras[idx]) {
			n++
		}
	}

	return model.Paginate(n, s.PerPage, s.CurrentPage)
} // func (s *State) Page() model.Page

// IndexOf returns the position of the Camera with the given ID, or -1.
func (s *State) IndexOf(id model.CameraID) int {
	for idx := range s.Cameras {
		if s.Cameras[idx].ID == id {
			return idx
		}
	}

	return -1
} // func (s *State) IndexOf(id model.CameraID) int

// Nav is a relative movement between pages.
type Nav uint8

// Values for Nav.
const (
	First Nav = iota
	Prev
	Next
	Last
)

func (n Nav) String() string {
	switch n {
	case First:
		return "first"
	case Prev:
		return "prev"
	case Next:
		return "next"
	case Last:
		return "last"
	default:
		return "invalid"
	}
} // func (n Nav) String() string

// ParseNav converts the name of a Nav, as returned by String, into a Nav.
func ParseNav(s string) (Nav, bool) {
	switch strings.ToLower(s) {
	case "first":
		return First, true
	case "prev", "previous":
		return Prev, true
	case "next":
		return Next, true
	case "last":
		return Last, true
	default:
		return First, false
	}
} // func ParseNav(s string) (Nav, bool)

// Intent is a request to change the State.
type Intent interface {
	intent()
}

// LoadStarted marks the beginning of a load. Gen identifies the load;
// results carrying any other Gen are stale.
type LoadStarted struct{ Gen uint64 }

// Loaded delivers the result of a successful load.
type Loaded struct {
	Gen     uint64
	Cameras []model.Camera
}

// LoadFailed reports a failed load.
type LoadFailed struct {
	Gen uint64
	Err string
}

// SetSearch sets the name search term.
type SetSearch struct{ Term string }

// SetStatusFilter sets the status filter. Valid values are model.All,
// "Active" and "Inactive", in any case. The empty string means model.All.
type SetStatusFilter struct{ Status string }

// SetLocationFilter sets the location filter. The empty string means
// model.All.
type SetLocationFilter struct{ Location string }

// SetPerPage sets the number of rows per page. Values not in
// model.PageSizes are ignored.
type SetPerPage struct{ N int }

// GotoPage moves to the given page, clamped to the available pages.
type GotoPage struct{ Page int }

// Navigate moves relative to the current page.
type Navigate struct{ Nav Nav }

// StatusChanged records that the API accepted a new status for a Camera.
type StatusChanged struct {
	ID     model.CameraID
	Status model.Status
}

// RequestDelete opens the confirmation dialog for a Camera.
type RequestDelete struct{ ID model.CameraID }

// CancelDelete closes the confirmation dialog.
type CancelDelete struct{}

// ConfirmDelete removes the Camera the dialog was opened for and closes
// the dialog.
type ConfirmDelete struct{}

// RestoreCamera puts a Camera back at the given position, undoing a
// ConfirmDelete.
type RestoreCamera struct {
	Index  int
	Camera model.Camera
}

func (LoadStarted) intent()       {}
func (Loaded) intent()            {}
func (LoadFailed) intent()        {}
func (SetSearch) intent()         {}
func (SetStatusFilter) intent()   {}
func (SetLocationFilter) intent() {}
func (SetPerPage) intent()        {}
func (GotoPage) intent()          {}
func (Navigate) intent()          {}
func (StatusChanged) intent()     {}
func (RequestDelete) intent()     {}
func (CancelDelete) intent()      {}
func (ConfirmDelete) intent()     {}
func (RestoreCamera) intent()     {}

// Reduce returns the State that results from applying in to s.
// Intents that make no sense in the given State leave it unchanged.
func Reduce(s State, in Intent) State {
	switch i := in.(type) {
	case LoadStarted:
		s.Loading = true
		s.LoadGen = i.Gen
		s.LoadErr = ""
	case Loaded:
		if i.Gen != s.LoadGen {
			return s
		}
		s.Cameras = append([]model.Camera{}, i.Cameras...)
		s.Loading = false
		s.Loaded = true
		s.LoadErr = ""
		if s.DeleteOpen && s.IndexOf(s.DeleteTarget) == -1 {
			s.DeleteOpen = false
			s.DeleteTarget = ""
		}
		s.CurrentPage = s.Page().Clamp(s.CurrentPage)
	case LoadFailed:
		if i.Gen != s.LoadGen {
			return s
		}
		s.Loading = false
		s.Loaded = true
		s.LoadErr = i.Err
	case SetSearch:
		s.Search = i.Term
		s.CurrentPage = 1
	case SetStatusFilter:
		var (
			status string
			ok     bool
		)
		if status, ok = normalizeStatusFilter(i.Status); !ok {
			return s
		}
		s.Status = status
		s.CurrentPage = 1
	case SetLocationFilter:
		if i.Location == "" {
			s.Location = model.All
		} else {
			s.Location = i.Location
		}
		s.CurrentPage = 1
	case SetPerPage:
		if !model.ValidPageSize(i.N) {
			return s
		}
		s.PerPage = i.N
		s.CurrentPage = 1
	case GotoPage:
		s.CurrentPage = s.Page().Clamp(i.Page)
	case Navigate:
		var p = s.Page()
		switch i.Nav {
		case First:
			s.CurrentPage = 1
		case Prev:
			s.CurrentPage = p.Clamp(s.CurrentPage - 1)
		case Next:
			s.CurrentPage = p.Clamp(s.CurrentPage + 1)
		case Last:
			s.CurrentPage = p.Clamp(p.Count)
		}
	case StatusChanged:
		var idx = s.IndexOf(i.ID)
		if idx == -1 {
			return s
		}
		s.Cameras = append([]model.Camera{}, s.Cameras...)
		s.Cameras[idx] = s.Cameras[idx].WithStatus(i.Status)
		s.CurrentPage = s.Page().Clamp(s.CurrentPage)
	case RequestDelete:
		if s.IndexOf(i.ID) == -1 {
			return s
		}
		s.DeleteOpen = true
		s.DeleteTarget = i.ID
	case CancelDelete:
		s.DeleteOpen = false
		s.DeleteTarget = ""
	case ConfirmDelete:
		if !s.DeleteOpen {
			return s
		}
		if idx := s.IndexOf(s.DeleteTarget); idx != -1 {
			var cams = make([]model.Camera, 0, len(s.Cameras)-1)
			cams = append(cams, s.Cameras[:idx]...)
			s.Cameras = append(cams, s.Cameras[idx+1:]...)
		}
		s.DeleteOpen = false
		s.DeleteTarget = ""
		s.CurrentPage = s.Page().Clamp(s.CurrentPage)
	case RestoreCamera:
		if s.IndexOf(i.Camera.ID) != -1 {
			return s
		}
		var (
			idx  = min(max(i.Index, 0), len(s.Cameras))
			cams = make([]model.Camera, 0, len(s.Cameras)+1)
		)
		cams = append(cams, s.Cameras[:idx]...)
		cams = append(cams, i.Camera)
		s.Cameras = append(cams, s.Cameras[idx:]...)
	}

	return s
} // func Reduce(s State, in Intent) State

func normalizeStatusFilter(s string) (string, bool) {
	switch {
	case s == "" || strings.EqualFold(s, model.All):
		return model.All, true
	case strings.EqualFold(s, string(model.Active)):
		return string(model.Active), true
	case strings.EqualFold(s, string(model.Inactive)):
		return string(model.Inactive), true
	default:
		return "", false
	}
} // func normalizeStatusFilter(s string) (string, bool)
