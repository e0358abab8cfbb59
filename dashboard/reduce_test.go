// /home/krylon/go/src/github.com/blicero/camdash/dashboard/reduce_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 04. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-12 22:10:31 krylon>

package dashboard

import (
	"fmt"
	"testing"

	"github.com/blicero/camdash/model"
)

// makeCams creates n Cameras with IDs "1" through n. Even-numbered ones
// are Inactive and sit in the Garage, the rest are Active and in the Lobby.
func makeCams(n int) []model.Camera {
	var cams = make([]model.Camera, n)

	for i := range cams {
		var num = i + 1
		cams[i] = model.Camera{
			ID:       model.CameraID(fmt.Sprintf("%d", num)),
			Name:     fmt.Sprintf("Cam %02d", num),
			Location: "Lobby",
			Status:   model.Active,
		}
		if num%2 == 0 {
			cams[i].Location = "Garage"
			cams[i].Status = model.Inactive
		}
	}

	return cams
} // func makeCams(n int) []model.Camera

func loadedState(n int) State {
	var s = NewState(10)
	s = Reduce(s, LoadStarted{Gen: 1})
	return Reduce(s, Loaded{Gen: 1, Cameras: makeCams(n)})
} // func loadedState(n int) State

func TestNewState(t *testing.T) {
	var s = NewState(17)

	if s.PerPage != model.DefaultPageSize {
		t.Errorf("Invalid page size was not replaced: %d", s.PerPage)
	} else if s.CurrentPage != 1 {
		t.Errorf("Unexpected CurrentPage %d", s.CurrentPage)
	} else if s.Status != model.All || s.Location != model.All {
		t.Errorf("Filters should start out as All: %q / %q", s.Status, s.Location)
	} else if s.Loading || s.Loaded {
		t.Error("Fresh State should be neither loading nor loaded")
	}
} // func TestNewState(t *testing.T)

func TestLoadLifecycle(t *testing.T) {
	var s = NewState(10)

	s = Reduce(s, LoadStarted{Gen: 1})
	if !s.Loading || s.Loaded {
		t.Fatalf("Unexpected state after LoadStarted: loading=%t loaded=%t",
			s.Loading, s.Loaded)
	}

	// A stale result must not overwrite anything.
	s = Reduce(s, Loaded{Gen: 0, Cameras: makeCams(3)})
	if len(s.Cameras) != 0 || !s.Loading {
		t.Fatalf("Stale load was applied: %d cameras", len(s.Cameras))
	}

	s = Reduce(s, Loaded{Gen: 1, Cameras: makeCams(3)})
	if s.Loading || !s.Loaded {
		t.Errorf("Unexpected state after Loaded: loading=%t loaded=%t",
			s.Loading, s.Loaded)
	} else if len(s.Cameras) != 3 {
		t.Errorf("Expected 3 cameras, got %d", len(s.Cameras))
	}

	s = Reduce(s, LoadStarted{Gen: 2})
	s = Reduce(s, LoadFailed{Gen: 2, Err: "boom"})
	if s.Loading {
		t.Error("Still loading after LoadFailed")
	} else if len(s.Cameras) != 3 {
		t.Errorf("Failed load must keep the records, have %d", len(s.Cameras))
	} else if s.LoadErr != "boom" {
		t.Errorf("Unexpected LoadErr %q", s.LoadErr)
	}
} // func TestLoadLifecycle(t *testing.T)

func TestPageReset(t *testing.T) {
	type testCase struct {
		name string
		in   Intent
	}

	var cases = []testCase{
		{"search", SetSearch{Term: "cam"}},
		{"status", SetStatusFilter{Status: "Active"}},
		{"status all", SetStatusFilter{Status: ""}},
		{"location", SetLocationFilter{Location: "Lobby"}},
		{"location all", SetLocationFilter{Location: model.All}},
		{"per page", SetPerPage{N: 20}},
		{"per page same", SetPerPage{N: 10}},
	}

	for _, c := range cases {
		var s = loadedState(45)
		s = Reduce(s, GotoPage{Page: 4})
		if s.CurrentPage != 4 {
			t.Fatalf("GotoPage 4 yielded page %d", s.CurrentPage)
		}

		s = Reduce(s, c.in)
		if s.CurrentPage != 1 {
			t.Errorf("%s: CurrentPage is %d after filter change, expected 1",
				c.name,
				s.CurrentPage)
		}
	}
} // func TestPageReset(t *testing.T)

func TestInvalidFilterValues(t *testing.T) {
	var s = loadedState(45)

	s = Reduce(s, GotoPage{Page: 3})

	var s2 = Reduce(s, SetPerPage{N: 15})
	if s2.PerPage != 10 || s2.CurrentPage != 3 {
		t.Errorf("Invalid page size was applied: %d / page %d",
			s2.PerPage, s2.CurrentPage)
	}

	s2 = Reduce(s, SetStatusFilter{Status: "offline"})
	if s2.Status != model.All || s2.CurrentPage != 3 {
		t.Errorf("Invalid status filter was applied: %q / page %d",
			s2.Status, s2.CurrentPage)
	}

	s2 = Reduce(s, SetStatusFilter{Status: "inactive"})
	if s2.Status != string(model.Inactive) {
		t.Errorf("Status filter was not normalized: %q", s2.Status)
	}
} // func TestInvalidFilterValues(t *testing.T)

func TestNavigate(t *testing.T) {
	type testCase struct {
		start  int
		nav    Nav
		expect int
	}

	// 25 cameras at 10 per page make 3 pages.
	var cases = []testCase{
		{1, First, 1},
		{1, Prev, 1},
		{1, Next, 2},
		{1, Last, 3},
		{3, Next, 3},
		{3, Prev, 2},
		{2, First, 1},
	}

	for _, c := range cases {
		var s = loadedState(25)
		s = Reduce(s, GotoPage{Page: c.start})
		s = Reduce(s, Navigate{Nav: c.nav})
		if s.CurrentPage != c.expect {
			t.Errorf("%s from page %d: expected %d, got %d",
				c.nav,
				c.start,
				c.expect,
				s.CurrentPage)
		}
	}
} // func TestNavigate(t *testing.T)

func TestGotoPageClamped(t *testing.T) {
	var s = loadedState(25)

	if s = Reduce(s, GotoPage{Page: 99}); s.CurrentPage != 3 {
		t.Errorf("Page 99 should clamp to 3, got %d", s.CurrentPage)
	} else if s = Reduce(s, GotoPage{Page: -1}); s.CurrentPage != 1 {
		t.Errorf("Page -1 should clamp to 1, got %d", s.CurrentPage)
	}

	s = NewState(10)
	if s = Reduce(s, GotoPage{Page: 2}); s.CurrentPage != 1 {
		t.Errorf("Without cameras, the page must be 1, got %d", s.CurrentPage)
	}
} // func TestGotoPageClamped(t *testing.T)

func TestToggleTwice(t *testing.T) {
	var (
		s    = loadedState(3)
		orig = s.Cameras[0].Status
	)

	s = Reduce(s, StatusChanged{ID: "1", Status: orig.Opposite()})
	if s.Cameras[0].Status == orig {
		t.Fatal("Status did not change")
	}

	s = Reduce(s, StatusChanged{ID: "1", Status: s.Cameras[0].Status.Opposite()})
	if s.Cameras[0].Status != orig {
		t.Errorf("Toggling twice should restore %s, got %s",
			orig,
			s.Cameras[0].Status)
	}
} // func TestToggleTwice(t *testing.T)

func TestStatusChangedUnknown(t *testing.T) {
	var (
		s    = loadedState(3)
		next = Reduce(s, StatusChanged{ID: "42", Status: model.Inactive})
	)

	for i := range s.Cameras {
		if s.Cameras[i].ID != next.Cameras[i].ID ||
			s.Cameras[i].Status != next.Cameras[i].Status {
			t.Errorf("Camera %d was modified: %v -> %v",
				i,
				s.Cameras[i],
				next.Cameras[i])
		}
	}
} // func TestStatusChangedUnknown(t *testing.T)

func TestReduceDoesNotAlias(t *testing.T) {
	var (
		s    = loadedState(3)
		next = Reduce(s, StatusChanged{ID: "1", Status: model.Inactive})
	)

	if s.Cameras[0].Status != model.Active {
		t.Error("Reduce modified the Cameras of its input")
	} else if next.Cameras[0].Status != model.Inactive {
		t.Error("Reduce did not change the status")
	}

	s = Reduce(s, RequestDelete{ID: "2"})
	next = Reduce(s, ConfirmDelete{})
	if len(s.Cameras) != 3 || s.Cameras[1].ID != "2" {
		t.Errorf("ConfirmDelete modified its input: %v", s.Cameras)
	} else if len(next.Cameras) != 2 {
		t.Errorf("ConfirmDelete did not remove anything: %v", next.Cameras)
	}
} // func TestReduceDoesNotAlias(t *testing.T)

func TestDeleteFlow(t *testing.T) {
	var s = loadedState(5)

	s = Reduce(s, RequestDelete{ID: "3"})
	if !s.DeleteOpen || s.DeleteTarget != "3" {
		t.Fatalf("Dialog did not open: %t / %q", s.DeleteOpen, s.DeleteTarget)
	} else if len(s.Cameras) != 5 {
		t.Fatalf("RequestDelete removed a camera")
	}

	var cancelled = Reduce(s, CancelDelete{})
	if cancelled.DeleteOpen || cancelled.DeleteTarget != "" {
		t.Error("CancelDelete did not close the dialog")
	} else if len(cancelled.Cameras) != 5 {
		t.Errorf("CancelDelete removed something: %d left", len(cancelled.Cameras))
	}

	s = Reduce(s, ConfirmDelete{})
	if s.DeleteOpen {
		t.Error("ConfirmDelete did not close the dialog")
	} else if len(s.Cameras) != 4 {
		t.Fatalf("Expected 4 cameras, got %d", len(s.Cameras))
	} else if s.IndexOf("3") != -1 {
		t.Error("Camera 3 is still there")
	}

	for _, id := range []model.CameraID{"1", "2", "4", "5"} {
		if s.IndexOf(id) == -1 {
			t.Errorf("Camera %s was removed as well", id)
		}
	}

	// Confirming without an open dialog does nothing.
	if s2 := Reduce(s, ConfirmDelete{}); len(s2.Cameras) != 4 {
		t.Errorf("ConfirmDelete without dialog removed a camera")
	}
} // func TestDeleteFlow(t *testing.T)

func TestRequestDeleteUnknown(t *testing.T) {
	var s = Reduce(loadedState(3), RequestDelete{ID: "nope"})

	if s.DeleteOpen {
		t.Error("Dialog opened for unknown camera")
	}
} // func TestRequestDeleteUnknown(t *testing.T)

func TestDeleteClampsPage(t *testing.T) {
	var s = loadedState(21)

	s = Reduce(s, Navigate{Nav: Last})
	if s.CurrentPage != 3 {
		t.Fatalf("Expected to be on page 3, am on %d", s.CurrentPage)
	}

	s = Reduce(s, RequestDelete{ID: "21"})
	s = Reduce(s, ConfirmDelete{})

	if s.CurrentPage != 2 {
		t.Errorf("Page was not clamped after delete: %d", s.CurrentPage)
	}
} // func TestDeleteClampsPage(t *testing.T)

func TestToggleClampsPage(t *testing.T) {
	var s = loadedState(22)

	// 11 Inactive cameras, 2 pages.
	s = Reduce(s, SetStatusFilter{Status: "Inactive"})
	s = Reduce(s, Navigate{Nav: Last})
	if s.CurrentPage != 2 {
		t.Fatalf("Expected page 2, am on %d", s.CurrentPage)
	}

	s = Reduce(s, StatusChanged{ID: "22", Status: model.Active})
	if s.CurrentPage != 1 {
		t.Errorf("Page was not clamped after toggle: %d", s.CurrentPage)
	}
} // func TestToggleClampsPage(t *testing.T)

func TestRestoreCamera(t *testing.T) {
	var (
		s   = loadedState(4)
		cam = s.Cameras[1]
	)

	s = Reduce(s, RequestDelete{ID: cam.ID})
	s = Reduce(s, ConfirmDelete{})
	s = Reduce(s, RestoreCamera{Index: 1, Camera: cam})

	if len(s.Cameras) != 4 {
		t.Fatalf("Expected 4 cameras, got %d", len(s.Cameras))
	} else if s.Cameras[1].ID != cam.ID {
		t.Errorf("Camera was restored at the wrong position: %v", s.Cameras)
	}

	// Restoring twice must not duplicate.
	if s = Reduce(s, RestoreCamera{Index: 0, Camera: cam}); len(s.Cameras) != 4 {
		t.Errorf("Camera was restored twice")
	}

	// Index past the end appends.
	var extra = model.Camera{ID: "99", Name: "Extra"}
	s = Reduce(s, RestoreCamera{Index: 50, Camera: extra})
	if s.Cameras[len(s.Cameras)-1].ID != "99" {
		t.Errorf("Camera was not appended")
	}
} // func TestRestoreCamera(t *testing.T)

func TestDerive(t *testing.T) {
	var (
		s = loadedState(25)
		v View
	)

	s = Reduce(s, GotoPage{Page: 3})
	v = Derive(s)

	if v.Page.Count != 3 {
		t.Errorf("Expected 3 pages, got %d", v.Page.Count)
	} else if len(v.Cameras) != 5 {
		t.Errorf("Expected 5 visible cameras, got %d", len(v.Cameras))
	} else if v.Cameras[0].ID != "21" {
		t.Errorf("First visible camera should be 21, is %s", v.Cameras[0].ID)
	} else if v.Page.Label() != "21-25 of 25" {
		t.Errorf("Unexpected label %q", v.Page.Label())
	} else if v.FirstDisabled() || !v.LastDisabled() {
		t.Errorf("Wrong navigation state: first=%t last=%t",
			v.FirstDisabled(), v.LastDisabled())
	} else if v.Active != 13 || v.Inactive != 12 {
		t.Errorf("Wrong counts: %d/%d", v.Active, v.Inactive)
	} else if len(v.Locations) != 2 || v.Locations[0] != "Lobby" {
		t.Errorf("Unexpected locations: %v", v.Locations)
	}
} // func TestDerive(t *testing.T)

func TestDeriveEmpty(t *testing.T) {
	var (
		s = Reduce(loadedState(5), SetSearch{Term: "no such camera"})
		v = Derive(s)
	)

	if !v.Empty() {
		t.Error("View should be empty")
	} else if v.Page.Range() != "0-0" {
		t.Errorf("Unexpected range %q", v.Page.Range())
	} else if v.Page.Count != 0 {
		t.Errorf("Expected 0 pages, got %d", v.Page.Count)
	} else if !v.LastDisabled() || !v.FirstDisabled() {
		t.Error("Navigation should be disabled")
	} else if v.Total != 5 {
		t.Errorf("Total should still be 5, is %d", v.Total)
	}
} // func TestDeriveEmpty(t *testing.T)

func TestDeriveDeleteTarget(t *testing.T) {
	var v = Derive(Reduce(loadedState(3), RequestDelete{ID: "2"}))

	if !v.DeleteOpen || v.DeleteTarget == nil {
		t.Fatal("Delete target missing from View")
	} else if v.DeleteTarget.Name != "Cam 02" {
		t.Errorf("Wrong delete target %q", v.DeleteTarget.Name)
	}
} // func TestDeriveDeleteTarget(t *testing.T)

func TestParseNav(t *testing.T) {
	for _, n := range []Nav{First, Prev, Next, Last} {
		if p, ok := ParseNav(n.String()); !ok || p != n {
			t.Errorf("ParseNav(%q) = %s, %t", n.String(), p, ok)
		}
	}

	if _, ok := ParseNav("sideways"); ok {
		t.Error("ParseNav accepted garbage")
	}
} // func TestParseNav(t *testing.T)
