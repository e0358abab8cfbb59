// /home/krylon/go/src/github.com/blicero/camdash/tui/model_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 11. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-14 22:31:19 krylon>

package tui

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/blicero/camdash/dashboard"
	"github.com/blicero/camdash/model"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	lock      sync.Mutex
	cams      []model.Camera
	updateErr error
}

func (f *fakeAPI) FetchCameras(ctx context.Context) ([]model.Camera, error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	return append([]model.Camera{}, f.cams...), nil
}

func (f *fakeAPI) UpdateStatus(ctx context.Context, cam model.Camera, status model.Status) error {
	f.lock.Lock()
	defer f.lock.Unlock()
	return f.updateErr
}

func (f *fakeAPI) DeleteCamera(ctx context.Context, cam model.Camera) error {
	return nil
}

func newTestModel(t *testing.T, n int) (Model, *fakeAPI) {
	t.Helper()

	var api = &fakeAPI{cams: make([]model.Camera, n)}

	for i := range api.cams {
		api.cams[i] = model.Camera{
			ID:       model.CameraID(fmt.Sprintf("%d", i+1)),
			Name:     fmt.Sprintf("Cam %02d", i+1),
			Location: []string{"Lobby", "Garage"}[i%2],
			Status:   []model.Status{model.Active, model.Inactive}[i%2],
		}
	}

	ctl, err := dashboard.New(api, dashboard.Options{})
	require.NoError(t, err)

	m, err := New(ctl)
	require.NoError(t, err)

	m = send(t, m, m.loadCmd()())
	return m, api
} // func newTestModel(t *testing.T, n int) (Model, *fakeAPI)

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()

	res, _ := m.Update(msg)
	next, ok := res.(Model)
	require.True(t, ok, "Update returned a %T", res)
	return next
} // func send(t *testing.T, m Model, msg tea.Msg) Model

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
} // func key(s string) tea.KeyMsg

func TestLoad(t *testing.T) {
	var m, _ = newTestModel(t, 25)

	assert.Len(t, m.ids, 10)
	assert.Equal(t, "Loaded 25 cameras", m.info)
	assert.Contains(t, m.View(), "1-10 of 25")
} // func TestLoad(t *testing.T)

func TestCursorAfterLoad(t *testing.T) {
	var m, _ = newTestModel(t, 3)

	id, ok := m.selected()
	require.True(t, ok, "No camera is selected after the initial load")
	assert.Equal(t, model.CameraID("1"), id)

	// Filtering everything away and back again must leave a usable cursor.
	m = send(t, m, key("/"))
	m = send(t, m, key("x"))
	_, ok = m.selected()
	assert.False(t, ok)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	id, ok = m.selected()
	require.True(t, ok)
	assert.Equal(t, model.CameraID("1"), id)
} // func TestCursorAfterLoad(t *testing.T)

func TestNavigation(t *testing.T) {
	var m, _ = newTestModel(t, 25)

	m = send(t, m, key("G"))
	assert.Len(t, m.ids, 5)
	assert.Contains(t, m.View(), "21-25 of 25")

	m = send(t, m, key("p"))
	assert.Equal(t, model.CameraID("11"), m.ids[0])

	m = send(t, m, key("g"))
	assert.Equal(t, model.CameraID("1"), m.ids[0])

	m = send(t, m, key("+"))
	assert.Len(t, m.ids, 20)
} // func TestNavigation(t *testing.T)

func TestFilterKeys(t *testing.T) {
	var m, _ = newTestModel(t, 6)

	m = send(t, m, key("s"))
	assert.Equal(t, string(model.Active), m.ctl.View().Status)
	assert.Len(t, m.ids, 3)

	m = send(t, m, key("s"))
	m = send(t, m, key("s"))
	assert.Equal(t, model.All, m.ctl.View().Status)

	// Locations come in the order they were first seen.
	m = send(t, m, key("l"))
	assert.Equal(t, "Lobby", m.ctl.View().Location)
	m = send(t, m, key("l"))
	assert.Equal(t, "Garage", m.ctl.View().Location)
	m = send(t, m, key("l"))
	assert.Equal(t, model.All, m.ctl.View().Location)
} // func TestFilterKeys(t *testing.T)

func TestSearch(t *testing.T) {
	var m, _ = newTestModel(t, 25)

	m = send(t, m, key("/"))
	require.True(t, m.searching)

	m = send(t, m, key("2"))
	m = send(t, m, key("1"))
	assert.Equal(t, "21", m.ctl.View().Search)
	assert.Equal(t, []model.CameraID{"21"}, m.ids)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.searching)

	m = send(t, m, key("/"))
	m = send(t, m, key("x"))
	assert.Empty(t, m.ids)
	assert.Contains(t, m.View(), "No cameras found matching the current criteria.")
} // func TestSearch(t *testing.T)

func TestToggle(t *testing.T) {
	var m, api = newTestModel(t, 3)

	_, cmd := m.Update(key("t"))
	require.NotNil(t, cmd)
	m = send(t, m, cmd())

	cam, _ := m.ctl.Camera("1")
	assert.Equal(t, model.Inactive, cam.Status)
	assert.Empty(t, m.err)

	api.updateErr = errors.New("nope")
	_, cmd = m.Update(key("t"))
	m = send(t, m, cmd())

	cam, _ = m.ctl.Camera("1")
	assert.Equal(t, model.Inactive, cam.Status)
	assert.Contains(t, m.err, "nope")
} // func TestToggle(t *testing.T)

func TestDelete(t *testing.T) {
	var m, _ = newTestModel(t, 3)

	m = send(t, m, key("d"))
	require.True(t, m.ctl.View().DeleteOpen)
	assert.Contains(t, m.View(), "Delete Camera")

	m = send(t, m, key("n"))
	assert.False(t, m.ctl.View().DeleteOpen)
	assert.Equal(t, 3, m.ctl.View().Total)

	m = send(t, m, key("d"))
	_, cmd := m.Update(key("y"))
	require.NotNil(t, cmd)
	m = send(t, m, cmd())

	assert.Equal(t, 2, m.ctl.View().Total)
	assert.Equal(t, []model.CameraID{"2", "3"}, m.ids)
} // func TestDelete(t *testing.T)

func TestQuit(t *testing.T) {
	var m, _ = newTestModel(t, 1)

	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
} // func TestQuit(t *testing.T)
