// /home/krylon/go/src/github.com/blicero/camdash/dashboard/controller_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 05. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-12 22:31:05 krylon>

package dashboard

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/blicero/camdash/model"
	"github.com/blicero/camdash/model/action"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errAPI = errors.New("API says no")

type fakeAPI struct {
	lock      sync.Mutex
	cams      []model.Camera
	fetchErr  error
	updateErr error
	deleteErr error
	updates   []model.Status
	deletes   []model.CameraID
	sent      []model.Camera
	// If set, FetchCameras blocks until it is closed.
	gate chan struct{}
}

func (f *fakeAPI) FetchCameras(ctx context.Context) ([]model.Camera, error) {
	if f.gate != nil {
		<-f.gate
	}

	f.lock.Lock()
	defer f.lock.Unlock()

	if f.fetchErr != nil {
		return nil, f.fetchErr
	}

	return append([]model.Camera{}, f.cams...), nil
}

func (f *fakeAPI) UpdateStatus(ctx context.Context, cam model.Camera, status model.Status) error {
	f.lock.Lock()
	defer f.lock.Unlock()

	if f.updateErr != nil {
		return f.updateErr
	}

	f.updates = append(f.updates, status)
	f.sent = append(f.sent, cam)
	return nil
}

func (f *fakeAPI) DeleteCamera(ctx context.Context, cam model.Camera) error {
	f.lock.Lock()
	defer f.lock.Unlock()

	if f.deleteErr != nil {
		return f.deleteErr
	}

	f.deletes = append(f.deletes, cam.ID)
	f.sent = append(f.sent, cam)
	return nil
}

type memJournal struct {
	lock    sync.Mutex
	actions []model.Action
}

func (j *memJournal) AddAction(a *model.Action) error {
	j.lock.Lock()
	defer j.lock.Unlock()
	j.actions = append(j.actions, *a)
	return nil
}

func (j *memJournal) kinds() []action.Kind {
	j.lock.Lock()
	defer j.lock.Unlock()

	var k = make([]action.Kind, len(j.actions))
	for i, a := range j.actions {
		k[i] = a.Kind
	}
	return k
}

func newTestController(t *testing.T, api *fakeAPI, opt Options) *Controller {
	t.Helper()

	c, err := New(api, opt)
	require.NoError(t, err)
	require.NoError(t, c.Load(context.Background()))
	return c
}

func TestControllerLoad(t *testing.T) {
	var (
		j   = &memJournal{}
		api = &fakeAPI{cams: []model.Camera{
			{ID: "1", Name: "Lobby", Status: "ACTIVE"},
			{ID: "2", Name: "Dock", Status: "offline"},
		}}
		c = newTestController(t, api, Options{Journal: j, Session: "s1"})
		v = c.View()
	)

	assert.True(t, v.Loaded)
	assert.False(t, v.Loading)
	require.Len(t, v.Cameras, 2)
	assert.Equal(t, model.Active, v.Cameras[0].Status)
	assert.Equal(t, model.Inactive, v.Cameras[1].Status)
	assert.Equal(t, []action.Kind{action.Load}, j.kinds())
	assert.Equal(t, "s1", j.actions[0].Session)
	assert.True(t, j.actions[0].OK)
}

func TestControllerLoadFailure(t *testing.T) {
	var (
		alerts []string
		j      = &memJournal{}
		api    = &fakeAPI{cams: makeCams(3)}
		c      = newTestController(t, api, Options{
			Journal: j,
			Alert:   func(msg string) { alerts = append(alerts, msg) },
		})
	)

	api.fetchErr = errAPI

	err := c.Load(context.Background())
	assert.ErrorIs(t, err, errAPI)

	var v = c.View()
	assert.Equal(t, 3, v.Total, "records must survive a failed load")
	assert.False(t, v.Loading)
	assert.NotEmpty(t, v.LoadErr)
	assert.Len(t, alerts, 1)
	assert.Equal(t, []action.Kind{action.Load, action.Load}, j.kinds())
	assert.False(t, j.actions[1].OK)
}

func TestControllerToggle(t *testing.T) {
	var (
		api = &fakeAPI{cams: makeCams(3)}
		c   = newTestController(t, api, Options{})
		ctx = context.Background()
	)

	require.NoError(t, c.Toggle(ctx, "1"))
	cam, ok := c.Camera("1")
	require.True(t, ok)
	assert.Equal(t, model.Inactive, cam.Status)

	require.NoError(t, c.Toggle(ctx, "1"))
	cam, _ = c.Camera("1")
	assert.Equal(t, model.Active, cam.Status, "toggling twice restores the status")
	assert.Equal(t, []model.Status{model.Inactive, model.Active}, api.updates)
}

func TestControllerKeepsWireID(t *testing.T) {
	var (
		api = &fakeAPI{cams: []model.Camera{
			{ID: "42", Name: "Numeric", Status: model.Active, NumericID: true},
			{ID: "43", Name: "Stringly", Status: model.Active},
		}}
		c   = newTestController(t, api, Options{RemoteDelete: true})
		ctx = context.Background()
	)

	require.NoError(t, c.Toggle(ctx, "42"))
	require.NoError(t, c.Toggle(ctx, "43"))
	require.NoError(t, c.RequestDelete("42"))
	require.NoError(t, c.ConfirmDelete(ctx))

	require.Len(t, api.sent, 3)
	assert.Equal(t, "42", string(api.sent[0].WireID()))
	assert.Equal(t, `"43"`, string(api.sent[1].WireID()))
	assert.Equal(t, "42", string(api.sent[2].WireID()))
}

func TestControllerToggleFailure(t *testing.T) {
	var (
		alerts []string
		api    = &fakeAPI{cams: makeCams(3)}
		c      = newTestController(t, api, Options{
			Alert: func(msg string) { alerts = append(alerts, msg) },
		})
	)

	api.updateErr = errAPI

	err := c.Toggle(context.Background(), "1")
	assert.ErrorIs(t, err, errAPI)

	cam, _ := c.Camera("1")
	assert.Equal(t, model.Active, cam.Status, "record must not change on failure")
	assert.Len(t, alerts, 1)
}

func TestControllerToggleUnknown(t *testing.T) {
	var (
		api    = &fakeAPI{cams: makeCams(3)}
		c      = newTestController(t, api, Options{})
		before = c.State()
	)

	err := c.Toggle(context.Background(), "42")
	assert.ErrorIs(t, err, ErrNoSuchCamera)
	assert.Empty(t, api.updates, "no request for unknown cameras")

	var after = c.State()
	require.Len(t, after.Cameras, len(before.Cameras))
	for i := range before.Cameras {
		assert.Equal(t, before.Cameras[i].Status, after.Cameras[i].Status)
	}
}

func TestControllerDeleteLocal(t *testing.T) {
	var (
		j   = &memJournal{}
		api = &fakeAPI{cams: makeCams(5)}
		c   = newTestController(t, api, Options{Journal: j})
		ctx = context.Background()
	)

	require.NoError(t, c.RequestDelete("2"))
	assert.Equal(t, 5, c.View().Total, "request alone removes nothing")
	assert.True(t, c.View().DeleteOpen)

	c.CancelDelete()
	assert.False(t, c.View().DeleteOpen)
	assert.Equal(t, 5, c.View().Total)

	require.NoError(t, c.RequestDelete("2"))
	require.NoError(t, c.ConfirmDelete(ctx))

	var v = c.View()
	assert.False(t, v.DeleteOpen)
	assert.Equal(t, 4, v.Total)
	_, ok := c.Camera("2")
	assert.False(t, ok)
	assert.Empty(t, api.deletes, "remote delete is off")
	assert.Equal(t, []action.Kind{action.Load, action.Delete}, j.kinds())

	assert.ErrorIs(t, c.ConfirmDelete(ctx), ErrNoDeletePending)
	assert.ErrorIs(t, c.RequestDelete("2"), ErrNoSuchCamera)
}

func TestControllerDeleteRemote(t *testing.T) {
	var (
		api = &fakeAPI{cams: makeCams(5)}
		c   = newTestController(t, api, Options{RemoteDelete: true})
	)

	require.NoError(t, c.RequestDelete("4"))
	require.NoError(t, c.ConfirmDelete(context.Background()))
	assert.Equal(t, []model.CameraID{"4"}, api.deletes)
	assert.Equal(t, 4, c.View().Total)
}

func TestControllerDeleteRollback(t *testing.T) {
	var (
		alerts []string
		j      = &memJournal{}
		api    = &fakeAPI{cams: makeCams(5), deleteErr: errAPI}
		c      = newTestController(t, api, Options{
			RemoteDelete: true,
			Journal:      j,
			Alert:        func(msg string) { alerts = append(alerts, msg) },
		})
	)

	require.NoError(t, c.RequestDelete("3"))
	err := c.ConfirmDelete(context.Background())
	assert.ErrorIs(t, err, errAPI)

	var s = c.State()
	require.Len(t, s.Cameras, 5)
	assert.Equal(t, model.CameraID("3"), s.Cameras[2].ID, "restored at its former position")
	assert.False(t, s.DeleteOpen)
	assert.Len(t, alerts, 1)
	assert.Equal(t, []action.Kind{action.Load, action.Delete, action.Restore}, j.kinds())
}

func TestControllerFilters(t *testing.T) {
	var c = newTestController(t, &fakeAPI{cams: makeCams(25)}, Options{})

	c.Navigate(Last)
	assert.Equal(t, 3, c.View().Page.Current)

	c.SetSearch("cam 1")
	assert.Equal(t, 1, c.View().Page.Current)

	c.GotoPage(2)
	assert.True(t, c.SetStatusFilter("Active"))
	assert.Equal(t, 1, c.View().Page.Current)

	assert.False(t, c.SetStatusFilter("broken"))
	assert.Equal(t, "Active", c.View().Status)

	c.SetLocationFilter("Lobby")
	assert.Equal(t, "Lobby", c.View().Location)

	assert.False(t, c.SetPerPage(15))
	assert.True(t, c.SetPerPage(20))
	assert.Equal(t, 20, c.View().Page.PerPage)

	// "Cam 11" through "Cam 19", odd numbers only.
	for _, cam := range c.View().Cameras {
		assert.Contains(t, cam.Name, "Cam 1")
		assert.Equal(t, model.Active, cam.Status)
		assert.Equal(t, "Lobby", cam.Location)
	}
}

func TestControllerClosed(t *testing.T) {
	var (
		api = &fakeAPI{cams: makeCams(3), gate: make(chan struct{})}
		c   *Controller
		err error
	)

	c, err = New(api, Options{})
	require.NoError(t, err)

	var done = make(chan error)
	go func() { done <- c.Load(context.Background()) }()

	c.Close()
	close(api.gate)

	assert.ErrorIs(t, <-done, ErrClosed)
	assert.Equal(t, 0, c.View().Total, "results after Close are ignored")
	assert.ErrorIs(t, c.Toggle(context.Background(), "1"), ErrClosed)
}

// seqAPI hands out one result per call to FetchCameras, in an order the
// test controls.
type seqAPI struct {
	fakeAPI
	lock    sync.Mutex
	calls   int
	gates   []chan []model.Camera
	entered chan int
}

func (s *seqAPI) FetchCameras(ctx context.Context) ([]model.Camera, error) {
	s.lock.Lock()
	var idx = s.calls
	s.calls++
	s.lock.Unlock()

	s.entered <- idx
	return <-s.gates[idx], nil
}

func TestControllerSupersededLoad(t *testing.T) {
	var (
		api = &seqAPI{
			gates:   []chan []model.Camera{make(chan []model.Camera), make(chan []model.Camera)},
			entered: make(chan int),
		}
		first  = make(chan error)
		second = make(chan error)
		c      *Controller
		err    error
	)

	c, err = New(api, Options{})
	require.NoError(t, err)

	go func() { first <- c.Load(context.Background()) }()
	require.Equal(t, 0, <-api.entered)

	go func() { second <- c.Load(context.Background()) }()
	require.Equal(t, 1, <-api.entered)

	api.gates[1] <- makeCams(7)
	require.NoError(t, <-second)
	assert.Equal(t, 7, c.View().Total)

	api.gates[0] <- makeCams(3)
	require.NoError(t, <-first)
	assert.Equal(t, 7, c.View().Total, "stale load must not overwrite newer data")
	assert.False(t, c.View().Loading)
}
