// /home/krylon/go/src/github.com/blicero/camdash/dashboard/controller.go
// -*- mode: go; coding: utf-8; -*-
// Created on 04. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-12 21:44:09 krylon>

package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/blicero/camdash/common"
	"github.com/blicero/camdash/logdomain"
	"github.com/blicero/camdash/metrics"
	"github.com/blicero/camdash/model"
	"github.com/blicero/camdash/model/action"
)

// ErrNoSuchCamera is returned for operations on a Camera we do not know.
var ErrNoSuchCamera = errors.New("no such camera")

// ErrNoDeletePending is returned by ConfirmDelete if the dialog is not open.
var ErrNoDeletePending = errors.New("no delete pending")

// ErrClosed is returned when a Controller is used after Close.
var ErrClosed = errors.New("dashboard is closed")

// API is the part of the camera API the Controller needs.
type API interface {
	FetchCameras(ctx context.Context) ([]model.Camera, error)
	UpdateStatus(ctx context.Context, cam model.Camera, status model.Status) error
	DeleteCamera(ctx context.Context, cam model.Camera) error
}

// Recorder stores Actions in the activity journal.
type Recorder interface {
	AddAction(a *model.Action) error
}

// Options configure a Controller. Only the API is mandatory.
type Options struct {
	Session      string
	PerPage      int
	RemoteDelete bool
	Journal      Recorder
	Metrics      *metrics.Registry
	// Alert, if set, is called with messages meant for the user.
	Alert func(msg string)
}

// Controller owns the State of one dashboard. It is safe for concurrent use.
// State changes happen under a lock, calls to the API do not.
type Controller struct {
	log     *log.Logger
	api     API
	opt     Options
	lock    sync.Mutex
	state   State
	gen     atomic.Uint64
	closed  atomic.Bool
	touched atomic.Int64
}

// New creates a Controller.
func New(api API, opt Options) (*Controller, error) {
	var (
		err error
		c   = &Controller{
			api:   api,
			opt:   opt,
			state: NewState(opt.PerPage),
		}
	)

	if c.log, err = common.GetLogger(logdomain.Dashboard); err != nil {
		return nil, err
	}

	c.touch()

	return c, nil
} // func New(api API, opt Options) (*Controller, error)

func (c *Controller) touch() {
	c.touched.Store(time.Now().Unix())
} // func (c *Controller) touch()

// LastActive returns the time the Controller was last used.
func (c *Controller) LastActive() time.Time {
	return time.Unix(c.touched.Load(), 0)
} // func (c *Controller) LastActive() time.Time

// Close makes the Controller ignore any results that arrive afterwards.
func (c *Controller) Close() {
	c.closed.Store(true)
} // func (c *Controller) Close()

// Closed returns true if Close has been called.
func (c *Controller) Closed() bool {
	return c.closed.Load()
} // func (c *Controller) Closed() bool

// Dispatch applies an Intent to the State. It returns false if the
// Controller has been closed.
func (c *Controller) Dispatch(in Intent) bool {
	if c.closed.Load() {
		c.log.Printf("[DEBUG] Controller is closed, dropping %T\n", in)
		return false
	}

	c.touch()

	c.lock.Lock()
	c.state = Reduce(c.state, in)
	c.lock.Unlock()
	return true
} // func (c *Controller) Dispatch(in Intent) bool

// State returns a copy of the current State.
func (c *Controller) State() State {
	c.lock.Lock()
	defer c.lock.Unlock()

	var s = c.state
	s.Cameras = append([]model.Camera{}, c.state.Cameras...)
	return s
} // func (c *Controller) State() State

// View returns the current View.
func (c *Controller) View() View {
	c.lock.Lock()
	defer c.lock.Unlock()
	return Derive(c.state)
} // func (c *Controller) View() View

// Camera looks up a Camera by its ID.
func (c *Controller) Camera(id model.CameraID) (model.Camera, bool) {
	c.lock.Lock()
	defer c.lock.Unlock()

	if idx := c.state.IndexOf(id); idx != -1 {
		return c.state.Cameras[idx], true
	}

	return model.Camera{}, false
} // func (c *Controller) Camera(id model.CameraID) (model.Camera, bool)

// Load fetches the list of Cameras and replaces the current one with it.
// On failure the current list is kept. If another Load is started before
// this one finishes, its result is discarded.
func (c *Controller) Load(ctx context.Context) error {
	var (
		err  error
		cams []model.Camera
		gen  = c.gen.Add(1)
	)

	if !c.Dispatch(LoadStarted{Gen: gen}) {
		return ErrClosed
	}

	c.log.Printf("[TRACE] Load #%d started\n", gen)

	cams, err = c.api.FetchCameras(ctx)

	if c.closed.Load() {
		c.log.Printf("[DEBUG] Load #%d finished after Close, discarding result\n",
			gen)
		return ErrClosed
	} else if err != nil {
		c.log.Printf("[ERROR] Load #%d failed: %s\n",
			gen,
			err.Error())
		c.Dispatch(LoadFailed{Gen: gen, Err: err.Error()})
		c.record(action.Load, "", err.Error(), false)
		if gen != c.gen.Load() {
			return err
		}
		c.alert(fmt.Sprintf("Failed to load cameras: %s", err.Error()))
		return err
	}

	cams = model.NormalizeAll(cams)
	c.Dispatch(Loaded{Gen: gen, Cameras: cams})

	if gen != c.gen.Load() {
		c.log.Printf("[DEBUG] Load #%d was superseded by #%d\n",
			gen,
			c.gen.Load())
		return nil
	}

	var active, inactive = model.CountByStatus(cams)
	c.opt.Metrics.SetCameras(active, inactive)
	c.record(action.Load, "", fmt.Sprintf("%d cameras", len(cams)), true)
	c.log.Printf("[DEBUG] Load #%d done: %d cameras (%d active, %d inactive)\n",
		gen,
		len(cams),
		active,
		inactive)

	return nil
} // func (c *Controller) Load(ctx context.Context) error

// Toggle switches the status of a Camera between Active and Inactive. The
// record is only changed after the API has accepted the new status.
func (c *Controller) Toggle(ctx context.Context, id model.CameraID) error {
	var (
		err  error
		cam  model.Camera
		ok   bool
		next model.Status
	)

	if c.closed.Load() {
		return ErrClosed
	} else if cam, ok = c.Camera(id); !ok {
		c.log.Printf("[CANTHAPPEN] Toggle: no camera with ID %q\n", id)
		return fmt.Errorf("Cannot toggle camera %q: %w", id, ErrNoSuchCamera)
	}

	next = cam.Status.Opposite()
	c.touch()

	if err = c.api.UpdateStatus(ctx, cam, next); err != nil {
		if c.closed.Load() {
			return ErrClosed
		}
		c.log.Printf("[ERROR] Cannot set status of camera %s (%s) to %s: %s\n",
			id,
			cam.Name,
			next,
			err.Error())
		c.record(action.Toggle, id, fmt.Sprintf("%s -> %s: %s", cam.Status, next, err.Error()), false)
		c.alert(fmt.Sprintf("Failed to update status of %s: %s", cam.Name, err.Error()))
		return err
	}

	if !c.Dispatch(StatusChanged{ID: id, Status: next}) {
		return ErrClosed
	}

	c.record(action.Toggle, id, fmt.Sprintf("%s -> %s", cam.Status, next), true)
	c.updateMetrics()

	return nil
} // func (c *Controller) Toggle(ctx context.Context, id model.CameraID) error

// RequestDelete opens the confirmation dialog for the given Camera.
func (c *Controller) RequestDelete(id model.CameraID) error {
	if _, ok := c.Camera(id); !ok {
		c.log.Printf("[CANTHAPPEN] RequestDelete: no camera with ID %q\n", id)
		return fmt.Errorf("Cannot delete camera %q: %w", id, ErrNoSuchCamera)
	} else if !c.Dispatch(RequestDelete{ID: id}) {
		return ErrClosed
	}

	return nil
} // func (c *Controller) RequestDelete(id model.CameraID) error

// CancelDelete closes the confirmation dialog without deleting anything.
func (c *Controller) CancelDelete() {
	c.Dispatch(CancelDelete{})
} // func (c *Controller) CancelDelete()

// ConfirmDelete removes the Camera the dialog was opened for. If remote
// deletion is enabled, the API is asked to delete the Camera as well, and if
// that fails, the Camera is put back where it was.
func (c *Controller) ConfirmDelete(ctx context.Context) error {
	var (
		err error
		cam model.Camera
		idx int
	)

	if c.closed.Load() {
		return ErrClosed
	}

	c.touch()

	c.lock.Lock()
	if !c.state.DeleteOpen {
		c.lock.Unlock()
		return ErrNoDeletePending
	} else if idx = c.state.IndexOf(c.state.DeleteTarget); idx == -1 {
		// The Camera vanished, e.g. due to a reload.
		c.state = Reduce(c.state, CancelDelete{})
		c.lock.Unlock()
		return ErrNoSuchCamera
	}
	cam = c.state.Cameras[idx]
	c.state = Reduce(c.state, ConfirmDelete{})
	c.lock.Unlock()

	c.log.Printf("[INFO] Deleted camera %s (%s)\n",
		cam.ID,
		cam.Name)

	if !c.opt.RemoteDelete {
		c.record(action.Delete, cam.ID, cam.Name, true)
		c.updateMetrics()
		return nil
	}

	if err = c.api.DeleteCamera(ctx, cam); err != nil {
		if c.closed.Load() {
			return ErrClosed
		}
		c.log.Printf("[ERROR] API refused to delete camera %s (%s), restoring it: %s\n",
			cam.ID,
			cam.Name,
			err.Error())
		c.Dispatch(RestoreCamera{Index: idx, Camera: cam})
		c.record(action.Delete, cam.ID, err.Error(), false)
		c.record(action.Restore, cam.ID, cam.Name, true)
		c.alert(fmt.Sprintf("Failed to delete %s: %s", cam.Name, err.Error()))
		return err
	}

	c.record(action.Delete, cam.ID, cam.Name, true)
	c.updateMetrics()
	return nil
} // func (c *Controller) ConfirmDelete(ctx context.Context) error

// SetSearch sets the search term and goes back to the first page.
func (c *Controller) SetSearch(term string) {
	c.Dispatch(SetSearch{Term: term})
} // func (c *Controller) SetSearch(term string)

// SetStatusFilter sets the status filter and goes back to the first page.
// It returns false if the value was not valid.
func (c *Controller) SetStatusFilter(status string) bool {
	if _, ok := normalizeStatusFilter(status); !ok {
		c.log.Printf("[ERROR] Invalid status filter %q\n", status)
		return false
	}

	return c.Dispatch(SetStatusFilter{Status: status})
} // func (c *Controller) SetStatusFilter(status string) bool

// SetLocationFilter sets the location filter and goes back to the first page.
func (c *Controller) SetLocationFilter(loc string) {
	c.Dispatch(SetLocationFilter{Location: loc})
} // func (c *Controller) SetLocationFilter(loc string)

// SetPerPage sets the number of rows per page and goes back to the first
// page. It returns false if n is not one of model.PageSizes.
func (c *Controller) SetPerPage(n int) bool {
	if !model.ValidPageSize(n) {
		c.log.Printf("[ERROR] Invalid page size %d\n", n)
		return false
	}

	return c.Dispatch(SetPerPage{N: n})
} // func (c *Controller) SetPerPage(n int) bool

// GotoPage goes to the given page, clamped to the range of pages.
func (c *Controller) GotoPage(n int) {
	c.Dispatch(GotoPage{Page: n})
} // func (c *Controller) GotoPage(n int)

// Navigate goes to the first, previous, next, or last page.
func (c *Controller) Navigate(n Nav) {
	c.Dispatch(Navigate{Nav: n})
} // func (c *Controller) Navigate(n Nav)

func (c *Controller) updateMetrics() {
	if c.opt.Metrics == nil {
		return
	}

	c.lock.Lock()
	var active, inactive = model.CountByStatus(c.state.Cameras)
	c.lock.Unlock()

	c.opt.Metrics.SetCameras(active, inactive)
} // func (c *Controller) updateMetrics()

func (c *Controller) alert(msg string) {
	if c.opt.Alert != nil {
		c.opt.Alert(msg)
	}
} // func (c *Controller) alert(msg string)

func (c *Controller) record(k action.Kind, id model.CameraID, detail string, ok bool) {
	if c.opt.Journal == nil {
		return
	}

	var (
		err error
		a   = &model.Action{
			Session:   c.opt.Session,
			Kind:      k,
			CameraID:  id,
			Detail:    detail,
			OK:        ok,
			Timestamp: time.Now(),
		}
	)

	if err = c.opt.Journal.AddAction(a); err != nil {
		c.log.Printf("[ERROR] Cannot record %s of camera %q in journal: %s\n",
			k,
			id,
			err.Error())
	}
} // func (c *Controller) record(k action.Kind, id model.CameraID, detail string, ok bool)
