// /home/krylon/go/src/github.com/blicero/camdash/database/02_action_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 06. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-12 23:21:40 krylon>

package database

import (
	"fmt"
	"testing"
	"time"

	"github.com/blicero/camdash/model"
	"github.com/blicero/camdash/model/action"
)

const (
	actCnt  = 12
	oldCnt  = 3
	session = "7f3c2b1a"
)

func TestActionAdd(t *testing.T) {
	if tdb == nil {
		t.SkipNow()
	}

	var (
		err    error
		status = false
		now    = time.Now()
	)

	tdb.Begin() // nolint: errcheck
	defer func() {
		if status {
			tdb.Commit() // nolint: errcheck
		} else {
			t.Log("Rolling back database transaction.")
			tdb.Rollback() // nolint: errcheck
		}
	}()

	for n := 0; n < actCnt; n++ {
		var a = &model.Action{
			Session:   session,
			Kind:      action.Toggle,
			CameraID:  model.CameraID(fmt.Sprintf("%d", n%4)),
			Detail:    "Active -> Inactive",
			OK:        n%3 != 0,
			Timestamp: now.Add(time.Duration(n-actCnt) * time.Second),
		}

		if err = tdb.ActionAdd(a); err != nil {
			t.Fatalf("Cannot add Action #%d: %s",
				n,
				err.Error())
		} else if a.ID == 0 {
			t.Fatalf("Action #%d did not get an ID", n)
		}
	}

	for n := 0; n < oldCnt; n++ {
		var a = &model.Action{
			Session:   "old",
			Kind:      action.Load,
			Timestamp: now.Add(-time.Hour * 24 * 90),
			OK:        true,
		}

		if err = tdb.ActionAdd(a); err != nil {
			t.Fatalf("Cannot add old Action #%d: %s",
				n,
				err.Error())
		}
	}

	status = true
} // func TestActionAdd(t *testing.T)

func TestActionGetRecent(t *testing.T) {
	if tdb == nil {
		t.SkipNow()
	}

	var (
		err  error
		acts []*model.Action
	)

	if acts, err = tdb.ActionGetRecent(5); err != nil {
		t.Fatalf("Cannot load recent Actions: %s", err.Error())
	} else if len(acts) != 5 {
		t.Fatalf("Expected 5 Actions, got %d", len(acts))
	}

	for i := 1; i < len(acts); i++ {
		if acts[i].Timestamp.After(acts[i-1].Timestamp) {
			t.Errorf("Actions are not sorted newest first: %s after %s",
				acts[i].Timestamp.Format(time.RFC3339),
				acts[i-1].Timestamp.Format(time.RFC3339))
		}
	}

	if acts[0].Kind != action.Toggle || acts[0].Session != session {
		t.Errorf("Unexpected newest Action: %#v", acts[0])
	}

	if _, err = tdb.ActionGetRecent(0); err == nil {
		t.Error("ActionGetRecent should reject a limit of 0")
	}
} // func TestActionGetRecent(t *testing.T)

func TestActionGetByCamera(t *testing.T) {
	if tdb == nil {
		t.SkipNow()
	}

	var (
		err  error
		acts []*model.Action
	)

	if acts, err = tdb.ActionGetByCamera("1", 100); err != nil {
		t.Fatalf("Cannot load Actions for camera 1: %s", err.Error())
	} else if len(acts) != actCnt/4 {
		t.Fatalf("Expected %d Actions for camera 1, got %d",
			actCnt/4,
			len(acts))
	}

	for _, a := range acts {
		if a.CameraID != "1" {
			t.Errorf("Action %d belongs to camera %q", a.ID, a.CameraID)
		}
	}
} // func TestActionGetByCamera(t *testing.T)

func TestActionGetBySession(t *testing.T) {
	if tdb == nil {
		t.SkipNow()
	}

	var (
		err  error
		acts []*model.Action
	)

	if acts, err = tdb.ActionGetBySession(session, 100); err != nil {
		t.Fatalf("Cannot load Actions for session %s: %s",
			session,
			err.Error())
	} else if len(acts) != actCnt {
		t.Fatalf("Expected %d Actions, got %d", actCnt, len(acts))
	}

	var failed int
	for _, a := range acts {
		if !a.OK {
			failed++
		}
	}

	if failed != actCnt/3 {
		t.Errorf("Expected %d failed Actions, got %d", actCnt/3, failed)
	}
} // func TestActionGetBySession(t *testing.T)

func TestActionPurge(t *testing.T) {
	if tdb == nil {
		t.SkipNow()
	}

	var (
		err      error
		cnt, all int64
	)

	if cnt, err = tdb.ActionPurge(time.Now().Add(-time.Hour * 24 * 30)); err != nil {
		t.Fatalf("Cannot purge old Actions: %s", err.Error())
	} else if cnt != oldCnt {
		t.Errorf("Expected to purge %d Actions, purged %d", oldCnt, cnt)
	} else if all, err = tdb.ActionCount(); err != nil {
		t.Fatalf("Cannot count Actions: %s", err.Error())
	} else if all != actCnt {
		t.Errorf("Expected %d Actions to remain, found %d", actCnt, all)
	}
} // func TestActionPurge(t *testing.T)

func TestActionRollback(t *testing.T) {
	if tdb == nil {
		t.SkipNow()
	}

	var (
		err error
		cnt int64
	)

	if err = tdb.Begin(); err != nil {
		t.Fatalf("Cannot begin transaction: %s", err.Error())
	} else if err = tdb.Begin(); err != ErrTxInProgress {
		t.Errorf("Nested Begin should fail with ErrTxInProgress, got %v", err)
	}

	if err = tdb.ActionAdd(&model.Action{Kind: action.Delete, Timestamp: time.Now()}); err != nil {
		t.Fatalf("Cannot add Action: %s", err.Error())
	} else if err = tdb.Rollback(); err != nil {
		t.Fatalf("Cannot roll back: %s", err.Error())
	} else if cnt, err = tdb.ActionCount(); err != nil {
		t.Fatalf("Cannot count Actions: %s", err.Error())
	} else if cnt != actCnt {
		t.Errorf("Rollback did not undo the insert: %d Actions", cnt)
	} else if err = tdb.Commit(); err != ErrNoTxInProgress {
		t.Errorf("Commit without transaction should fail, got %v", err)
	}
} // func TestActionRollback(t *testing.T)

func TestMaintenance(t *testing.T) {
	if tdb == nil {
		t.SkipNow()
	}

	if err := tdb.PerformMaintenance(); err != nil {
		t.Errorf("Maintenance failed: %s", err.Error())
	} else if err = tdb.Close(); err != nil {
		t.Errorf("Cannot close database: %s", err.Error())
	}

	tdb = nil
} // func TestMaintenance(t *testing.T)
