// /home/krylon/go/src/github.com/blicero/camdash/database/journal.go
// -*- mode: go; coding: utf-8; -*-
// Created on 06. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-12 23:15:02 krylon>

package database

import (
	"time"

	"github.com/blicero/camdash/model"
)

// Journal is the activity journal. It is safe for concurrent use.
type Journal struct {
	pool *Pool
}

// OpenJournal opens the journal stored at path.
func OpenJournal(path string, poolSize int) (*Journal, error) {
	var (
		err error
		j   = new(Journal)
	)

	if j.pool, err = NewPool(path, poolSize); err != nil {
		return nil, err
	}

	return j, nil
} // func OpenJournal(path string, poolSize int) (*Journal, error)

// Close closes the journal's database connections.
func (j *Journal) Close() error {
	return j.pool.Close()
} // func (j *Journal) Close() error

// AddAction records an Action.
func (j *Journal) AddAction(a *model.Action) error {
	var (
		err error
		db  *Database
	)

	if db, err = j.pool.Get(); err != nil {
		return err
	}
	defer j.pool.Put(db)

	return db.ActionAdd(a)
} // func (j *Journal) AddAction(a *model.Action) error

// Recent returns the latest Actions, newest first.
func (j *Journal) Recent(limit int) ([]*model.Action, error) {
	var (
		err error
		db  *Database
	)

	if db, err = j.pool.Get(); err != nil {
		return nil, err
	}
	defer j.pool.Put(db)

	return db.ActionGetRecent(limit)
} // func (j *Journal) Recent(limit int) ([]*model.Action, error)

// ByCamera returns the latest Actions involving the given Camera.
func (j *Journal) ByCamera(id model.CameraID, limit int) ([]*model.Action, error) {
	var (
		err error
		db  *Database
	)

	if db, err = j.pool.Get(); err != nil {
		return nil, err
	}
	defer j.pool.Put(db)

	return db.ActionGetByCamera(id, limit)
} // func (j *Journal) ByCamera(id model.CameraID, limit int) ([]*model.Action, error)

// BySession returns the latest Actions of a dashboard session.
func (j *Journal) BySession(session string, limit int) ([]*model.Action, error) {
	var (
		err error
		db  *Database
	)

	if db, err = j.pool.Get(); err != nil {
		return nil, err
	}
	defer j.pool.Put(db)

	return db.ActionGetBySession(session, limit)
} // func (j *Journal) BySession(session string, limit int) ([]*model.Action, error)

// Purge removes Actions older than maxAge in a single transaction. It
// returns the number of Actions removed.
func (j *Journal) Purge(maxAge time.Duration) (int64, error) {
	var (
		err       error
		cnt, left int64
		db        *Database
	)

	if db, err = j.pool.Get(); err != nil {
		return 0, err
	}
	defer j.pool.Put(db)

	if err = db.Begin(); err != nil {
		return 0, err
	}

	if cnt, err = db.ActionPurge(time.Now().Add(-maxAge)); err != nil {
		db.Rollback() // nolint: errcheck
		return 0, err
	} else if left, err = db.ActionCount(); err != nil {
		db.Rollback() // nolint: errcheck
		return 0, err
	} else if err = db.Commit(); err != nil {
		db.Rollback() // nolint: errcheck
		return 0, err
	}

	if cnt > 0 {
		db.log.Printf("[INFO] Purged %d Actions older than %s from the journal, %d left\n",
			cnt,
			maxAge,
			left)
	}

	return cnt, nil
} // func (j *Journal) Purge(maxAge time.Duration) (int64, error)

// Count returns the number of Actions in the journal.
func (j *Journal) Count() (int64, error) {
	var (
		err error
		db  *Database
	)

	if db, err = j.pool.Get(); err != nil {
		return 0, err
	}
	defer j.pool.Put(db)

	return db.ActionCount()
} // func (j *Journal) Count() (int64, error)

// Maintain performs database maintenance.
func (j *Journal) Maintain() error {
	var (
		err error
		db  *Database
	)

	if db, err = j.pool.Get(); err != nil {
		return err
	}
	defer j.pool.Put(db)

	return db.PerformMaintenance()
} // func (j *Journal) Maintain() error
