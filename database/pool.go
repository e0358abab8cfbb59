// /home/krylon/go/src/github.com/blicero/camdash/database/pool.go
// -*- mode: go; coding: utf-8; -*-
// Created on 06. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-08 17:24:50 krylon>

package database

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/blicero/camdash/common"
	"github.com/blicero/camdash/logdomain"
)

// ErrPoolClosed is returned by Get after the Pool has been closed.
var ErrPoolClosed = errors.New("database pool is closed")

// Pool is a set of Database connections that can be shared between
// goroutines. A Database obtained from Get must be returned with Put.
type Pool struct {
	path   string
	log    *log.Logger
	lock   sync.Mutex
	free   []*Database
	max    int
	closed bool
}

// NewPool creates a Pool that keeps up to max idle connections to the
// database at path. It opens one connection right away, so the database is
// created if it does not exist, yet.
func NewPool(path string, max int) (*Pool, error) {
	var (
		err error
		db  *Database
		p   = &Pool{
			path: path,
			max:  max,
		}
	)

	if max < 1 {
		return nil, fmt.Errorf("%w: Pool size must be positive, not %d",
			ErrInvalidValue,
			max)
	} else if p.log, err = common.GetLogger(logdomain.DBPool); err != nil {
		return nil, err
	} else if db, err = Open(path); err != nil {
		p.log.Printf("[ERROR] Cannot open database %s: %s\n",
			path,
			err.Error())
		return nil, err
	}

	p.free = append(make([]*Database, 0, max), db)

	return p, nil
} // func NewPool(path string, max int) (*Pool, error)

// Get returns a Database connection from the Pool, opening a new one if
// there is none to spare.
func (p *Pool) Get() (*Database, error) {
	p.lock.Lock()
	defer p.lock.Unlock()

	if p.closed {
		return nil, ErrPoolClosed
	} else if n := len(p.free); n > 0 {
		var db = p.free[n-1]
		p.free = p.free[:n-1]
		return db, nil
	}

	p.log.Printf("[TRACE] Pool is empty, open new connection to %s\n",
		p.path)

	return Open(p.path)
} // func (p *Pool) Get() (*Database, error)

// Put returns a Database connection to the Pool. If the Pool is full or
// closed, the connection is closed.
func (p *Pool) Put(db *Database) {
	p.lock.Lock()
	defer p.lock.Unlock()

	if db.tx != nil {
		p.log.Printf("[CANTHAPPEN] Database#%d was returned with a transaction in progress\n",
			db.id)
		db.Rollback() // nolint: errcheck
	}

	if p.closed || len(p.free) >= p.max {
		db.Close() // nolint: errcheck
		return
	}

	p.free = append(p.free, db)
} // func (p *Pool) Put(db *Database)

// Close closes all idle connections. Connections that are in use are closed
// when they are returned.
func (p *Pool) Close() error {
	p.lock.Lock()
	defer p.lock.Unlock()

	var err error

	p.closed = true
	for _, db := range p.free {
		if e := db.Close(); e != nil {
			err = e
		}
	}
	p.free = nil

	return err
} // func (p *Pool) Close() error
