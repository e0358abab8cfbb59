// /home/krylon/go/src/github.com/blicero/camdash/scheduler/scheduler.go
// -*- mode: go; coding: utf-8; -*-
// Created on 08. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-13 19:30:05 krylon>

// Package scheduler runs periodic housekeeping tasks.
package scheduler

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/blicero/camdash/common"
	"github.com/blicero/camdash/logdomain"
	"github.com/blicero/camdash/scheduler/task"
	"github.com/blicero/camdash/settings"
)

const (
	reapInterval  = time.Minute
	purgeInterval = time.Hour
	maintInterval = time.Hour * 24
	queueSize     = 8
)

// Reaper gets rid of dashboard sessions that have been idle for too long.
type Reaper interface {
	ReapSessions(maxIdle time.Duration) int
}

// Housekeeper keeps the activity journal tidy.
type Housekeeper interface {
	Purge(maxAge time.Duration) (int64, error)
	Maintain() error
}

// Scheduler periodically expires idle sessions and cleans up the journal.
// Either of them may be nil, in which case the respective tasks are skipped.
type Scheduler struct {
	log     *log.Logger
	reaper  Reaper
	journal Housekeeper
	active  atomic.Bool
	quit    chan struct{}
	taskQ   chan task.Tag
}

// Create returns a fresh Scheduler.
func Create(r Reaper, j Housekeeper) (*Scheduler, error) {
	var (
		err error
		s   = &Scheduler{
			reaper:  r,
			journal: j,
			quit:    make(chan struct{}),
			taskQ:   make(chan task.Tag, queueSize),
		}
	)

	if s.log, err = common.GetLogger(logdomain.Scheduler); err != nil {
		return nil, err
	}

	return s, nil
} // func Create(r Reaper, j Housekeeper) (*Scheduler, error)

// IsActive returns the state of the Scheduler's active flag.
func (s *Scheduler) IsActive() bool {
	return s.active.Load()
} // func (s *Scheduler) IsActive() bool

// Stop clears the Scheduler's active flag and ends its main loop.
func (s *Scheduler) Stop() {
	if s.active.CompareAndSwap(true, false) {
		close(s.quit)
	}
} // func (s *Scheduler) Stop()

// Start starts the Scheduler's main loop.
func (s *Scheduler) Start() {
	if s.active.CompareAndSwap(false, true) {
		go s.run()
	}
} // func (s *Scheduler) Start()

// Schedule asks the Scheduler to run a task as soon as possible. If the
// queue is full, the request is dropped and Schedule returns false.
func (s *Scheduler) Schedule(t task.Tag) bool {
	select {
	case s.taskQ <- t:
		return true
	default:
		s.log.Printf("[WARN] Task queue is full, dropping %s\n", t)
		return false
	}
} // func (s *Scheduler) Schedule(t task.Tag) bool

func (s *Scheduler) run() {
	var (
		tickReap  = time.NewTicker(reapInterval)
		tickPurge = time.NewTicker(purgeInterval)
		tickMaint = time.NewTicker(maintInterval)
	)

	defer tickReap.Stop()
	defer tickPurge.Stop()
	defer tickMaint.Stop()

	s.log.Println("[DEBUG] Scheduler is running.")

	for s.IsActive() {
		select {
		case <-s.quit:
			s.log.Println("[DEBUG] Scheduler is stopping.")
			return
		case <-tickReap.C:
			s.execute(task.SessionReap)
		case <-tickPurge.C:
			s.execute(task.JournalPurge)
		case <-tickMaint.C:
			s.execute(task.JournalMaintain)
		case t := <-s.taskQ:
			s.execute(t)
		}
	}
} // func (s *Scheduler) run()

func (s *Scheduler) execute(t task.Tag) {
	s.log.Printf("[TRACE] Execute task %s\n", t)

	switch t {
	case task.SessionReap:
		if s.reaper == nil {
			return
		} else if n := s.reaper.ReapSessions(settings.Settings.SessionTimeout); n > 0 {
			s.log.Printf("[INFO] Expired %d idle session(s)\n", n)
		}
	case task.JournalPurge:
		if s.journal == nil {
			return
		} else if _, err := s.journal.Purge(settings.Settings.JournalMaxAge); err != nil {
			s.log.Printf("[ERROR] Failed to purge journal: %s\n",
				err.Error())
		}
	case task.JournalMaintain:
		if s.journal == nil {
			return
		} else if err := s.journal.Maintain(); err != nil {
			s.log.Printf("[ERROR] Failed to perform journal maintenance: %s\n",
				err.Error())
		}
	default:
		s.log.Printf("[CANTHAPPEN] Unknown task %s\n", t)
	}
} // func (s *Scheduler) execute(t task.Tag)
