// /home/krylon/go/src/github.com/blicero/camdash/logdomain/logdomain.go
// -*- mode: go; coding: utf-8; -*-
// Created on 02. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-08 21:03:17 krylon>

package logdomain

// ID represents the various pieces of the application that may want to log messages.
type ID uint8

//go:generate stringer -type=ID

const (
	Common ID = iota
	Client
	Dashboard
	Database
	DBPool
	Ping
	Scheduler
	TUI
	Web
)

// AllDomains returns a slice of all valid values for logdomain.ID
func AllDomains() []ID {
	return []ID{
		Common,
		Client,
		Dashboard,
		Database,
		DBPool,
		Ping,
		Scheduler,
		TUI,
		Web,
	}
} // func AllDomains() []ID
