// /home/krylon/go/src/github.com/blicero/camdash/database/query/query.go
// -*- mode: go; coding: utf-8; -*-
// Created on 05. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-05 18:53:04 krylon>

// Package query provides symbolic constants to identifiy database queries.
package query

//go:generate stringer -type=ID

// ID represents a database query.
type ID uint8

const (
	ActionAdd ID = iota
	ActionGetRecent
	ActionGetByCamera
	ActionGetBySession
	ActionCount
	ActionPurge
)
