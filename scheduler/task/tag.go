// /home/krylon/go/src/github.com/blicero/camdash/scheduler/task/tag.go
// -*- mode: go; coding: utf-8; -*-
// Created on 08. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-08 19:50:32 krylon>

// Package task defines constants to refer to Task types
package task

//go:generate stringer -type=Tag

// Tag is a symbolic constant to describe different types of Tasks
type Tag uint8

const (
	SessionReap Tag = iota
	JournalPurge
	JournalMaintain
)
