// /home/krylon/go/src/github.com/blicero/camdash/model/action/action.go
// -*- mode: go; coding: utf-8; -*-
// Created on 05. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-05 19:44:35 krylon>

// Package action provides symbolic constants to identify the kinds of
// operations recorded in the activity journal.
package action

//go:generate stringer -type=Kind

// Kind represents a type of operation performed on the camera list.
type Kind uint8

const (
	Load Kind = iota
	Toggle
	Delete
	Restore
)
