// /home/krylon/go/src/github.com/blicero/camdash/model/model.go
// -*- mode: go; coding: utf-8; -*-
// Created on 02. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-11 14:07:52 krylon>

// Package model provides data types used throughout the application.
package model

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/blicero/camdash/model/action"
)

// Status is the operational state of a Camera. After normalization, it is
// always one of Active or Inactive.
type Status string

// The two canonical values of Status.
const (
	Active   Status = "Active"
	Inactive Status = "Inactive"
)

// ParseStatus maps an arbitrary status string to its canonical form.
// Anything that is not, ignoring case, "active" counts as Inactive.
func ParseStatus(s string) Status {
	if strings.EqualFold(s, "active") {
		return Active
	}

	return Inactive
} // func ParseStatus(s string) Status

// Opposite returns the Status a toggle would switch to.
func (s Status) Opposite() Status {
	if s == Active {
		return Inactive
	}

	return Active
} // func (s Status) Opposite() Status

// IsActive returns true if the receiver is Active.
func (s Status) IsActive() bool {
	return s == Active
} // func (s Status) IsActive() bool

// CameraID identifies a Camera. The API hands out both numbers and strings,
// so we accept either. Camera.NumericID remembers which one it was.
type CameraID string

// UnmarshalJSON implements json.Unmarshaler.
func (id *CameraID) UnmarshalJSON(buf []byte) error {
	var (
		err error
		str string
		num json.Number
	)

	buf = bytes.TrimSpace(buf)

	if bytes.Equal(buf, []byte("null")) {
		*id = ""
		return nil
	} else if len(buf) > 0 && buf[0] == '"' {
		if err = json.Unmarshal(buf, &str); err != nil {
			return err
		}
		*id = CameraID(str)
		return nil
	} else if err = json.Unmarshal(buf, &num); err != nil {
		return err
	}

	*id = CameraID(num.String())
	return nil
} // func (id *CameraID) UnmarshalJSON(buf []byte) error

func (id CameraID) String() string {
	return string(id)
}

// Camera is a network camera as the dashboard sees it.
type Camera struct {
	ID         CameraID `json:"id"`
	Name       string   `json:"name"`
	Model      string   `json:"model"`
	Location   string   `json:"location"`
	IPAddress  string   `json:"ip_address"`
	Resolution string   `json:"resolution"`
	Status     Status   `json:"status"`
	// NumericID is true if the API sent the ID as a JSON number.
	NumericID bool `json:"-"`
	// Extra holds whatever else the API sent along with a camera. We do not
	// interpret it, but we do not throw it away, either.
	Extra map[string]any `json:"-"`
}

// WireID returns the ID in the form the API sent it, so it can be sent
// back unchanged.
func (c Camera) WireID() json.RawMessage {
	if c.NumericID && c.ID != "" {
		return json.RawMessage(c.ID)
	}

	var buf, _ = json.Marshal(string(c.ID))
	return buf
} // func (c Camera) WireID() json.RawMessage

// WithStatus returns a copy of the receiver with its Status set to s.
func (c Camera) WithStatus(s Status) Camera {
	c.Status = s
	return c
} // func (c Camera) WithStatus(s Status) Camera

// Action is an entry in the activity journal: something the user did to the
// list of cameras, and whether it worked.
type Action struct {
	ID        int64
	Session   string
	Kind      action.Kind
	CameraID  CameraID
	Detail    string
	OK        bool
	Timestamp time.Time
}
