// /home/krylon/go/src/github.com/blicero/camdash/web/msgbuf.go
// -*- mode: go; coding: utf-8; -*-
// Created on 09. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-13 16:25:04 krylon>

package web

import (
	"crypto/sha512"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/blicero/camdash/common"
	"github.com/hashicorp/logutils"
)

// maxMessages is the number of messages a buffer holds before it starts
// dropping the oldest ones.
const maxMessages = 32

// message is something the user should be told about, e.g. a failed
// request to the camera API.
type message struct {
	Timestamp time.Time
	Level     logutils.LogLevel
	Message   string
}

func (m *message) TimeString() string {
	return m.Timestamp.Format(common.TimestampFormat)
} // func (m *message) TimeString() string

// Checksum returns a string that identifies the message, e.g. for use as
// a DOM id.
func (m *message) Checksum() string {
	var str = m.Timestamp.Format(common.TimestampFormat) + "##" +
		string(m.Level) + "##" +
		m.Message

	var hash = sha512.New()
	hash.Write([]byte(str)) // nolint: gosec,errcheck

	return fmt.Sprintf("%x", hash.Sum(nil))
} // func (m *message) Checksum() string

// CSSClass returns the alert class matching the message's level.
func (m *message) CSSClass() string {
	switch strings.ToUpper(string(m.Level)) {
	case "ERROR", "CRITICAL", "CANTHAPPEN":
		return "alert-error"
	case "WARN":
		return "alert-warn"
	default:
		return "alert-info"
	}
} // func (m *message) CSSClass() string

// msgBuf collects messages until they are displayed.
type msgBuf struct {
	lock sync.Mutex
	msgs []*message
}

func newMsgBuf() *msgBuf {
	return &msgBuf{msgs: make([]*message, 0, 4)}
} // func newMsgBuf() *msgBuf

// Size returns the number of messages in the buffer.
func (mb *msgBuf) Size() int {
	mb.lock.Lock()
	defer mb.lock.Unlock()
	return len(mb.msgs)
} // func (mb *msgBuf) Size() int

func (mb *msgBuf) put(m *message) {
	mb.lock.Lock()
	defer mb.lock.Unlock()

	if len(mb.msgs) >= maxMessages {
		mb.msgs = slices.Delete(mb.msgs, 0, 1)
	}

	mb.msgs = append(mb.msgs, m)
} // func (mb *msgBuf) put(m *message)

// getAll returns all messages, oldest first, and empties the buffer.
func (mb *msgBuf) getAll() []*message {
	mb.lock.Lock()
	defer mb.lock.Unlock()

	var list = mb.msgs
	mb.msgs = make([]*message, 0, 4)
	return list
} // func (mb *msgBuf) getAll() []*message
