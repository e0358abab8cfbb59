// /home/krylon/go/src/github.com/blicero/camdash/web/session.go
// -*- mode: go; coding: utf-8; -*-
// Created on 09. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-14 19:12:40 krylon>

package web

import (
	"context"
	"net/http"
	"time"

	"github.com/blicero/camdash/dashboard"
	"github.com/hashicorp/logutils"
	"github.com/odeke-em/go-uuid"
)

const sessionCookie = "camdash_session"

// session is one user's dashboard. Each session has its own Controller and
// its own buffer of messages to show.
type session struct {
	id      string
	ctl     *dashboard.Controller
	mbuf    *msgBuf
	created time.Time
}

func (s *session) alert(level logutils.LogLevel, msg string) {
	s.mbuf.put(&message{
		Timestamp: time.Now(),
		Level:     level,
		Message:   msg,
	})
} // func (s *session) alert(level logutils.LogLevel, msg string)

// getSession returns the session the request belongs to. If there is none,
// a new one is created, a cookie is set, and the initial load of the camera
// list is started in the background.
func (srv *Server) getSession(w http.ResponseWriter, r *http.Request) *session {
	var (
		err    error
		cookie *http.Cookie
		sess   *session
		ok     bool
	)

	if cookie, err = r.Cookie(sessionCookie); err == nil {
		srv.lock.RLock()
		sess, ok = srv.sessions[cookie.Value]
		srv.lock.RUnlock()

		if ok && !sess.ctl.Closed() {
			return sess
		}
	}

	if sess, err = srv.newSession(); err != nil {
		// GetLogger does not fail, so neither does dashboard.New.
		srv.log.Printf("[CANTHAPPEN] Cannot create session: %s\n",
			err.Error())
		panic(err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    sess.id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	go sess.ctl.Load(context.Background()) // nolint: errcheck

	return sess
} // func (srv *Server) getSession(w http.ResponseWriter, r *http.Request) *session

func (srv *Server) newSession() (*session, error) {
	var (
		err  error
		sess = &session{
			id:      uuid.New(),
			mbuf:    newMsgBuf(),
			created: time.Now(),
		}
		opt = dashboard.Options{
			Session:      sess.id,
			PerPage:      srv.opt.PerPage,
			RemoteDelete: srv.opt.RemoteDelete,
			Metrics:      srv.opt.Metrics,
			Alert:        func(msg string) { sess.alert("ERROR", msg) },
		}
	)

	if srv.opt.Journal != nil {
		opt.Journal = srv.opt.Journal
	}

	if sess.ctl, err = dashboard.New(srv.opt.API, opt); err != nil {
		return nil, err
	}

	srv.lock.Lock()
	srv.sessions[sess.id] = sess
	var cnt = len(srv.sessions)
	srv.lock.Unlock()

	srv.opt.Metrics.SetSessions(cnt)
	srv.log.Printf("[DEBUG] Created session %s, %d session(s) alive\n",
		sess.id,
		cnt)

	return sess, nil
} // func (srv *Server) newSession() (*session, error)

// ReapSessions closes and forgets sessions that have been idle for longer
// than maxIdle. It returns the number of sessions removed.
func (srv *Server) ReapSessions(maxIdle time.Duration) int {
	var (
		cnt    int
		cutoff = time.Now().Add(-maxIdle)
	)

	srv.lock.Lock()
	for id, sess := range srv.sessions {
		if sess.ctl.LastActive().Before(cutoff) {
			sess.ctl.Close()
			delete(srv.sessions, id)
			cnt++
		}
	}
	var alive = len(srv.sessions)
	srv.lock.Unlock()

	srv.opt.Metrics.SetSessions(alive)

	return cnt
} // func (srv *Server) ReapSessions(maxIdle time.Duration) int

func (srv *Server) closeSessions() {
	srv.lock.Lock()
	defer srv.lock.Unlock()

	for id, sess := range srv.sessions {
		sess.ctl.Close()
		delete(srv.sessions, id)
	}

	srv.opt.Metrics.SetSessions(0)
} // func (srv *Server) closeSessions()
