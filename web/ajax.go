// /home/krylon/go/src/github.com/blicero/camdash/web/ajax.go
// -*- mode: go; coding: utf-8; -*-
// Created on 09. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-14 15:09:45 krylon>

package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/blicero/camdash/common"
	"github.com/blicero/camdash/model"
	"github.com/blicero/camdash/ping"
	"github.com/gorilla/mux"
)

////////////////////////////////////////////////////////////////////////////////
//// Ajax handlers /////////////////////////////////////////////////////////////
////////////////////////////////////////////////////////////////////////////////

type ajaxResponse struct {
	Status    bool   `json:"Status"`
	Message   string `json:"Message"`
	Timestamp string `json:"Timestamp"`
	Payload   any    `json:"Payload,omitempty"`
}

func (srv *Server) sendJSON(w http.ResponseWriter, status int, res *ajaxResponse) {
	var (
		err error
		buf []byte
	)

	res.Timestamp = time.Now().Format(common.TimestampFormat)

	if buf, err = json.Marshal(res); err != nil {
		srv.log.Printf("[ERROR] Cannot serialize response: %s\n",
			err.Error())
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", noCache)
	w.WriteHeader(status)
	w.Write(buf) // nolint: errcheck,gosec
} // func (srv *Server) sendJSON(w http.ResponseWriter, status int, res *ajaxResponse)

func (srv *Server) handleBeacon(w http.ResponseWriter, r *http.Request) {
	var timestamp = time.Now().Format(common.TimestampFormat)
	const appName = common.AppName + " " + common.Version
	var jstr = fmt.Sprintf(`{ "Status": true, "Message": "%s", "Timestamp": "%s", "Hostname": "%s" }`,
		appName,
		timestamp,
		hostname())
	var response = []byte(jstr)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", noCache)
	w.WriteHeader(200)
	w.Write(response) // nolint: errcheck,gosec
} // func (srv *Server) handleBeacon(w http.ResponseWriter, r *http.Request)

// handleView delivers the current View of the session's dashboard as JSON.
func (srv *Server) handleView(w http.ResponseWriter, r *http.Request) {
	var sess = srv.getSession(w, r)

	srv.sendJSON(w, http.StatusOK, &ajaxResponse{
		Status:  true,
		Message: "OK",
		Payload: sess.ctl.View(),
	})
} // func (srv *Server) handleView(w http.ResponseWriter, r *http.Request)

func (srv *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	var (
		err  error
		cam  model.Camera
		ok   bool
		res  *ping.Result
		sess = srv.getSession(w, r)
		id   = model.CameraID(mux.Vars(r)["id"])
	)

	if srv.opt.Pinger == nil {
		srv.sendJSON(w, http.StatusServiceUnavailable, &ajaxResponse{
			Message: "Ping is not available",
		})
		return
	} else if cam, ok = sess.ctl.Camera(id); !ok {
		srv.sendJSON(w, http.StatusNotFound, &ajaxResponse{
			Message: fmt.Sprintf("There is no camera with ID %s", id),
		})
		return
	} else if res, err = srv.opt.Pinger.Ping(r.Context(), &cam); err != nil {
		var status = http.StatusBadGateway
		if errors.Is(err, ping.ErrNoAddress) {
			status = http.StatusUnprocessableEntity
		}
		srv.sendJSON(w, status, &ajaxResponse{
			Message: err.Error(),
		})
		return
	}

	var msg = "offline"
	if res.Alive {
		msg = "alive"
	}

	srv.sendJSON(w, http.StatusOK, &ajaxResponse{
		Status:  true,
		Message: msg,
		Payload: res,
	})
} // func (srv *Server) handlePing(w http.ResponseWriter, r *http.Request)
