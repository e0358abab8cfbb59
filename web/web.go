// /home/krylon/go/src/github.com/blicero/camdash/web/web.go
// -*- mode: go; coding: utf-8; -*-
// Created on 08. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-14 20:56:07 krylon>

// Package web implements the web interface of the dashboard.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/blicero/camdash/common"
	"github.com/blicero/camdash/dashboard"
	"github.com/blicero/camdash/database"
	"github.com/blicero/camdash/logdomain"
	"github.com/blicero/camdash/metrics"
	"github.com/blicero/camdash/model"
	"github.com/blicero/camdash/ping"
	"github.com/gorilla/mux"
)

const (
	cacheControl = "max-age=3600, public"
	noCache      = "no-store, max-age=0"
	activityCnt  = 100
)

//go:embed assets
var assets embed.FS

// Options carries the collaborators of a Server. Only API is mandatory.
type Options struct {
	API          dashboard.API
	Journal      *database.Journal
	Metrics      *metrics.Registry
	Pinger       *ping.Pinger
	RemoteDelete bool
	PerPage      int
}

// Server wraps the state required for the web interface
type Server struct {
	addr      string
	log       *log.Logger
	opt       Options
	lock      sync.RWMutex
	sessions  map[string]*session
	active    atomic.Bool
	router    *mux.Router
	tmpl      *template.Template
	web       http.Server
	mimeTypes map[string]string
}

// Create creates and returns a new Server.
func Create(addr string, opt Options) (*Server, error) {
	var (
		err error
		msg string
		srv = &Server{
			addr:     addr,
			opt:      opt,
			sessions: make(map[string]*session),
			mimeTypes: map[string]string{
				".css":  "text/css",
				".map":  "application/json",
				".js":   "text/javascript",
				".png":  "image/png",
				".svg":  "image/svg+xml",
				".json": "application/json",
				".html": "text/html",
			},
		}
	)

	if srv.log, err = common.GetLogger(logdomain.Web); err != nil {
		fmt.Fprintf(
			os.Stderr,
			"Error creating Logger: %s\n",
			err.Error())
		return nil, err
	} else if opt.API == nil {
		srv.log.Println("[CANTHAPPEN] No camera API was given")
		return nil, errors.New("No camera API was given")
	}

	const tmplFolder = "assets/templates"
	var (
		templates []fs.DirEntry
		tmplRe    = regexp.MustCompile("[.]tmpl$")
	)

	if templates, err = assets.ReadDir(tmplFolder); err != nil {
		srv.log.Printf("[ERROR] Cannot read embedded templates: %s\n",
			err.Error())
		return nil, err
	}

	srv.tmpl = template.New("").Funcs(funcmap)
	for _, entry := range templates {
		var (
			content []byte
			path    = filepath.Join(tmplFolder, entry.Name())
		)

		if !tmplRe.MatchString(entry.Name()) {
			continue
		} else if content, err = assets.ReadFile(path); err != nil {
			msg = fmt.Sprintf("Cannot read embedded file %s: %s",
				path,
				err.Error())
			srv.log.Printf("[CRITICAL] %s\n", msg)
			return nil, errors.New(msg)
		} else if srv.tmpl, err = srv.tmpl.Parse(string(content)); err != nil {
			msg = fmt.Sprintf("Could not parse template %s: %s",
				entry.Name(),
				err.Error())
			srv.log.Println("[CRITICAL] " + msg)
			return nil, errors.New(msg)
		} else if common.Debug {
			srv.log.Printf("[TRACE] Template \"%s\" was parsed successfully.\n",
				entry.Name())
		}
	}

	srv.router = mux.NewRouter()
	srv.router.Use(srv.logRequest)
	srv.web.Addr = addr
	srv.web.ErrorLog = srv.log
	srv.web.Handler = srv.router

	// Web interface handlers
	srv.router.HandleFunc("/favicon.ico", srv.handleFavIco)
	srv.router.HandleFunc("/static/{file}", srv.handleStaticFile)
	srv.router.HandleFunc("/{page:(?:index|main|start)?$}", srv.handleMain).Methods(http.MethodGet)
	srv.router.HandleFunc("/filter", srv.handleFilter).Methods(http.MethodGet)
	srv.router.HandleFunc("/rows/{n:(?:\\d+)$}", srv.handleRows).Methods(http.MethodGet)
	srv.router.HandleFunc("/page/{nav}", srv.handlePage).Methods(http.MethodGet)
	srv.router.HandleFunc("/camera/{id}/toggle", srv.handleToggle).Methods(http.MethodPost)
	srv.router.HandleFunc("/camera/{id}/delete", srv.handleDeleteRequest).Methods(http.MethodPost)
	srv.router.HandleFunc("/delete/confirm", srv.handleDeleteConfirm).Methods(http.MethodPost)
	srv.router.HandleFunc("/delete/cancel", srv.handleDeleteCancel).Methods(http.MethodPost)
	srv.router.HandleFunc("/reload", srv.handleReload).Methods(http.MethodPost)
	srv.router.HandleFunc("/activity", srv.handleActivity).Methods(http.MethodGet)

	// AJAX Handlers
	srv.router.HandleFunc("/ajax/beacon", srv.handleBeacon)
	srv.router.HandleFunc("/ajax/view", srv.handleView)
	srv.router.HandleFunc("/ajax/ping/{id}", srv.handlePing)

	if opt.Metrics != nil {
		srv.router.Handle("/metrics", opt.Metrics.Handler(srv.log))
	}

	return srv, nil
} // func Create(addr string, opt Options) (*Server, error)

// Handler returns the Server's http.Handler.
func (srv *Server) Handler() http.Handler {
	return srv.router
} // func (srv *Server) Handler() http.Handler

// IsActive returns the Server's active flag.
func (srv *Server) IsActive() bool {
	return srv.active.Load()
} // func (srv *Server) IsActive() bool

// Stop clears the Server's active flag and shuts down the HTTP server.
func (srv *Server) Stop(ctx context.Context) error {
	srv.active.Store(false)
	defer srv.closeSessions()
	return srv.web.Shutdown(ctx)
} // func (srv *Server) Stop(ctx context.Context) error

// Run executes the Server's loop, waiting for new connections and starting
// goroutines to handle them.
func (srv *Server) Run() {
	var err error

	defer srv.log.Println("[INFO] Web server is shutting down")

	srv.active.Store(true)
	srv.log.Printf("[INFO] Web frontend is going online at %s\n", srv.addr)

	if err = srv.web.ListenAndServe(); err != nil {
		if !errors.Is(err, http.ErrServerClosed) {
			srv.log.Printf("[ERROR] ListenAndServe returned an error: %s\n",
				err.Error())
		} else {
			srv.log.Println("[INFO] HTTP Server has shut down.")
		}
	}
} // func (srv *Server) Run()

func (srv *Server) render(w http.ResponseWriter, tmplName string, data any) {
	var (
		err  error
		msg  string
		tmpl *template.Template
	)

	if tmpl = srv.tmpl.Lookup(tmplName); tmpl == nil {
		msg = fmt.Sprintf("Could not find template %q", tmplName)
		srv.log.Println("[CRITICAL] " + msg)
		srv.sendErrorMessage(w, msg)
		return
	}

	srv.opt.Metrics.PageView(tmplName)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", noCache)
	if err = tmpl.Execute(w, data); err != nil {
		srv.log.Printf("[ERROR] Failed to render template %s: %s\n",
			tmplName,
			err.Error())
	}
} // func (srv *Server) render(w http.ResponseWriter, tmplName string, data any)

// backToMain sends the client back to the dashboard after a form was
// submitted.
func (srv *Server) backToMain(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
} // func (srv *Server) backToMain(w http.ResponseWriter, r *http.Request)

func (srv *Server) handleMain(w http.ResponseWriter, r *http.Request) {
	var (
		sess = srv.getSession(w, r)
		data = tmplDataMain{
			tmplDataBase: tmplDataBase{
				Title:   "Cameras",
				Debug:   common.Debug,
				URL:     r.URL.String(),
				Version: common.Version,
			},
			Statuses: []string{model.All, string(model.Active), string(model.Inactive)},
		}
	)

	data.View = sess.ctl.View()

	if data.View.Loading && !data.View.Loaded {
		data.Title = "Loading cameras"
		srv.render(w, "loading", &data)
		return
	}

	data.Messages = sess.mbuf.getAll()
	srv.render(w, "main", &data)
} // func (srv *Server) handleMain(w http.ResponseWriter, r *http.Request)

func (srv *Server) handleFilter(w http.ResponseWriter, r *http.Request) {
	var (
		sess = srv.getSession(w, r)
		q    = r.URL.Query()
	)

	if q.Has("search") {
		sess.ctl.SetSearch(q.Get("search"))
	}

	if q.Has("status") && !sess.ctl.SetStatusFilter(q.Get("status")) {
		sess.alert("WARN", fmt.Sprintf("Invalid status filter %q", q.Get("status")))
	}

	if q.Has("location") {
		sess.ctl.SetLocationFilter(q.Get("location"))
	}

	srv.backToMain(w, r)
} // func (srv *Server) handleFilter(w http.ResponseWriter, r *http.Request)

func (srv *Server) handleRows(w http.ResponseWriter, r *http.Request) {
	var (
		err  error
		n    int
		sess = srv.getSession(w, r)
		nStr = mux.Vars(r)["n"]
	)

	if n, err = strconv.Atoi(nStr); err != nil || !sess.ctl.SetPerPage(n) {
		srv.log.Printf("[INFO] Ignoring invalid number of rows %q\n", nStr)
	}

	srv.backToMain(w, r)
} // func (srv *Server) handleRows(w http.ResponseWriter, r *http.Request)

func (srv *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	var (
		sess   = srv.getSession(w, r)
		navStr = mux.Vars(r)["nav"]
	)

	if nav, ok := dashboard.ParseNav(navStr); ok {
		sess.ctl.Navigate(nav)
	} else if n, err := strconv.Atoi(navStr); err == nil {
		sess.ctl.GotoPage(n)
	} else {
		srv.log.Printf("[INFO] Ignoring invalid page %q\n", navStr)
	}

	srv.backToMain(w, r)
} // func (srv *Server) handlePage(w http.ResponseWriter, r *http.Request)

func (srv *Server) handleToggle(w http.ResponseWriter, r *http.Request) {
	var (
		err  error
		sess = srv.getSession(w, r)
		id   = model.CameraID(mux.Vars(r)["id"])
	)

	if err = sess.ctl.Toggle(r.Context(), id); errors.Is(err, dashboard.ErrNoSuchCamera) {
		sess.alert("ERROR", fmt.Sprintf("There is no camera with ID %s", id))
	}

	srv.backToMain(w, r)
} // func (srv *Server) handleToggle(w http.ResponseWriter, r *http.Request)

func (srv *Server) handleDeleteRequest(w http.ResponseWriter, r *http.Request) {
	var (
		err  error
		sess = srv.getSession(w, r)
		id   = model.CameraID(mux.Vars(r)["id"])
	)

	if err = sess.ctl.RequestDelete(id); err != nil {
		sess.alert("ERROR", fmt.Sprintf("There is no camera with ID %s", id))
	}

	srv.backToMain(w, r)
} // func (srv *Server) handleDeleteRequest(w http.ResponseWriter, r *http.Request)

func (srv *Server) handleDeleteConfirm(w http.ResponseWriter, r *http.Request) {
	var (
		err  error
		sess = srv.getSession(w, r)
	)

	if err = sess.ctl.ConfirmDelete(r.Context()); errors.Is(err, dashboard.ErrNoSuchCamera) {
		sess.alert("WARN", "The camera you wanted to delete is gone already")
	} else if errors.Is(err, dashboard.ErrNoDeletePending) {
		srv.log.Println("[INFO] Delete confirmed, but nothing was pending")
	}

	srv.backToMain(w, r)
} // func (srv *Server) handleDeleteConfirm(w http.ResponseWriter, r *http.Request)

func (srv *Server) handleDeleteCancel(w http.ResponseWriter, r *http.Request) {
	var sess = srv.getSession(w, r)

	sess.ctl.CancelDelete()
	srv.backToMain(w, r)
} // func (srv *Server) handleDeleteCancel(w http.ResponseWriter, r *http.Request)

func (srv *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	var sess = srv.getSession(w, r)

	go sess.ctl.Load(context.Background()) // nolint: errcheck
	srv.backToMain(w, r)
} // func (srv *Server) handleReload(w http.ResponseWriter, r *http.Request)

func (srv *Server) handleActivity(w http.ResponseWriter, r *http.Request) {
	var (
		err  error
		sess = srv.getSession(w, r)
		data = tmplDataActivity{
			tmplDataBase: tmplDataBase{
				Title:   "Activity",
				Debug:   common.Debug,
				URL:     r.URL.String(),
				Version: common.Version,
			},
			Enabled: srv.opt.Journal != nil,
		}
	)

	if srv.opt.Journal != nil {
		if r.URL.Query().Get("mine") != "" {
			data.Actions, err = srv.opt.Journal.BySession(sess.id, activityCnt)
		} else if camID := r.URL.Query().Get("camera"); camID != "" {
			data.Actions, err = srv.opt.Journal.ByCamera(model.CameraID(camID), activityCnt)
		} else {
			data.Actions, err = srv.opt.Journal.Recent(activityCnt)
		}

		if err != nil {
			var msg = fmt.Sprintf("Failed to load activity journal: %s",
				err.Error())
			srv.log.Printf("[ERROR] %s\n", msg)
			srv.sendErrorMessage(w, msg)
			return
		}
	}

	data.Messages = sess.mbuf.getAll()
	srv.render(w, "activity", &data)
} // func (srv *Server) handleActivity(w http.ResponseWriter, r *http.Request)

//////////////////////////////////////////////////////////////////////////////
/// Handle static assets /////////////////////////////////////////////////////
//////////////////////////////////////////////////////////////////////////////

func (srv *Server) handleFavIco(w http.ResponseWriter, request *http.Request) {
	const (
		filename = "assets/static/favicon.svg"
		mimeType = "image/svg+xml"
	)

	w.Header().Set("Content-Type", mimeType)

	if !common.Debug {
		w.Header().Set("Cache-Control", "max-age=7200")
	} else {
		w.Header().Set("Cache-Control", noCache)
	}

	var (
		err error
		fh  fs.File
	)

	if fh, err = assets.Open(filename); err != nil {
		msg := fmt.Sprintf("ERROR - cannot find file %s", filename)
		srv.sendErrorMessage(w, msg)
	} else {
		defer fh.Close()
		w.WriteHeader(200)
		io.Copy(w, fh) // nolint: errcheck
	}
} // func (srv *Server) handleFavIco(w http.ResponseWriter, request *http.Request)

func (srv *Server) handleStaticFile(w http.ResponseWriter, request *http.Request) {
	var (
		err      error
		fh       fs.File
		mimeType string
		match    []string
		filename = mux.Vars(request)["file"]
		path     = filepath.Join("assets", "static", filename)
	)

	srv.log.Printf("[TRACE] Delivering static file %s to client\n", filename)

	if match = common.SuffixPattern.FindStringSubmatch(filename); match == nil {
		mimeType = "text/plain"
	} else if mime, ok := srv.mimeTypes[match[1]]; ok {
		mimeType = mime
	} else {
		srv.log.Printf("[ERROR] Did not find MIME type for %s\n", filename)
	}

	if fh, err = assets.Open(path); err != nil {
		srv.log.Printf("[ERROR] Cannot find static file %s\n", path)
		http.NotFound(w, request)
		return
	}

	defer fh.Close()

	w.Header().Set("Content-Type", mimeType)

	if common.Debug {
		w.Header().Set("Cache-Control", noCache)
	} else {
		w.Header().Set("Cache-Control", cacheControl)
	}

	w.WriteHeader(200)
	io.Copy(w, fh) // nolint: errcheck
} // func (srv *Server) handleStaticFile(w http.ResponseWriter, request *http.Request)

func (srv *Server) sendErrorMessage(w http.ResponseWriter, msg string) {
	html := `
<!DOCTYPE html>
<html>
  <head>
    <title>Internal Error</title>
  </head>
  <body>
    <h1>Internal Error</h1>
    <hr />
    We are sorry to inform you an internal application error has occured:<br />
    %s
    <p>
    Back to <a href="/index">Homepage</a>
    <hr />
    &copy; 2026 <a href="mailto:krylon@gmx.net">Benjamin Walkenhorst</a>
  </body>
</html>
`

	srv.log.Printf("[ERROR] %s\n", msg)

	output := fmt.Sprintf(html, template.HTMLEscapeString(msg))
	w.WriteHeader(500)
	_, _ = w.Write([]byte(output)) // nolint: gosec
} // func (srv *Server) sendErrorMessage(w http.ResponseWriter, msg string)

// logRequest logs every request along with its status and duration.
func (srv *Server) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var (
			start   = time.Now()
			wrapped = &statusWriter{ResponseWriter: w, status: http.StatusOK}
		)

		next.ServeHTTP(wrapped, r)

		srv.log.Printf("[TRACE] %s %s - Status: %d - Duration: %s - Client: %s\n",
			r.Method,
			r.URL.Path,
			wrapped.status,
			time.Since(start),
			r.RemoteAddr)
	})
} // func (srv *Server) logRequest(next http.Handler) http.Handler

// statusWriter remembers the status code sent to the client.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (sw *statusWriter) WriteHeader(code int) {
	sw.status = code
	sw.ResponseWriter.WriteHeader(code)
} // func (sw *statusWriter) WriteHeader(code int)
