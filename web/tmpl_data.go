// /home/krylon/go/src/github.com/blicero/camdash/web/tmpl_data.go
// -*- mode: go; coding: utf-8; -*-
// Created on 09. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-13 10:56:18 krylon>
//
// This file contains data structures to be passed to HTML templates.

package web

import (
	"github.com/blicero/camdash/dashboard"
	"github.com/blicero/camdash/model"
)

type tmplDataBase struct {
	Title    string
	Messages []*message
	Debug    bool
	URL      string
	Version  string
}

type tmplDataMain struct {
	tmplDataBase
	View     dashboard.View
	Statuses []string
}

type tmplDataActivity struct {
	tmplDataBase
	Enabled bool
	Actions []*model.Action
}

// Local Variables:  //
// compile-command: "go generate && go vet && go build -v -p 16 && gometalinter && go test -v" //
// End: //
