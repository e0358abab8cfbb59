// /home/krylon/go/src/github.com/blicero/camdash/web/funcmap.go
// -*- mode: go; coding: utf-8; -*-
// Created on 09. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-14 18:40:21 krylon>

package web

import (
	"html"
	"html/template"
	"os"
	"time"
	"unicode/utf8"

	"github.com/blicero/camdash/common"
	"github.com/blicero/camdash/model"
	"github.com/mborgerson/GoTruncateHtml/truncatehtml"
)

const ellipsis = "…"

var funcmap = template.FuncMap{
	"now": func() string {
		return time.Now().Format(common.TimestampFormat)
	},
	"fmt_time": func(t time.Time) string {
		return t.Format(common.TimestampFormat)
	},
	"truncate":     truncate,
	"status_class": statusClass,
	"toggle_label": func(s model.Status) string {
		if s.IsActive() {
			return "Deactivate"
		}
		return "Activate"
	},
	"selected": func(a, b string) bool {
		return a == b
	},
	"app_name": func() string {
		return common.AppName
	},
	"hostname": hostname,
}

// truncate shortens text to at most maxlen visible characters, for columns
// that would otherwise blow up the table layout. The text is escaped first,
// so the result is safe to embed.
func truncate(maxlen int, s string) template.HTML {
	var (
		err error
		buf []byte
		esc = html.EscapeString(s)
	)

	// TruncateHtml appends the ellipsis whether it cut anything or not.
	if utf8.RuneCountInString(s) <= maxlen {
		return template.HTML(esc) // nolint: gosec
	}

	if buf, err = truncatehtml.TruncateHtml([]byte(esc), maxlen, ellipsis); err != nil {
		return template.HTML(esc) // nolint: gosec
	}

	return template.HTML(buf) // nolint: gosec
} // func truncate(maxlen int, s string) template.HTML

func statusClass(s model.Status) string {
	if s.IsActive() {
		return "status-active"
	}

	return "status-inactive"
} // func statusClass(s model.Status) string

func hostname() string {
	var (
		err  error
		name string
	)

	if name, err = os.Hostname(); err != nil {
		return "localhost"
	}

	return name
} // func hostname() string
