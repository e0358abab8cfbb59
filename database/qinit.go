// /home/krylon/go/src/github.com/blicero/camdash/database/qinit.go
// -*- mode: go; coding: utf-8; -*-
// Created on 05. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-07 20:01:48 krylon>

package database

// This files contains the SQL queries to initialize a fresh database.
// Having that defined inside the application is both convenient for reference
// and for testing.

var qinit = []string{
	`
CREATE TABLE action (
    id		INTEGER PRIMARY KEY,
    session	TEXT NOT NULL DEFAULT '',
    kind	INTEGER NOT NULL,
    camera_id	TEXT NOT NULL DEFAULT '',
    detail	TEXT NOT NULL DEFAULT '',
    ok		INTEGER NOT NULL DEFAULT 1,
    timestamp	INTEGER NOT NULL,
    CHECK (kind >= 0)
) STRICT
`,
	"CREATE INDEX act_time_idx ON action (timestamp)",
	"CREATE INDEX act_cam_idx ON action (camera_id)",
	"CREATE INDEX act_session_idx ON action (session)",
	"CREATE INDEX act_fail_idx ON action (ok = 0)",
}
