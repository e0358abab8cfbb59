// /home/krylon/go/src/github.com/blicero/camdash/database/qdb.go
// -*- mode: go; coding: utf-8; -*-
// Created on 05. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-07 19:50:12 krylon>

package database

import (
	"github.com/blicero/camdash/database/query"
)

var qdb = map[query.ID]string{
	query.ActionAdd: `
INSERT INTO action (session, kind, camera_id, detail, ok, timestamp)
            VALUES (      ?,    ?,         ?,      ?,  ?,         ?)
RETURNING id
`,
	query.ActionGetRecent: `
SELECT
    id,
    session,
    kind,
    camera_id,
    detail,
    ok,
    timestamp
FROM action
ORDER BY timestamp DESC, id DESC
LIMIT ?
`,
	query.ActionGetByCamera: `
SELECT
    id,
    session,
    kind,
    camera_id,
    detail,
    ok,
    timestamp
FROM action
WHERE camera_id = ?
ORDER BY timestamp DESC, id DESC
LIMIT ?
`,
	query.ActionGetBySession: `
SELECT
    id,
    session,
    kind,
    camera_id,
    detail,
    ok,
    timestamp
FROM action
WHERE session = ?
ORDER BY timestamp DESC, id DESC
LIMIT ?
`,
	query.ActionCount: "SELECT COUNT(id) FROM action",
	query.ActionPurge: "DELETE FROM action WHERE timestamp < ?",
}
