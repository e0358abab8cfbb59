// /home/krylon/go/src/github.com/blicero/camdash/database/database.go
// -*- mode: go; coding: utf-8; -*-
// Created on 05. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-12 23:02:17 krylon>

// Package database stores the activity journal in an SQLite database.
package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"regexp"
	"sync"
	"time"

	"github.com/blicero/camdash/common"
	"github.com/blicero/camdash/database/query"
	"github.com/blicero/camdash/logdomain"
	"github.com/blicero/camdash/model"
	"github.com/blicero/camdash/model/action"
	"github.com/blicero/krylib"
	_ "github.com/mattn/go-sqlite3" // Import the database driver
)

var (
	openLock sync.Mutex
	idCnt    int64
)

// ErrTxInProgress indicates that an attempt to initiate a transaction failed
// because there is already one in progress.
var ErrTxInProgress = errors.New("A Transaction is already in progress")

// ErrNoTxInProgress indicates that an attempt was made to finish a
// transaction when none was active.
var ErrNoTxInProgress = errors.New("There is no transaction in progress")

// ErrInvalidValue indicates that one or more parameters passed to a method
// had values that are invalid for that operation.
var ErrInvalidValue = errors.New("Invalid value for parameter")

// If a query returns an error and the error text is matched by this regex, we
// consider the error as transient and try again after a short delay.
var retryPat = regexp.MustCompile("(?i)database is (?:locked|busy)")

// worthARetry returns true if an error returned from the database
// is matched by the retryPat regex.
func worthARetry(e error) bool {
	return retryPat.MatchString(e.Error())
} // func worthARetry(e error) bool

// retryDelay is the amount of time we wait before we repeat a database
// operation that failed due to a transient error.
const retryDelay = 25 * time.Millisecond

func waitForRetry() {
	time.Sleep(retryDelay)
} // func waitForRetry()

// Database is the storage backend for the activity journal.
//
// It is not safe to share a Database instance between goroutines, however
// opening multiple connections to the same Database is safe. Use a Pool
// to share connections.
type Database struct {
	id      int64
	db      *sql.DB
	tx      *sql.Tx
	log     *log.Logger
	path    string
	queries map[query.ID]*sql.Stmt
}

// Open opens a Database. If the database specified by the path does not exist,
// yet, it is created and initialized.
func Open(path string) (*Database, error) {
	var (
		err      error
		dbExists bool
		db       = &Database{
			path:    path,
			queries: make(map[query.ID]*sql.Stmt),
		}
	)

	openLock.Lock()
	defer openLock.Unlock()
	idCnt++
	db.id = idCnt

	if db.log, err = common.GetLogger(logdomain.Database); err != nil {
		return nil, err
	} else if common.Debug {
		db.log.Printf("[DEBUG] Open database %s\n", path)
	}

	var connstring = fmt.Sprintf("%s?_locking=NORMAL&_journal=WAL&_fk=1&recursive_triggers=0",
		path)

	if dbExists, err = krylib.Fexists(path); err != nil {
		db.log.Printf("[ERROR] Failed to check if %s already exists: %s\n",
			path,
			err.Error())
		return nil, err
	} else if db.db, err = sql.Open("sqlite3", connstring); err != nil {
		db.log.Printf("[ERROR] Failed to open %s: %s\n",
			path,
			err.Error())
		return nil, err
	}

	if !dbExists {
		if err = db.initialize(); err != nil {
			var e2 error
			if e2 = db.db.Close(); e2 != nil {
				db.log.Printf("[CRITICAL] Failed to close database: %s\n",
					e2.Error())
				return nil, e2
			} else if e2 = os.Remove(path); e2 != nil {
				db.log.Printf("[CRITICAL] Failed to remove database file %s: %s\n",
					db.path,
					e2.Error())
			}
			return nil, err
		}
		db.log.Printf("[INFO] Database at %s has been initialized\n",
			path)
	}

	return db, nil
} // func Open(path string) (*Database, error)

func (db *Database) initialize() error {
	var (
		err error
		tx  *sql.Tx
	)

	if common.Debug {
		db.log.Printf("[DEBUG] Initialize fresh database at %s\n",
			db.path)
	}

	if tx, err = db.db.Begin(); err != nil {
		db.log.Printf("[ERROR] Cannot begin transaction: %s\n",
			err.Error())
		return err
	}

	for _, q := range qinit {
		db.log.Printf("[TRACE] Execute init query:\n%s\n",
			q)
		if _, err = tx.Exec(q); err != nil {
			db.log.Printf("[ERROR] Cannot execute init query: %s\n%s\n",
				err.Error(),
				q)
			if rbErr := tx.Rollback(); rbErr != nil {
				db.log.Printf("[CANTHAPPEN] Cannot rollback transaction: %s\n",
					rbErr.Error())
				return rbErr
			}
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		db.log.Printf("[CANTHAPPEN] Failed to commit init transaction: %s\n",
			err.Error())
		return err
	}

	return nil
} // func (db *Database) initialize() error

// Close closes the database.
// If there is a pending transaction, it is rolled back.
func (db *Database) Close() error {
	var err error

	if db.tx != nil {
		if err = db.tx.Rollback(); err != nil {
			db.log.Printf("[CRITICAL] Cannot roll back pending transaction: %s\n",
				err.Error())
			return err
		}
		db.tx = nil
	}

	for key, stmt := range db.queries {
		if err = stmt.Close(); err != nil {
			db.log.Printf("[CRITICAL] Cannot close statement handle %s: %s\n",
				key,
				err.Error())
			return err
		}
		delete(db.queries, key)
	}

	if err = db.db.Close(); err != nil {
		db.log.Printf("[CRITICAL] Cannot close database: %s\n",
			err.Error())
	}

	db.db = nil
	return nil
} // func (db *Database) Close() error

func (db *Database) getQuery(id query.ID) (*sql.Stmt, error) {
	var (
		stmt  *sql.Stmt
		found bool
		err   error
	)

	if stmt, found = db.queries[id]; found {
		return stmt, nil
	} else if _, found = qdb[id]; !found {
		return nil, fmt.Errorf("Unknown Query %d",
			id)
	}

	db.log.Printf("[TRACE] Prepare query %s\n", id)

PREPARE_QUERY:
	if stmt, err = db.db.Prepare(qdb[id]); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto PREPARE_QUERY
		}

		db.log.Printf("[ERROR] Cannot parse query %s: %s\n%s\n",
			id,
			err.Error(),
			qdb[id])
		return nil, err
	}

	db.queries[id] = stmt
	return stmt, nil
} // func (db *Database) getQuery(query.ID) (*sql.Stmt, error)

// prepare returns the statement for the given query, bound to the running
// transaction if there is one.
func (db *Database) prepare(qid query.ID) (*sql.Stmt, error) {
	var (
		err  error
		stmt *sql.Stmt
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Failed to prepare query %s: %s\n",
			qid,
			err.Error())
		return nil, err
	} else if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

	return stmt, nil
} // func (db *Database) prepare(qid query.ID) (*sql.Stmt, error)

// PerformMaintenance performs some maintenance operations on the database.
// It cannot be called while a transaction is in progress and will block
// pretty much all access to the database while it is running.
func (db *Database) PerformMaintenance() error {
	var (
		err      error
		mQueries = []string{
			"PRAGMA wal_checkpoint(TRUNCATE)",
			"VACUUM",
			"REINDEX",
			"ANALYZE",
		}
	)

	if db.tx != nil {
		return ErrTxInProgress
	}

	for _, q := range mQueries {
		if _, err = db.db.Exec(q); err != nil {
			db.log.Printf("[ERROR] Failed to execute %s: %s\n",
				q,
				err.Error())
		}
	}

	return nil
} // func (db *Database) PerformMaintenance() error

// Begin begins an explicit database transaction.
// Only one transaction can be in progress at once, attempting to start one,
// while another transaction is already in progress will yield ErrTxInProgress.
func (db *Database) Begin() error {
	var err error

	db.log.Printf("[DEBUG] Database#%d Begin Transaction\n",
		db.id)

	if db.tx != nil {
		return ErrTxInProgress
	}

BEGIN_TX:
	for db.tx == nil {
		if db.tx, err = db.db.Begin(); err != nil {
			if worthARetry(err) {
				waitForRetry()
				continue BEGIN_TX
			}

			db.log.Printf("[ERROR] Failed to start transaction: %s\n",
				err.Error())
			return err
		}
	}

	return nil
} // func (db *Database) Begin() error

// Rollback terminates a pending transaction, undoing any changes to the
// database made during that transaction.
// If no transaction is active, it returns ErrNoTxInProgress
func (db *Database) Rollback() error {
	var err error

	db.log.Printf("[DEBUG] Database#%d Roll back Transaction\n",
		db.id)

	if db.tx == nil {
		return ErrNoTxInProgress
	} else if err = db.tx.Rollback(); err != nil {
		return fmt.Errorf("Cannot roll back database transaction: %w",
			err)
	}

	db.tx = nil
	return nil
} // func (db *Database) Rollback() error

// Commit ends the active transaction, making any changes made during that
// transaction permanent and visible to other connections.
// If no transaction is active, it returns ErrNoTxInProgress
func (db *Database) Commit() error {
	var err error

	db.log.Printf("[DEBUG] Database#%d Commit Transaction\n",
		db.id)

	if db.tx == nil {
		return ErrNoTxInProgress
	} else if err = db.tx.Commit(); err != nil {
		return fmt.Errorf("Cannot commit transaction: %w",
			err)
	}

	db.tx = nil
	return nil
} // func (db *Database) Commit() error

// ActionAdd adds an Action to the journal.
func (db *Database) ActionAdd(a *model.Action) error {
	const qid query.ID = query.ActionAdd
	var (
		err  error
		stmt *sql.Stmt
		rows *sql.Rows
	)

	if stmt, err = db.prepare(qid); err != nil {
		return err
	}

EXEC_QUERY:
	if rows, err = stmt.Query(
		a.Session,
		a.Kind,
		a.CameraID.String(),
		a.Detail,
		a.OK,
		a.Timestamp.Unix()); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		err = fmt.Errorf("Cannot add %s of camera %q to journal: %w",
			a.Kind,
			a.CameraID,
			err)
		db.log.Printf("[ERROR] %s\n", err.Error())
		return err
	}

	defer rows.Close() // nolint: errcheck

	var id int64

	if !rows.Next() {
		// CANTHAPPEN
		db.log.Printf("[ERROR] Query %s did not return a value\n",
			qid)
		return fmt.Errorf("Query %s did not return a value", qid)
	} else if err = rows.Scan(&id); err != nil {
		err = fmt.Errorf("Failed to get ID for newly added Action: %w",
			err)
		db.log.Printf("[ERROR] %s\n", err.Error())
		return err
	}

	a.ID = id
	return nil
} // func (db *Database) ActionAdd(a *model.Action) error

// ActionGetRecent returns the most recent Actions, newest first.
func (db *Database) ActionGetRecent(limit int) ([]*model.Action, error) {
	return db.actionQuery(query.ActionGetRecent, limit)
} // func (db *Database) ActionGetRecent(limit int) ([]*model.Action, error)

// ActionGetByCamera returns the most recent Actions involving the given
// Camera, newest first.
func (db *Database) ActionGetByCamera(id model.CameraID, limit int) ([]*model.Action, error) {
	return db.actionQuery(query.ActionGetByCamera, id.String(), limit)
} // func (db *Database) ActionGetByCamera(id model.CameraID, limit int) ([]*model.Action, error)

// ActionGetBySession returns the most recent Actions of a dashboard session,
// newest first.
func (db *Database) ActionGetBySession(session string, limit int) ([]*model.Action, error) {
	return db.actionQuery(query.ActionGetBySession, session, limit)
} // func (db *Database) ActionGetBySession(session string, limit int) ([]*model.Action, error)

func (db *Database) actionQuery(qid query.ID, args ...any) ([]*model.Action, error) {
	var (
		err  error
		stmt *sql.Stmt
		rows *sql.Rows
	)

	if limit, ok := args[len(args)-1].(int); ok && limit <= 0 {
		return nil, ErrInvalidValue
	} else if stmt, err = db.prepare(qid); err != nil {
		return nil, err
	}

EXEC_QUERY:
	if rows, err = stmt.Query(args...); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		err = fmt.Errorf("Query %s failed: %w", qid, err)
		db.log.Printf("[ERROR] %s\n", err.Error())
		return nil, err
	}

	defer rows.Close() // nolint: errcheck,gosec
	var actions = make([]*model.Action, 0)

	for rows.Next() {
		var (
			stamp int64
			kind  uint8
			camID string
			a     = new(model.Action)
		)

		if err = rows.Scan(&a.ID, &a.Session, &kind, &camID, &a.Detail, &a.OK, &stamp); err != nil {
			err = fmt.Errorf("Failed to scan row: %w", err)
			db.log.Printf("[ERROR] %s\n", err.Error())
			return nil, err
		}

		a.Kind = action.Kind(kind)
		a.CameraID = model.CameraID(camID)
		a.Timestamp = time.Unix(stamp, 0)
		actions = append(actions, a)
	}

	return actions, rows.Err()
} // func (db *Database) actionQuery(qid query.ID, args ...any) ([]*model.Action, error)

// ActionCount returns the number of Actions in the journal.
func (db *Database) ActionCount() (int64, error) {
	const qid query.ID = query.ActionCount
	var (
		err  error
		stmt *sql.Stmt
		cnt  int64
	)

	if stmt, err = db.prepare(qid); err != nil {
		return 0, err
	}

EXEC_QUERY:
	if err = stmt.QueryRow().Scan(&cnt); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		err = fmt.Errorf("Cannot count Actions: %w", err)
		db.log.Printf("[ERROR] %s\n", err.Error())
		return 0, err
	}

	return cnt, nil
} // func (db *Database) ActionCount() (int64, error)

// ActionPurge removes all Actions older than the given time. It returns the
// number of Actions removed.
func (db *Database) ActionPurge(before time.Time) (int64, error) {
	const qid query.ID = query.ActionPurge
	var (
		err  error
		stmt *sql.Stmt
		res  sql.Result
		cnt  int64
	)

	if stmt, err = db.prepare(qid); err != nil {
		return 0, err
	}

EXEC_QUERY:
	if res, err = stmt.Exec(before.Unix()); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		err = fmt.Errorf("Cannot purge Actions before %s: %w",
			before.Format(common.TimestampFormat),
			err)
		db.log.Printf("[ERROR] %s\n", err.Error())
		return 0, err
	} else if cnt, err = res.RowsAffected(); err != nil {
		err = fmt.Errorf("Failed to query query result for number of affected rows: %w",
			err)
		db.log.Printf("[ERROR] %s\n", err.Error())
		return 0, err
	}

	return cnt, nil
} // func (db *Database) ActionPurge(before time.Time) (int64, error)
