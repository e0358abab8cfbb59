// /home/krylon/go/src/github.com/blicero/camdash/common/common.go
// -*- mode: go; coding: utf-8; -*-
// Created on 02. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-09 18:22:41 krylon>

// Package common contains constants and helpers used across the application.
package common

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/blicero/camdash/logdomain"
	"github.com/hashicorp/logutils"
)

// Debug, if true, causes the application to log more messages.
var Debug = true

// Quiet, if true, keeps loggers from writing to stdout. The log file is
// still written to, if it is open. The terminal UI needs this.
var Quiet bool

// AppName is the name of the application.
const AppName = "camdash"

// Version is the version number to display.
const Version = "0.3.1"

// DefaultPort is the TCP port the web interface listens on by default.
const DefaultPort = 3820

// BuildStamp is the time the binary was built.
var BuildStamp = time.Unix(0, 0)

// TimestampFormat is the format string used to render timestamps.
const TimestampFormat = "2006-01-02 15:04:05"

// SuffixPattern matches the suffix of a file name, including the dot.
var SuffixPattern = regexp.MustCompile(`([.][^.]+)$`)

// LogLevels are the names of the log levels supported by the logger.
var LogLevels = []logutils.LogLevel{
	"TRACE",
	"DEBUG",
	"INFO",
	"WARN",
	"ERROR",
	"CRITICAL",
	"CANTHAPPEN",
	"SILENT",
}

// BaseDir is the folder where all application-specific files (database,
// log files, etc.) are stored.
// LogPath is the file to the log path.
// DbPath is the path of the main database.
// CfgPath is the path of the configuration file.
var (
	BaseDir = filepath.Join(
		os.Getenv("HOME"),
		fmt.Sprintf(".%s.d", strings.ToLower(AppName)))
	LogPath = filepath.Join(BaseDir, fmt.Sprintf("%s.log", strings.ToLower(AppName)))
	DbPath  = filepath.Join(BaseDir, fmt.Sprintf("%s.db", strings.ToLower(AppName)))
	CfgPath = filepath.Join(BaseDir, fmt.Sprintf("%s.toml", strings.ToLower(AppName)))
)

var (
	logLock sync.Mutex
	logFile *os.File
)

// SetBaseDir sets the BaseDir and related variables.
func SetBaseDir(path string) error {
	logLock.Lock()
	defer logLock.Unlock()

	fmt.Printf("Setting BASE_DIR to %s\n", path)

	BaseDir = path
	LogPath = filepath.Join(BaseDir, fmt.Sprintf("%s.log", strings.ToLower(AppName)))
	DbPath = filepath.Join(BaseDir, fmt.Sprintf("%s.db", strings.ToLower(AppName)))
	CfgPath = filepath.Join(BaseDir, fmt.Sprintf("%s.toml", strings.ToLower(AppName)))

	if logFile != nil {
		logFile.Close() // nolint: errcheck
		logFile = nil
	}

	return initAppLocked()
} // func SetBaseDir(path string) error

// InitApp performs some basic preparations for the application to run.
// Currently, this means creating the BaseDir folder and opening the log file.
func InitApp() error {
	logLock.Lock()
	defer logLock.Unlock()

	return initAppLocked()
} // func InitApp() error

func initAppLocked() error {
	var err error

	if err = os.MkdirAll(BaseDir, 0755); err != nil {
		return fmt.Errorf("Cannot create directory %s: %w",
			BaseDir,
			err)
	} else if logFile != nil {
		return nil
	} else if logFile, err = os.OpenFile(LogPath, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644); err != nil {
		logFile = nil
		return fmt.Errorf("Cannot open log file %s: %w",
			LogPath,
			err)
	}

	return nil
} // func initAppLocked() error

// GetLogger tries to create a named logger instance and return it.
// If the log file has not been opened by InitApp, the Logger writes to
// stdout only.
func GetLogger(dom logdomain.ID) (*log.Logger, error) {
	logLock.Lock()
	defer logLock.Unlock()

	var (
		writer   io.Writer         = os.Stdout
		minLevel logutils.LogLevel = "INFO"
		logName                    = fmt.Sprintf("%s.%s ", AppName, dom)
	)

	switch {
	case Quiet && logFile != nil:
		writer = logFile
	case Quiet:
		writer = io.Discard
	case logFile != nil:
		writer = io.MultiWriter(os.Stdout, logFile)
	}

	if Debug {
		minLevel = "TRACE"
	}

	var filter = &logutils.LevelFilter{
		Levels:   LogLevels,
		MinLevel: minLevel,
		Writer:   writer,
	}

	var logger = log.New(filter, logName, log.Ldate|log.Ltime|log.Lshortfile)

	return logger, nil
} // func GetLogger(dom logdomain.ID) (*log.Logger, error)
