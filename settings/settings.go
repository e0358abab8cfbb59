// /home/krylon/go/src/github.com/blicero/camdash/settings/settings.go
// -*- mode: go; coding: utf-8; -*-
// Created on 02. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-12 09:51:26 krylon>

// Package settings deals with the configuration file. Duh.
package settings

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/blicero/camdash/common"
	"github.com/blicero/krylib"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml"
)

const defaultConfig = `
# Time-stamp: <>
[Global]
Debug = true

[Web]
Port = 3820
SessionTimeout = 1800

[API]
# URL and Token are usually taken from the environment,
# i.e. CAMDASH_URL and CAMDASH_APITOKEN.
URL = ""
Token = ""
Timeout = 10
RemoteDelete = false
DeletePath = "/delete/camera"

[Dashboard]
ItemsPerPage = 10

[Ping]
Count = 3
Interval = 1000
Timeout = 5

[Journal]
Enabled = true
MaxAge = 30
`

// Names of the environment variables that override the API settings.
const (
	EnvURL   = "CAMDASH_URL"
	EnvToken = "CAMDASH_APITOKEN"
	EnvDebug = "CAMDASH_DEBUG"
)

// ErrNoURL indicates that no base URL for the camera API was configured.
var ErrNoURL = errors.New("No base URL for the camera API was configured")

// Options defines several configurable parameters used throughout the application.
type Options struct {
	Debug          bool
	WebPort        int64
	SessionTimeout time.Duration
	APIURL         string
	APIToken       string
	APITimeout     time.Duration
	RemoteDelete   bool
	DeletePath     string
	ItemsPerPage   int
	PingCount      int64
	PingInterval   time.Duration
	PingTimeout    time.Duration
	JournalEnabled bool
	JournalMaxAge  time.Duration
}

// Settings holds the configuration that is currently in effect.
// Parse fills it in, until then it holds the built-in defaults.
var Settings = Options{
	Debug:          true,
	WebPort:        common.DefaultPort,
	SessionTimeout: time.Minute * 30,
	APITimeout:     time.Second * 10,
	DeletePath:     "/delete/camera",
	ItemsPerPage:   10,
	PingCount:      3,
	PingInterval:   time.Second,
	PingTimeout:    time.Second * 5,
	JournalEnabled: true,
	JournalMaxAge:  time.Hour * 24 * 30,
}

// Parse reads the configuration file at the given path.
// If path is an empty string, it uses the global default path.
// Values from the environment (or a .env file in the current directory)
// take precedence over the configuration file.
//
// On success, the global Settings are replaced with the result.
func Parse(path string) (*Options, error) {
	if path == "" {
		path = common.CfgPath
	}

	var (
		err  error
		ok   bool
		cfg  *Options
		tree *toml.Tree
	)

	if ok, err = krylib.Fexists(path); err != nil {
		return nil, err
	} else if !ok {
		if err = createDefaultConfig(path); err != nil {
			return nil, err
		}
	}

	if tree, err = toml.LoadFile(path); err != nil {
		return nil, err
	}

	cfg = new(Options)

	cfg.Debug = getBool(tree, "Global.Debug", true)
	cfg.WebPort = getInt(tree, "Web.Port", common.DefaultPort)
	cfg.SessionTimeout = time.Duration(getInt(tree, "Web.SessionTimeout", 1800)) * time.Second
	cfg.APIURL = getString(tree, "API.URL", "")
	cfg.APIToken = getString(tree, "API.Token", "")
	cfg.APITimeout = time.Duration(getInt(tree, "API.Timeout", 10)) * time.Second
	cfg.RemoteDelete = getBool(tree, "API.RemoteDelete", false)
	cfg.DeletePath = getString(tree, "API.DeletePath", "/delete/camera")
	cfg.ItemsPerPage = int(getInt(tree, "Dashboard.ItemsPerPage", 10))
	cfg.PingCount = getInt(tree, "Ping.Count", 3)
	cfg.PingInterval = time.Duration(getInt(tree, "Ping.Interval", 1000)) * time.Millisecond
	cfg.PingTimeout = time.Duration(getInt(tree, "Ping.Timeout", 5)) * time.Second
	cfg.JournalEnabled = getBool(tree, "Journal.Enabled", true)
	cfg.JournalMaxAge = time.Duration(getInt(tree, "Journal.MaxAge", 30)) * time.Hour * 24

	cfg.applyEnv()

	Settings = *cfg
	common.Debug = cfg.Debug

	return cfg, nil
} // func Parse(path string) (*Options, error)

// Validate checks that the configuration is usable for talking to the API.
func (o *Options) Validate() error {
	if o.APIURL == "" {
		return fmt.Errorf("%w (set %s in the environment or API.URL in the configuration file)",
			ErrNoURL,
			EnvURL)
	} else if o.ItemsPerPage != 10 && o.ItemsPerPage != 20 {
		return fmt.Errorf("Invalid value for Dashboard.ItemsPerPage: %d (must be 10 or 20)",
			o.ItemsPerPage)
	}

	return nil
} // func (o *Options) Validate() error

// applyEnv loads the .env file, if there is one, and copies the values we
// care about into the receiver.
func (o *Options) applyEnv() {
	_ = godotenv.Load() // A missing .env file is fine.

	if v := os.Getenv(EnvURL); v != "" {
		o.APIURL = v
	}

	if v := os.Getenv(EnvToken); v != "" {
		o.APIToken = v
	}

	if v := os.Getenv(EnvDebug); v != "" {
		if dbg, err := strconv.ParseBool(v); err == nil {
			o.Debug = dbg
		}
	}
} // func (o *Options) applyEnv()

func getInt(tree *toml.Tree, key string, def int64) int64 {
	if v, ok := tree.GetDefault(key, def).(int64); ok {
		return v
	}

	return def
} // func getInt(tree *toml.Tree, key string, def int64) int64

func getBool(tree *toml.Tree, key string, def bool) bool {
	if v, ok := tree.GetDefault(key, def).(bool); ok {
		return v
	}

	return def
} // func getBool(tree *toml.Tree, key string, def bool) bool

func getString(tree *toml.Tree, key, def string) string {
	if v, ok := tree.GetDefault(key, def).(string); ok {
		return v
	}

	return def
} // func getString(tree *toml.Tree, key, def string) string

func createDefaultConfig(path string) error {
	var (
		err     error
		written int
		fh      *os.File
	)

	if fh, err = os.Create(path); err != nil {
		return err
	}

	defer fh.Close()

	if written, err = fh.WriteString(defaultConfig); err != nil {
		return err
	} else if written != len(defaultConfig) {
		err = fmt.Errorf("Unexpected number of bytes written to config file: %d (expected %d)",
			written,
			len(defaultConfig))
		return err
	}

	return nil
} // func createDefaultConfig(path string) error
