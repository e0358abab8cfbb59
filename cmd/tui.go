// /home/krylon/go/src/github.com/blicero/camdash/cmd/tui.go
// -*- mode: go; coding: utf-8; -*-
// Created on 11. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-13 19:47:06 krylon>

package cmd

import (
	"github.com/blicero/camdash/client"
	"github.com/blicero/camdash/common"
	"github.com/blicero/camdash/dashboard"
	"github.com/blicero/camdash/database"
	"github.com/blicero/camdash/settings"
	"github.com/blicero/camdash/tui"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Run the dashboard in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		var ctl, cleanup, err = newController("tui")
		if err != nil {
			return err
		}
		defer cleanup()

		return tui.Run(ctl)
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
} // func init()

// newController creates a Controller for the terminal and command line
// frontends. Log output goes only to the log file, so it does not mess up
// the display. The returned function releases the Controller's resources.
func newController(session string) (*dashboard.Controller, func(), error) {
	common.Quiet = true

	var (
		err     error
		api     *client.Client
		journal *database.Journal
		ctl     *dashboard.Controller
		opt     = dashboard.Options{
			Session:      session,
			PerPage:      settings.Settings.ItemsPerPage,
			RemoteDelete: settings.Settings.RemoteDelete,
		}
	)

	if api, err = newClient(nil); err != nil {
		return nil, nil, err
	} else if journal, err = openJournal(); err != nil {
		return nil, nil, err
	} else if journal != nil {
		opt.Journal = journal
	}

	var release = func() {
		if journal != nil {
			journal.Close() // nolint: errcheck
		}
	}

	if ctl, err = dashboard.New(api, opt); err != nil {
		release()
		return nil, nil, err
	}

	return ctl, func() {
		ctl.Close()
		release()
	}, nil
} // func newController(session string) (*dashboard.Controller, func(), error)
