// /home/krylon/go/src/github.com/blicero/camdash/cmd/serve.go
// -*- mode: go; coding: utf-8; -*-
// Created on 11. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-14 23:20:48 krylon>

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blicero/camdash/client"
	"github.com/blicero/camdash/common"
	"github.com/blicero/camdash/database"
	"github.com/blicero/camdash/logdomain"
	"github.com/blicero/camdash/metrics"
	"github.com/blicero/camdash/ping"
	"github.com/blicero/camdash/scheduler"
	"github.com/blicero/camdash/scheduler/task"
	"github.com/blicero/camdash/settings"
	"github.com/blicero/camdash/web"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web interface",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Address of the web interface (default [::1]:<Web.Port>)")
	rootCmd.AddCommand(serveCmd)
} // func init()

func serve() error {
	var (
		err     error
		reg     = metrics.New()
		api     *client.Client
		journal *database.Journal
		pinger  *ping.Pinger
		srv     *web.Server
		sched   *scheduler.Scheduler
		hk      scheduler.Housekeeper
	)

	fmt.Printf("%s %s - %s\n",
		common.AppName,
		common.Version,
		common.BuildStamp.Format(common.TimestampFormat))

	log, err := common.GetLogger(logdomain.Common)
	if err != nil {
		return err
	}

	if serveAddr == "" {
		serveAddr = fmt.Sprintf("[::1]:%d", settings.Settings.WebPort)
	}

	if api, err = newClient(reg); err != nil {
		return err
	} else if journal, err = openJournal(); err != nil {
		return fmt.Errorf("Cannot open activity journal %s: %w",
			common.DbPath,
			err)
	} else if pinger, err = ping.Create(); err != nil {
		log.Printf("[WARN] Ping is not available: %s\n", err.Error())
		pinger = nil
	}

	if journal != nil {
		defer journal.Close() // nolint: errcheck
		hk = journal
	}

	if srv, err = web.Create(serveAddr, web.Options{
		API:          api,
		Journal:      journal,
		Metrics:      reg,
		Pinger:       pinger,
		RemoteDelete: settings.Settings.RemoteDelete,
		PerPage:      settings.Settings.ItemsPerPage,
	}); err != nil {
		return fmt.Errorf("Error creating web interface on %s: %w",
			serveAddr,
			err)
	} else if sched, err = startScheduler(srv, hk); err != nil {
		return err
	}

	defer sched.Stop()

	go srv.Run()

	var ctx, stop = signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	log.Println("[INFO] Received signal, shutting down.")

	var sctx, cancel = context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = srv.Stop(sctx); err != nil {
		log.Printf("[ERROR] Failed to shut down web server: %s\n", err.Error())
		return err
	}

	return nil
} // func serve() error

// startScheduler starts the housekeeping loop. Entries that went stale
// while we were not running are purged right away instead of on the first
// tick.
func startScheduler(r scheduler.Reaper, hk scheduler.Housekeeper) (*scheduler.Scheduler, error) {
	var (
		err   error
		sched *scheduler.Scheduler
	)

	if sched, err = scheduler.Create(r, hk); err != nil {
		return nil, err
	}

	sched.Start()

	if hk != nil {
		sched.Schedule(task.JournalPurge)
	}

	return sched, nil
} // func startScheduler(r scheduler.Reaper, hk scheduler.Housekeeper) (*scheduler.Scheduler, error)
