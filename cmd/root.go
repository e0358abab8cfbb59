// /home/krylon/go/src/github.com/blicero/camdash/cmd/root.go
// -*- mode: go; coding: utf-8; -*-
// Created on 11. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-14 23:02:11 krylon>

// Package cmd implements the command line interface of camdash.
package cmd

import (
	"fmt"
	"os"

	"github.com/blicero/camdash/client"
	"github.com/blicero/camdash/common"
	"github.com/blicero/camdash/database"
	"github.com/blicero/camdash/metrics"
	"github.com/blicero/camdash/settings"
	"github.com/spf13/cobra"
)

const journalPoolSize = 4

var (
	cfgFile    string
	baseDir    string
	jsonOutput bool
	insecure   bool
)

var rootCmd = &cobra.Command{
	Use:   common.AppName,
	Short: "An admin dashboard for IP cameras",
	Long: `Browse, filter, activate, deactivate and delete the cameras known to
a camera management API, in the browser or in the terminal.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if baseDir != "" {
			if err = common.SetBaseDir(baseDir); err != nil {
				return err
			}
		}

		if err = common.InitApp(); err != nil {
			return err
		} else if _, err = settings.Parse(cfgFile); err != nil {
			return fmt.Errorf("Cannot read configuration: %w", err)
		}

		return nil
	},
}

// Execute runs the command line interface.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
} // func Execute()

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Configuration file (default is camdash.toml in the base directory)")
	rootCmd.PersistentFlags().StringVar(&baseDir, "basedir", "", "Directory for the log file, database and configuration")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")
	rootCmd.PersistentFlags().BoolVar(&insecure, "insecure", false, "Do not verify the API server's TLS certificate")
} // func init()

// newClient creates an API client from the current settings.
func newClient(m *metrics.Registry) (*client.Client, error) {
	var err error

	if err = settings.Settings.Validate(); err != nil {
		return nil, err
	}

	return client.New(client.Config{
		BaseURL:    settings.Settings.APIURL,
		Token:      settings.Settings.APIToken,
		Timeout:    settings.Settings.APITimeout,
		DeletePath: settings.Settings.DeletePath,
		Insecure:   insecure,
	}, m)
} // func newClient(m *metrics.Registry) (*client.Client, error)

// openJournal opens the activity journal, or returns nil if it is disabled.
func openJournal() (*database.Journal, error) {
	if !settings.Settings.JournalEnabled {
		return nil, nil
	}

	return database.OpenJournal(common.DbPath, journalPoolSize)
} // func openJournal() (*database.Journal, error)
