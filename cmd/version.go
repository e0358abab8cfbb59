// /home/krylon/go/src/github.com/blicero/camdash/cmd/version.go
// -*- mode: go; coding: utf-8; -*-
// Created on 11. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-11 20:14:52 krylon>

package cmd

import (
	"fmt"

	"github.com/blicero/camdash/common"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s %s - %s\n",
			common.AppName,
			common.Version,
			common.BuildStamp.Format(common.TimestampFormat))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
} // func init()
