// /home/krylon/go/src/github.com/blicero/camdash/cmd/cameras.go
// -*- mode: go; coding: utf-8; -*-
// Created on 12. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-14 23:41:30 krylon>

package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/blicero/camdash/dashboard"
	"github.com/blicero/camdash/model"
	"github.com/blicero/camdash/ping"
	"github.com/blicero/camdash/settings"
	"github.com/spf13/cobra"
)

const cliSession = "cli"

// Flag values
var (
	listSearch   string
	listStatus   string
	listLocation string
	listPage     int
	listRows     int
	deleteYes    bool
)

var camerasCmd = &cobra.Command{
	Use:   "cameras",
	Short: "Manage cameras",
	Long:  `List cameras, switch them on or off, delete or ping them.`,
}

var camerasListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cameras",
	Example: `  camdash cameras list --status Active --location Lobby
  camdash cameras list --search garage --page 2 --rows 20`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var ctl, cleanup, err = loadController(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()

		if listSearch != "" {
			ctl.SetSearch(listSearch)
		}
		if !ctl.SetStatusFilter(listStatus) {
			return fmt.Errorf("Invalid status %q (must be All, Active or Inactive)", listStatus)
		}
		ctl.SetLocationFilter(listLocation)
		if !ctl.SetPerPage(listRows) {
			return fmt.Errorf("Invalid number of rows: %d", listRows)
		}
		ctl.GotoPage(listPage)

		return printView(os.Stdout, ctl.View())
	},
}

var camerasToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Activate an inactive camera or deactivate an active one",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var ctl, cleanup, err = loadController(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()

		var id = model.CameraID(args[0])

		if err = ctl.Toggle(cmd.Context(), id); err != nil {
			return err
		}

		var cam, _ = ctl.Camera(id)
		fmt.Printf("Camera %s (%s) is now %s\n", cam.ID, cam.Name, cam.Status)
		return nil
	},
}

var camerasDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a camera",
	Long: `Delete a camera through the API. This requires API.RemoteDelete to be
enabled in the configuration, otherwise there is nothing to delete outside
of a dashboard session.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !settings.Settings.RemoteDelete {
			return errors.New("Remote delete is disabled, set API.RemoteDelete = true to enable it")
		}

		var ctl, cleanup, err = loadController(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()

		var id = model.CameraID(args[0])

		if err = ctl.RequestDelete(id); err != nil {
			return err
		}

		var cam, _ = ctl.Camera(id)

		if !deleteYes {
			fmt.Printf("Not deleting %s (%s) without --yes\n", cam.ID, cam.Name)
			ctl.CancelDelete()
			return nil
		} else if err = ctl.ConfirmDelete(cmd.Context()); err != nil {
			return err
		}

		fmt.Printf("Camera %s (%s) was deleted\n", cam.ID, cam.Name)
		return nil
	},
}

var camerasPingCmd = &cobra.Command{
	Use:   "ping <id>",
	Short: "Check if a camera answers ICMP echo requests",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var ctl, cleanup, err = loadController(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()

		var (
			p   *ping.Pinger
			res *ping.Result
			cam model.Camera
			ok  bool
		)

		if cam, ok = ctl.Camera(model.CameraID(args[0])); !ok {
			return fmt.Errorf("%w: %s", dashboard.ErrNoSuchCamera, args[0])
		} else if p, err = ping.Create(); err != nil {
			return err
		} else if res, err = p.Ping(cmd.Context(), &cam); err != nil {
			return err
		}

		if jsonOutput {
			return writeJSON(os.Stdout, res)
		}

		fmt.Printf("%s (%s): alive=%t, %d/%d replies, %.0f%% loss, avg rtt %s\n",
			cam.Name,
			res.Addr,
			res.Alive,
			res.Recv,
			res.Sent,
			res.Loss,
			res.AvgRtt)
		return nil
	},
}

func init() {
	camerasListCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Only show cameras whose name contains this")
	camerasListCmd.Flags().StringVar(&listStatus, "status", model.All, "Only show cameras with this status (All, Active, Inactive)")
	camerasListCmd.Flags().StringVarP(&listLocation, "location", "l", model.All, "Only show cameras at this location")
	camerasListCmd.Flags().IntVarP(&listPage, "page", "p", 1, "Page to show")
	camerasListCmd.Flags().IntVarP(&listRows, "rows", "n", model.DefaultPageSize, "Rows per page (10 or 20)")

	camerasDeleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Really delete the camera")

	camerasCmd.AddCommand(camerasListCmd)
	camerasCmd.AddCommand(camerasToggleCmd)
	camerasCmd.AddCommand(camerasDeleteCmd)
	camerasCmd.AddCommand(camerasPingCmd)
	rootCmd.AddCommand(camerasCmd)
} // func init()

// loadController creates a Controller and loads the camera list.
func loadController(ctx context.Context) (*dashboard.Controller, func(), error) {
	var ctl, cleanup, err = newController(cliSession)
	if err != nil {
		return nil, nil, err
	} else if err = ctl.Load(ctx); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("Error fetching cameras: %w", err)
	}

	return ctl, cleanup, nil
} // func loadController(ctx context.Context) (*dashboard.Controller, func(), error)

func writeJSON(w io.Writer, v any) error {
	var enc = json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
} // func writeJSON(w io.Writer, v any) error

// printView writes the visible page of a View to w, as JSON or as a table.
func printView(w io.Writer, v dashboard.View) error {
	if jsonOutput {
		return writeJSON(w, v)
	} else if v.Empty() {
		_, err := fmt.Fprintln(w, "No cameras found matching the current criteria.")
		return err
	}

	var tw = tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tMODEL\tLOCATION\tIP\tRESOLUTION\tSTATUS")
	fmt.Fprintln(tw, "--\t----\t-----\t--------\t--\t----------\t------")

	for _, cam := range v.Cameras {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			cam.ID,
			cam.Name,
			cam.Model,
			cam.Location,
			cam.IPAddress,
			cam.Resolution,
			cam.Status)
	}

	fmt.Fprintf(tw, "\n%s\n", v.Page.Label())

	return tw.Flush()
} // func printView(w io.Writer, v dashboard.View) error
