// /home/krylon/go/src/github.com/blicero/camdash/tui/model.go
// -*- mode: go; coding: utf-8; -*-
// Created on 10. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-14 22:10:37 krylon>

// Package tui implements a terminal frontend for the dashboard.
package tui

import (
	"context"
	"fmt"
	"log"
	"slices"

	"github.com/blicero/camdash/common"
	"github.com/blicero/camdash/dashboard"
	"github.com/blicero/camdash/logdomain"
	"github.com/blicero/camdash/model"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const help = "/ search • s status • l location • ←/→ page • g/G first/last • + rows • t toggle • d delete • r reload • q quit"

// Messages sent back by commands once a request has finished.
type (
	loadedMsg  struct{ err error }
	toggledMsg struct {
		id  model.CameraID
		err error
	}
	deletedMsg struct{ err error }
)

// Model is the bubbletea model of the terminal dashboard. All state lives
// in the Controller, the Model only keeps what is needed to draw it.
type Model struct {
	ctl       *dashboard.Controller
	log       *log.Logger
	table     table.Model
	search    textinput.Model
	searching bool
	ids       []model.CameraID
	info      string
	err       string
	width     int
	height    int
}

// New creates a Model that drives the given Controller.
func New(ctl *dashboard.Controller) (Model, error) {
	var (
		err error
		m   = Model{ctl: ctl}
	)

	if m.log, err = common.GetLogger(logdomain.TUI); err != nil {
		return m, err
	}

	m.table = table.New(
		table.WithColumns(columns(0)),
		table.WithFocused(true),
		table.WithHeight(model.DefaultPageSize),
	)
	m.table.SetStyles(tableStyles())

	m.search = textinput.New()
	m.search.Placeholder = "Search by name..."
	m.search.Prompt = "Search: "
	m.search.CharLimit = 64

	m.refresh()

	return m, nil
} // func New(ctl *dashboard.Controller) (Model, error)

// Run starts the terminal UI and blocks until the user quits.
func Run(ctl *dashboard.Controller) error {
	var (
		err error
		m   Model
	)

	if m, err = New(ctl); err != nil {
		return err
	}

	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
} // func Run(ctl *dashboard.Controller) error

func columns(width int) []table.Column {
	var nameWidth = 24

	if width > 100 {
		nameWidth += (width - 100) / 2
	}

	return []table.Column{
		{Title: "Name", Width: nameWidth},
		{Title: "Model", Width: 16},
		{Title: "Location", Width: 14},
		{Title: "IP Address", Width: 15},
		{Title: "Resolution", Width: 10},
		{Title: "Status", Width: 10},
	}
} // func columns(width int) []table.Column

// Init starts the initial load of the camera list.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), textinput.Blink)
} // func (m Model) Init() tea.Cmd

func (m Model) loadCmd() tea.Cmd {
	var ctl = m.ctl
	return func() tea.Msg {
		return loadedMsg{err: ctl.Load(context.Background())}
	}
} // func (m Model) loadCmd() tea.Cmd

func (m Model) toggleCmd(id model.CameraID) tea.Cmd {
	var ctl = m.ctl
	return func() tea.Msg {
		return toggledMsg{id: id, err: ctl.Toggle(context.Background(), id)}
	}
} // func (m Model) toggleCmd(id model.CameraID) tea.Cmd

func (m Model) deleteCmd() tea.Cmd {
	var ctl = m.ctl
	return func() tea.Msg {
		return deletedMsg{err: ctl.ConfirmDelete(context.Background())}
	}
} // func (m Model) deleteCmd() tea.Cmd

// refresh copies the visible page of the Controller's View into the table.
func (m *Model) refresh() {
	var (
		v    = m.ctl.View()
		rows = make([]table.Row, len(v.Cameras))
	)

	m.ids = make([]model.CameraID, len(v.Cameras))

	for i, cam := range v.Cameras {
		m.ids[i] = cam.ID
		rows[i] = table.Row{
			cam.Name,
			cam.Model,
			cam.Location,
			cam.IPAddress,
			cam.Resolution,
			statusText(cam.Status),
		}
	}

	m.table.SetRows(rows)
	// A table created without rows starts with its cursor at -1.
	if c := m.table.Cursor(); c < 0 && len(rows) > 0 {
		m.table.SetCursor(0)
	} else if c >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
} // func (m *Model) refresh()

// selected returns the ID of the camera under the cursor.
func (m *Model) selected() (model.CameraID, bool) {
	var c = m.table.Cursor()

	if c < 0 || c >= len(m.ids) {
		return "", false
	}

	return m.ids[c], true
} // func (m *Model) selected() (model.CameraID, bool)

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case loadedMsg:
		if msg.err != nil {
			m.err = fmt.Sprintf("Failed to load cameras: %s", msg.err.Error())
		} else {
			m.err = ""
			m.info = fmt.Sprintf("Loaded %d cameras", m.ctl.View().Total)
		}
		m.refresh()
		return m, nil

	case toggledMsg:
		if msg.err != nil {
			m.err = fmt.Sprintf("Failed to update camera %s: %s",
				msg.id,
				msg.err.Error())
		} else {
			m.err = ""
			m.info = fmt.Sprintf("Updated camera %s", msg.id)
		}
		m.refresh()
		return m, nil

	case deletedMsg:
		if msg.err != nil {
			m.err = fmt.Sprintf("Failed to delete camera: %s", msg.err.Error())
		} else {
			m.err = ""
			m.info = "Camera was deleted"
		}
		m.refresh()
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetColumns(columns(msg.Width))
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		} else if m.searching {
			return m.updateSearch(msg)
		} else if m.ctl.View().DeleteOpen {
			return m.updateConfirm(msg)
		}

		return m.updateKey(msg)
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
} // func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd)

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		m.searching = false
		m.search.Blur()
		m.table.Focus()
		return m, nil
	}

	m.search, cmd = m.search.Update(msg)
	m.ctl.SetSearch(m.search.Value())
	m.refresh()

	return m, cmd
} // func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd)

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		return m, m.deleteCmd()
	case "n", "esc":
		m.ctl.CancelDelete()
		m.info = "Delete was cancelled"
	}

	return m, nil
} // func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd)

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var (
		cmd tea.Cmd
		v   = m.ctl.View()
	)

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "/":
		m.searching = true
		m.table.Blur()
		return m, m.search.Focus()
	case "esc":
		m.search.SetValue("")
		m.ctl.SetSearch("")
	case "s":
		m.ctl.SetStatusFilter(nextStatus(v.Status))
	case "l":
		m.ctl.SetLocationFilter(nextLocation(v.Location, v.Locations))
	case "right", "n":
		m.ctl.Navigate(dashboard.Next)
	case "left", "p":
		m.ctl.Navigate(dashboard.Prev)
	case "g", "home":
		m.ctl.Navigate(dashboard.First)
	case "G", "end":
		m.ctl.Navigate(dashboard.Last)
	case "+":
		m.ctl.SetPerPage(nextPageSize(v.Page.PerPage))
		m.table.SetHeight(m.ctl.View().Page.PerPage)
	case "r":
		m.info = "Reloading..."
		return m, m.loadCmd()
	case "t", " ":
		if id, ok := m.selected(); ok {
			m.info = fmt.Sprintf("Updating camera %s...", id)
			return m, m.toggleCmd(id)
		}
		return m, nil
	case "d":
		if id, ok := m.selected(); ok {
			if err := m.ctl.RequestDelete(id); err != nil {
				m.log.Printf("[ERROR] Cannot delete camera %s: %s\n",
					id,
					err.Error())
				m.err = err.Error()
			}
		}
		return m, nil
	default:
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	m.refresh()
	return m, nil
} // func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd)

func nextStatus(cur string) string {
	switch cur {
	case model.All:
		return string(model.Active)
	case string(model.Active):
		return string(model.Inactive)
	default:
		return model.All
	}
} // func nextStatus(cur string) string

func nextLocation(cur string, locations []string) string {
	var idx = slices.Index(locations, cur)

	if idx == len(locations)-1 {
		return model.All
	}

	return locations[idx+1]
} // func nextLocation(cur string, locations []string) string

func nextPageSize(cur int) int {
	var idx = slices.Index(model.PageSizes, cur)
	return model.PageSizes[(idx+1)%len(model.PageSizes)]
} // func nextPageSize(cur int) int

// View renders the dashboard.
func (m Model) View() string {
	var (
		v     = m.ctl.View()
		parts = make([]string, 0, 8)
		body  string
	)

	parts = append(parts,
		styleHeader.Render(fmt.Sprintf("%s %s - Cameras", common.AppName, common.Version)))

	if m.searching || v.Search != "" {
		parts = append(parts, m.search.View())
	}

	parts = append(parts, styleSubtitle.Render(fmt.Sprintf(
		"Status: %s • Location: %s • %s active, %d inactive",
		v.Status,
		v.Location,
		styleActive.Render(fmt.Sprintf("%d", v.Active)),
		v.Inactive)))

	if v.Loading && !v.Loaded {
		body = styleEmpty.Render("Loading cameras...")
	} else if v.Empty() {
		body = styleEmpty.Render("No cameras found matching the current criteria.")
	} else {
		body = m.table.View()
	}

	parts = append(parts,
		styleCard.Render(body),
		styleSubtitle.Render(fmt.Sprintf("%s • page %d/%d • %d rows per page",
			v.Page.Label(),
			v.Page.Current,
			max(v.Page.Count, 1),
			v.Page.PerPage)))

	if v.DeleteOpen && v.DeleteTarget != nil {
		parts = append(parts, styleModal.Render(fmt.Sprintf(
			"Delete Camera\n\nAre you sure you want to delete %s?\n\n[y] Delete   [n] Cancel",
			v.DeleteTarget.Name)))
	}

	if m.err != "" {
		parts = append(parts, styleError.Render(m.err))
	} else if v.LoadErr != "" {
		parts = append(parts, styleError.Render("Could not load cameras: "+v.LoadErr))
	} else if m.info != "" {
		parts = append(parts, styleInfo.Render(m.info))
	}

	parts = append(parts, styleHelp.Render(help))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
} // func (m Model) View() string
