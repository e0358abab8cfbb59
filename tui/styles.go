// /home/krylon/go/src/github.com/blicero/camdash/tui/styles.go
// -*- mode: go; coding: utf-8; -*-
// Created on 10. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-12 18:20:44 krylon>

package tui

import (
	"github.com/blicero/camdash/model"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Palette
var (
	colorAccent = lipgloss.Color("#A8D8EA")
	colorDeep   = lipgloss.Color("#596E79")
	colorAlert  = lipgloss.Color("#FF6B6B")
	colorGood   = lipgloss.Color("#4ECDC4")
	colorWarn   = lipgloss.Color("#FFE66D")
	colorMuted  = lipgloss.Color("#6c757d")
)

var (
	styleHeader = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(colorDeep).
			Padding(0, 1)

	styleSubtitle = lipgloss.NewStyle().
			Foreground(colorDeep).
			Italic(true)

	styleCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDeep).
			Padding(0, 1).
			Margin(0, 1)

	styleModal = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(colorAlert).
			Padding(1, 2).
			Margin(1, 2)

	styleEmpty  = lipgloss.NewStyle().Foreground(colorMuted).Italic(true).Padding(1, 2)
	styleError  = lipgloss.NewStyle().Foreground(colorAlert).Bold(true)
	styleInfo   = lipgloss.NewStyle().Foreground(colorWarn)
	styleHelp   = lipgloss.NewStyle().Foreground(colorMuted)
	styleActive = lipgloss.NewStyle().Foreground(colorGood).Bold(true)
)

func tableStyles() table.Styles {
	var s = table.DefaultStyles()

	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorDeep).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(colorAccent).
		Background(colorDeep).
		Bold(false)

	return s
} // func tableStyles() table.Styles

func statusText(s model.Status) string {
	if s.IsActive() {
		return "● " + string(s)
	}

	return "○ " + string(s)
} // func statusText(s model.Status) string
