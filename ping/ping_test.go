// /home/krylon/go/src/github.com/blicero/camdash/ping/ping_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 07. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-13 18:50:27 krylon>

package ping

import (
	"context"
	"errors"
	"testing"

	"github.com/blicero/camdash/model"
	"github.com/blicero/camdash/settings"
)

func TestCreate(t *testing.T) {
	var (
		err error
		p   *Pinger
	)

	if p, err = Create(); err != nil {
		t.Fatalf("Cannot create Pinger: %s", err.Error())
	} else if p.Count != int(settings.Settings.PingCount) {
		t.Errorf("Unexpected Count %d", p.Count)
	} else if p.Timeout != settings.Settings.PingTimeout {
		t.Errorf("Unexpected Timeout %s", p.Timeout)
	}
} // func TestCreate(t *testing.T)

func TestPingNoAddress(t *testing.T) {
	var (
		err error
		p   *Pinger
		cam = &model.Camera{ID: "1", Name: "Lobby"}
	)

	if p, err = Create(); err != nil {
		t.Fatalf("Cannot create Pinger: %s", err.Error())
	} else if _, err = p.Ping(context.Background(), cam); !errors.Is(err, ErrNoAddress) {
		t.Errorf("Expected ErrNoAddress, got %v", err)
	} else if _, err = p.PingAddr(context.Background(), "   "); !errors.Is(err, ErrNoAddress) {
		t.Errorf("Expected ErrNoAddress for blank address, got %v", err)
	}
} // func TestPingNoAddress(t *testing.T)
