// /home/krylon/go/src/github.com/blicero/camdash/ping/ping.go
// -*- mode: go; coding: utf-8; -*-
// Created on 07. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-13 18:43:10 krylon>

// Package ping checks if a camera answers on its IP address.
package ping

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/blicero/camdash/common"
	"github.com/blicero/camdash/logdomain"
	"github.com/blicero/camdash/model"
	"github.com/blicero/camdash/settings"
	probing "github.com/prometheus-community/pro-bing"
)

// ErrNoAddress is returned when asked to ping a camera without an address.
var ErrNoAddress = errors.New("camera has no IP address")

// Result is the outcome of pinging a camera.
type Result struct {
	CameraID model.CameraID `json:"id"`
	Addr     string         `json:"addr"`
	Alive    bool           `json:"alive"`
	Sent     int            `json:"sent"`
	Recv     int            `json:"recv"`
	Loss     float64        `json:"loss"`
	AvgRtt   time.Duration  `json:"avg_rtt"`
}

// Pinger pings cameras.
type Pinger struct {
	log      *log.Logger
	Count    int
	Interval time.Duration
	Timeout  time.Duration
}

// Create creates a new Pinger, using the Count, Interval and Timeout from
// the settings.
func Create() (*Pinger, error) {
	var (
		err error
		p   = &Pinger{
			Count:    int(settings.Settings.PingCount),
			Interval: settings.Settings.PingInterval,
			Timeout:  settings.Settings.PingTimeout,
		}
	)

	if p.log, err = common.GetLogger(logdomain.Ping); err != nil {
		return nil, err
	}

	return p, nil
} // func Create() (*Pinger, error)

// Ping pings the given Camera's IP address.
func (p *Pinger) Ping(ctx context.Context, c *model.Camera) (*Result, error) {
	var (
		err error
		res *Result
	)

	if res, err = p.PingAddr(ctx, c.IPAddress); err != nil {
		return nil, fmt.Errorf("Cannot ping camera %s (%s): %w",
			c.ID,
			c.Name,
			err)
	}

	res.CameraID = c.ID

	if res.Alive {
		p.log.Printf("[DEBUG] Camera %s is alive\n",
			c.Name)
	} else {
		p.log.Printf("[TRACE] Camera %s is offline\n",
			c.Name)
	}

	return res, nil
} // func (p *Pinger) Ping(ctx context.Context, c *model.Camera) (*Result, error)

// PingAddr pings an address. An address that does not answer is not an
// error, the Result says so.
func (p *Pinger) PingAddr(ctx context.Context, addr string) (*Result, error) {
	var (
		err   error
		pp    *probing.Pinger
		stats *probing.Statistics
	)

	if addr = strings.TrimSpace(addr); addr == "" {
		return nil, ErrNoAddress
	} else if pp, err = probing.NewPinger(addr); err != nil {
		p.log.Printf("[ERROR] Failed to create Pinger for %s: %s\n",
			addr,
			err.Error())
		return nil, err
	}

	pp.Interval = p.Interval
	pp.Timeout = p.Timeout
	pp.Count = p.Count

	if err = pp.RunWithContext(ctx); err != nil {
		p.log.Printf("[ERROR] Failed to run Pinger on %s: %s\n",
			addr,
			err.Error())
		return nil, err
	}

	stats = pp.Statistics()
	p.log.Printf("[TRACE] %s - Packet loss is %f%% (%d/%d)\n",
		addr,
		stats.PacketLoss,
		stats.PacketsRecv,
		stats.PacketsSent)

	return &Result{
		Addr:   addr,
		Alive:  stats.PacketsRecv > 0,
		Sent:   stats.PacketsSent,
		Recv:   stats.PacketsRecv,
		Loss:   stats.PacketLoss,
		AvgRtt: stats.AvgRtt,
	}, nil
} // func (p *Pinger) PingAddr(ctx context.Context, addr string) (*Result, error)
