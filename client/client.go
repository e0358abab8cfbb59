// /home/krylon/go/src/github.com/blicero/camdash/client/client.go
// -*- mode: go; coding: utf-8; -*-
// Created on 03. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-12 20:33:19 krylon>

// Package client implements the HTTP client for the camera API.
package client

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/blicero/camdash/common"
	"github.com/blicero/camdash/logdomain"
	"github.com/blicero/camdash/metrics"
	"github.com/blicero/camdash/model"
	"github.com/go-resty/resty/v2"
)

// Endpoints of the camera API, relative to the base URL.
const (
	pathList          = "/fetch/cameras"
	pathStatus        = "/update/camera/status"
	defaultDeletePath = "/delete/camera"
	defaultTimeout    = 10 * time.Second
)

// Names of operations, used for logging and metrics.
const (
	OpList   = "list"
	OpStatus = "status"
	OpDelete = "delete"
)

// ErrNoBaseURL is returned by New if the Config lacks a base URL.
var ErrNoBaseURL = errors.New("no base URL for the camera API")

// ErrRequestFailed indicates the API answered with an error status.
var ErrRequestFailed = errors.New("camera API request failed")

// APIError describes a request the API rejected.
type APIError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	var body = e.Body
	if len(body) > 200 {
		body = body[:200] + "..."
	}

	return fmt.Sprintf("%s: %s returned status %d: %s",
		ErrRequestFailed.Error(),
		e.Op,
		e.StatusCode,
		body)
} // func (e *APIError) Error() string

// Unwrap allows errors.Is(err, ErrRequestFailed).
func (e *APIError) Unwrap() error {
	return ErrRequestFailed
} // func (e *APIError) Unwrap() error

// Config holds the parameters needed to talk to the API.
type Config struct {
	BaseURL    string
	Token      string
	Timeout    time.Duration
	DeletePath string
	Insecure   bool // Skip TLS certificate verification
}

// statusPayload is the body of POST /update/camera/status.
type statusPayload struct {
	ID     json.RawMessage `json:"id"`
	Status model.Status    `json:"status"`
}

// deletePayload is the body of the delete request.
type deletePayload struct {
	ID json.RawMessage `json:"id"`
}

// Client talks to the camera API. It is safe for concurrent use.
type Client struct {
	log        *log.Logger
	http       *resty.Client
	deletePath string
	metrics    *metrics.Registry
}

// New creates a Client. m may be nil.
func New(cfg Config, m *metrics.Registry) (*Client, error) {
	var (
		err error
		c   = &Client{
			deletePath: cfg.DeletePath,
			metrics:    m,
		}
	)

	if cfg.BaseURL == "" {
		return nil, ErrNoBaseURL
	} else if c.log, err = common.GetLogger(logdomain.Client); err != nil {
		return nil, err
	}

	if c.deletePath == "" {
		c.deletePath = defaultDeletePath
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	c.http = resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	if cfg.Token != "" {
		c.http.SetAuthToken(cfg.Token)
	}

	if cfg.Insecure {
		c.http.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true}) // nolint: gosec
	}

	return c, nil
} // func New(cfg Config, m *metrics.Registry) (*Client, error)

// FetchCameras loads the complete list of cameras and normalizes it.
func (c *Client) FetchCameras(ctx context.Context) ([]model.Camera, error) {
	var (
		err     error
		res     *resty.Response
		cams    []model.Camera
		skipped int
		started = time.Now()
	)

	defer func() { c.metrics.ObserveRequest(OpList, started, err) }()

	c.log.Printf("[TRACE] GET %s\n", pathList)

	if res, err = c.http.R().SetContext(ctx).Get(pathList); err != nil {
		err = fmt.Errorf("Cannot fetch cameras: %w", err)
		c.log.Printf("[ERROR] %s\n", err.Error())
		return nil, err
	} else if res.IsError() {
		err = &APIError{
			Op:         OpList,
			StatusCode: res.StatusCode(),
			Body:       res.String(),
		}
		c.log.Printf("[ERROR] %s\n", err.Error())
		return nil, err
	} else if cams, skipped, err = model.DecodeCameraList(res.Body()); err != nil {
		c.log.Printf("[ERROR] %s\n", err.Error())
		return nil, err
	}

	if skipped > 0 {
		c.log.Printf("[WARN] Skipped %d malformed camera record(s)\n",
			skipped)
	}

	c.log.Printf("[DEBUG] Fetched %d camera(s) in %s\n",
		len(cams),
		time.Since(started))

	return cams, nil
} // func (c *Client) FetchCameras(ctx context.Context) ([]model.Camera, error)

// UpdateStatus asks the API to set the status of a camera.
func (c *Client) UpdateStatus(ctx context.Context, cam model.Camera, status model.Status) error {
	var (
		err     error
		started = time.Now()
	)

	defer func() { c.metrics.ObserveRequest(OpStatus, started, err) }()

	c.log.Printf("[TRACE] POST %s (%s -> %s)\n",
		pathStatus,
		cam.ID,
		status)

	err = c.post(ctx, OpStatus, pathStatus, &statusPayload{ID: cam.WireID(), Status: status})
	return err
} // func (c *Client) UpdateStatus(ctx context.Context, cam model.Camera, status model.Status) error

// DeleteCamera asks the API to delete a camera.
func (c *Client) DeleteCamera(ctx context.Context, cam model.Camera) error {
	var (
		err     error
		started = time.Now()
	)

	defer func() { c.metrics.ObserveRequest(OpDelete, started, err) }()

	c.log.Printf("[TRACE] POST %s (%s)\n",
		c.deletePath,
		cam.ID)

	err = c.post(ctx, OpDelete, c.deletePath, &deletePayload{ID: cam.WireID()})
	return err
} // func (c *Client) DeleteCamera(ctx context.Context, cam model.Camera) error

func (c *Client) post(ctx context.Context, op, path string, body any) error {
	var (
		err error
		res *resty.Response
	)

	if res, err = c.http.R().SetContext(ctx).SetBody(body).Post(path); err != nil {
		err = fmt.Errorf("Request %s failed: %w", op, err)
		c.log.Printf("[ERROR] %s\n", err.Error())
		return err
	} else if res.IsError() {
		err = &APIError{
			Op:         op,
			StatusCode: res.StatusCode(),
			Body:       res.String(),
		}
		c.log.Printf("[ERROR] %s\n", err.Error())
		return err
	}

	return nil
} // func (c *Client) post(ctx context.Context, op, path string, body any) error
