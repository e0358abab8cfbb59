// /home/krylon/go/src/github.com/blicero/camdash/model/normalize.go
// -*- mode: go; coding: utf-8; -*-
// Created on 03. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-11 14:12:30 krylon>

package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// The fields of a raw camera record we know about. Anything else ends up in
// Camera.Extra.
var knownFields = map[string]bool{
	"id":         true,
	"name":       true,
	"model":      true,
	"location":   true,
	"ip_address": true,
	"resolution": true,
	"status":     true,
}

// listResponse is the envelope GET /fetch/cameras wraps the list in.
// Both levels are optional, a missing list simply means no cameras.
type listResponse struct {
	Data *struct {
		Cameras []json.RawMessage `json:"cameras"`
	} `json:"data"`
}

// DecodeCameraList parses the body of a camera list response and normalizes
// the cameras in it. The second return value is the number of records that
// were skipped because they were not JSON objects.
//
// Only a body that is not valid JSON at all is an error.
func DecodeCameraList(body []byte) ([]Camera, int, error) {
	var (
		err     error
		res     listResponse
		cams    []Camera
		skipped int
	)

	if err = json.Unmarshal(body, &res); err != nil {
		return nil, 0, fmt.Errorf("Cannot parse camera list: %w", err)
	} else if res.Data == nil {
		return []Camera{}, 0, nil
	}

	cams = make([]Camera, 0, len(res.Data.Cameras))

	for _, raw := range res.Data.Cameras {
		var (
			c  Camera
			ok bool
		)

		if c, ok = Normalize(raw); !ok {
			skipped++
			continue
		}

		cams = append(cams, c)
	}

	return cams, skipped, nil
} // func DecodeCameraList(body []byte) ([]Camera, int, error)

// Normalize turns one raw camera record into a Camera. Missing or oddly typed
// fields become empty strings, the status is reduced to Active or Inactive.
// If raw is not a JSON object, Normalize returns false.
func Normalize(raw json.RawMessage) (Camera, bool) {
	var (
		err error
		rec map[string]any
		dec = json.NewDecoder(bytes.NewReader(raw))
		cam Camera
	)

	dec.UseNumber()

	if err = dec.Decode(&rec); err != nil || rec == nil {
		return cam, false
	}

	cam = Camera{
		ID:         CameraID(fieldString(rec["id"])),
		Name:       fieldString(rec["name"]),
		Model:      fieldString(rec["model"]),
		Location:   fieldString(rec["location"]),
		IPAddress:  fieldString(rec["ip_address"]),
		Resolution: fieldString(rec["resolution"]),
		Status:     Inactive,
	}

	if _, ok := rec["id"].(json.Number); ok {
		cam.NumericID = true
	}

	if s, ok := rec["status"].(string); ok {
		cam.Status = ParseStatus(s)
	}

	for k, v := range rec {
		if knownFields[k] {
			continue
		} else if cam.Extra == nil {
			cam.Extra = make(map[string]any)
		}
		cam.Extra[k] = v
	}

	return cam, true
} // func Normalize(raw json.RawMessage) (Camera, bool)

// NormalizeAll applies the status rule to a list of Cameras that were
// obtained some other way than through DecodeCameraList.
func NormalizeAll(cams []Camera) []Camera {
	var res = make([]Camera, len(cams))

	for idx, c := range cams {
		c.Status = ParseStatus(string(c.Status))
		res[idx] = c
	}

	return res
} // func NormalizeAll(cams []Camera) []Camera

func fieldString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case bool:
		if x {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", x)
	}
} // func fieldString(v any) string
