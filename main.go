// /home/krylon/go/src/github.com/blicero/camdash/main.go
// -*- mode: go; coding: utf-8; -*-
// Created on 03. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-11 19:58:40 krylon>

package main

import "github.com/blicero/camdash/cmd"

func main() {
	cmd.Execute()
} // func main()
