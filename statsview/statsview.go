// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package statsview serves live Go runtime statistics (heap, goroutines,
// GC pauses) of the running emulator over HTTP.
package statsview

import (
	"fmt"
	"io"
	"net/http"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/pkg/errors"
)

// DefaultAddress is the address the stats server listens on when none is
// given.
const DefaultAddress = "localhost:12600"

// Charts are served under this path.
const chartPath = "/debug/statsview"

// A Server publishes runtime charts on a single listen address. The
// charting library keeps its configuration globally, so only one Server
// should run at a time.
type Server struct {
	addr string
	mgr  *statsview.ViewManager
}

// New returns a stopped server for the given listen address.
func New(addr string) *Server {
	if addr == "" {
		addr = DefaultAddress
	}
	return &Server{addr: addr}
}

// URL returns the address of the chart page.
func (s *Server) URL() string {
	return "http://" + s.addr + chartPath
}

// Start begins serving in the background and reports the chart page URL
// to w. Listen failures are also reported to w.
func (s *Server) Start(w io.Writer) {
	if s.mgr != nil {
		return
	}

	viewer.SetConfiguration(viewer.WithAddr(s.addr))
	s.mgr = statsview.New()

	mgr := s.mgr
	go func() {
		err := mgr.Start()
		if err != nil && err != http.ErrServerClosed {
			fmt.Fprintln(w, errors.Wrapf(err, "stats server on %s", s.addr))
		}
	}()

	fmt.Fprintf(w, "stats server available at %s\n", s.URL())
}

// Stop shuts the server down.
func (s *Server) Stop() {
	if s.mgr == nil {
		return
	}
	s.mgr.Stop()
	s.mgr = nil
}
