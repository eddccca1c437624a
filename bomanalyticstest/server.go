// Copyright (C) The BoM Analytics Go Authors. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

// Package bomanalyticstest provides a stub BoM Analytics Service
// Layer for use in tests: every query endpoint is served with canned
// responses, and received requests are recorded for inspection.
package bomanalyticstest

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"

	"github.com/gorilla/mux"

	"github.com/grantami/bomanalytics-go/bomanalytics"
)

// servicePath mimics the path under which the real Service Layer
// exposes the BoM Analytics API.
const servicePath = "/BomAnalytics/v1.svc"

// A RecordedRequest is one request received by the stub server.
type RecordedRequest struct {
	Method string
	// Path below the service root, e.g.
	// "impacted-substances/materials".
	Path string
	Body []byte
}

// A StubServer is an httptest.Server that implements the BoM
// Analytics query endpoints.
type StubServer struct {
	*httptest.Server

	// Responses maps an endpoint path (e.g.
	// "compliance/materials") to the JSON body served for it.
	// Initialized with DefaultResponses; tests may replace
	// entries.
	Responses map[string]string

	mtx  sync.Mutex
	reqs []RecordedRequest
}

// NewStubServer returns a running stub server. The caller must call
// Close when finished with it.
func NewStubServer() *StubServer {
	s := &StubServer{Responses: map[string]string{}}
	for path, body := range DefaultResponses {
		s.Responses[path] = body
	}
	r := mux.NewRouter()
	r.HandleFunc(servicePath, s.serveRoot).Methods(http.MethodGet)
	r.HandleFunc(servicePath+"/{analysis}/{itemtype}", s.serveQuery).Methods(http.MethodPost)
	s.Server = httptest.NewServer(r)
	return s
}

// Client returns a bomanalytics.Client pointed at the stub server.
func (s *StubServer) Client() *bomanalytics.Client {
	u, err := url.Parse(s.Server.URL)
	if err != nil {
		panic(err)
	}
	return &bomanalytics.Client{
		Scheme:      "http",
		APIHost:     u.Host,
		ServicePath: "BomAnalytics/v1.svc",
	}
}

// Requests returns the requests received so far.
func (s *StubServer) Requests() []RecordedRequest {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	reqs := make([]RecordedRequest, len(s.reqs))
	copy(reqs, s.reqs)
	return reqs
}

func (s *StubServer) serveRoot(w http.ResponseWriter, req *http.Request) {
	s.record(req, "")
	w.Header().Set("Content-Type", "application/json")
	io.WriteString(w, `{"status":"ok"}`)
}

func (s *StubServer) serveQuery(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	path := vars["analysis"] + "/" + vars["itemtype"]
	s.record(req, path)
	body, ok := s.Responses[path]
	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"message":"no such endpoint"}`)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	io.WriteString(w, body)
}

func (s *StubServer) record(req *http.Request, path string) {
	buf, _ := io.ReadAll(req.Body)
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.reqs = append(s.reqs, RecordedRequest{
		Method: req.Method,
		Path:   path,
		Body:   buf,
	})
}
