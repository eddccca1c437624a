// Copyright (C) The BoM Analytics Go Authors. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

package bomanalytics

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/grantami/bomanalytics-go/ctxlog"
)

// TransactionError is returned when the Service Layer responds to a
// request with a non-2xx status.
type TransactionError struct {
	Method     string
	URL        url.URL
	StatusCode int
	Status     string
	Message    string
}

func (e TransactionError) Error() (s string) {
	s = fmt.Sprintf("request failed: %s", e.URL.String())
	if e.Status != "" {
		s = s + ": " + e.Status
	}
	if e.Message != "" {
		s = s + ": " + e.Message
	}
	return
}

func newTransactionError(req *http.Request, resp *http.Response, buf []byte) *TransactionError {
	var e TransactionError
	if json.Unmarshal(buf, &e) != nil {
		// No JSON-formatted error response
		e.Message = ""
	}
	e.Method = req.Method
	e.URL = *req.URL
	if resp != nil {
		e.Status = resp.Status
		e.StatusCode = resp.StatusCode
	}
	return &e
}

// A LogMessage is a message returned by the Service Layer when running
// a query. Severity is "critical", "error", "warning", or
// "information". Messages with "error" severity are more likely to
// accompany incorrect results and should be treated with increased
// caution.
type LogMessage struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

var severityRank = map[string]int{
	"critical":    4,
	"error":       3,
	"warning":     2,
	"information": 1,
}

// ServiceError is returned when the Service Layer reports a critical
// error while running an otherwise successful HTTP request.
type ServiceError struct {
	Messages []LogMessage
}

func (e ServiceError) Error() string {
	var critical []string
	for _, msg := range e.Messages {
		if msg.Severity == "critical" {
			critical = append(critical, msg.Message)
		}
	}
	return "query failed: " + strings.Join(critical, "; ")
}

// checkMessages sorts msgs by decreasing severity, logs each one at
// the corresponding level, and returns a *ServiceError if any message
// is critical.
func checkMessages(ctx context.Context, msgs []LogMessage) ([]LogMessage, error) {
	sorted := make([]LogMessage, len(msgs))
	copy(sorted, msgs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return severityRank[sorted[i].Severity] > severityRank[sorted[j].Severity]
	})
	logger := ctxlog.FromContext(ctx)
	critical := false
	for _, msg := range sorted {
		switch msg.Severity {
		case "critical":
			critical = true
			logger.Error(msg.Message)
		case "error":
			logger.Error(msg.Message)
		case "warning":
			logger.Warn(msg.Message)
		default:
			logger.Info(msg.Message)
		}
	}
	if critical {
		return sorted, &ServiceError{Messages: sorted}
	}
	return sorted, nil
}
