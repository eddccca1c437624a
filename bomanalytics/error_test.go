// Copyright (C) The BoM Analytics Go Authors. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

package bomanalytics

import (
	"context"

	"github.com/grantami/bomanalytics-go/ctxlog"
	check "gopkg.in/check.v1"
)

var _ = check.Suite(&errorSuite{})

type errorSuite struct{}

func (*errorSuite) TestCheckMessagesOrder(c *check.C) {
	ctx := ctxlog.Context(context.Background(), ctxlog.TestLogger(c))
	msgs := []LogMessage{
		{Severity: "information", Message: "info 1"},
		{Severity: "warning", Message: "warn 1"},
		{Severity: "error", Message: "err 1"},
		{Severity: "information", Message: "info 2"},
		{Severity: "warning", Message: "warn 2"},
	}
	sorted, err := checkMessages(ctx, msgs)
	c.Check(err, check.IsNil)
	c.Assert(sorted, check.HasLen, 5)
	c.Check(sorted[0].Message, check.Equals, "err 1")
	c.Check(sorted[1].Message, check.Equals, "warn 1")
	c.Check(sorted[2].Message, check.Equals, "warn 2")
	c.Check(sorted[3].Message, check.Equals, "info 1")
	c.Check(sorted[4].Message, check.Equals, "info 2")
}

func (*errorSuite) TestCheckMessagesCritical(c *check.C) {
	ctx := ctxlog.Context(context.Background(), ctxlog.TestLogger(c))
	msgs := []LogMessage{
		{Severity: "warning", Message: "something minor"},
		{Severity: "critical", Message: "table not found"},
	}
	sorted, err := checkMessages(ctx, msgs)
	c.Assert(err, check.NotNil)
	c.Check(err, check.ErrorMatches, `query failed: table not found`)
	serr, ok := err.(*ServiceError)
	c.Assert(ok, check.Equals, true)
	c.Check(serr.Messages, check.HasLen, 2)
	c.Check(sorted[0].Severity, check.Equals, "critical")
}

func (*errorSuite) TestCheckMessagesEmpty(c *check.C) {
	ctx := ctxlog.Context(context.Background(), ctxlog.TestLogger(c))
	sorted, err := checkMessages(ctx, nil)
	c.Check(err, check.IsNil)
	c.Check(sorted, check.HasLen, 0)
}
