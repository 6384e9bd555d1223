// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

//go:build !windows

package swapi

import (
	"fmt"
	"time"
)

// DefaultSettleDelay is how long a freshly spawned host is given to finish
// starting up before the first automation call.
const DefaultSettleDelay = 2 * time.Second

// ComConnector is the COM-backed connector. COM automation only exists on
// Windows; on every other platform Connect fails cleanly so the CLI can
// still serve offline mode.
type ComConnector struct {
	// SettleDelay overrides DefaultSettleDelay when positive.
	SettleDelay time.Duration
}

// Connect always fails on non-Windows platforms.
func (c *ComConnector) Connect() (Host, error) {
	return nil, fmt.Errorf("%w: %v", ErrConnectionFailed, ErrAutomationUnavailable)
}
