// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"github.com/petrolsys/fueldash/dashboard"
	fdsdk "github.com/petrolsys/fueldash/pkg/sdk"
)

// Keep SDK and session handles in global vars.
var (
	sdk     fdsdk.SDK
	session *dashboard.Session
)

// SetSDK sets the fueldash SDK instance used by the commands.
func SetSDK(s fdsdk.SDK) {
	sdk = s
}

// SetSession sets the dashboard session used by the stateful commands
// (search, export, destructive operations).
func SetSession(s *dashboard.Session) {
	session = s
}
