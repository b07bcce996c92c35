// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package dashboard

import sdk "github.com/petrolsys/fueldash/pkg/sdk"

// Level grades the urgency of a user notification.
type Level string

const (
	Info    Level = "info"
	Success Level = "success"
	Warning Level = "warning"
	Danger  Level = "danger"
)

// Notifier receives transient user-facing status messages, the terminal
// analogue of toast popups.
type Notifier interface {
	Notify(level Level, message string)
}

// Renderer receives result sets for presentation whenever a section's rows
// change. An empty or nil slice clears the section.
type Renderer interface {
	RenderErogations(items []sdk.Erogation)
	RenderVehicles(items []sdk.Vehicle)
	RenderDrivers(items []sdk.Driver)
}

type noopNotifier struct{}

func (noopNotifier) Notify(Level, string) {}

type noopRenderer struct{}

func (noopRenderer) RenderErogations([]sdk.Erogation) {}
func (noopRenderer) RenderVehicles([]sdk.Vehicle)     {}
func (noopRenderer) RenderDrivers([]sdk.Driver)       {}
