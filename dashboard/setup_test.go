// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package dashboard_test

import (
	"io"
	"log/slog"

	"github.com/petrolsys/fueldash/dashboard"
	"github.com/petrolsys/fueldash/pkg/errors"
	sdk "github.com/petrolsys/fueldash/pkg/sdk"
)

// note is one recorded notification.
type note struct {
	level   dashboard.Level
	message string
}

type recordingNotifier struct {
	notes []note
}

func (n *recordingNotifier) Notify(level dashboard.Level, message string) {
	n.notes = append(n.notes, note{level: level, message: message})
}

func (n *recordingNotifier) last() note {
	if len(n.notes) == 0 {
		return note{}
	}
	return n.notes[len(n.notes)-1]
}

type recordingRenderer struct {
	erogations [][]sdk.Erogation
	vehicles   [][]sdk.Vehicle
	drivers    [][]sdk.Driver
}

func (r *recordingRenderer) RenderErogations(items []sdk.Erogation) {
	r.erogations = append(r.erogations, items)
}

func (r *recordingRenderer) RenderVehicles(items []sdk.Vehicle) {
	r.vehicles = append(r.vehicles, items)
}

func (r *recordingRenderer) RenderDrivers(items []sdk.Driver) {
	r.drivers = append(r.drivers, items)
}

func (r *recordingRenderer) lastVehicles() []sdk.Vehicle {
	if len(r.vehicles) == 0 {
		return nil
	}
	return r.vehicles[len(r.vehicles)-1]
}

// fakeSDK stubs the terminal client with per-call functions. Calls without
// a configured function panic, which makes an unexpected request an
// immediate test failure.
type fakeSDK struct {
	sdk.SDK

	erogations       func(pm sdk.PageMetadata) (sdk.ErogationsPage, errors.SDKError)
	searchErogations func(filter sdk.Filter, pm sdk.PageMetadata) (sdk.ErogationsPage, errors.SDKError)
	deleteErogations func() errors.SDKError

	vehicles       func(pm sdk.PageMetadata) (sdk.VehiclesPage, errors.SDKError)
	searchVehicles func(filter sdk.Filter, pm sdk.PageMetadata) (sdk.VehiclesPage, errors.SDKError)
	createVehicle  func(v sdk.Vehicle) (sdk.Vehicle, errors.SDKError)
	updateVehicle  func(id string, v sdk.Vehicle) (sdk.Vehicle, errors.SDKError)
	deleteVehicle  func(id string) errors.SDKError

	drivers       func(pm sdk.PageMetadata) (sdk.DriversPage, errors.SDKError)
	searchDrivers func(filter sdk.Filter, pm sdk.PageMetadata) (sdk.DriversPage, errors.SDKError)
	createDriver  func(d sdk.Driver) (sdk.Driver, errors.SDKError)
	updateDriver  func(card string, d sdk.Driver) (sdk.Driver, errors.SDKError)
	deleteDriver  func(card string) errors.SDKError

	parameters       func() (sdk.ParameterSet, errors.SDKError)
	updateParameters func(ps sdk.ParameterSet) (sdk.ParameterSet, errors.SDKError)
	resetParameters  func() errors.SDKError
}

func (f *fakeSDK) Erogations(pm sdk.PageMetadata) (sdk.ErogationsPage, errors.SDKError) {
	return f.erogations(pm)
}

func (f *fakeSDK) SearchErogations(filter sdk.Filter, pm sdk.PageMetadata) (sdk.ErogationsPage, errors.SDKError) {
	return f.searchErogations(filter, pm)
}

func (f *fakeSDK) DeleteErogations() errors.SDKError {
	return f.deleteErogations()
}

func (f *fakeSDK) Vehicles(pm sdk.PageMetadata) (sdk.VehiclesPage, errors.SDKError) {
	return f.vehicles(pm)
}

func (f *fakeSDK) SearchVehicles(filter sdk.Filter, pm sdk.PageMetadata) (sdk.VehiclesPage, errors.SDKError) {
	return f.searchVehicles(filter, pm)
}

func (f *fakeSDK) CreateVehicle(v sdk.Vehicle) (sdk.Vehicle, errors.SDKError) {
	return f.createVehicle(v)
}

func (f *fakeSDK) UpdateVehicle(id string, v sdk.Vehicle) (sdk.Vehicle, errors.SDKError) {
	return f.updateVehicle(id, v)
}

func (f *fakeSDK) DeleteVehicle(id string) errors.SDKError {
	return f.deleteVehicle(id)
}

func (f *fakeSDK) Drivers(pm sdk.PageMetadata) (sdk.DriversPage, errors.SDKError) {
	return f.drivers(pm)
}

func (f *fakeSDK) SearchDrivers(filter sdk.Filter, pm sdk.PageMetadata) (sdk.DriversPage, errors.SDKError) {
	return f.searchDrivers(filter, pm)
}

func (f *fakeSDK) CreateDriver(d sdk.Driver) (sdk.Driver, errors.SDKError) {
	return f.createDriver(d)
}

func (f *fakeSDK) UpdateDriver(card string, d sdk.Driver) (sdk.Driver, errors.SDKError) {
	return f.updateDriver(card, d)
}

func (f *fakeSDK) DeleteDriver(card string) errors.SDKError {
	return f.deleteDriver(card)
}

func (f *fakeSDK) Parameters() (sdk.ParameterSet, errors.SDKError) {
	return f.parameters()
}

func (f *fakeSDK) UpdateParameters(ps sdk.ParameterSet) (sdk.ParameterSet, errors.SDKError) {
	return f.updateParameters(ps)
}

func (f *fakeSDK) ResetParameters() errors.SDKError {
	return f.resetParameters()
}

type fixture struct {
	session  *dashboard.Session
	notifier *recordingNotifier
	renderer *recordingRenderer
}

func newFixture(f *fakeSDK, confirm bool) fixture {
	notifier := &recordingNotifier{}
	renderer := &recordingRenderer{}
	session := dashboard.NewSession(dashboard.Config{
		SDK:      f,
		Notifier: notifier,
		Renderer: renderer,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Confirm:  func(string) bool { return confirm },
	})
	return fixture{session: session, notifier: notifier, renderer: renderer}
}

func vehiclesPage(total uint64, items ...sdk.Vehicle) sdk.VehiclesPage {
	return sdk.VehiclesPage{
		Items:        items,
		PageMetadata: sdk.PageMetadata{Total: total},
	}
}

func driversPage(total uint64, items ...sdk.Driver) sdk.DriversPage {
	return sdk.DriversPage{
		Items:        items,
		PageMetadata: sdk.PageMetadata{Total: total},
	}
}

func erogationsPage(total uint64, items ...sdk.Erogation) sdk.ErogationsPage {
	return sdk.ErogationsPage{
		Items:        items,
		PageMetadata: sdk.PageMetadata{Total: total},
	}
}

func notFoundError(message string) errors.SDKError {
	return errors.NewSDKErrorWithBody(errors.New(message), 404, []byte(`{"message":"`+message+`"}`))
}
