// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package sdk

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/petrolsys/fueldash/pkg/errors"
)

const driversEndpoint = "drivers"

// Driver represents a registered driver, keyed by RFID card. The PIN is
// meaningful only when RequestPin is set.
type Driver struct {
	Card             string `json:"card"`
	Company          string `json:"company"`
	DriverFullName   string `json:"driver_full_name"`
	RequestPin       bool   `json:"request_pin"`
	RequestVehicleID bool   `json:"request_vehicle_id"`
	Pin              string `json:"pin,omitempty"`
}

func (sdk fdSDK) Drivers(pm PageMetadata) (DriversPage, errors.SDKError) {
	url, err := sdk.withQueryParams(sdk.stationURL, driversEndpoint+"/", pm)
	if err != nil {
		return DriversPage{}, errors.NewSDKError(err)
	}

	_, body, sdkerr := sdk.processRequest(http.MethodGet, url, nil, nil, http.StatusOK)
	if sdkerr != nil {
		return DriversPage{}, sdkerr
	}

	var dp DriversPage
	if err := json.Unmarshal(body, &dp); err != nil {
		return DriversPage{}, errors.NewSDKError(err)
	}

	return dp, nil
}

func (sdk fdSDK) SearchDrivers(filter Filter, pm PageMetadata) (DriversPage, errors.SDKError) {
	url, err := sdk.withSearchParams(sdk.stationURL, driversEndpoint+"/search/", filter, pm)
	if err != nil {
		return DriversPage{}, errors.NewSDKError(err)
	}

	_, body, sdkerr := sdk.processRequest(http.MethodGet, url, nil, nil, http.StatusOK)
	if sdkerr != nil {
		return DriversPage{}, sdkerr
	}

	var dp DriversPage
	if err := json.Unmarshal(body, &dp); err != nil {
		return DriversPage{}, errors.NewSDKError(err)
	}

	return dp, nil
}

func (sdk fdSDK) Driver(card string) (Driver, errors.SDKError) {
	if card == "" {
		return Driver{}, errors.NewSDKError(errors.ErrMalformedEntity)
	}
	url := fmt.Sprintf("%s/%s/%s", sdk.stationURL, driversEndpoint, url.PathEscape(card))

	_, body, sdkerr := sdk.processRequest(http.MethodGet, url, nil, nil, http.StatusOK)
	if sdkerr != nil {
		return Driver{}, sdkerr
	}

	var d Driver
	if err := json.Unmarshal(body, &d); err != nil {
		return Driver{}, errors.NewSDKError(err)
	}

	return d, nil
}

func (sdk fdSDK) CreateDriver(d Driver) (Driver, errors.SDKError) {
	data, err := json.Marshal(d)
	if err != nil {
		return Driver{}, errors.NewSDKError(err)
	}

	url := fmt.Sprintf("%s/%s/", sdk.stationURL, driversEndpoint)

	_, body, sdkerr := sdk.processRequest(http.MethodPost, url, data, nil, http.StatusOK, http.StatusCreated)
	if sdkerr != nil {
		return Driver{}, sdkerr
	}

	d = Driver{}
	if err := json.Unmarshal(body, &d); err != nil {
		return Driver{}, errors.NewSDKError(err)
	}

	return d, nil
}

func (sdk fdSDK) UpdateDriver(card string, d Driver) (Driver, errors.SDKError) {
	if card == "" {
		return Driver{}, errors.NewSDKError(errors.ErrMalformedEntity)
	}

	data, err := json.Marshal(d)
	if err != nil {
		return Driver{}, errors.NewSDKError(err)
	}

	url := fmt.Sprintf("%s/%s/%s", sdk.stationURL, driversEndpoint, url.PathEscape(card))

	_, body, sdkerr := sdk.processRequest(http.MethodPut, url, data, nil, http.StatusOK)
	if sdkerr != nil {
		return Driver{}, sdkerr
	}

	d = Driver{}
	if err := json.Unmarshal(body, &d); err != nil {
		return Driver{}, errors.NewSDKError(err)
	}

	return d, nil
}

func (sdk fdSDK) DeleteDriver(card string) errors.SDKError {
	if card == "" {
		return errors.NewSDKError(errors.ErrMalformedEntity)
	}
	url := fmt.Sprintf("%s/%s/%s", sdk.stationURL, driversEndpoint, url.PathEscape(card))

	_, _, sdkerr := sdk.processRequest(http.MethodDelete, url, nil, nil, http.StatusNoContent, http.StatusOK)
	return sdkerr
}
