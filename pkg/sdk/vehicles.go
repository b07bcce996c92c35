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

const vehiclesEndpoint = "vehicles"

// Vehicle represents a registered vehicle. The total-km odometer reading is
// a string on the wire since the terminal forwards whatever the driver
// keyed in; numeric validation happens before submission.
type Vehicle struct {
	VehicleID        string `json:"vehicle_id"`
	CompanyVehicle   string `json:"company_vehicle"`
	RequestVehicleKm bool   `json:"request_vehicle_km"`
	VehicleTotalKm   string `json:"vehicle_total_km"`
	Plate            string `json:"plate"`
}

func (sdk fdSDK) Vehicles(pm PageMetadata) (VehiclesPage, errors.SDKError) {
	url, err := sdk.withQueryParams(sdk.stationURL, vehiclesEndpoint+"/", pm)
	if err != nil {
		return VehiclesPage{}, errors.NewSDKError(err)
	}

	_, body, sdkerr := sdk.processRequest(http.MethodGet, url, nil, nil, http.StatusOK)
	if sdkerr != nil {
		return VehiclesPage{}, sdkerr
	}

	var vp VehiclesPage
	if err := json.Unmarshal(body, &vp); err != nil {
		return VehiclesPage{}, errors.NewSDKError(err)
	}

	return vp, nil
}

func (sdk fdSDK) SearchVehicles(filter Filter, pm PageMetadata) (VehiclesPage, errors.SDKError) {
	url, err := sdk.withSearchParams(sdk.stationURL, vehiclesEndpoint+"/search/", filter, pm)
	if err != nil {
		return VehiclesPage{}, errors.NewSDKError(err)
	}

	_, body, sdkerr := sdk.processRequest(http.MethodGet, url, nil, nil, http.StatusOK)
	if sdkerr != nil {
		return VehiclesPage{}, sdkerr
	}

	var vp VehiclesPage
	if err := json.Unmarshal(body, &vp); err != nil {
		return VehiclesPage{}, errors.NewSDKError(err)
	}

	return vp, nil
}

func (sdk fdSDK) Vehicle(id string) (Vehicle, errors.SDKError) {
	if id == "" {
		return Vehicle{}, errors.NewSDKError(errors.ErrMalformedEntity)
	}
	url := fmt.Sprintf("%s/%s/%s", sdk.stationURL, vehiclesEndpoint, url.PathEscape(id))

	_, body, sdkerr := sdk.processRequest(http.MethodGet, url, nil, nil, http.StatusOK)
	if sdkerr != nil {
		return Vehicle{}, sdkerr
	}

	var v Vehicle
	if err := json.Unmarshal(body, &v); err != nil {
		return Vehicle{}, errors.NewSDKError(err)
	}

	return v, nil
}

func (sdk fdSDK) VehicleByPlate(plate string) (Vehicle, errors.SDKError) {
	if plate == "" {
		return Vehicle{}, errors.NewSDKError(errors.ErrMalformedEntity)
	}
	url := fmt.Sprintf("%s/%s/plate/%s", sdk.stationURL, vehiclesEndpoint, url.PathEscape(plate))

	_, body, sdkerr := sdk.processRequest(http.MethodGet, url, nil, nil, http.StatusOK)
	if sdkerr != nil {
		return Vehicle{}, sdkerr
	}

	var v Vehicle
	if err := json.Unmarshal(body, &v); err != nil {
		return Vehicle{}, errors.NewSDKError(err)
	}

	return v, nil
}

func (sdk fdSDK) CreateVehicle(v Vehicle) (Vehicle, errors.SDKError) {
	data, err := json.Marshal(v)
	if err != nil {
		return Vehicle{}, errors.NewSDKError(err)
	}

	url := fmt.Sprintf("%s/%s/", sdk.stationURL, vehiclesEndpoint)

	_, body, sdkerr := sdk.processRequest(http.MethodPost, url, data, nil, http.StatusOK, http.StatusCreated)
	if sdkerr != nil {
		return Vehicle{}, sdkerr
	}

	v = Vehicle{}
	if err := json.Unmarshal(body, &v); err != nil {
		return Vehicle{}, errors.NewSDKError(err)
	}

	return v, nil
}

func (sdk fdSDK) UpdateVehicle(id string, v Vehicle) (Vehicle, errors.SDKError) {
	if id == "" {
		return Vehicle{}, errors.NewSDKError(errors.ErrMalformedEntity)
	}

	data, err := json.Marshal(v)
	if err != nil {
		return Vehicle{}, errors.NewSDKError(err)
	}

	url := fmt.Sprintf("%s/%s/%s", sdk.stationURL, vehiclesEndpoint, url.PathEscape(id))

	_, body, sdkerr := sdk.processRequest(http.MethodPut, url, data, nil, http.StatusOK)
	if sdkerr != nil {
		return Vehicle{}, sdkerr
	}

	v = Vehicle{}
	if err := json.Unmarshal(body, &v); err != nil {
		return Vehicle{}, errors.NewSDKError(err)
	}

	return v, nil
}

func (sdk fdSDK) DeleteVehicle(id string) errors.SDKError {
	if id == "" {
		return errors.NewSDKError(errors.ErrMalformedEntity)
	}
	url := fmt.Sprintf("%s/%s/%s", sdk.stationURL, vehiclesEndpoint, url.PathEscape(id))

	_, _, sdkerr := sdk.processRequest(http.MethodDelete, url, nil, nil, http.StatusNoContent, http.StatusOK)
	return sdkerr
}
