// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package sdk

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/petrolsys/fueldash/pkg/errors"
)

const erogationsEndpoint = "erogations"

// Erogation represents one recorded fuel dispensation. Driver and vehicle
// fields are optional: manual-mode refuels carry neither a card nor a
// vehicle identity.
type Erogation struct {
	ID                  uint64    `json:"id,omitempty"`
	Card                string    `json:"card,omitempty"`
	Company             string    `json:"company,omitempty"`
	DriverFullName      string    `json:"driver_full_name,omitempty"`
	VehicleID           string    `json:"vehicle_id,omitempty"`
	CompanyVehicle      string    `json:"company_vehicle,omitempty"`
	VehicleTotalKm      string    `json:"vehicle_total_km,omitempty"`
	ErogationSide       int       `json:"erogation_side"`
	DispensedLiters     float64   `json:"dispensed_liters"`
	DispensedProduct    string    `json:"dispensed_product"`
	ErogationTimestamp  time.Time `json:"erogation_timestamp"`
	Mode                string    `json:"mode"`
	TotalErogationPrice float64   `json:"total_erogation_price,omitempty"`
}

func (sdk fdSDK) Erogations(pm PageMetadata) (ErogationsPage, errors.SDKError) {
	url, err := sdk.withQueryParams(sdk.stationURL, erogationsEndpoint+"/", pm)
	if err != nil {
		return ErogationsPage{}, errors.NewSDKError(err)
	}

	_, body, sdkerr := sdk.processRequest(http.MethodGet, url, nil, nil, http.StatusOK)
	if sdkerr != nil {
		return ErogationsPage{}, sdkerr
	}

	var ep ErogationsPage
	if err := json.Unmarshal(body, &ep); err != nil {
		return ErogationsPage{}, errors.NewSDKError(err)
	}

	return ep, nil
}

func (sdk fdSDK) SearchErogations(filter Filter, pm PageMetadata) (ErogationsPage, errors.SDKError) {
	url, err := sdk.withSearchParams(sdk.stationURL, erogationsEndpoint+"/search/", filter, pm)
	if err != nil {
		return ErogationsPage{}, errors.NewSDKError(err)
	}

	_, body, sdkerr := sdk.processRequest(http.MethodGet, url, nil, nil, http.StatusOK)
	if sdkerr != nil {
		return ErogationsPage{}, sdkerr
	}

	var ep ErogationsPage
	if err := json.Unmarshal(body, &ep); err != nil {
		return ErogationsPage{}, errors.NewSDKError(err)
	}

	return ep, nil
}

func (sdk fdSDK) Erogation(id uint64) (Erogation, errors.SDKError) {
	url := fmt.Sprintf("%s/%s/%s", sdk.stationURL, erogationsEndpoint, strconv.FormatUint(id, 10))

	_, body, sdkerr := sdk.processRequest(http.MethodGet, url, nil, nil, http.StatusOK)
	if sdkerr != nil {
		return Erogation{}, sdkerr
	}

	var e Erogation
	if err := json.Unmarshal(body, &e); err != nil {
		return Erogation{}, errors.NewSDKError(err)
	}

	return e, nil
}

func (sdk fdSDK) CreateErogation(e Erogation) (Erogation, errors.SDKError) {
	data, err := json.Marshal(e)
	if err != nil {
		return Erogation{}, errors.NewSDKError(err)
	}

	url := fmt.Sprintf("%s/%s/", sdk.stationURL, erogationsEndpoint)

	_, body, sdkerr := sdk.processRequest(http.MethodPost, url, data, nil, http.StatusOK, http.StatusCreated)
	if sdkerr != nil {
		return Erogation{}, sdkerr
	}

	e = Erogation{}
	if err := json.Unmarshal(body, &e); err != nil {
		return Erogation{}, errors.NewSDKError(err)
	}

	return e, nil
}

func (sdk fdSDK) DeleteErogations() errors.SDKError {
	url := fmt.Sprintf("%s/%s/", sdk.stationURL, erogationsEndpoint)

	_, _, sdkerr := sdk.processRequest(http.MethodDelete, url, nil, nil, http.StatusNoContent, http.StatusOK)
	return sdkerr
}
