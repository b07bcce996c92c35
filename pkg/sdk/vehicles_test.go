// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package sdk_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/petrolsys/fueldash/pkg/errors"
	sdk "github.com/petrolsys/fueldash/pkg/sdk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVehicles(t *testing.T) {
	page := sdk.VehiclesPage{
		Items:        []sdk.Vehicle{vehicle},
		PageMetadata: sdk.PageMetadata{Total: 1, Page: 1, Limit: 25},
	}
	body, err := json.Marshal(page)
	require.NoError(t, err)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/vehicles/", r.URL.Path)
		jsonHandler(http.StatusOK, string(body))(w, r)
	}))
	defer ts.Close()

	fdSDK := newTestSDK(ts, nil)

	res, sdkerr := fdSDK.Vehicles(sdk.PageMetadata{Page: 1, Limit: 25})
	require.Nil(t, sdkerr)
	assert.Equal(t, page, res)
}

func TestSearchVehicles(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/vehicles/search/", r.URL.Path)
		assert.Equal(t, "AB123CD", r.URL.Query().Get("plate"))
		jsonHandler(http.StatusOK, `{"total":1,"page":1,"limit":25,"items":[{"vehicle_id":"V-001","plate":"AB123CD"}]}`)(w, r)
	}))
	defer ts.Close()

	fdSDK := newTestSDK(ts, nil)

	res, sdkerr := fdSDK.SearchVehicles(sdk.Filter{"plate": "AB123CD"}, sdk.PageMetadata{Page: 1, Limit: 25})
	require.Nil(t, sdkerr)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "V-001", res.Items[0].VehicleID)
}

func TestVehicle(t *testing.T) {
	cases := []struct {
		desc    string
		id      string
		status  int
		body    string
		res     sdk.Vehicle
		err     errors.SDKError
		noCall  bool
	}{
		{
			desc:   "fetch existing vehicle",
			id:     vehicle.VehicleID,
			status: http.StatusOK,
			res:    vehicle,
		},
		{
			desc:   "fetch unknown vehicle",
			id:     "ghost",
			status: http.StatusNotFound,
			body:   `{"detail":"Vehicle not found"}`,
			err:    errors.NewSDKErrorWithStatus(errors.New("Vehicle not found"), http.StatusNotFound),
		},
		{
			desc:   "fetch with empty id",
			id:     "",
			noCall: true,
			err:    errors.NewSDKError(errors.ErrMalformedEntity),
		},
	}

	for _, tc := range cases {
		called := false
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			assert.Equal(t, "/vehicles/"+tc.id, r.URL.Path, tc.desc)
			body := tc.body
			if body == "" {
				b, err := json.Marshal(tc.res)
				require.NoError(t, err)
				body = string(b)
			}
			jsonHandler(tc.status, body)(w, r)
		}))

		fdSDK := newTestSDK(ts, nil)
		res, sdkerr := fdSDK.Vehicle(tc.id)
		if tc.err == nil {
			assert.Nil(t, sdkerr, fmt.Sprintf("%s: unexpected error %v", tc.desc, sdkerr))
			assert.Equal(t, tc.res, res, tc.desc)
		} else {
			require.NotNil(t, sdkerr, tc.desc)
			assert.Equal(t, tc.err.StatusCode(), sdkerr.StatusCode(), tc.desc)
		}
		assert.Equal(t, !tc.noCall, called, fmt.Sprintf("%s: request gating mismatch", tc.desc))
		ts.Close()
	}
}

func TestVehicleByPlate(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/vehicles/plate/AB123CD", r.URL.Path)
		b, err := json.Marshal(vehicle)
		require.NoError(t, err)
		jsonHandler(http.StatusOK, string(b))(w, r)
	}))
	defer ts.Close()

	fdSDK := newTestSDK(ts, nil)

	res, sdkerr := fdSDK.VehicleByPlate("AB123CD")
	require.Nil(t, sdkerr)
	assert.Equal(t, vehicle, res)
}

func TestCreateVehicle(t *testing.T) {
	cases := []struct {
		desc   string
		status int
		body   string
		err    bool
	}{
		{
			desc:   "create new vehicle",
			status: http.StatusCreated,
			err:    false,
		},
		{
			desc:   "create duplicate vehicle",
			status: http.StatusConflict,
			body:   `{"detail":"duplicate key value violates unique constraint"}`,
			err:    true,
		},
	}

	for _, tc := range cases {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method, tc.desc)
			var got sdk.Vehicle
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got), tc.desc)
			assert.Equal(t, vehicle, got, tc.desc)
			body := tc.body
			if body == "" {
				b, err := json.Marshal(got)
				require.NoError(t, err)
				body = string(b)
			}
			jsonHandler(tc.status, body)(w, r)
		}))

		fdSDK := newTestSDK(ts, nil)
		res, sdkerr := fdSDK.CreateVehicle(vehicle)
		if tc.err {
			require.NotNil(t, sdkerr, tc.desc)
			assert.Equal(t, tc.status, sdkerr.StatusCode(), tc.desc)
		} else {
			assert.Nil(t, sdkerr, fmt.Sprintf("%s: unexpected error %v", tc.desc, sdkerr))
			assert.Equal(t, vehicle, res, tc.desc)
		}
		ts.Close()
	}
}

func TestUpdateVehicle(t *testing.T) {
	renamed := vehicle
	renamed.VehicleID = "V-002"

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		// the prior id addresses the record even when the payload renames it
		assert.Equal(t, "/vehicles/V-001", r.URL.Path)
		b, err := json.Marshal(renamed)
		require.NoError(t, err)
		jsonHandler(http.StatusOK, string(b))(w, r)
	}))
	defer ts.Close()

	fdSDK := newTestSDK(ts, nil)

	res, sdkerr := fdSDK.UpdateVehicle("V-001", renamed)
	require.Nil(t, sdkerr)
	assert.Equal(t, "V-002", res.VehicleID)
}

func TestDeleteVehicle(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/vehicles/V-001", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	fdSDK := newTestSDK(ts, nil)

	sdkerr := fdSDK.DeleteVehicle("V-001")
	assert.Nil(t, sdkerr, fmt.Sprintf("unexpected error %v", sdkerr))
}
