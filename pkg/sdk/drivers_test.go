// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package sdk_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sdk "github.com/petrolsys/fueldash/pkg/sdk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrivers(t *testing.T) {
	page := sdk.DriversPage{
		Items:        []sdk.Driver{driver},
		PageMetadata: sdk.PageMetadata{Total: 1, Page: 1, Limit: 25},
	}
	body, err := json.Marshal(page)
	require.NoError(t, err)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/drivers/", r.URL.Path)
		jsonHandler(http.StatusOK, string(body))(w, r)
	}))
	defer ts.Close()

	fdSDK := newTestSDK(ts, nil)

	res, sdkerr := fdSDK.Drivers(sdk.PageMetadata{Page: 1, Limit: 25})
	require.Nil(t, sdkerr)
	assert.Equal(t, page, res)
}

func TestSearchDrivers(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/drivers/search/", r.URL.Path)
		assert.Equal(t, "Mario", r.URL.Query().Get("driver_full_name"))
		jsonHandler(http.StatusOK, `{"total":1,"page":1,"limit":25,"items":[{"card":"04A1B2C3","driver_full_name":"Mario Rossi"}]}`)(w, r)
	}))
	defer ts.Close()

	fdSDK := newTestSDK(ts, nil)

	res, sdkerr := fdSDK.SearchDrivers(sdk.Filter{"driver_full_name": "Mario"}, sdk.PageMetadata{Page: 1, Limit: 25})
	require.Nil(t, sdkerr)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "04A1B2C3", res.Items[0].Card)
}

func TestDriver(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/drivers/04A1B2C3", r.URL.Path)
		b, err := json.Marshal(driver)
		require.NoError(t, err)
		jsonHandler(http.StatusOK, string(b))(w, r)
	}))
	defer ts.Close()

	fdSDK := newTestSDK(ts, nil)

	res, sdkerr := fdSDK.Driver(driver.Card)
	require.Nil(t, sdkerr)
	assert.Equal(t, driver, res)
}

func TestDriverEmptyCard(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	fdSDK := newTestSDK(ts, nil)

	_, sdkerr := fdSDK.Driver("")
	assert.NotNil(t, sdkerr, "empty card must fail before any request")
}

func TestCreateDriver(t *testing.T) {
	cases := []struct {
		desc   string
		driver sdk.Driver
		status int
		body   string
		err    bool
	}{
		{
			desc:   "create new driver",
			driver: driver,
			status: http.StatusCreated,
		},
		{
			desc:   "create driver with duplicate card",
			driver: driver,
			status: http.StatusConflict,
			body:   `{"detail":"duplicate key value violates unique constraint"}`,
			err:    true,
		},
	}

	for _, tc := range cases {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method, tc.desc)
			var got sdk.Driver
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got), tc.desc)
			assert.Equal(t, tc.driver.Pin, got.Pin, fmt.Sprintf("%s: PIN must travel with the payload", tc.desc))
			body := tc.body
			if body == "" {
				b, err := json.Marshal(got)
				require.NoError(t, err)
				body = string(b)
			}
			jsonHandler(tc.status, body)(w, r)
		}))

		fdSDK := newTestSDK(ts, nil)
		res, sdkerr := fdSDK.CreateDriver(tc.driver)
		if tc.err {
			require.NotNil(t, sdkerr, tc.desc)
			assert.Equal(t, tc.status, sdkerr.StatusCode(), tc.desc)
		} else {
			assert.Nil(t, sdkerr, fmt.Sprintf("%s: unexpected error %v", tc.desc, sdkerr))
			assert.Equal(t, tc.driver, res, tc.desc)
		}
		ts.Close()
	}
}

func TestUpdateDriver(t *testing.T) {
	rekeyed := driver
	rekeyed.Card = "04FFEEDD"

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/drivers/04A1B2C3", r.URL.Path)
		b, err := json.Marshal(rekeyed)
		require.NoError(t, err)
		jsonHandler(http.StatusOK, string(b))(w, r)
	}))
	defer ts.Close()

	fdSDK := newTestSDK(ts, nil)

	res, sdkerr := fdSDK.UpdateDriver("04A1B2C3", rekeyed)
	require.Nil(t, sdkerr)
	assert.Equal(t, "04FFEEDD", res.Card)
}

func TestDeleteDriver(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/drivers/04A1B2C3", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	fdSDK := newTestSDK(ts, nil)

	sdkerr := fdSDK.DeleteDriver("04A1B2C3")
	assert.Nil(t, sdkerr, fmt.Sprintf("unexpected error %v", sdkerr))
}
