// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package sdk_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		jsonHandler(http.StatusOK, `{"status":"pass","version":"1.4.0","description":"fuel terminal service"}`)(w, r)
	}))
	defer ts.Close()

	fdSDK := newTestSDK(ts, nil)

	h, sdkerr := fdSDK.Health()
	require.Nil(t, sdkerr)
	assert.Equal(t, "pass", h.Status)
	assert.Equal(t, "1.4.0", h.Version)
}

func TestHealthUnavailable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jsonHandler(http.StatusServiceUnavailable, `{"status":"fail"}`)(w, r)
	}))
	defer ts.Close()

	fdSDK := newTestSDK(ts, nil)

	_, sdkerr := fdSDK.Health()
	require.NotNil(t, sdkerr)
	assert.Equal(t, http.StatusServiceUnavailable, sdkerr.StatusCode())
}
