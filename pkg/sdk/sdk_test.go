// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package sdk_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	sdk "github.com/petrolsys/fueldash/pkg/sdk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetryOnServerFailure(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		jsonHandler(http.StatusOK, `{"total":0,"page":1,"limit":25,"items":[]}`)(w, r)
	}))
	defer ts.Close()

	var delays []time.Duration
	fdSDK := newTestSDK(ts, &delays)

	_, err := fdSDK.Vehicles(sdk.PageMetadata{Page: 1, Limit: 25})
	assert.Nil(t, err, fmt.Sprintf("expected success after retries, got %v", err))
	assert.Equal(t, int32(3), atomic.LoadInt32(&hits), "expected two failed attempts plus one success")
	assert.Equal(t, []time.Duration{800 * time.Millisecond, 400 * time.Millisecond}, delays, "expected decreasing backoff schedule")
}

func TestRetryBudgetExhausted(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	var delays []time.Duration
	fdSDK := newTestSDK(ts, &delays)

	_, err := fdSDK.Drivers(sdk.PageMetadata{Page: 1, Limit: 25})
	require.NotNil(t, err, "expected error after exhausting retries")
	assert.Equal(t, http.StatusServiceUnavailable, err.StatusCode())
	assert.Equal(t, int32(4), atomic.LoadInt32(&hits), "expected initial attempt plus three retries")
	assert.Equal(t, []time.Duration{800 * time.Millisecond, 400 * time.Millisecond, 200 * time.Millisecond}, delays)
}

func TestNoRetryOnClientError(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		jsonHandler(http.StatusNotFound, `{"detail":"Vehicle not found"}`)(w, r)
	}))
	defer ts.Close()

	var delays []time.Duration
	fdSDK := newTestSDK(ts, &delays)

	_, err := fdSDK.Vehicle("missing")
	require.NotNil(t, err, "expected 404 to surface")
	assert.Equal(t, http.StatusNotFound, err.StatusCode())
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits), "4xx must not be retried")
	assert.Empty(t, delays, "no backoff expected for client errors")
}

func TestNoRetryOnDelete(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	var delays []time.Duration
	fdSDK := newTestSDK(ts, &delays)

	err := fdSDK.DeleteVehicle("V-001")
	require.NotNil(t, err, "expected delete failure to surface")
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits), "DELETE must never be replayed")
	assert.Empty(t, delays)
}

func TestNetworkErrorRetried(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // nothing listens: every attempt is a network-level failure

	var delays []time.Duration
	fdSDK := newTestSDK(ts, &delays)

	_, err := fdSDK.Erogations(sdk.PageMetadata{Page: 1, Limit: 25})
	require.NotNil(t, err, "expected connection failure to surface")
	assert.Equal(t, 0, err.StatusCode(), "network failures carry no HTTP status")
	assert.Len(t, delays, 3, "network failures consume the full retry budget")
}

func TestTolerantContentNegotiation(t *testing.T) {
	cases := []struct {
		desc        string
		status      int
		contentType string
		body        string
		ok          bool
	}{
		{
			desc:        "empty JSON body on success status",
			status:      http.StatusOK,
			contentType: "application/json",
			body:        "",
			ok:          true,
		},
		{
			desc:        "malformed JSON body on success status",
			status:      http.StatusOK,
			contentType: "application/json",
			body:        "{not json",
			ok:          true,
		},
	}

	for _, tc := range cases {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", tc.contentType)
			w.WriteHeader(tc.status)
			_, _ = w.Write([]byte(tc.body))
		}))

		fdSDK := newTestSDK(ts, nil)
		err := fdSDK.ResetParameters()
		if tc.ok {
			assert.Nil(t, err, fmt.Sprintf("%s: expected synthesized success, got %v", tc.desc, err))
		} else {
			assert.NotNil(t, err, fmt.Sprintf("%s: expected failure", tc.desc))
		}
		ts.Close()
	}
}

func TestNoContentResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	fdSDK := newTestSDK(ts, nil)
	err := fdSDK.DeleteDriver("04A1B2C3")
	assert.Nil(t, err, fmt.Sprintf("204 is success with no payload, got %v", err))
}

func TestQueryParams(t *testing.T) {
	var gotQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		jsonHandler(http.StatusOK, `{"total":0,"page":3,"limit":50,"items":[]}`)(w, r)
	}))
	defer ts.Close()

	fdSDK := newTestSDK(ts, nil)
	_, err := fdSDK.SearchVehicles(sdk.Filter{"plate": "AB123CD", "company_vehicle": ""}, sdk.PageMetadata{Page: 3, Limit: 50})
	require.Nil(t, err)
	assert.Contains(t, gotQuery, "page=3")
	assert.Contains(t, gotQuery, "limit=50")
	assert.Contains(t, gotQuery, "plate=AB123CD")
	assert.NotContains(t, gotQuery, "company_vehicle", "empty filter values must be dropped")
}
