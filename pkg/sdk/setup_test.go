// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package sdk_test

import (
	"net/http"
	"net/http/httptest"
	"time"

	sdk "github.com/petrolsys/fueldash/pkg/sdk"
)

var (
	vehicle = sdk.Vehicle{
		VehicleID:        "V-001",
		CompanyVehicle:   "ACME Logistics",
		RequestVehicleKm: true,
		VehicleTotalKm:   "120563",
		Plate:            "AB123CD",
	}
	driver = sdk.Driver{
		Card:             "04A1B2C3",
		Company:          "ACME Logistics",
		DriverFullName:   "Mario Rossi",
		RequestPin:       true,
		RequestVehicleID: false,
		Pin:              "1234",
	}
	erogation = sdk.Erogation{
		ID:                 1,
		Card:               "04A1B2C3",
		Company:            "ACME Logistics",
		DriverFullName:     "Mario Rossi",
		VehicleID:          "V-001",
		ErogationSide:      1,
		DispensedLiters:    42.7,
		DispensedProduct:   "diesel",
		ErogationTimestamp: time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC),
		Mode:               "automatica",
	}
)

// newTestSDK builds an SDK against the given server with an instant sleep
// so retry tests run without timers. Recorded delays, when requested, end
// up in the provided slice.
func newTestSDK(ts *httptest.Server, delays *[]time.Duration) sdk.SDK {
	conf := sdk.Config{
		StationURL: ts.URL,
		MaxRetries: 3,
		Sleep: func(d time.Duration) {
			if delays != nil {
				*delays = append(*delays, d)
			}
		},
	}
	return sdk.NewSDK(conf)
}

func jsonHandler(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if body != "" {
			_, _ = w.Write([]byte(body))
		}
	}
}
