// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package sdk

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/petrolsys/fueldash/pkg/errors"
	"moul.io/http2curl"
)

const (
	// CTJSON represents JSON content type.
	CTJSON ContentType = "application/json"

	// DefMaxRetries is the default retry budget for transient failures.
	DefMaxRetries uint = 3

	// retryUnit is the base delay unit of the backoff schedule.
	retryUnit = 100 * time.Millisecond
)

// ContentType represents all possible content types.
type ContentType string

// Filter is a set of field/value pairs forwarded verbatim as search
// query parameters. Keys are validated upstream against the section's
// allowed-field list before any request is issued.
type Filter map[string]string

// successBody substitutes empty or malformed JSON bodies on responses
// whose status is in the success range.
var successBody = []byte(`{"status":"success"}`)

var _ SDK = (*fdSDK)(nil)

// PageMetadata contains page-related parameters of list requests and the
// total count reported back by the terminal.
type PageMetadata struct {
	Total     uint64    `json:"total"`
	Page      uint64    `json:"page"`
	Limit     uint64    `json:"limit"`
	Query     string    `json:"q,omitempty"`
	StartTime time.Time `json:"start_time,omitempty"`
	EndTime   time.Time `json:"end_time,omitempty"`
}

// SDK contains the fuel terminal administration API.
//
//go:generate mockery --name SDK --output=./mocks --filename sdk.go --quiet
type SDK interface {
	// Erogations returns a page of recorded fuel dispensations.
	//
	// example:
	//  pm := sdk.PageMetadata{
	//    Page:  1,
	//    Limit: 25,
	//  }
	//  page, _ := sdk.Erogations(pm)
	//  fmt.Println(page)
	Erogations(pm PageMetadata) (ErogationsPage, errors.SDKError)

	// SearchErogations filters dispensations by field values and/or a time
	// range and returns a page result.
	//
	// example:
	//  page, _ := sdk.SearchErogations(sdk.Filter{"card": "A1B2"}, pm)
	//  fmt.Println(page)
	SearchErogations(filter Filter, pm PageMetadata) (ErogationsPage, errors.SDKError)

	// Erogation returns a single dispensation record by its numeric id.
	Erogation(id uint64) (Erogation, errors.SDKError)

	// CreateErogation appends a new dispensation record. This is the call
	// the dispensing terminal itself issues after a refuel completes.
	CreateErogation(e Erogation) (Erogation, errors.SDKError)

	// DeleteErogations removes every dispensation record. Irreversible.
	DeleteErogations() errors.SDKError

	// Vehicles returns a page of registered vehicles.
	Vehicles(pm PageMetadata) (VehiclesPage, errors.SDKError)

	// SearchVehicles filters vehicles and returns a page result.
	SearchVehicles(filter Filter, pm PageMetadata) (VehiclesPage, errors.SDKError)

	// Vehicle returns a vehicle by its identifier.
	Vehicle(id string) (Vehicle, errors.SDKError)

	// VehicleByPlate returns a vehicle by license plate.
	VehicleByPlate(plate string) (Vehicle, errors.SDKError)

	// CreateVehicle registers a new vehicle.
	//
	// example:
	//  v := sdk.Vehicle{
	//    VehicleID:      "V-042",
	//    CompanyVehicle: "ACME Logistics",
	//    Plate:          "AB123CD",
	//  }
	//  v, _ := sdk.CreateVehicle(v)
	//  fmt.Println(v)
	CreateVehicle(v Vehicle) (Vehicle, errors.SDKError)

	// UpdateVehicle replaces an existing vehicle, addressed by the given
	// (possibly prior) identifier.
	UpdateVehicle(id string, v Vehicle) (Vehicle, errors.SDKError)

	// DeleteVehicle removes a vehicle by its identifier.
	DeleteVehicle(id string) errors.SDKError

	// Drivers returns a page of registered drivers.
	Drivers(pm PageMetadata) (DriversPage, errors.SDKError)

	// SearchDrivers filters drivers and returns a page result.
	SearchDrivers(filter Filter, pm PageMetadata) (DriversPage, errors.SDKError)

	// Driver returns a driver by RFID card.
	Driver(card string) (Driver, errors.SDKError)

	// CreateDriver registers a new driver.
	CreateDriver(d Driver) (Driver, errors.SDKError)

	// UpdateDriver replaces an existing driver, addressed by RFID card.
	UpdateDriver(card string, d Driver) (Driver, errors.SDKError)

	// DeleteDriver removes a driver by RFID card.
	DeleteDriver(card string) errors.SDKError

	// Parameters returns the full nested terminal configuration.
	Parameters() (ParameterSet, errors.SDKError)

	// UpdateParameters replaces the full terminal configuration in one
	// bulk write. There are no partial-update semantics.
	UpdateParameters(ps ParameterSet) (ParameterSet, errors.SDKError)

	// ResetParameters restores the factory configuration.
	ResetParameters() errors.SDKError

	// Health returns the terminal service health check.
	Health() (HealthInfo, errors.SDKError)
}

type fdSDK struct {
	stationURL string
	maxRetries uint

	client   *http.Client
	sleep    func(time.Duration)
	curlFlag bool
}

// Config contains sdk configuration parameters.
type Config struct {
	StationURL string
	MaxRetries uint

	TLSVerification bool
	CurlFlag        bool

	// Sleep suspends between retry attempts; defaults to time.Sleep.
	// Injectable so the backoff schedule can be tested without timers.
	Sleep func(time.Duration)
}

// NewSDK returns a new fueldash SDK instance.
func NewSDK(conf Config) SDK {
	if conf.MaxRetries == 0 {
		conf.MaxRetries = DefMaxRetries
	}
	if conf.Sleep == nil {
		conf.Sleep = time.Sleep
	}
	return &fdSDK{
		stationURL: conf.StationURL,
		maxRetries: conf.MaxRetries,
		sleep:      conf.Sleep,
		client: &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{
					InsecureSkipVerify: !conf.TLSVerification,
				},
			},
		},
		curlFlag: conf.CurlFlag,
	}
}

// processRequest sends an HTTP request and checks the response against the
// expected status codes, retrying transient failures with exponential
// backoff. Retries apply only to network-level failures and 5xx responses;
// 4xx responses fail immediately and DELETE requests are never replayed.
// The delay before each retry is 2^remaining × 100ms, so a budget of three
// yields 800ms, 400ms, 200ms before the last error is surfaced.
func (sdk fdSDK) processRequest(method, reqURL string, data []byte, headers map[string]string, expectedRespCodes ...int) (http.Header, []byte, errors.SDKError) {
	remaining := sdk.maxRetries
	for {
		hdr, body, sdkerr := sdk.doRequest(method, reqURL, data, headers, expectedRespCodes...)
		if sdkerr == nil {
			return hdr, body, nil
		}
		if method == http.MethodDelete || remaining == 0 || !retryable(sdkerr) {
			return hdr, body, sdkerr
		}
		sdk.sleep(time.Duration(1<<remaining) * retryUnit)
		remaining--
	}
}

// retryable reports whether a failure may resolve on its own: either no
// response was obtained at all, or the terminal answered with a 5xx.
func retryable(err errors.SDKError) bool {
	return err.StatusCode() == 0 || err.StatusCode() >= http.StatusInternalServerError
}

func (sdk fdSDK) doRequest(method, reqURL string, data []byte, headers map[string]string, expectedRespCodes ...int) (http.Header, []byte, errors.SDKError) {
	req, err := http.NewRequest(method, reqURL, bytes.NewReader(data))
	if err != nil {
		return make(http.Header), []byte{}, errors.NewSDKError(err)
	}

	// Sets a default value for the Content-Type.
	// Overridden if Content-Type is passed in the headers arguments.
	req.Header.Add("Content-Type", string(CTJSON))

	for key, value := range headers {
		req.Header.Add(key, value)
	}

	if sdk.curlFlag {
		curlCommand, err := http2curl.GetCurlCommand(req)
		if err != nil {
			return nil, nil, errors.NewSDKError(err)
		}
		log.Println(curlCommand.String())
	}

	resp, err := sdk.client.Do(req)
	if err != nil {
		return make(http.Header), []byte{}, errors.NewSDKError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return resp.Header, nil, nil
	}

	sdkerr := errors.CheckError(resp, expectedRespCodes...)
	if sdkerr != nil {
		return resp.Header, sdkerr.Body(), sdkerr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return make(http.Header), []byte{}, errors.NewSDKError(err)
	}

	// The terminal occasionally answers success statuses with empty or
	// malformed JSON bodies; tolerate those instead of failing the call.
	if isJSON(resp.Header.Get("Content-Type")) && !json.Valid(body) {
		body = successBody
	}

	return resp.Header, body, nil
}

func isJSON(contentType string) bool {
	return strings.Contains(contentType, string(CTJSON))
}

func (sdk fdSDK) withQueryParams(baseURL, endpoint string, pm PageMetadata) (string, error) {
	q, err := pm.query()
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/%s?%s", baseURL, endpoint, q.Encode()), nil
}

// withSearchParams merges the validated filter fields into the paging
// query string. Empty filter values are dropped, matching the terminal's
// treatment of absent search criteria.
func (sdk fdSDK) withSearchParams(baseURL, endpoint string, filter Filter, pm PageMetadata) (string, error) {
	q, err := pm.query()
	if err != nil {
		return "", err
	}
	for key, value := range filter {
		if value != "" {
			q.Add(key, value)
		}
	}

	return fmt.Sprintf("%s/%s?%s", baseURL, endpoint, q.Encode()), nil
}

func (pm PageMetadata) query() (url.Values, error) {
	q := url.Values{}
	if pm.Page != 0 {
		q.Add("page", strconv.FormatUint(pm.Page, 10))
	}
	if pm.Limit != 0 {
		q.Add("limit", strconv.FormatUint(pm.Limit, 10))
	}
	if pm.Query != "" {
		q.Add("q", pm.Query)
	}
	if !pm.StartTime.IsZero() {
		q.Add("start_time", pm.StartTime.UTC().Format(time.RFC3339))
	}
	if !pm.EndTime.IsZero() {
		q.Add("end_time", pm.EndTime.UTC().Format(time.RFC3339))
	}

	return q, nil
}
