// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package errors

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Keys probed, most specific first, when extracting a message
// from a JSON error body.
var bodyMsgKeys = []string{"message", "error", "detail"}

// SDKError is an error type returned by the fueldash SDK. It carries the
// HTTP status code of the failed response and its raw body so that callers
// can translate backend payloads (validation maps, constraint messages)
// into something presentable.
type SDKError interface {
	Error
	StatusCode() int
	Body() []byte
}

var _ SDKError = (*sdkError)(nil)

type sdkError struct {
	*customError
	statusCode int
	body       []byte
}

func (ce *sdkError) Error() string {
	if ce == nil {
		return ""
	}
	if ce.statusCode == 0 {
		return ce.customError.Error()
	}
	return fmt.Sprintf("Status: %s: %s", http.StatusText(ce.statusCode), ce.customError.Error())
}

func (ce *sdkError) StatusCode() int {
	return ce.statusCode
}

func (ce *sdkError) Body() []byte {
	return ce.body
}

// NewSDKError returns an SDK Error with no HTTP status attached. Used for
// network-level failures where no response was obtained.
func NewSDKError(err error) SDKError {
	return &sdkError{
		customError: &customError{
			msg: err.Error(),
			err: nil,
		},
		statusCode: 0,
	}
}

// NewSDKErrorWithStatus returns an SDK Error setting the status code.
func NewSDKErrorWithStatus(err error, statusCode int) SDKError {
	return &sdkError{
		statusCode: statusCode,
		customError: &customError{
			msg: err.Error(),
			err: nil,
		},
	}
}

// NewSDKErrorWithBody returns an SDK Error carrying the status code and the
// raw response body of the failed request.
func NewSDKErrorWithBody(err error, statusCode int, body []byte) SDKError {
	return &sdkError{
		statusCode: statusCode,
		body:       body,
		customError: &customError{
			msg: err.Error(),
			err: nil,
		},
	}
}

// CheckError matches the response status against the expected ones and, on
// mismatch, builds an SDKError from the response body. The body is retained
// verbatim; a message is extracted from well-known JSON keys when present.
func CheckError(resp *http.Response, expectedStatusCodes ...int) SDKError {
	for _, expected := range expectedStatusCodes {
		if resp.StatusCode == expected {
			return nil
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return NewSDKErrorWithStatus(err, resp.StatusCode)
	}

	var content map[string]interface{}
	if err := json.Unmarshal(body, &content); err != nil {
		return NewSDKErrorWithBody(New(http.StatusText(resp.StatusCode)), resp.StatusCode, body)
	}

	for _, key := range bodyMsgKeys {
		if msg, ok := content[key]; ok {
			if v, ok := msg.(string); ok {
				return NewSDKErrorWithBody(New(v), resp.StatusCode, body)
			}
		}
	}

	return NewSDKErrorWithBody(New(http.StatusText(resp.StatusCode)), resp.StatusCode, body)
}
