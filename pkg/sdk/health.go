// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package sdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/petrolsys/fueldash/pkg/errors"
)

func (sdk fdSDK) Health() (HealthInfo, errors.SDKError) {
	url := fmt.Sprintf("%s/health", sdk.stationURL)

	_, body, sdkerr := sdk.processRequest(http.MethodGet, url, nil, nil, http.StatusOK)
	if sdkerr != nil {
		return HealthInfo{}, sdkerr
	}

	var h HealthInfo
	if err := json.Unmarshal(body, &h); err != nil {
		return HealthInfo{}, errors.NewSDKError(err)
	}

	return h, nil
}
