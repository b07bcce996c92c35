// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package sdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/petrolsys/fueldash/pkg/errors"
)

const parametersEndpoint = "parameters"

// FuelSideParams configures one physical dispensing side: pins, pricing,
// calibration. The remaining fields are meaningful only when SideExists
// is set.
type FuelSideParams struct {
	SideExists                 bool    `json:"side_exists"`
	PulserPin                  int     `json:"pulser_pin"`
	NozzleSwitchPin            int     `json:"nozzle_switch_pin"`
	RelaySwitchPin             int     `json:"relay_switch_pin"`
	PulsesPerLiter             int     `json:"pulses_per_liter"`
	Price                      float64 `json:"price"`
	Product                    string  `json:"product"`
	IsAutomatic                bool    `json:"is_automatic"`
	RelayActivationDelay       int     `json:"relay_activation_delay"`
	NozzleSwitchInvertPolarity bool    `json:"nozzle_switch_invert_polarity"`
	MaxTimeWithoutFueling      int     `json:"max_time_without_fueling"`
	CalibrationFactor          float64 `json:"calibration_factor"`
	SimulationPulser           bool    `json:"simulation_pulser"`
}

// GuiSideParams configures the on-terminal button for one side.
type GuiSideParams struct {
	SideExists                 bool    `json:"side_exists"`
	ButtonText                 string  `json:"button_text"`
	ButtonWidth                int     `json:"button_width"`
	ButtonHeight               int     `json:"button_height"`
	ButtonColor                string  `json:"button_color"`
	ButtonBorderColor          string  `json:"button_border_color"`
	AutButtonColor             string  `json:"aut_button_color"`
	AutButtonBorderColor       string  `json:"aut_button_border_color"`
	InuseButtonColor           string  `json:"inuse_button_color"`
	InuseButtonBorderColor     string  `json:"inuse_button_border_color"`
	AvailableButtonColor       string  `json:"available_button_color"`
	AvailableButtonBorderColor string  `json:"available_button_border_color"`
	ButtonBorderWidth          int     `json:"button_border_width"`
	ButtonCornerRadius         int     `json:"button_corner_radius"`
	ButtonRelX                 float64 `json:"button_relx,omitempty"`
	ButtonRelY                 float64 `json:"button_rely,omitempty"`
	LabelText                  string  `json:"label_text"`
}

// MainParams holds the global terminal labels and the selection timeout.
type MainParams struct {
	AutomaticModeText  string `json:"automatic_mode_text"`
	ManualModeText     string `json:"manual_mode_text"`
	SelectionLabelText string `json:"selection_label_text"`
	RefuelLabelText    string `json:"refuel_label_text"`
	ExportLabelText    string `json:"export_label_text"`
	MaxSelectionTime   int    `json:"max_selection_time"`
}

// ParameterSet is the full nested terminal configuration, loaded and
// written back wholesale. Side maps are keyed "side_1".."side_N".
type ParameterSet struct {
	FuelSides      map[string]FuelSideParams `json:"fuel_sides"`
	GuiSides       map[string]GuiSideParams  `json:"gui_sides"`
	MainParameters MainParams                `json:"main_parameters"`
}

// SideKey formats the wire key of side n.
func SideKey(n int) string {
	return fmt.Sprintf("side_%d", n)
}

func (sdk fdSDK) Parameters() (ParameterSet, errors.SDKError) {
	url := fmt.Sprintf("%s/%s/", sdk.stationURL, parametersEndpoint)

	_, body, sdkerr := sdk.processRequest(http.MethodGet, url, nil, nil, http.StatusOK)
	if sdkerr != nil {
		return ParameterSet{}, sdkerr
	}

	var ps ParameterSet
	if err := json.Unmarshal(body, &ps); err != nil {
		return ParameterSet{}, errors.NewSDKError(err)
	}

	return ps, nil
}

func (sdk fdSDK) UpdateParameters(ps ParameterSet) (ParameterSet, errors.SDKError) {
	data, err := json.Marshal(ps)
	if err != nil {
		return ParameterSet{}, errors.NewSDKError(err)
	}

	url := fmt.Sprintf("%s/%s/", sdk.stationURL, parametersEndpoint)

	_, body, sdkerr := sdk.processRequest(http.MethodPut, url, data, nil, http.StatusOK)
	if sdkerr != nil {
		return ParameterSet{}, sdkerr
	}

	ps = ParameterSet{}
	if err := json.Unmarshal(body, &ps); err != nil {
		return ParameterSet{}, errors.NewSDKError(err)
	}

	return ps, nil
}

func (sdk fdSDK) ResetParameters() errors.SDKError {
	url := fmt.Sprintf("%s/%s/reset", sdk.stationURL, parametersEndpoint)

	_, body, sdkerr := sdk.processRequest(http.MethodPost, url, nil, nil, http.StatusNoContent, http.StatusOK)
	if sdkerr != nil {
		return sdkerr
	}

	// A 204 yields no body; an explicit success marker is equally fine.
	// Anything else is a malformed reset acknowledgement.
	if body == nil {
		return nil
	}
	var ack struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(body, &ack); err != nil {
		return errors.NewSDKError(err)
	}
	if ack.Status != "success" {
		return errors.NewSDKError(errors.ErrFailedUpdate)
	}

	return nil
}
