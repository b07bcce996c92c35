// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package sdk

// ErogationsPage contains a page of dispensation records.
type ErogationsPage struct {
	Items []Erogation `json:"items"`
	PageMetadata
}

// VehiclesPage contains a page of vehicle records.
type VehiclesPage struct {
	Items []Vehicle `json:"items"`
	PageMetadata
}

// DriversPage contains a page of driver records.
type DriversPage struct {
	Items []Driver `json:"items"`
	PageMetadata
}

// HealthInfo contains the terminal service health check response.
type HealthInfo struct {
	// Status contains the service status.
	Status string `json:"status"`

	// Version contains the backend service version.
	Version string `json:"version,omitempty"`

	// Description contains the service description.
	Description string `json:"description,omitempty"`
}
