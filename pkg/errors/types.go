// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package errors

var (
	// ErrNotFound indicates a non-existent entity request.
	ErrNotFound = New("entity not found")

	// ErrConflict indicates that entity already exists.
	ErrConflict = New("entity already exists")

	// ErrMalformedEntity indicates a malformed entity specification.
	ErrMalformedEntity = New("malformed entity specification")

	// ErrFailedFetch indicates that fetching of entity data failed.
	ErrFailedFetch = New("failed to fetch entity")

	// ErrFailedCreation indicates that entity creation failed.
	ErrFailedCreation = New("failed to create entity")

	// ErrFailedUpdate indicates that entity update failed.
	ErrFailedUpdate = New("failed to update entity")

	// ErrFailedRemoval indicates that entity removal failed.
	ErrFailedRemoval = New("failed to remove entity")

	// ErrFailedExport indicates that collection export failed.
	ErrFailedExport = New("failed to export collection")

	// ErrEmptyCollection indicates an export was attempted on an empty collection.
	ErrEmptyCollection = New("no data to export")
)
