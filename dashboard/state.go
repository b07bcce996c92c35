// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package dashboard

// Section identifies one resource area of the dashboard.
type Section string

const (
	SectionDispenses Section = "dispenses"
	SectionVehicles  Section = "vehicles"
	SectionDrivers   Section = "drivers"
)

// DefPageSize is the page size a fresh session starts with.
const DefPageSize uint64 = 25

// PageState tracks paging for one section. It is owned by the session and
// mutated only by load and search operations or by the paging controls.
type PageState struct {
	CurrentPage uint64
	PageSize    uint64
	TotalItems  uint64
}

// TotalPages derives the page count, zero when the collection is empty.
func (ps PageState) TotalPages() uint64 {
	if ps.TotalItems == 0 || ps.PageSize == 0 {
		return 0
	}
	return (ps.TotalItems + ps.PageSize - 1) / ps.PageSize
}

// HasPrevious reports whether a previous page exists.
func (ps PageState) HasPrevious() bool {
	return ps.CurrentPage > 1
}

// HasNext reports whether a next page exists.
func (ps PageState) HasNext() bool {
	return ps.CurrentPage < ps.TotalPages()
}
