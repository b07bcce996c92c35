// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package dashboard implements the administration session for a
// fuel-dispensing terminal: paging, search, CRUD and CSV export over the
// dispensation, vehicle and driver collections, plus the nested terminal
// parameters. All state is owned by a Session instance.
package dashboard

import (
	"log/slog"

	sdk "github.com/petrolsys/fueldash/pkg/sdk"
)

// DefSides is the number of dispensing sides a terminal exposes unless
// configured otherwise.
const DefSides = 2

// Config assembles a session. Zero fields fall back to defaults; a nil
// Confirm denies every destructive operation.
type Config struct {
	SDK      sdk.SDK
	Notifier Notifier
	Renderer Renderer
	Logger   *slog.Logger

	// Confirm gates destructive operations. It receives the prompt text
	// and reports whether the user approved.
	Confirm func(prompt string) bool

	// Sides is the number of configurable dispensing sides.
	Sides int

	PageSize uint64
}

// Session is the stateful core of the dashboard: one PageState and one
// record cache per section, plus an in-flight guard that coalesces
// re-entrant load and search triggers.
type Session struct {
	sdk      sdk.SDK
	notifier Notifier
	renderer Renderer
	confirm  func(prompt string) bool
	logger   *slog.Logger
	sides    int

	pages    map[Section]*PageState
	inFlight map[Section]bool

	vehiclesCache map[string]sdk.Vehicle
	driversCache  map[string]sdk.Driver
}

// NewSession returns a session with freshly initialized per-section state.
func NewSession(cfg Config) *Session {
	if cfg.Notifier == nil {
		cfg.Notifier = noopNotifier{}
	}
	if cfg.Renderer == nil {
		cfg.Renderer = noopRenderer{}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Confirm == nil {
		cfg.Confirm = func(string) bool { return false }
	}
	if cfg.Sides <= 0 {
		cfg.Sides = DefSides
	}
	if cfg.PageSize == 0 {
		cfg.PageSize = DefPageSize
	}

	pages := make(map[Section]*PageState, 3)
	for _, section := range []Section{SectionDispenses, SectionVehicles, SectionDrivers} {
		pages[section] = &PageState{CurrentPage: 1, PageSize: cfg.PageSize}
	}

	return &Session{
		sdk:      cfg.SDK,
		notifier: cfg.Notifier,
		renderer: cfg.Renderer,
		confirm:  cfg.Confirm,
		logger:   cfg.Logger,
		sides:    cfg.Sides,
		pages:    pages,
		inFlight: make(map[Section]bool, 3),
	}
}

// Page returns a copy of a section's paging state.
func (s *Session) Page(section Section) PageState {
	if st, ok := s.pages[section]; ok {
		return *st
	}
	return PageState{}
}

// SetPageSize changes a section's page size, resets it to the first page
// and reloads it.
func (s *Session) SetPageSize(section Section, size uint64) error {
	if size == 0 {
		return nil
	}
	st := s.pages[section]
	st.PageSize = size
	st.CurrentPage = 1
	return s.reload(section)
}

// NextPage advances a section by one page; a no-op at the last page.
func (s *Session) NextPage(section Section) error {
	st := s.pages[section]
	if !st.HasNext() {
		return nil
	}
	return s.load(section, st.CurrentPage+1)
}

// PreviousPage moves a section back one page; a no-op at the first page.
func (s *Session) PreviousPage(section Section) error {
	st := s.pages[section]
	if !st.HasPrevious() {
		return nil
	}
	return s.load(section, st.CurrentPage-1)
}

// Window returns the page-link window for a section's current state.
func (s *Session) Window(section Section) []PageRef {
	st := s.pages[section]
	return PageWindow(st.CurrentPage, st.TotalPages())
}

func (s *Session) reload(section Section) error {
	return s.load(section, 0)
}

func (s *Session) load(section Section, page uint64) error {
	switch section {
	case SectionDispenses:
		return s.LoadErogations(page)
	case SectionVehicles:
		return s.LoadVehicles(page)
	case SectionDrivers:
		return s.LoadDrivers(page)
	}
	return nil
}

// begin marks a section busy. It reports false when a load or search is
// already in flight, in which case the trigger is dropped.
func (s *Session) begin(section Section) bool {
	if s.inFlight[section] {
		s.logger.Debug("request already in flight", slog.String("section", string(section)))
		return false
	}
	s.inFlight[section] = true
	return true
}

func (s *Session) end(section Section) {
	s.inFlight[section] = false
}

// totalOf applies the list-envelope fallback: when the server omits the
// total, the page's own length stands in.
func totalOf(total uint64, count int) uint64 {
	if total != 0 {
		return total
	}
	return uint64(count)
}
