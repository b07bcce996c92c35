// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package dashboard

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/petrolsys/fueldash/pkg/errors"
	sdk "github.com/petrolsys/fueldash/pkg/sdk"
)

// kmPattern is the numeric shape the odometer field must match before any
// request leaves the session: digits with at most one decimal point.
var kmPattern = regexp.MustCompile(`^\d*\.?\d+$`)

// LoadVehicles fetches a page of vehicles and refreshes the section. A
// page of 0 keeps the current page. On failure the requested page is
// reverted to 1 so a bad deep link cannot wedge the section.
func (s *Session) LoadVehicles(page uint64) error {
	if !s.begin(SectionVehicles) {
		return nil
	}
	defer s.end(SectionVehicles)

	st := s.pages[SectionVehicles]
	if page != 0 {
		st.CurrentPage = page
	}

	data, sdkerr := s.sdk.Vehicles(sdk.PageMetadata{Page: st.CurrentPage, Limit: st.PageSize})
	if sdkerr != nil {
		s.toastError("Caricamento veicoli fallito", sdkerr)
		if page != 0 {
			st.CurrentPage = 1
		}
		return sdkerr
	}

	st.TotalItems = totalOf(data.Total, len(data.Items))
	s.vehiclesCache = make(map[string]sdk.Vehicle, len(data.Items))
	for _, v := range data.Items {
		s.vehiclesCache[v.VehicleID] = v
	}

	s.renderer.RenderVehicles(data.Items)
	s.notifier.Notify(Success, fmt.Sprintf("Veicoli caricati (pagina %d)", st.CurrentPage))
	return nil
}

// SearchVehicles runs a validated field or free-text search, always from
// page 1. An empty term falls back to a plain load.
func (s *Session) SearchVehicles(raw string) error {
	st := s.pages[SectionVehicles]
	st.CurrentPage = 1

	raw = strings.TrimSpace(raw)
	if raw == "" {
		s.notifier.Notify(Warning, "Inserire un termine di ricerca")
		return s.LoadVehicles(0)
	}

	filter := ParseSearchQuery(raw)
	if err := ValidateSearchParams(SectionVehicles, filter); err != nil {
		s.notifier.Notify(Warning, err.Error())
		return err
	}

	if !s.begin(SectionVehicles) {
		return nil
	}
	defer s.end(SectionVehicles)

	data, sdkerr := s.sdk.SearchVehicles(filter, sdk.PageMetadata{Page: st.CurrentPage, Limit: st.PageSize})
	if sdkerr != nil {
		s.toastError("Ricerca fallita", sdkerr)
		// stale rows must not survive next to an error toast
		s.renderer.RenderVehicles(nil)
		st.TotalItems = 0
		return sdkerr
	}

	st.TotalItems = totalOf(data.Total, len(data.Items))
	s.vehiclesCache = make(map[string]sdk.Vehicle, len(data.Items))
	for _, v := range data.Items {
		s.vehiclesCache[v.VehicleID] = v
	}
	s.renderer.RenderVehicles(data.Items)

	s.notifySearchOutcome(len(data.Items), st.TotalItems,
		"Nessun veicolo corrispondente ai criteri di ricerca",
		"Mostrati %d di %d veicoli corrispondenti",
		"Trovati %d veicoli corrispondenti")
	return nil
}

// SubmitVehicle creates a vehicle, or updates one when originalID carries
// the identity the record had before editing. The odometer field is
// validated locally first; no request is sent on mismatch.
func (s *Session) SubmitVehicle(v sdk.Vehicle, originalID string) error {
	km := strings.TrimSpace(v.VehicleTotalKm)
	if km != "" && !kmPattern.MatchString(km) {
		s.notifier.Notify(Warning, "I chilometri devono essere un valore numerico")
		return errors.Wrap(errors.ErrMalformedEntity, errors.New("vehicle_total_km must be numeric"))
	}
	if km == "" {
		km = "0"
	}
	v.VehicleTotalKm = km

	var sdkerr errors.SDKError
	action := "creato"
	if originalID == "" {
		_, sdkerr = s.sdk.CreateVehicle(v)
	} else {
		_, sdkerr = s.sdk.UpdateVehicle(originalID, v)
		action = "aggiornato"
	}
	if sdkerr != nil {
		s.toastError("Operazione veicolo fallita", sdkerr)
		return sdkerr
	}

	s.vehiclesCache = nil
	if err := s.LoadVehicles(0); err != nil {
		return err
	}
	s.notifier.Notify(Success, fmt.Sprintf("Veicolo %s con successo", action))
	return nil
}

// EditVehicle resolves a vehicle for editing from the cached page,
// loading the section first if no cache is valid. A record absent from
// the last-loaded page is an error, not a fetch-by-id fallback.
func (s *Session) EditVehicle(id string) (sdk.Vehicle, error) {
	if s.vehiclesCache == nil {
		if err := s.LoadVehicles(0); err != nil {
			return sdk.Vehicle{}, err
		}
	}

	v, ok := s.vehiclesCache[id]
	if !ok {
		err := errors.Wrap(errors.ErrNotFound, errors.New("Veicolo non trovato"))
		s.notifier.Notify(Danger, "Errore durante la modifica: Veicolo non trovato")
		return sdk.Vehicle{}, err
	}
	return v, nil
}

// DeleteVehicle removes a vehicle after confirmation. The cache is
// invalidated only on success: a failed delete leaves the section intact.
func (s *Session) DeleteVehicle(id string) error {
	if !s.confirm(fmt.Sprintf("Sei sicuro di voler eliminare il veicolo con ID: %s?", id)) {
		return nil
	}

	if sdkerr := s.sdk.DeleteVehicle(id); sdkerr != nil {
		s.toastError("Veicolo non eliminato", sdkerr)
		return sdkerr
	}

	s.vehiclesCache = nil
	if err := s.LoadVehicles(0); err != nil {
		return err
	}
	s.notifier.Notify(Success, "Veicolo eliminato con successo")
	return nil
}

// ExportVehicles fetches the whole collection and writes it as CSV,
// returning the deterministic filename.
func (s *Session) ExportVehicles(w io.Writer) (string, error) {
	data, sdkerr := s.sdk.Vehicles(sdk.PageMetadata{})
	if sdkerr != nil {
		s.notifier.Notify(Danger, fmt.Sprintf("Errore durante l'esportazione: %s", ToMessage(sdkerr)))
		return "", sdkerr
	}

	rows := make([][]string, 0, len(data.Items))
	for _, v := range data.Items {
		rows = append(rows, vehicleCSVRow(v))
	}
	if err := WriteCSV(w, vehicleCSVHeaders, rows); err != nil {
		s.notifier.Notify(Danger, fmt.Sprintf("Errore durante l'esportazione: %s", ToMessage(err)))
		return "", err
	}

	s.notifier.Notify(Success, "Tutti i veicoli esportati con successo")
	return VehiclesCSVName, nil
}

// notifySearchOutcome distinguishes zero results from a partial page and
// from a fully shown result set.
func (s *Session) notifySearchOutcome(count int, total uint64, emptyMsg, partialFmt, fullFmt string) {
	switch {
	case count == 0:
		s.notifier.Notify(Info, emptyMsg)
	case total > uint64(count):
		s.notifier.Notify(Success, fmt.Sprintf(partialFmt, count, total))
	default:
		s.notifier.Notify(Success, fmt.Sprintf(fullFmt, count))
	}
}
