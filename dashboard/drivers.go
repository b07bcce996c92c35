// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package dashboard

import (
	"fmt"
	"io"
	"strings"

	"github.com/petrolsys/fueldash/pkg/errors"
	sdk "github.com/petrolsys/fueldash/pkg/sdk"
)

// LoadDrivers fetches a page of drivers and refreshes the section.
func (s *Session) LoadDrivers(page uint64) error {
	if !s.begin(SectionDrivers) {
		return nil
	}
	defer s.end(SectionDrivers)

	st := s.pages[SectionDrivers]
	if page != 0 {
		st.CurrentPage = page
	}

	data, sdkerr := s.sdk.Drivers(sdk.PageMetadata{Page: st.CurrentPage, Limit: st.PageSize})
	if sdkerr != nil {
		s.toastError("Caricamento autisti fallito", sdkerr)
		if page != 0 {
			st.CurrentPage = 1
		}
		return sdkerr
	}

	st.TotalItems = totalOf(data.Total, len(data.Items))
	s.driversCache = make(map[string]sdk.Driver, len(data.Items))
	for _, d := range data.Items {
		s.driversCache[d.Card] = d
	}

	s.renderer.RenderDrivers(data.Items)
	s.notifier.Notify(Success, fmt.Sprintf("Autisti caricati (pagina %d)", st.CurrentPage))
	return nil
}

// SearchDrivers runs a validated field or free-text search from page 1.
func (s *Session) SearchDrivers(raw string) error {
	st := s.pages[SectionDrivers]
	st.CurrentPage = 1

	raw = strings.TrimSpace(raw)
	if raw == "" {
		s.notifier.Notify(Warning, "Inserire un termine di ricerca")
		return s.LoadDrivers(0)
	}

	filter := ParseSearchQuery(raw)
	if err := ValidateSearchParams(SectionDrivers, filter); err != nil {
		s.notifier.Notify(Warning, err.Error())
		return err
	}

	if !s.begin(SectionDrivers) {
		return nil
	}
	defer s.end(SectionDrivers)

	data, sdkerr := s.sdk.SearchDrivers(filter, sdk.PageMetadata{Page: st.CurrentPage, Limit: st.PageSize})
	if sdkerr != nil {
		s.toastError("Ricerca fallita", sdkerr)
		s.renderer.RenderDrivers(nil)
		st.TotalItems = 0
		return sdkerr
	}

	st.TotalItems = totalOf(data.Total, len(data.Items))
	s.driversCache = make(map[string]sdk.Driver, len(data.Items))
	for _, d := range data.Items {
		s.driversCache[d.Card] = d
	}
	s.renderer.RenderDrivers(data.Items)

	s.notifySearchOutcome(len(data.Items), st.TotalItems,
		"Nessun autista corrispondente ai criteri di ricerca",
		"Mostrati %d di %d autisti corrispondenti",
		"Trovati %d autisti corrispondenti")
	return nil
}

// SubmitDriver creates or updates a driver. The PIN is required exactly
// when the request-PIN flag is set; a violation blocks the submission
// before any request is sent.
func (s *Session) SubmitDriver(d sdk.Driver, originalCard string) error {
	if d.RequestPin && strings.TrimSpace(d.Pin) == "" {
		s.notifier.Notify(Warning, "Il PIN è obbligatorio quando richiesto")
		return errors.Wrap(errors.ErrMalformedEntity, errors.New("pin required when request_pin is set"))
	}

	var sdkerr errors.SDKError
	action := "creato"
	if originalCard == "" {
		_, sdkerr = s.sdk.CreateDriver(d)
	} else {
		_, sdkerr = s.sdk.UpdateDriver(originalCard, d)
		action = "aggiornato"
	}
	if sdkerr != nil {
		s.toastError("Operazione autista fallita", sdkerr)
		return sdkerr
	}

	s.driversCache = nil
	if err := s.LoadDrivers(0); err != nil {
		return err
	}
	s.notifier.Notify(Success, fmt.Sprintf("Autista %s con successo", action))
	return nil
}

// EditDriver resolves a driver for editing from the cached page.
func (s *Session) EditDriver(card string) (sdk.Driver, error) {
	if s.driversCache == nil {
		if err := s.LoadDrivers(0); err != nil {
			return sdk.Driver{}, err
		}
	}

	d, ok := s.driversCache[card]
	if !ok {
		err := errors.Wrap(errors.ErrNotFound, errors.New("Autista non trovato"))
		s.notifier.Notify(Danger, "Errore durante la modifica: Autista non trovato")
		return sdk.Driver{}, err
	}
	return d, nil
}

// DeleteDriver removes a driver after confirmation.
func (s *Session) DeleteDriver(card string) error {
	if !s.confirm(fmt.Sprintf("Sei sicuro di voler eliminare l'autista con tessera: %s?", card)) {
		return nil
	}

	if sdkerr := s.sdk.DeleteDriver(card); sdkerr != nil {
		s.toastError("Autista non eliminato", sdkerr)
		return sdkerr
	}

	s.driversCache = nil
	if err := s.LoadDrivers(0); err != nil {
		return err
	}
	s.notifier.Notify(Success, "Autista eliminato con successo")
	return nil
}

// ExportDrivers fetches the whole collection and writes it as CSV.
func (s *Session) ExportDrivers(w io.Writer) (string, error) {
	data, sdkerr := s.sdk.Drivers(sdk.PageMetadata{})
	if sdkerr != nil {
		s.notifier.Notify(Danger, fmt.Sprintf("Errore durante l'esportazione: %s", ToMessage(sdkerr)))
		return "", sdkerr
	}

	rows := make([][]string, 0, len(data.Items))
	for _, d := range data.Items {
		rows = append(rows, driverCSVRow(d))
	}
	if err := WriteCSV(w, driverCSVHeaders, rows); err != nil {
		s.notifier.Notify(Danger, fmt.Sprintf("Errore durante l'esportazione: %s", ToMessage(err)))
		return "", err
	}

	s.notifier.Notify(Success, "Tutti gli autisti esportati con successo")
	return DriversCSVName, nil
}
