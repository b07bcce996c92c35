// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package dashboard

import (
	"fmt"
	"io"
	"strings"
	"time"

	sdk "github.com/petrolsys/fueldash/pkg/sdk"
)

// LoadErogations fetches a page of dispensation records. A page of 0
// keeps the current page; a failed explicit page request reverts to 1.
func (s *Session) LoadErogations(page uint64) error {
	if !s.begin(SectionDispenses) {
		return nil
	}
	defer s.end(SectionDispenses)

	st := s.pages[SectionDispenses]
	if page != 0 {
		st.CurrentPage = page
	}

	data, sdkerr := s.sdk.Erogations(sdk.PageMetadata{Page: st.CurrentPage, Limit: st.PageSize})
	if sdkerr != nil {
		s.toastError("Caricamento fallito", sdkerr)
		if page != 0 {
			st.CurrentPage = 1
		}
		return sdkerr
	}

	st.TotalItems = totalOf(data.Total, len(data.Items))
	s.renderer.RenderErogations(data.Items)
	s.notifier.Notify(Success, fmt.Sprintf("Pagina %d di %d", st.CurrentPage, st.TotalPages()))
	return nil
}

// SearchErogations searches the dispensation records by a field or
// free-text term, a time range, or both, always from page 1. With neither
// a term nor a range it falls back to a plain load: dispenses are the one
// section where a time range alone is a valid criterion.
func (s *Session) SearchErogations(raw string, start, end time.Time) error {
	st := s.pages[SectionDispenses]
	st.CurrentPage = 1

	raw = strings.TrimSpace(raw)
	if raw == "" && start.IsZero() && end.IsZero() {
		s.notifier.Notify(Warning, "Inserire un termine di ricerca")
		return s.LoadErogations(0)
	}

	filter := sdk.Filter{}
	if raw != "" {
		filter = ParseSearchQuery(raw)
		if err := ValidateSearchParams(SectionDispenses, filter); err != nil {
			s.notifier.Notify(Warning, err.Error())
			return err
		}
	}

	if !s.begin(SectionDispenses) {
		return nil
	}
	defer s.end(SectionDispenses)

	pm := sdk.PageMetadata{
		Page:      st.CurrentPage,
		Limit:     st.PageSize,
		StartTime: start,
		EndTime:   end,
	}
	data, sdkerr := s.sdk.SearchErogations(filter, pm)
	if sdkerr != nil {
		s.toastError("Ricerca fallita", sdkerr)
		s.renderer.RenderErogations(nil)
		st.TotalItems = 0
		return sdkerr
	}

	st.TotalItems = totalOf(data.Total, len(data.Items))
	s.renderer.RenderErogations(data.Items)

	s.notifySearchOutcome(len(data.Items), st.TotalItems,
		"Nessuna erogazione corrispondente ai criteri di ricerca",
		"Mostrate %d di %d erogazioni corrispondenti",
		"Trovate %d erogazioni corrispondenti")
	return nil
}

// DeleteAllErogations wipes the whole dispensation history after
// confirmation. On success the section is zeroed locally: the collection
// is known empty, no reload round trip is needed.
func (s *Session) DeleteAllErogations() error {
	if !s.confirm("Sei sicuro di voler eliminare TUTTE le erogazioni? L'operazione è irreversibile.") {
		return nil
	}

	if sdkerr := s.sdk.DeleteErogations(); sdkerr != nil {
		s.toastError("Eliminazione fallita", sdkerr)
		return sdkerr
	}

	st := s.pages[SectionDispenses]
	st.TotalItems = 0
	st.CurrentPage = 1
	s.renderer.RenderErogations(nil)
	s.notifier.Notify(Success, "Erogazioni eliminate con successo")
	return nil
}

// ExportErogations fetches the whole collection and writes it as CSV.
func (s *Session) ExportErogations(w io.Writer) (string, error) {
	data, sdkerr := s.sdk.Erogations(sdk.PageMetadata{})
	if sdkerr != nil {
		s.notifier.Notify(Danger, fmt.Sprintf("Errore durante l'esportazione: %s", ToMessage(sdkerr)))
		return "", sdkerr
	}

	rows := make([][]string, 0, len(data.Items))
	for _, e := range data.Items {
		rows = append(rows, erogationCSVRow(e))
	}
	if err := WriteCSV(w, erogationCSVHeaders, rows); err != nil {
		s.notifier.Notify(Danger, fmt.Sprintf("Errore durante l'esportazione: %s", ToMessage(err)))
		return "", err
	}

	s.notifier.Notify(Success, "Tutte le erogazioni esportate con successo")
	return ErogationsCSVName, nil
}
