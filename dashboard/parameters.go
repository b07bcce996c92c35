// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package dashboard

import (
	sdk "github.com/petrolsys/fueldash/pkg/sdk"
)

// defaultFuelSide is the record a newly enabled side starts from when the
// terminal has no stored configuration for it.
func defaultFuelSide() sdk.FuelSideParams {
	return sdk.FuelSideParams{
		SideExists:     true,
		PulsesPerLiter: 1,
		IsAutomatic:    true,
	}
}

func defaultGuiSide() sdk.GuiSideParams {
	return sdk.GuiSideParams{
		SideExists: true,
	}
}

// LoadParameters fetches the full nested terminal configuration. Side maps
// are normalized so every configured side index is present, with disabled
// placeholder records where the terminal returned none.
func (s *Session) LoadParameters() (sdk.ParameterSet, error) {
	ps, sdkerr := s.sdk.Parameters()
	if sdkerr != nil {
		s.toastError("Caricamento parametri fallito", sdkerr)
		return sdk.ParameterSet{}, sdkerr
	}

	ps = s.normalizeParameters(ps)
	s.notifier.Notify(Success, "Parametri caricati con successo")
	return ps, nil
}

// ToggleFuelSide enables or disables one fuel side. Enabling re-fetches
// the stored configuration so the side is seeded with existing values
// rather than defaults; a fetch failure means the toggle must be reverted
// by the caller, signalled by the returned error.
func (s *Session) ToggleFuelSide(side int, enable bool) (sdk.FuelSideParams, error) {
	if !enable {
		return sdk.FuelSideParams{}, nil
	}

	ps, sdkerr := s.sdk.Parameters()
	if sdkerr != nil {
		s.notifier.Notify(Danger, "Caricamento parametri lato fallito")
		s.logger.Error("side parameters fetch failed", "side", side, "error", sdkerr)
		return sdk.FuelSideParams{}, sdkerr
	}

	if stored, ok := ps.FuelSides[sdk.SideKey(side)]; ok {
		stored.SideExists = true
		return stored, nil
	}
	return defaultFuelSide(), nil
}

// ToggleGuiSide is the GUI-side counterpart of ToggleFuelSide.
func (s *Session) ToggleGuiSide(side int, enable bool) (sdk.GuiSideParams, error) {
	if !enable {
		return sdk.GuiSideParams{}, nil
	}

	ps, sdkerr := s.sdk.Parameters()
	if sdkerr != nil {
		s.notifier.Notify(Danger, "Caricamento parametri lato fallito")
		s.logger.Error("side parameters fetch failed", "side", side, "error", sdkerr)
		return sdk.GuiSideParams{}, sdkerr
	}

	if stored, ok := ps.GuiSides[sdk.SideKey(side)]; ok {
		stored.SideExists = true
		return stored, nil
	}
	return defaultGuiSide(), nil
}

// SaveParameters writes the whole configuration back in a single bulk
// update. Missing sides are filled with disabled placeholder records so
// the payload always carries every configured side.
func (s *Session) SaveParameters(ps sdk.ParameterSet) error {
	ps = s.normalizeParameters(ps)

	if _, sdkerr := s.sdk.UpdateParameters(ps); sdkerr != nil {
		s.toastError("Salvataggio parametri fallito", sdkerr)
		return sdkerr
	}

	s.notifier.Notify(Success, "Parametri salvati con successo")
	return nil
}

// ResetParameters restores the factory configuration after confirmation
// and reloads the parameter set on success.
func (s *Session) ResetParameters() (sdk.ParameterSet, error) {
	if !s.confirm("Sei sicuro di voler ripristinare i parametri ai valori predefiniti?") {
		return sdk.ParameterSet{}, nil
	}

	if sdkerr := s.sdk.ResetParameters(); sdkerr != nil {
		s.toastError("Ripristino non riuscito", sdkerr)
		return sdk.ParameterSet{}, sdkerr
	}

	ps, sdkerr := s.sdk.Parameters()
	if sdkerr != nil {
		s.toastError("Caricamento parametri fallito", sdkerr)
		return sdk.ParameterSet{}, sdkerr
	}

	s.notifier.Notify(Success, "Parametri ripristinati ai valori predefiniti")
	return s.normalizeParameters(ps), nil
}

func (s *Session) normalizeParameters(ps sdk.ParameterSet) sdk.ParameterSet {
	if ps.FuelSides == nil {
		ps.FuelSides = make(map[string]sdk.FuelSideParams, s.sides)
	}
	if ps.GuiSides == nil {
		ps.GuiSides = make(map[string]sdk.GuiSideParams, s.sides)
	}
	for n := 1; n <= s.sides; n++ {
		key := sdk.SideKey(n)
		if _, ok := ps.FuelSides[key]; !ok {
			ps.FuelSides[key] = sdk.FuelSideParams{}
		}
		if _, ok := ps.GuiSides[key]; !ok {
			ps.GuiSides[key] = sdk.GuiSideParams{}
		}
	}
	return ps
}
