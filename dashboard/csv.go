// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package dashboard

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/petrolsys/fueldash/pkg/errors"
	sdk "github.com/petrolsys/fueldash/pkg/sdk"
)

// Deterministic export filenames, kept from the original dashboard.
const (
	ErogationsCSVName = "erogazioni_complete.csv"
	VehiclesCSVName   = "veicoli_completi.csv"
	DriversCSVName    = "autisti_completi.csv"
)

var (
	erogationCSVHeaders = []string{
		"id", "card", "company", "driver_full_name", "vehicle_id",
		"company_vehicle", "vehicle_total_km", "erogation_side",
		"dispensed_liters", "dispensed_product", "erogation_timestamp",
		"mode", "total_erogation_price",
	}
	vehicleCSVHeaders = []string{
		"vehicle_id", "company_vehicle", "request_vehicle_km",
		"vehicle_total_km", "plate",
	}
	driverCSVHeaders = []string{
		"card", "company", "driver_full_name", "request_pin",
		"request_vehicle_id",
	}
)

// WriteCSV serializes rows with every field quoted and embedded quotes
// doubled, the quoting contract the export consumers expect. An empty row
// set is an error: exports must fail loudly, not produce a bare header.
func WriteCSV(w io.Writer, headers []string, rows [][]string) error {
	if len(rows) == 0 {
		return errors.ErrEmptyCollection
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, csvLine(headers))
	for _, row := range rows {
		lines = append(lines, csvLine(row))
	}

	if _, err := io.WriteString(w, strings.Join(lines, "\n")); err != nil {
		return errors.Wrap(errors.ErrFailedExport, err)
	}
	return nil
}

func csvLine(fields []string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}

func erogationCSVRow(e sdk.Erogation) []string {
	return []string{
		strconv.FormatUint(e.ID, 10),
		e.Card,
		e.Company,
		e.DriverFullName,
		e.VehicleID,
		e.CompanyVehicle,
		e.VehicleTotalKm,
		strconv.Itoa(e.ErogationSide),
		strconv.FormatFloat(e.DispensedLiters, 'f', -1, 64),
		e.DispensedProduct,
		e.ErogationTimestamp.UTC().Format(time.RFC3339),
		e.Mode,
		strconv.FormatFloat(e.TotalErogationPrice, 'f', -1, 64),
	}
}

func vehicleCSVRow(v sdk.Vehicle) []string {
	return []string{
		v.VehicleID,
		v.CompanyVehicle,
		strconv.FormatBool(v.RequestVehicleKm),
		v.VehicleTotalKm,
		v.Plate,
	}
}

func driverCSVRow(d sdk.Driver) []string {
	return []string{
		d.Card,
		d.Company,
		d.DriverFullName,
		strconv.FormatBool(d.RequestPin),
		strconv.FormatBool(d.RequestVehicleID),
	}
}
