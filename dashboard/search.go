// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package dashboard

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/petrolsys/fueldash/pkg/errors"
	sdk "github.com/petrolsys/fueldash/pkg/sdk"
)

// allowedSearchFields lists the fields each section's search may filter on.
// Anything else is rejected before a request is issued.
var allowedSearchFields = map[Section][]string{
	SectionDispenses: {
		"card", "vehicle_id", "company", "vehicle_total_km",
		"erogation_side", "mode", "dispensed_product", "dispensed_liters",
		"erogation_timestamp",
	},
	SectionVehicles: {
		"vehicle_id", "company_vehicle", "vehicle_total_km", "plate",
		"request_vehicle_km",
	},
	SectionDrivers: {
		"card", "company", "driver_full_name", "request_pin",
		"request_vehicle_id",
	},
}

// AllowedSearchFields returns the searchable field names of a section.
func AllowedSearchFields(section Section) []string {
	return allowedSearchFields[section]
}

var (
	timestampPattern = regexp.MustCompile(`^erogation_timestamp:\s*(.+)$`)
	fieldPattern     = regexp.MustCompile(`^(\w+)\s*:\s*(.+)$`)
	quotedPattern    = regexp.MustCompile(`^['"](.+)['"]$`)
)

// ParseSearchQuery turns raw search-box text into a filter: either a single
// "field: value" pair with surrounding quotes stripped from the value, or a
// free-text query under key "q".
func ParseSearchQuery(raw string) sdk.Filter {
	raw = strings.TrimSpace(raw)

	if m := timestampPattern.FindStringSubmatch(raw); m != nil {
		return sdk.Filter{"erogation_timestamp": strings.TrimSpace(m[1])}
	}

	if m := fieldPattern.FindStringSubmatch(raw); m != nil {
		value := strings.TrimSpace(m[2])
		if q := quotedPattern.FindStringSubmatch(value); q != nil {
			value = q[1]
		}
		return sdk.Filter{m[1]: value}
	}

	return sdk.Filter{"q": raw}
}

// ValidateSearchParams checks every filter key except the free-text "q"
// against the section's allowed fields. The returned error enumerates the
// offending keys and the full allowed set.
func ValidateSearchParams(section Section, filter sdk.Filter) error {
	allowed := allowedSearchFields[section]

	var invalid []string
	for key := range filter {
		if key == "q" {
			continue
		}
		found := false
		for _, f := range allowed {
			if f == key {
				found = true
				break
			}
		}
		if !found {
			invalid = append(invalid, key)
		}
	}
	if len(invalid) == 0 {
		return nil
	}
	sort.Strings(invalid)

	label := "Campo non valido"
	if len(invalid) > 1 {
		label = "Campi non validi"
	}
	return errors.New(fmt.Sprintf("%s: %s. Campi disponibili: %s",
		label, strings.Join(invalid, ", "), strings.Join(allowed, ", ")))
}
