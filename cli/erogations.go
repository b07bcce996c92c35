// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	fdsdk "github.com/petrolsys/fueldash/pkg/sdk"
)

const all = "all"

func timeRange() (start, end time.Time, err error) {
	if StartTime != "" {
		start, err = time.Parse(time.RFC3339, StartTime)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	if EndTime != "" {
		end, err = time.Parse(time.RFC3339, EndTime)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	return start, end, nil
}

var cmdErogations = []cobra.Command{
	{
		Use:   "get [all | <erogation_id>]",
		Short: "Get erogations",
		Long: "Get all recorded erogations or one by its numeric id\n" +
			"Usage:\n" +
			"\tfueldash erogations get all - lists a page of erogations\n" +
			"\tfueldash erogations get all --page=2 --limit=50\n" +
			"\tfueldash erogations get <erogation_id> - shows one record\n",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}
			if args[0] == all {
				pm := fdsdk.PageMetadata{Page: Page, Limit: Limit}
				page, err := sdk.Erogations(pm)
				if err != nil {
					logErrorCmd(*cmd, err)
					return
				}
				logJSONCmd(*cmd, page)
				return
			}
			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}
			e, sdkerr := sdk.Erogation(id)
			if sdkerr != nil {
				logErrorCmd(*cmd, sdkerr)
				return
			}
			logJSONCmd(*cmd, e)
		},
	},
	{
		Use:   "search <query>",
		Short: "Search erogations",
		Long: "Search erogations by \"field: value\", free text, or a time range\n" +
			"Usage:\n" +
			"\tfueldash erogations search \"card: 04A1B2C3\"\n" +
			"\tfueldash erogations search diesel\n" +
			"\tfueldash erogations search \"\" --start-time=2025-03-14T00:00:00Z --end-time=2025-03-15T00:00:00Z\n",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}
			start, end, err := timeRange()
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}
			// The session notifies and renders through the wired
			// notifier and renderer, nothing more to print here.
			_ = session.SearchErogations(args[0], start, end)
		},
	},
	{
		Use:   "create <JSON_erogation>",
		Short: "Create erogation",
		Long: "Appends a dispensation record, the call the terminal issues after a refuel\n" +
			"Usage:\n" +
			"\tfueldash erogations create '{\"erogation_side\":1,\"dispensed_liters\":42.7,\"dispensed_product\":\"diesel\",\"mode\":\"automatica\",\"erogation_timestamp\":\"2025-03-14T09:30:00Z\"}'\n",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}
			var e fdsdk.Erogation
			if err := json.Unmarshal([]byte(args[0]), &e); err != nil {
				logErrorCmd(*cmd, err)
				return
			}
			e, sdkerr := sdk.CreateErogation(e)
			if sdkerr != nil {
				logErrorCmd(*cmd, sdkerr)
				return
			}
			logJSONCmd(*cmd, e)
		},
	},
	{
		Use:   "delete all",
		Short: "Delete all erogations",
		Long: "Wipes the whole dispensation history. Irreversible, asks for confirmation\n" +
			"Usage:\n" +
			"\tfueldash erogations delete all\n" +
			"\tfueldash erogations delete all --yes\n",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 || args[0] != all {
				logUsageCmd(*cmd, cmd.Use)
				return
			}
			if err := session.DeleteAllErogations(); err != nil {
				return
			}
			logOKCmd(*cmd)
		},
	},
	{
		Use:   "export [<file>]",
		Short: "Export erogations",
		Long: "Exports the whole collection as CSV, to the deterministic filename by default\n" +
			"Usage:\n" +
			"\tfueldash erogations export\n" +
			"\tfueldash erogations export /tmp/erogations.csv\n",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) > 1 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}
			exportCmd(cmd, args, session.ExportErogations)
		},
	},
}

// NewErogationsCmd returns the erogations command with its subcommands.
func NewErogationsCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "erogations [get | search | create | delete | export]",
		Short: "Erogations management",
		Long:  "Erogations management: list, search, create, bulk delete and CSV export",
	}

	for i := range cmdErogations {
		cmd.AddCommand(&cmdErogations[i])
	}

	return &cmd
}

// exportCmd runs a session export against an explicit file or the
// collection's deterministic filename in the working directory.
func exportCmd(cmd *cobra.Command, args []string, export func(w io.Writer) (string, error)) {
	if len(args) == 1 {
		f, err := os.Create(args[0])
		if err != nil {
			logErrorCmd(*cmd, err)
			return
		}
		defer f.Close()
		if _, err := export(f); err != nil {
			return
		}
		logSavedCmd(*cmd, args[0])
		return
	}

	tmp, err := os.CreateTemp(".", "export-*.csv")
	if err != nil {
		logErrorCmd(*cmd, err)
		return
	}
	defer tmp.Close()

	name, expErr := export(tmp)
	if expErr != nil {
		os.Remove(tmp.Name())
		return
	}
	if err := os.Rename(tmp.Name(), name); err != nil {
		logErrorCmd(*cmd, err)
		return
	}
	logSavedCmd(*cmd, name)
}
