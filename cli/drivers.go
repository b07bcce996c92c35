// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	fdsdk "github.com/petrolsys/fueldash/pkg/sdk"
)

var cmdDrivers = []cobra.Command{
	{
		Use:   "get [all | <card>]",
		Short: "Get drivers",
		Long: "Get all registered drivers or one by badge card\n" +
			"Usage:\n" +
			"\tfueldash drivers get all - lists a page of drivers\n" +
			"\tfueldash drivers get all --page=2 --limit=50\n" +
			"\tfueldash drivers get <card> - shows one driver\n",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}
			if args[0] == all {
				pm := fdsdk.PageMetadata{Page: Page, Limit: Limit}
				page, err := sdk.Drivers(pm)
				if err != nil {
					logErrorCmd(*cmd, err)
					return
				}
				logJSONCmd(*cmd, page)
				return
			}
			d, err := sdk.Driver(args[0])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}
			logJSONCmd(*cmd, d)
		},
	},
	{
		Use:   "search <query>",
		Short: "Search drivers",
		Long: "Search drivers by \"field: value\" or free text\n" +
			"Usage:\n" +
			"\tfueldash drivers search \"driver_full_name: Rossi\"\n" +
			"\tfueldash drivers search 04A1B2C3\n",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}
			_ = session.SearchDrivers(args[0])
		},
	},
	{
		Use:   "create <JSON_driver>",
		Short: "Create driver",
		Long: "Registers a driver. A PIN is mandatory when request_pin is true\n" +
			"Usage:\n" +
			"\tfueldash drivers create '{\"card\":\"04A1B2C3\",\"driver_full_name\":\"Mario Rossi\",\"request_pin\":true,\"pin\":\"1234\"}'\n",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}
			var d fdsdk.Driver
			if err := json.Unmarshal([]byte(args[0]), &d); err != nil {
				logErrorCmd(*cmd, err)
				return
			}
			if err := session.SubmitDriver(d, ""); err != nil {
				return
			}
			logOKCmd(*cmd)
		},
	},
	{
		Use:   "update <card> <JSON_driver>",
		Short: "Update driver",
		Long: "Updates a driver addressed by the current card, which the payload may rename\n" +
			"Usage:\n" +
			"\tfueldash drivers update 04A1B2C3 '{\"card\":\"04A1B2C3\",\"driver_full_name\":\"Mario Rossi\",\"request_pin\":false}'\n",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 2 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}
			var d fdsdk.Driver
			if err := json.Unmarshal([]byte(args[1]), &d); err != nil {
				logErrorCmd(*cmd, err)
				return
			}
			if err := session.SubmitDriver(d, args[0]); err != nil {
				return
			}
			logOKCmd(*cmd)
		},
	},
	{
		Use:   "delete <card>",
		Short: "Delete driver",
		Long: "Deletes a driver after confirmation\n" +
			"Usage:\n" +
			"\tfueldash drivers delete 04A1B2C3\n" +
			"\tfueldash drivers delete 04A1B2C3 --yes\n",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}
			if err := session.DeleteDriver(args[0]); err != nil {
				return
			}
			logOKCmd(*cmd)
		},
	},
	{
		Use:   "export [<file>]",
		Short: "Export drivers",
		Long: "Exports the whole collection as CSV\n" +
			"Usage:\n" +
			"\tfueldash drivers export\n" +
			"\tfueldash drivers export /tmp/drivers.csv\n",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) > 1 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}
			exportCmd(cmd, args, session.ExportDrivers)
		},
	},
}

// NewDriversCmd returns the drivers command with its subcommands.
func NewDriversCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "drivers [get | search | create | update | delete | export]",
		Short: "Drivers management",
		Long:  "Drivers management: list, search, create, update, delete and CSV export",
	}

	for i := range cmdDrivers {
		cmd.AddCommand(&cmdDrivers[i])
	}

	return &cmd
}
