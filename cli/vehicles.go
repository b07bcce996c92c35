// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	fdsdk "github.com/petrolsys/fueldash/pkg/sdk"
)

var cmdVehicles = []cobra.Command{
	{
		Use:   "get [all | <vehicle_id>]",
		Short: "Get vehicles",
		Long: "Get all registered vehicles or one by id\n" +
			"Usage:\n" +
			"\tfueldash vehicles get all - lists a page of vehicles\n" +
			"\tfueldash vehicles get all --page=2 --limit=50\n" +
			"\tfueldash vehicles get <vehicle_id> - shows one vehicle\n",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}
			if args[0] == all {
				pm := fdsdk.PageMetadata{Page: Page, Limit: Limit}
				page, err := sdk.Vehicles(pm)
				if err != nil {
					logErrorCmd(*cmd, err)
					return
				}
				logJSONCmd(*cmd, page)
				return
			}
			v, err := sdk.Vehicle(args[0])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}
			logJSONCmd(*cmd, v)
		},
	},
	{
		Use:   "plate <plate>",
		Short: "Get vehicle by plate",
		Long: "Look a vehicle up by its plate, the lookup the terminal runs at the pump\n" +
			"Usage:\n" +
			"\tfueldash vehicles plate AB123CD\n",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}
			v, err := sdk.VehicleByPlate(args[0])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}
			logJSONCmd(*cmd, v)
		},
	},
	{
		Use:   "search <query>",
		Short: "Search vehicles",
		Long: "Search vehicles by \"field: value\" or free text\n" +
			"Usage:\n" +
			"\tfueldash vehicles search \"plate: AB123\"\n" +
			"\tfueldash vehicles search furgone\n",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}
			_ = session.SearchVehicles(args[0])
		},
	},
	{
		Use:   "create <JSON_vehicle>",
		Short: "Create vehicle",
		Long: "Registers a vehicle. Odometer defaults to 0 when omitted\n" +
			"Usage:\n" +
			"\tfueldash vehicles create '{\"vehicle_id\":\"V-001\",\"plate\":\"AB123CD\",\"company_vehicle\":\"Furgone consegne\"}'\n",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}
			var v fdsdk.Vehicle
			if err := json.Unmarshal([]byte(args[0]), &v); err != nil {
				logErrorCmd(*cmd, err)
				return
			}
			if err := session.SubmitVehicle(v, ""); err != nil {
				return
			}
			logOKCmd(*cmd)
		},
	},
	{
		Use:   "update <vehicle_id> <JSON_vehicle>",
		Short: "Update vehicle",
		Long: "Updates a vehicle addressed by its current id, which the payload may rename\n" +
			"Usage:\n" +
			"\tfueldash vehicles update V-001 '{\"vehicle_id\":\"V-001\",\"plate\":\"AB123CD\",\"vehicle_total_km\":\"120350\"}'\n",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 2 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}
			var v fdsdk.Vehicle
			if err := json.Unmarshal([]byte(args[1]), &v); err != nil {
				logErrorCmd(*cmd, err)
				return
			}
			if err := session.SubmitVehicle(v, args[0]); err != nil {
				return
			}
			logOKCmd(*cmd)
		},
	},
	{
		Use:   "delete <vehicle_id>",
		Short: "Delete vehicle",
		Long: "Deletes a vehicle after confirmation\n" +
			"Usage:\n" +
			"\tfueldash vehicles delete V-001\n" +
			"\tfueldash vehicles delete V-001 --yes\n",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}
			if err := session.DeleteVehicle(args[0]); err != nil {
				return
			}
			logOKCmd(*cmd)
		},
	},
	{
		Use:   "export [<file>]",
		Short: "Export vehicles",
		Long: "Exports the whole collection as CSV\n" +
			"Usage:\n" +
			"\tfueldash vehicles export\n" +
			"\tfueldash vehicles export /tmp/vehicles.csv\n",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) > 1 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}
			exportCmd(cmd, args, session.ExportVehicles)
		},
	},
}

// NewVehiclesCmd returns the vehicles command with its subcommands.
func NewVehiclesCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "vehicles [get | plate | search | create | update | delete | export]",
		Short: "Vehicles management",
		Long:  "Vehicles management: list, search, create, update, delete and CSV export",
	}

	for i := range cmdVehicles {
		cmd.AddCommand(&cmdVehicles[i])
	}

	return &cmd
}
