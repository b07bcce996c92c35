// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	fdsdk "github.com/petrolsys/fueldash/pkg/sdk"
)

var cmdParameters = []cobra.Command{
	{
		Use:   "get",
		Short: "Get parameters",
		Long: "Gets the terminal configuration, normalized to one fuel and one gui entry per side\n" +
			"Usage:\n" +
			"\tfueldash parameters get\n",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 0 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}
			ps, err := session.LoadParameters()
			if err != nil {
				return
			}
			logJSONCmd(*cmd, ps)
		},
	},
	{
		Use:   "save <JSON_parameters>",
		Short: "Save parameters",
		Long: "Writes the whole configuration in a single call\n" +
			"Usage:\n" +
			"\tfueldash parameters save '{\"fuel_sides\":{\"side_1\":{\"side_exists\":true,\"pulses_per_liter\":100}},\"gui_sides\":{}}'\n",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}
			var ps fdsdk.ParameterSet
			if err := json.Unmarshal([]byte(args[0]), &ps); err != nil {
				logErrorCmd(*cmd, err)
				return
			}
			if err := session.SaveParameters(ps); err != nil {
				return
			}
			logOKCmd(*cmd)
		},
	},
	{
		Use:   "reset",
		Short: "Reset parameters",
		Long: "Restores the factory configuration after confirmation and reloads it\n" +
			"Usage:\n" +
			"\tfueldash parameters reset\n" +
			"\tfueldash parameters reset --yes\n",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 0 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}
			ps, err := session.ResetParameters()
			if err != nil {
				return
			}
			logJSONCmd(*cmd, ps)
		},
	},
}

// NewParametersCmd returns the parameters command with its subcommands.
func NewParametersCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "parameters [get | save | reset]",
		Short: "Parameters management",
		Long:  "Parameters management: read, bulk save and factory reset of the terminal configuration",
	}

	for i := range cmdParameters {
		cmd.AddCommand(&cmdParameters[i])
	}

	return &cmd
}
