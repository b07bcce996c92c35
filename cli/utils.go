// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/hokaccha/go-prettyjson"
	"github.com/spf13/cobra"

	"github.com/petrolsys/fueldash/dashboard"
	sdkpkg "github.com/petrolsys/fueldash/pkg/sdk"
)

var (
	// Page query parameter.
	Page uint64 = 1
	// Limit query parameter.
	Limit uint64 = dashboard.DefPageSize
	// StartTime filter parameter (RFC3339), dispenses only.
	StartTime string = ""
	// EndTime filter parameter (RFC3339), dispenses only.
	EndTime string = ""
	// ConfigPath config path parameter.
	ConfigPath string = ""
	// RawOutput raw output mode.
	RawOutput bool = false
	// Yes skips interactive confirmation of destructive operations.
	Yes bool = false
)

func logJSONCmd(cmd cobra.Command, iList ...interface{}) {
	for _, i := range iList {
		m, err := json.Marshal(i)
		if err != nil {
			logErrorCmd(cmd, err)
			return
		}

		pj, err := prettyjson.Format(m)
		if err != nil {
			logErrorCmd(cmd, err)
			return
		}

		fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n\n", string(pj))
	}
}

func logUsageCmd(cmd cobra.Command, u string) {
	fmt.Fprintf(cmd.OutOrStdout(), color.YellowString("\nusage: %s\n\n"), u)
}

func logErrorCmd(cmd cobra.Command, err error) {
	boldRed := color.New(color.FgRed, color.Bold)
	boldRed.Fprintf(cmd.ErrOrStderr(), "\nerror: ")

	fmt.Fprintf(cmd.ErrOrStderr(), "%s\n\n", color.RedString(err.Error()))
}

func logOKCmd(cmd cobra.Command) {
	fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n\n", color.BlueString("ok"))
}

func logSavedCmd(cmd cobra.Command, name string) {
	if RawOutput {
		fmt.Fprintln(cmd.OutOrStdout(), name)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), color.BlueString("\nsaved: %s\n\n"), name)
}

// Notifier implements dashboard.Notifier with colored terminal output.
type Notifier struct {
	cmd *cobra.Command
}

// NewNotifier returns a notifier bound to a command's output streams.
func NewNotifier(cmd *cobra.Command) *Notifier {
	return &Notifier{cmd: cmd}
}

func (n *Notifier) Notify(level dashboard.Level, message string) {
	out := n.cmd.OutOrStdout()
	switch level {
	case dashboard.Danger:
		fmt.Fprintf(n.cmd.ErrOrStderr(), "%s\n", color.RedString(message))
	case dashboard.Warning:
		fmt.Fprintf(out, "%s\n", color.YellowString(message))
	case dashboard.Info:
		fmt.Fprintf(out, "%s\n", color.CyanString(message))
	default:
		fmt.Fprintf(out, "%s\n", color.GreenString(message))
	}
}

// Renderer implements dashboard.Renderer by pretty-printing result rows.
type Renderer struct {
	cmd *cobra.Command
}

// NewRenderer returns a renderer bound to a command's output stream.
func NewRenderer(cmd *cobra.Command) *Renderer {
	return &Renderer{cmd: cmd}
}

func (r *Renderer) RenderErogations(items []sdkpkg.Erogation) {
	if len(items) == 0 {
		return
	}
	logJSONCmd(*r.cmd, items)
}

func (r *Renderer) RenderVehicles(items []sdkpkg.Vehicle) {
	if len(items) == 0 {
		return
	}
	logJSONCmd(*r.cmd, items)
}

func (r *Renderer) RenderDrivers(items []sdkpkg.Driver) {
	if len(items) == 0 {
		return
	}
	logJSONCmd(*r.cmd, items)
}

// Confirm prompts on the command's streams for a destructive operation.
// The --yes flag answers every prompt affirmatively.
func Confirm(cmd *cobra.Command) func(prompt string) bool {
	return func(prompt string) bool {
		if Yes {
			return true
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", prompt)
		reader := bufio.NewReader(cmd.InOrStdin())
		answer, err := reader.ReadString('\n')
		if err != nil {
			return false
		}
		answer = strings.ToLower(strings.TrimSpace(answer))
		return answer == "y" || answer == "yes"
	}
}
