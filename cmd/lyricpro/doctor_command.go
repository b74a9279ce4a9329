package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"lyricpro/internal/preflight"
)

var errPreflightFailed = errors.New("one or more checks failed")

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the template, directories and history database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			colorize := isTerminal(out)

			fmt.Fprintln(out, heading("Configuration", colorize))
			configDetail := ctx.configPath
			if !ctx.configSeen {
				configDetail += " (not found, using defaults)"
			}
			fmt.Fprintln(out, checkLine("Config file", stateInfo, configDetail, colorize))
			fmt.Fprintln(out)

			fmt.Fprintln(out, heading("Checks", colorize))
			results := preflight.RunAll(cmd.Context(), cfg)
			for _, r := range results {
				state := statePass
				if !r.Passed {
					state = stateFail
				}
				fmt.Fprintln(out, checkLine(r.Name, state, r.Detail, colorize))
			}
			if preflight.Failed(results) {
				return errPreflightFailed
			}
			return nil
		},
	}
}
