package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"lyricpro/internal/history"
)

type historyOutput struct {
	ID         int64   `json:"id"`
	RunID      string  `json:"run_id"`
	CreatedAt  string  `json:"created_at"`
	Status     string  `json:"status"`
	Input      string  `json:"input"`
	Template   string  `json:"template,omitempty"`
	Output     string  `json:"output,omitempty"`
	Title      string  `json:"title,omitempty"`
	Groups     int     `json:"groups"`
	Slides     int     `json:"slides"`
	Bytes      int     `json:"bytes"`
	DurationMS float64 `json:"duration_ms"`
	ErrorKind  string  `json:"error_kind,omitempty"`
	Error      string  `json:"error,omitempty"`
}

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent conversions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.History.Enabled {
				fmt.Fprintln(cmd.OutOrStdout(), "History is disabled (history.enabled = false)")
				return nil
			}
			store, err := history.Open(cfg.Paths.HistoryDB)
			if err != nil {
				return fmt.Errorf("open history: %w", err)
			}
			defer store.Close()

			entries, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}

			if jsonOutput {
				views := make([]historyOutput, 0, len(entries))
				for _, e := range entries {
					views = append(views, historyOutput{
						ID:         e.ID,
						RunID:      e.RunID,
						CreatedAt:  e.CreatedAt.Format(time.RFC3339),
						Status:     string(e.Status),
						Input:      e.InputPath,
						Template:   e.TemplatePath,
						Output:     e.OutputPath,
						Title:      e.Title,
						Groups:     e.Groups,
						Slides:     e.Slides,
						Bytes:      e.Bytes,
						DurationMS: float64(e.Duration.Milliseconds()),
						ErrorKind:  e.ErrorKind,
						Error:      e.ErrorMessage,
					})
				}
				return writeJSON(cmd, views)
			}

			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No conversions recorded yet")
				return nil
			}
			tbl := newTextTable("ID", "When", "Status", "Title", "Slides", "Output / Error").alignRight(0, 4)
			for _, e := range entries {
				result := filepath.Base(e.OutputPath)
				if !e.Succeeded() {
					result = e.ErrorKind
				}
				tbl.add(
					strconv.FormatInt(e.ID, 10),
					e.CreatedAt.Local().Format("2006-01-02 15:04"),
					string(e.Status),
					valueOrDash(e.Title),
					strconv.Itoa(e.Slides),
					valueOrDash(result),
				)
			}
			fmt.Fprintln(cmd.OutOrStdout(), tbl)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", history.DefaultListLimit, "Number of entries to show")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
