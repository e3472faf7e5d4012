package main

import (
	"fmt"

	"github.com/innoalumni/portalkit/internal/history"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded portal calls, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadConfig()
		if err != nil {
			return err
		}
		if doc.History.Disabled {
			return fmt.Errorf("history is disabled in config")
		}
		limit, _ := cmd.Flags().GetInt("limit")

		path := doc.History.Path
		if path == "" {
			path = history.DefaultFileName
		}
		st, err := history.Open(path)
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		entries, err := st.List(limit)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			cmd.Println("no recorded calls")
			return nil
		}
		for _, e := range entries {
			line := fmt.Sprintf("%s  %-6s %-40s %d", e.CalledAt, e.Method, e.URL, e.StatusCode)
			if e.Detail != "" {
				line += "  " + e.Detail
			}
			cmd.Println(line)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum entries to show (0 = all)")
}
