package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"folio/internal/content"
	"folio/internal/palette"
	"folio/internal/sections"
)

// sectionsCmd lists the sections in tracker order
var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List the portfolio sections in scan order",
	Args:  cobra.NoArgs,
	RunE:  runSections,
}

// paletteCmd prints what the command palette shows for a query
var paletteCmd = &cobra.Command{
	Use:   "palette [query]",
	Short: "Show the command palette results for a query",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPalette,
}

func runSections(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	order := cfg.Tracker.Order
	if len(order) == 0 {
		order = sections.DefaultOrder()
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tKEY")
	for _, id := range order {
		k, ok := sections.KindFromID(id)
		if !ok {
			fmt.Fprintf(w, "%s\t(unknown)\t\n", id)
			continue
		}
		info := k.Info()
		fmt.Fprintf(w, "%s\t%s\t%c\n", info.ID, info.Title, info.Shortcut)
	}
	return w.Flush()
}

func runPalette(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	portfolio, err := content.Load(cfg.Content.Path)
	if err != nil {
		return err
	}
	resume := cfg.UI.ResumeURL
	if resume == "" {
		resume = portfolio.Profile.Resume
	}

	query := ""
	if len(args) > 0 {
		query = strings.TrimSpace(args[0])
	}
	results := palette.Filter(palette.DefaultCommands(resume), query)
	if len(results) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No results found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, c := range results {
		var target string
		switch c.Action {
		case palette.ActionSection:
			target = "#" + c.Section.ID()
		case palette.ActionLink:
			target = c.Href
		}
		fmt.Fprintf(w, "%c\t%s\t%s\n", c.Shortcut, c.Name, target)
	}
	return w.Flush()
}
