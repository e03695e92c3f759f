package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/gogpu/anchormark/recording"
	"github.com/spf13/cobra"
)

func newBackendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List the output formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), formatTable(recording.Backends()))
			return err
		},
	}
}

func formatTable(names []string) string {
	cell := lipgloss.NewStyle().PaddingRight(2)
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		StyleFunc(func(_, _ int) lipgloss.Style { return cell }).
		Headers("NAME", "EXTENSION", "MEDIA TYPE")
	for _, name := range names {
		if f, ok := recording.Lookup(name); ok {
			t.Row(f.Name, f.Extension, f.MediaType)
		}
	}
	return t.Render()
}
