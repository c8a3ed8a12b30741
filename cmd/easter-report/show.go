package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/username/easter-report/internal/calendar"
	"github.com/username/easter-report/internal/report"
	"github.com/username/easter-report/pkg/dateutil"
	"go.uber.org/zap"
)

var (
	colorAccent = lipgloss.AdaptiveColor{Light: "#399ee6", Dark: "#59c2ff"}
	colorDim    = lipgloss.AdaptiveColor{Light: "#8a9199", Dark: "#6c7380"}
	colorMarch  = lipgloss.AdaptiveColor{Light: "#86b300", Dark: "#aad94c"}
	colorApril  = lipgloss.AdaptiveColor{Light: "#f2ae49", Dark: "#ffb454"}

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(colorDim)

	cellStyle = lipgloss.NewStyle().PaddingRight(2)

	dayStyle  = cellStyle.Width(6).Align(lipgloss.Right)
	nameStyle = cellStyle.Width(10)
	yearStyle = cellStyle.Width(6)
	isoStyle  = cellStyle.Foreground(colorDim)
)

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show YEARS",
		Short: "Print Easter Sundays for YEARS to the terminal",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			generator := report.NewGenerator(report.Options{Title: cfg.Report.Title}, logger)

			dates, err := generator.Compute(args[0])
			if err != nil {
				logger.Error("Failed to parse years", zap.String("spec", args[0]), zap.Error(err))
				result := report.ResultFromError(err)
				fmt.Fprintf(cmd.ErrOrStderr(), "❌ %s\n", result)
				exitCode = result.ExitCode()
				return
			}

			fmt.Fprintln(cmd.OutOrStdout(), headerStyle.Render(cfg.Report.Title))
			for _, date := range dates {
				fmt.Fprintln(cmd.OutOrStdout(), renderRow(date))
			}
		},
	}
}

func renderRow(date calendar.EasterDate) string {
	monthStyle := nameStyle.Foreground(colorMarch)
	if date.Month == calendar.April {
		monthStyle = nameStyle.Foreground(colorApril)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		dayStyle.Render(strconv.Itoa(int(date.Day))+"."),
		monthStyle.Render(date.Month.String()),
		yearStyle.Render(strconv.FormatUint(uint64(date.Year), 10)),
		isoStyle.Render(dateutil.FormatISODate(date.Time())),
	)
}
