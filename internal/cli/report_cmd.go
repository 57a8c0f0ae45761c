package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/workclock/internal/app"
	"github.com/alexanderramin/workclock/internal/report"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newReportCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Export or email the monthly report",
	}

	cmd.AddCommand(
		newReportExportCmd(a),
		newReportSendCmd(a),
	)

	return cmd
}

func newReportExportCmd(a *App) *cobra.Command {
	var formats []string
	var outDir string

	cmd := &cobra.Command{
		Use:   "export [YYYY-MM]",
		Short: "Write the month's report as xlsx and/or pdf",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := a.now()
			ym, err := parseMonthArg(optionalArg(args), now)
			if err != nil {
				return err
			}
			if outDir == "" {
				outDir = a.ExportDir
			}

			seen := map[report.Format]bool{}
			var wanted []report.Format
			for _, raw := range formats {
				f, err := report.ParseFormat(strings.TrimSpace(raw))
				if err != nil {
					return err
				}
				if !seen[f] {
					seen[f] = true
					wanted = append(wanted, f)
				}
			}

			paths := make([]string, len(wanted))
			g, ctx := errgroup.WithContext(cmd.Context())
			for i, f := range wanted {
				i, f := i, f
				g.Go(func() error {
					path, err := a.Reports.Export(ctx, app.ExportRequest{
						Month:  ym,
						Format: string(f),
						Dir:    outDir,
						Now:    &now,
					})
					if err != nil {
						return fmt.Errorf("exporting %s: %w", f, err)
					}
					paths[i] = path
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			for _, p := range paths {
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", p)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&formats, "format", []string{string(report.FormatXLSX)}, "Output formats: xlsx, pdf")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (default from config)")

	return cmd
}

func newReportSendCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "send [YYYY-MM]",
		Short: "Email the month's xlsx report to every recipient",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := a.now()
			ym, err := parseMonthArg(optionalArg(args), now)
			if err != nil {
				return err
			}

			res, err := a.Reports.Send(cmd.Context(), app.SendRequest{Month: ym, Now: &now})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Sent %s to %s\n", res.Attachment, strings.Join(res.Recipients, ", "))
			return nil
		},
	}
}
