package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jhoicas/gestorpro-api/internal/application/usecase"
	"github.com/jhoicas/gestorpro-api/internal/domain"
	infrapdf "github.com/jhoicas/gestorpro-api/internal/infrastructure/pdf"
	"github.com/jhoicas/gestorpro-api/internal/infrastructure/postgres"
)

var (
	reportCmd = &cobra.Command{
		Use:   "report",
		Short: "Reportes",
	}
	headcountCmd = &cobra.Command{
		Use:   "headcount",
		Short: "Funcionarios por cargo (tabla en consola o PDF con --pdf)",
		Args:  cobra.NoArgs,
		RunE:  runHeadcount,
	}
	reportPDFPath string
)

func init() {
	headcountCmd.Flags().StringVar(&reportPDFPath, "pdf", "", "escribe el reporte en este archivo PDF")
	reportCmd.AddCommand(headcountCmd)
}

func runHeadcount(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	e, err := loadEnv(ctx, true)
	if err != nil {
		return err
	}
	defer e.Close()

	uc := usecase.NewReportUseCase(
		postgres.NewSessionRunner(e.pool),
		infrapdf.NewMarotoPDFGenerator(e.cfg.App.Name),
		e.log,
	)

	if reportPDFPath != "" {
		out, err := uc.HeadcountPDF(ctx)
		if err != nil {
			return fmt.Errorf("%s", domain.Message(err))
		}
		if err := os.WriteFile(reportPDFPath, out, 0o644); err != nil {
			return fmt.Errorf("escribir %s: %w", reportPDFPath, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Relatório salvo em %s\n", reportPDFPath)
		return nil
	}

	rows, err := uc.Headcount(ctx)
	if err != nil {
		return fmt.Errorf("%s", domain.Message(err))
	}
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CARGO\tQUANTIDADE")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%d\n", r.RoleName, r.Count)
	}
	return tw.Flush()
}
