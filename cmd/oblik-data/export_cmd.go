package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oblik-ua/oblik-sdk/modules/personnel/services"
	"github.com/oblik-ua/oblik-sdk/pkg/configuration"
)

func newExportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the roster to an Excel workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.Context(), output)
		},
	}

	cmd.Flags().StringVar(&output, "output", "roster.xlsx", "Output file path")

	return cmd
}

func runExport(ctx context.Context, output string) error {
	conf := configuration.Use()

	st, err := openStores(ctx, conf)
	if err != nil {
		return err
	}
	defer st.Close()

	data, err := services.NewExcelExportService(st.persons).ExportRoster(ctx)
	if err != nil {
		return withCode(exitStore, fmt.Errorf("export roster: %w", err))
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return withCode(exitStore, fmt.Errorf("write %s: %w", output, err))
	}
	fmt.Printf("wrote %s (%d bytes)\n", output, len(data))
	return nil
}
