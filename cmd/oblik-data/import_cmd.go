package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oblik-ua/oblik-sdk/modules/personnel/importing"
	"github.com/oblik-ua/oblik-sdk/modules/personnel/services"
	"github.com/oblik-ua/oblik-sdk/pkg/configuration"
)

type importOptions struct {
	file    string
	apply   bool
	jsonOut bool
}

func newImportCmd() *cobra.Command {
	var opts importOptions

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Parse and validate a roster CSV, optionally committing valid rows",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.file, "file", "", "Roster CSV file (required)")
	cmd.Flags().BoolVar(&opts.apply, "apply", false, "Commit valid selected rows (default is dry-run)")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "Emit the summary as JSON")

	_ = cmd.MarkFlagRequired("file")

	return cmd
}

type rowSummary struct {
	InternalID string   `json:"internalId"`
	Callsign   string   `json:"callsign"`
	FullName   string   `json:"fullName"`
	Valid      bool     `json:"valid"`
	Errors     []string `json:"errors,omitempty"`
}

type importSummary struct {
	File      string       `json:"file"`
	Rows      int          `json:"rows"`
	Valid     int          `json:"valid"`
	Invalid   int          `json:"invalid"`
	Applied   bool         `json:"applied"`
	Succeeded int          `json:"succeeded,omitempty"`
	Failed    int          `json:"failed,omitempty"`
	Details   []rowSummary `json:"details"`
}

func runImport(ctx context.Context, opts importOptions) error {
	conf := configuration.Use()

	f, err := os.Open(opts.file)
	if err != nil {
		return withCode(exitUsage, fmt.Errorf("open %s: %w", opts.file, err))
	}
	defer func() { _ = f.Close() }()

	st, err := openStores(ctx, conf)
	if err != nil {
		return err
	}
	defer st.Close()

	dicts, err := services.NewDictionaryService(st.dicts).Snapshot(ctx)
	if err != nil {
		return withCode(exitStore, fmt.Errorf("load dictionaries: %w", err))
	}

	session := importing.NewSession(st.persons, dicts, conf.Logger())
	if err := session.Load(f); err != nil {
		return withCode(exitValidation, fmt.Errorf("parse %s: %w", opts.file, err))
	}
	if err := session.CheckDuplicates(ctx); err != nil {
		return withCode(exitStore, fmt.Errorf("duplicate check: %w", err))
	}

	summary := importSummary{File: opts.file}
	for _, row := range session.Rows() {
		summary.Rows++
		rs := rowSummary{
			InternalID: row.InternalID.String(),
			Callsign:   row.Fields.Callsign,
			FullName:   row.Fields.FullName,
			Valid:      row.Meta.Valid,
			Errors:     row.Meta.Errors(),
		}
		if rs.Valid {
			summary.Valid++
		} else {
			summary.Invalid++
		}
		summary.Details = append(summary.Details, rs)
	}

	if opts.apply {
		result, err := session.Commit(ctx)
		if err != nil {
			return withCode(exitValidation, err)
		}
		summary.Applied = true
		summary.Succeeded = result.Succeeded
		summary.Failed = len(result.Failures)
	}

	if err := printSummary(summary, opts.jsonOut); err != nil {
		return err
	}
	if !opts.apply && summary.Invalid > 0 {
		return withCode(exitValidation, fmt.Errorf("%d of %d rows invalid", summary.Invalid, summary.Rows))
	}
	return nil
}

func printSummary(s importSummary, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetEscapeHTML(false)
		return enc.Encode(s)
	}
	for _, row := range s.Details {
		status := "ok"
		if !row.Valid {
			status = "invalid"
		}
		fmt.Printf("%-10s %-20s %-30s %s\n", status, row.Callsign, row.FullName, joinErrors(row.Errors))
	}
	fmt.Printf("rows=%d valid=%d invalid=%d", s.Rows, s.Valid, s.Invalid)
	if s.Applied {
		fmt.Printf(" committed=%d failed=%d", s.Succeeded, s.Failed)
	}
	fmt.Println()
	return nil
}

func joinErrors(errs []string) string {
	out := ""
	for i, e := range errs {
		if i > 0 {
			out += "; "
		}
		out += e
	}
	return out
}
