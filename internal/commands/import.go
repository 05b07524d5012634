package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/importer"
	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/model"
	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/portfolio"
)

func newImportCommand() *cobra.Command {
	var dir, format, by string

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import payments from CSV files in import/ or a given file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(dir)
			if err != nil {
				return err
			}

			parser := importer.DefaultRegistry().Get(format)
			if parser == nil {
				return fmt.Errorf("unknown import format %q", format)
			}

			var files []importer.FileInfo
			if len(args) == 1 {
				path, err := filepath.Abs(args[0])
				if err != nil {
					return fmt.Errorf("resolving path: %w", err)
				}
				files = []importer.FileInfo{{Name: filepath.Base(path), Path: path}}
			} else {
				files, err = importer.Scan(a.dir)
				if err != nil {
					return err
				}
				if len(files) == 0 {
					fmt.Println("No CSV files in import/.")
					return nil
				}
			}

			total := 0
			for _, file := range files {
				imported, err := importFile(a, parser, file)
				if err != nil {
					return fmt.Errorf("importing %s: %w", file.Name, err)
				}
				// Only files picked up from import/ get moved aside.
				if len(args) == 0 {
					if err := importer.MarkProcessed(a.dir, file.Name); err != nil {
						return err
					}
				}
				fmt.Printf("Imported %d payments from %s\n", imported, file.Name)
				total += imported
			}

			a.finish(by, "import_payments", "", fmt.Sprintf("%d payments from %d files", total, len(files)))
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	cmd.Flags().StringVar(&format, "format", "payments", "import format")
	cmd.Flags().StringVar(&by, "by", "", "who ran the import")

	return cmd
}

func importFile(a *app, parser importer.Parser, file importer.FileInfo) (int, error) {
	f, err := os.Open(file.Path)
	if err != nil {
		return 0, fmt.Errorf("opening %s: %w", file.Path, err)
	}
	defer f.Close()

	rows, err := parser.Parse(f)
	if err != nil {
		return 0, err
	}

	for i, row := range rows {
		_, err := a.tenants.RecordPayment(portfolio.PaymentParams{
			TenantID:    row.TenantRef,
			Amount:      row.Amount,
			PaymentDate: row.Date,
			Method:      model.PaymentMethod(row.Method),
			ForMonth:    row.ForMonth,
			Notes:       row.Notes,
		})
		if err != nil {
			return 0, fmt.Errorf("row %d (%s): %w", i+2, row.TenantRef, err)
		}
	}
	return len(rows), nil
}
