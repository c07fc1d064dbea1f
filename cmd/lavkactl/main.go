// lavkactl — административные операции над файлом базы: загрузка товаров,
// экспорт и импорт CSV, отчёт по заказам.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lavka/internal/domain"
	"lavka/internal/report"
	"lavka/internal/repository"
	"lavka/internal/service"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dbPath string

	root := &cobra.Command{
		Use:           "lavkactl",
		Short:         "Admin tool for the order bookkeeping store",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dbPath, "db", "orders.db", "path to the database file")

	root.AddCommand(
		newExportCmd(&dbPath),
		newImportCmd(&dbPath),
		newReportCmd(&dbPath),
		newProductCmd(&dbPath),
	)
	return root
}

// withStore открывает хранилище на время одной команды
func withStore(dbPath string, fn func(ctx context.Context, store *repository.SQLStore) error) error {
	ctx := context.Background()
	db, err := repository.Open(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	store, err := repository.NewSQLStore(ctx, db)
	if err != nil {
		return err
	}
	return fn(ctx, store)
}

func newExportCmd(dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "export <table> <file.csv>",
		Short: "Export a table to a CSV file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(*dbPath, func(ctx context.Context, store *repository.SQLStore) error {
				f, err := os.Create(args[1])
				if err != nil {
					return err
				}
				defer f.Close()
				if err := store.ExportCSV(ctx, args[0], f); err != nil {
					return err
				}
				fmt.Printf("Exported %s to %s\n", args[0], args[1])
				return nil
			})
		},
	}
}

func newImportCmd(dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "import <table> <file.csv>",
		Short: "Import rows from a CSV file (first line is a header)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(*dbPath, func(ctx context.Context, store *repository.SQLStore) error {
				f, err := os.Open(args[1])
				if err != nil {
					return err
				}
				defer f.Close()
				n, err := store.ImportCSV(ctx, args[0], f)
				if err != nil {
					return err
				}
				fmt.Printf("Imported %d rows into %s\n", n, args[0])
				return nil
			})
		},
	}
}

func newReportCmd(dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print the orders-per-date bar chart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(*dbPath, func(ctx context.Context, store *repository.SQLStore) error {
				counts, err := store.OrdersByDate(ctx)
				if err != nil {
					return err
				}
				report.Chart(cmd.OutOrStdout(), counts)
				return nil
			})
		},
	}
}

func newProductCmd(dbPath *string) *cobra.Command {
	var name string
	var price float64

	product := &cobra.Command{
		Use:   "product",
		Short: "Product operations",
	}
	add := &cobra.Command{
		Use:   "add",
		Short: "Register a product so orders can reference it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(*dbPath, func(ctx context.Context, store *repository.SQLStore) error {
				svc := service.NewProductService(store)
				p, err := svc.Create(ctx, domain.Product{Name: name, Price: price})
				if err != nil {
					return err
				}
				fmt.Printf("Added product %d: %s %.2f\n", p.ID, p.Name, p.Price)
				return nil
			})
		},
	}
	add.Flags().StringVar(&name, "name", "", "product name")
	add.Flags().Float64Var(&price, "price", 0, "product price")
	add.MarkFlagRequired("name")
	add.MarkFlagRequired("price")

	product.AddCommand(add)
	return product
}
