// Package cli provides the Cobra-based CLI for productman.
package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"productman/catalog"
	"productman/domain"
	"productman/store"
	"productman/util"
)

var (
	rootCmd = &cobra.Command{
		Use:   "productman",
		Short: "A product catalog management system",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// IMPORTANT: allow tests to inject a prebuilt service
			if svc != nil {
				return nil
			}

			if cfg := viper.GetString("config"); cfg != "" {
				viper.SetConfigFile(cfg)
				if err := viper.ReadInConfig(); err != nil {
					return err
				}
			}

			log := util.NewLogger("productman", viper.GetString("log-level"))

			productStore, err := store.NewStore(
				viper.GetString("store"),
				viper.GetString("db"),
			)
			if err != nil {
				return err
			}

			categories := catalog.LoadCategories(viper.GetString("categories"))
			svc = catalog.NewService(productStore, categories, log)
			return nil
		},
	}

	svc *catalog.Service
)

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid product id: %s", arg)
	}
	return id, nil
}

// resetCommandFlags restores every subcommand flag to its default and clears
// its Changed state. The flag values live in package-level variables bound
// once in init, so without this a shell iteration would leak values like a
// previous edit's --name into the next invocation.
func resetCommandFlags(cmd *cobra.Command) {
	for _, c := range cmd.Commands() {
		c.Flags().VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
		resetCommandFlags(c)
	}
}

// checkCategory stands in for the GUI dropdown: only members of the loaded
// enumeration reach the service. An empty selection goes through untouched so
// the service reports MissingCategory.
func checkCategory(category string) error {
	if category == "" || svc.HasCategory(category) {
		return nil
	}
	return fmt.Errorf("unknown category %q (see 'productman categories')", category)
}

func init() {
	// shell
	shellCmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive shell mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := bufio.NewReader(os.Stdin)
			for {
				fmt.Print("productman> ")
				line, err := r.ReadString('\n')
				if err != nil {
					return nil
				}
				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}
				if line == "exit" || line == "quit" {
					return nil
				}
				rootCmd.SetArgs(strings.Fields(line))
				if err := rootCmd.Execute(); err != nil {
					fmt.Fprintln(os.Stderr, err)
				}
				rootCmd.SetArgs(nil)
				resetCommandFlags(rootCmd)
			}
		},
	}
	rootCmd.AddCommand(shellCmd)

	rootCmd.PersistentFlags().String("store", "sqlite", "store backend: sqlite|memory")
	rootCmd.PersistentFlags().String("db", "database/products.db", "database file path")
	rootCmd.PersistentFlags().String("categories", "categories.json", "categories file")
	rootCmd.PersistentFlags().String("config", "", "config file")
	rootCmd.PersistentFlags().String("log-level", "info", "log level")

	viper.BindPFlag("store", rootCmd.PersistentFlags().Lookup("store"))
	viper.BindPFlag("db", rootCmd.PersistentFlags().Lookup("db"))
	viper.BindPFlag("categories", rootCmd.PersistentFlags().Lookup("categories"))
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.SetEnvPrefix("PRODUCTMAN")
	viper.AutomaticEnv()

	// add
	var name, price, category string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a product",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkCategory(category); err != nil {
				return err
			}
			p, err := svc.Add(context.Background(), name, price, category)
			if err != nil {
				return err
			}
			b, _ := json.MarshalIndent(p, "", "  ")
			fmt.Println(string(b))
			return nil
		},
	}
	addCmd.Flags().StringVar(&name, "name", "", "name")
	addCmd.Flags().StringVar(&price, "price", "", "price")
	addCmd.Flags().StringVar(&category, "category", "", "category")
	rootCmd.AddCommand(addCmd)

	// get
	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Get product by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			p, err := svc.Get(context.Background(), id)
			if err != nil {
				if domain.IsNotFoundError(err) {
					fmt.Fprintln(os.Stderr, err)
					return nil
				}
				return err
			}
			b, _ := json.MarshalIndent(p, "", "  ")
			fmt.Println(string(b))
			return nil
		},
	}
	rootCmd.AddCommand(getCmd)

	// edit
	var eName, ePrice, eCategory string
	editCmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := checkCategory(eCategory); err != nil {
				return err
			}

			session, err := svc.BeginEdit(context.Background(), id)
			if err != nil {
				return err
			}

			// unchanged fields keep their current values
			cur := session.Product()
			name, price, category := cur.Name, strconv.FormatFloat(cur.Price, 'f', -1, 64), cur.Category
			if cmd.Flags().Changed("name") {
				name = eName
			}
			if cmd.Flags().Changed("price") {
				price = ePrice
			}
			if cmd.Flags().Changed("category") {
				category = eCategory
			}

			p, err := svc.CommitEdit(context.Background(), session, name, price, category)
			if err != nil {
				// a one-shot edit must not leave the session open
				svc.CancelEdit(session)
				return err
			}
			b, _ := json.MarshalIndent(p, "", "  ")
			fmt.Println(string(b))
			return nil
		},
	}
	editCmd.Flags().StringVar(&eName, "name", "", "name")
	editCmd.Flags().StringVar(&ePrice, "price", "", "price")
	editCmd.Flags().StringVar(&eCategory, "category", "", "category")
	rootCmd.AddCommand(editCmd)

	// list
	var lOutput string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List products, ordered by category descending",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := svc.List(context.Background())
			if err != nil {
				return err
			}
			if lOutput == "json" {
				b, _ := json.MarshalIndent(out, "", "  ")
				fmt.Println(string(b))
				return nil
			}
			for _, p := range out {
				fmt.Printf("%d | %s | %.2f | %s | %s\n",
					p.ID, p.Name, p.Price, p.Category, p.CreatedDate.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
	listCmd.Flags().StringVar(&lOutput, "output", "", "output format")
	rootCmd.AddCommand(listCmd)

	// categories
	categoriesCmd := &cobra.Command{
		Use:   "categories",
		Short: "List the permitted categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			cats := svc.Categories()
			if len(cats) == 0 {
				fmt.Fprintln(os.Stderr, "no categories available")
				return nil
			}
			for _, c := range cats {
				fmt.Println(c)
			}
			return nil
		},
	}
	rootCmd.AddCommand(categoriesCmd)

	// delete
	var yes bool
	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			err = svc.Remove(context.Background(), id, yes)
			if err != nil && domain.IsNeedsConfirmationError(err) {
				fmt.Printf("Delete product %d? (y/N): ", id)
				var resp string
				if _, err := fmt.Scanln(&resp); err != nil || (resp != "y" && resp != "Y") {
					fmt.Println("aborted")
					return nil
				}
				err = svc.Remove(context.Background(), id, true)
			}
			if err != nil {
				return err
			}
			fmt.Println("deleted")
			return nil
		},
	}
	deleteCmd.Flags().BoolVar(&yes, "yes", false, "skip confirmation")
	rootCmd.AddCommand(deleteCmd)

	// import: every row goes through the service so validation and
	// duplicate rules apply; supports a JSON array or NDJSON
	var importFile string
	importCmd := &cobra.Command{
		Use:   "import --file <file>",
		Short: "Import products from JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			if importFile == "" {
				return errors.New("--file required")
			}

			b, err := os.ReadFile(importFile)
			if err != nil {
				return err
			}

			btrim := bytes.TrimSpace(b)
			if len(btrim) == 0 {
				return errors.New("empty file")
			}

			var products []domain.Product

			// JSON array
			if btrim[0] == '[' {
				if err := json.Unmarshal(btrim, &products); err != nil {
					return err
				}
			} else {
				// NDJSON or single JSON object
				scanner := bufio.NewScanner(bytes.NewReader(btrim))
				for scanner.Scan() {
					line := bytes.TrimSpace(scanner.Bytes())
					if len(line) == 0 {
						continue
					}
					var p domain.Product
					if err := json.Unmarshal(line, &p); err != nil {
						return err
					}
					products = append(products, p)
				}
				if err := scanner.Err(); err != nil {
					return err
				}
			}

			for i, p := range products {
				if err := checkCategory(p.Category); err != nil {
					return fmt.Errorf("import row %d: %w", i+1, err)
				}
				price := strconv.FormatFloat(p.Price, 'f', -1, 64)
				if _, err := svc.Add(context.Background(), p.Name, price, p.Category); err != nil {
					return fmt.Errorf("import row %d: %w", i+1, err)
				}
			}
			fmt.Printf("imported %d products\n", len(products))
			return nil
		},
	}
	importCmd.Flags().StringVar(&importFile, "file", "", "input file")
	rootCmd.AddCommand(importCmd)

	// export
	var exportFile string
	exportCmd := &cobra.Command{
		Use:   "export --file <file>",
		Short: "Export products to JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			if exportFile == "" {
				return errors.New("--file required")
			}
			out, err := svc.List(context.Background())
			if err != nil {
				return err
			}
			b, _ := json.MarshalIndent(out, "", "  ")
			return os.WriteFile(exportFile, b, 0o644)
		},
	}
	exportCmd.Flags().StringVar(&exportFile, "file", "", "output file")
	rootCmd.AddCommand(exportCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
