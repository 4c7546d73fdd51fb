package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/service"
	"github.com/nikolayk812/storefront/internal/specs"
	"github.com/nikolayk812/storefront/internal/urls"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var configDir string

	root := &cobra.Command{
		Use:          "storefront",
		Short:        "Storefront catalog tools",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configDir, "config", ".", "directory containing config.yaml")

	root.AddCommand(
		newLatestCmd(&configDir),
		newSpecCmd(&configDir),
		newURLCmd(&configDir),
		newImportImageCmd(&configDir),
	)

	return root
}

func newLatestCmd(configDir *string) *cobra.Command {
	var (
		kinds     []string
		preferred string
	)

	cmd := &cobra.Command{
		Use:   "latest",
		Short: "List the newest products of each kind",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context(), *configDir)
			if err != nil {
				return err
			}
			defer a.Close()

			products, err := a.latest.Products(cmd.Context(), kinds, preferred)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, p := range products {
				path, err := urls.AbsoluteURL(a.routes, p)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", p.Kind(), p.Base().Title, p.Base().Price, path)
			}

			return nil
		},
	}

	cmd.Flags().StringSliceVar(&kinds, "kinds", []string{domain.KindNotebook.String(), domain.KindSmartphone.String()}, "product kinds to include")
	cmd.Flags().StringVar(&preferred, "prefer", "", "product kind listed first")

	return cmd
}

func newSpecCmd(configDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "spec <kind> <slug>",
		Short: "Render the specification table of a product",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), *configDir)
			if err != nil {
				return err
			}
			defer a.Close()

			p, err := getBySlug(cmd, a, args[0], args[1])
			if err != nil {
				return err
			}

			html, err := specs.Render(p)
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), html)
			return err
		},
	}
}

func newURLCmd(configDir *string) *cobra.Command {
	var view string

	cmd := &cobra.Command{
		Use:   "url <kind> <slug>",
		Short: "Print the detail path of a product",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), *configDir)
			if err != nil {
				return err
			}
			defer a.Close()

			p, err := getBySlug(cmd, a, args[0], args[1])
			if err != nil {
				return err
			}

			path, err := urls.ProductURL(a.routes, view, p)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}

	cmd.Flags().StringVar(&view, "view", urls.ProductDetail, "route name")

	return cmd
}

func newImportImageCmd(configDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "import-image <kind> <slug> <file>",
		Short: "Normalize an image file and attach it to a product",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), *configDir)
			if err != nil {
				return err
			}
			defer a.Close()

			p, err := getBySlug(cmd, a, args[0], args[1])
			if err != nil {
				return err
			}

			f, err := os.Open(args[2])
			if err != nil {
				return fmt.Errorf("os.Open: %w", err)
			}
			defer f.Close()

			upload := &service.Upload{Name: filepath.Base(args[2]), Content: f}
			if err := a.saver.Save(cmd.Context(), p, upload); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s image set to %s\n", p.Base().Slug, p.Base().Image)
			return err
		},
	}
}

func getBySlug(cmd *cobra.Command, a *app, kindName, slug string) (domain.Product, error) {
	kind, err := domain.ParseProductKind(strings.ToLower(kindName))
	if err != nil {
		return nil, err
	}

	p, err := a.products.GetProductBySlug(cmd.Context(), kind, slug)
	if err != nil {
		return nil, fmt.Errorf("products.GetProductBySlug: %w", err)
	}

	return p, nil
}
