package main

import (
	"fmt"
	"io"
	"os"

	"taxpro-backend/internal/seo"
	"taxpro-backend/internal/service"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type targetsFile struct {
	Targets []seo.Target `yaml:"targets"`
}

func seoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seo",
		Short: "Manage SEO landing pages",
	}

	var (
		targetsPath string
		overwrite   bool
		images      bool
	)

	generate := &cobra.Command{
		Use:   "generate",
		Short: "Generate draft landing pages for city/service targets",
		Long: `Generate draft landing pages for every target in a yaml file:

  targets:
    - {city: San Jose, state: CA, service: Tax Preparation}
    - {city: Austin, state: TX, service: Bookkeeping}

Pages whose slug already exists are skipped unless --overwrite is set. Failed targets are
listed at the end and make the command exit non-zero.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := loadTargets(targetsPath)
			if err != nil {
				return err
			}
			req.Overwrite = overwrite
			req.WithImages = images

			rt, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close()

			result, err := rt.services.Seo.GenerateBatch(cmd.Context(), req)
			if err != nil {
				return err
			}

			printBatchResult(cmd.OutOrStdout(), result)
			if len(result.Failed) > 0 {
				return fmt.Errorf("%d of %d pages failed", len(result.Failed), len(req.Targets))
			}
			return nil
		},
	}

	generate.Flags().StringVarP(&targetsPath, "targets", "t", "", "Targets file (yaml)")
	generate.Flags().BoolVar(&overwrite, "overwrite", false, "Regenerate pages that already exist")
	generate.Flags().BoolVar(&images, "images", false, "Generate a hero image for each page")
	_ = generate.MarkFlagRequired("targets")

	cmd.AddCommand(generate)
	return cmd
}

func loadTargets(path string) (*service.GenerateBatchRequest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read targets file: %w", err)
	}

	var f targetsFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("failed to parse targets file: %w", err)
	}
	if len(f.Targets) == 0 {
		return nil, fmt.Errorf("targets file %s lists no targets", path)
	}
	return &service.GenerateBatchRequest{Targets: f.Targets}, nil
}

func printBatchResult(w io.Writer, result *service.BatchResult) {
	fmt.Fprintf(w, "Generated: %d\n", len(result.Generated))
	for _, slug := range result.Generated {
		fmt.Fprintf(w, "  + %s\n", slug)
	}
	fmt.Fprintf(w, "Skipped:   %d\n", len(result.Skipped))
	for _, slug := range result.Skipped {
		fmt.Fprintf(w, "  = %s\n", slug)
	}
	fmt.Fprintf(w, "Failed:    %d\n", len(result.Failed))
	for _, f := range result.Failed {
		fmt.Fprintf(w, "  ! %s: %s\n", f.Slug, f.Error)
	}
}
