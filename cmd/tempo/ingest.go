package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/benhorvath/tempo-tfidf/internal/dataset"
	"github.com/benhorvath/tempo-tfidf/internal/htmltext"
	"github.com/benhorvath/tempo-tfidf/pkg/tempo/bucket"
	"github.com/benhorvath/tempo-tfidf/pkg/tempo/config"
	"github.com/benhorvath/tempo-tfidf/pkg/tempo/store"
)

func ingestCmd() *cobra.Command {
	var (
		cfgPath   string
		input     string
		source    string
		stripHTML bool
	)
	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Load a corpus file into the document archive",
		RunE: func(cmd *cobra.Command, args []string) error {
			if input == "" {
				return fmt.Errorf("--input required")
			}
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if cfg.Archive.Path == "" {
				return fmt.Errorf("archive.path not configured; ingest needs a persistent archive")
			}

			records, err := dataset.Load(input)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			st, err := openArchive(ctx, cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			added, skipped := 0, 0
			for i, rec := range records {
				// Validate dates on the way in; one bad date in the archive
				// would abort every later scoring run.
				if _, err := bucket.ParseDate(rec.Date, cfg.Scoring.DateLayout); err != nil {
					log.Printf("Warning: skipping record %d: %v", i, err)
					skipped++
					continue
				}
				text := rec.Text
				if stripHTML {
					text = htmltext.Extract(text)
				}
				if _, err := st.Put(ctx, store.Doc{Text: text, Date: rec.Date, Source: source}); err != nil {
					return fmt.Errorf("archive record %d: %w", i, err)
				}
				added++
			}

			log.Printf("ingested %d documents into %s (%d skipped)", added, cfg.Archive.Path, skipped)
			return nil
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "config file (default searches . and ./config)")
	cmd.Flags().StringVarP(&input, "input", "i", "", "corpus file (.csv, .jsonl or .ndjson) (required)")
	cmd.Flags().StringVar(&source, "source", "", "source label stored with each document")
	cmd.Flags().BoolVar(&stripHTML, "strip-html", false, "extract plain text from HTML document bodies")
	return cmd
}
