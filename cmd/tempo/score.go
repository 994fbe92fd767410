package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/benhorvath/tempo-tfidf/internal/dataset"
	"github.com/benhorvath/tempo-tfidf/pkg/tempo"
	"github.com/benhorvath/tempo-tfidf/pkg/tempo/config"
	"github.com/benhorvath/tempo-tfidf/pkg/tempo/render"
)

func scoreCmd() *cobra.Command {
	var (
		cfgPath     string
		input       string
		fromArchive bool
		format      string
		output      string
		topK        int
		title       string
		granularity string
		stoplist    string
		stemming    bool
	)
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a corpus and write a report",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if granularity != "" {
				cfg.Scoring.Granularity = granularity
			}
			if stoplist != "" {
				cfg.Scoring.StoplistPath = stoplist
			}
			if cmd.Flags().Changed("stemming") {
				cfg.Scoring.Stemming = stemming
			}
			if topK > 0 {
				cfg.Render.TopK = topK
			}
			if title != "" {
				cfg.Render.Title = title
			}

			docs, err := collectDocuments(cmd.Context(), cfg, input, fromArchive)
			if err != nil {
				return err
			}

			opts, err := cfg.Scoring.ScorerOptions()
			if err != nil {
				return err
			}
			scorer, err := tempo.New(opts)
			if err != nil {
				return err
			}
			result, err := scorer.Score(docs)
			if err != nil {
				return err
			}

			var renderer render.Renderer
			switch format {
			case "html":
				renderer = &render.HTML{
					Title:       cfg.Render.Title,
					TopK:        cfg.Render.TopK,
					MaxFontSize: cfg.Render.MaxFontSize,
				}
			case "json":
				renderer = &render.JSON{Indent: true, TopK: cfg.Render.TopK}
			default:
				return fmt.Errorf("unknown format %q (want html or json)", format)
			}

			w := os.Stdout
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create output: %w", err)
				}
				defer f.Close()
				w = f
			}
			return renderer.Render(w, result)
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "config file (default searches . and ./config)")
	cmd.Flags().StringVarP(&input, "input", "i", "", "corpus file (.csv, .jsonl or .ndjson)")
	cmd.Flags().BoolVar(&fromArchive, "archive", false, "score the document archive instead of a corpus file")
	cmd.Flags().StringVarP(&format, "format", "f", "html", "report format: html or json")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().IntVar(&topK, "top", 0, "terms per bucket (overrides render.top_k)")
	cmd.Flags().StringVar(&title, "title", "", "report title (overrides render.title)")
	cmd.Flags().StringVarP(&granularity, "granularity", "g", "", "bucket width: day, month or year (overrides scoring.granularity)")
	cmd.Flags().StringVar(&stoplist, "stoplist", "", "stopword file replacing the built-in list (overrides scoring.stoplist_path)")
	cmd.Flags().BoolVar(&stemming, "stemming", false, "apply porter stemming to tokens (overrides scoring.stemming)")
	return cmd
}

func collectDocuments(ctx context.Context, cfg *config.Config, input string, fromArchive bool) ([]tempo.Document, error) {
	if fromArchive && input != "" {
		return nil, fmt.Errorf("use --input or --archive, not both")
	}

	if fromArchive {
		st, err := openArchive(ctx, cfg)
		if err != nil {
			return nil, err
		}
		defer st.Close()

		archived, err := st.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list archive: %w", err)
		}
		docs := make([]tempo.Document, 0, len(archived))
		for _, d := range archived {
			docs = append(docs, tempo.Document{Text: d.Text, Date: d.Date})
		}
		return docs, nil
	}

	if input == "" {
		return nil, fmt.Errorf("--input or --archive required")
	}
	records, err := dataset.Load(input)
	if err != nil {
		return nil, err
	}
	docs := make([]tempo.Document, 0, len(records))
	for _, rec := range records {
		docs = append(docs, tempo.Document{Text: rec.Text, Date: rec.Date})
	}
	return docs, nil
}
