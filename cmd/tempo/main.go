// Command tempo scores dated text corpora with a temporal tf-idf weighting
// and renders the result as an HTML or JSON report. Corpora come from CSV or
// JSONL files or from a SQLite document archive; the serve subcommand exposes
// the archive and its reports over HTTP.
package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/benhorvath/tempo-tfidf/pkg/tempo/config"
	"github.com/benhorvath/tempo-tfidf/pkg/tempo/store"
	"github.com/benhorvath/tempo-tfidf/pkg/tempo/store/memstore"
	"github.com/benhorvath/tempo-tfidf/pkg/tempo/store/sqlite"
)

func main() {
	root := &cobra.Command{
		Use:          "tempo",
		Short:        "Temporal tf-idf scoring for dated text corpora",
		SilenceUsage: true,
	}
	root.AddCommand(scoreCmd(), ingestCmd(), serveCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// openArchive opens the configured document archive. An empty path selects
// the in-memory store, which lives only as long as the process.
func openArchive(ctx context.Context, cfg *config.Config) (store.Store, error) {
	if cfg.Archive.Path == "" {
		return memstore.New(), nil
	}
	return sqlite.Open(ctx, cfg.Archive.Path)
}
