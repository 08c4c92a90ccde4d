package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"canonqa/internal/corpus"
	"canonqa/internal/vectorstore"

	"github.com/spf13/cobra"
)

var (
	indexOut     string
	indexTimeout time.Duration
)

// indexCmd represents the index command
var indexCmd = &cobra.Command{
	Use:   "index <corpus.txt>",
	Short: "Parse, chunk and embed a corpus file into the vector index",
	Long: `Index parses a corpus text file into verses, chunks consecutive verses
into passages, embeds every passage, and writes the index to disk.

The tfidf embedder runs fully offline. The openai embedder needs
OPENAI_API_KEY and is rate limited; embedding results are cached, so
rebuilding over an unchanged corpus is cheap.

Example:
  canonqa index data/kjv.txt
  canonqa index data/kjv.txt --out vector_store/index.gob`,
	Args: cobra.ExactArgs(1),
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)

	indexCmd.Flags().StringVar(&indexOut, "out", "", "index output path (overrides config)")
	indexCmd.Flags().DurationVar(&indexTimeout, "timeout", 30*time.Minute, "overall build timeout")
}

func runIndex(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), indexTimeout)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if indexOut != "" {
		cfg.Index.Path = indexOut
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Parsing corpus: %s\n", args[0])
	}
	store, err := corpus.LoadFile(args[0], cfg.Index, cfg.Language)
	if err != nil {
		return err
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Chunked into %d passages\n", store.Len())
	}

	embedder, err := vectorstore.NewEmbedder(cfg.Index)
	if err != nil {
		return err
	}

	index := vectorstore.New(embedder)
	if verbose {
		fmt.Fprintf(os.Stderr, "Embedding with %s (%d workers)...\n", embedder.Name(), cfg.Concurrency.IndexWorkers)
	}
	if err := index.Build(ctx, store.All(), cfg.Concurrency.IndexWorkers); err != nil {
		return fmt.Errorf("build index: %w", err)
	}

	if err := index.Save(cfg.Index.Path); err != nil {
		return fmt.Errorf("save index: %w", err)
	}

	fmt.Printf("Indexed %d passages to %s\n", index.Len(), cfg.Index.Path)
	return nil
}
