package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"canonqa/internal/corpus"

	"github.com/spf13/cobra"
)

var (
	fetchOut     string
	fetchTimeout time.Duration
)

// fetchCmd represents the fetch command
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the corpus text from a public mirror",
	Long: `Fetch downloads the corpus from the configured mirrors, trying each in
order until one serves a complete text. Mirrors are checked against their
robots.txt before fetching, and HTML responses are reduced to visible text.

Example:
  canonqa fetch --out data/kjv.txt`,
	Args: cobra.NoArgs,
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().StringVar(&fetchOut, "out", "data/corpus.txt", "output file path")
	fetchCmd.Flags().DurationVar(&fetchTimeout, "timeout", 5*time.Minute, "overall download timeout")
}

func runFetch(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	downloader := corpus.NewDownloader(cfg.HTTP)
	text, mirror, err := downloader.Download(ctx)
	if err != nil {
		return err
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Downloaded %d bytes from %s\n", len(text), mirror)
	}

	if err := os.MkdirAll(filepath.Dir(fetchOut), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(fetchOut, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write corpus: %w", err)
	}

	fmt.Printf("Wrote corpus to %s\n", fetchOut)
	return nil
}
