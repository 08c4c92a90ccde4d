package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"canonqa/internal/llm"
	"canonqa/internal/model"
	"canonqa/internal/pipeline"
	"canonqa/internal/vectorstore"

	"github.com/spf13/cobra"
)

var (
	askTopK      int
	askTimeout   time.Duration
	askJSON      bool
	askNoVerify  bool
	askProvider  string
	askModel     string
	askIndexPath string
)

// askCmd represents the ask command
var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Answer a question from the indexed corpus with verification",
	Long: `Ask resolves one question through the retrieval router, generates an
answer from the retrieved passages, and verifies the answer claim by claim
against the evidence before printing it.

Example:
  canonqa ask "What happened at the burning bush?"
  canonqa ask "Genesis 1:26" --llm openai --model gpt-4o-mini
  canonqa ask "Who built the ark?" --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)

	askCmd.Flags().IntVarP(&askTopK, "top-k", "k", 0, "semantic search result count (0 = configured default)")
	askCmd.Flags().DurationVar(&askTimeout, "timeout", 2*time.Minute, "overall query timeout")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "print the full response as JSON")
	askCmd.Flags().BoolVar(&askNoVerify, "no-verify", false, "skip answer verification")
	askCmd.Flags().StringVar(&askProvider, "llm", "", "generation provider (openai, anthropic, ollama; empty = passages only)")
	askCmd.Flags().StringVar(&askModel, "model", "", "generation model name")
	askCmd.Flags().StringVar(&askIndexPath, "index", "", "vector index path (overrides config)")
}

func runAsk(cmd *cobra.Command, args []string) error {
	question := strings.Join(args, " ")
	ctx, cancel := context.WithTimeout(context.Background(), askTimeout)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if askNoVerify {
		cfg.Verify.Enabled = false
	}
	if askProvider != "" {
		cfg.LLM.Provider = askProvider
	}
	if askModel != "" {
		cfg.LLM.Model = askModel
	}
	if askIndexPath != "" {
		cfg.Index.Path = askIndexPath
	}

	store, err := openIndex(cfg)
	if err != nil {
		return err
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Loaded index: %d passages\n", store.Len())
	}

	provider, err := newProvider(&cfg.LLM)
	if err != nil {
		return err
	}

	engine := pipeline.New(store, store, provider, cfg)
	resp, err := engine.Query(ctx, question, askTopK)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	if askJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}

	fmt.Println(resp.Answer)
	if len(resp.Sources) > 0 {
		fmt.Printf("\nSources: %s\n", strings.Join(resp.Sources, ", "))
	}
	if resp.Verification != nil && verbose {
		fmt.Fprintf(os.Stderr, "\nVerification: %s (%.0f%% grounded, rejected=%v)\n",
			resp.Verification.Status, resp.Verification.GroundingRate*100, resp.Verification.Rejected)
	}
	return nil
}

// openIndex loads the persisted vector index for querying.
func openIndex(cfg *model.Config) (*vectorstore.Store, error) {
	embedder, err := vectorstore.NewEmbedder(cfg.Index)
	if err != nil {
		return nil, err
	}
	store := vectorstore.New(embedder)
	if err := store.Load(cfg.Index.Path); err != nil {
		return nil, fmt.Errorf("load index (run 'canonqa index' first): %w", err)
	}
	return store, nil
}

// newProvider builds the generation provider, resolving API keys from the
// environment. An empty provider name disables generation.
func newProvider(cfg *model.LLMConfig) (llm.Provider, error) {
	if cfg.Provider == "" {
		return nil, nil
	}
	if err := llm.ResolveAPIKey(cfg); err != nil {
		return nil, err
	}
	return llm.NewProvider(*cfg)
}
