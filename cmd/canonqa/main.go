package main

import (
	"fmt"
	"os"

	"canonqa/internal/cli"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; API keys can come from the real environment.
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
