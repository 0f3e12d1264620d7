// Package main provides a CLI that asks the configured LLM a question,
// optionally grounded on web search results.
// Usage: financespace-ask "question" [--search] [--output json]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"financespace/internal/app"
	"financespace/internal/config"
	"financespace/internal/domain/entity"
	"financespace/internal/observability/logging"
	"financespace/internal/usecase/research"
)

// Output is the JSON output format.
type Output struct {
	Query   string                `json:"query"`
	Answer  string                `json:"answer"`
	Sources []entity.SearchResult `json:"sources,omitempty"`
}

func main() {
	var (
		withSearch   bool
		outputFormat string
	)

	flag.BoolVar(&withSearch, "search", false, "Search the web first and summarize the top results")
	flag.StringVar(&outputFormat, "output", "text", "Output format: text or json")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Error: Question is required")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage: financespace-ask \"question\" [--search] [--output json]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Examples:")
		fmt.Fprintln(os.Stderr, "  financespace-ask \"What is a yield curve inversion?\"")
		fmt.Fprintln(os.Stderr, "  financespace-ask \"Artemis program budget\" --search")
		os.Exit(1)
	}
	query := args[0]

	logger := logging.New(os.Stderr, logging.OptionsFromEnv())
	slog.SetDefault(logger)

	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	llmCfg := config.LoadLLMConfig()
	completer, err := app.Completer(llmCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to initialize LLM: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), llmCfg.Timeout+30*time.Second)
	defer cancel()
	ctx = logging.WithLogger(ctx, logger)

	out := Output{Query: query}
	prompt, contextText := query, ""
	if withSearch {
		searcher := app.Searcher(config.LoadSearchConfig(), app.NewHTTPClient())
		out.Sources, err = searcher.Search(ctx, query)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Search failed: %v\n", err)
			os.Exit(1)
		}
		prompt, contextText = research.SummaryPrompt(query), research.SearchContext(out.Sources)
	}

	out.Answer, err = completer.Complete(ctx, prompt, contextText)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Completion failed: %v\n", err)
		os.Exit(1)
	}

	if outputFormat == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(out); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to encode JSON: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Println(out.Answer)
	if len(out.Sources) > 0 {
		fmt.Println("\nSources:")
		for i, s := range out.Sources {
			fmt.Printf("%d. %s\n   %s\n", i+1, s.Title, s.URL)
		}
	}
}
