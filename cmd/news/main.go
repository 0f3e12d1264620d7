// Package main provides a CLI that runs the news fallback cascade once.
// Usage: financespace-news [--category business] [--region us] [--output json]
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
)

// Output is the JSON output format.
type Output struct {
	Category string           `json:"category"`
	Region   string           `json:"region,omitempty"`
	Count    int              `json:"count"`
	Articles []entity.Article `json:"articles"`
}

func main() {
	var (
		category     string
		region       string
		outputFormat string
		feedsFile    string
		timeout      time.Duration
	)

	flag.StringVar(&category, "category", entity.CategoryBusiness, "News category (business, technology, science, health, entertainment, sports, cryptocurrency)")
	flag.StringVar(&region, "region", "", "Region (us, in, eu, asia, global)")
	flag.StringVar(&outputFormat, "output", "text", "Output format: text or json")
	flag.StringVar(&feedsFile, "feeds", os.Getenv("FALLBACK_FEEDS_FILE"), "YAML file of fallback RSS feeds")
	flag.DurationVar(&timeout, "timeout", 60*time.Second, "Overall timeout")
	flag.Parse()

	logger := logging.New(os.Stderr, logging.OptionsFromEnv())
	slog.SetDefault(logger)

	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	feeds, err := app.Feeds(feedsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to load feeds: %v\n", err)
		os.Exit(1)
	}

	disp := app.NewDispatchers(config.LoadOutboundConfig(), 0)
	svc := app.NewsService(config.LoadNewsConfig(), feeds, app.NewHTTPClient(), disp.Provider)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	ctx = logging.WithLogger(ctx, logger)

	logger.Info("fetching news",
		slog.String("category", category),
		slog.String("region", region))

	articles, err := svc.Fetch(ctx, entity.FetchRequest{Category: category, Region: region})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to fetch news: %v\n", err)
		os.Exit(1)
	}

	if outputFormat == "json" {
		outputJSON(Output{Category: category, Region: region, Count: len(articles), Articles: articles})
	} else {
		outputText(category, articles)
	}
}

// outputText prints articles in human-readable format.
func outputText(category string, articles []entity.Article) {
	fmt.Printf("News: %s\n", category)
	fmt.Printf("Results: %d\n\n", len(articles))

	if len(articles) == 0 {
		fmt.Println("No articles found.")
		return
	}

	for i, a := range articles {
		fmt.Printf("%d. %s\n", i+1, a.Title)
		fmt.Printf("   Source: %s\n", a.Source)
		if a.URL != "" {
			fmt.Printf("   URL: %s\n", a.URL)
		}
		if len(a.PublishedAt) > 0 {
			fmt.Printf("   Published: %s\n", string(a.PublishedAt))
		}
		fmt.Println()
	}
}

func outputJSON(out Output) {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(out); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to encode JSON: %v\n", err)
		os.Exit(1)
	}
}
