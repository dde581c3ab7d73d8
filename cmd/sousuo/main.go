// Package main is the Sousuo CLI entry point.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/heritagecraft/sousuo/internal/cli"
	"github.com/heritagecraft/sousuo/internal/config"
	"github.com/heritagecraft/sousuo/internal/content"
	"github.com/heritagecraft/sousuo/internal/models"
	"github.com/heritagecraft/sousuo/internal/ranking"
	"github.com/heritagecraft/sousuo/internal/search"
	"github.com/heritagecraft/sousuo/internal/server"
	"github.com/heritagecraft/sousuo/internal/source"
	"github.com/heritagecraft/sousuo/pkg/utils"
)

var version = "dev"

const defaultServerURL = "http://localhost:8384"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "server":
		runServer()
	case "search":
		runSearch()
	case "add":
		runAdd()
	case "version", "--version", "-v":
		fmt.Printf("sousuo version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

// loadConfig loads the config file when given, else the defaults.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func runServer() {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", "", "config file path (defaults used when empty)")
	debug := fs.Bool("debug", false, "enable debug logging")
	seedPath := fs.String("seed", "", "JSON file of records to load at startup")
	_ = fs.Parse(os.Args[2:])

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	store := source.NewMemorySource(source.NewLogNotifier(logger))
	if *seedPath != "" {
		count, seedErr := seedRecords(store, *seedPath)
		if seedErr != nil {
			logger.Fatal("Failed to seed records", zap.Error(seedErr))
		}
		logger.Info("records seeded", zap.Int("count", count), zap.String("path", *seedPath))
	}

	accessor := content.NewAccessor(cfg.Languages.Supported, cfg.Languages.Default)
	ranker := ranking.NewRanker(&cfg.Ranking, accessor)
	suggester := search.NewSuggester(cfg.Suggestions.Vocabulary)

	engine, err := search.NewEngine(store, accessor, ranker, suggester, &cfg.Search, logger)
	if err != nil {
		logger.Fatal("Failed to initialize search engine", zap.Error(err))
	}
	defer engine.Close()

	srv := server.NewServer(engine, store, &cfg.Server, logger)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if stopErr := srv.Stop(ctx); stopErr != nil {
			logger.Error("Shutdown failed", zap.Error(stopErr))
		}
	}()

	if err := srv.Start(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("Server failed", zap.Error(err))
	}
}

func runSearch() {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	serverURL := fs.String("server", defaultServerURL, "server URL")
	language := fs.String("language", "en", "query language")
	limit := fs.Int("limit", 0, "number of results (0 = server default)")
	offset := fs.Int("offset", 0, "result offset")
	outputFormat := fs.String("output", "text", "output format: text or json")
	fs.Usage = func() { printSearchUsage(fs) }
	_ = fs.Parse(os.Args[2:])

	queryText := strings.TrimSpace(strings.Join(fs.Args(), " "))

	format := cli.OutputText
	switch *outputFormat {
	case "json":
		format = cli.OutputJSON
	case "text":
		format = cli.OutputText
	default:
		fmt.Printf("Unknown output format %q; use text or json\n", *outputFormat)
		os.Exit(1)
	}

	query := &models.SearchQuery{
		Text:     queryText,
		Language: *language,
		Limit:    *limit,
		Offset:   *offset,
	}

	response, err := searchViaHTTP(*serverURL, query)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Search failed: %v\n", err)
		os.Exit(1)
	}
	if err := cli.WriteSearchResults(os.Stdout, response, format); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func runAdd() {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	serverURL := fs.String("server", defaultServerURL, "server URL")
	filePath := fs.String("file", "", "JSON file containing one record input")
	_ = fs.Parse(os.Args[2:])

	if *filePath == "" {
		fmt.Fprintln(os.Stderr, "add requires -file pointing at a record JSON file")
		os.Exit(1)
	}

	data, err := os.ReadFile(*filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read %s: %v\n", *filePath, err)
		os.Exit(1)
	}

	resp, err := http.Post(*serverURL+"/api/v1/records", "application/json", bytes.NewReader(data))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Request failed: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusCreated {
		fmt.Fprintf(os.Stderr, "Server returned %d: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}
	fmt.Println(string(body))
}

// searchViaHTTP posts the query to a running server and decodes the response.
func searchViaHTTP(serverURL string, query *models.SearchQuery) (*models.SearchResponse, error) {
	payload, err := json.Marshal(query)
	if err != nil {
		return nil, err
	}

	resp, err := http.Post(serverURL+"/api/v1/search", "application/json", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(body))
	}

	var response models.SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, err
	}
	return &response, nil
}

// seedRecords loads a JSON array of record inputs into the store.
func seedRecords(store *source.MemorySource, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	var inputs []*models.RecordInput
	if err := json.Unmarshal(data, &inputs); err != nil {
		return 0, err
	}
	for _, input := range inputs {
		if _, err := store.Add(input); err != nil {
			return 0, err
		}
	}
	return len(inputs), nil
}

func printUsage() {
	fmt.Print(`sousuo - multilingual search and relevance engine

Usage:
  sousuo server [-config path] [-debug] [-seed records.json]
  sousuo search [flags] <query terms...>
  sousuo add -file record.json [-server url]
  sousuo version
  sousuo help

Run "sousuo search -h" for search flags.
`)
}

func printSearchUsage(fs *flag.FlagSet) {
	fmt.Print(`Usage: sousuo search [flags] <query terms...>

Flags:
`)
	fs.PrintDefaults()
	fmt.Print(`
Examples:
  sousuo search woodworking
  sousuo search -language zh-HK 陶瓷
  sousuo search -limit 5 -output json bamboo weaving
`)
}
