// Package main is the Kotae CLI entry point.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/hyperjump/kotae/internal/cli"
	"github.com/hyperjump/kotae/internal/config"
	"github.com/hyperjump/kotae/internal/embedding"
	"github.com/hyperjump/kotae/internal/extract"
	"github.com/hyperjump/kotae/internal/generation"
	"github.com/hyperjump/kotae/internal/history"
	"github.com/hyperjump/kotae/internal/knowledge"
	"github.com/hyperjump/kotae/internal/models"
	"github.com/hyperjump/kotae/internal/rag"
	"github.com/hyperjump/kotae/internal/server"
	"github.com/hyperjump/kotae/internal/watcher"
	"github.com/hyperjump/kotae/pkg/utils"
	"go.uber.org/zap"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/kotae/config.yaml"

// loadConfig loads config from path. When path is the default, it first looks for
// config.yaml in the current directory (for development); if that exists it is used,
// so that "kotae server" from the project dir uses the project's config (including debug).
// Returns the config and the path that was actually loaded (for status, etc.).
func loadConfig(path string) (*config.Config, string, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				cfg, loadErr := config.Load(fallback)
				if loadErr != nil {
					return nil, "", loadErr
				}
				return cfg, fallback, nil
			}
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "ask":
		runAsk()
	case "search":
		runSearch()
	case "lookup":
		runLookup()
	case "server":
		runServer()
	case "status":
		runStatus()
	case "history":
		runHistory()
	case "init":
		runInit()
	case "version", "--version", "-v":
		fmt.Printf("kotae version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func runServer() {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging (reloads, retrieval details, etc.)")
	_ = fs.Parse(os.Args[2:])

	cfg, resolvedConfigPath, err := loadConfig(*configPath)
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

	logger.Info("config loaded",
		zap.String("config_path", resolvedConfigPath),
		zap.Bool("debug", debugMode),
	)

	components, err := initializeComponents(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize components", zap.Error(err))
	}
	defer components.Close()

	// A failed initial load is not fatal: the server still answers /health
	// and /status, and the document can be loaded via POST /api/v1/reload.
	if cfg.Document.Path != "" {
		if _, err := components.Base.Load(context.Background(), cfg.Document.Path); err != nil {
			logger.Warn("document load failed, serving without a loaded document",
				zap.String("path", cfg.Document.Path), zap.Error(err))
		}
	} else {
		logger.Warn("no document configured, load one via POST /api/v1/reload")
	}

	if cfg.Document.Watch && cfg.Document.Path != "" {
		watchOpts := []watcher.Option{}
		if debugMode {
			watchOpts = append(watchOpts, watcher.WithLogger(logger))
		}
		base := components.Base
		w, err := watcher.New(cfg.Document.Path, func(path string) {
			if _, err := base.Load(context.Background(), path); err != nil {
				logger.Warn("document reload failed", zap.String("path", path), zap.Error(err))
			}
		}, watchOpts...)
		if err != nil {
			logger.Fatal("Failed to create watcher", zap.Error(err))
		}
		watchCtx, watchCancel := context.WithCancel(context.Background())
		defer watchCancel()
		if err := w.Start(watchCtx); err != nil {
			logger.Fatal("Failed to start watcher", zap.Error(err))
		}
	}

	srv := server.NewServer(components.Pipeline, components.Base, components.History, cfg, logger)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
}

// printAskUsage prints ask subcommand usage and hints.
func printAskUsage(fs *flag.FlagSet) {
	fmt.Fprintf(fs.Output(), "Usage: kotae ask [flags] <question>\n\n")
	fmt.Fprintf(fs.Output(), "The question is all remaining arguments joined by spaces. Multi-word questions work with or without quotes.\n\n")
	fs.PrintDefaults()
	fmt.Fprintf(fs.Output(), `
Without --server the document is extracted and embedded in-process, which
takes a while for large files. Run "kotae server" once and pass
--server http://localhost:8080 to reuse its loaded index.

Examples:
  kotae ask what is the mitochondria
  kotae ask "what is the mitochondria"              # same as above
  kotae ask --top-k 5 what does chapter two cover
  kotae ask --server http://localhost:8080 --output json "summarize page 3"
`)
}

// buildQueryText joins all positional args with spaces so multi-word questions
// work the same with or without shell quoting (e.g. "cell membrane" vs cell membrane).
func buildQueryText(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

// queryArgsReorder moves any flags (and their values) that appear after the query
// to the front of the slice so that flag.Parse() sees them. Go's flag package
// stops at the first non-flag argument, so "kotae ask \"question\" -top-k 5"
// would otherwise leave -top-k unparsed (default used).
func queryArgsReorder(args []string) []string {
	for i, a := range args {
		if len(a) > 0 && a[0] == '-' {
			if i == 0 {
				return args
			}
			reordered := make([]string, 0, len(args))
			reordered = append(reordered, args[i:]...)
			reordered = append(reordered, args[:i]...)
			return reordered
		}
	}
	return args
}

// parseOutputFormat maps the -output flag value to a cli format.
func parseOutputFormat(name string) (cli.OutputFormat, error) {
	switch name {
	case "text":
		return cli.OutputText, nil
	case "json":
		return cli.OutputJSON, nil
	default:
		return "", fmt.Errorf("unknown output format %q; use text or json", name)
	}
}

func runAsk() {
	askArgs := queryArgsReorder(os.Args[2:])
	fs := flag.NewFlagSet("ask", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	serverURL := fs.String("server", "", "server URL (empty = load the document in-process)")
	topK := fs.Int("top-k", 0, "number of chunks to retrieve (0 = config default)")
	outputFormat := fs.String("output", "text", "output format: text (human-readable) or json (parseable)")
	fs.Usage = func() { printAskUsage(fs) }
	_ = fs.Parse(askArgs)

	if fs.NArg() < 1 {
		printAskUsage(fs)
		os.Exit(1)
	}
	question := buildQueryText(fs.Args())
	if question == "" {
		printAskUsage(fs)
		os.Exit(1)
	}
	format, err := parseOutputFormat(*outputFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	query := &models.AskQuery{Question: question, TopK: *topK}

	if *serverURL != "" {
		var answer models.Answer
		if err := postJSON(*serverURL+"/api/v1/ask", query, &answer); err != nil {
			fmt.Fprintf(os.Stderr, "Ask failed: %v\n", err)
			os.Exit(1)
		}
		if err := cli.WriteAnswer(os.Stdout, &answer, format); err != nil {
			fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	cfg, components, logger := loadComponents(*configPath)
	defer logger.Sync()
	defer components.Close()

	if query.TopK <= 0 {
		query.TopK = cfg.Retrieval.TopK
	}
	answer, err := components.Pipeline.Ask(context.Background(), query)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ask failed: %v\n", err)
		os.Exit(1)
	}
	if err := cli.WriteAnswer(os.Stdout, answer, format); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func runSearch() {
	searchArgs := queryArgsReorder(os.Args[2:])
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	serverURL := fs.String("server", "", "server URL (empty = load the document in-process)")
	topK := fs.Int("top-k", 0, "number of chunks to return (0 = config default)")
	outputFormat := fs.String("output", "text", "output format: text (human-readable) or json (parseable)")
	_ = fs.Parse(searchArgs)

	if fs.NArg() < 1 {
		fmt.Println("Usage: kotae search [flags] <query>")
		os.Exit(1)
	}
	queryStr := buildQueryText(fs.Args())
	if queryStr == "" {
		fmt.Println("Usage: kotae search [flags] <query>")
		os.Exit(1)
	}
	format, err := parseOutputFormat(*outputFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	query := &models.SearchQuery{Query: queryStr, TopK: *topK}

	if *serverURL != "" {
		var response models.SearchResponse
		if err := postJSON(*serverURL+"/api/v1/search", query, &response); err != nil {
			fmt.Fprintf(os.Stderr, "Search failed: %v\n", err)
			os.Exit(1)
		}
		if err := cli.WriteSearchResults(os.Stdout, &response, format); err != nil {
			fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	cfg, components, logger := loadComponents(*configPath)
	defer logger.Sync()
	defer components.Close()

	if query.TopK <= 0 {
		query.TopK = cfg.Retrieval.TopK
	}
	response, err := components.Pipeline.Search(context.Background(), query)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Search failed: %v\n", err)
		os.Exit(1)
	}
	if err := cli.WriteSearchResults(os.Stdout, response, format); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func runLookup() {
	lookupArgs := queryArgsReorder(os.Args[2:])
	fs := flag.NewFlagSet("lookup", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	serverURL := fs.String("server", "", "server URL (empty = load the document in-process)")
	limit := fs.Int("limit", 10, "number of chunks to return")
	outputFormat := fs.String("output", "text", "output format: text (human-readable) or json (parseable)")
	_ = fs.Parse(lookupArgs)

	if fs.NArg() < 1 {
		fmt.Println("Usage: kotae lookup [flags] <term>")
		os.Exit(1)
	}
	term := buildQueryText(fs.Args())
	if term == "" {
		fmt.Println("Usage: kotae lookup [flags] <term>")
		os.Exit(1)
	}
	format, err := parseOutputFormat(*outputFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	query := &models.LookupQuery{Term: term, Limit: *limit}

	if *serverURL != "" {
		var response models.LookupResponse
		if err := postJSON(*serverURL+"/api/v1/lookup", query, &response); err != nil {
			fmt.Fprintf(os.Stderr, "Lookup failed: %v\n", err)
			os.Exit(1)
		}
		if err := cli.WriteLookupResults(os.Stdout, &response, format); err != nil {
			fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	_, components, logger := loadComponents(*configPath)
	defer logger.Sync()
	defer components.Close()

	response, err := components.Pipeline.Lookup(context.Background(), query)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Lookup failed: %v\n", err)
		os.Exit(1)
	}
	if err := cli.WriteLookupResults(os.Stdout, response, format); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

// postJSON posts body to url and decodes the JSON response into out.
func postJSON(url string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, string(b))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func runStatus() {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	outputFormat := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(os.Args[2:])

	cfg, resolvedConfigPath, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	format, err := parseOutputFormat(*outputFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	status := &cli.Status{
		ConfigPath:       resolvedConfigPath,
		DocumentPath:     cfg.Document.Path,
		ChunkSize:        cfg.Chunking.Size,
		ChunkOverlap:     cfg.Chunking.Overlap,
		TopK:             cfg.Retrieval.TopK,
		EmbeddingBackend: cfg.Embedding.Provider,
		Dimensions:       cfg.Embedding.Dimensions,
		GenerationModel:  generationLabel(&cfg.Generation),
		HistoryEnabled:   cfg.History.EnabledOrDefault(),
	}
	if cfg.Document.Path != "" {
		if info, statErr := os.Stat(cfg.Document.Path); statErr == nil {
			status.DocumentExists = true
			status.DocumentBytes = info.Size()
		}
	}
	// Only inspect the history database if it already exists; status should
	// not create it.
	if status.HistoryEnabled {
		if _, statErr := os.Stat(cfg.History.DatabasePath); statErr == nil {
			if store, storeErr := history.NewStore(cfg.History.DatabasePath); storeErr == nil {
				if n, countErr := store.Count(context.Background()); countErr == nil {
					status.HistoryAnswers = n
				}
				_ = store.Close()
			}
			if used, duErr := history.DiskUsageBytes(history.DatabaseFiles(cfg.History.DatabasePath)...); duErr == nil {
				status.HistoryBytes = used
			}
		}
	}

	if err := cli.WriteStatus(os.Stdout, status, format); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func runHistory() {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	limit := fs.Int("limit", 20, "number of answers to show")
	clearAll := fs.Bool("clear", false, "delete all recorded answers")
	outputFormat := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(os.Args[2:])

	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if !cfg.History.EnabledOrDefault() {
		fmt.Fprintln(os.Stderr, "History is disabled in the config")
		os.Exit(1)
	}
	format, err := parseOutputFormat(*outputFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	store, err := history.NewStore(cfg.History.DatabasePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	ctx := context.Background()
	if *clearAll {
		if err := store.Clear(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Clear failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("History cleared")
		return
	}
	answers, err := store.Recent(ctx, *limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read history: %v\n", err)
		os.Exit(1)
	}
	if err := cli.WriteHistory(os.Stdout, answers, format); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func runInit() {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	force := fs.Bool("force", false, "overwrite an existing config file")
	_ = fs.Parse(os.Args[2:])

	path := defaultConfigPath
	if fs.NArg() > 0 {
		path = fs.Arg(0)
	}
	if _, err := os.Stat(path); err == nil && !*force {
		fmt.Fprintf(os.Stderr, "Config already exists at %s (use --force to overwrite)\n", path)
		os.Exit(1)
	}
	var cfg config.Config
	config.ApplyDefaults(&cfg)
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create config directory: %v\n", err)
			os.Exit(1)
		}
	}
	if err := config.Save(path, &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write config: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote starter config to %s\n", path)
	fmt.Println("Set document.path to your PDF before running kotae ask.")
}

// Components holds initialized services.
type Components struct {
	Embedder  embedding.Embedder
	Generator generation.Generator
	Base      *knowledge.Base
	History   *history.Store
	Pipeline  *rag.Pipeline
}

func (c *Components) Close() {
	if c.Base != nil {
		_ = c.Base.Close()
	}
	if c.Embedder != nil {
		_ = c.Embedder.Close()
	}
	if c.History != nil {
		_ = c.History.Close()
	}
}

func initializeComponents(cfg *config.Config, logger *zap.Logger) (*Components, error) {
	embedder, err := newEmbedder(cfg, logger)
	if err != nil {
		return nil, err
	}

	generator, err := newGenerator(cfg, logger)
	if err != nil {
		_ = embedder.Close()
		return nil, err
	}

	base, err := knowledge.New(cfg.Chunking.Size, cfg.Chunking.Overlap, embedder, extract.NewExtractor(), logger)
	if err != nil {
		_ = embedder.Close()
		return nil, fmt.Errorf("failed to initialize knowledge base: %w", err)
	}

	var store *history.Store
	if cfg.History.EnabledOrDefault() {
		store, err = history.NewStore(cfg.History.DatabasePath)
		if err != nil {
			_ = base.Close()
			_ = embedder.Close()
			return nil, fmt.Errorf("failed to initialize history: %w", err)
		}
	}

	pipeline := rag.NewPipeline(base, embedder, generator, store, logger)

	return &Components{
		Embedder:  embedder,
		Generator: generator,
		Base:      base,
		History:   store,
		Pipeline:  pipeline,
	}, nil
}

// newEmbedder builds the embedding backend named by cfg.Embedding.Provider.
func newEmbedder(cfg *config.Config, logger *zap.Logger) (embedding.Embedder, error) {
	e := &cfg.Embedding
	switch e.Provider {
	case "", "onnx":
		onnxEmbedder, err := embedding.NewONNXEmbedder(e.ModelPath, e.Dimensions, e.MaxTokens, e.CacheSize)
		if err != nil {
			if logger != nil {
				logger.Warn("onnx embedder unavailable, using mock embeddings",
					zap.String("model_path", e.ModelPath),
					zap.Error(err))
			}
			return embedding.NewMockEmbedder(e.Dimensions), nil
		}
		return onnxEmbedder, nil
	case "ollama":
		return embedding.NewOllamaEmbedder(e.ServerURL, e.Model, e.Dimensions, e.CacheSize)
	case "openai":
		return embedding.NewOpenAIEmbedder(e.ServerURL, e.APIKey, e.Model, e.Dimensions, e.CacheSize)
	case "mock":
		return embedding.NewMockEmbedder(e.Dimensions), nil
	default:
		return nil, fmt.Errorf("unknown embedding provider %q", e.Provider)
	}
}

// newGenerator builds the answer generator named by cfg.Generation.Provider.
// Model-backed generators are wrapped so a dead model server degrades to the
// template answer instead of failing the query.
func newGenerator(cfg *config.Config, logger *zap.Logger) (generation.Generator, error) {
	g := &cfg.Generation
	opts := generation.Options{
		Temperature: g.TemperatureOrDefault(),
		MaxTokens:   g.MaxTokens,
		TopK:        g.TopK,
		TopP:        g.TopP,
	}
	switch g.Provider {
	case "", "ollama":
		llm, err := generation.NewOllamaGenerator(g.ServerURL, g.Model, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize ollama generator: %w", err)
		}
		return generation.NewFallbackGenerator(llm, generation.NewTemplateGenerator(), logger), nil
	case "openai":
		llm, err := generation.NewOpenAIGenerator(g.ServerURL, g.APIKey, g.Model, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize openai generator: %w", err)
		}
		return generation.NewFallbackGenerator(llm, generation.NewTemplateGenerator(), logger), nil
	case "template":
		return generation.NewTemplateGenerator(), nil
	default:
		return nil, fmt.Errorf("unknown generation provider %q", g.Provider)
	}
}

// generationLabel names the configured generator the way recorded answers do.
func generationLabel(g *config.GenerationConfig) string {
	switch g.Provider {
	case "template":
		return "template"
	case "openai":
		return "openai:" + g.Model
	default:
		return "ollama:" + g.Model
	}
}

// loadComponents loads config, builds components, and loads the configured
// document. Used by the direct (serverless) query paths; exits on failure.
func loadComponents(configPath string) (*config.Config, *Components, *zap.Logger) {
	cfg, _, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := utils.NewLogger(cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	components, err := initializeComponents(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize components", zap.Error(err))
	}
	if cfg.Document.Path == "" {
		components.Close()
		fmt.Fprintln(os.Stderr, "No document configured; set document.path in the config file")
		os.Exit(1)
	}
	if _, err := components.Base.Load(context.Background(), cfg.Document.Path); err != nil {
		components.Close()
		fmt.Fprintf(os.Stderr, "Failed to load document: %v\n", err)
		os.Exit(1)
	}
	return cfg, components, logger
}

func printUsage() {
	fmt.Println(`kotae - Ask questions about a document from your terminal

Usage:
  kotae ask [flags] <question>    Answer a question from the configured document
  kotae search [flags] <query>    Show the chunks closest to a query
  kotae lookup [flags] <term>     Find chunks containing an exact term
  kotae server [flags]            Start the HTTP API server
  kotae status [flags]            Show configuration and store status
  kotae history [flags]           Show recorded answers
  kotae init [flags] [path]       Write a starter config file
  kotae version                   Show version
  kotae help                      Show this help

Ask/Search/Lookup Flags:
  --config string    Config file path (default: /usr/local/etc/kotae/config.yaml)
  --server string    Server URL (default: empty = extract and embed the document in-process)
  --top-k int        Number of chunks to retrieve (0 = config default; lookup uses --limit)
  --output string    Output format: text or json (default: text)

Server Flags:
  --config string    Config file path
  --debug            Enable debug logging (reloads, retrieval details, etc.)

Status Flags:
  --config string    Config file path
  --output string    Output format: text or json (default: text)

History Flags:
  --config string    Config file path
  --limit int        Number of answers to show (default: 20)
  --clear            Delete all recorded answers

Init Flags:
  --force            Overwrite an existing config file

Examples:
  kotae init config.yaml
  kotae ask "what is the mitochondria"
  kotae ask --top-k 5 what does chapter two cover
  kotae search --output json "cell membrane"
  kotae lookup mitochondria
  kotae server
  kotae ask --server http://localhost:8080 "what powers the cell"
  kotae history --limit 10
  kotae status`)
}
