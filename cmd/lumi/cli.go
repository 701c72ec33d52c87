package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/lumi"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Agent     lumi.Agent
	Asker     lumi.Asker
	Searcher  lumi.Searcher
	Documents lumi.DocumentReader
	Index     lumi.FileIndex

	ModelHealth  lumi.HealthChecker
	SearchHealth lumi.HealthChecker
}

const (
	providerOllama = "ollama"
	providerGemini = "gemini"

	backendEverything = "everything"
	backendSQLite     = "sqlite"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Provider     string `enum:"ollama,gemini" default:"ollama" env:"LUMI_PROVIDER" help:"Language model provider (ollama, gemini)"`
	OllamaURL    string `name:"ollama-url" default:"http://127.0.0.1:11434" env:"LUMI_OLLAMA_BASE_URL" help:"Ollama server URL"`
	Model        string `default:"gemma:2b" env:"LUMI_OLLAMA_MODEL" help:"Ollama model name"`
	GeminiAPIKey string `name:"gemini-api-key" env:"GEMINI_API_KEY" help:"Gemini API key"`
	GeminiModel  string `name:"gemini-model" default:"gemini-2.5-flash" env:"LUMI_GEMINI_MODEL" help:"Gemini model name"`

	Backend            string `enum:"everything,sqlite" default:"everything" env:"LUMI_BACKEND" help:"Search backend (everything, sqlite)"`
	EverythingURL      string `name:"everything-url" default:"http://127.0.0.1:8080" env:"LUMI_EVERYTHING_URL" help:"Everything HTTP server URL"`
	EverythingUser     string `name:"everything-user" env:"LUMI_EVERYTHING_USER" help:"Everything HTTP server user"`
	EverythingPassword string `name:"everything-password" env:"LUMI_EVERYTHING_PASSWORD" help:"Everything HTTP server password"`
	DB                 string `name:"db" env:"LUMI_DB" help:"Local index database path (default ~/.lumi/lumi.db)"`

	LogLevel string `name:"log-level" enum:"debug,info,warn,error" default:"info" env:"LUMI_LOG_LEVEL" help:"Log level (debug, info, warn, error)"`

	Serve   ServeCmd   `cmd:"" help:"Run the HTTP gateway"`
	Agent   AgentCmd   `cmd:"" help:"Answer a natural language file-search request"`
	Search  SearchCmd  `cmd:"" help:"Run a search query against the index"`
	Ask     AskCmd     `cmd:"" help:"Ask the language model a question"`
	Extract ExtractCmd `cmd:"" help:"Extract text from a document"`
	Index   IndexCmd   `cmd:"" help:"Build the local index from directories"`
	Health  HealthCmd  `cmd:"" help:"Check the language model and search backend"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr          string  `default:"0.0.0.0:8000" env:"LUMI_ADDR" help:"Listen address"`
	RateLimit     float64 `name:"rate-limit" default:"0" env:"LUMI_RATE_LIMIT" help:"Requests per second per client (0 disables)"`
	SearchResults int     `name:"search-results" default:"30" help:"Results returned by /api/search"`
}

// AgentCmd is the "agent" subcommand.
type AgentCmd struct {
	Query string `arg:"" help:"Natural language request, e.g. \"C드라이브에서 큰 파일\""`
	JSON  bool   `help:"Print the outcome as JSON"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Search query"`
	Max   int    `short:"n" default:"30" help:"Maximum results"`
	Sort  string `enum:"default,size,date" default:"default" help:"Sort order (default, size, date)"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Prompt string `arg:"" help:"Question for the language model"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Path   string `arg:"" help:"Document path"`
	Output string `short:"o" help:"Write the document into this directory instead of stdout"`
}

// IndexCmd is the "index" subcommand.
type IndexCmd struct {
	Roots       []string `arg:"" help:"Directories to index"`
	Concurrency int      `short:"c" default:"4" help:"Directories walked concurrently"`
	Hidden      bool     `help:"Include hidden files and folders"`
}

// HealthCmd is the "health" subcommand.
type HealthCmd struct{}
