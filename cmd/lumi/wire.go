package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fwojciec/lumi"
	"github.com/fwojciec/lumi/agent"
	"github.com/fwojciec/lumi/docx"
	"github.com/fwojciec/lumi/everything"
	"github.com/fwojciec/lumi/fs"
	"github.com/fwojciec/lumi/gemini"
	"github.com/fwojciec/lumi/htmltomarkdown"
	"github.com/fwojciec/lumi/ollama"
	"github.com/fwojciec/lumi/pdf"
	"github.com/fwojciec/lumi/readability"
	lumislog "github.com/fwojciec/lumi/slog"
	"github.com/fwojciec/lumi/sqlite"
	"github.com/fwojciec/lumi/trafilatura"
	"google.golang.org/genai"
)

// model is a language model that can also report its health.
type model interface {
	lumi.Asker
	lumi.HealthChecker
}

// searchBackend is a search index that can also report its health.
type searchBackend interface {
	lumi.Searcher
	lumi.HealthChecker
}

func newModel(ctx context.Context, cli *CLI, stderr io.Writer) (model, error) {
	switch cli.Provider {
	case providerGemini:
		if cli.GeminiAPIKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return nil, fmt.Errorf("GEMINI_API_KEY not set")
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cli.GeminiAPIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		return gemini.NewAsker(client, cli.GeminiModel), nil
	default:
		client, err := ollama.NewClient(cli.OllamaURL, ollama.WithModel(cli.Model))
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Set LUMI_OLLAMA_BASE_URL to the Ollama server address")
			return nil, fmt.Errorf("failed to create ollama client: %w", err)
		}
		return client, nil
	}
}

func (m *Main) newSearcher(cli *CLI, stderr io.Writer) (searchBackend, error) {
	switch cli.Backend {
	case backendSQLite:
		if err := m.openDB(cli, stderr); err != nil {
			return nil, err
		}
		return sqlite.NewFileService(m.DB), nil
	default:
		var opts []everything.Option
		if cli.EverythingUser != "" {
			opts = append(opts, everything.WithCredentials(cli.EverythingUser, cli.EverythingPassword))
		}
		client, err := everything.NewClient(cli.EverythingURL, opts...)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Set LUMI_EVERYTHING_URL to the Everything HTTP server address")
			return nil, fmt.Errorf("failed to create everything client: %w", err)
		}
		return client, nil
	}
}

// newDocumentReader registers a reader for every supported extension.
func newDocumentReader() *fs.DocumentReader {
	text := fs.NewTextReader(lumi.FormatText)
	markdown := fs.NewTextReader(lumi.FormatMarkdown)
	word := docx.NewReader()
	html := &fs.HTMLReader{
		Extractors: []lumi.Extractor{
			trafilatura.NewExtractor(),
			readability.NewExtractor(),
		},
		Converter: htmltomarkdown.NewConverter(),
	}

	return fs.NewDocumentReader(map[string]lumi.DocumentReader{
		".pdf":      pdf.NewReader(),
		".docx":     word,
		".doc":      word,
		".html":     html,
		".htm":      html,
		".txt":      text,
		".md":       markdown,
		".markdown": markdown,
	})
}

func newAgent(searcher lumi.Searcher, asker lumi.Asker, logger *slog.Logger) lumi.Agent {
	return lumislog.NewLoggingAgent(agent.New(searcher, asker), logger)
}

// newLogger returns a text logger writing to w at the named level.
func newLogger(w io.Writer, level string) *slog.Logger {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l}))
}
