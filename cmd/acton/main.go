// Command acton runs a permission-gated action agent behind a small HTTP
// API, or exports its action catalog over MCP stdio with -mcp.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/actonlabs/acton/pkg/action"
	"github.com/actonlabs/acton/pkg/action/file"
	"github.com/actonlabs/acton/pkg/action/weather"
	"github.com/actonlabs/acton/pkg/adapters/llm"
	_ "github.com/actonlabs/acton/pkg/adapters/llm/gemini"
	_ "github.com/actonlabs/acton/pkg/adapters/llm/openai"
	"github.com/actonlabs/acton/pkg/agent"
	"github.com/actonlabs/acton/pkg/config"
	"github.com/actonlabs/acton/pkg/errmodel"
	"github.com/actonlabs/acton/pkg/history"
	"github.com/actonlabs/acton/pkg/mcpserver"
	otelinit "github.com/actonlabs/acton/pkg/otel"
	"github.com/actonlabs/acton/pkg/prompt"
	"github.com/actonlabs/acton/pkg/resolver"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	var (
		showVersion bool
		configPath  string
		addr        string
		serveMCP    bool
	)
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.StringVar(&configPath, "config", os.Getenv("ACTON_CONFIG"), "path to YAML config file")
	flag.StringVar(&addr, "addr", "", "http listen address (overrides config)")
	flag.BoolVar(&serveMCP, "mcp", false, "export the action catalog over MCP stdio instead of HTTP")
	flag.Parse()

	if showVersion {
		fmt.Printf("acton %s (commit=%s, date=%s)\n", version, commit, date)
		return
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		fatal("load config", err)
	}
	if addr != "" {
		cfg.Addr = addr
	}

	shutdown, err := otelinit.Init(ctx, otelinit.Config{
		ServiceName:    "acton",
		ServiceVersion: version,
		Actor:          cfg.Actor,
		SandboxRoot:    cfg.SandboxRoot,
		UseStdout:      os.Getenv("ACTON_TRACE_STDOUT") == "1",
	})
	if err != nil {
		fatal("otel init", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	a, sink, err := buildAgent(ctx, cfg)
	if err != nil {
		fatal("build agent", err)
	}
	if sink != nil {
		defer func() { _ = sink.Close() }()
	}

	if serveMCP {
		srv := mcpserver.New()
		if err := srv.ExportCatalog(a.Registry(), a.Executor()); err != nil {
			fatal("export catalog", err)
		}
		if err := srv.Run(ctx); err != nil {
			fatal("mcp server", err)
		}
		return
	}

	var hsink history.Sink
	if sink != nil {
		hsink = sink
	}
	handler := otelhttp.NewHandler(buildMux(a, hsink), "acton.http")
	server := &http.Server{Addr: cfg.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shCtx)
	}()

	slog.Info("listening", "addr", cfg.Addr, "actor", cfg.Actor)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		fatal("server", err)
	}
}

func fatal(what string, err error) {
	slog.Error(what, "err", err)
	os.Exit(1)
}

// buildAgent assembles the agent from configuration: sandboxed file actions,
// startup permission grants, the configured model resolver, and the history
// sink when a DSN is set.
func buildAgent(ctx context.Context, cfg config.Config) (*agent.Agent, *history.Store, error) {
	var opts []agent.Option

	if cfg.Resolver.Provider != "" {
		factory, ok := llm.Resolve(cfg.Resolver.Provider)
		if !ok {
			return nil, nil, fmt.Errorf("unknown resolver provider %q (have %v)", cfg.Resolver.Provider, llm.Providers())
		}
		client, err := factory(ctx, map[string]any{
			"api_key": cfg.Resolver.APIKey,
			"model":   cfg.Resolver.Model,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("resolver provider %s: %w", cfg.Resolver.Provider, err)
		}
		var popts []resolver.Option
		if cfg.Resolver.MaxCatalogTokens > 0 {
			popts = append(popts, resolver.WithMaxTokens(cfg.Resolver.MaxCatalogTokens))
			if est, err := resolver.NewTikTokenEstimator(cfg.Resolver.Model); err == nil {
				popts = append(popts, resolver.WithTokenEstimator(est))
			} else {
				slog.Warn("no token encoding for model, using rune estimate", "model", cfg.Resolver.Model)
			}
		}
		if cfg.Resolver.SystemPromptFile != "" {
			body, err := os.ReadFile(cfg.Resolver.SystemPromptFile)
			if err != nil {
				return nil, nil, fmt.Errorf("read system prompt: %w", err)
			}
			store := prompt.NewStore()
			saved, issues, err := store.Save(prompt.Prompt{Name: "resolver", Body: string(body)})
			if err != nil {
				return nil, nil, fmt.Errorf("system prompt rejected: %w (%v)", err, issues)
			}
			diff := prompt.UnifiedDiff("resolver@builtin", fmt.Sprintf("resolver@v%d", saved.Version),
				resolver.DefaultSystemPrompt(), saved.Body)
			slog.Info("using custom resolver prompt",
				"version", saved.Version,
				"diff_lines", strings.Count(diff, "\n"))
			popts = append(popts, resolver.WithSystemPrompt(saved.Body))
		}
		prompts := resolver.NewPromptBuilder(popts...)
		opts = append(opts, agent.WithResolver(resolver.NewModelResolver(client, prompts, nil)))
	}

	var sink *history.Store
	if cfg.HistoryDSN != "" {
		var err error
		sink, err = history.Open(ctx, cfg.HistoryDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open history: %w", err)
		}
		if err := sink.Migrate(ctx); err != nil {
			_ = sink.Close()
			return nil, nil, fmt.Errorf("migrate history: %w", err)
		}
		opts = append(opts, agent.WithHistory(sink))
	}

	a := agent.New(cfg.Actor, opts...)
	for _, act := range file.All(cfg.SandboxRoot) {
		if err := a.RegisterAction(act); err != nil {
			return nil, nil, err
		}
	}
	if cfg.Weather.APIKey != "" {
		api := weather.API{Key: cfg.Weather.APIKey, BaseURL: cfg.Weather.BaseURL}
		for _, act := range weather.All(api) {
			if err := a.RegisterAction(act); err != nil {
				return nil, nil, err
			}
		}
	}
	for _, p := range cfg.Permissions {
		a.Grant(p)
	}
	return a, sink, nil
}

func buildMux(a *agent.Agent, sink history.Sink) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("GET /v1/actions", func(w http.ResponseWriter, r *http.Request) {
		type entry struct {
			Name        string          `json:"name"`
			Description string          `json:"description,omitempty"`
			Type        action.Type     `json:"type,omitempty"`
			Permissions []string        `json:"permissions,omitempty"`
			InputSchema json.RawMessage `json:"input_schema"`
		}
		catalog := a.Catalog()
		out := make([]entry, 0, len(catalog))
		for _, d := range catalog {
			schema, err := d.InputSchema()
			if err != nil {
				errmodel.WriteHTTP(w, r, err)
				return
			}
			perms := make([]string, 0, len(d.Permissions))
			for _, p := range d.Permissions {
				perms = append(perms, p.Name)
			}
			out = append(out, entry{
				Name:        d.Name,
				Description: d.Description,
				Type:        d.Type,
				Permissions: perms,
				InputSchema: schema,
			})
		}
		writeJSON(w, http.StatusOK, map[string]any{"actions": out})
	})

	mux.HandleFunc("POST /v1/turn", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Utterance string `json:"utterance"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Utterance == "" {
			errmodel.WriteHTTP(w, r, errmodel.Validation("bad_request", "utterance is required", nil))
			return
		}
		turn, err := a.HandleTurn(r.Context(), req.Utterance)
		if err != nil {
			errmodel.WriteHTTP(w, r, err)
			return
		}
		// Per-candidate failures live inside the turn; the turn itself
		// succeeded.
		writeJSON(w, http.StatusOK, turn)
	})

	mux.HandleFunc("POST /v1/execute", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Action string         `json:"action"`
			Args   map[string]any `json:"args"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Action == "" {
			errmodel.WriteHTTP(w, r, errmodel.Validation("bad_request", "action is required", nil))
			return
		}
		res := a.ExecuteDirect(r.Context(), req.Action, req.Args)
		if !res.Success {
			errmodel.WriteHTTP(w, r, res.Err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	})

	mux.HandleFunc("GET /v1/history", func(w http.ResponseWriter, r *http.Request) {
		if sink == nil {
			errmodel.WriteHTTP(w, r, errmodel.Validation("bad_request", "history is not configured", nil))
			return
		}
		actor := r.URL.Query().Get("actor")
		if actor == "" {
			errmodel.WriteHTTP(w, r, errmodel.Validation("bad_request", "actor is required", nil))
			return
		}
		limit := 50
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				limit = n
			}
		}
		recs, err := sink.ListByActor(r.Context(), actor, limit)
		if err != nil {
			errmodel.WriteHTTP(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"records": recs})
	})

	return mux
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
