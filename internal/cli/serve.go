package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/lifeguardcard/triagecore/internal/inference"
	"github.com/lifeguardcard/triagecore/internal/model"
	"github.com/lifeguardcard/triagecore/internal/pipeline"
	"github.com/lifeguardcard/triagecore/internal/quicktriage"
	"github.com/lifeguardcard/triagecore/internal/server"
)

var (
	serveAddr     string
	serveRate     float64
	serveBurst    int
	sessionTTL    time.Duration
	serveProvider string
	serveInfModel string
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the triage HTTP API",
	Long: `Serve exposes the assessment pipeline and the quick-triage
questionnaire over HTTP:

  POST /api/multimodal/analyze        run one assessment
  GET  /api/multimodal/capabilities   supported modalities and formats
  POST /api/quick-triage/start        start a questionnaire session
  POST /api/quick-triage/{id}/answer  answer the current question
  POST /api/quick-triage/{id}/reset   restart a session
  GET  /health                        liveness check

Example:
  triagecore serve
  triagecore serve --addr :9090 --rate 20 --burst 40
  triagecore serve --provider openai --model gpt-4o-mini`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	serveCmd.Flags().Float64Var(&serveRate, "rate", 10, "per-client requests per second")
	serveCmd.Flags().IntVar(&serveBurst, "burst", 20, "per-client burst size")
	serveCmd.Flags().DurationVar(&sessionTTL, "session-ttl", 30*time.Minute, "quick-triage session lifetime")
	serveCmd.Flags().StringVar(&serveProvider, "provider", "", "inference provider (static, openai)")
	serveCmd.Flags().StringVar(&serveInfModel, "model", "", "inference model name")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Local .env is optional; environment wins when both are set.
	if err := godotenv.Load(); err == nil && verbose {
		fmt.Fprintln(os.Stderr, "Loaded .env")
	}

	cfg := model.DefaultConfig()
	cfg.Server.Addr = serveAddr
	cfg.Server.RequestsPerSecond = serveRate
	cfg.Server.Burst = serveBurst
	cfg.Session.TTL = sessionTTL
	cfg.Output.Verbose = verbose

	if serveProvider != "" {
		cfg.Inference.Provider = serveProvider
		cfg.Inference.Model = serveInfModel
		if serveProvider == "openai" {
			cfg.Inference.APIKey = os.Getenv("OPENAI_API_KEY")
			if cfg.Inference.APIKey == "" {
				return fmt.Errorf("OPENAI_API_KEY environment variable not set")
			}
		}
	}

	provider, err := inference.NewProvider(cfg.Inference)
	if err != nil {
		return err
	}

	p := pipeline.New(cfg, provider)
	engine := quicktriage.NewEngine()
	store := quicktriage.NewStore(engine, cfg.Session)
	srv := server.New(p, engine, store, cfg.Server)

	httpServer := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		fmt.Fprintf(os.Stderr, "Listening on %s (provider: %s)\n", cfg.Server.Addr, provider.Name())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		}
	}()

	<-done
	fmt.Fprintln(os.Stderr, "Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpServer.Shutdown(ctx)
}
