package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/softsage/chatembed/internal/config"
	"github.com/softsage/chatembed/internal/db"
	"github.com/softsage/chatembed/internal/markdown"
	"github.com/softsage/chatembed/internal/server"
	"github.com/softsage/chatembed/internal/store"
	"github.com/softsage/chatembed/internal/theme"
	"gopkg.in/yaml.v3"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the widget backend server",
	Long:  `Starts the chatembed server with the render API, conversation storage, theme delivery and the WebSocket chat relay.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if servePort != 0 {
			cfg.Port = servePort
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		// Open conversation storage.
		var kv store.KV
		switch cfg.StorageBackend {
		case config.StorageMemory:
			kv = store.NewMemoryKV()
		default:
			database, err := db.Open(cfg.StoragePath)
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}
			defer database.Close()
			kv = database
		}

		th := theme.Default()
		if cfg.ThemeFile != "" {
			data, err := os.ReadFile(cfg.ThemeFile)
			if err != nil {
				return fmt.Errorf("reading theme file: %w", err)
			}
			if err := yaml.Unmarshal(data, &th); err != nil {
				return fmt.Errorf("parsing theme file: %w", err)
			}
		}

		safe := markdown.NewRenderer(markdown.Options{
			Sanitize:  cfg.Renderer.Sanitize,
			Highlight: cfg.Renderer.Highlight,
			Breaks:    cfg.Renderer.Breaks,
		})
		unsafe := markdown.NewRenderer(markdown.Options{
			Sanitize:  false,
			Highlight: cfg.Renderer.Highlight,
			Breaks:    cfg.Renderer.Breaks,
		})

		srv := server.New(server.Config{
			Port:           cfg.Port,
			ChatflowID:     cfg.ChatflowID,
			APIHost:        cfg.APIHost,
			AllowAll:       cfg.CORS.AllowAll,
			AllowedOrigins: cfg.CORS.AllowedOrigins,
		}, store.New(kv), safe, unsafe, th)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		fmt.Fprintf(os.Stderr, "chatembed v%s starting on port %d\n", Version, cfg.Port)
		if cfg.APIHost == "" {
			fmt.Fprintln(os.Stderr, "  No upstream api_host configured; chat relay runs in echo mode")
		}

		return srv.Start()
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
