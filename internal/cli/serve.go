package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/agegold/driveralert/internal/loop"
	"github.com/agegold/driveralert/internal/stream"
	"github.com/agegold/driveralert/pkg/models"
)

var (
	serveAddr    string
	serveSpeed   float64
	serveWebhook string
	serveLoop    bool
)

var serveCmd = &cobra.Command{
	Use:   "serve <scenario>",
	Short: "Stream a scenario run over websockets",
	Long: `Run a drive scenario on the real-time cycle clock and stream every
frame to connected websocket clients at /ws. The server also exposes
/healthz and the event catalog at /catalog.

With --webhook, alerts at or above high severity are forwarded to the
given URL as JSON. --loop restarts the scenario when it finishes, so
the stream keeps going until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	if Registry == nil || Scenarios == nil || Cfg == nil {
		return fmt.Errorf("services not initialized")
	}

	addr, webhook := serveOptions()

	scenario, err := Scenarios.Load(args[0])
	if err != nil {
		return err
	}

	logger := log.New(cmd.ErrOrStderr(), "serve ", log.LstdFlags)
	hub := stream.NewHub(logger)
	server := stream.NewServer(addr, hub, Registry, logger)

	var notifier stream.Notifier
	if webhook != "" {
		notifier = stream.NewWebhookNotifier(webhook, models.SeverityHigh)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	publish := func(f loop.Frame) error {
		hub.Broadcast(f)
		if notifier != nil && len(f.Alerts) > 0 {
			if err := notifier.Notify(f.Cycle, f.Alerts); err != nil {
				logger.Printf("webhook delivery failed: %v", err)
			}
		}
		return nil
	}

	runErr := make(chan error, 1)
	go func() {
		for {
			runner, err := loop.NewRunner(scenario, Registry)
			if err != nil {
				runErr <- err
				return
			}
			if err := runner.RunRealtime(ctx, serveSpeed, publish); err != nil {
				runErr <- err
				return
			}
			if !serveLoop {
				runErr <- nil
				return
			}
			logger.Printf("scenario %s finished, restarting", scenario.Name)
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("running stream server: %w", err)
	case err := <-runErr:
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("running scenario: %w", err)
		}
		if err == nil {
			// Finished without --loop. Keep serving until interrupted so
			// clients can still hit /catalog and /healthz.
			logger.Printf("scenario %s finished, waiting for interrupt", scenario.Name)
			select {
			case err := <-errCh:
				return fmt.Errorf("running stream server: %w", err)
			case <-ctx.Done():
			}
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down stream server: %w", err)
	}
	return nil
}

// serveOptions resolves the listen address and webhook URL, letting flags
// override the loaded configuration.
func serveOptions() (addr, webhook string) {
	addr = serveAddr
	if addr == "" && Cfg != nil {
		addr = Cfg.Serve.Addr
	}
	webhook = serveWebhook
	if webhook == "" && Cfg != nil {
		webhook = Cfg.Serve.WebhookURL
	}
	return addr, webhook
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (defaults to serve.addr from config)")
	serveCmd.Flags().Float64Var(&serveSpeed, "speed", 1.0, "Cycle clock multiplier")
	serveCmd.Flags().StringVar(&serveWebhook, "webhook", "", "Forward critical alerts to this URL")
	serveCmd.Flags().BoolVar(&serveLoop, "loop", false, "Restart the scenario when it finishes")
	rootCmd.AddCommand(serveCmd)
}
