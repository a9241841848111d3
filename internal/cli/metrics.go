package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/raseguard/raseguard/pkg/metrics"
)

var metricsServerAddr string
var metricsServerPath string

var metricsServerCmd = &cobra.Command{
	Use:   "metrics-server [flags]",
	Short: "Serve Prometheus metrics over HTTP until interrupted",
	Long: `metrics-server enables metric recording, starts the periodic resource
collector (goroutines, memory, GC pauses), and exposes this process's
Prometheus registry via promhttp on the given address. Metrics live in
process memory only: counters recorded by other raseguard invocations
(protect, recover, split, reconstruct) are not visible here. It runs until
interrupted.`,
	Run: func(cmd *cobra.Command, args []string) {
		metrics.Enable()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		collector := metrics.StartResourceCollector(ctx, 30*time.Second)
		defer collector.Stop()

		mux := http.NewServeMux()
		mux.Handle(metricsServerPath, promhttp.Handler())
		server := &http.Server{
			Addr:              metricsServerAddr,
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			errCh <- server.ListenAndServe()
		}()
		printVerbose("metrics server listening on %s%s", metricsServerAddr, metricsServerPath)

		select {
		case err := <-errCh:
			if err != nil && err != http.ErrServerClosed {
				handleError(fmt.Errorf("metrics server: %w", err))
			}
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(shutdownCtx)
		}
	},
}

func init() {
	metricsServerCmd.Flags().StringVar(&metricsServerAddr, "addr", ":9090", "address to serve metrics on")
	metricsServerCmd.Flags().StringVar(&metricsServerPath, "path", "/metrics", "HTTP path to serve metrics on")
}
