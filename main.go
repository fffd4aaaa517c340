package main

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/percona-lab/forward-list/errors"
	"github.com/percona-lab/forward-list/log"
	"github.com/percona-lab/forward-list/metrics"
	"github.com/percona-lab/forward-list/stress"
)

// Constants for the metrics listener configuration.
const (
	ServerReadTimeout       = 30 * time.Second
	ServerReadHeaderTimeout = 3 * time.Second
)

// levelFlag parses a zerolog level from the command line.
type levelFlag struct {
	level zerolog.Level
}

var _ pflag.Value = (*levelFlag)(nil)

func (f *levelFlag) String() string { return f.level.String() }
func (f *levelFlag) Type() string   { return "level" }

func (f *levelFlag) Set(s string) error {
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return errors.Wrap(err, "parse log level")
	}

	f.level = level

	return nil
}

func main() {
	logLevel := levelFlag{level: zerolog.InfoLevel}

	var (
		logJSON    bool
		logNoColor bool

		cfg  stress.Config
		port string
	)

	rootCmd := &cobra.Command{
		Use:   "flist-stress",
		Short: "Randomized model checker for the forward-list container",
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			lg := log.New(logLevel.level, logJSON, logNoColor)
			log.SetFallbackLogger(lg)
			cmd.SetContext(lg.WithContext(cmd.Context()))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStress(cmd.Context(), cfg, port)
		},
	}

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	rootCmd.PersistentFlags().Var(&logLevel, "log-level", "Log level")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Output log in JSON format")
	rootCmd.PersistentFlags().BoolVar(&logNoColor, "no-color", false, "Disable log color")

	rootCmd.Flags().IntVar(&cfg.Workers, "workers", 0, "Number of workers (0 means NumCPU)")
	rootCmd.Flags().Int64Var(&cfg.OpsPerWorker, "ops", 1_000_000, "Operations per worker")
	rootCmd.Flags().Int64Var(&cfg.Seed, "seed", time.Now().Unix(), "Base RNG seed")
	rootCmd.Flags().Int64Var(&cfg.CheckEvery, "check-every", 64, "Operations between full cross-checks")
	rootCmd.Flags().IntVar(&cfg.MaxLen, "max-len", 4096, "Maximum list length per worker")
	rootCmd.Flags().StringVar(&port, "metrics-port", "", "Serve prometheus metrics on this port (disabled when empty)")

	err := rootCmd.Execute()
	if err != nil {
		zerolog.Ctx(context.Background()).Fatal().Err(err).Msg("")
	}
}

// runStress runs the harness, serving metrics alongside when a port
// is configured.
func runStress(ctx context.Context, cfg stress.Config, port string) error {
	if port != "" {
		srv, err := startMetricsServer(ctx, port)
		if err != nil {
			return err
		}
		defer srv.Close() //nolint:errcheck
	}

	_, err := stress.Run(ctx, cfg)

	return err
}

func startMetricsServer(ctx context.Context, port string) (*http.Server, error) {
	addr, err := buildMetricsAddr(port)
	if err != nil {
		return nil, errors.Wrap(err, "build metrics address")
	}

	reg := prometheus.NewRegistry()
	metrics.Init(reg)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,

		ReadTimeout:       ServerReadTimeout,
		ReadHeaderTimeout: ServerReadHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "Serving metrics at http://"+addr+"/metrics")

		err := httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(ctx, err, "Metrics listener")
		}
	}()

	return httpServer, nil
}

var errUnsupportedPortRange = errors.New("port value is outside the supported range [1024 - 65535]")

// buildMetricsAddr constructs the listener address from the port.
func buildMetricsAddr(port string) (string, error) {
	p, err := strconv.Atoi(port)
	if err != nil {
		return "", errors.Wrap(err, "parse port")
	}

	if p < 1024 || p > 65535 {
		return "", errUnsupportedPortRange
	}

	return "localhost:" + port, nil
}
