// Command coordctl converts coordinates and measures distances and central
// angles between them from the command line. With -serve it exposes the
// interner health endpoints instead.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/golang/geo/s1"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jonwraymond/coordops/coordinate"
	"github.com/jonwraymond/coordops/health"
	"github.com/jonwraymond/coordops/observe"
)

const version = "0.1.0"

var errUsage = errors.New("coordctl: invalid usage")

type options struct {
	op       string
	from     string
	a        string
	b        string
	serve    string
	logLevel string
	metrics  string
	tracing  string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(2)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("coordctl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.op, "op", "convert", "operation: convert|distance|angle|equal")
	fs.StringVar(&o.from, "from", "cartesian", "representation of -a and -b: cartesian|spherical")
	fs.StringVar(&o.a, "a", "", "first coordinate as x,y,z or radius,theta,phi")
	fs.StringVar(&o.b, "b", "", "second coordinate, required by distance, angle and equal")
	fs.StringVar(&o.serve, "serve", "", "serve health endpoints on this address instead of running an operation")
	fs.StringVar(&o.logLevel, "log-level", "", "log level: debug|info|warn|error (empty disables logging)")
	fs.StringVar(&o.metrics, "metrics", "none", "metrics exporter: none|stdout|prometheus|otlp")
	fs.StringVar(&o.tracing, "tracing", "none", "tracing exporter: none|stdout|otlp")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("%w: unexpected arguments %v", errUsage, fs.Args())
	}
	return o, nil
}

func (o options) observeConfig(telemetry io.Writer) observe.Config {
	return observe.Config{
		ServiceName: "coordctl",
		Version:     version,
		Output:      telemetry,
		Tracing: observe.TracingConfig{
			Enabled:   o.tracing != "" && o.tracing != "none",
			Exporter:  o.tracing,
			SamplePct: 1.0,
		},
		Metrics: observe.MetricsConfig{
			Enabled:  o.metrics != "" && o.metrics != "none",
			Exporter: o.metrics,
		},
		Logging: observe.LoggingConfig{
			Enabled: o.logLevel != "",
			Level:   o.logLevel,
		},
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) (err error) {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	obs, err := observe.NewObserver(ctx, opts.observeConfig(stderr))
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err = errors.Join(err, obs.Shutdown(shutdownCtx))
	}()

	cacheMetrics, err := observe.NewCacheMetrics(obs.Meter())
	if err != nil {
		return err
	}
	reg := coordinate.NewRegistry(
		coordinate.WithRecorder(cacheMetrics),
		coordinate.WithLogger(obs.Logger()),
	)

	if opts.serve != "" {
		return serve(ctx, opts, reg, obs.Logger())
	}

	mw, err := observe.MiddlewareFromObserver(obs)
	if err != nil {
		return err
	}
	exec := mw.Wrap(func(ctx context.Context, op observe.OperationMeta) (any, error) {
		return execute(reg, opts)
	})

	out, err := exec(ctx, observe.OperationMeta{Name: opts.op, Representation: opts.from})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, out)
	return err
}

func execute(reg *coordinate.Registry, opts options) (string, error) {
	a, err := parseCoordinate(reg, opts.from, opts.a)
	if err != nil {
		return "", fmt.Errorf("-a: %w", err)
	}

	if opts.op == "convert" {
		switch c := a.(type) {
		case *coordinate.Cartesian:
			return fmt.Sprintf("%v -> %v", c, c.AsSpherical()), nil
		case *coordinate.Spherical:
			return fmt.Sprintf("%v -> %v", c, c.AsCartesian()), nil
		}
	}

	b, err := parseCoordinate(reg, opts.from, opts.b)
	if err != nil {
		return "", fmt.Errorf("-b: %w", err)
	}

	switch opts.op {
	case "distance":
		d, err := a.DistanceTo(b)
		if err != nil {
			return "", err
		}
		return strconv.FormatFloat(d, 'f', 7, 64), nil
	case "angle":
		rad, err := a.CentralAngleTo(b)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%.7f rad (%s deg)", rad, s1.Angle(rad)), nil
	case "equal":
		return strconv.FormatBool(a.Equal(b)), nil
	default:
		return "", fmt.Errorf("%w: unknown operation %q", errUsage, opts.op)
	}
}

// parseCoordinate reads "u,v,w" as a coordinate in the named representation.
func parseCoordinate(reg *coordinate.Registry, from, s string) (coordinate.Coordinate, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: want three comma-separated numbers, got %q", errUsage, s)
	}

	var v [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", errUsage, p)
		}
		v[i] = f
	}

	switch from {
	case "cartesian":
		return reg.Cartesian(v[0], v[1], v[2])
	case "spherical":
		return reg.Spherical(v[0], v[1], v[2])
	default:
		return nil, fmt.Errorf("%w: unknown representation %q", errUsage, from)
	}
}

func newServeMux(opts options, reg *coordinate.Registry) *http.ServeMux {
	agg := health.NewAggregator()
	for _, in := range reg.Interners() {
		agg.Register(health.NewInternChecker(in, health.InternCheckerConfig{}))
	}

	mux := http.NewServeMux()
	health.RegisterHandlers(mux, agg)
	if opts.metrics == "prometheus" {
		mux.Handle("/metrics", promhttp.Handler())
	}
	return mux
}

func serve(ctx context.Context, opts options, reg *coordinate.Registry, logger observe.Logger) error {
	srv := &http.Server{
		Addr:              opts.serve,
		Handler:           newServeMux(opts, reg),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info(ctx, "serving health endpoints", observe.Field{Key: "addr", Value: opts.serve})
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
