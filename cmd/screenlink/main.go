// Screenlink - remote screen viewing and pointer input injection
// Serves a host machine's screen over one websocket endpoint and accepts
// normalized pointer/stylus events on a second, independent endpoint.
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"screenlink/internal/config"
	"screenlink/internal/server"
	"screenlink/internal/tray"
	"screenlink/internal/window"
)

var version = "0.1.0"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// flagOverrides holds command-line values that take precedence over the
// config file when explicitly set.
type flagOverrides struct {
	pointerBind string
	videoBind   string
	secret      string
	windowTitle string
	metricsBind string
	intervalMS  int
	trayEnabled bool
}

func newRootCommand() *cobra.Command {
	var f flagOverrides

	cmd := &cobra.Command{
		Use:     "screenlink",
		Short:   "Share this machine's screen and accept remote pointer input",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, &f)
		},
	}

	cmd.Flags().StringVar(&f.pointerBind, "pointer-bind", "", "listen address for the pointer input endpoint")
	cmd.Flags().StringVar(&f.videoBind, "video-bind", "", "listen address for the video endpoint")
	cmd.Flags().StringVar(&f.secret, "secret", "", "shared secret clients must send first (empty disables auth)")
	cmd.Flags().StringVar(&f.windowTitle, "window", "", "scope capture and input to the window with this title")
	cmd.Flags().StringVar(&f.metricsBind, "metrics-bind", "", "listen address for Prometheus metrics (empty disables)")
	cmd.Flags().IntVar(&f.intervalMS, "interval", 0, "frame capture interval in milliseconds")
	cmd.Flags().BoolVar(&f.trayEnabled, "tray", false, "show a system tray icon")

	return cmd
}

// loadConfig merges the config file with explicit command-line overrides
func loadConfig(cmd *cobra.Command, f *flagOverrides) (*config.Config, error) {
	cfgMgr, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}
	if err := cfgMgr.Load(); err != nil {
		log.Printf("Warning: failed to load config: %v", err)
	}
	cfg := cfgMgr.Get()

	if cmd.Flags().Changed("pointer-bind") {
		cfg.PointerBind = f.pointerBind
	}
	if cmd.Flags().Changed("video-bind") {
		cfg.VideoBind = f.videoBind
	}
	if cmd.Flags().Changed("secret") {
		cfg.Secret = f.secret
	}
	if cmd.Flags().Changed("window") {
		cfg.CaptureWindowTitle = f.windowTitle
	}
	if cmd.Flags().Changed("metrics-bind") {
		cfg.MetricsBind = f.metricsBind
	}
	if cmd.Flags().Changed("interval") {
		cfg.CaptureIntervalMS = f.intervalMS
	}
	if cmd.Flags().Changed("tray") {
		cfg.TrayEnabled = f.trayEnabled
	}
	return cfg, nil
}

func runServe(cmd *cobra.Command, f *flagOverrides) error {
	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return err
	}

	var target *window.Target
	if cfg.CaptureWindowTitle != "" {
		target = window.NewTarget(cfg.CaptureWindowTitle)
		log.Printf("Main: Scoping capture and input to window %q", cfg.CaptureWindowTitle)
	}

	videoFactory := server.NewScreenHandlerFactory(cfg.CaptureInterval())
	if target != nil {
		videoFactory = server.NewWindowScreenHandlerFactory(target, cfg.CaptureInterval())
	}

	notices := make(chan server.Notice, 64)
	commands := make(chan server.Command)

	go printNotices(notices)

	if cfg.MetricsBind != "" {
		go serveMetrics(cfg.MetricsBind)
	}

	svc := server.Run(server.Config{
		PointerAddr:    cfg.PointerBind,
		VideoAddr:      cfg.VideoBind,
		Secret:         cfg.Secret,
		PointerFactory: server.NewMouseHandlerFactory(target),
		VideoFactory:   videoFactory,
	}, notices, commands)

	log.Printf("Main: Pointer endpoint on %s, video endpoint on %s (interval %s)",
		cfg.PointerBind, cfg.VideoBind, cfg.CaptureInterval())

	// Both the signal handler and the tray's Quit item may race to request
	// shutdown; the command is sent exactly once.
	var once sync.Once
	requestShutdown := func() {
		once.Do(func() { commands <- server.CommandShutdown })
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		log.Println("Main: Received signal, shutting down")
		requestShutdown()
	}()

	if cfg.TrayEnabled {
		// systray needs the main thread; stop the tray loop once the
		// engine has wound down.
		t := tray.New("Screenlink remote screen server", requestShutdown)
		go func() {
			svc.Wait()
			t.Stop()
		}()
		t.Run()
	}

	svc.Wait()

	// Give in-flight notices a moment to drain before exiting.
	time.Sleep(50 * time.Millisecond)
	log.Println("Main: Shutdown complete")
	return nil
}

// printNotices is the host-side consumer of the engine's outbound control
// channel.
func printNotices(notices <-chan server.Notice) {
	for n := range notices {
		switch n.Level {
		case server.NoticeError:
			log.Printf("Notice: ERROR %s", n.Text)
		case server.NoticeWarning:
			log.Printf("Notice: WARN %s", n.Text)
		default:
			log.Printf("Notice: %s", n.Text)
		}
	}
}

// serveMetrics exposes Prometheus metrics for the engine
func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	log.Printf("Main: Serving metrics on http://%s/metrics", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Printf("Main: Metrics server stopped: %v", err)
	}
}
