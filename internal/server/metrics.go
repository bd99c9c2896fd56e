package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	activeClients      = promauto.NewGauge(prometheus.GaugeOpts{Name: "screenlink_active_clients", Help: "Currently registered client connections"})
	connectionsTotal   = promauto.NewCounter(prometheus.CounterOpts{Name: "screenlink_connections_total", Help: "Accepted client connections"})
	authFailuresTotal  = promauto.NewCounter(prometheus.CounterOpts{Name: "screenlink_auth_failures_total", Help: "Connections closed on secret mismatch"})
	pointerEventsTotal = promauto.NewCounter(prometheus.CounterOpts{Name: "screenlink_pointer_events_total", Help: "Pointer events forwarded to an input device"})
	framesSentTotal    = promauto.NewCounter(prometheus.CounterOpts{Name: "screenlink_frames_sent_total", Help: "Captured frames pushed to clients"})
	captureErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{Name: "screenlink_capture_errors_total", Help: "Screen captures that failed and were skipped"})
)
