package scheduler

import (
	"context"

	"github.com/assettrack/backend/internal/infrastructure/telemetry"
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusSink exposes snapshots as scrape gauges
type PrometheusSink struct {
	assets        *prometheus.GaugeVec
	active        prometheus.Gauge
	overdue       prometheus.Gauge
	pending       prometheus.Gauge
	employees     prometheus.Gauge
	lastCollected prometheus.Gauge
}

// NewPrometheusSink registers the lifecycle gauges on reg
func NewPrometheusSink(reg prometheus.Registerer) (*PrometheusSink, error) {
	gauge := func(name, help string) prometheus.Gauge {
		return prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "asset_tracker",
			Subsystem: "lifecycle",
			Name:      name,
			Help:      help,
		})
	}
	s := &PrometheusSink{
		assets: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "asset_tracker",
			Subsystem: "lifecycle",
			Name:      "assets",
			Help:      "Assets per lifecycle status.",
		}, []string{"status"}),
		active:        gauge("active_assignments", "Assignments currently open."),
		overdue:       gauge("overdue_assignments", "Open assignments past their due date."),
		pending:       gauge("pending_accessories", "Accessories issued but not yet handed back."),
		employees:     gauge("active_employees", "Employees with ACTIVE status."),
		lastCollected: gauge("last_collected_timestamp_seconds", "Unix time of the last successful collection."),
	}
	for _, c := range []prometheus.Collector{s.assets, s.active, s.overdue, s.pending, s.employees, s.lastCollected} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Observe sets every gauge from snap
func (s *PrometheusSink) Observe(_ context.Context, snap *LifecycleSnapshot) {
	for status, n := range snap.AssetsByStatus {
		s.assets.WithLabelValues(string(status)).Set(float64(n))
	}
	s.active.Set(float64(snap.ActiveAssignments))
	s.overdue.Set(float64(snap.OverdueAssignments))
	s.pending.Set(float64(snap.PendingAccessories))
	s.employees.Set(float64(snap.ActiveEmployees))
	s.lastCollected.Set(float64(snap.CollectedAt.Unix()))
}

// OTelSink pushes snapshots through the OTLP ledger gauges
type OTelSink struct {
	metrics *telemetry.LedgerMetrics
}

// NewOTelSink creates a new OTelSink
func NewOTelSink(metrics *telemetry.LedgerMetrics) *OTelSink {
	return &OTelSink{metrics: metrics}
}

// Observe records snap on the OTLP gauges
func (s *OTelSink) Observe(ctx context.Context, snap *LifecycleSnapshot) {
	byStatus := make(map[string]int64, len(snap.AssetsByStatus))
	for status, n := range snap.AssetsByStatus {
		byStatus[string(status)] = n
	}
	s.metrics.RecordLifecycle(ctx, telemetry.LifecycleGauges{
		AssetsByStatus:     byStatus,
		ActiveAssignments:  snap.ActiveAssignments,
		OverdueAssignments: snap.OverdueAssignments,
		PendingAccessories: snap.PendingAccessories,
		ActiveEmployees:    snap.ActiveEmployees,
	})
}

var (
	_ SnapshotSink = (*PrometheusSink)(nil)
	_ SnapshotSink = (*OTelSink)(nil)
)
