package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/metric"
)

// MeterName names the meter used for business instruments
const MeterName = "asset-tracker/ledger"

// LifecycleGauges is one sample of the lifecycle gauges
type LifecycleGauges struct {
	AssetsByStatus     map[string]int64
	ActiveAssignments  int64
	OverdueAssignments int64
	PendingAccessories int64
	ActiveEmployees    int64
}

// LedgerMetrics holds the OTLP instruments for assignment ledger activity
type LedgerMetrics struct {
	assignmentsCreated    *Counter
	assignmentsReturned   *Counter
	accessoriesReconciled *Counter
	assetsByStatus        *Gauge
	activeAssignments     *Gauge
	overdueAssignments    *Gauge
	pendingAccessories    *Gauge
	activeEmployees       *Gauge
}

// NewLedgerMetrics registers the ledger instruments on meter
func NewLedgerMetrics(meter metric.Meter) (*LedgerMetrics, error) {
	m := &LedgerMetrics{}
	counters := []struct {
		dst        **Counter
		name, help string
	}{
		{&m.assignmentsCreated, "assignments.created", "Assignments handed out"},
		{&m.assignmentsReturned, "assignments.returned", "Assignments closed, by return condition"},
		{&m.accessoriesReconciled, "assignments.accessories_reconciled", "Accessories confirmed back after return"},
	}
	for _, c := range counters {
		counter, err := NewCounter(meter, c.name, c.help, "{event}")
		if err != nil {
			return nil, err
		}
		*c.dst = counter
	}

	gauges := []struct {
		dst        **Gauge
		name, help string
	}{
		{&m.assetsByStatus, "assets.by_status", "Assets per lifecycle status"},
		{&m.activeAssignments, "assignments.active", "Assignments currently open"},
		{&m.overdueAssignments, "assignments.overdue", "Open assignments past their due date"},
		{&m.pendingAccessories, "assignments.pending_accessories", "Returned assignments still missing accessories"},
		{&m.activeEmployees, "employees.active", "Employees with ACTIVE status"},
	}
	for _, g := range gauges {
		gauge, err := NewGauge(meter, g.name, g.help, "1")
		if err != nil {
			return nil, err
		}
		*g.dst = gauge
	}
	return m, nil
}

// AssignmentCreated counts one hand-out
func (m *LedgerMetrics) AssignmentCreated(ctx context.Context) {
	m.assignmentsCreated.Inc(ctx)
}

// AssignmentReturned counts one return; condition may be empty
func (m *LedgerMetrics) AssignmentReturned(ctx context.Context, condition string) {
	if condition == "" {
		condition = "unspecified"
	}
	m.assignmentsReturned.Inc(ctx, AttrCondition.String(condition))
}

// AccessoriesReconciled counts each accessory confirmed back
func (m *LedgerMetrics) AccessoriesReconciled(ctx context.Context, accessories []string) {
	for _, a := range accessories {
		m.accessoriesReconciled.Inc(ctx, AttrAccessory.String(a))
	}
}

// RecordLifecycle publishes a gauge sample
func (m *LedgerMetrics) RecordLifecycle(ctx context.Context, g LifecycleGauges) {
	for status, n := range g.AssetsByStatus {
		m.assetsByStatus.Record(ctx, n, AttrAssetStatus.String(status))
	}
	m.activeAssignments.Record(ctx, g.ActiveAssignments)
	m.overdueAssignments.Record(ctx, g.OverdueAssignments)
	m.pendingAccessories.Record(ctx, g.PendingAccessories)
	m.activeEmployees.Record(ctx, g.ActiveEmployees)
}
