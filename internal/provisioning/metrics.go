package provisioning

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mkrspc/iotporg/internal/platform/cli"
)

// Result label values.
const (
	ResultSuccess = "success"
	ResultError   = "error"
	ResultSkipped = "skipped"
)

// Metrics records a single run. Every method is safe on a nil receiver so
// stages never have to check whether metrics are enabled.
type Metrics struct {
	registry *prometheus.Registry

	stageTotal    *prometheus.CounterVec
	stageDuration *prometheus.HistogramVec
	commandTotal  *prometheus.CounterVec
	commandTime   *prometheus.HistogramVec
	devices       prometheus.Counter
}

// NewMetrics creates metrics on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		stageTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "iotporg",
				Subsystem: "provision",
				Name:      "stage_total",
				Help:      "Provisioning stages run, by stage and result",
			},
			[]string{"stage", "result"},
		),
		stageDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "iotporg",
				Subsystem: "provision",
				Name:      "stage_duration_seconds",
				Help:      "Duration of provisioning stages in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.1, 2, 12), // 100ms to ~3.4min
			},
			[]string{"stage"},
		),
		commandTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "iotporg",
				Subsystem: "cli",
				Name:      "commands_total",
				Help:      "External CLI invocations, by tool and result",
			},
			[]string{"tool", "result"},
		),
		commandTime: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "iotporg",
				Subsystem: "cli",
				Name:      "command_duration_seconds",
				Help:      "Duration of external CLI invocations in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.5, 2, 10), // 500ms to ~4min
			},
			[]string{"tool"},
		),
		devices: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "iotporg",
			Subsystem: "provision",
			Name:      "devices_total",
			Help:      "Device identities created",
		}),
	}

	m.registry.MustRegister(m.stageTotal, m.stageDuration, m.commandTotal, m.commandTime, m.devices)
	return m
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveStage records a finished stage.
func (m *Metrics) ObserveStage(stage string, d time.Duration, err error) {
	if m == nil {
		return
	}
	m.stageTotal.WithLabelValues(stage, resultOf(err)).Inc()
	m.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

// SkipStage records a stage whose flag was off.
func (m *Metrics) SkipStage(stage string) {
	if m == nil {
		return
	}
	m.stageTotal.WithLabelValues(stage, ResultSkipped).Inc()
}

// DeviceCreated counts one device identity.
func (m *Metrics) DeviceCreated() {
	if m == nil {
		return
	}
	m.devices.Inc()
}

// ObserveCommand records an external CLI invocation.
func (m *Metrics) ObserveCommand(tool string, d time.Duration, err error) {
	if m == nil {
		return
	}
	m.commandTotal.WithLabelValues(tool, resultOf(err)).Inc()
	m.commandTime.WithLabelValues(tool).Observe(d.Seconds())
}

// WriteTextfile writes the metrics in Prometheus text format, suitable for
// the node_exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil {
		return errors.New("metrics are not enabled")
	}
	return prometheus.WriteToTextfile(path, m.registry)
}

// InstrumentRunner wraps r so every invocation is recorded in m.
func InstrumentRunner(r cli.Runner, m *Metrics) cli.Runner {
	return &instrumentedRunner{next: r, metrics: m}
}

type instrumentedRunner struct {
	next    cli.Runner
	metrics *Metrics
}

func (r *instrumentedRunner) Run(ctx context.Context, cmd cli.Command) ([]byte, error) {
	start := time.Now()
	out, err := r.next.Run(ctx, cmd)
	r.metrics.ObserveCommand(cmd.Name, time.Since(start), err)
	return out, err
}

func resultOf(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultSuccess
}
