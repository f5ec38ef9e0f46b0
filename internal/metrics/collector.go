package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ModelStatus provides the collector access to model lifecycle state.
type ModelStatus interface {
	Name() string
	Ready() bool
}

// Collector implements prometheus.Collector to read live gauges at scrape time.
type Collector struct {
	model     ModelStatus
	startTime time.Time

	modelReady *prometheus.Desc
	uptime     *prometheus.Desc
}

// NewCollector creates a collector that reads live state at scrape time.
// model may be nil (model_ready will report 0).
func NewCollector(model ModelStatus, startTime time.Time) *Collector {
	return &Collector{
		model:     model,
		startTime: startTime,
		modelReady: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "model", "ready"),
			"Whether the NLP model has loaded (1) or not (0).",
			[]string{"model"}, nil,
		),
		uptime: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "uptime_seconds"),
			"Seconds since the process started.",
			nil, nil,
		),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.modelReady
	ch <- c.uptime
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	name, ready := "none", 0.0
	if c.model != nil {
		name = c.model.Name()
		if c.model.Ready() {
			ready = 1
		}
	}
	ch <- prometheus.MustNewConstMetric(c.modelReady, prometheus.GaugeValue, ready, name)
	ch <- prometheus.MustNewConstMetric(c.uptime, prometheus.GaugeValue, time.Since(c.startTime).Seconds())
}
