package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder collects pipeline stage metrics in a private registry. It
// satisfies dynamo.Observer.
type Recorder struct {
	reg      *prometheus.Registry
	samples  *prometheus.CounterVec
	duration *prometheus.HistogramVec
	stride   prometheus.Gauge
	run      *prometheus.GaugeVec
}

func NewRecorder() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		samples: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orbspin_stage_samples_total",
				Help: "Samples processed per pipeline stage.",
			},
			[]string{"stage"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "orbspin_stage_duration_seconds",
				Help:    "Pipeline stage duration in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"stage"},
		),
		stride: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "orbspin_stride",
			Help: "Down-sampling stride of the last run.",
		}),
		run: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "orbspin_run_metric",
				Help: "Scalar summary metrics of the last run.",
			},
			[]string{"metric"},
		),
	}
	r.reg.MustRegister(r.samples, r.duration, r.stride, r.run)
	return r
}

func (r *Recorder) OnStage(stage string, samples int, elapsed time.Duration) {
	r.samples.WithLabelValues(stage).Add(float64(samples))
	r.duration.WithLabelValues(stage).Observe(elapsed.Seconds())
}

func (r *Recorder) SetStride(k int) { r.stride.Set(float64(k)) }

// SetRun publishes run metrics as orbspin_run_metric{metric=name}.
func (r *Recorder) SetRun(values map[string]float64) {
	for name, v := range values {
		r.run.WithLabelValues(name).Set(v)
	}
}

func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// WriteTextfile writes the registry for a node-exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}
