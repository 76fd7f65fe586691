package metrics

import (
	"evogamesim/interfaces"
	"io"
	"time"

	"github.com/rcrowley/go-metrics"
)

// Recorder collects metrics of one experiment. A nil or disabled recorder ignores every update,
// the go-metrics registry is safe for concurrent runs.
type Recorder struct {
	enabled  bool
	registry metrics.Registry
}

func NewRecorder(enabled bool) *Recorder {
	return &Recorder{enabled: enabled, registry: metrics.NewRegistry()}
}

func NameFormat(name interfaces.IMetricName, id string) string {
	return name.String() + "_" + id
}

func (r *Recorder) active() bool {
	return r != nil && r.enabled
}

func (r *Recorder) Timer(name string, value time.Duration) {
	if r.active() {
		metrics.GetOrRegisterTimer(name+"_Timer", r.registry).Update(value)
	}
}

func (r *Recorder) Gauge(name string, value int64) {
	if r.active() {
		metrics.GetOrRegisterGauge(name+"_Gauge", r.registry).Update(value)
	}
}

func (r *Recorder) FloatGauge(name string, value float64) {
	if r.active() {
		metrics.GetOrRegisterGaugeFloat64(name+"_FloatGauge", r.registry).Update(value)
	}
}

func (r *Recorder) Histogram(name string, value int64) {
	if r.active() {
		metrics.GetOrRegisterHistogram(name+"_Histogram", r.registry, metrics.NewUniformSample(1028)).Update(value)
	}
}

func (r *Recorder) Counter(name string, value int64) {
	if !r.active() {
		return
	}
	if value > 0 {
		metrics.GetOrRegisterCounter(name+"_Counter", r.registry).Inc(value)
	} else {
		metrics.GetOrRegisterCounter(name+"_Counter", r.registry).Dec(value * -1)
	}
}

// Count returns the current value of a counter, 0 if it was never updated.
func (r *Recorder) Count(name string) int64 {
	if r == nil {
		return 0
	}
	if c, ok := r.registry.Get(name + "_Counter").(metrics.Counter); ok {
		return c.Count()
	}
	return 0
}

func (r *Recorder) WriteToFile(writer io.Writer) {
	if r == nil {
		return
	}
	metrics.WriteJSONOnce(r.registry, writer)
}
