package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is what the use cases report to.
type Recorder interface {
	BookingCreated(barber string)
	BookingRejected(reason string)
	SMSResult(result string)
	SweepRun(result string)
	CleanupDeleted(n int64)
}

const (
	SMSSent    = "sent"
	SMSFailed  = "failed"
	SMSSkipped = "skipped"

	SweepOK     = "ok"
	SweepFailed = "failed"
)

type Collector struct {
	bookingsCreated  *prometheus.CounterVec
	bookingsRejected *prometheus.CounterVec
	sms              *prometheus.CounterVec
	sweeps           *prometheus.CounterVec
	cleanupDeleted   prometheus.Counter
}

func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		bookingsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "barber_bookings_created_total",
			Help: "Appointments persisted, by barber.",
		}, []string{"barber"}),
		bookingsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "barber_bookings_rejected_total",
			Help: "Booking attempts refused, by reason code.",
		}, []string{"reason"}),
		sms: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "barber_sms_total",
			Help: "SMS notification attempts, by result.",
		}, []string{"result"}),
		sweeps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "barber_daily_sweeps_total",
			Help: "Daily sweep firings, by result.",
		}, []string{"result"}),
		cleanupDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "barber_cleanup_deleted_total",
			Help: "Past appointments removed by the sweep.",
		}),
	}

	reg.MustRegister(
		c.bookingsCreated,
		c.bookingsRejected,
		c.sms,
		c.sweeps,
		c.cleanupDeleted,
	)
	return c
}

func (c *Collector) BookingCreated(barber string) {
	c.bookingsCreated.WithLabelValues(barber).Inc()
}

func (c *Collector) BookingRejected(reason string) {
	c.bookingsRejected.WithLabelValues(reason).Inc()
}

func (c *Collector) SMSResult(result string) {
	c.sms.WithLabelValues(result).Inc()
}

func (c *Collector) SweepRun(result string) {
	c.sweeps.WithLabelValues(result).Inc()
}

func (c *Collector) CleanupDeleted(n int64) {
	if n > 0 {
		c.cleanupDeleted.Add(float64(n))
	}
}

func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

// Nop discards everything.
type Nop struct{}

func (Nop) BookingCreated(string)  {}
func (Nop) BookingRejected(string) {}
func (Nop) SMSResult(string)       {}
func (Nop) SweepRun(string)        {}
func (Nop) CleanupDeleted(int64)   {}

var (
	_ Recorder = (*Collector)(nil)
	_ Recorder = Nop{}
)
