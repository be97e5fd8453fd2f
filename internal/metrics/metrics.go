// Package metrics сбор и публикация метрик Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Исходы бронирования
const (
	OutcomeBooked        = "booked"
	OutcomeAlreadyBooked = "already_booked"
	OutcomeSlotNotFound  = "slot_not_found"
	OutcomeInvalid       = "invalid"
	OutcomeError         = "error"
)

// Collector метрики сервиса бронирования
type Collector struct {
	bookings       *prometheus.CounterVec
	claimLatency   prometheus.Histogram
	slotsGenerated prometheus.Counter
	generationRuns *prometheus.CounterVec
}

// NewCollector создаёт Collector и регистрирует метрики в reg
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		bookings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "slot_booking_bookings_total",
			Help: "Попытки бронирования по исходу",
		}, []string{"outcome"}),
		claimLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "slot_booking_claim_duration_seconds",
			Help:    "Длительность атомарного захвата слота",
			Buckets: prometheus.DefBuckets,
		}),
		slotsGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "slot_booking_slots_generated_total",
			Help: "Количество созданных слотов",
		}),
		generationRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "slot_booking_generation_runs_total",
			Help: "Запуски генерации календаря по результату",
		}, []string{"result"}),
	}

	reg.MustRegister(
		c.bookings,
		c.claimLatency,
		c.slotsGenerated,
		c.generationRuns,
	)

	return c
}

// RecordBooking записывает исход попытки бронирования
func (c *Collector) RecordBooking(outcome string) {
	c.bookings.WithLabelValues(outcome).Inc()
}

// RecordClaimLatency записывает длительность захвата
func (c *Collector) RecordClaimLatency(d time.Duration) {
	c.claimLatency.Observe(d.Seconds())
}

// RecordGeneration записывает запуск генерации и число созданных слотов
func (c *Collector) RecordGeneration(created int, err error) {
	if err != nil {
		c.generationRuns.WithLabelValues("error").Inc()
		return
	}
	c.generationRuns.WithLabelValues("ok").Inc()
	c.slotsGenerated.Add(float64(created))
}

// Handler HTTP-обработчик для скрейпа Prometheus
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Nop пустая реализация для тестов и запуска без метрик
type Nop struct{}

func (Nop) RecordBooking(string)             {}
func (Nop) RecordClaimLatency(time.Duration) {}
func (Nop) RecordGeneration(int, error)      {}
