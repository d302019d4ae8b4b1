package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Xausdorf/debit-core/internal/domain/entity"
)

const (
	outcomeAllowed  = "allowed"
	outcomeRejected = "rejected"
	outcomeError    = "error"
)

// Payments counts payment attempts by scheme and outcome.
type Payments struct {
	total *prometheus.CounterVec
}

func NewPayments() *Payments {
	return &Payments{
		total: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "payments_total",
			Help: "Debit payment attempts by scheme and outcome.",
		}, []string{"scheme", "outcome"}),
	}
}

func (p *Payments) Observe(scheme entity.PaymentScheme, res entity.PaymentResult, err error) {
	outcome := outcomeRejected
	switch {
	case err != nil:
		outcome = outcomeError
	case res.Success:
		outcome = outcomeAllowed
	}
	p.total.WithLabelValues(scheme.String(), outcome).Inc()
}

func (p *Payments) Describe(ch chan<- *prometheus.Desc) {
	p.total.Describe(ch)
}

func (p *Payments) Collect(ch chan<- prometheus.Metric) {
	p.total.Collect(ch)
}
