package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ClockInsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hrms_clock_ins_total",
		Help: "Number of successful attendance clock-ins.",
	})

	ClockOutsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hrms_clock_outs_total",
		Help: "Number of successful attendance clock-outs.",
	})

	LeaveDecisionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hrms_leave_decisions_total",
		Help: "Leave requests actioned, by resulting status.",
	}, []string{"status"})

	PayrollGeneratedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hrms_payroll_generated_total",
		Help: "Payroll records generated.",
	})
)
