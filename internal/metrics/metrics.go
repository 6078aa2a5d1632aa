// Package metrics exposes the bot's operational counters. Notification-post
// failures are deliberately surfaced here: the bot swallows them at the
// control-flow level, so the counter is the only place they become visible
// to operators.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	Registry *prometheus.Registry

	Commands      *prometheus.CounterVec
	CommandErrors *prometheus.CounterVec
	PostFailures  prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sparkbot_commands_total",
			Help: "Commands dispatched, by command kind.",
		}, []string{"command"}),
		CommandErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sparkbot_command_errors_total",
			Help: "Handler-level failures, by command kind.",
		}, []string{"command"}),
		PostFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sparkbot_spark_post_failures_total",
			Help: "Messages the bot failed to post into a room.",
		}),
	}
	m.Registry.MustRegister(m.Commands, m.CommandErrors, m.PostFailures)
	return m
}
