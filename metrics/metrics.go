// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "quickly_vote"

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by route and status code",
		},
		[]string{"method", "route", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Histogram of HTTP request latencies",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	PollsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "polls",
		Name:      "created_total",
		Help:      "Total number of polls created",
	})

	PollsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "polls",
		Name:      "deleted_total",
		Help:      "Total number of polls deleted",
	})

	VotesCast = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "votes",
		Name:      "cast_total",
		Help:      "Total number of votes recorded",
	})

	// reason is the error kind of the rejected cast
	VotesRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "votes",
			Name:      "rejected_total",
			Help:      "Total number of vote attempts rejected, by reason",
		},
		[]string{"reason"},
	)
)
