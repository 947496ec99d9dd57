// Package metrics holds the prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SectionFallbacks counts page renders that used hardcoded content for a section.
	SectionFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "site",
		Name:      "page_section_fallbacks_total",
		Help:      "Public page sections rendered from fallback content after a read failure.",
	}, []string{"section"})

	// ContentUpdates counts admin mutations by family and outcome.
	ContentUpdates = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "site",
		Name:      "admin_content_updates_total",
		Help:      "Admin content mutations by family and result.",
	}, []string{"family", "result"})

	// ContactMessages counts contact submissions by outcome.
	ContactMessages = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "site",
		Name:      "contact_messages_total",
		Help:      "Contact form submissions by result.",
	}, []string{"result"})

	// NotificationFailures counts failed contact notifications per channel.
	NotificationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "site",
		Name:      "contact_notification_failures_total",
		Help:      "Contact notifications that could not be delivered.",
	}, []string{"channel"})
)
