// Package metrics defines and registers the custom Prometheus metrics for
// the news API. It is the single source of truth for metric names, labels,
// and help strings; registration happens implicitly via promauto at import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "newsapi"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts completed registrations.
// Label:
//   - role: the role assigned to the new account ("admin" or "user")
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of completed registrations, by assigned role.",
	},
	[]string{"role"},
)

// TokenRejectionsTotal counts bearer tokens rejected by the guard.
// Label:
//   - reason: "invalid", "expired", "unknown_subject", or "inactive_user"
var TokenRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_rejections_total",
		Help:      "Total number of bearer tokens rejected, by reason.",
	},
	[]string{"reason"},
)

// ── News metrics ──────────────────────────────────────────────────────────────

// ArticlesPublishedTotal counts created articles.
var ArticlesPublishedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "articles_published_total",
		Help:      "Total number of news articles created.",
	},
)

// ImageUploadDuration measures the time spent pushing an image to the blob
// store as part of a create or update request.
var ImageUploadDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "image_upload_duration_seconds",
		Help:      "Duration of image uploads to the blob store.",
		Buckets:   prometheus.DefBuckets,
	},
)
