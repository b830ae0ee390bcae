package middleware

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// UploadOutcomes counts upload pipeline results by outcome
// (success, staging_failed, upload_failed, store_unavailable).
var UploadOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "simplesocial_upload_outcomes_total",
	Help: "Total number of media upload attempts by outcome",
}, []string{"outcome"})

// FeedRequests counts feed reads by result (ok, error).
var FeedRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "simplesocial_feed_requests_total",
	Help: "Total number of feed requests by result",
}, []string{"result"})
