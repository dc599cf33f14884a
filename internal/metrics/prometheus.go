// Package metrics provides Prometheus exporters for application metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for the match tracker.
var (
	// Counters.
	MatchesRecordedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matches_recorded_total",
			Help: "Total number of matches recorded",
		},
		[]string{"decided_by"}, // regulation, extra_time, penalties
	)

	MatchesDeletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "matches_deleted_total",
			Help: "Total number of matches deleted",
		},
	)

	AchievementsUnlockedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "achievements_unlocked_total",
			Help: "Total number of achievement unlocks persisted",
		},
		[]string{"type", "category", "rarity"},
	)

	CommentsPostedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "comments_posted_total",
			Help: "Total number of match comments posted",
		},
	)

	// Gauges.
	CurrentStreak = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "player_current_streak",
			Help: "Current streak length per player (positive wins, negative losses)",
		},
		[]string{"player"},
	)

	// Histograms.
	MatchTotalGoals = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "match_total_goals",
			Help:    "Combined goals per recorded match",
			Buckets: prometheus.LinearBuckets(0, 2, 10), // 0 to 18 goals
		},
	)
)

// RecordMatch updates the write-path counters for a newly stored match.
func RecordMatch(decidedBy string, totalGoals int) {
	MatchesRecordedTotal.WithLabelValues(decidedBy).Inc()
	MatchTotalGoals.Observe(float64(totalGoals))
}

// RecordUnlock counts a persisted achievement unlock.
func RecordUnlock(typeID, category, rarity string) {
	AchievementsUnlockedTotal.WithLabelValues(typeID, category, rarity).Inc()
}

// SetCurrentStreak publishes a player's streak after a write. Loss streaks
// are negative, draws zero.
func SetCurrentStreak(player string, streak int) {
	CurrentStreak.WithLabelValues(player).Set(float64(streak))
}
