package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordMatch(t *testing.T) {
	MatchesRecordedTotal.Reset()

	RecordMatch("regulation", 3)
	RecordMatch("regulation", 1)
	RecordMatch("penalties", 2)

	count := testutil.ToFloat64(MatchesRecordedTotal.WithLabelValues("regulation"))
	if count != 2 {
		t.Errorf("Expected regulation count = 2, got %f", count)
	}

	count = testutil.ToFloat64(MatchesRecordedTotal.WithLabelValues("penalties"))
	if count != 1 {
		t.Errorf("Expected penalties count = 1, got %f", count)
	}
}

func TestRecordUnlock(t *testing.T) {
	AchievementsUnlockedTotal.Reset()

	RecordUnlock("HAT_TRICK", "goals", "common")
	RecordUnlock("HAT_TRICK", "goals", "common")
	RecordUnlock("THE_WALL", "defense", "common")

	count := testutil.ToFloat64(AchievementsUnlockedTotal.WithLabelValues("HAT_TRICK", "goals", "common"))
	if count != 2 {
		t.Errorf("Expected HAT_TRICK count = 2, got %f", count)
	}
}

func TestSetCurrentStreak(t *testing.T) {
	CurrentStreak.Reset()

	SetCurrentStreak("Pavlo", 4)
	SetCurrentStreak("Summet", -2)

	val := testutil.ToFloat64(CurrentStreak.WithLabelValues("Pavlo"))
	if val != 4 {
		t.Errorf("Expected Pavlo streak = 4, got %f", val)
	}

	val = testutil.ToFloat64(CurrentStreak.WithLabelValues("Summet"))
	if val != -2 {
		t.Errorf("Expected Summet streak = -2, got %f", val)
	}
}
