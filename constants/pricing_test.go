package constants

import (
	"testing"
	"time"
)

func TestSeasonForMonthCoversAllMonths(t *testing.T) {
	expected := map[time.Month]Season{
		time.January:   SeasonMid,
		time.February:  SeasonMid,
		time.March:     SeasonMid,
		time.April:     SeasonMid,
		time.May:       SeasonLow,
		time.June:      SeasonLow,
		time.July:      SeasonHigh,
		time.August:    SeasonHigh,
		time.September: SeasonLow,
		time.October:   SeasonMid,
		time.November:  SeasonMid,
		time.December:  SeasonMid,
	}

	for month, want := range expected {
		if got := SeasonForMonth(month); got != want {
			t.Fatalf("SeasonForMonth(%v) = %v, want %v", month, got, want)
		}
	}
}

func TestDurationBucketNightsLowerBound(t *testing.T) {
	cases := map[DurationBucket]int{
		Duration2to3:   2,
		Duration4to7:   4,
		Duration8to10:  8,
		DurationOver10: 10,
	}
	for bucket, want := range cases {
		if got := bucket.Nights(); got != want {
			t.Fatalf("Nights(%q) = %d, want %d", bucket, got, want)
		}
	}
}

func TestParseDurationBucketRejectsUnknown(t *testing.T) {
	if _, err := ParseDurationBucket("5-6"); err == nil {
		t.Fatalf("expected error for unknown bucket")
	}
	if _, err := ParseDurationBucket(""); err == nil {
		t.Fatalf("expected error for empty bucket")
	}
	bucket, err := ParseDurationBucket("4-7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bucket != Duration4to7 {
		t.Fatalf("got %q", bucket)
	}
}

func TestParseBookingStatusRejectsUnknown(t *testing.T) {
	if _, err := ParseBookingStatus("ARCHIVED"); err == nil {
		t.Fatalf("expected error for unknown status")
	}
	status, err := ParseBookingStatus("NO_SHOW")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !status.IsTerminal() {
		t.Fatalf("NO_SHOW should be terminal")
	}
	if BookingStatusConfirmed.IsTerminal() {
		t.Fatalf("CONFIRMED should not be terminal")
	}
}

func TestJourneyStatusRankOrdering(t *testing.T) {
	order := []JourneyStatus{JourneyNotStarted, JourneyDeparted, JourneyInGreece, JourneyArrived}
	for i := 1; i < len(order); i++ {
		if order[i].Rank() <= order[i-1].Rank() {
			t.Fatalf("%q should rank above %q", order[i], order[i-1])
		}
	}
	if JourneyStatus("LOST").Rank() != -1 {
		t.Fatalf("unknown journey status should rank -1")
	}
}
