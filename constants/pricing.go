package constants

import (
	"fmt"
	"time"
)

// Season pricing tiers
type Season string

const (
	SeasonLow  Season = "LOW"
	SeasonMid  Season = "MID"
	SeasonHigh Season = "HIGH"
)

func ParseSeason(s string) (Season, error) {
	switch Season(s) {
	case SeasonLow, SeasonMid, SeasonHigh:
		return Season(s), nil
	}
	return "", fmt.Errorf("unknown season: %q", s)
}

// SeasonForMonth maps a calendar month to its pricing tier.
// July and August are HIGH, the shoulder months May, June and
// September are LOW, everything else is MID.
func SeasonForMonth(m time.Month) Season {
	switch m {
	case time.July, time.August:
		return SeasonHigh
	case time.May, time.June, time.September:
		return SeasonLow
	}
	return SeasonMid
}

// Duration buckets used as a pricing dimension.
type DurationBucket string

const (
	Duration2to3   DurationBucket = "2-3"
	Duration4to7   DurationBucket = "4-7"
	Duration8to10  DurationBucket = "8-10"
	DurationOver10 DurationBucket = "10+"
)

func ParseDurationBucket(s string) (DurationBucket, error) {
	switch DurationBucket(s) {
	case Duration2to3, Duration4to7, Duration8to10, DurationOver10:
		return DurationBucket(s), nil
	}
	return "", fmt.Errorf("unknown duration bucket: %q", s)
}

// Nights returns the number of nights a bucket is billed for.
// Policy: lower bound of the bucket, so quotes never overcharge
// a stay that ends early within its bucket.
func (d DurationBucket) Nights() int {
	switch d {
	case Duration2to3:
		return 2
	case Duration4to7:
		return 4
	case Duration8to10:
		return 8
	case DurationOver10:
		return 10
	}
	return 0
}

// ReservationValidity is how long an unconfirmed booking holds its slot.
const ReservationValidity = 36 * time.Hour
