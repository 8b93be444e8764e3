package services

import (
	"testing"

	"jatomogu/constants"
	"jatomogu/models"
)

func TestBookablePredicate(t *testing.T) {
	activeCity := &models.City{IsActive: true}
	inactiveCity := &models.City{IsActive: false}
	available := &models.Accommodation{Status: constants.AccommodationAvailable}

	if !Bookable(available, activeCity, nil) {
		t.Fatalf("available accommodation in active city with no override must be bookable")
	}

	// explicit city toggle wins over individual accommodation status
	off := &models.LocationAvailability{IsAvailable: false}
	if Bookable(available, activeCity, off) {
		t.Fatalf("city override false must block booking")
	}

	on := &models.LocationAvailability{IsAvailable: true}
	if !Bookable(available, activeCity, on) {
		t.Fatalf("city override true must allow booking")
	}

	if Bookable(available, inactiveCity, nil) {
		t.Fatalf("inactive city must block booking")
	}

	for _, status := range []constants.AccommodationStatus{
		constants.AccommodationBooked,
		constants.AccommodationUnavailable,
	} {
		acc := &models.Accommodation{Status: status}
		if Bookable(acc, activeCity, nil) {
			t.Fatalf("accommodation with status %q must not be bookable", status)
		}
	}
}
