package dto

// CreateBookingRequest is the client's booking intent. Enum-like fields
// arrive as strings and are rejected at the validation boundary when
// unknown.
type CreateBookingRequest struct {
	AccommodationID uint   `json:"accommodationId" binding:"required"`
	PackageType     string `json:"packageType" binding:"required"`
	ArrivalDate     string `json:"arrivalDate" binding:"required"` // dd/mm/yyyy
	Duration        string `json:"duration" binding:"required"`
	ArrivalTime     string `json:"arrivalTime"`
	GuestName       string `json:"guestName" binding:"required"`
	GuestEmail      string `json:"guestEmail" binding:"required"`
	GuestPhone      string `json:"guestPhone" binding:"required"`
}

type ChangeBookingStatusRequest struct {
	BookingID uint   `json:"bookingId" binding:"required"`
	Status    string `json:"status" binding:"required"`
}

type UpdateJourneyStatusRequest struct {
	BookingID     uint   `json:"bookingId" binding:"required"`
	JourneyStatus string `json:"journeyStatus" binding:"required"`
}

type AssignGuideRequest struct {
	BookingID uint `json:"bookingId" binding:"required"`
	GuideID   uint `json:"guideId" binding:"required"`
}
