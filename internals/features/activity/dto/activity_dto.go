package dto

import (
	eventDTO "campushub_backend/internals/features/events/dto"
)

// ActivitySummary is the per-user dashboard rollup.
type ActivitySummary struct {
	EventsCreated      int64 `json:"events_created"`
	EventsParticipated int64 `json:"events_participated"`
	EventsAttended     int64 `json:"events_attended"`
	CertificatesEarned int64 `json:"certificates_earned"`
	ClubsJoined        int64 `json:"clubs_joined"`
	LostItemsPosted    int64 `json:"lost_items_posted"`
}

type ActivityResponse struct {
	Summary       ActivitySummary                  `json:"summary"`
	CreatedEvents []eventDTO.EventResponse         `json:"created_events"`
	Registrations []eventDTO.RegistrationResponse  `json:"registrations"`
}
