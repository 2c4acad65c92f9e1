package request

import "net/url"

type ShowRequest struct {
	ArtistID string `json:"artist_id" form:"artist_id" validate:"required,uuid"`
	VenueID  string `json:"venue_id" form:"venue_id" validate:"required,uuid"`
	// StartTime is optional; the submission time is used when blank.
	StartTime string `json:"start_time" form:"start_time" validate:"omitempty,datetimeform"`
}

func NewShowRequest(form url.Values) *ShowRequest {
	return &ShowRequest{
		ArtistID:  formString(form, "artist_id"),
		VenueID:   formString(form, "venue_id"),
		StartTime: formString(form, "start_time"),
	}
}
