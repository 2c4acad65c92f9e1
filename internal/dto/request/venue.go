package request

import (
	"net/url"

	"github.com/billwiliams/fyyur/internal/data/entity"
)

type VenueRequest struct {
	Name               string   `json:"name" form:"name" validate:"required,max=120"`
	City               string   `json:"city" form:"city" validate:"required,max=120"`
	State              string   `json:"state" form:"state" validate:"required,usstate"`
	Address            string   `json:"address" form:"address" validate:"required"`
	Phone              string   `json:"phone" form:"phone" validate:"required,phone"`
	ImageLink          string   `json:"image_link" form:"image_link" validate:"omitempty,url"`
	Genres             []string `json:"genres" form:"genres" validate:"required,min=1,joinedmax=120,dive,genre"`
	FacebookLink       string   `json:"facebook_link" form:"facebook_link" validate:"omitempty,url,facebook"`
	WebsiteLink        string   `json:"website_link" form:"website_link" validate:"omitempty,url"`
	SeekingTalent      bool     `json:"seeking_talent" form:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description" form:"seeking_description"`
}

// NewVenueRequest decodes a submitted venue form. seeking_talent defaults to true when absent.
func NewVenueRequest(form url.Values) *VenueRequest {
	return &VenueRequest{
		Name:               formString(form, "name"),
		City:               formString(form, "city"),
		State:              formString(form, "state"),
		Address:            formString(form, "address"),
		Phone:              formString(form, "phone"),
		ImageLink:          formString(form, "image_link"),
		Genres:             formList(form, "genres"),
		FacebookLink:       formString(form, "facebook_link"),
		WebsiteLink:        formString(form, "website_link"),
		SeekingTalent:      formFlag(form, "seeking_talent"),
		SeekingDescription: formString(form, "seeking_description"),
	}
}

// VenueRequestFromEntity pre-fills the edit form with the stored values.
func VenueRequestFromEntity(venue *entity.Venue) VenueRequest {
	return VenueRequest{
		Name:               venue.Name,
		City:               venue.City,
		State:              venue.State,
		Address:            venue.Address,
		Phone:              venue.Phone,
		ImageLink:          venue.ImageLink,
		Genres:             venue.Genres,
		FacebookLink:       venue.FacebookLink,
		WebsiteLink:        venue.WebsiteLink,
		SeekingTalent:      venue.SeekingTalent,
		SeekingDescription: venue.SeekingDescription,
	}
}

// DefaultVenueRequest is the blank create form.
func DefaultVenueRequest() VenueRequest {
	return VenueRequest{SeekingTalent: true, Genres: []string{}}
}
