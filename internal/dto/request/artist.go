package request

import (
	"net/url"

	"github.com/billwiliams/fyyur/internal/data/entity"
)

type ArtistRequest struct {
	Name               string   `json:"name" form:"name" validate:"required,max=120"`
	City               string   `json:"city" form:"city" validate:"required"`
	State              string   `json:"state" form:"state" validate:"required,usstate"`
	Phone              string   `json:"phone" form:"phone" validate:"required,phone"`
	Genres             []string `json:"genres" form:"genres" validate:"required,min=1,dive,genre"`
	ImageLink          string   `json:"image_link" form:"image_link" validate:"omitempty,url"`
	FacebookLink       string   `json:"facebook_link" form:"facebook_link" validate:"omitempty,url,facebook"`
	WebsiteLink        string   `json:"website_link" form:"website_link" validate:"omitempty,url"`
	SeekingVenue       bool     `json:"seeking_venue" form:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description" form:"seeking_description"`
}

// NewArtistRequest decodes a submitted artist form. seeking_venue defaults to true when absent.
func NewArtistRequest(form url.Values) *ArtistRequest {
	return &ArtistRequest{
		Name:               formString(form, "name"),
		City:               formString(form, "city"),
		State:              formString(form, "state"),
		Phone:              formString(form, "phone"),
		Genres:             formList(form, "genres"),
		ImageLink:          formString(form, "image_link"),
		FacebookLink:       formString(form, "facebook_link"),
		WebsiteLink:        formString(form, "website_link"),
		SeekingVenue:       formFlag(form, "seeking_venue"),
		SeekingDescription: formString(form, "seeking_description"),
	}
}

func ArtistRequestFromEntity(artist *entity.Artist) ArtistRequest {
	return ArtistRequest{
		Name:               artist.Name,
		City:               artist.City,
		State:              artist.State,
		Phone:              artist.Phone,
		Genres:             artist.Genres,
		ImageLink:          artist.ImageLink,
		FacebookLink:       artist.FacebookLink,
		WebsiteLink:        artist.WebsiteLink,
		SeekingVenue:       artist.SeekingVenue,
		SeekingDescription: artist.SeekingDescription,
	}
}

func DefaultArtistRequest() ArtistRequest {
	return ArtistRequest{SeekingVenue: true, Genres: []string{}}
}
