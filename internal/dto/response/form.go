package response

import (
	"github.com/billwiliams/fyyur/internal/data/entity"
	"github.com/billwiliams/fyyur/internal/dto/request"
)

// FormChoices lists the closed sets a form renders as selects.
type FormChoices struct {
	States []string `json:"states"`
	Genres []string `json:"genres"`
}

type FormResponse[T any] struct {
	Form    T            `json:"form"`
	Choices *FormChoices `json:"choices,omitempty"`
}

func NewFormChoices() *FormChoices {
	states := make([]string, len(entity.States))
	copy(states, entity.States)
	return &FormChoices{States: states, Genres: entity.GenreChoices()}
}

func NewVenueForm(form request.VenueRequest) *FormResponse[request.VenueRequest] {
	return &FormResponse[request.VenueRequest]{Form: form, Choices: NewFormChoices()}
}

func NewArtistForm(form request.ArtistRequest) *FormResponse[request.ArtistRequest] {
	return &FormResponse[request.ArtistRequest]{Form: form, Choices: NewFormChoices()}
}

// NewShowForm carries no choices; start_time is prefilled with the current time.
func NewShowForm(form request.ShowRequest) *FormResponse[request.ShowRequest] {
	return &FormResponse[request.ShowRequest]{Form: form}
}
