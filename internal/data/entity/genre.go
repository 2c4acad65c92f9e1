package entity

type Genre string

const (
	GenreAlternative    Genre = "Alternative"
	GenreBlues          Genre = "Blues"
	GenreClassical      Genre = "Classical"
	GenreCountry        Genre = "Country"
	GenreElectronic     Genre = "Electronic"
	GenreFolk           Genre = "Folk"
	GenreFunk           Genre = "Funk"
	GenreHipHop         Genre = "Hip-Hop"
	GenreHeavyMetal     Genre = "Heavy Metal"
	GenreInstrumental   Genre = "Instrumental"
	GenreJazz           Genre = "Jazz"
	GenreMusicalTheatre Genre = "Musical Theatre"
	GenrePop            Genre = "Pop"
	GenrePunk           Genre = "Punk"
	GenreRnB            Genre = "R&B"
	GenreReggae         Genre = "Reggae"
	GenreRockNRoll      Genre = "Rock n Roll"
	GenreSoul           Genre = "Soul"
	GenreOther          Genre = "Other"
)

// Genres is the closed vocabulary in display order.
var Genres = []Genre{
	GenreAlternative,
	GenreBlues,
	GenreClassical,
	GenreCountry,
	GenreElectronic,
	GenreFolk,
	GenreFunk,
	GenreHipHop,
	GenreHeavyMetal,
	GenreInstrumental,
	GenreJazz,
	GenreMusicalTheatre,
	GenrePop,
	GenrePunk,
	GenreRnB,
	GenreReggae,
	GenreRockNRoll,
	GenreSoul,
	GenreOther,
}

var genreSet = func() map[Genre]struct{} {
	m := make(map[Genre]struct{}, len(Genres))
	for _, g := range Genres {
		m[g] = struct{}{}
	}
	return m
}()

func IsValidGenre(s string) bool {
	_, ok := genreSet[Genre(s)]
	return ok
}

// GenreChoices returns the vocabulary as plain strings.
func GenreChoices() []string {
	out := make([]string, len(Genres))
	for i, g := range Genres {
		out[i] = string(g)
	}
	return out
}
