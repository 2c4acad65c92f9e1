package request

import (
	"net/url"
	"strings"
	"time"

	"github.com/billwiliams/fyyur/internal/data/entity"
	"github.com/billwiliams/fyyur/pkg/utils"
)

func init() {
	utils.RegisterValidation("usstate", entity.IsValidState)
	utils.RegisterValidation("genre", entity.IsValidGenre)
	utils.RegisterValidation("datetimeform", func(s string) bool {
		_, err := utils.ParseDateTime(s, time.UTC)
		return err == nil
	})
}

func formString(form url.Values, key string) string {
	return strings.TrimSpace(form.Get(key))
}

// formList returns every non-blank value submitted under key.
func formList(form url.Values, key string) []string {
	var out []string
	for _, v := range form[key] {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func formFlag(form url.Values, key string) bool {
	return utils.ParseFormBool(form.Get(key), form.Has(key), true)
}

type SearchRequest struct {
	SearchTerm string `json:"search_term" form:"search_term"`
}

func NewSearchRequest(form url.Values) *SearchRequest {
	return &SearchRequest{SearchTerm: formString(form, "search_term")}
}
