package render

import (
	"html/template"
	"math"
	"strings"

	"github.com/tessero/recommend-go/internal/api/tessero"
)

// Placeholder markup written by the rendering pipeline for the loading,
// empty and error states.
const (
	LoadingHTML = `<div class="recommendations-loading">Loading recommendations...</div>`
	EmptyHTML   = `<div class="recommendations-empty">No recommendations available</div>`
	ErrorHTML   = `<div class="recommendations-error">Unable to load recommendations</div>`
)

// descriptionLimit is where the default card truncates long
// descriptions. Custom templates receive the full text.
const descriptionLimit = 100

var tmplFuncs = template.FuncMap{
	"truncate": truncate,
	"percent":  percent,
}

var eventCardTmpl = template.Must(template.New("event-card").Funcs(tmplFuncs).Parse(`<div class="recommendation-card" data-event-id="{{.EventID}}">
  <h3 class="recommendation-title">{{.Title}}</h3>
  <div class="recommendation-meta">
    <span class="recommendation-category">{{.Category}}</span>
    <span class="recommendation-location">{{.Location}}</span>
    <span class="recommendation-date">{{.Date}}</span>
  </div>
  <p class="recommendation-description">{{truncate .Description}}</p>
  <div class="recommendation-price">${{printf "%.2f" .Price}}</div>
</div>`))

var similarCardTmpl = template.Must(template.New("similar-event-card").Funcs(tmplFuncs).Parse(`<div class="similar-event-card" data-event-id="{{.EventID}}">
  <h3 class="recommendation-title">{{.Title}}</h3>
  <div class="recommendation-meta">
    <span class="recommendation-category">{{.Category}}</span>
    <span class="recommendation-location">{{.Location}}</span>
    <span class="recommendation-date">{{.Date}}</span>
    <span class="similarity-score">{{percent .SimilarityScore}}% match</span>
  </div>
  <p class="recommendation-description">{{truncate .Description}}</p>
  <div class="recommendation-price">${{printf "%.2f" .Price}}</div>
</div>`))

// EventCard renders the default recommendation card for one item.
// The data-event-id attribute is the addressable hook interaction
// tracking keys off.
func EventCard(item tessero.Event) (string, error) {
	return execute(eventCardTmpl, item)
}

// SimilarEventCard renders the default similar-event card, which adds a
// rounded-percentage similarity indicator.
func SimilarEventCard(item tessero.SimilarEvent) (string, error) {
	return execute(similarCardTmpl, item)
}

func execute(t *template.Template, item any) (string, error) {
	var sb strings.Builder
	if err := t.Execute(&sb, item); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func truncate(s string) string {
	r := []rune(s)
	if len(r) <= descriptionLimit {
		return s
	}
	return string(r[:descriptionLimit]) + "..."
}

func percent(score float64) int {
	return int(math.Round(score * 100))
}
