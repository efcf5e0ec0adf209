package site

import (
	"html/template"
	"log"
	"strings"
)

// DateFormat is how dates are shown in listings.
const DateFormat = "January 2, 2006"

// fragments are the small pieces of markup the helpers produce. Going through
// html/template means URLs with unsafe schemes are replaced rather than linked.
var fragments = template.Must(template.New("fragments").Parse(
	`{{define "titleanddate"}}<a href="{{.URL}}"><h2>{{.Title}}</h2><p>{{.Date}}</p></a>{{end}}` +
		`{{define "anchor"}}{{if .URL}}<a href="{{.URL}}">{{.Text}}</a>{{else}}{{.Text}}{{end}}{{end}}`))

// render executes the named fragment.
func render(name string, v any) template.HTML {
	var b strings.Builder
	err := fragments.ExecuteTemplate(&b, name, v)
	if err != nil {
		log.Printf("render %s: %s", name, err)
	}
	return template.HTML(b.String())
}

// TitleAndDateLink renders item as a link wrapping its title and date.
func TitleAndDateLink(item Item) template.HTML {
	return render("titleanddate", struct{ URL, Title, Date string }{
		URL:   item.ItemURL(),
		Title: item.ItemTitle(),
		Date:  item.ItemDate().Format(DateFormat),
	})
}

// anchor renders text as a link to href, or as plain text when href is empty.
func anchor(href, text string) template.HTML {
	return render("anchor", struct{ URL, Text string }{URL: href, Text: text})
}
