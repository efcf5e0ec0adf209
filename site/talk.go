package site

import (
	"html/template"
	"time"
)

// Talk is a presentation given one or more times.
type Talk struct {
	Title       string       `toml:"title"`
	Occurrences []Occurrence `toml:"occurrences"`
}

// Occurrence is one time a talk was given.
type Occurrence struct {
	Date      time.Time `toml:"date"`
	EventName string    `toml:"event_name"`
	EventURL  string    `toml:"event_url"`
	VenueName string    `toml:"venue_name"`
	VenueURL  string    `toml:"venue_url"`
	SlidesURL string    `toml:"slides_url"`
	VideoURL  string    `toml:"video_url"`
}

// TalkEvent renders the event name, linked when the event has a URL.
func TalkEvent(o Occurrence) template.HTML {
	return anchor(o.EventURL, o.EventName)
}

// TalkVenue renders the venue name, linked when the venue has a URL.
func TalkVenue(o Occurrence) template.HTML {
	return anchor(o.VenueURL, o.VenueName)
}

// TalkSlides renders a "Slides" link, or nothing if there are no slides.
func TalkSlides(o Occurrence) template.HTML {
	if o.SlidesURL == "" {
		return ""
	}
	return anchor(o.SlidesURL, "Slides")
}

// TalkVideo renders a "Video" link, or nothing if there is no recording.
func TalkVideo(o Occurrence) template.HTML {
	if o.VideoURL == "" {
		return ""
	}
	return anchor(o.VideoURL, "Video")
}
