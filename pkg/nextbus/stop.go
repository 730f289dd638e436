package nextbus

const UnknownStopID = "unknown"

type Stop struct {
	Tag        string `groups:"basic,detailed"`
	Title      string `groups:"basic,detailed"`
	ShortTitle string `groups:"basic,detailed"`
	StopID     string `groups:"basic,detailed"`
	Lat        string `groups:"basic,detailed"`
	Lon        string `groups:"basic,detailed"`
}

func NewStop(attributes Attributes) *Stop {
	return &Stop{
		Tag:        attributes.Get("tag"),
		Title:      attributes.Get("title"),
		ShortTitle: attributes.Get("shortTitle"),
		StopID:     attributes.GetDefault("stopId", UnknownStopID),
		Lat:        attributes.Get("lat"),
		Lon:        attributes.Get("lon"),
	}
}

// DisplayName falls back to the tag as not every stop in the feed carries a title
func (s *Stop) DisplayName() string {
	if s.Title != "" {
		return s.Title
	}

	return "Stop No: " + s.Tag
}
