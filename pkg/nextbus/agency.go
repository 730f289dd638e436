package nextbus

type Agency struct {
	Tag        string `groups:"basic"`
	Title      string `groups:"basic"`
	Region     string `groups:"basic"`
	ShortTitle string `groups:"basic"`
}

func NewAgency(attributes Attributes) *Agency {
	return &Agency{
		Tag:        attributes.Get("tag"),
		Title:      attributes.Get("title"),
		Region:     attributes.Get("regionTitle"),
		ShortTitle: attributes.Get("shortTitle"),
	}
}
