package nextbus

type Direction struct {
	Tag   string `groups:"basic,detailed"`
	Title string `groups:"basic,detailed"`
	Name  string `groups:"basic,detailed"`

	Stops []*Stop `groups:"basic,detailed"`
}

func NewDirection(attributes Attributes) *Direction {
	return &Direction{
		Tag:   attributes.Get("tag"),
		Title: attributes.Get("title"),
		Name:  attributes.Get("name"),

		Stops: []*Stop{},
	}
}

func (d *Direction) AddStop(attributes Attributes) {
	d.Stops = append(d.Stops, NewStop(attributes))
}
