package nextbus

type Path struct {
	Points []*Point `groups:"detailed"`

	// Attributes is kept as passed by the feed, nothing reads it yet
	Attributes Attributes `groups:"detailed"`
}

type Point struct {
	Lat string `groups:"detailed"`
	Lon string `groups:"detailed"`
}

func NewPath(attributes Attributes) *Path {
	return &Path{
		Points:     []*Point{},
		Attributes: attributes.Copy(),
	}
}

func NewPoint(attributes Attributes) *Point {
	return &Point{
		Lat: attributes.Get("lat"),
		Lon: attributes.Get("lon"),
	}
}

func (p *Path) AddPoint(attributes Attributes) {
	p.Points = append(p.Points, NewPoint(attributes))
}
