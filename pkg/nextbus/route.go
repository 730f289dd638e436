package nextbus

import (
	"errors"
	"fmt"
)

var ErrMissingParent = errors.New("element has no parent to attach to")

type RouteSummary struct {
	Tag        string `groups:"basic,detailed"`
	Title      string `groups:"basic,detailed"`
	ShortTitle string `groups:"basic,detailed"`
}

func NewRouteSummary(attributes Attributes) *RouteSummary {
	return &RouteSummary{
		Tag:        attributes.Get("tag"),
		Title:      attributes.Get("title"),
		ShortTitle: attributes.Get("shortTitle"),
	}
}

// RouteDetail is the routeConfig view of a route, including its stop topology and geometry
type RouteDetail struct {
	RouteSummary `groups:"basic,detailed"`

	Color         string `groups:"basic,detailed"`
	OppositeColor string `groups:"basic,detailed"`

	LatMin string `groups:"basic,detailed"`
	LatMax string `groups:"basic,detailed"`
	LonMin string `groups:"basic,detailed"`
	LonMax string `groups:"basic,detailed"`

	Stops      []*Stop      `groups:"basic,detailed"`
	Directions []*Direction `groups:"basic,detailed"`
	Paths      []*Path      `groups:"detailed"`
}

func NewRouteDetail(attributes Attributes) *RouteDetail {
	return &RouteDetail{
		RouteSummary: *NewRouteSummary(attributes),

		Color:         attributes.Get("color"),
		OppositeColor: attributes.Get("oppositeColor"),

		LatMin: attributes.Get("latMin"),
		LatMax: attributes.Get("latMax"),
		LonMin: attributes.Get("lonMin"),
		LonMax: attributes.Get("lonMax"),

		Stops:      []*Stop{},
		Directions: []*Direction{},
		Paths:      []*Path{},
	}
}

func (r *RouteDetail) AddStop(attributes Attributes) {
	r.Stops = append(r.Stops, NewStop(attributes))
}

// AddDirection appends a direction and returns its index for use as a parent handle
func (r *RouteDetail) AddDirection(attributes Attributes) int {
	r.Directions = append(r.Directions, NewDirection(attributes))

	return len(r.Directions) - 1
}

func (r *RouteDetail) AddDirectionStop(direction int, attributes Attributes) error {
	if direction < 0 || direction >= len(r.Directions) {
		return fmt.Errorf("stop for direction %d: %w", direction, ErrMissingParent)
	}

	r.Directions[direction].AddStop(attributes)

	return nil
}

// AddPath appends a path and returns its index for use as a parent handle
func (r *RouteDetail) AddPath(attributes Attributes) int {
	r.Paths = append(r.Paths, NewPath(attributes))

	return len(r.Paths) - 1
}

func (r *RouteDetail) AddPoint(path int, attributes Attributes) error {
	if path < 0 || path >= len(r.Paths) {
		return fmt.Errorf("point for path %d: %w", path, ErrMissingParent)
	}

	r.Paths[path].AddPoint(attributes)

	return nil
}

func (r *RouteDetail) GetStop(tag string) *Stop {
	for _, stop := range r.Stops {
		if stop.Tag == tag {
			return stop
		}
	}

	return nil
}
