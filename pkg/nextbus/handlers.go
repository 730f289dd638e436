package nextbus

import "fmt"

type AgencyListHandler struct {
	errorCollector

	Agencies []*Agency
}

func NewAgencyListHandler() *AgencyListHandler {
	return &AgencyListHandler{
		Agencies: []*Agency{},
	}
}

func (h *AgencyListHandler) StartElement(name string, attributes Attributes) error {
	if h.startError(name, attributes) {
		return nil
	}

	if name == "agency" {
		h.Agencies = append(h.Agencies, NewAgency(attributes))
	}

	return nil
}

type RouteListHandler struct {
	errorCollector

	Routes []*RouteSummary
}

func NewRouteListHandler() *RouteListHandler {
	return &RouteListHandler{
		Routes: []*RouteSummary{},
	}
}

func (h *RouteListHandler) StartElement(name string, attributes Attributes) error {
	if h.startError(name, attributes) {
		return nil
	}

	if name == "route" {
		h.Routes = append(h.Routes, NewRouteSummary(attributes))
	}

	return nil
}

type RouteConfigHandler struct {
	errorCollector

	Route *RouteDetail

	// Set by the first direction element and never cleared, every stop after it is
	// attached to the latest direction
	inDirection bool

	currentDirection int
	currentPath      int
}

func NewRouteConfigHandler() *RouteConfigHandler {
	return &RouteConfigHandler{
		currentDirection: -1,
		currentPath:      -1,
	}
}

func (h *RouteConfigHandler) StartElement(name string, attributes Attributes) error {
	if h.startError(name, attributes) {
		return nil
	}

	switch name {
	case "route":
		h.Route = NewRouteDetail(attributes)
		h.inDirection = false
		h.currentDirection = -1
		h.currentPath = -1
		return nil
	case "stop", "direction", "path", "point":
	default:
		return nil
	}

	if h.Route == nil {
		return fmt.Errorf("%s outside of route: %w", name, ErrMissingParent)
	}

	switch name {
	case "stop":
		if h.inDirection {
			return h.Route.AddDirectionStop(h.currentDirection, attributes)
		}
		h.Route.AddStop(attributes)
	case "direction":
		h.currentDirection = h.Route.AddDirection(attributes)
		h.inDirection = true
	case "path":
		h.currentPath = h.Route.AddPath(attributes)
	case "point":
		return h.Route.AddPoint(h.currentPath, attributes)
	}

	return nil
}

type PredictionsHandler struct {
	errorCollector

	Predictions *PredictionSet

	currentDirection int
}

func NewPredictionsHandler() *PredictionsHandler {
	return &PredictionsHandler{
		currentDirection: -1,
	}
}

func (h *PredictionsHandler) StartElement(name string, attributes Attributes) error {
	if h.startError(name, attributes) {
		return nil
	}

	switch name {
	case "predictions":
		h.Predictions = NewPredictionSet(attributes)
		h.currentDirection = -1
	case "direction":
		if h.Predictions == nil {
			return fmt.Errorf("direction outside of predictions: %w", ErrMissingParent)
		}
		h.currentDirection = h.Predictions.AddDirection(attributes)
	case "prediction":
		if h.Predictions == nil {
			return fmt.Errorf("prediction outside of predictions: %w", ErrMissingParent)
		}
		return h.Predictions.AddPrediction(h.currentDirection, attributes)
	}

	return nil
}
