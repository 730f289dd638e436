package nextbus

import (
	"fmt"
	"strconv"
	"time"
)

// PredictionSet is the root of a predictions response for a single stop on a route
type PredictionSet struct {
	AgencyTitle string `groups:"basic"`
	RouteTag    string `groups:"basic"`
	RouteTitle  string `groups:"basic"`
	StopTag     string `groups:"basic"`
	StopTitle   string `groups:"basic"`

	// Only populated by the feed when there are no predictions for this stop
	NoPredictionsDirectionTitle string `groups:"basic"`

	Directions []*PredictionsByDirection `groups:"basic"`
}

type PredictionsByDirection struct {
	Title string `groups:"basic"`

	Predictions []*Prediction `groups:"basic"`
}

type Prediction struct {
	Seconds           string `groups:"basic"`
	Minutes           string `groups:"basic"`
	EpochTime         string `groups:"basic"`
	IsDeparture       string `groups:"basic"`
	Block             string `groups:"basic"`
	DirTag            string `groups:"basic"`
	TripTag           string `groups:"basic"`
	Branch            string `groups:"basic"`
	AffectedByLayover string `groups:"basic"`
	IsScheduleBased   string `groups:"basic"`
	Delayed           string `groups:"basic"`
}

func NewPredictionSet(attributes Attributes) *PredictionSet {
	return &PredictionSet{
		AgencyTitle: attributes.Get("agencyTitle"),
		RouteTag:    attributes.Get("routeTag"),
		RouteTitle:  attributes.Get("routeTitle"),
		StopTag:     attributes.Get("stopTag"),
		StopTitle:   attributes.Get("stopTitle"),

		NoPredictionsDirectionTitle: attributes.Get("dirTitleBecauseNoPredictions"),

		Directions: []*PredictionsByDirection{},
	}
}

func NewPredictionsByDirection(attributes Attributes) *PredictionsByDirection {
	return &PredictionsByDirection{
		Title:       attributes.Get("title"),
		Predictions: []*Prediction{},
	}
}

func NewPrediction(attributes Attributes) *Prediction {
	return &Prediction{
		Seconds:           attributes.Get("seconds"),
		Minutes:           attributes.Get("minutes"),
		EpochTime:         attributes.Get("epochTime"),
		IsDeparture:       attributes.Get("isDeparture"),
		Block:             attributes.Get("block"),
		DirTag:            attributes.Get("dirTag"),
		TripTag:           attributes.Get("tripTag"),
		Branch:            attributes.Get("branch"),
		AffectedByLayover: attributes.Get("affectedByLayover"),
		IsScheduleBased:   attributes.Get("isScheduleBased"),
		Delayed:           attributes.Get("delayed"),
	}
}

// HasPredictions reports whether the feed returned any predictions for the stop
func (p *PredictionSet) HasPredictions() bool {
	return p.NoPredictionsDirectionTitle == ""
}

func (p *PredictionSet) AddDirection(attributes Attributes) int {
	p.Directions = append(p.Directions, NewPredictionsByDirection(attributes))

	return len(p.Directions) - 1
}

func (p *PredictionSet) AddPrediction(direction int, attributes Attributes) error {
	if direction < 0 || direction >= len(p.Directions) {
		return fmt.Errorf("prediction for direction %d: %w", direction, ErrMissingParent)
	}

	p.Directions[direction].AddPrediction(attributes)

	return nil
}

func (d *PredictionsByDirection) AddPrediction(attributes Attributes) {
	d.Predictions = append(d.Predictions, NewPrediction(attributes))
}

// ArrivalTime converts the millisecond epochTime attribute
func (p *Prediction) ArrivalTime() (time.Time, error) {
	epochMillis, err := strconv.ParseInt(p.EpochTime, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid epochTime %q: %w", p.EpochTime, err)
	}

	return time.UnixMilli(epochMillis), nil
}
