package archiver

import (
	"time"

	"github.com/travigo/nextbus/pkg/nextbus"
)

// PredictionSnapshot is the archived state of the predictions for one stop at RecordedAt
type PredictionSnapshot struct {
	AgencyTag string
	RouteTag  string
	StopTag   string

	RouteTitle string
	StopTitle  string

	RecordedAt time.Time

	HasPredictions              bool
	NoPredictionsDirectionTitle string

	Directions []*nextbus.PredictionsByDirection
}

func NewPredictionSnapshot(target Target, stop *nextbus.Stop, predictions *nextbus.PredictionSet, recordedAt time.Time) *PredictionSnapshot {
	stopTitle := predictions.StopTitle
	if stopTitle == "" {
		stopTitle = stop.DisplayName()
	}

	return &PredictionSnapshot{
		AgencyTag: target.Agency,
		RouteTag:  target.Route,
		StopTag:   stop.Tag,

		RouteTitle: predictions.RouteTitle,
		StopTitle:  stopTitle,

		RecordedAt: recordedAt,

		HasPredictions:              predictions.HasPredictions(),
		NoPredictionsDirectionTitle: predictions.NoPredictionsDirectionTitle,

		Directions: predictions.Directions,
	}
}
