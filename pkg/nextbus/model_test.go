package nextbus

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorsDefaultMissingAttributes(t *testing.T) {
	empty := Attributes{}

	assert.Equal(t, Agency{}, *NewAgency(empty))
	assert.Equal(t, RouteSummary{}, *NewRouteSummary(empty))
	assert.Equal(t, Point{}, *NewPoint(empty))
	assert.Equal(t, Prediction{}, *NewPrediction(empty))

	stop := NewStop(empty)
	assert.Equal(t, "", stop.Tag)
	assert.Equal(t, "", stop.Title)
	assert.Equal(t, "", stop.ShortTitle)
	assert.Equal(t, "", stop.Lat)
	assert.Equal(t, "", stop.Lon)
	assert.Equal(t, UnknownStopID, stop.StopID)

	route := NewRouteDetail(empty)
	assert.Equal(t, "", route.Tag)
	assert.Equal(t, "", route.Color)
	assert.Equal(t, "", route.OppositeColor)
	assert.Equal(t, "", route.LatMin)
	assert.Equal(t, "", route.LonMax)
	assert.NotNil(t, route.Stops)
	assert.Empty(t, route.Stops)
	assert.Empty(t, route.Directions)
	assert.Empty(t, route.Paths)

	direction := NewDirection(empty)
	assert.Equal(t, "", direction.Name)
	assert.Empty(t, direction.Stops)

	predictions := NewPredictionSet(empty)
	assert.Equal(t, "", predictions.NoPredictionsDirectionTitle)
	assert.True(t, predictions.HasPredictions())
	assert.Empty(t, predictions.Directions)

	feedError := NewError(empty)
	assert.Equal(t, "", feedError.ShouldRetry)
	assert.Equal(t, DefaultErrorMessage, feedError.Message)
}

func TestConstructorsReadAttributes(t *testing.T) {
	agency := NewAgency(Attributes{
		"tag":         "sf-muni",
		"title":       "San Francisco Muni",
		"regionTitle": "California-Northern",
		"shortTitle":  "SF Muni",
	})
	assert.Equal(t, "sf-muni", agency.Tag)
	assert.Equal(t, "San Francisco Muni", agency.Title)
	assert.Equal(t, "California-Northern", agency.Region)
	assert.Equal(t, "SF Muni", agency.ShortTitle)

	route := NewRouteDetail(Attributes{
		"tag":           "N",
		"title":         "N-Judah",
		"color":         "003399",
		"oppositeColor": "ffffff",
		"latMin":        "37.7601",
		"latMax":        "37.7932",
		"lonMin":        "-122.5092",
		"lonMax":        "-122.3886",
	})
	assert.Equal(t, "N", route.Tag)
	assert.Equal(t, "N-Judah", route.Title)
	assert.Equal(t, "003399", route.Color)
	assert.Equal(t, "ffffff", route.OppositeColor)
	assert.Equal(t, "37.7601", route.LatMin)
	assert.Equal(t, "37.7932", route.LatMax)
	assert.Equal(t, "-122.5092", route.LonMin)
	assert.Equal(t, "-122.3886", route.LonMax)

	stop := NewStop(Attributes{"tag": "5240", "stopId": "15240", "lat": "37.76", "lon": "-122.5"})
	assert.Equal(t, "15240", stop.StopID)
	assert.Equal(t, "Stop No: 5240", stop.DisplayName())

	prediction := NewPrediction(Attributes{
		"seconds":           "305",
		"minutes":           "5",
		"epochTime":         "1700000000000",
		"isDeparture":       "false",
		"block":             "9702",
		"dirTag":            "N____O_F00",
		"tripTag":           "10796960",
		"branch":            "",
		"affectedByLayover": "true",
		"isScheduleBased":   "false",
		"delayed":           "true",
	})
	assert.Equal(t, "305", prediction.Seconds)
	assert.Equal(t, "5", prediction.Minutes)
	assert.Equal(t, "false", prediction.IsDeparture)
	assert.Equal(t, "9702", prediction.Block)
	assert.Equal(t, "N____O_F00", prediction.DirTag)
	assert.Equal(t, "10796960", prediction.TripTag)
	assert.Equal(t, "true", prediction.AffectedByLayover)
	assert.Equal(t, "false", prediction.IsScheduleBased)
	assert.Equal(t, "true", prediction.Delayed)

	arrival, err := prediction.ArrivalTime()
	require.NoError(t, err)
	assert.True(t, arrival.Equal(time.UnixMilli(1700000000000)))
}

func TestErrorMessage(t *testing.T) {
	feedError := NewError(Attributes{"shouldRetry": "true"})
	assert.True(t, feedError.Retryable())
	assert.Equal(t, "true", feedError.ShouldRetry)

	feedError.SetMessage("Agency is not valid")
	assert.Equal(t, "Agency is not valid", feedError.Error())

	feedError.SetMessage("")
	assert.Equal(t, DefaultErrorMessage, feedError.Message)

	assert.False(t, NewError(Attributes{"shouldRetry": "false"}).Retryable())
}

func TestChildWithoutParentFailsFast(t *testing.T) {
	route := NewRouteDetail(Attributes{})

	err := route.AddPoint(0, Attributes{})
	assert.True(t, errors.Is(err, ErrMissingParent))

	err = route.AddDirectionStop(-1, Attributes{})
	assert.True(t, errors.Is(err, ErrMissingParent))

	predictions := NewPredictionSet(Attributes{})
	err = predictions.AddPrediction(0, Attributes{})
	assert.True(t, errors.Is(err, ErrMissingParent))
}

func TestPathKeepsAttributes(t *testing.T) {
	attributes := Attributes{"id": "1"}
	path := NewPath(attributes)
	attributes["id"] = "2"

	assert.Equal(t, "1", path.Attributes["id"])
}
