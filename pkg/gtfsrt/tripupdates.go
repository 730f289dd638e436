package gtfsrt

import (
	"fmt"
	"time"

	"github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"github.com/rs/zerolog/log"
	"github.com/travigo/nextbus/pkg/nextbus"
	"google.golang.org/protobuf/proto"
)

// TripUpdates converts the predictions for a stop into a GTFS-Realtime TripUpdates feed,
// one entity per predicted vehicle trip
func TripUpdates(predictions *nextbus.PredictionSet, generatedAt time.Time) *gtfs.FeedMessage {
	incrementality := gtfs.FeedHeader_FULL_DATASET

	feed := &gtfs.FeedMessage{
		Header: &gtfs.FeedHeader{
			GtfsRealtimeVersion: proto.String("2.0"),
			Incrementality:      &incrementality,
			Timestamp:           proto.Uint64(uint64(generatedAt.Unix())),
		},
		Entity: []*gtfs.FeedEntity{},
	}

	for directionIndex, direction := range predictions.Directions {
		for predictionIndex, prediction := range direction.Predictions {
			arrivalTime, err := prediction.ArrivalTime()
			if err != nil {
				log.Debug().Err(err).Str("trip", prediction.TripTag).Msg("Skipping prediction without epochTime")
				continue
			}

			entityID := prediction.TripTag
			if entityID == "" {
				entityID = fmt.Sprintf("%s-%s-%d-%d", predictions.RouteTag, predictions.StopTag, directionIndex, predictionIndex)
			}

			stopTimeEvent := &gtfs.TripUpdate_StopTimeEvent{
				Time: proto.Int64(arrivalTime.Unix()),
			}

			stopTimeUpdate := &gtfs.TripUpdate_StopTimeUpdate{
				StopId: proto.String(predictions.StopTag),
			}
			if prediction.IsDeparture == "true" {
				stopTimeUpdate.Departure = stopTimeEvent
			} else {
				stopTimeUpdate.Arrival = stopTimeEvent
			}

			tripScheduleRelationship := gtfs.TripDescriptor_SCHEDULED
			trip := &gtfs.TripDescriptor{
				RouteId:              proto.String(predictions.RouteTag),
				ScheduleRelationship: &tripScheduleRelationship,
			}
			if prediction.TripTag != "" {
				trip.TripId = proto.String(prediction.TripTag)
			}

			tripUpdate := &gtfs.TripUpdate{
				Trip:           trip,
				StopTimeUpdate: []*gtfs.TripUpdate_StopTimeUpdate{stopTimeUpdate},
				Timestamp:      proto.Uint64(uint64(generatedAt.Unix())),
			}
			if prediction.Block != "" {
				tripUpdate.Vehicle = &gtfs.VehicleDescriptor{
					Label: proto.String(prediction.Block),
				}
			}

			feed.Entity = append(feed.Entity, &gtfs.FeedEntity{
				Id:         proto.String(entityID),
				TripUpdate: tripUpdate,
			})
		}
	}

	return feed
}

func Marshal(feed *gtfs.FeedMessage) ([]byte, error) {
	return proto.Marshal(feed)
}
