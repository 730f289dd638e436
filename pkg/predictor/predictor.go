package predictor

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
	"github.com/travigo/nextbus/pkg/feed"
	"github.com/travigo/nextbus/pkg/nextbus"
)

type Level int

const (
	LevelAgencies Level = iota
	LevelRoutes
	LevelStops
	LevelPredictions
)

const (
	inputBack    = -1
	inputExit    = -2
	inputInvalid = -3
)

const timestampFormat = "02/01/2006 15:04:05"

type FeedClient interface {
	GetAgencies(ctx context.Context) ([]*nextbus.Agency, error)
	GetRoutes(ctx context.Context, agencyTag string) ([]*nextbus.RouteSummary, error)
	GetRouteConfig(ctx context.Context, agencyTag string, routeTag string) (*nextbus.RouteDetail, error)
	GetPredictions(ctx context.Context, agencyTag string, routeTag string, stopTag string) (*nextbus.PredictionSet, error)
}

// Predictor walks the user from agency to route to stop to live predictions using numbered menus
type Predictor struct {
	Client FeedClient

	Input  io.Reader
	Output io.Writer

	Now        func() time.Time
	NewBackOff func() backoff.BackOff

	scanner *bufio.Scanner

	// Index picked at each level, its length is the current level
	selections []int

	agencies    []*nextbus.Agency
	routes      []*nextbus.RouteSummary
	stops       []*nextbus.Stop
	predictions *nextbus.PredictionSet

	errorMessage string

	// Number of selectable options at the current level
	max int
}

func (p *Predictor) Run(ctx context.Context) error {
	if p.Now == nil {
		p.Now = time.Now
	}
	if p.NewBackOff == nil {
		p.NewBackOff = feed.NewRetryBackOff
	}
	p.scanner = bufio.NewScanner(p.Input)
	p.selections = []int{}

	fmt.Fprint(p.Output, "\nWelcome to nextbus. Pick an agency, route and stop to see the next buses\n")

	p.updateLevel(ctx)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		input, ok := p.readInput(p.prompt())
		if !ok {
			break
		}

		if exit := p.handleInput(ctx, input); exit {
			break
		}
	}

	fmt.Fprint(p.Output, "Thank you for using nextbus\n")

	return nil
}

func (p *Predictor) Level() Level {
	return Level(len(p.selections))
}

func (p *Predictor) handleInput(ctx context.Context, input int) bool {
	switch {
	case input == inputExit:
		return true
	case input == inputBack:
		if p.Level() == LevelAgencies {
			return true
		}
		p.selections = p.selections[:len(p.selections)-1]
	case input == inputInvalid:
		fmt.Fprint(p.Output, "\nSorry, your input was not recognized. Please try again\n")
		return false
	case input >= p.max:
		fmt.Fprintf(p.Output, "Incorrect input, please select an int ranging from -2 - %d\n", p.max-1)
		return false
	case p.Level() == LevelPredictions || p.errorMessage != "":
		// 0 starts over from the agency list, 1 refreshes the current level
		if input == 0 {
			p.selections = []int{}
		}
	default:
		p.selections = append(p.selections, input)
	}

	p.updateLevel(ctx)

	return false
}

// updateLevel loads whatever the current level displays
func (p *Predictor) updateLevel(ctx context.Context) {
	p.errorMessage = ""

	var err error

	switch p.Level() {
	case LevelAgencies:
		var agencies []*nextbus.Agency
		agencies, err = feed.Retry(ctx, p.NewBackOff(), func() ([]*nextbus.Agency, error) {
			return p.Client.GetAgencies(ctx)
		})
		if err == nil {
			p.agencies = agencies
			p.max = len(agencies)
		}
	case LevelRoutes:
		var routes []*nextbus.RouteSummary
		routes, err = feed.Retry(ctx, p.NewBackOff(), func() ([]*nextbus.RouteSummary, error) {
			return p.Client.GetRoutes(ctx, p.agencyTag())
		})
		if err == nil {
			p.routes = routes
			p.max = len(routes)
		}
	case LevelStops:
		var route *nextbus.RouteDetail
		route, err = feed.Retry(ctx, p.NewBackOff(), func() (*nextbus.RouteDetail, error) {
			return p.Client.GetRouteConfig(ctx, p.agencyTag(), p.routeTag())
		})
		if err == nil {
			p.stops = route.Stops
			p.max = len(route.Stops)
		}
	case LevelPredictions:
		var predictions *nextbus.PredictionSet
		predictions, err = feed.Retry(ctx, p.NewBackOff(), func() (*nextbus.PredictionSet, error) {
			return p.Client.GetPredictions(ctx, p.agencyTag(), p.routeTag(), p.stopTag())
		})
		if err == nil {
			p.predictions = predictions
			p.max = 2
		}
	}

	if err != nil {
		log.Debug().Err(err).Int("level", int(p.Level())).Msg("Failed to load level")

		p.errorMessage = err.Error()
		p.max = 2
	}
}

func (p *Predictor) agencyTag() string {
	return p.agencies[p.selections[0]].Tag
}

func (p *Predictor) routeTag() string {
	return p.routes[p.selections[1]].Tag
}

func (p *Predictor) stopTag() string {
	return p.stops[p.selections[2]].Tag
}

func (p *Predictor) readInput(prompt string) (int, bool) {
	fmt.Fprint(p.Output, prompt)

	if !p.scanner.Scan() {
		return 0, false
	}

	input, err := strconv.Atoi(strings.TrimSpace(p.scanner.Text()))
	if err != nil || input < inputExit {
		return inputInvalid, true
	}

	return input, true
}

func (p *Predictor) prompt() string {
	var prompt string

	switch {
	case p.errorMessage != "":
		prompt = fmt.Sprintf("\nError!\n%s\nPlease input 1 to refresh\nInput 0 to go back to the list of Agencies\nInput -1 to go back\nInput -2 to exit\n\n", p.errorMessage)
	case p.Level() == LevelPredictions:
		prompt = fmt.Sprintf("\nPlease input 1 to refresh\nInput 0 to go back to the list of Agencies\nInput -1 to go back to the list of stops\nInput -2 to exit\n\n%s", p.predictionsText())
	default:
		levelName := "agency"
		backAction := "exit"

		switch p.Level() {
		case LevelRoutes:
			levelName = "route"
			backAction = "go back to the list of agencies"
		case LevelStops:
			levelName = "stop"
			backAction = "go back to the list of routes"
		}

		prompt = fmt.Sprintf("\nPlease input the number corresponding to the %s you are interested in.\nInput -1 to %s\nInput -2 to exit\n\n%s", levelName, backAction, p.options())
	}

	return prompt + "\nInput your selection: "
}

func (p *Predictor) options() string {
	var options strings.Builder

	switch p.Level() {
	case LevelAgencies:
		for index, agency := range p.agencies {
			fmt.Fprintf(&options, "%d %s\n", index, agency.Title)
		}
	case LevelRoutes:
		for index, route := range p.routes {
			fmt.Fprintf(&options, "%d %s\n", index, route.Title)
		}
	case LevelStops:
		for index, stop := range p.stops {
			fmt.Fprintf(&options, "%d %s\n", index, stop.DisplayName())
		}
	}

	return options.String()
}

func (p *Predictor) predictionsText() string {
	var text strings.Builder

	if !p.predictions.HasPredictions() {
		text.WriteString("\nNo Predictions Available")
	} else {
		text.WriteString("\nNext Buses Available")

		for _, direction := range p.predictions.Directions {
			fmt.Fprintf(&text, "\n\tDirection: %s", direction.Title)

			for _, prediction := range direction.Predictions {
				fmt.Fprintf(&text, "\n\t\t%s minutes", prediction.Minutes)
			}
		}
	}

	fmt.Fprintf(&text, "\n\nInformation as of %s\n", p.Now().Format(timestampFormat))

	return text.String()
}
