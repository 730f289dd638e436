package feed

import (
	"fmt"
	"net/url"
	"strings"
)

const DefaultBaseURL = "https://retro.umoiq.com/service/publicXMLFeed"

type Command string

const (
	CommandAgencyList  Command = "agencyList"
	CommandRouteList   Command = "routeList"
	CommandRouteConfig Command = "routeConfig"
	CommandPredictions Command = "predictions"
)

// Cacheable reports whether the response to the command is static enough to cache
func (c Command) Cacheable() bool {
	return c != CommandPredictions
}

func buildQuery(baseURL string, command Command, tags ...string) string {
	query := fmt.Sprintf("command=%s", command)

	parameters := []string{"a", "r", "s"}
	for i, tag := range tags {
		if i >= len(parameters) {
			break
		}

		query += fmt.Sprintf("&%s=%s", parameters[i], url.QueryEscape(tag))
	}

	return strings.TrimSuffix(baseURL, "?") + "?" + query
}
