package service

import "github.com/kardianos/service"

const (
	ServiceName        = "cfe-fetch"
	ServiceDisplayName = "CFE Fetch Service"
	ServiceDescription = "CFE Notice Fetcher gRPC Server - Retrieves avis de CFE from the professional tax portal"
)

// NewServiceConfig builds the service manager registration, with the
// given arguments baked into the installed service command line.
func NewServiceConfig(args []string) *service.Config {
	return &service.Config{
		Name:        ServiceName,
		DisplayName: ServiceDisplayName,
		Description: ServiceDescription,
		Arguments:   args,
		Option: service.KeyValue{
			"StartType": "automatic",
		},
	}
}
