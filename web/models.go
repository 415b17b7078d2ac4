package web

import (
	"teammatch-bot/api/api"
)

// Config holds the configuration for the web server
type Config struct {
	Addr string
	API  *api.API
}

// Server is the HTTP server that exposes health and matching endpoints
type Server struct {
	api *api.API
}
