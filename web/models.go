/* models.go
 * Contains the structs used by the web server
 * Authors: Zachary Bower
 */

package web

import (
	"tourboard/api/api"
)

// Config holds the configuration for the web server
type Config struct {
	Addr string
	API  *api.API
}

// Server is the HTTP server that serves the computed leaderboard as JSON
type Server struct {
	api *api.API
}
