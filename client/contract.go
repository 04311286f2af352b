package client

import (
	"net/http"

	"github.com/rs/zerolog"
)

type HTTPManager interface {
	Do(req *http.Request) (*http.Response, error)
}

type Logger interface {
	Error() *zerolog.Event
	Info() *zerolog.Event
}
