package playersapi

import "time"

const (
	defaultBaseURL     = "http://localhost:8000"
	defaultHTTPTimeout = 10 * time.Second
	maxErrorBody       = 512
)
