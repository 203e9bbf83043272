package domain

import "github.com/m-mizutani/goerr/v2"

var (
	ErrAPIRequest         = goerr.New("API request failed")
	ErrHTTPStatus         = goerr.New("API returned non-success status")
	ErrUnexpectedResponse = goerr.New("unexpected API response")
	ErrTimestampParse     = goerr.New("timestamp format not recognized")
	ErrConfiguration      = goerr.New("configuration error")
)
