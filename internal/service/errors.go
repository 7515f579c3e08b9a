package service

import "errors"

var (
	ErrVenueNotFound  = errors.New("venue not found")
	ErrArtistNotFound = errors.New("artist not found")
)
