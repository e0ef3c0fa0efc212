package models

import "errors"

var (
	// ErrResolution means the search endpoint could not be reached or its page could not be understood
	ErrResolution = errors.New("player search failed")

	// ErrInvalidLink means a profile link does not point at a player page on the configured site
	ErrInvalidLink = errors.New("not a player profile link")

	// ErrNoMatch means a search produced zero candidates
	ErrNoMatch = errors.New("no matching players")

	// ErrSeasonNotFound means the requested season is missing from the basic or advanced table
	ErrSeasonNotFound = errors.New("season not found")

	// ErrImageUnavailable means the profile page has no usable image
	ErrImageUnavailable = errors.New("profile image unavailable")

	// ErrPrediction means the model rejected the record
	ErrPrediction = errors.New("prediction failed")

	// ErrSchema means the merged row does not carry every model feature
	ErrSchema = errors.New("record does not match feature schema")

	// ErrFetch means a page could not be downloaded
	ErrFetch = errors.New("fetch failed")

	// ErrParse means a page or value could not be parsed
	ErrParse = errors.New("parse failed")
)
