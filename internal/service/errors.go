package service

import "errors"

var (
	ErrInvalidCustomization = errors.New("incomplete or inconsistent customization")
	ErrSubmissionInFlight   = errors.New("an order registration is already in progress")
)
