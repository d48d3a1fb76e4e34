package service

import "errors"

var (
	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrNotDonationOwner = errors.New("donation does not belong to donor")
)
