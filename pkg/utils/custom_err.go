package utils

import "errors"

var (
	ErrActivityNotFound      = errors.New("activity not found")
	ErrProfileNotFound       = errors.New("profile not found")
	ErrRoomNotFound          = errors.New("room not found")
	ErrAccommodationNotFound = errors.New("no accommodation found")
	ErrPaymentNotFound       = errors.New("payment not found")
	ErrPhotoNotFound         = errors.New("photo not found")

	ErrForbidden           = errors.New("forbidden")
	ErrManagerCapReached   = errors.New("maximum of 2 managers allowed")
	ErrPasswordRequired    = errors.New("password required")
	ErrIncorrectPassword   = errors.New("incorrect password")
	ErrInvalidTripPassword = errors.New("incorrect trip password")

	ErrInvalidInput         = errors.New("invalid input")
	ErrInvalidVoteType      = errors.New("vote type must be 1 or -1")
	ErrInvalidTimeSlot      = errors.New("time slot must be Morning, Afternoon or Evening")
	ErrInvalidDay           = errors.New("day is outside the trip")
	ErrInvalidPaymentStatus = errors.New("payment status must be pending, collected or waived")
	ErrUnknownAIAction      = errors.New("unknown AI action")
	ErrUploadTicketUnknown  = errors.New("photo storage id was not issued or has expired")

	ErrRoomConflict = errors.New("profile is already assigned to a room in another accommodation")

	ErrDatabaseError   = errors.New("database error")
	ErrAIUpstream      = errors.New("text generation failed")
	ErrStorageUpstream = errors.New("blob storage failed")
)
