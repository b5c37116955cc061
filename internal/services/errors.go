package services

import "errors"

// Sentinel errors returned by the services; handlers map them to HTTP statuses.
var (
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrInvalidToken       = errors.New("invalid token")

	ErrRequestPending  = errors.New("request already pending")
	ErrEmailRegistered = errors.New("email already registered")
	ErrRequestNotFound = errors.New("request not found")
	ErrAlreadyApproved = errors.New("teacher already approved")

	ErrRoomNotFound         = errors.New("room not found")
	ErrRoomNotFoundOrClosed = errors.New("room not found or closed")
	ErrCodeSpaceExhausted   = errors.New("could not allocate a unique room code")

	ErrQuestionNotFound = errors.New("question not found")
	ErrNotRoomOwner     = errors.New("not authorized to mark this question as solved")
	ErrInvalidVoteType  = errors.New("vote_type must be 'up' or 'down'")
	ErrAlreadyVoted     = errors.New("already voted on this question")
)
