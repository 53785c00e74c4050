package model

import "errors"

var (
	ErrInvalidArguments = errors.New("invalid arguments")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrNetwork          = errors.New("network error")
	ErrResponseParse    = errors.New("malformed rates response")
	ErrUnknownCurrency  = errors.New("unknown currency")
	ErrHistoryNotFound  = errors.New("history file not found")
)
