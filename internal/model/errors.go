package model

import "errors"

// ErrConfig marks invalid construction parameters (turbine, vessel, policy).
var ErrConfig = errors.New("invalid configuration")

// ErrInput marks a violated contract on a series the caller supplied.
var ErrInput = errors.New("invalid input series")
