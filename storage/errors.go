package storage

import "errors"

var ErrVoteNotFound = errors.New("vote not found in storage")
var ErrPrizeListNotFound = errors.New("prize list not found in storage")
var ErrVoteAlreadyExists = errors.New("vote with this id already exists")
