package externalApi

import "errors"

var ErrBadStatus = errors.New("unexpected response status")
