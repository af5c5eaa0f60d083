package server

import "errors"

// errSubmitUnsupported is wrapped into the ServiceError returned when
// a binding exposes submission but the node lacks the capability.
var errSubmitUnsupported = errors.New("node does not accept transaction submissions")
