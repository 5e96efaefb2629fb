package model

import "errors"

// ErrMalformedInput is returned when caller-supplied order data violates a
// structural invariant: insert.Insert returns it for a package whose item
// list is empty or whose items disagree on OrderID, PickupFactory or
// DeliveryFactory.
var ErrMalformedInput = errors.New("model: malformed input")
