package utils

import (
	"github.com/google/uuid"
)

// ID prefixes per entity kind
const (
	PrefixPlayer       = "player"
	PrefixAuction      = "auction"
	PrefixBid          = "bid"
	PrefixAutoBid      = "autobid"
	PrefixNotification = "notif"
)

// GenerateID returns a new unique identifier string
func GenerateID() string {
	return uuid.New().String()
}

// NewID returns a unique identifier tagged with the entity prefix, e.g. "bid-<uuid>"
func NewID(prefix string) string {
	if prefix == "" {
		return GenerateID()
	}
	return prefix + "-" + GenerateID()
}
