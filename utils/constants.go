// File: utils/constants.go
package utils

import "time"

// RuleSnapshotKey is the Redis key holding the cached pricing-rule snapshot.
const RuleSnapshotKey = "pricing:rules:snapshot"

// DraftKeyPrefix is the prefix used for booking-wizard draft keys.
const DraftKeyPrefix = "draft:"

// DateLayout is the wire and storage format for calendar days.
const DateLayout = "2006-01-02"

// TimeLayout is the wire and storage format for scheduled start times.
const TimeLayout = "15:04"

// PingTimeout bounds connectivity checks against backing services.
const PingTimeout = 2 * time.Second
