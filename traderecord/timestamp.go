// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian FX Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package traderecord

import (
	"time"
)

// TimeStamp - a point in time as nanoseconds since the Unix epoch
//
// encoded on the wire as a fixed width integer; comparison is plain
// integer comparison
type TimeStamp int64

// Now - the current wall-clock time
func Now() TimeStamp {
	return TimeStamp(time.Now().UnixNano())
}

// Date - midnight UTC on the given calendar day
func Date(year int, month time.Month, day int) TimeStamp {
	return TimeStamp(time.Date(year, month, day, 0, 0, 0, 0, time.UTC).UnixNano())
}

// Time - convert to the standard library representation
func (timestamp TimeStamp) Time() time.Time {
	return time.Unix(0, int64(timestamp)).UTC()
}

// String - RFC 3339 form for display and logs
func (timestamp TimeStamp) String() string {
	return timestamp.Time().Format(time.RFC3339Nano)
}
