// Copyright (c) 2024-2026 Xplainable Pty Ltd and Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package network contains rate limit configuration and the limiter
// constructor for the Xplainable platform API.
package network

import (
	"time"

	"golang.org/x/time/rate"
)

// NewLimiter returns a throttler configured with l.  The resulting rate is
// (PerMinute + Boost) events per minute with a burst of l.Burst.
func NewLimiter(l Limits) *rate.Limiter {
	return rate.NewLimiter(rate.Every(every(l)), int(l.Burst))
}

func every(l Limits) time.Duration {
	return time.Minute / time.Duration(l.PerMinute+l.Boost)
}
