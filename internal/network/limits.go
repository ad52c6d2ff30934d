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

package network

// In this file: API limits and their validation.

import (
	"errors"
	"fmt"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

// Limits contains the rate limits for calls to the Xplainable platform API.
type Limits struct {
	// PerMinute is the base number of requests per minute.
	PerMinute uint `json:"per_minute" validate:"required,gte=1,lte=6000"`
	// Boost is added to PerMinute to get the effective events per minute
	// value.
	Boost uint `json:"boost" validate:"lte=600"`
	// Burst is the allowed number of burst requests per second.
	Burst uint `json:"burst" validate:"required,gte=1,lte=100"`
}

// DefLimits are the default limits.  They are conservative enough not to
// trip the platform's server-side throttling on a free tier.
var DefLimits = Limits{
	PerMinute: 120,
	Boost:     0,
	Burst:     1,
}

var (
	validate   *validator.Validate
	translator ut.Translator
)

func init() {
	locale := en.New()
	translator, _ = ut.New(locale, locale).GetTranslator("en")
	validate = validator.New()
	if err := entranslations.RegisterDefaultTranslations(validate, translator); err != nil {
		panic(fmt.Sprintf("network: failed to register validator translations: %s", err))
	}
}

// ErrLimitsInvalid is returned when the limits fail validation.
var ErrLimitsInvalid = errors.New("limits validation failed")

// Validate checks that the limits are sane.  The returned error wraps
// ErrLimitsInvalid and carries human-readable details for each violated
// constraint.
func (l Limits) Validate() error {
	if err := validate.Struct(l); err != nil {
		var vErr validator.ValidationErrors
		if errors.As(err, &vErr) {
			return fmt.Errorf("%w: %v", ErrLimitsInvalid, translated(vErr))
		}
		return err
	}
	return nil
}

func translated(vErr validator.ValidationErrors) []string {
	msgs := make([]string, 0, len(vErr))
	for _, entry := range vErr {
		msgs = append(msgs, entry.Translate(translator))
	}
	return msgs
}

// Apply overwrites the current limits with the other limits, if the other
// limits are valid.
func (l *Limits) Apply(other Limits) error {
	if err := other.Validate(); err != nil {
		return err
	}
	*l = other
	return nil
}
