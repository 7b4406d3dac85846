package service

import (
	"errors"
	"fmt"

	"github.com/JosiephousPierre/SELab-final/pkg/timefmt"
)

// ErrTimeWindow marks a rejected meeting time window; the wrapped message
// carries the human-readable reason.
var ErrTimeWindow = errors.New("invalid time window")

// Institution teaching hours: meetings run between 7:30 AM and 8:00 PM.
const (
	minStartMinutes = 7*60 + 30
	maxEndMinutes   = 20 * 60
)

// ValidateTimeWindow checks that a proposed meeting window lies within
// teaching hours. Inputs are "H:MM AM/PM" strings.
func ValidateTimeWindow(startTime, endTime string) error {
	start, err := timefmt.Minutes(startTime)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTimeWindow, err)
	}
	end, err := timefmt.Minutes(endTime)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTimeWindow, err)
	}

	if start < minStartMinutes {
		return fmt.Errorf("%w: start time cannot be earlier than 07:30 AM", ErrTimeWindow)
	}
	if end > maxEndMinutes {
		return fmt.Errorf("%w: end time cannot be later than 08:00 PM", ErrTimeWindow)
	}
	if start >= end {
		return fmt.Errorf("%w: end time must be after start time", ErrTimeWindow)
	}

	return nil
}
