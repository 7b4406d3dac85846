package service

import (
	"errors"
	"fmt"

	"github.com/JosiephousPierre/SELab-final/internal/model"
	"github.com/JosiephousPierre/SELab-final/pkg/timefmt"
)

// ErrConflictCheck reports that conflict detection could not run to
// completion; bookings are refused rather than allowed through.
var ErrConflictCheck = errors.New("could not determine schedule conflicts")

// ConflictError describes the existing booking a proposed meeting collides
// with. Handlers surface its message verbatim in the 409 response.
type ConflictError struct {
	CourseCode  string
	Section     string
	Day         string
	SecondDay   *string
	StartTime   string
	EndTime     string
	LabRoomName string
	Status      string
}

func (e *ConflictError) Error() string {
	days := e.Day
	if e.SecondDay != nil && *e.SecondDay != "" {
		days += "/" + *e.SecondDay
	}
	return fmt.Sprintf("Schedule conflict detected with: %s (%s), on %s from %s to %s in %s (Status: %s)",
		e.CourseCode, e.Section, days, e.StartTime, e.EndTime, e.LabRoomName, e.Status)
}

// meeting is a proposed booking normalized for comparison: meeting days plus
// minute offsets for the window.
type meeting struct {
	days      []string
	start     int
	end       int
	excludeID int64
}

// newMeeting normalizes a proposed booking. Times must already have passed
// ValidateTimeWindow, so parse failures here are programming errors.
func newMeeting(day string, secondDay *string, startTime, endTime string, excludeID int64) (meeting, error) {
	start, err := timefmt.Minutes(startTime)
	if err != nil {
		return meeting{}, fmt.Errorf("%w: %v", ErrConflictCheck, err)
	}
	end, err := timefmt.Minutes(endTime)
	if err != nil {
		return meeting{}, fmt.Errorf("%w: %v", ErrConflictCheck, err)
	}

	days := []string{day}
	if secondDay != nil && *secondDay != "" && *secondDay != day {
		days = append(days, *secondDay)
	}
	return meeting{days: days, start: start, end: end, excludeID: excludeID}, nil
}

// findConflict scans existing bookings for one that shares a meeting day with
// the proposal and overlaps it in time. Back-to-back meetings do not collide.
// A stored row with an unreadable time makes the outcome undeterminable and
// fails the check.
func findConflict(existing []model.Schedule, m meeting) (*ConflictError, error) {
	for i := range existing {
		row := &existing[i]
		if row.ID == m.excludeID {
			continue
		}
		if !daysIntersect(m.days, row.Days()) {
			continue
		}

		start, err := timefmt.Minutes(row.StartTime)
		if err != nil {
			return nil, fmt.Errorf("%w: schedule %d: %v", ErrConflictCheck, row.ID, err)
		}
		end, err := timefmt.Minutes(row.EndTime)
		if err != nil {
			return nil, fmt.Errorf("%w: schedule %d: %v", ErrConflictCheck, row.ID, err)
		}

		if timefmt.Overlap(m.start, m.end, start, end) {
			roomName := ""
			if row.LabRoom != nil {
				roomName = row.LabRoom.Name
			}
			return &ConflictError{
				CourseCode:  row.CourseCode,
				Section:     row.Section,
				Day:         row.Day,
				SecondDay:   row.SecondDay,
				StartTime:   row.StartTime,
				EndTime:     row.EndTime,
				LabRoomName: roomName,
				Status:      row.Status,
			}, nil
		}
	}
	return nil, nil
}

func daysIntersect(a, b []string) bool {
	for _, da := range a {
		for _, db := range b {
			if da == db {
				return true
			}
		}
	}
	return false
}
