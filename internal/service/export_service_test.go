package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/JosiephousPierre/SELab-final/internal/model"
)

func seedApprovedSchedule(env *testEnv, id, semID int64, day, start, end string) {
	env.schedules.schedules[id] = &model.Schedule{
		ID:             id,
		SemesterID:     semID,
		Section:        "BSIT 3A",
		CourseCode:     "IT321",
		CourseName:     "Database Systems",
		Day:            day,
		LabRoomID:      1,
		InstructorName: "J. Cruz",
		StartTime:      start,
		EndTime:        end,
		ScheduleTypes:  model.StringList{"lecture"},
		ClassType:      "lec",
		Status:         model.StatusApproved,
		LabRoom:        &model.LabRoom{ID: 1, Name: "L201"},
	}
}

func TestExportService_Xlsx_NoSchedules(t *testing.T) {
	env := newTestEnv()
	sem := env.semesters.add("1st Sem 2025-2026", true)

	_, _, err := env.svc.Export.Xlsx(context.Background(), sem.ID)
	if !errors.Is(err, ErrExportNoSchedules) {
		t.Errorf("expected ErrExportNoSchedules, got: %v", err)
	}
}

func TestExportService_Xlsx_SemesterNotFound(t *testing.T) {
	env := newTestEnv()

	_, _, err := env.svc.Export.Xlsx(context.Background(), 999)
	if !errors.Is(err, ErrSemesterNotFound) {
		t.Errorf("expected ErrSemesterNotFound, got: %v", err)
	}
}

func TestExportService_Xlsx_Success(t *testing.T) {
	env := newTestEnv()
	sem := env.semesters.add("1st Sem 2025-2026", true)
	seedApprovedSchedule(env, 1, sem.ID, "Monday", "9:00 AM", "10:00 AM")

	buf, filename, err := env.svc.Export.Xlsx(context.Background(), sem.ID)
	if err != nil {
		t.Fatalf("Xlsx should succeed: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected non-empty workbook")
	}
	if filename != "schedule_1st_Sem_2025-2026.xlsx" {
		t.Errorf("unexpected filename: %s", filename)
	}
}

func TestExportService_Xlsx_SkipsDrafts(t *testing.T) {
	env := newTestEnv()
	sem := env.semesters.add("1st Sem 2025-2026", true)
	seedApprovedSchedule(env, 1, sem.ID, "Monday", "9:00 AM", "10:00 AM")
	env.schedules.schedules[1].Status = model.StatusDraft

	_, _, err := env.svc.Export.Xlsx(context.Background(), sem.ID)
	if !errors.Is(err, ErrExportNoSchedules) {
		t.Errorf("drafts must not export; expected ErrExportNoSchedules, got: %v", err)
	}
}

func TestExportService_ICS_Success(t *testing.T) {
	env := newTestEnv()
	sem := env.semesters.add("1st Sem 2025-2026", true)
	seedApprovedSchedule(env, 1, sem.ID, "Monday", "9:00 AM", "10:00 AM")

	content, filename, err := env.svc.Export.ICS(context.Background(), sem.ID)
	if err != nil {
		t.Fatalf("ICS should succeed: %v", err)
	}
	if filename != "schedule_1st_Sem_2025-2026.ics" {
		t.Errorf("unexpected filename: %s", filename)
	}
	for _, want := range []string{"BEGIN:VCALENDAR", "BEGIN:VEVENT", "IT321 BSIT 3A", "FREQ=WEEKLY;BYDAY=MO", "L201"} {
		if !strings.Contains(content, want) {
			t.Errorf("calendar missing %q", want)
		}
	}
}

func TestExportService_ICS_TwoDayMeetingGetsTwoEvents(t *testing.T) {
	env := newTestEnv()
	sem := env.semesters.add("1st Sem 2025-2026", true)
	seedApprovedSchedule(env, 1, sem.ID, "Monday", "9:00 AM", "10:00 AM")
	wed := "Wednesday"
	env.schedules.schedules[1].SecondDay = &wed

	content, _, err := env.svc.Export.ICS(context.Background(), sem.ID)
	if err != nil {
		t.Fatalf("ICS should succeed: %v", err)
	}
	if got := strings.Count(content, "BEGIN:VEVENT"); got != 2 {
		t.Errorf("expected 2 events for a two-day meeting, got %d", got)
	}
	if !strings.Contains(content, "BYDAY=WE") {
		t.Error("missing the second-day recurrence")
	}
}
