package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/JosiephousPierre/SELab-final/internal/model"
	"github.com/JosiephousPierre/SELab-final/internal/repository"
	"github.com/JosiephousPierre/SELab-final/pkg/timefmt"
)

var (
	ErrExportNoSchedules  = errors.New("no approved schedules for this semester")
	ErrExportGenerateFail = errors.New("failed to generate export file")
)

const exportTimezone = "Asia/Manila"

// ExportService renders a semester's approved schedule as a downloadable
// Excel workbook or an iCalendar feed.
type ExportService interface {
	// Xlsx returns the workbook contents and a suggested filename.
	Xlsx(ctx context.Context, semesterID int64) (*bytes.Buffer, string, error)
	// ICS returns the serialized calendar and a suggested filename.
	ICS(ctx context.Context, semesterID int64) (string, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService creates the export service.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// approvedSchedules loads the semester's approved rows sorted by weekday then
// start time.
func (s *exportService) approvedSchedules(ctx context.Context, semesterID int64) (*model.Semester, []model.Schedule, error) {
	sem, err := s.repo.Semester.GetByID(ctx, semesterID)
	if err != nil {
		if isNotFound(err) {
			return nil, nil, ErrSemesterNotFound
		}
		return nil, nil, err
	}

	all, err := s.repo.Schedule.List(ctx, semesterID)
	if err != nil {
		return nil, nil, err
	}

	var approved []model.Schedule
	for _, row := range all {
		if row.Status == model.StatusApproved {
			approved = append(approved, row)
		}
	}
	if len(approved) == 0 {
		return nil, nil, ErrExportNoSchedules
	}

	sort.SliceStable(approved, func(i, j int) bool {
		di, dj := dayOrder(approved[i].Day), dayOrder(approved[j].Day)
		if di != dj {
			return di < dj
		}
		mi, ei := timefmt.Minutes(approved[i].StartTime)
		mj, ej := timefmt.Minutes(approved[j].StartTime)
		if ei != nil || ej != nil {
			return approved[i].StartTime < approved[j].StartTime
		}
		return mi < mj
	})

	return sem, approved, nil
}

func (s *exportService) Xlsx(ctx context.Context, semesterID int64) (*bytes.Buffer, string, error) {
	sem, schedules, err := s.approvedSchedules(ctx, semesterID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Schedule"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 12)
	f.SetColWidth(sheetName, "B", "B", 20)
	f.SetColWidth(sheetName, "C", "D", 16)
	f.SetColWidth(sheetName, "E", "E", 30)
	f.SetColWidth(sheetName, "F", "H", 18)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	f.SetCellValue(sheetName, "A1", fmt.Sprintf("%s - Lab Schedule", sem.Name))
	f.MergeCell(sheetName, "A1", "H1")
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	headers := []string{"Day", "Time", "Course Code", "Section", "Course Name", "Lab Room", "Instructor", "Class Type"}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheetName, fmt.Sprintf("%s2", col), h)
		f.SetCellStyle(sheetName, fmt.Sprintf("%s2", col), fmt.Sprintf("%s2", col), headerStyle)
	}

	row := 3
	for i := range schedules {
		sched := &schedules[i]
		days := strings.Join(sched.Days(), "/")
		roomName := ""
		if sched.LabRoom != nil {
			roomName = sched.LabRoom.Name
		}

		values := []interface{}{
			days,
			fmt.Sprintf("%s - %s", sched.StartTime, sched.EndTime),
			sched.CourseCode,
			sched.Section,
			sched.CourseName,
			roomName,
			sched.InstructorName,
			sched.ClassType,
		}
		for c, v := range values {
			col, _ := excelize.ColumnNumberToName(c + 1)
			f.SetCellValue(sheetName, fmt.Sprintf("%s%d", col, row), v)
		}
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("excel export failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("schedule_%s.xlsx", sanitizeFilename(sem.Name))
	return buf, filename, nil
}

func (s *exportService) ICS(ctx context.Context, semesterID int64) (string, string, error) {
	sem, schedules, err := s.approvedSchedules(ctx, semesterID)
	if err != nil {
		return "", "", err
	}

	loc, err := time.LoadLocation(exportTimezone)
	if err != nil {
		loc = time.UTC
	}
	now := time.Now().In(loc)

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//SELab//Lab Schedule//EN")

	for i := range schedules {
		sched := &schedules[i]

		start, serr := timefmt.Minutes(sched.StartTime)
		end, eerr := timefmt.Minutes(sched.EndTime)
		if serr != nil || eerr != nil {
			s.logger.Warn("ics export skipped row with unreadable time",
				zap.Int64("id", sched.ID))
			continue
		}

		for _, day := range sched.Days() {
			wd, ok := weekdayByName[day]
			if !ok {
				continue
			}

			first := nextWeekday(now, wd)
			dtStart := time.Date(first.Year(), first.Month(), first.Day(), start/60, start%60, 0, 0, loc)
			dtEnd := time.Date(first.Year(), first.Month(), first.Day(), end/60, end%60, 0, 0, loc)

			evt := cal.AddEvent(fmt.Sprintf("schedule-%d-%s@selab", sched.ID, strings.ToLower(day)))
			evt.SetDtStampTime(now)
			evt.SetStartAt(dtStart)
			evt.SetEndAt(dtEnd)
			evt.SetSummary(fmt.Sprintf("%s %s", sched.CourseCode, sched.Section))
			evt.SetDescription(fmt.Sprintf("%s - %s", sched.CourseName, sched.InstructorName))
			if sched.LabRoom != nil {
				evt.SetLocation(sched.LabRoom.Name)
			}
			evt.AddRrule(fmt.Sprintf("FREQ=WEEKLY;BYDAY=%s", icsDayCodes[wd]))
		}
	}

	filename := fmt.Sprintf("schedule_%s.ics", sanitizeFilename(sem.Name))
	return cal.Serialize(), filename, nil
}

// ── helpers ──

var weekdayByName = map[string]time.Weekday{
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
	"Saturday":  time.Saturday,
	"Sunday":    time.Sunday,
}

var icsDayCodes = map[time.Weekday]string{
	time.Monday:    "MO",
	time.Tuesday:   "TU",
	time.Wednesday: "WE",
	time.Thursday:  "TH",
	time.Friday:    "FR",
	time.Saturday:  "SA",
	time.Sunday:    "SU",
}

// dayOrder maps a weekday name to its sort position, Monday first. Unknown
// names sort last.
func dayOrder(day string) int {
	if wd, ok := weekdayByName[day]; ok {
		if wd == time.Sunday {
			return 7
		}
		return int(wd)
	}
	return 8
}

// nextWeekday returns the next date on or after t that falls on wd.
func nextWeekday(t time.Time, wd time.Weekday) time.Time {
	days := (int(wd) - int(t.Weekday()) + 7) % 7
	return t.AddDate(0, 0, days)
}

func sanitizeFilename(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		case r == ' ':
			return '_'
		default:
			return -1
		}
	}, name)
}
