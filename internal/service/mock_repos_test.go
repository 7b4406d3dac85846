package service

import (
	"context"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/JosiephousPierre/SELab-final/internal/model"
)

// ── Mock ScheduleRepository ──

type mockScheduleRepo struct {
	schedules map[int64]*model.Schedule
	nextID    int64
}

func newMockScheduleRepo() *mockScheduleRepo {
	return &mockScheduleRepo{schedules: make(map[int64]*model.Schedule), nextID: 1}
}

func (m *mockScheduleRepo) Create(_ context.Context, schedule *model.Schedule) error {
	schedule.ID = m.nextID
	m.nextID++
	now := time.Now()
	schedule.CreatedAt = now
	schedule.UpdatedAt = now
	cp := *schedule
	m.schedules[schedule.ID] = &cp
	return nil
}

func (m *mockScheduleRepo) GetByID(_ context.Context, id int64) (*model.Schedule, error) {
	if s, ok := m.schedules[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockScheduleRepo) List(_ context.Context, semesterID int64) ([]model.Schedule, error) {
	var result []model.Schedule
	for _, s := range m.schedules {
		if semesterID > 0 && s.SemesterID != semesterID {
			continue
		}
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockScheduleRepo) ListByStatus(_ context.Context, status string) ([]model.Schedule, error) {
	var result []model.Schedule
	for _, s := range m.schedules {
		if s.Status == status {
			result = append(result, *s)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockScheduleRepo) ListBySemesterRoom(_ context.Context, semesterID, labRoomID int64) ([]model.Schedule, error) {
	var result []model.Schedule
	for _, s := range m.schedules {
		if s.SemesterID == semesterID && s.LabRoomID == labRoomID {
			result = append(result, *s)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockScheduleRepo) Update(_ context.Context, schedule *model.Schedule) error {
	existing, ok := m.schedules[schedule.ID]
	if !ok {
		return nil
	}
	cp := *schedule
	cp.Status = existing.Status
	cp.CreatedAt = existing.CreatedAt
	cp.UpdatedAt = time.Now()
	m.schedules[schedule.ID] = &cp
	return nil
}

func (m *mockScheduleRepo) UpdateStatus(_ context.Context, id int64, status string) (int64, error) {
	s, ok := m.schedules[id]
	if !ok {
		return 0, nil
	}
	s.Status = status
	s.UpdatedAt = time.Now()
	return 1, nil
}

func (m *mockScheduleRepo) CountByStatus(_ context.Context, semesterID int64, status string) (int64, error) {
	var count int64
	for _, s := range m.schedules {
		if s.SemesterID == semesterID && s.Status == status {
			count++
		}
	}
	return count, nil
}

func (m *mockScheduleRepo) CountApprovedExcept(_ context.Context, semesterID, exceptID int64) (int64, error) {
	var count int64
	for _, s := range m.schedules {
		if s.SemesterID == semesterID && s.Status == model.StatusApproved && s.ID != exceptID {
			count++
		}
	}
	return count, nil
}

func (m *mockScheduleRepo) CountRecentlyApproved(_ context.Context, semesterID, exceptID int64, window time.Duration) (int64, error) {
	cutoff := time.Now().Add(-window)
	var count int64
	for _, s := range m.schedules {
		if s.SemesterID == semesterID && s.Status == model.StatusApproved &&
			s.ID != exceptID && s.UpdatedAt.After(cutoff) {
			count++
		}
	}
	return count, nil
}

func (m *mockScheduleRepo) CountCourseUsage(_ context.Context, courseCode string, semesterID int64, section string, excludeID int64) (int64, error) {
	var count int64
	for _, s := range m.schedules {
		if s.CourseCode == courseCode && s.SemesterID == semesterID && s.Section == section {
			if excludeID > 0 && s.ID == excludeID {
				continue
			}
			count++
		}
	}
	return count, nil
}

func (m *mockScheduleRepo) ListUsedCourses(_ context.Context, semesterID int64, section string, excludeID int64) ([]model.Schedule, error) {
	var result []model.Schedule
	for _, s := range m.schedules {
		if s.SemesterID != semesterID {
			continue
		}
		if section != "" && s.Section != section {
			continue
		}
		if excludeID > 0 && s.ID == excludeID {
			continue
		}
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockScheduleRepo) Delete(_ context.Context, id int64) (int64, error) {
	if _, ok := m.schedules[id]; !ok {
		return 0, nil
	}
	delete(m.schedules, id)
	return 1, nil
}

func (m *mockScheduleRepo) DeleteAll(_ context.Context) (int64, error) {
	n := int64(len(m.schedules))
	m.schedules = make(map[int64]*model.Schedule)
	return n, nil
}

func (m *mockScheduleRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.schedules)), nil
}

// ── Mock SemesterRepository ──

type mockSemesterRepo struct {
	semesters map[int64]*model.Semester
	nextID    int64
}

func newMockSemesterRepo() *mockSemesterRepo {
	return &mockSemesterRepo{semesters: make(map[int64]*model.Semester), nextID: 1}
}

func (m *mockSemesterRepo) add(name string, active bool) *model.Semester {
	sem := &model.Semester{ID: m.nextID, Name: name, IsActive: active, CreatedAt: time.Now()}
	m.semesters[sem.ID] = sem
	m.nextID++
	return sem
}

func (m *mockSemesterRepo) Create(_ context.Context, semester *model.Semester) error {
	semester.ID = m.nextID
	m.nextID++
	semester.CreatedAt = time.Now()
	cp := *semester
	m.semesters[semester.ID] = &cp
	return nil
}

func (m *mockSemesterRepo) GetByID(_ context.Context, id int64) (*model.Semester, error) {
	if s, ok := m.semesters[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSemesterRepo) List(_ context.Context) ([]model.Semester, error) {
	var result []model.Semester
	for _, s := range m.semesters {
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockSemesterRepo) ListByNames(_ context.Context, names []string) ([]model.Semester, error) {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	var result []model.Semester
	for _, s := range m.semesters {
		if want[s.Name] {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (m *mockSemesterRepo) FirstActive(_ context.Context) (*model.Semester, error) {
	var best *model.Semester
	for _, s := range m.semesters {
		if !s.IsActive {
			continue
		}
		if best == nil || s.ID < best.ID {
			best = s
		}
	}
	if best == nil {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *best
	return &cp, nil
}

func (m *mockSemesterRepo) First(_ context.Context) (*model.Semester, error) {
	var best *model.Semester
	for _, s := range m.semesters {
		if best == nil || s.ID < best.ID {
			best = s
		}
	}
	if best == nil {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *best
	return &cp, nil
}

// ── Mock LabRoomRepository ──

type mockLabRoomRepo struct {
	rooms map[int64]*model.LabRoom
}

func newMockLabRoomRepo() *mockLabRoomRepo {
	return &mockLabRoomRepo{rooms: make(map[int64]*model.LabRoom)}
}

func (m *mockLabRoomRepo) add(id int64, name string) *model.LabRoom {
	room := &model.LabRoom{ID: id, Name: name, CreatedAt: time.Now()}
	m.rooms[id] = room
	return room
}

func (m *mockLabRoomRepo) GetByID(_ context.Context, id int64) (*model.LabRoom, error) {
	if r, ok := m.rooms[id]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockLabRoomRepo) List(_ context.Context) ([]model.LabRoom, error) {
	var result []model.LabRoom
	for _, r := range m.rooms {
		result = append(result, *r)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// ── Mock SystemSettingRepository ──

type mockSystemSettingRepo struct {
	settings map[string]*model.SystemSetting
}

func newMockSystemSettingRepo() *mockSystemSettingRepo {
	return &mockSystemSettingRepo{settings: make(map[string]*model.SystemSetting)}
}

func (m *mockSystemSettingRepo) Get(_ context.Context, key string) (*model.SystemSetting, error) {
	if s, ok := m.settings[key]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSystemSettingRepo) Upsert(_ context.Context, setting *model.SystemSetting) error {
	setting.UpdatedAt = time.Now()
	cp := *setting
	m.settings[setting.Key] = &cp
	return nil
}

// ── Mock NotificationRepository ──

type mockNotificationRepo struct {
	notifications     []*model.Notification
	userNotifications []*model.UserNotification
	nextID            int64
}

func newMockNotificationRepo() *mockNotificationRepo {
	return &mockNotificationRepo{nextID: 1}
}

func (m *mockNotificationRepo) Create(_ context.Context, n *model.Notification) error {
	n.ID = m.nextID
	m.nextID++
	n.CreatedAt = time.Now()
	cp := *n
	m.notifications = append(m.notifications, &cp)
	return nil
}

func (m *mockNotificationRepo) CreateUserNotification(_ context.Context, un *model.UserNotification) error {
	un.ID = int64(len(m.userNotifications) + 1)
	un.CreatedAt = time.Now()
	cp := *un
	m.userNotifications = append(m.userNotifications, &cp)
	return nil
}

func (m *mockNotificationRepo) FindRecentByMessage(_ context.Context, title, message string, window time.Duration) (*model.Notification, error) {
	cutoff := time.Now().Add(-window)
	for i := len(m.notifications) - 1; i >= 0; i-- {
		n := m.notifications[i]
		if n.Title == title && n.Message == message && n.CreatedAt.After(cutoff) {
			cp := *n
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockNotificationRepo) FindRecentRelated(_ context.Context, title, relatedTo string, relatedID int64, window time.Duration) (*model.Notification, error) {
	cutoff := time.Now().Add(-window)
	for i := len(m.notifications) - 1; i >= 0; i-- {
		n := m.notifications[i]
		if n.Title != title || !n.CreatedAt.After(cutoff) {
			continue
		}
		if n.RelatedTo == nil || *n.RelatedTo != relatedTo {
			continue
		}
		if n.RelatedID == nil || *n.RelatedID != relatedID {
			continue
		}
		cp := *n
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock AuditLogRepository ──

type mockAuditLogRepo struct {
	entries []*model.AuditLog
}

func newMockAuditLogRepo() *mockAuditLogRepo {
	return &mockAuditLogRepo{}
}

func (m *mockAuditLogRepo) Create(_ context.Context, entry *model.AuditLog) error {
	entry.ID = int64(len(m.entries) + 1)
	entry.CreatedAt = time.Now()
	cp := *entry
	m.entries = append(m.entries, &cp)
	return nil
}

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) add(id, name, role string) *model.User {
	user := &model.User{ID: id, FullName: name, Role: role, CreatedAt: time.Now()}
	m.users[id] = user
	return user
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) FirstByRole(_ context.Context, role string) (*model.User, error) {
	var ids []string
	for id, u := range m.users {
		if u.Role == role {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	sort.Strings(ids)
	cp := *m.users[ids[0]]
	return &cp, nil
}
