package service

import (
	"context"
	"errors"
	"testing"

	"github.com/JosiephousPierre/SELab-final/internal/dto"
	"github.com/JosiephousPierre/SELab-final/internal/model"
)

func TestSystemSettingService_Get_NotFound(t *testing.T) {
	env := newTestEnv()

	_, err := env.svc.SystemSetting.Get(context.Background(), "nonexistent")
	if !errors.Is(err, ErrSettingNotFound) {
		t.Errorf("expected ErrSettingNotFound, got: %v", err)
	}
}

func TestSystemSettingService_Update(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	resp, err := env.svc.SystemSetting.Update(ctx, "maintenance_mode", &dto.UpdateSystemSettingRequest{
		SettingValue: "off",
	}, "admin-001")
	if err != nil {
		t.Fatalf("Update should succeed: %v", err)
	}
	if resp.SettingValue != "off" {
		t.Errorf("unexpected value: %s", resp.SettingValue)
	}

	got, err := env.svc.SystemSetting.Get(ctx, "maintenance_mode")
	if err != nil {
		t.Fatalf("Get should succeed after Update: %v", err)
	}
	if got.SettingValue != "off" {
		t.Errorf("setting not persisted, got %s", got.SettingValue)
	}
}

func TestSystemSettingService_CurrentDisplaySemester_FromSetting(t *testing.T) {
	env := newTestEnv()
	env.semesters.add("1st Sem 2025-2026", true)
	sem := env.semesters.add("2nd Sem 2025-2026", true)
	env.settings.settings[model.SettingDisplaySemester] = &model.SystemSetting{
		Key:   model.SettingDisplaySemester,
		Value: "2",
	}

	resp, err := env.svc.SystemSetting.CurrentDisplaySemester(context.Background())
	if err != nil {
		t.Fatalf("CurrentDisplaySemester should succeed: %v", err)
	}
	if resp.SemesterID != sem.ID {
		t.Errorf("expected semester %d, got %d", sem.ID, resp.SemesterID)
	}
	if resp.SemesterName != "2nd Sem 2025-2026" {
		t.Errorf("unexpected name: %s", resp.SemesterName)
	}
}

func TestSystemSettingService_CurrentDisplaySemester_MissingSettingFallsBack(t *testing.T) {
	env := newTestEnv()
	env.semesters.add("1st Sem 2025-2026", false)
	active := env.semesters.add("2nd Sem 2025-2026", true)
	ctx := context.Background()

	resp, err := env.svc.SystemSetting.CurrentDisplaySemester(ctx)
	if err != nil {
		t.Fatalf("CurrentDisplaySemester should succeed: %v", err)
	}
	if resp.SemesterID != active.ID {
		t.Errorf("expected lowest-id active semester %d, got %d", active.ID, resp.SemesterID)
	}

	// fallback must be written back
	setting, err := env.settings.Get(ctx, model.SettingDisplaySemester)
	if err != nil {
		t.Fatalf("repaired setting should exist: %v", err)
	}
	if setting.Value != "2" {
		t.Errorf("expected repaired value 2, got %s", setting.Value)
	}
}

func TestSystemSettingService_CurrentDisplaySemester_DanglingSettingRepaired(t *testing.T) {
	env := newTestEnv()
	sem := env.semesters.add("1st Sem 2025-2026", true)
	env.settings.settings[model.SettingDisplaySemester] = &model.SystemSetting{
		Key:   model.SettingDisplaySemester,
		Value: "999",
	}
	ctx := context.Background()

	resp, err := env.svc.SystemSetting.CurrentDisplaySemester(ctx)
	if err != nil {
		t.Fatalf("CurrentDisplaySemester should succeed: %v", err)
	}
	if resp.SemesterID != sem.ID {
		t.Errorf("expected fallback semester %d, got %d", sem.ID, resp.SemesterID)
	}

	setting, _ := env.settings.Get(ctx, model.SettingDisplaySemester)
	if setting.Value != "1" {
		t.Errorf("dangling setting should be repaired to 1, got %s", setting.Value)
	}
}

func TestSystemSettingService_CurrentDisplaySemester_NoInactiveFallback(t *testing.T) {
	env := newTestEnv()
	first := env.semesters.add("1st Sem 2025-2026", false)
	env.semesters.add("2nd Sem 2025-2026", false)

	resp, err := env.svc.SystemSetting.CurrentDisplaySemester(context.Background())
	if err != nil {
		t.Fatalf("CurrentDisplaySemester should succeed: %v", err)
	}
	if resp.SemesterID != first.ID {
		t.Errorf("with no active semester the lowest id wins, got %d", resp.SemesterID)
	}
}

func TestSystemSettingService_CurrentDisplaySemester_NoSemesters(t *testing.T) {
	env := newTestEnv()

	_, err := env.svc.SystemSetting.CurrentDisplaySemester(context.Background())
	if !errors.Is(err, ErrNoSemesters) {
		t.Errorf("expected ErrNoSemesters, got: %v", err)
	}
}

func TestSystemSettingService_PromoteDisplaySemester(t *testing.T) {
	env := newTestEnv()
	env.semesters.add("1st Sem 2025-2026", true)
	ctx := context.Background()

	wasCurrent, err := env.svc.SystemSetting.PromoteDisplaySemester(ctx, 1)
	if err != nil {
		t.Fatalf("Promote should succeed: %v", err)
	}
	if wasCurrent {
		t.Error("first promotion must report wasCurrent=false")
	}

	wasCurrent, err = env.svc.SystemSetting.PromoteDisplaySemester(ctx, 1)
	if err != nil {
		t.Fatalf("second Promote should succeed: %v", err)
	}
	if !wasCurrent {
		t.Error("repeat promotion must report wasCurrent=true")
	}

	setting, _ := env.settings.Get(ctx, model.SettingDisplaySemester)
	if setting.Value != "1" {
		t.Errorf("expected display semester 1, got %s", setting.Value)
	}
}
