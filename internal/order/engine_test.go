package order

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

// ============================================================
// Start
// ============================================================

func TestStart(t *testing.T) {
	o := Start("4711", at(0))
	if o.ID == uuid.Nil {
		t.Fatal("expected a generated id")
	}
	if o.Number != "4711" {
		t.Fatalf("expected number 4711, got %q", o.Number)
	}
	if !o.Running || o.InSetup || o.Finished {
		t.Fatalf("fresh order should be running only: %+v", o)
	}
	if o.StartTime == nil || !o.StartTime.Equal(at(0)) {
		t.Fatal("start time should be stamped")
	}
	if o.LastResumeAt == nil || !o.LastResumeAt.Equal(at(0)) {
		t.Fatal("resume marker should be stamped")
	}
	if o.SetupSeconds != 0 || o.PauseSeconds != 0 {
		t.Fatal("accruals should start at zero")
	}
}

// ============================================================
// TogglePause
// ============================================================

func TestTogglePauseIsAToggle(t *testing.T) {
	o := Start("4711", at(0))
	p := TogglePause(o, at(10))
	if p.Running {
		t.Fatal("should be paused")
	}
	if !p.Paused() {
		t.Fatal("Paused() should report the live pause")
	}
	if p.LastResumeAt != nil {
		t.Fatal("resume marker must clear on pause")
	}
	if p.LastPauseStartAt == nil {
		t.Fatal("pause marker must open on pause")
	}

	r := TogglePause(p, at(40))
	if !r.Running {
		t.Fatal("should be running again")
	}
	if r.LastPauseStartAt != nil {
		t.Fatal("pause marker must clear on resume")
	}
	if r.PauseSeconds != 30 {
		t.Fatalf("expected 30s pause booked, got %d", r.PauseSeconds)
	}
	if r.PauseSeconds < p.PauseSeconds {
		t.Fatal("accruals must not shrink")
	}
}

func TestTogglePauseFromSetupBooksSetup(t *testing.T) {
	o := Start("4711", at(0))
	o = ToggleSetup(o, at(5))
	o = TogglePause(o, at(25))
	if o.SetupSeconds != 20 {
		t.Fatalf("expected 20s setup booked, got %d", o.SetupSeconds)
	}
	if o.InSetup {
		t.Fatal("setup flag must clear when pausing")
	}
	if o.LastPauseStartAt == nil {
		t.Fatal("pause interval must open so the break is accounted for")
	}
}

func TestTogglePauseGuardedWhenFinished(t *testing.T) {
	o := Start("4711", at(0))
	o = Finish(o, at(50))
	got := TogglePause(o, at(60))
	if got != o {
		t.Fatal("togglePause on a finished order must be a no-op")
	}
}

func TestTogglePauseAllowedWhenEditable(t *testing.T) {
	o := Start("4711", at(0))
	o = Finish(o, at(50))
	o = SetEditable(o, true)
	got := TogglePause(o, at(60))
	if !got.Running {
		t.Fatal("editable finished order should resume")
	}
}

func TestTogglePauseDefensiveStartTime(t *testing.T) {
	// A record without a start (e.g. hand-edited) gets one on resume.
	o := Order{ID: Start("x", at(0)).ID, Number: "x"}
	got := TogglePause(o, at(30))
	if got.StartTime == nil || !got.StartTime.Equal(at(30)) {
		t.Fatal("resume should backfill a missing start time")
	}
}

// ============================================================
// ToggleSetup
// ============================================================

func TestToggleSetupOnlyWhileRunning(t *testing.T) {
	o := Start("4711", at(0))
	o = TogglePause(o, at(10))
	got := ToggleSetup(o, at(20))
	if got != o {
		t.Fatal("toggleSetup while paused must be a no-op")
	}
}

func TestToggleSetupBooksOnExit(t *testing.T) {
	o := Start("4711", at(0))
	o = ToggleSetup(o, at(5))
	if !o.InSetup {
		t.Fatal("should be in setup")
	}
	if o.LastResumeAt == nil || !o.LastResumeAt.Equal(at(5)) {
		t.Fatal("entering setup restarts the resume marker")
	}

	o = ToggleSetup(o, at(25))
	if o.InSetup {
		t.Fatal("should have left setup")
	}
	if o.SetupSeconds != 20 {
		t.Fatalf("expected 20s booked, got %d", o.SetupSeconds)
	}
	if o.LastResumeAt == nil || !o.LastResumeAt.Equal(at(25)) {
		t.Fatal("leaving setup starts a fresh work interval")
	}
}

// ============================================================
// Finish
// ============================================================

func TestFinishSealsOrder(t *testing.T) {
	o := Start("4711", at(0))
	o = Finish(o, at(100))
	if o.Running || !o.Finished || o.Editable {
		t.Fatalf("unexpected flags after finish: %+v", o)
	}
	if o.EndTime == nil || !o.EndTime.Equal(at(100)) {
		t.Fatal("end time should be stamped")
	}
	if o.LastResumeAt != nil || o.LastPauseStartAt != nil {
		t.Fatal("no open interval may survive finishing")
	}
}

func TestFinishBooksOpenSetup(t *testing.T) {
	o := Start("4711", at(0))
	o = ToggleSetup(o, at(10))
	o = Finish(o, at(35))
	if o.SetupSeconds != 25 {
		t.Fatalf("expected 25s setup booked on finish, got %d", o.SetupSeconds)
	}
	if o.InSetup {
		t.Fatal("setup flag must clear on finish")
	}
}

func TestFinishBooksOpenPause(t *testing.T) {
	o := Start("4711", at(0))
	o = TogglePause(o, at(10))
	o = Finish(o, at(60))
	if o.PauseSeconds != 50 {
		t.Fatalf("expected 50s pause booked on finish, got %d", o.PauseSeconds)
	}
}

func TestFinishIdempotent(t *testing.T) {
	o := Start("4711", at(0))
	o = Finish(o, at(100))
	again := Finish(o, at(999))
	if again != o {
		t.Fatal("finishing a finished, non-editable order must change nothing")
	}
}

func TestFinishAfterEditableCorrection(t *testing.T) {
	o := Start("4711", at(0))
	o = Finish(o, at(100))
	o = SetEditable(o, true)
	o = TogglePause(o, at(200)) // re-enter running
	o = Finish(o, at(300))
	if !o.Finished || o.Editable {
		t.Fatal("re-finishing should seal and drop editability")
	}
	if !o.EndTime.Equal(at(300)) {
		t.Fatal("end time should move to the new finish")
	}
}

// ============================================================
// Field edits
// ============================================================

func TestWithCountsFloorAtZero(t *testing.T) {
	o := WithGoodCount(Order{}, -3)
	o = WithBadCount(o, -1)
	if o.GoodCount != 0 || o.BadCount != 0 {
		t.Fatalf("counts must not go negative: %+v", o)
	}
}

func TestWithMinutesConvert(t *testing.T) {
	o := WithSetupMinutes(Order{}, 15)
	o = WithPauseMinutes(o, 3)
	if o.SetupSeconds != 900 {
		t.Fatalf("expected 900s setup, got %d", o.SetupSeconds)
	}
	if o.PauseSeconds != 180 {
		t.Fatalf("expected 180s pause, got %d", o.PauseSeconds)
	}
}

func TestWithStartClockKeepsDate(t *testing.T) {
	o := Start("4711", time.Date(2025, 3, 10, 8, 30, 0, 0, time.Local))
	o = WithStartClock(o, 6, 45)
	want := time.Date(2025, 3, 10, 6, 45, 0, 0, time.Local)
	if !o.StartTime.Equal(want) {
		t.Fatalf("expected %v, got %v", want, o.StartTime)
	}
}

func TestWithEndClockOnUnfinished(t *testing.T) {
	o := Start("4711", time.Date(2025, 3, 10, 8, 30, 0, 0, time.Local))
	o = WithEndClock(o, 16, 0)
	want := time.Date(2025, 3, 10, 16, 0, 0, 0, time.Local)
	if o.EndTime == nil || !o.EndTime.Equal(want) {
		t.Fatalf("expected %v, got %v", want, o.EndTime)
	}
}

func TestWithDateShiftsTimes(t *testing.T) {
	start := time.Date(2025, 3, 10, 8, 30, 0, 0, time.Local)
	o := Start("4711", start)
	o = Finish(o, start.Add(2*time.Hour))

	o = WithDate(o, time.Date(2025, 3, 14, 23, 0, 0, 0, time.Local))
	if o.Date.Day() != 14 {
		t.Fatalf("expected date moved to the 14th, got %v", o.Date)
	}
	wantStart := time.Date(2025, 3, 14, 8, 30, 0, 0, time.Local)
	if !o.StartTime.Equal(wantStart) {
		t.Fatalf("start should shift by the day delta: got %v", o.StartTime)
	}
	if !o.EndTime.Equal(wantStart.Add(2 * time.Hour)) {
		t.Fatalf("end should shift by the same delta: got %v", o.EndTime)
	}
}
