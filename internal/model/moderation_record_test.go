package model

import (
	"testing"
	"time"
)

func TestNoteLine(t *testing.T) {
	at := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

	approve := &ModerationRecord{Actor: "alice", Action: "approve", CreatedAt: at}
	want := "\n2026-03-15T10:30:00Z: 管理员 alice 批准发布"
	if got := approve.NoteLine(); got != want {
		t.Errorf("NoteLine() = %q, want %q", got, want)
	}

	reject := &ModerationRecord{Actor: "bob", Action: "reject", Reason: "内容不符合社区规范", CreatedAt: at}
	want = "\n2026-03-15T10:30:00Z: 管理员 bob 拒绝发布 - 内容不符合社区规范"
	if got := reject.NoteLine(); got != want {
		t.Errorf("NoteLine() = %q, want %q", got, want)
	}

	rejectNoReason := &ModerationRecord{Actor: "bob", Action: "reject", CreatedAt: at}
	want = "\n2026-03-15T10:30:00Z: 管理员 bob 拒绝发布"
	if got := rejectNoReason.NoteLine(); got != want {
		t.Errorf("NoteLine() = %q, want %q", got, want)
	}
}
