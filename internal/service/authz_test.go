package service

import (
	"Camellia/internal/api/config"
	"testing"
)

func TestAdminChecker(t *testing.T) {
	config.Cfg = &config.Config{
		Admin: config.AdminConfig{
			Usernames: []string{"root_admin"},
			UserIDs:   []uint64{1001},
		},
	}
	checker := NewAdminChecker()

	if !checker.IsAdmin(5, "root_admin") {
		t.Errorf("用户名命中应为管理员")
	}
	if !checker.IsAdmin(1001, "whoever") {
		t.Errorf("用户 ID 命中应为管理员")
	}
	if checker.IsAdmin(5, "ordinary") {
		t.Errorf("均未命中不应为管理员")
	}
}

func TestAdminCheckerEmpty(t *testing.T) {
	config.Cfg = &config.Config{}
	checker := NewAdminChecker()

	if checker.IsAdmin(1, "anyone") {
		t.Errorf("空名单不应产生管理员")
	}
}
