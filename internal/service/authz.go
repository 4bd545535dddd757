package service

import (
	"Camellia/internal/api/config"
)

// AdminChecker 管理员名单校验。
// 用户名或 linux.do 用户 ID 命中任意一个名单即为管理员。
type AdminChecker struct {
	usernames map[string]struct{}
	userIDs   map[uint64]struct{}
}

func NewAdminChecker() *AdminChecker {
	checker := &AdminChecker{
		usernames: make(map[string]struct{}),
		userIDs:   make(map[uint64]struct{}),
	}
	for _, name := range config.Cfg.Admin.Usernames {
		checker.usernames[name] = struct{}{}
	}
	for _, id := range config.Cfg.Admin.UserIDs {
		checker.userIDs[id] = struct{}{}
	}
	return checker
}

func (c *AdminChecker) IsAdmin(userID uint64, username string) bool {
	if _, ok := c.usernames[username]; ok {
		return true
	}
	_, ok := c.userIDs[userID]
	return ok
}
