package dto

// UserDTO 当前登录用户
type UserDTO struct {
	ID         uint64 `json:"id"`
	Username   string `json:"username"`
	Name       string `json:"name"`
	Avatar     string `json:"avatar"`
	TrustLevel int    `json:"trust_level"`
	IsStaff    bool   `json:"is_staff"`
	IsAdmin    bool   `json:"is_admin"`
}
