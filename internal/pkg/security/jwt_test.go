package security

import (
	"Camellia/internal/api/config"
	"strings"
	"testing"
)

func setupTestConfig() {
	config.Cfg = &config.Config{
		JWT: config.JWTConfig{
			Secret:      "test-secret",
			ExpireHours: 1,
		},
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	setupTestConfig()

	token, err := GenerateToken(42, "alice", 3, false, true)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}

	if claims.UserID != 42 || claims.Username != "alice" || claims.TrustLevel != 3 {
		t.Errorf("claims = %+v", claims)
	}
	if claims.IsStaff || !claims.IsAdmin {
		t.Errorf("claims 权限位 = staff:%v admin:%v", claims.IsStaff, claims.IsAdmin)
	}
}

func TestValidateTokenTampered(t *testing.T) {
	setupTestConfig()

	token, err := GenerateToken(1, "bob", 0, false, false)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if _, err = ValidateToken(token + "x"); err == nil {
		t.Errorf("ValidateToken() 篡改后的 token 应该失败")
	}

	if _, err = ValidateToken("not-a-token"); err == nil {
		t.Errorf("ValidateToken() 非法格式应该失败")
	}
}

func TestExtractSignature(t *testing.T) {
	setupTestConfig()

	token, err := GenerateToken(1, "bob", 0, false, false)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	signature, err := ExtractSignature(token)
	if err != nil {
		t.Fatalf("ExtractSignature() error = %v", err)
	}
	if signature == "" || !strings.HasSuffix(token, signature) {
		t.Errorf("签名 %q 与 token 不匹配", signature)
	}

	if _, err = ExtractSignature("a.b"); err == nil {
		t.Errorf("ExtractSignature() 段数不足应该失败")
	}
}
