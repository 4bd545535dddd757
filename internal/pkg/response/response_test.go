package response

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func TestErrorValidationNamesFields(t *testing.T) {
	gin.SetMode(gin.TestMode)

	type submitForm struct {
		Title string   `validate:"required"`
		Tags  []string `validate:"max=2"`
	}
	err := validator.New().Struct(&submitForm{Tags: []string{"a", "b", "c"}})
	if err == nil {
		t.Fatal("校验本应失败")
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	Error(c, err)

	body := w.Body.String()
	if !strings.Contains(body, `"code":400`) {
		t.Fatalf("响应体 = %q, 期望业务码 400", body)
	}
	// 逐字段给出失败原因，而不是笼统的参数错误
	for _, want := range []string{"Title", "required", "Tags", "max"} {
		if !strings.Contains(body, want) {
			t.Errorf("响应体 = %q, 缺少 %q", body, want)
		}
	}
}
