package validator

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/tridenda/talentlytica/internal/model"
)

func TestIsGradeChoice(t *testing.T) {
	valid := []string{"", "0", "5", "10"}
	invalid := []string{"-1", "11", "abc", "7.5", " 3"}
	for _, v := range valid {
		if !IsGradeChoice(v) {
			t.Errorf("IsGradeChoice(%q) = false, want true", v)
		}
	}
	for _, v := range invalid {
		if IsGradeChoice(v) {
			t.Errorf("IsGradeChoice(%q) = true, want false", v)
		}
	}
}

func bindRecorder(t *testing.T, body string) map[string]string {
	t.Helper()
	gin.SetMode(gin.TestMode)
	Setup()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPut, "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var req model.SetGradeRequest
	return Bind(c, &req)
}

func TestBindSetGradeRequest(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		if fields := bindRecorder(t, `{"student_id":1,"aspect_id":2,"value":"0"}`); fields != nil {
			t.Fatalf("Bind = %v, want nil", fields)
		}
	})

	t.Run("empty_value_clears", func(t *testing.T) {
		if fields := bindRecorder(t, `{"student_id":1,"aspect_id":2,"value":""}`); fields != nil {
			t.Fatalf("Bind = %v, want nil", fields)
		}
	})

	t.Run("out_of_range", func(t *testing.T) {
		fields := bindRecorder(t, `{"student_id":1,"aspect_id":2,"value":"11"}`)
		msg, ok := fields["value"]
		if !ok {
			t.Fatalf("Bind = %v, want value error", fields)
		}
		if !strings.Contains(msg, "0 to 10") {
			t.Fatalf("value message = %q", msg)
		}
	})

	t.Run("missing_ids", func(t *testing.T) {
		fields := bindRecorder(t, `{"value":"3"}`)
		if _, ok := fields["student_id"]; !ok {
			t.Fatalf("Bind = %v, want student_id error", fields)
		}
		if _, ok := fields["aspect_id"]; !ok {
			t.Fatalf("Bind = %v, want aspect_id error", fields)
		}
	})

	t.Run("malformed_json", func(t *testing.T) {
		fields := bindRecorder(t, `{`)
		if _, ok := fields["detail"]; !ok {
			t.Fatalf("Bind = %v, want detail", fields)
		}
	})
}
