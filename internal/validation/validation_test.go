package validation

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type employeeRequest struct {
	Name        string `json:"name" binding:"required,personname"`
	DOB         string `json:"dob" binding:"required,datetime=2006-01-02,pastdate"`
	Role        string `json:"role" binding:"notblank"`
	PhoneNumber int64  `json:"phoneNumber" binding:"required,min=1000000000,max=9999999999"`
	Version     string `json:"version" binding:"required,semver"`
}

func bind(t *testing.T, body string) map[string]string {
	t.Helper()
	gin.SetMode(gin.TestMode)
	Register()

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var req employeeRequest
	err := c.ShouldBindJSON(&req)
	if err == nil {
		return nil
	}
	return FieldErrors(err)
}

func TestFieldErrors_ValidRequest(t *testing.T) {
	fields := bind(t, `{"name":"Ada Lovelace","dob":"1990-12-10","role":"Engineer","phoneNumber":9876543210,"version":"1.2.3"}`)
	assert.Nil(t, fields)
}

func TestFieldErrors_ListsEveryField(t *testing.T) {
	fields := bind(t, `{"name":"Ada  9","dob":"2999-01-01","role":"   ","phoneNumber":12345,"version":"1.2"}`)
	require.NotNil(t, fields)

	assert.Equal(t, "Name should be alphabets", fields["name"])
	assert.Equal(t, "Date should not be in future", fields["dob"])
	assert.Equal(t, "Role should not be blank", fields["role"])
	assert.Equal(t, "PhoneNumber should be at least 1000000000", fields["phoneNumber"])
	assert.Equal(t, "Version should be in major.minor.patch format", fields["version"])
}

func TestFieldErrors_BadDateFormat(t *testing.T) {
	fields := bind(t, `{"name":"Ada","dob":"10/12/1990","role":"Engineer","phoneNumber":9876543210,"version":"1.2.3"}`)
	assert.Equal(t, "Dob should be a date in YYYY-MM-DD format", fields["dob"])
}

func TestFieldErrors_TypeMismatch(t *testing.T) {
	fields := bind(t, `{"name":"Ada","dob":"1990-12-10","role":"Engineer","phoneNumber":"call me","version":"1.2.3"}`)
	assert.Equal(t, "PhoneNumber should be of type int64", fields["phoneNumber"])
}

func TestFieldErrors_MalformedBody(t *testing.T) {
	fields := bind(t, `{"name":`)
	assert.Contains(t, fields, BodyField)
}

func TestPastDate_AcceptsToday(t *testing.T) {
	original := now
	t.Cleanup(func() { now = original })
	now = func() time.Time { return time.Date(2024, time.March, 1, 15, 0, 0, 0, time.UTC) }

	assert.Nil(t, bind(t, `{"name":"Ada","dob":"2024-03-01","role":"Engineer","phoneNumber":9876543210,"version":"1.2.3"}`))
	fields := bind(t, `{"name":"Ada","dob":"2024-03-02","role":"Engineer","phoneNumber":9876543210,"version":"1.2.3"}`)
	assert.Equal(t, "Date should not be in future", fields["dob"])
}
