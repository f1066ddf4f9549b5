package utils

import (
	"strings"
	"time"

	"bm-admin/types"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jinzhu/now"
)

// GetClaims returns the decoded JWT claims attached by the auth middleware.
func GetClaims(c *fiber.Ctx) (jwt.MapClaims, bool) {
	claims, ok := c.Locals("user").(jwt.MapClaims)
	return claims, ok
}

// ClaimUint reads a numeric claim. JSON numbers decode as float64.
func ClaimUint(claims jwt.MapClaims, key string) (uint, bool) {
	v, ok := claims[key].(float64)
	if !ok || v <= 0 {
		return 0, false
	}
	return uint(v), true
}

// ClaimString reads a string claim.
func ClaimString(claims jwt.MapClaims, key string) (string, bool) {
	v, ok := claims[key].(string)
	return v, ok && v != ""
}

// DayRange returns the half-open [start, end) range covering the calendar
// day the given value falls on.
func DayRange(t time.Time) (time.Time, time.Time) {
	start := now.With(t).BeginningOfDay()
	return start, start.AddDate(0, 0, 1)
}

// MonthRange returns the half-open range covering one calendar month.
func MonthRange(year int, month int) (time.Time, time.Time) {
	start := now.With(time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)).BeginningOfMonth()
	return start, start.AddDate(0, 1, 0)
}

// YearRange returns the half-open range covering one calendar year.
func YearRange(year int) (time.Time, time.Time) {
	start := now.With(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)).BeginningOfYear()
	return start, start.AddDate(1, 0, 0)
}

// sanitizeRequestBody keeps bodies with embedded file content out of the logs.
func sanitizeRequestBody(c *fiber.Ctx) string {
	body := string(c.Body())
	if len(body) > 1000 && (strings.Contains(body, "data:image/") ||
		strings.Contains(body, "base64") ||
		isLikelyBase64(body)) {
		return "[LARGE_REQUEST_BODY_WITH_POSSIBLE_FILE_CONTENT]"
	}
	return body
}

// isLikelyBase64 detects if content looks like base64
func isLikelyBase64(content string) bool {
	if len(content) < 100 {
		return false
	}

	base64Chars := 0
	for _, char := range content {
		if (char >= 'A' && char <= 'Z') ||
			(char >= 'a' && char <= 'z') ||
			(char >= '0' && char <= '9') ||
			char == '+' || char == '/' || char == '=' {
			base64Chars++
		}
	}

	return float64(base64Chars)/float64(len(content)) > 0.8
}

// CreateSanitizedLogEntry creates a deep copied and sanitized log entry for
// logging. Copies guard against fasthttp buffer reuse after the handler
// returns.
func CreateSanitizedLogEntry(c *fiber.Ctx) types.LogEntry {
	method := string([]byte(c.Method()))
	url := string([]byte(c.OriginalURL()))
	requestBody := sanitizeRequestBody(c)
	responseBody := string(append([]byte(nil), c.Response().Body()...))

	requestHeaders := make([]byte, len(c.Request().Header.Header()))
	copy(requestHeaders, c.Request().Header.Header())

	responseHeaders := make([]byte, len(c.Response().Header.Header()))
	copy(responseHeaders, c.Response().Header.Header())

	return types.LogEntry{
		Method:          method,
		URL:             url,
		RequestBody:     requestBody,
		ResponseBody:    responseBody,
		RequestHeaders:  string(requestHeaders),
		ResponseHeaders: string(responseHeaders),
		StatusCode:      c.Response().StatusCode(),
		CreatedAt:       time.Now(),
	}
}
