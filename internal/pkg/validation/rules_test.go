package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"asha@college.edu", true},
		{"hr.team+jobs@acme-corp.co.in", true},
		{"no-at-sign", false},
		{"missing@tld", false},
		{"@college.edu", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidEmail(tt.email), tt.email)
	}
}

func TestValidPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"+919876543210", true},
		{"+19876543210", true},
		{"+1239876543210", true},
		{"9876543210", false},       // no country code
		{"+91987654321", false},     // 9 digits
		{"+9198765432100", false},   // 11 digits
		{"+12349876543210", false},  // 4-digit country code
		{"+91 9876543210", false},   // whitespace
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidPhone(tt.phone), tt.phone)
	}
}

func TestValidPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"all classes present", "Pass@123", true},
		{"too short", "Pa@1", false},
		{"no digit", "Password@", false},
		{"no special", "Password1", false},
		{"no letter", "12345678@", false},
		{"special outside set", "Password1~", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidPassword(tt.password))
		})
	}
}

func TestValidSemesterCGPA(t *testing.T) {
	assert.True(t, ValidSemesterCGPA(7.5))
	assert.True(t, ValidSemesterCGPA(10))
	assert.False(t, ValidSemesterCGPA(0))
	assert.False(t, ValidSemesterCGPA(-1))
	assert.False(t, ValidSemesterCGPA(10.1))
}

func TestValidSemesterCGPAs(t *testing.T) {
	// Year 2 expects exactly four semester values.
	assert.True(t, ValidSemesterCGPAs([]float64{8, 8.2, 7.9, 8.5}, 2))
	assert.False(t, ValidSemesterCGPAs([]float64{8, 8.2, 7.9}, 2))
	assert.False(t, ValidSemesterCGPAs([]float64{8, 8.2, 7.9, 11}, 2))
	assert.False(t, ValidSemesterCGPAs(nil, 1))
}
