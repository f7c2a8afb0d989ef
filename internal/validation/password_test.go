package validation

import (
	"strings"
	"testing"

	"skillswap/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"Valid", "password123", false},
		{"Exactly Min Length", "abcdefg1", false},
		{"Exactly Max Length", strings.Repeat("a", 71) + "1", false},
		{"Too Short", "abc1", true},
		{"Too Long", strings.Repeat("a", 72) + "1", true},
		{"No Digit", "passwordpassword", true},
		{"No Letter", "1234567890", true},
		{"Unicode Letters", "Ångström42", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateUsername(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"Valid", "sarah_dev", false},
		{"Too Short", "tu", true},
		{"Too Long", strings.Repeat("u", 31), true},
		{"Illegal Chars", "user@123", true},
		{"Starts Dash", "-user", true},
		{"Ends Underscore", "user_", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()
	// 254 chars total: 64 local + @ + 185 domain label + ".com" (4)
	emailAt254 := strings.Repeat("a", 64) + "@" + strings.Repeat("b", 185) + ".com"
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"Valid", "sarah@example.com", false},
		{"Subdomain", "mike@mail.example.co", false},
		{"Exactly 254 Characters", emailAt254, false},
		{"Too Long", "a" + emailAt254, true},
		{"Invalid Format", "not-an-email", true},
		{"Missing Domain", "user@", true},
		{"Multiple At Symbols", "user@@example.com", true},
		{"Space In Local Part", "user @example.com", true},
		{"Trailing Dot In Domain", "user@example.com.", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateSkill(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		skillName string
		skillType models.SkillType
		level     models.SkillLevel
		wantErr   bool
	}{
		{"Valid Offered", "JavaScript", models.SkillTypeOffered, models.SkillLevelAdvanced, false},
		{"Valid Wanted", "Node.js", models.SkillTypeWanted, models.SkillLevelBeginner, false},
		{"Blank Name", "   ", models.SkillTypeOffered, models.SkillLevelBeginner, true},
		{"Name Too Long", strings.Repeat("x", 101), models.SkillTypeOffered, models.SkillLevelBeginner, true},
		{"Unknown Type", "Go", "teaching", models.SkillLevelBeginner, true},
		{"Lowercase Level", "Go", models.SkillTypeOffered, "advanced", true},
		{"Missing Level", "Go", models.SkillTypeOffered, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSkill(tt.skillName, tt.skillType, tt.level)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateRequired(t *testing.T) {
	t.Parallel()
	assert.Error(t, ValidateRequired("title", "", 10))
	assert.Error(t, ValidateRequired("title", "\t", 10))
	assert.Error(t, ValidateRequired("title", "eleven chars", 10))
	assert.NoError(t, ValidateRequired("title", "héllo", 5))
}
