package models

import "time"

// SkillType distinguishes skills a user teaches from skills they want to learn.
type SkillType string

const (
	SkillTypeOffered SkillType = "offered"
	SkillTypeWanted  SkillType = "wanted"
)

// Valid reports whether t is a known skill type.
func (t SkillType) Valid() bool {
	return t == SkillTypeOffered || t == SkillTypeWanted
}

// SkillLevel is the self-assessed proficiency of a skill entry.
type SkillLevel string

const (
	SkillLevelBeginner     SkillLevel = "Beginner"
	SkillLevelIntermediate SkillLevel = "Intermediate"
	SkillLevelAdvanced     SkillLevel = "Advanced"
)

// Valid reports whether l is a known skill level.
func (l SkillLevel) Valid() bool {
	switch l {
	case SkillLevelBeginner, SkillLevelIntermediate, SkillLevelAdvanced:
		return true
	}
	return false
}

// SkillEntry is one offered or wanted skill owned by a user. Entries have no
// update path; owners add and delete them.
type SkillEntry struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `gorm:"not null;index" json:"user_id"`
	SkillName   string     `gorm:"not null;size:100;index" json:"skill_name"`
	SkillType   SkillType  `gorm:"type:varchar(10);not null;check:chk_skills_type,skill_type IN ('offered','wanted')" json:"skill_type"`
	Description string     `gorm:"type:text" json:"description"`
	Level       SkillLevel `gorm:"type:varchar(20);check:chk_skills_level,level IN ('Beginner','Intermediate','Advanced')" json:"level"`
	CreatedAt   time.Time  `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// TableName specifies the table name for GORM
func (SkillEntry) TableName() string {
	return "skills"
}
