package models

import "time"

// School level buckets derived from a user's grade.
const (
	SchoolLevelLower  = "lowerschool"
	SchoolLevelMiddle = "middleschool"
	SchoolLevelUpper  = "upperschool"
)

// User represents a portal account.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	FirstName    string    `bson:"firstName" json:"firstName"`
	LastName     string    `bson:"lastName" json:"lastName"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	// GradYear is the graduation year; 0 means no grade configured (e.g. faculty).
	GradYear int `bson:"gradYear,omitempty" json:"gradYear,omitempty"`
	// PortalURLClasses and PortalURLCalendar are the user's remote iCal feed URLs.
	PortalURLClasses  string    `bson:"portalURLClasses,omitempty" json:"portalURLClasses,omitempty"`
	PortalURLCalendar string    `bson:"portalURLCalendar,omitempty" json:"portalURLCalendar,omitempty"`
	CreatedAt         time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time `bson:"updatedAt" json:"updatedAt"`
}

// GradeLevel converts the graduation year to a grade number (1-12) relative
// to the given school year end. Returns 0 when no graduation year is set.
func (u *User) GradeLevel(now time.Time) int {
	if u.GradYear == 0 {
		return 0
	}
	// School years roll over in July.
	yearEnd := now.Year()
	if now.Month() >= time.July {
		yearEnd++
	}
	grade := 12 - (u.GradYear - yearEnd)
	if grade < 1 || grade > 12 {
		return 0
	}
	return grade
}

// SchoolLevel maps a grade number to one of the three school levels.
func SchoolLevel(grade int) string {
	switch {
	case grade >= 9:
		return SchoolLevelUpper
	case grade >= 6:
		return SchoolLevelMiddle
	default:
		return SchoolLevelLower
	}
}
