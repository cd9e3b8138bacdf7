package models

// Class types shown in the portal UI.
const (
	ClassTypeAcademic = "academic"
	ClassTypeArt      = "art"
	ClassTypeScience  = "science"
	ClassTypeLanguage = "language"
	ClassTypePE       = "pe"
	ClassTypeOther    = "other"
)

// Teacher identifies the teacher of a configured class.
type Teacher struct {
	Prefix    string `bson:"prefix" json:"prefix"` // "Mr.", "Ms.", "Dr."
	FirstName string `bson:"firstName" json:"firstName"`
	LastName  string `bson:"lastName" json:"lastName"`
}

// Class is a user-configured class bound to a schedule block letter.
type Class struct {
	ID      string  `bson:"id" json:"id"`
	UserID  string  `bson:"userId" json:"-"`
	Name    string  `bson:"name" json:"name"`
	Teacher Teacher `bson:"teacher" json:"teacher"`
	Type    string  `bson:"type" json:"type"`
	// Block is the block letter ("a".."g") this class meets in, or "other".
	Block string `bson:"block" json:"block"`
	// Color is a "#RRGGBB" display color; assigned from the name hash when
	// the user does not pick one.
	Color    string `bson:"color" json:"color"`
	TextDark bool   `bson:"textDark" json:"textDark"`
}

// ClassAlias maps a raw remote-calendar event summary to a configured class.
type ClassAlias struct {
	ID      string `bson:"id" json:"id"`
	UserID  string `bson:"userId" json:"-"`
	Raw     string `bson:"raw" json:"raw"`
	ClassID string `bson:"classId" json:"classId"`
}
