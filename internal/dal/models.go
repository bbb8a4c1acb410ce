package dal

// Lesson is a unit children can learn (e.g. Colors, Animals). Title and
// Description are in Hebrew for the UI; EnglishTitle is optional.
type Lesson struct {
	Title        string `bson:"title" json:"title"`
	EnglishTitle string `bson:"english_title,omitempty" json:"english_title,omitempty"`
	Description  string `bson:"description,omitempty" json:"description,omitempty"`
	Level        string `bson:"level" json:"level"`
	CoverEmoji   string `bson:"cover_emoji" json:"cover_emoji"`
}

// Word is a vocabulary item belonging to a lesson. LessonID is an
// unvalidated reference to a Lesson document's identifier.
type Word struct {
	LessonID string `bson:"lesson_id" json:"lesson_id"`
	English  string `bson:"english" json:"english"`
	Hebrew   string `bson:"hebrew" json:"hebrew"`
	ImageURL string `bson:"image_url,omitempty" json:"image_url,omitempty"`
	Example  string `bson:"example,omitempty" json:"example,omitempty"`
}

// Progress records one quiz outcome for a user and lesson. Every submission
// is a new document; historical records for the same pair accumulate.
type Progress struct {
	UserID    string `bson:"user_id" json:"user_id"`
	LessonID  string `bson:"lesson_id" json:"lesson_id"`
	Correct   int    `bson:"correct" json:"correct"`
	Incorrect int    `bson:"incorrect" json:"incorrect"`
	LastScore *int   `bson:"last_score,omitempty" json:"last_score,omitempty"`
}
