package seed

import "github.com/example/english-for-kids/internal/dal"

// Demo content for a fresh installation. demoWords is indexed in parallel
// with demoLessons: words at position i belong to the lesson at position i.
var (
	demoLessons = []dal.Lesson{
		{Title: "צבעים", EnglishTitle: "Colors", Description: "לומדים צבעים בסיסיים", Level: "beginner", CoverEmoji: "🎨"},
		{Title: "חיות", EnglishTitle: "Animals", Description: "מכירים חיות נפוצות", Level: "beginner", CoverEmoji: "🐾"},
		{Title: "אוכל", EnglishTitle: "Food", Description: "מילים על אוכל טעים", Level: "beginner", CoverEmoji: "🍎"},
	}

	demoWords = [][]dal.Word{
		{
			{English: "red", Hebrew: "אדום"},
			{English: "blue", Hebrew: "כחול"},
			{English: "green", Hebrew: "ירוק"},
			{English: "yellow", Hebrew: "צהוב"},
		},
		{
			{English: "dog", Hebrew: "כלב"},
			{English: "cat", Hebrew: "חתול"},
			{English: "bird", Hebrew: "ציפור"},
			{English: "fish", Hebrew: "דג"},
		},
		{
			{English: "apple", Hebrew: "תפוח"},
			{English: "bread", Hebrew: "לחם"},
			{English: "milk", Hebrew: "חלב"},
			{English: "cheese", Hebrew: "גבינה"},
		},
	}
)
