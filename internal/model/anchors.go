package model

// ThemeAnchor binds a named topic to a curated set of chapters. A question
// matching one of the trigger terms is answered from these chapters instead
// of open-ended similarity search.
type ThemeAnchor struct {
	Name        string   `yaml:"name" json:"name"`
	Triggers    []string `yaml:"triggers" json:"triggers"`
	BookFilter  string   `yaml:"book_filter,omitempty" json:"book_filter,omitempty"` // Empty means any book
	Chapters    []int    `yaml:"chapters,omitempty" json:"chapters,omitempty"`
	Description string   `yaml:"description" json:"description"`
}

// AmbiguousTerm is a polysemous domain term together with the word groups
// that disambiguate it. When the term appears in a question with no clue
// group present, the search query gets expanded.
type AmbiguousTerm struct {
	Term         string              `yaml:"term" json:"term"`
	Options      []string            `yaml:"options" json:"options"`
	ContextClues map[string][]string `yaml:"context_clues" json:"context_clues"`
}

// DefaultThemeAnchors returns the curated anchor table for the KJV corpus.
func DefaultThemeAnchors() []ThemeAnchor {
	return []ThemeAnchor{
		{
			Name:        "abraham_promise",
			Triggers:    []string{"promise", "covenant", "abraham", "abram"},
			BookFilter:  "genesis",
			Chapters:    []int{12, 15, 17, 22},
			Description: "God's covenant promises to Abraham",
		},
		{
			Name:        "ten_commandments",
			Triggers:    []string{"commandment", "ten commandments", "law of moses", "thou shalt"},
			BookFilter:  "exodus",
			Chapters:    []int{20},
			Description: "The Ten Commandments",
		},
		{
			Name:        "creation",
			Triggers:    []string{"creation", "created", "beginning", "adam", "eve", "garden"},
			BookFilter:  "genesis",
			Chapters:    []int{1, 2, 3},
			Description: "Creation narrative",
		},
		{
			Name:        "flood",
			Triggers:    []string{"flood", "noah", "ark", "rain", "dove"},
			BookFilter:  "genesis",
			Chapters:    []int{6, 7, 8, 9},
			Description: "Noah and the flood",
		},
		{
			Name:        "moses_burning_bush",
			Triggers:    []string{"burning bush", "moses call", "i am"},
			BookFilter:  "exodus",
			Chapters:    []int{3, 4},
			Description: "Moses at the burning bush",
		},
		{
			Name:        "exodus_passover",
			Triggers:    []string{"passover", "plague", "egypt", "pharaoh", "let my people"},
			BookFilter:  "exodus",
			Chapters:    []int{7, 8, 9, 10, 11, 12},
			Description: "The Exodus and Passover",
		},
		{
			Name:        "sermon_mount",
			Triggers:    []string{"beatitude", "blessed are", "sermon on the mount"},
			BookFilter:  "matthew",
			Chapters:    []int{5, 6, 7},
			Description: "Sermon on the Mount",
		},
		{
			Name:        "lords_prayer",
			Triggers:    []string{"lord's prayer", "our father", "how to pray"},
			BookFilter:  "matthew",
			Chapters:    []int{6},
			Description: "The Lord's Prayer",
		},
		{
			Name:        "birth_jesus",
			Triggers:    []string{"birth of jesus", "nativity", "bethlehem", "manger", "wise men", "shepherds"},
			Description: "Birth of Jesus", // Matthew or Luke, no anchor chapters
		},
		{
			Name:        "resurrection",
			Triggers:    []string{"resurrection", "risen", "empty tomb", "third day"},
			Description: "Resurrection of Jesus",
		},
	}
}

// DefaultAmbiguousTerms returns the polysemous terms of the KJV corpus.
func DefaultAmbiguousTerms() []AmbiguousTerm {
	return []AmbiguousTerm{
		{
			Term:    "ark",
			Options: []string{"Noah's Ark (the boat during the flood)", "Ark of the Covenant (the sacred chest)"},
			ContextClues: map[string][]string{
				"noah":     {"noah", "flood", "water", "rain", "boat"},
				"covenant": {"covenant", "tabernacle", "moses", "bezalel", "gold"},
			},
		},
		{
			Term:    "temple",
			Options: []string{"Solomon's Temple", "Second Temple", "Jesus' body as temple"},
			ContextClues: map[string][]string{
				"solomon": {"solomon", "build", "jerusalem"},
				"herod":   {"herod", "second", "zerubbabel"},
				"jesus":   {"jesus", "body", "three", "days"},
			},
		},
		{
			Term:    "law",
			Options: []string{"Law of Moses (Torah)", "Roman law"},
			ContextClues: map[string][]string{
				"moses": {"moses", "commandments", "sinai", "torah"},
				"roman": {"caesar", "pilate", "rome"},
			},
		},
	}
}

// DefaultBookNames returns the canonical and abbreviated book tokens used
// for citation detection, all lowercase.
func DefaultBookNames() []string {
	return []string{
		"genesis", "exodus", "leviticus", "numbers", "deuteronomy",
		"joshua", "judges", "ruth", "samuel", "kings", "chronicles",
		"ezra", "nehemiah", "esther", "job", "psalm", "psalms", "proverbs",
		"ecclesiastes", "song", "isaiah", "jeremiah", "lamentations",
		"ezekiel", "daniel", "hosea", "joel", "amos", "obadiah", "jonah",
		"micah", "nahum", "habakkuk", "zephaniah", "haggai", "zechariah", "malachi",
		"matthew", "mark", "luke", "john", "acts", "romans", "corinthians",
		"galatians", "ephesians", "philippians", "colossians", "thessalonians",
		"timothy", "titus", "philemon", "hebrews", "james", "peter", "jude", "revelation",
	}
}
