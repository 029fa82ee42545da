package analyze

// sensationalWords are clickbait, conspiracy, and urgency terms whose
// presence inside a token counts as a lexical indicator.
var sensationalWords = []string{
	"click", "shocking", "unbelievable", "hate", "secret", "miracle", "cure",
	"conspiracy", "pharma", "believe", "weird", "trick", "scientists", "baffled",
	"hidden", "truth", "wake", "sheeple", "fake", "hoax", "breaking", "news",
	"urgent", "alert", "warning", "scandal", "exposed", "leaked", "bombshell",
	"revolutionary", "guaranteed", "limited", "act", "free", "money", "cancer",
	"theory", "deep", "state", "alternative", "facts", "zombie", "apocalypse",
}
