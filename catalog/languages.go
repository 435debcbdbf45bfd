package catalog

// Language is one entry of the language table.
type Language struct {
	Value string
	Label string

	// Lexer is the chroma lexer name used to highlight this language.
	Lexer string
}

// DefaultLanguage is the language used when none is configured.
const DefaultLanguage = "javascript"

var languages = []Language{
	{Value: "python", Label: "Python", Lexer: "python"},
	{Value: "javascript", Label: "JavaScript", Lexer: "javascript"},
	{Value: "typescript", Label: "TypeScript", Lexer: "typescript"},
	{Value: "java", Label: "Java", Lexer: "java"},
	{Value: "cpp", Label: "C++", Lexer: "c++"},
	{Value: "html", Label: "HTML", Lexer: "html"},
	{Value: "css", Label: "CSS", Lexer: "css"},
	{Value: "json", Label: "JSON", Lexer: "json"},
	{Value: "rust", Label: "Rust", Lexer: "rust"},
	{Value: "go", Label: "Go", Lexer: "go"},
	{Value: "sql", Label: "SQL", Lexer: "sql"},
	{Value: "php", Label: "PHP", Lexer: "php"},
	{Value: "ruby", Label: "Ruby", Lexer: "ruby"},
	{Value: "csharp", Label: "C#", Lexer: "c#"},
	{Value: "kotlin", Label: "Kotlin", Lexer: "kotlin"},
	{Value: "swift", Label: "Swift", Lexer: "swift"},
	{Value: "shellscript", Label: "Shell Script", Lexer: "bash"},
	{Value: "yaml", Label: "YAML", Lexer: "yaml"},
	{Value: "zig", Label: "Zig", Lexer: "zig"},
}

var languageIndex = indexOf(languages, func(l Language) string { return l.Value })

// Languages returns the language table in picker order.
func Languages() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

// LookupLanguage returns the language with the given identifier.
func LookupLanguage(value string) (Language, bool) {
	i, ok := languageIndex[value]
	if !ok {
		return Language{}, false
	}
	return languages[i], true
}

// LanguageLabel returns the display label for value, or value itself when the
// identifier is unknown.
func LanguageLabel(value string) string {
	if l, ok := LookupLanguage(value); ok {
		return l.Label
	}
	return value
}

func indexOf[T any](rows []T, key func(T) string) map[string]int {
	idx := make(map[string]int, len(rows))
	for i, r := range rows {
		idx[key(r)] = i
	}
	return idx
}
