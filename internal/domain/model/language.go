package model

type Language struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

const DefaultLanguageID = 109

// Languages is the judge's execution environment catalog. IDs follow the
// executor's numbering and must not be renumbered locally.
var Languages = []Language{
	{ID: 109, Name: "Python (3.13.2)"},
	{ID: 100, Name: "Python (3.12.5)"},
	{ID: 105, Name: "C++ (GCC 14.1.0)"},
	{ID: 54, Name: "C++ (GCC 9.2.0)"},
	{ID: 103, Name: "C (GCC 14.1.0)"},
	{ID: 50, Name: "C (GCC 9.2.0)"},
	{ID: 91, Name: "Java (JDK 17.0.6)"},
	{ID: 62, Name: "Java (OpenJDK 13.0.1)"},
	{ID: 102, Name: "JavaScript (Node.js 22.08.0)"},
	{ID: 97, Name: "JavaScript (Node.js 20.17.0)"},
	{ID: 101, Name: "TypeScript (5.6.2)"},
	{ID: 94, Name: "TypeScript (5.0.3)"},
	{ID: 107, Name: "Go (1.23.5)"},
	{ID: 108, Name: "Rust (1.85.0)"},
	{ID: 111, Name: "Kotlin (2.1.10)"},
	{ID: 51, Name: "C# (Mono 6.6.0.161)"},
	{ID: 83, Name: "Swift (5.2.3)"},
	{ID: 72, Name: "Ruby (2.7.0)"},
	{ID: 90, Name: "Dart (2.19.2)"},
}

// ValidLanguage reports whether id names a known execution environment.
func ValidLanguage(id int) bool {
	for _, l := range Languages {
		if l.ID == id {
			return true
		}
	}
	return false
}

// LanguageName returns the display name for id, or "unknown".
func LanguageName(id int) string {
	for _, l := range Languages {
		if l.ID == id {
			return l.Name
		}
	}
	return "unknown"
}
