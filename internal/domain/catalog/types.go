package catalog

// Source indicates where an entry originated from.
type Source int

const (
	// SourceBuiltIn indicates an entry bundled with the application.
	SourceBuiltIn Source = iota
	// SourceUser indicates an entry from the user's catalog directory.
	SourceUser
)

// String returns a human-readable representation of the Source.
func (s Source) String() string {
	switch s {
	case SourceBuiltIn:
		return "built-in"
	case SourceUser:
		return "user"
	default:
		return "unknown"
	}
}

// Entry represents one named pattern in the catalog.
type Entry struct {
	name     string   // e.g., "Factory Method"
	category Category // e.g., Creational
	summary  string   // one or two sentences describing the intent
	example  string   // worked example used by the write-up, e.g., "Pizza store"
	doc      string   // path of the Markdown write-up inside the content FS
	source   Source   // origin of the entry (built-in or user)
}

// newEntry creates an entry (used by builder)
func newEntry(name string, category Category, summary, example, doc string, source Source) *Entry {
	return &Entry{
		name:     name,
		category: category,
		summary:  summary,
		example:  example,
		doc:      doc,
		source:   source,
	}
}

// Name returns the pattern name (unique across the catalog)
func (e *Entry) Name() string {
	return e.name
}

// Category returns the pattern's grouping
func (e *Entry) Category() Category {
	return e.category
}

// Summary returns the short description of the pattern
func (e *Entry) Summary() string {
	return e.summary
}

// Example returns the name of the worked example.
// Returns empty string if the write-up has none.
func (e *Entry) Example() string {
	return e.example
}

// Doc returns the path of the Markdown write-up.
// Returns empty string if the entry has no write-up.
func (e *Entry) Doc() string {
	return e.doc
}

// Source returns the entry's source (built-in or user).
func (e *Entry) Source() Source {
	return e.source
}
