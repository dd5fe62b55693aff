package catalog

// fallbackEntries is served whenever the remote catalog cannot be used.
// Every entry has a real genre so search behaves the same as on live data.
var fallbackEntries = [...]Entry{
	{ID: 1, Name: "Static Movie 1", Genre: "Action"},
	{ID: 2, Name: "Static Movie 2", Genre: "Comedy"},
	{ID: 3, Name: "Static Movie 3", Genre: "Drama"},
	{ID: 4, Name: "Static Movie 4", Genre: "Horror"},
	{ID: 5, Name: "Static Movie 5", Genre: "Romance"},
	{ID: 6, Name: "Static Movie 6", Genre: "Thriller"},
	{ID: 7, Name: "Static Movie 7", Genre: "Sci-Fi"},
	{ID: 8, Name: "Static Movie 8", Genre: "Fantasy"},
	{ID: 9, Name: "Static Movie 9", Genre: "Adventure"},
	{ID: 10, Name: "Static Movie 10", Genre: "Mystery"},
}

// Fallback returns a fresh copy of the built-in catalog.
func Fallback() []Entry {
	out := make([]Entry, len(fallbackEntries))
	copy(out, fallbackEntries[:])
	return out
}
