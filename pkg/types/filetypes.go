package types

// FilterKind selects which extension whitelist a file chooser advertises.
type FilterKind int

const (
	// FilterImages accepts the configured image extensions.
	FilterImages FilterKind = iota
	// FilterDatabase accepts collection database files only.
	FilterDatabase
)

// String returns a short name for the filter kind, used in logs.
func (k FilterKind) String() string {
	switch k {
	case FilterImages:
		return "images"
	case FilterDatabase:
		return "database"
	default:
		return "unknown"
	}
}

// Fixed file-extension contract shared with the rest of the application.
const (
	// PlaylistExtension is appended to playlist files saved from the GUI.
	PlaylistExtension = ".play"
	// DatabaseExtension (without dot) identifies collection database files.
	DatabaseExtension = "sqlite3"
)

// DefaultImageExtensions is the image whitelist used when the configuration
// does not override it. Extensions are stored lowercase without dots.
var DefaultImageExtensions = []string{"jpg", "jpeg", "png", "gif", "bmp"}

// Extensions returns the extension whitelist for the kind. imageExts comes
// from the configuration; an empty slice falls back to the defaults.
func (k FilterKind) Extensions(imageExts []string) []string {
	switch k {
	case FilterDatabase:
		return []string{DatabaseExtension}
	default:
		if len(imageExts) == 0 {
			return DefaultImageExtensions
		}
		return imageExts
	}
}
