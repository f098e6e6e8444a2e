package gui

import (
	"os"
	"path/filepath"
	"strings"

	"imgvault/internal/i18n"
	"imgvault/internal/log"
	"imgvault/pkg/types"

	"github.com/gobwas/glob"
)

// OpenFileChooser opens a single-file chooser for the given filter kind.
// The returned path is absolute; ok is false when the chooser was cancelled
// or the selection does not match the advertised filter.
func (s *Service) OpenFileChooser(kind types.FilterKind) (string, bool) {
	filter := s.filterFor(kind)
	caption := singleCaptionKey(kind)

	path, err := s.picker.OpenFile(i18n.T(caption), filter)
	if err != nil {
		s.logPickerError("file chooser", err)
		return "", false
	}

	// Users can bypass the advertised filter in most toolkits, so check
	// the extension again.
	kept := FilterPaths([]string{path}, filter.Extensions)
	if len(kept) == 0 {
		log.Debugf("file chooser: %s rejected by %s filter", path, kind)
		return "", false
	}
	return kept[0], true
}

// OpenFilesChooser opens a multi-file chooser for the given filter kind.
// Paths that slip past the advertised filter are dropped; a cancelled
// chooser yields a nil slice.
func (s *Service) OpenFilesChooser(kind types.FilterKind) []string {
	filter := s.filterFor(kind)
	caption := multiCaptionKey(kind)

	paths, err := s.picker.OpenFiles(i18n.T(caption), filter)
	if err != nil {
		s.logPickerError("files chooser", err)
		return nil
	}
	return FilterPaths(paths, filter.Extensions)
}

// OpenPlaylistSaver opens a save dialog for playlist files. The returned
// path always carries the playlist extension exactly once.
func (s *Service) OpenPlaylistSaver() (string, bool) {
	filter := FileFilter{
		Description: i18n.T("popup.playlist_saver.filter"),
		Extensions:  []string{strings.TrimPrefix(types.PlaylistExtension, ".")},
	}

	path, err := s.picker.SaveFile(i18n.T("popup.playlist_saver.caption"), "playlist"+types.PlaylistExtension, filter)
	if err != nil {
		s.logPickerError("playlist saver", err)
		return "", false
	}

	abs, err := filepath.Abs(EnsureExtension(path, types.PlaylistExtension))
	if err != nil {
		return "", false
	}
	return abs, true
}

// OpenDirectoryImages opens a directory chooser and returns the absolute
// paths of the image files directly inside the chosen directory. The
// listing is not recursive. ok is false when the chooser was cancelled.
func (s *Service) OpenDirectoryImages() ([]string, bool) {
	dir, err := s.picker.OpenDirectory(i18n.T("popup.open_directory_chooser.caption"))
	if err != nil {
		s.logPickerError("directory chooser", err)
		return nil, false
	}

	images, err := ListImages(dir, s.cfg.Images.Extensions)
	if err != nil {
		log.Warnf("could not list %s: %v", dir, err)
		return nil, false
	}
	return images, true
}

// ChooseDirectory opens a plain directory chooser. ok is false when it was
// cancelled.
func (s *Service) ChooseDirectory() (string, bool) {
	dir, err := s.picker.OpenDirectory(i18n.T("popup.directory_chooser.caption"))
	if err != nil {
		s.logPickerError("directory chooser", err)
		return "", false
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}
	return abs, true
}

func (s *Service) filterFor(kind types.FilterKind) FileFilter {
	var description string
	switch kind {
	case types.FilterDatabase:
		description = i18n.T("popup.file_chooser.filter.database")
	default:
		description = i18n.T("popup.file_chooser.filter.images")
	}
	return FileFilter{
		Description: description,
		Extensions:  kind.Extensions(s.cfg.Images.Extensions),
	}
}

func singleCaptionKey(kind types.FilterKind) string {
	if kind == types.FilterDatabase {
		return "popup.file_chooser.caption.database"
	}
	return "popup.file_chooser.caption.image"
}

func multiCaptionKey(kind types.FilterKind) string {
	if kind == types.FilterDatabase {
		return "popup.file_chooser.caption.database"
	}
	return "popup.file_chooser.caption.images"
}

func (s *Service) logPickerError(op string, err error) {
	if err == ErrCancelled {
		log.Debugf("%s cancelled", op)
		return
	}
	log.Warnf("%s failed: %v", op, err)
}

// FilterPaths keeps only the paths whose extension is in the whitelist and
// absolutizes them. Matching is case-insensitive.
func FilterPaths(paths, extensions []string) []string {
	matchers := compileExtensionGlobs(extensions)

	var kept []string
	for _, path := range paths {
		if !matchesAny(matchers, filepath.Base(path)) {
			continue
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			continue
		}
		kept = append(kept, abs)
	}
	return kept
}

// ListImages returns the absolute paths of the image files directly inside
// dir, skipping subdirectories.
func ListImages(dir string, extensions []string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	matchers := compileExtensionGlobs(extensions)
	var images []string
	for _, entry := range entries {
		if entry.IsDir() || !matchesAny(matchers, entry.Name()) {
			continue
		}
		abs, err := filepath.Abs(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		images = append(images, abs)
	}
	return images, nil
}

// EnsureExtension appends ext when the path does not already end with it,
// comparing case-insensitively, never duplicating it.
func EnsureExtension(path, ext string) string {
	if strings.HasSuffix(strings.ToLower(path), strings.ToLower(ext)) {
		return path
	}
	return path + ext
}

// compileExtensionGlobs turns an extension whitelist into "*.ext" matchers.
// Invalid entries are dropped rather than failing the whole chooser.
func compileExtensionGlobs(extensions []string) []glob.Glob {
	matchers := make([]glob.Glob, 0, len(extensions))
	for _, ext := range extensions {
		g, err := glob.Compile("*." + strings.ToLower(strings.TrimPrefix(ext, ".")))
		if err != nil {
			log.Warnf("invalid extension pattern %q: %v", ext, err)
			continue
		}
		matchers = append(matchers, g)
	}
	return matchers
}

func matchesAny(matchers []glob.Glob, name string) bool {
	name = strings.ToLower(name)
	for _, m := range matchers {
		if m.Match(name) {
			return true
		}
	}
	return false
}
