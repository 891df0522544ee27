package ascii

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	tea "github.com/charmbracelet/bubbletea"

	"aidj/config"
)

//go:embed frames/*.txt frames/metadata.toml
var defaultFrames embed.FS

const metadataFile = "metadata.toml"

var ErrNoFrames = errors.New("no frames found")

type Metadata struct {
	FPS *float64 `json:"fps,omitempty" toml:"fps"`
}

// Source is the result of loading a frame set.
type Source struct {
	Frames   []string
	Metadata Metadata
	Err      error
}

// FPS returns the frame rate from metadata, or DefaultFPS.
func (s Source) FPS() float64 {
	if s.Metadata.FPS != nil && *s.Metadata.FPS > 0 {
		return *s.Metadata.FPS
	}
	return DefaultFPS
}

type FramesLoadedMsg struct {
	Source Source
}

// LoadCmd loads frames off the UI goroutine.
func LoadCmd(p string) tea.Cmd {
	return func() tea.Msg {
		return FramesLoadedMsg{Source: Load(p)}
	}
}

// Load reads a frame set. An empty path selects the built-in art, a .json
// path a single-file set, anything else a directory of .txt frames.
func Load(p string) Source {
	var src Source
	var err error

	switch {
	case p == "":
		src, err = LoadFS(defaultFrames, "frames")
	case strings.EqualFold(filepath.Ext(p), ".json"):
		src, err = loadJSON(config.ExpandPath(p))
	default:
		dir := config.ExpandPath(p)
		src, err = LoadFS(os.DirFS(dir), ".")
	}

	if err != nil {
		if config.DebugLog != nil {
			config.DebugLog.Printf("[Frames] Failed to load %q: %v", p, err)
		}
		return Source{Err: err}
	}

	if config.DebugLog != nil {
		config.DebugLog.Printf("[Frames] Loaded %d frames from %q (fps %.1f)", len(src.Frames), p, src.FPS())
	}
	return src
}

// LoadFS reads *.txt frames from dir in name order plus an optional metadata.toml.
func LoadFS(fsys fs.FS, dir string) (Source, error) {
	names, err := fs.Glob(fsys, path.Join(dir, "*.txt"))
	if err != nil {
		return Source{}, fmt.Errorf("failed to list frames: %w", err)
	}
	if len(names) == 0 {
		return Source{}, ErrNoFrames
	}
	sort.Strings(names)

	var src Source
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return Source{}, fmt.Errorf("failed to read frame %s: %w", name, err)
		}
		src.Frames = append(src.Frames, normalizeFrame(string(data)))
	}

	meta, err := fs.ReadFile(fsys, path.Join(dir, metadataFile))
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return Source{}, fmt.Errorf("failed to read %s: %w", metadataFile, err)
	default:
		if _, err := toml.Decode(string(meta), &src.Metadata); err != nil {
			return Source{}, fmt.Errorf("failed to parse %s: %w", metadataFile, err)
		}
	}

	return src, nil
}

type jsonFrameSet struct {
	Frames   []string `json:"frames"`
	Metadata Metadata `json:"metadata"`
}

func loadJSON(p string) (Source, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return Source{}, fmt.Errorf("failed to read frames file: %w", err)
	}

	var set jsonFrameSet
	if err := json.Unmarshal(data, &set); err != nil {
		return Source{}, fmt.Errorf("failed to parse frames file: %w", err)
	}
	if len(set.Frames) == 0 {
		return Source{}, ErrNoFrames
	}

	frames := make([]string, len(set.Frames))
	for i, f := range set.Frames {
		frames[i] = normalizeFrame(f)
	}
	return Source{Frames: frames, Metadata: set.Metadata}, nil
}

func normalizeFrame(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.TrimRight(s, "\n")
}
