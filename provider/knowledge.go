package provider

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	"aidj/config"
)

const (
	DefaultChunkSize    = 400
	DefaultChunkOverlap = 100
	DefaultRetrieve     = 5
)

var (
	ErrNoDocumentsDir = errors.New("no documents directory configured")
	ErrNotIngested    = errors.New("documents have not been ingested")
)

var documentExts = map[string]bool{
	".md":  true,
	".txt": true,
}

// Chunk is one retrievable passage of a document.
type Chunk struct {
	ID     string
	Source string // path relative to the documents directory
	Text   string
}

// KnowledgeBase holds chunked career documents in memory and answers
// keyword queries against them.
type KnowledgeBase struct {
	dir       string
	chunkSize int
	overlap   int

	mu       sync.RWMutex
	chunks   []Chunk
	ingested bool
}

func NewKnowledgeBase(dir string) *KnowledgeBase {
	return &KnowledgeBase{
		dir:       config.ExpandPath(dir),
		chunkSize: DefaultChunkSize,
		overlap:   DefaultChunkOverlap,
	}
}

func (kb *KnowledgeBase) Dir() string {
	return kb.dir
}

// Load reads every .md and .txt file under the documents directory and
// replaces the current chunks. It returns the number of chunks and the
// number of documents read.
func (kb *KnowledgeBase) Load(ctx context.Context) (chunks, docs int, err error) {
	if kb.dir == "" {
		return 0, 0, ErrNoDocumentsDir
	}
	info, err := os.Stat(kb.dir)
	if err != nil {
		return 0, 0, fmt.Errorf("documents directory: %w", err)
	}
	if !info.IsDir() {
		return 0, 0, fmt.Errorf("documents directory %s is not a directory", kb.dir)
	}

	var loaded []Chunk
	walkErr := filepath.WalkDir(kb.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() || !documentExts[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			if config.DebugLog != nil {
				config.DebugLog.Printf("[Knowledge] Skipping %s: %v", path, err)
			}
			return nil
		}

		rel, _ := filepath.Rel(kb.dir, path)
		docs++
		for _, text := range SplitText(string(data), kb.chunkSize, kb.overlap) {
			loaded = append(loaded, Chunk{
				ID:     uuid.NewString(),
				Source: rel,
				Text:   text,
			})
		}
		return nil
	})
	if walkErr != nil {
		return 0, 0, fmt.Errorf("failed to read documents: %w", walkErr)
	}

	kb.mu.Lock()
	kb.chunks = loaded
	kb.ingested = true
	kb.mu.Unlock()

	if config.DebugLog != nil {
		config.DebugLog.Printf("[Knowledge] Loaded %d chunks from %d documents in %s", len(loaded), docs, kb.dir)
	}
	return len(loaded), docs, nil
}

// Ready returns nil once documents have been ingested.
func (kb *KnowledgeBase) Ready() error {
	if kb.dir == "" {
		return ErrNoDocumentsDir
	}
	kb.mu.RLock()
	defer kb.mu.RUnlock()
	if !kb.ingested {
		return ErrNotIngested
	}
	return nil
}

func (kb *KnowledgeBase) Count() int {
	kb.mu.RLock()
	defer kb.mu.RUnlock()
	return len(kb.chunks)
}

// Search returns up to k chunks ranked by how many of their words are
// query terms. Ties keep document order.
func (kb *KnowledgeBase) Search(query string, k int) []Chunk {
	kb.mu.RLock()
	defer kb.mu.RUnlock()

	if k <= 0 || len(kb.chunks) == 0 {
		return nil
	}

	terms := make(map[string]bool)
	for _, term := range queryTerms(query) {
		terms[term] = true
	}
	type scored struct {
		chunk Chunk
		score int
	}
	ranked := make([]scored, len(kb.chunks))
	for i, c := range kb.chunks {
		score := 0
		for _, word := range tokenize(c.Text) {
			if terms[word] {
				score++
			}
		}
		ranked[i] = scored{chunk: c, score: score}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if k > len(ranked) {
		k = len(ranked)
	}
	out := make([]Chunk, k)
	for i := range out {
		out[i] = ranked[i].chunk
	}
	return out
}

var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "what": true, "his": true,
	"her": true, "are": true, "was": true, "how": true, "who": true, "about": true,
	"has": true, "have": true, "did": true, "does": true, "this": true, "that": true,
}

// tokenize lowercases s and splits it into words, keeping + and # so
// C++ and C# survive.
func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '+' && r != '#'
	})
}

// queryTerms returns the distinct searchable words of a query in order.
func queryTerms(query string) []string {
	words := tokenize(query)
	seen := make(map[string]bool)
	var terms []string
	for _, w := range words {
		if utf8.RuneCountInString(w) < 2 || stopWords[w] || seen[w] {
			continue
		}
		seen[w] = true
		terms = append(terms, w)
	}
	return terms
}

// SplitText cuts text into chunks of at most size runes along word
// boundaries. Consecutive chunks share up to overlap runes of trailing words.
// A single word longer than size becomes its own chunk.
func SplitText(text string, size, overlap int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	if size <= 0 {
		return []string{strings.Join(words, " ")}
	}

	var chunks []string
	var current []string
	length := 0

	for _, w := range words {
		wl := utf8.RuneCountInString(w)
		added := wl
		if len(current) > 0 {
			added++ // joining space
		}

		if len(current) > 0 && length+added > size {
			chunks = append(chunks, strings.Join(current, " "))
			current, length = tail(current, overlap)
			added = wl
			if len(current) > 0 {
				added++
			}
			// drop overlap that would not leave room for the next word
			for len(current) > 0 && length+added > size {
				current, length = current[1:], joinedLen(current[1:])
				added = wl
				if len(current) > 0 {
					added++
				}
			}
		}

		current = append(current, w)
		length += added
	}

	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, " "))
	}
	return chunks
}

// tail returns the longest suffix of words whose joined length fits in limit.
func tail(words []string, limit int) ([]string, int) {
	if limit <= 0 {
		return nil, 0
	}
	start := len(words)
	length := 0
	for i := len(words) - 1; i >= 0; i-- {
		l := utf8.RuneCountInString(words[i])
		if start < len(words) {
			l++
		}
		if length+l > limit {
			break
		}
		length += l
		start = i
	}
	out := make([]string, len(words)-start)
	copy(out, words[start:])
	return out, length
}

func joinedLen(words []string) int {
	if len(words) == 0 {
		return 0
	}
	n := len(words) - 1
	for _, w := range words {
		n += utf8.RuneCountInString(w)
	}
	return n
}
