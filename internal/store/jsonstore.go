package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/pkoval/fifa-rivals/internal/models"
	"github.com/pkoval/fifa-rivals/pkg/logger"
)

// document is the persisted JSON layout: one file holding every collection.
type document struct {
	Players      []models.Player      `json:"players"`
	Matches      []models.Match       `json:"matches"`
	Comments     []models.Comment     `json:"comments"`
	Achievements []models.Achievement `json:"achievements"`
}

// JSONStore persists the whole dataset as a single JSON document. Every
// mutation rewrites the full file via a temp-file rename, so a crashed
// write never leaves a half-written document behind. A mutex serializes
// writers; the design still assumes the two-user, one-request-at-a-time
// usage pattern rather than real contention.
type JSONStore struct {
	path string
	log  *logger.Logger
	mu   sync.Mutex
}

// NewJSONStore opens (or initializes) a JSON file store at path.
func NewJSONStore(path string, log *logger.Logger) (*JSONStore, error) {
	s := &JSONStore{path: path, log: log}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	// Materialize the seed document if the file does not exist yet.
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := s.write(seedDocument()); err != nil {
			return nil, err
		}
		log.Info().Str("path", path).Msg("Initialized new JSON store")
	}

	return s, nil
}

// seedDocument returns the default dataset with the two-player roster.
func seedDocument() *document {
	players := make([]models.Player, len(DefaultPlayers))
	copy(players, DefaultPlayers)
	return &document{
		Players:      players,
		Matches:      []models.Match{},
		Comments:     []models.Comment{},
		Achievements: []models.Achievement{},
	}
}

// read loads the whole document. A missing, empty or corrupt file degrades
// to the seed dataset instead of failing the request.
func (s *JSONStore) read() (*document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return seedDocument(), nil
		}
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}

	if len(data) == 0 {
		return seedDocument(), nil
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("Store file is corrupt, falling back to seed dataset")
		return seedDocument(), nil
	}

	// Absent collections default to empty; an absent roster defaults to
	// the two-player seed.
	if len(doc.Players) == 0 {
		doc.Players = seedDocument().Players
	}
	if doc.Matches == nil {
		doc.Matches = []models.Match{}
	}
	if doc.Comments == nil {
		doc.Comments = []models.Comment{}
	}
	if doc.Achievements == nil {
		doc.Achievements = []models.Achievement{}
	}

	return &doc, nil
}

// write replaces the document on disk atomically.
func (s *JSONStore) write(doc *document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode store document: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o640); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace store file: %w", err)
	}
	return nil
}

// ListPlayers returns the seeded roster.
func (s *JSONStore) ListPlayers() ([]models.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	return doc.Players, nil
}

// GetPlayer returns a player by id, or nil when absent.
func (s *JSONStore) GetPlayer(id int) (*models.Player, error) {
	players, err := s.ListPlayers()
	if err != nil {
		return nil, err
	}
	for i := range players {
		if players[i].ID == id {
			return &players[i], nil
		}
	}
	return nil, nil
}

// ListMatches returns all matches ordered most-recent-first.
func (s *JSONStore) ListMatches() ([]models.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}

	matches := make([]models.Match, len(doc.Matches))
	copy(matches, doc.Matches)
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Date.After(matches[j].Date)
	})
	return matches, nil
}

// GetMatch returns a match by id, or nil when absent.
func (s *JSONStore) GetMatch(id int) (*models.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	for i := range doc.Matches {
		if doc.Matches[i].ID == id {
			m := doc.Matches[i]
			return &m, nil
		}
	}
	return nil, nil
}

// AddMatch appends a match with the next id and a server-side timestamp.
func (s *JSONStore) AddMatch(data AddMatchData) (*models.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}

	match := models.Match{
		ID:            nextMatchID(doc.Matches),
		Date:          time.Now().UTC(),
		Player1ID:     data.Player1ID,
		Player2ID:     data.Player2ID,
		Player1Score:  data.Player1Score,
		Player2Score:  data.Player2Score,
		Player1TeamID: data.Player1TeamID,
		Player2TeamID: data.Player2TeamID,
		ExtraTime:     data.ExtraTime,
		Penalties:     data.Penalties,
	}
	doc.Matches = append(doc.Matches, match)

	if err := s.write(doc); err != nil {
		return nil, err
	}
	return &match, nil
}

// UpdateMatch applies a partial correction. Returns nil when the match does
// not exist.
func (s *JSONStore) UpdateMatch(id int, upd MatchUpdate) (*models.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}

	for i := range doc.Matches {
		if doc.Matches[i].ID != id {
			continue
		}
		upd.apply(&doc.Matches[i])
		if err := s.write(doc); err != nil {
			return nil, err
		}
		m := doc.Matches[i]
		return &m, nil
	}
	return nil, nil
}

// DeleteMatch removes a match and its dependents. Comments go first, then
// unlock records referencing the match, then the match row, so a failed
// write can never leave an orphaned match.
func (s *JSONStore) DeleteMatch(id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return false, err
	}

	idx := -1
	for i := range doc.Matches {
		if doc.Matches[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, nil
	}

	kept := doc.Comments[:0]
	for _, c := range doc.Comments {
		if c.MatchID != id {
			kept = append(kept, c)
		}
	}
	doc.Comments = kept

	keptAch := doc.Achievements[:0]
	for _, a := range doc.Achievements {
		if a.MatchID != id {
			keptAch = append(keptAch, a)
		}
	}
	doc.Achievements = keptAch

	doc.Matches = append(doc.Matches[:idx], doc.Matches[idx+1:]...)

	if err := s.write(doc); err != nil {
		return false, err
	}
	return true, nil
}

// ListComments returns all comments for a match, oldest first.
func (s *JSONStore) ListComments(matchID int) ([]models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}

	var out []models.Comment
	for _, c := range doc.Comments {
		if c.MatchID == matchID {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// AddComment appends a comment to a match.
func (s *JSONStore) AddComment(matchID, playerID int, content string) (*models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}

	maxID := 0
	for _, c := range doc.Comments {
		if c.ID > maxID {
			maxID = c.ID
		}
	}
	comment := models.Comment{
		ID:        maxID + 1,
		MatchID:   matchID,
		PlayerID:  playerID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	doc.Comments = append(doc.Comments, comment)

	if err := s.write(doc); err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListAchievements returns unlock records, optionally filtered by player.
func (s *JSONStore) ListAchievements(playerID int) ([]models.Achievement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}

	var out []models.Achievement
	for _, a := range doc.Achievements {
		if playerID == 0 || a.PlayerID == playerID {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UnlockedAt.After(out[j].UnlockedAt)
	})
	return out, nil
}

// AddAchievement persists an unlock record.
func (s *JSONStore) AddAchievement(playerID int, typeID string, matchID int) (*models.Achievement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}

	maxID := 0
	for _, a := range doc.Achievements {
		if a.ID > maxID {
			maxID = a.ID
		}
	}
	unlock := models.Achievement{
		ID:         maxID + 1,
		PlayerID:   playerID,
		Type:       typeID,
		MatchID:    matchID,
		UnlockedAt: time.Now().UTC(),
	}
	doc.Achievements = append(doc.Achievements, unlock)

	if err := s.write(doc); err != nil {
		return nil, err
	}
	return &unlock, nil
}

// nextMatchID is one greater than the current maximum, or 1 when empty.
func nextMatchID(matches []models.Match) int {
	maxID := 0
	for _, m := range matches {
		if m.ID > maxID {
			maxID = m.ID
		}
	}
	return maxID + 1
}
