package stats

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/Kili03/tetris/constants"
)

// Stats is the persisted player record
type Stats struct {
	Highscore int `json:"highscore"`
}

// Manager handles save/load of the stats file in a base directory
type Manager struct {
	basePath string
}

// NewManager creates a manager rooted at the given directory
func NewManager(basePath string) *Manager {
	return &Manager{basePath: basePath}
}

// DefaultBasePath returns the per-user config directory for the game.
// Falls back to the working directory when no config dir is resolvable.
func DefaultBasePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, constants.StatsDirName)
}

// FilePath returns the path of the stats file
func (m *Manager) FilePath() string {
	return filepath.Join(m.basePath, constants.StatsFileName)
}

// Load reads the saved stats. A missing, unreadable or corrupt file is
// not an error; defaults are returned instead.
func (m *Manager) Load() Stats {
	data, err := os.ReadFile(m.FilePath())
	if err != nil {
		return Stats{}
	}

	var s Stats
	if err := json.Unmarshal(data, &s); err != nil {
		return Stats{}
	}
	return s
}

// Save writes the stats to disk, creating the directory as needed
func (m *Manager) Save(s Stats) error {
	if err := os.MkdirAll(m.basePath, 0755); err != nil {
		return err
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}

	return os.WriteFile(m.FilePath(), data, 0644)
}
