package services

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/secretmission/mission-backend/models"
	"github.com/secretmission/mission-backend/utils/logger"
)

var (
	packs   map[string][]string
	packsMu sync.RWMutex
)

// LoadMissionPacks loads curated mission suggestions from a JSON file
// (pack name -> list of prompts). The file is optional; rooms work fine
// with player-written missions only.
func LoadMissionPacks(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warnf("[Init] mission packs not loaded: %v", err)
		return
	}
	loaded := map[string][]string{}
	if err := json.Unmarshal(data, &loaded); err != nil {
		logger.Errorf("[Init] failed to parse %s: %v", path, err)
		return
	}
	packsMu.Lock()
	packs = loaded
	packsMu.Unlock()
	logger.Infof("[Init] loaded %d mission packs", len(loaded))
}

// GetMissionPack returns the prompts of a named pack.
func GetMissionPack(name string) ([]string, error) {
	packsMu.RLock()
	defer packsMu.RUnlock()
	prompts, ok := packs[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown mission pack %q", models.ErrNotFound, name)
	}
	return prompts, nil
}
