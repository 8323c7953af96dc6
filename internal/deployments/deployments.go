// Package deployments keeps the address book of deployed contracts, one
// entry per network, in a JSON file shared with the hardhat tasks.
package deployments

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/google/renameio/v2"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// DefaultPath is where the hardhat tasks keep the address book.
const DefaultPath = "deployments.json"

// GatewayKey is the address book key of the gateway diamond.
const GatewayKey = "GatewayActorDiamond"

// Store reads and writes the address book file.
type Store struct {
	Path string
	mu   sync.Mutex
}

func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath
	}
	return &Store{Path: path}
}

// Save records data under network. Without a branch the keys are merged into
// the network entry; with a branch the branch object is replaced.
func (s *Store) Save(network string, data map[string]string, branch string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	entry, ok := doc[network].(map[string]any)
	if !ok {
		entry = map[string]any{}
	}
	if branch != "" {
		branchData := make(map[string]any, len(data))
		for k, v := range data {
			branchData[k] = v
		}
		entry[branch] = branchData
	} else {
		for k, v := range data {
			entry[k] = v
		}
	}
	doc[network] = entry

	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode deployments: %w", err)
	}
	err = renameio.WriteFile(s.Path, pretty.Pretty(raw), 0644)
	if err != nil {
		return fmt.Errorf("failed to write deployments: %w", err)
	}
	slog.Debug("deployments: saved", "path", s.Path, "network", network, "branch", branch)
	return nil
}

// Get returns the entry of a network. A missing file or network yields an
// empty map.
func (s *Store) Get(network string) (map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	entry, ok := doc[network].(map[string]any)
	if !ok {
		return map[string]any{}, nil
	}
	return entry, nil
}

// Lookup returns the string stored at network/path..., for instance
// Lookup("calibrationnet", "libs", "AccountHelper").
func (s *Store) Lookup(network string, path ...string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	content, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read deployments: %w", err)
	}
	if !gjson.ValidBytes(content) {
		return "", false, fmt.Errorf("invalid deployments file %v", s.Path)
	}
	keys := append([]string{network}, path...)
	for i, key := range keys {
		keys[i] = escapePath(key)
	}
	result := gjson.GetBytes(content, strings.Join(keys, "."))
	if !result.Exists() || result.Type != gjson.String {
		return "", false, nil
	}
	return result.String(), true, nil
}

func (s *Store) read() (map[string]any, error) {
	content, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]any{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read deployments: %w", err)
	}
	doc := map[string]any{}
	if len(strings.TrimSpace(string(content))) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode deployments: %w", err)
	}
	return doc, nil
}

var pathEscaper = strings.NewReplacer(
	`\`, `\\`,
	".", `\.`,
	"*", `\*`,
	"?", `\?`,
	"|", `\|`,
	"#", `\#`,
	"@", `\@`,
)

func escapePath(key string) string {
	return pathEscaper.Replace(key)
}
