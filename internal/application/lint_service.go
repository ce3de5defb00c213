package application

import (
	"fmt"
	"path/filepath"

	"github.com/agentinit/agentinit/internal/domain"
	"github.com/agentinit/agentinit/internal/domain/checks"
)

// LintService is the outward-facing surface of the contextlint engine: it
// resolves the root, loads config, discovers files, and runs the checks.
type LintService struct {
	loader     domain.LintConfigLoader
	discoverer domain.ContextDiscoverer
}

// NewLintService creates a LintService with its required adapters.
func NewLintService(loader domain.LintConfigLoader, discoverer domain.ContextDiscoverer) *LintService {
	return &LintService{loader: loader, discoverer: discoverer}
}

// Lint runs all checks under root. configPath overrides config discovery
// when non-empty. The error covers environment problems only (an
// unresolvable root); lint findings live in the result.
func (s *LintService) Lint(root, configPath string, checkDuplicates bool) (*domain.LintResult, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving root: %w", err)
	}
	cfg := s.loader.Load(absRoot, configPath)
	return s.LintWithConfig(absRoot, cfg, checkDuplicates)
}

// LintWithConfig runs all checks under root with an already-resolved
// config, for embedders that manage configuration themselves.
func (s *LintService) LintWithConfig(root string, cfg domain.LintConfig, checkDuplicates bool) (*domain.LintResult, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving root: %w", err)
	}
	files, hot, err := s.discoverer.Discover(absRoot, cfg)
	if err != nil {
		return nil, fmt.Errorf("discovering context files: %w", err)
	}
	return checks.Run(absRoot, files, hot, cfg, checkDuplicates), nil
}

// Discover exposes file discovery on its own, for tooling that wants the
// file set without a full lint run.
func (s *LintService) Discover(root, configPath string) (files []string, hot map[string]bool, err error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, nil, fmt.Errorf("resolving root: %w", err)
	}
	cfg := s.loader.Load(absRoot, configPath)
	return s.discoverer.Discover(absRoot, cfg)
}
