package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// CheckmateRule selects how checkmate is decided once a king is in check.
type CheckmateRule int

const (
	// FullLegality declares checkmate only when the side in check has no
	// legal move at all, so blocking and capturing the checker count.
	FullLegality CheckmateRule = iota

	// KingEscapesOnly declares checkmate when every square the king could
	// step to is threatened or holds a friendly piece. Blocks and captures
	// by other pieces are not considered.
	KingEscapesOnly
)

// String returns the flag spelling of the rule.
func (r CheckmateRule) String() string {
	switch r {
	case FullLegality:
		return "full"
	case KingEscapesOnly:
		return "king"
	}
	return "unknown"
}

// ParseCheckmateRule converts a flag value into a CheckmateRule.
func ParseCheckmateRule(s string) (CheckmateRule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "full":
		return FullLegality, nil
	case "king", "king-escapes":
		return KingEscapesOnly, nil
	}
	return 0, fmt.Errorf("unknown checkmate rule %q: %w", s, errors.ErrInvalidConfig)
}

// RulesConfig holds settings that change how the rules are applied.
type RulesConfig struct {
	// Checkmate selects the checkmate test.
	Checkmate CheckmateRule
}

// NewRulesConfig creates a RulesConfig with default values.
func NewRulesConfig() *RulesConfig {
	return &RulesConfig{Checkmate: FullLegality}
}

// Validate checks that the rules configuration is valid.
func (r *RulesConfig) Validate() error {
	if r.Checkmate != FullLegality && r.Checkmate != KingEscapesOnly {
		return fmt.Errorf("checkmate rule %d: %w", r.Checkmate, errors.ErrInvalidConfig)
	}
	return nil
}
