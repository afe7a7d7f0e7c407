package importing

import (
	"strings"

	"github.com/google/uuid"

	"github.com/oblik-ua/oblik-sdk/modules/personnel/domain/entities/dictionary"
)

// Dictionaries is the read-only snapshot the pipeline matches free text
// against. Slice order matters: ambiguous matches within a precedence tier
// resolve to the first candidate.
type Dictionaries struct {
	Units     []dictionary.Unit
	Positions []dictionary.Position
	Ranks     []dictionary.Rank
}

func normalizeToken(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch r {
		case ' ', '\t', '\n', '\r', '\'', '’', '`':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

type candidate struct {
	id   uuid.UUID
	name string
	abbr string
}

// matchIndex finds the best candidate for a free-text token. Tiers, first
// hit wins:
//  1. exact normalized equality against name or abbreviation,
//  2. candidate name contains the token,
//  3. token contains the candidate name (enabled for ranks only).
func matchIndex(token string, cands []candidate, reverse bool) int {
	norm := normalizeToken(token)
	if norm == "" {
		return -1
	}
	for i, c := range cands {
		if norm == c.name || (c.abbr != "" && norm == c.abbr) {
			return i
		}
	}
	for i, c := range cands {
		if c.name != "" && strings.Contains(c.name, norm) {
			return i
		}
	}
	if reverse {
		for i, c := range cands {
			if c.name != "" && strings.Contains(norm, c.name) {
				return i
			}
		}
	}
	return -1
}

func entryCandidates(entries []dictionary.Entry) []candidate {
	out := make([]candidate, len(entries))
	for i, e := range entries {
		out[i] = candidate{id: e.ID, name: normalizeToken(e.Name), abbr: normalizeToken(e.Abbreviation)}
	}
	return out
}

// ResolveEntry matches a token against units or positions. The zero UUID
// means no match; that is not an error, validation records it as a missing
// field later.
func ResolveEntry(token string, entries []dictionary.Entry) (uuid.UUID, string) {
	i := matchIndex(token, entryCandidates(entries), false)
	if i < 0 {
		return uuid.Nil, ""
	}
	return entries[i].ID, entries[i].Name
}

// ResolveRank returns the canonical rank name, or "" when nothing matched.
// Ranks additionally match when the token contains the rank name, so that
// e.g. "молодший сержант за контрактом" still resolves.
func ResolveRank(token string, ranks []dictionary.Rank) string {
	cands := make([]candidate, len(ranks))
	for i, r := range ranks {
		cands[i] = candidate{id: r.ID, name: normalizeToken(r.Name)}
	}
	i := matchIndex(token, cands, true)
	if i < 0 {
		return ""
	}
	return ranks[i].Name
}
