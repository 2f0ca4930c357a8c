package menu

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// ErrUnknownRoot is returned when a root override matches no sub-menu.
var ErrUnknownRoot = errors.New("unknown root menu")

type rootCandidate struct {
	id    NodeID
	label string
	path  string
}

// ResolveRoot finds the sub-menu best matching query. Both plain labels and
// slash separated paths ("Tools/Git") are accepted. Exact matches win over
// prefix matches, which win over substring and finally fuzzy matches.
func ResolveRoot(t *Tree, query string) (NodeID, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return t.Root(), nil
	}
	candidates := branchCandidates(t)
	if len(candidates) == 0 {
		return 0, fmt.Errorf("%w %q: menu has no sub-menus", ErrUnknownRoot, trimmed)
	}
	lower := strings.ToLower(trimmed)
	for _, c := range candidates {
		if strings.EqualFold(c.path, trimmed) || strings.EqualFold(c.label, trimmed) {
			return c.id, nil
		}
	}
	for _, c := range candidates {
		if strings.HasPrefix(strings.ToLower(c.label), lower) {
			return c.id, nil
		}
	}
	for _, c := range candidates {
		if strings.HasPrefix(strings.ToLower(c.path), lower) {
			return c.id, nil
		}
	}
	for _, c := range candidates {
		if strings.Contains(strings.ToLower(c.path), lower) {
			return c.id, nil
		}
	}
	paths := make([]string, len(candidates))
	for i, c := range candidates {
		paths[i] = c.path
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, paths)
	if len(ranks) == 0 {
		return 0, fmt.Errorf("%w %q", ErrUnknownRoot, trimmed)
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	return candidates[best.OriginalIndex].id, nil
}

func branchCandidates(t *Tree) []rootCandidate {
	var out []rootCandidate
	t.Walk(func(id NodeID, path []string) {
		if t.IsLeaf(id) {
			return
		}
		out = append(out, rootCandidate{
			id:    id,
			label: path[len(path)-1],
			path:  strings.Join(path, "/"),
		})
	})
	return out
}
