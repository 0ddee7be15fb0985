package workstream

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Relationship detection heuristics, in priority order per pair:
// program-tagged parents (shared name tag, then name containment), note
// cross-references, tag overlap, summary keyword similarity.

// Tags that indicate a workstream is likely a parent/program.
var programTags = map[string]struct{}{
	"program":    {},
	"initiative": {},
	"project":    {},
	"portfolio":  {},
	"epic":       {},
	"parent":     {},
}

const (
	minTagOverlap  = 2
	minConfidence  = 0.3
	minKeywordHits = 3
)

type heuristicResult struct {
	confidence float64
	reason     string
}

func suggestRelationships(all []*Workstream) []Suggestion {
	var suggestions []Suggestion

	add := func(sourceID, targetID, relationship string, res *heuristicResult) bool {
		if res == nil || res.confidence < minConfidence {
			return false
		}
		suggestions = append(suggestions, Suggestion{
			SourceID:     sourceID,
			TargetID:     targetID,
			Relationship: relationship,
			Confidence:   res.confidence,
			Reason:       res.reason,
		})
		return true
	}

	for i, a := range all {
		for _, b := range all[i+1:] {
			if linked(a, b) {
				continue
			}

			if hasProgramTag(a) {
				if add(b.ID, a.ID, "parent", sharedTagParent(a, b)) {
					continue
				}
				if add(b.ID, a.ID, "parent", nameContainment(a, b)) {
					continue
				}
			}
			if hasProgramTag(b) {
				if add(a.ID, b.ID, "parent", sharedTagParent(b, a)) {
					continue
				}
				if add(a.ID, b.ID, "parent", nameContainment(b, a)) {
					continue
				}
			}
			if add(a.ID, b.ID, "related", crossReference(a, b)) {
				continue
			}
			if add(a.ID, b.ID, "related", tagOverlap(a, b)) {
				continue
			}
			add(a.ID, b.ID, "similar", summarySimilarity(a, b))
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Confidence > suggestions[j].Confidence
	})
	return suggestions
}

func linked(a, b *Workstream) bool {
	if a.ParentID != nil && *a.ParentID == b.ID {
		return true
	}
	return b.ParentID != nil && *b.ParentID == a.ID
}

func hasProgramTag(ws *Workstream) bool {
	for _, tag := range ws.Tags {
		if _, ok := programTags[tag]; ok {
			return true
		}
	}
	return false
}

// sharedTagParent fires when the parent carries a program tag and the child
// is tagged with the parent's name.
func sharedTagParent(parent, child *Workstream) *heuristicResult {
	nameTag := strings.ReplaceAll(strings.ToLower(parent.Name), " ", "-")
	nameTagBare := strings.ReplaceAll(strings.ToLower(parent.Name), " ", "")
	nameLower := strings.ToLower(parent.Name)

	for _, tag := range child.Tags {
		switch strings.ToLower(tag) {
		case nameTag, nameTagBare, nameLower:
			return &heuristicResult{
				confidence: 0.85,
				reason:     fmt.Sprintf("Child tagged with parent's name %q and parent has program tag", parent.Name),
			}
		}
	}
	return nil
}

func nameContainment(parent, child *Workstream) *heuristicResult {
	parentName := strings.ToLower(strings.TrimSpace(parent.Name))
	childName := strings.ToLower(strings.TrimSpace(child.Name))

	if parentName == childName || parentName == "" {
		return nil
	}

	// "Jupiter - Networking", "Jupiter: Networking", "Jupiter Networking"
	for _, sep := range []string{" - ", "- ", " -", "-", ": ", ":", " "} {
		if strings.HasPrefix(childName, parentName+sep) {
			return &heuristicResult{
				confidence: 0.75,
				reason:     fmt.Sprintf("Child name prefixed with parent name %q", parent.Name),
			}
		}
	}
	if strings.Contains(childName, parentName) {
		return &heuristicResult{
			confidence: 0.7,
			reason:     fmt.Sprintf("Child name contains parent name %q", parent.Name),
		}
	}
	return nil
}

func crossReference(a, b *Workstream) *heuristicResult {
	aNotes := strings.ToLower(strings.Join(a.Notes, " "))
	bNotes := strings.ToLower(strings.Join(b.Notes, " "))

	if strings.Contains(aNotes, b.ID) {
		return &heuristicResult{
			confidence: 0.9,
			reason:     fmt.Sprintf("References workstream ID %q in notes", b.ID),
		}
	}
	if strings.Contains(bNotes, a.ID) {
		return &heuristicResult{
			confidence: 0.9,
			reason:     "Referenced by workstream in its notes",
		}
	}
	if len(b.Name) > 5 && strings.Contains(aNotes, strings.ToLower(b.Name)) {
		return &heuristicResult{
			confidence: 0.7,
			reason:     fmt.Sprintf("Mentions %q in notes", b.Name),
		}
	}
	if len(a.Name) > 5 && strings.Contains(bNotes, strings.ToLower(a.Name)) {
		return &heuristicResult{
			confidence: 0.7,
			reason:     fmt.Sprintf("Mentioned by %q in its notes", b.Name),
		}
	}
	return nil
}

func tagOverlap(a, b *Workstream) *heuristicResult {
	if len(a.Tags) == 0 || len(b.Tags) == 0 {
		return nil
	}

	set := make(map[string]struct{}, len(a.Tags))
	for _, tag := range a.Tags {
		set[tag] = struct{}{}
	}

	var shared []string
	for _, tag := range b.Tags {
		if _, ok := set[tag]; !ok {
			continue
		}
		if _, program := programTags[tag]; program {
			continue
		}
		shared = append(shared, tag)
	}
	if len(shared) < minTagOverlap {
		return nil
	}

	sort.Strings(shared)
	confidence := 0.3 + float64(len(shared))*0.15
	if confidence > 0.8 {
		confidence = 0.8
	}
	return &heuristicResult{
		confidence: confidence,
		reason:     fmt.Sprintf("Share %d tags: %s", len(shared), strings.Join(shared, ", ")),
	}
}

var keywordRe = regexp.MustCompile(`[a-zA-Z]{5,}`)

var stopwords = map[string]struct{}{
	"about": {}, "after": {}, "being": {}, "between": {}, "could": {},
	"during": {}, "every": {}, "first": {}, "through": {}, "under": {},
	"using": {}, "where": {}, "which": {}, "while": {}, "would": {},
	"their": {}, "there": {}, "these": {}, "those": {}, "should": {},
	"including": {}, "working": {},
}

func summarySimilarity(a, b *Workstream) *heuristicResult {
	kwA := extractKeywords(a.Summary)
	kwB := extractKeywords(b.Summary)
	if len(kwA) == 0 || len(kwB) == 0 {
		return nil
	}

	var overlap []string
	union := len(kwA)
	for kw := range kwB {
		if _, ok := kwA[kw]; ok {
			overlap = append(overlap, kw)
		} else {
			union++
		}
	}
	if len(overlap) < minKeywordHits {
		return nil
	}

	jaccard := float64(len(overlap)) / float64(union)
	confidence := jaccard + 0.2
	if confidence > 0.6 {
		confidence = 0.6
	}

	sort.Strings(overlap)
	if len(overlap) > 5 {
		overlap = overlap[:5]
	}
	return &heuristicResult{
		confidence: confidence,
		reason:     fmt.Sprintf("Summary keyword overlap: %s", strings.Join(overlap, ", ")),
	}
}

func extractKeywords(text string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, word := range keywordRe.FindAllString(strings.ToLower(text), -1) {
		if _, stop := stopwords[word]; stop {
			continue
		}
		out[word] = struct{}{}
	}
	return out
}
