package game

import (
	"fmt"
	"sort"

	"github.com/lox/shipit/internal/deck"
)

// contractorPenaltyPercent is the share of a feature's points kept when any
// contractor card was used to complete it.
const contractorPenaltyPercent = 95

// CompletionResult reports a successful completion.
type CompletionResult struct {
	FeatureID    string            `json:"featureId"`
	Awarded      int               `json:"awarded"`
	Penalized    bool              `json:"penalized"`
	ConsumedIDs  []string          `json:"consumedIds"`
	NextFeature  *deck.FeatureCard `json:"nextFeature,omitempty"`
	Won          bool              `json:"won"`
	TotalScore   int               `json:"totalScore"`
	Completions  int               `json:"completions"`
	TargetNeeded int               `json:"targetNeeded"`
}

// AttemptComplete spends resourceCardIDs from the player's hand on their
// active feature. featureIDs must name only that feature; bundles of several
// features are not supported.
//
// Contractor cards are wildcards worth 2 points each, spent on whatever
// deficit the role-specific cards leave. Using any contractor costs a flat 5%
// of the feature's points, rounded down, however little of it was needed.
func (g *Game) AttemptComplete(playerID string, featureIDs, resourceCardIDs []string) (CompletionResult, error) {
	if err := g.ensureActive(); err != nil {
		return CompletionResult{}, err
	}
	if err := g.ensureNoPendingEvent(); err != nil {
		return CompletionResult{}, err
	}
	p, err := g.Player(playerID)
	if err != nil {
		return CompletionResult{}, err
	}

	if len(featureIDs) == 0 {
		return CompletionResult{}, ErrNoFeatures
	}
	if p.ActiveFeature == nil {
		return CompletionResult{}, fmt.Errorf("%w: %s", ErrNoActiveFeature, p.ID)
	}
	feature := *p.ActiveFeature
	for _, id := range featureIDs {
		if id != feature.ID {
			return CompletionResult{}, fmt.Errorf("%w: %s (active is %s)", ErrFeatureMismatch, id, feature.ID)
		}
	}

	seen := make(map[string]bool, len(resourceCardIDs))
	for _, id := range resourceCardIDs {
		if seen[id] {
			return CompletionResult{}, fmt.Errorf("%w: %s", ErrDuplicateCard, id)
		}
		seen[id] = true
	}
	for _, id := range resourceCardIDs {
		if l, ok := p.lockFor(id); ok && l.AvailableOnTurn > g.Turn {
			return CompletionResult{}, fmt.Errorf("%w: %s until turn %d", ErrCardLocked, id, l.AvailableOnTurn)
		}
	}

	cards := make([]ResourceCard, 0, len(resourceCardIDs))
	for _, id := range resourceCardIDs {
		i := p.CardIndex(id)
		if i < 0 {
			return CompletionResult{}, fmt.Errorf("%w: %s not in %s's hand", ErrCardNotFound, id, p.ID)
		}
		cards = append(cards, p.Hand[i])
	}

	have, contractors := tally(cards)
	budget := contractors * contractorPoints
	for _, req := range feature.Requirements {
		if deficit := req.MinPoints - have[req.Role]; deficit > 0 {
			budget -= deficit
			if budget < 0 {
				return CompletionResult{}, fmt.Errorf("%w: %s needs %d more %s", ErrInsufficientPoints, feature.Name, -budget, req.Role)
			}
		}
	}

	awarded := feature.TotalPoints
	penalized := contractors > 0
	if penalized {
		awarded = feature.TotalPoints * contractorPenaltyPercent / 100
	}

	g.FeatureDeck.Remove(feature.ID)
	if !containsFeature(g.DiscardPile, feature.ID) {
		g.DiscardPile = append(g.DiscardPile, feature)
	}
	p.ActiveFeature = nil
	if next, ok := g.FeatureDeck.Draw(); ok {
		p.ActiveFeature = &next
	}
	for _, id := range resourceCardIDs {
		p.removeCard(id)
	}
	p.Score += awarded
	p.CompletedFeatures = append(p.CompletedFeatures, feature.ID)
	p.Challenge = nil

	g.logf(p.ID, LogComplete, "%s shipped %s for %d pts%s", p.Name, feature.Name, awarded, penaltyNote(penalized))
	g.log().Debug("Completed feature", "player", p.ID, "feature", feature.ID, "awarded", awarded, "contractors", contractors)

	result := CompletionResult{
		FeatureID:    feature.ID,
		Awarded:      awarded,
		Penalized:    penalized,
		ConsumedIDs:  append([]string{}, resourceCardIDs...),
		TotalScore:   p.Score,
		Completions:  len(p.CompletedFeatures),
		TargetNeeded: g.TargetFeatures,
	}
	if p.ActiveFeature != nil {
		next := p.ActiveFeature.Clone()
		result.NextFeature = &next
	}

	if len(p.CompletedFeatures) >= g.TargetFeatures {
		g.Status = StatusWon
		result.Won = true
		g.logf(p.ID, LogComplete, "Target of %d features reached, the team wins", g.TargetFeatures)
		g.log().Info("Game won", "player", p.ID, "turn", g.Turn)
	}
	return result, nil
}

func penaltyNote(penalized bool) string {
	if penalized {
		return " (contractor penalty)"
	}
	return ""
}

func containsFeature(cards []deck.FeatureCard, id string) bool {
	for _, c := range cards {
		if c.ID == id {
			return true
		}
	}
	return false
}

// tally sums non-contractor points by role and counts contractors.
func tally(cards []ResourceCard) (map[deck.Role]int, int) {
	have := make(map[deck.Role]int)
	contractors := 0
	for _, c := range cards {
		if c.IsContractor() {
			contractors++
			continue
		}
		have[c.Role] += c.Points
	}
	return have, contractors
}

// RoleCandidate is the preview for one requirement of the active feature.
type RoleCandidate struct {
	Role    deck.Role `json:"role"`
	Need    int       `json:"need"`
	Have    int       `json:"have"`
	Deficit int       `json:"deficit"`
}

// Candidates previews whether a player can complete their active feature
// with the cards currently usable in hand.
type Candidates struct {
	FeatureID        string          `json:"featureId,omitempty"`
	Roles            []RoleCandidate `json:"roles"`
	TotalDeficit     int             `json:"totalDeficit"`
	ContractorPoints int             `json:"contractorPoints"`
	Coverable        bool            `json:"coverable"`
	// Suggested is a card set that completes the feature: role cards first,
	// highest points first, then as few contractors as needed. Empty unless
	// Coverable.
	Suggested []string `json:"suggested"`
}

// CompletionCandidates computes Candidates without mutating anything. A
// player without an active feature gets an empty, non-coverable preview.
func (g *Game) CompletionCandidates(playerID string) (Candidates, error) {
	p, err := g.Player(playerID)
	if err != nil {
		return Candidates{}, err
	}
	out := Candidates{Roles: []RoleCandidate{}, Suggested: []string{}}
	if p.ActiveFeature == nil {
		return out, nil
	}
	out.FeatureID = p.ActiveFeature.ID

	usable := make([]ResourceCard, 0, len(p.Hand))
	for _, c := range p.Hand {
		if !p.IsLocked(c.ID, g.Turn) {
			usable = append(usable, c)
		}
	}
	have, contractors := tally(usable)
	out.ContractorPoints = contractors * contractorPoints

	for _, req := range p.ActiveFeature.Requirements {
		rc := RoleCandidate{Role: req.Role, Need: req.MinPoints, Have: have[req.Role]}
		rc.Deficit = max(0, rc.Need-rc.Have)
		out.TotalDeficit += rc.Deficit
		out.Roles = append(out.Roles, rc)
	}
	out.Coverable = out.TotalDeficit <= out.ContractorPoints
	if out.Coverable {
		out.Suggested = suggest(*p.ActiveFeature, usable, out.TotalDeficit)
	}
	return out, nil
}

// suggest picks the cards to submit for a coverable feature.
func suggest(feature deck.FeatureCard, usable []ResourceCard, deficit int) []string {
	byRole := make(map[deck.Role][]ResourceCard)
	var contractors []ResourceCard
	for _, c := range usable {
		if c.IsContractor() {
			contractors = append(contractors, c)
			continue
		}
		byRole[c.Role] = append(byRole[c.Role], c)
	}

	ids := []string{}
	for _, req := range feature.Requirements {
		cards := byRole[req.Role]
		sort.SliceStable(cards, func(i, j int) bool { return cards[i].Points > cards[j].Points })
		got := 0
		for _, c := range cards {
			if got >= req.MinPoints {
				break
			}
			ids = append(ids, c.ID)
			got += c.Points
		}
	}
	for i := 0; deficit > 0 && i < len(contractors); i++ {
		ids = append(ids, contractors[i].ID)
		deficit -= contractorPoints
	}
	return ids
}
