package deck

import "fmt"

// pointsPerDifficulty converts a feature's difficulty into its score value.
const pointsPerDifficulty = 10

type entry struct {
	id, name, description string
	reqs                  []Requirement
}

var catalog = []entry{
	{"feature-01", "Dark Mode", "Give night owls a theme that doesn't burn.", []Requirement{{UX, 2}, {Dev, 1}}},
	{"feature-02", "Password Reset", "Self-service recovery instead of support tickets.", []Requirement{{Dev, 2}, {PM, 1}}},
	{"feature-03", "Onboarding Tour", "Walk new users to their first success.", []Requirement{{UX, 2}, {PM, 2}}},
	{"feature-04", "CSV Export", "Let finance take their data to a spreadsheet.", []Requirement{{Dev, 3}}},
	{"feature-05", "Push Notifications", "Nudge users back at the right moment.", []Requirement{{Dev, 3}, {PM, 1}}},
	{"feature-06", "Search Autocomplete", "Suggestions as you type.", []Requirement{{Dev, 3}, {UX, 2}}},
	{"feature-07", "Billing Portal", "Invoices, cards and plan changes in one place.", []Requirement{{Dev, 3}, {PM, 2}}},
	{"feature-08", "Audit Log", "Who changed what, and when.", []Requirement{{Dev, 2}, {PM, 2}, {UX, 1}}},
	{"feature-09", "Single Sign-On", "Enterprise logins through the corporate IdP.", []Requirement{{Dev, 4}, {PM, 2}}},
	{"feature-10", "Mobile App Refresh", "A redesign the app store reviewers will notice.", []Requirement{{UX, 4}, {Dev, 2}}},
	{"feature-11", "Analytics Dashboard", "Charts the exec team will screenshot.", []Requirement{{Dev, 3}, {UX, 2}, {PM, 1}}},
	{"feature-12", "Public API", "Documented, versioned, rate limited.", []Requirement{{Dev, 4}, {PM, 3}}},
	{"feature-13", "Real-time Collaboration", "Multiple cursors, zero conflicts.", []Requirement{{Dev, 5}, {UX, 2}}},
	{"feature-14", "Localization", "Ship in six languages at once.", []Requirement{{PM, 2}, {UX, 2}, {Dev, 2}}},
	{"feature-15", "Offline Mode", "Keep working on the train.", []Requirement{{Dev, 5}, {UX, 1}, {PM, 1}}},
	{"feature-16", "Accessibility Audit", "Screen readers and keyboard users first.", []Requirement{{UX, 3}}},
	{"feature-17", "Pricing Page Redesign", "Make the upgrade button impossible to miss.", []Requirement{{UX, 2}, {PM, 2}}},
	{"feature-18", "Two-Factor Auth", "A second factor for every account.", []Requirement{{Dev, 3}, {UX, 1}}},
	{"feature-19", "Referral Program", "Customers recruit customers.", []Requirement{{PM, 3}, {Dev, 1}}},
	{"feature-20", "In-app Chat", "Support without leaving the product.", []Requirement{{Dev, 4}, {UX, 2}, {PM, 2}}},
	{"feature-21", "Data Import Wizard", "Bring everything over from the competitor.", []Requirement{{Dev, 3}, {UX, 3}}},
	{"feature-22", "Feature Flags", "Dark launches and gradual rollouts.", []Requirement{{Dev, 3}, {PM, 2}}},
	{"feature-23", "Recommendation Engine", "You might also like everything.", []Requirement{{Dev, 5}, {PM, 3}}},
	{"feature-24", "Feedback Widget", "One click from annoyance to roadmap.", []Requirement{{UX, 2}, {PM, 1}}},
	{"feature-25", "Role-based Access", "Admins, editors and viewers.", []Requirement{{Dev, 4}, {PM, 1}}},
	{"feature-26", "Usage Metering", "Bill for what customers actually use.", []Requirement{{Dev, 3}, {PM, 3}}},
	{"feature-27", "Status Page", "Tell customers before they tell you.", []Requirement{{Dev, 2}, {UX, 1}}},
	{"feature-28", "Calendar Sync", "Two-way sync with every calendar.", []Requirement{{Dev, 4}, {UX, 2}, {PM, 1}}},
	{"feature-29", "AI Assistant", "A chatbot the board asked for.", []Requirement{{Dev, 5}, {UX, 2}, {PM, 1}}},
	{"feature-30", "Marketplace Launch", "Third parties sell on our platform.", []Requirement{{PM, 4}, {Dev, 2}, {UX, 2}}},
}

// Catalog returns a fresh copy of the 30 built-in feature cards, in catalog
// order.
func Catalog() []FeatureCard {
	cards := make([]FeatureCard, len(catalog))
	for i, e := range catalog {
		card := FeatureCard{
			ID:           e.id,
			Name:         e.name,
			Description:  e.description,
			Requirements: append([]Requirement(nil), e.reqs...),
		}
		card.TotalPoints = card.Difficulty() * pointsPerDifficulty
		cards[i] = card
	}
	return cards
}

// Synthetic generates n feature cards for test fixtures. Roles are assigned
// round-robin and requirement minimums grow with the card's index, so later
// cards are harder.
func Synthetic(n int) []FeatureCard {
	cards := make([]FeatureCard, 0, n)
	for i := 0; i < n; i++ {
		primary := CoreRoles[i%len(CoreRoles)]
		reqs := []Requirement{{Role: primary, MinPoints: 1 + (i/len(CoreRoles))%4}}
		if i%2 == 1 {
			reqs = append(reqs, Requirement{Role: CoreRoles[(i+1)%len(CoreRoles)], MinPoints: 1 + i%3})
		}
		card := FeatureCard{
			ID:           fmt.Sprintf("synthetic-%02d", i+1),
			Name:         fmt.Sprintf("Synthetic Feature %d", i+1),
			Description:  "generated fixture",
			Requirements: reqs,
		}
		card.TotalPoints = card.Difficulty() * pointsPerDifficulty
		cards = append(cards, card)
	}
	return cards
}
