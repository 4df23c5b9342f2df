// Package leads scores inquiry submissions for internal triage. The score
// is a fixed weighted sum over form fields, clamped to [0,100], and is never
// shown to the submitter.
package leads

import "strings"

// Inquiry is a submitted inquiry form. Fields beyond these may arrive with
// the request; they are stored verbatim but do not affect the score.
type Inquiry struct {
	ServiceType      string   `json:"serviceType"`
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	Organization     string   `json:"organization"`
	SeniorityLevel   string   `json:"seniorityLevel"`
	OrganizationType string   `json:"organizationType"`
	Timeline         string   `json:"timeline"`
	TeamSize         string   `json:"teamSize"`
	WorkExperience   string   `json:"workExperience"`
	SelectedCourses  []string `json:"selectedCourses"`
}

// maxScore caps the additive total.
const maxScore = 100

// Score computes the triage score. Within each signal only the highest
// matching tier applies; tiers are additive across signals; no signal
// contributes negatively, so the floor is 0.
func Score(q Inquiry) int {
	score := 0

	switch q.ServiceType {
	case "courses":
		score += 20
	case "research":
		score += 15
	case "speaking":
		score += 10
	}

	switch q.SeniorityLevel {
	case "c-suite":
		score += 25
	case "director":
		score += 15
	case "manager":
		score += 10
	}

	switch q.OrganizationType {
	case "family-office", "bank":
		score += 20
	case "financial-advisory":
		score += 15
	case "corporation":
		score += 10
	}

	switch q.Timeline {
	case "asap", "urgent":
		score += 25
	case "1-2months", "1-2weeks":
		score += 15
	case "3-6months":
		score += 5
	}

	switch q.TeamSize {
	case "10+":
		score += 20
	case "4-10":
		score += 15
	case "2-3":
		score += 10
	}

	switch q.WorkExperience {
	case "15+":
		score += 10
	case "5-15":
		score += 5
	}

	if len(q.SelectedCourses) > 1 {
		score += 15
	}
	for _, course := range q.SelectedCourses {
		if strings.Contains(strings.ToLower(course), "custom") {
			score += 10
			break
		}
	}

	if score > maxScore {
		score = maxScore
	}
	return score
}
