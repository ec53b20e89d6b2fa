package model

// DeriveTags labels a submission at intake so the inbox can be triaged without
// reopening each message. Tags are computed once at creation and never
// recomputed afterwards.
func DeriveTags(category, priority string, hasCompany, consentToMarketing bool) []string {
	tags := []string{category}

	if priority == PriorityHigh || priority == PriorityUrgent {
		tags = append(tags, "priority-"+priority)
	}

	if hasCompany {
		tags = append(tags, "corporate")
	}

	if consentToMarketing {
		tags = append(tags, "marketing-consent")
	}

	return tags
}
