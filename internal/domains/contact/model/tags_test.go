package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"harborview/internal/domains/contact/model"
)

func TestDeriveTags(t *testing.T) {
	tests := []struct {
		name               string
		category           string
		priority           string
		hasCompany         bool
		consentToMarketing bool
		want               []string
	}{
		{
			name:     "category only",
			category: model.CategoryGeneral,
			priority: model.PriorityMedium,
			want:     []string{"general"},
		},
		{
			name:     "high priority tagged",
			category: model.CategoryComplaint,
			priority: model.PriorityHigh,
			want:     []string{"complaint", "priority-high"},
		},
		{
			name:     "urgent priority tagged",
			category: model.CategoryBooking,
			priority: model.PriorityUrgent,
			want:     []string{"booking", "priority-urgent"},
		},
		{
			name:       "corporate submission",
			category:   model.CategoryBusiness,
			priority:   model.PriorityLow,
			hasCompany: true,
			want:       []string{"business", "corporate"},
		},
		{
			name:               "all labels together",
			category:           model.CategoryBusiness,
			priority:           model.PriorityHigh,
			hasCompany:         true,
			consentToMarketing: true,
			want:               []string{"business", "priority-high", "corporate", "marketing-consent"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.DeriveTags(tt.category, tt.priority, tt.hasCompany, tt.consentToMarketing))
		})
	}
}

func TestContactCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"new to read", model.StatusNew, model.StatusRead, true},
		{"new to replied", model.StatusNew, model.StatusReplied, true},
		{"new to resolved", model.StatusNew, model.StatusResolved, false},
		{"read to replied", model.StatusRead, model.StatusReplied, true},
		{"read to resolved", model.StatusRead, model.StatusResolved, true},
		{"read to archived", model.StatusRead, model.StatusArchived, true},
		{"read back to new", model.StatusRead, model.StatusNew, false},
		{"replied to resolved", model.StatusReplied, model.StatusResolved, true},
		{"replied to archived", model.StatusReplied, model.StatusArchived, true},
		{"resolved is terminal", model.StatusResolved, model.StatusArchived, false},
		{"archived is terminal", model.StatusArchived, model.StatusRead, false},
		{"unknown status", "spam", model.StatusRead, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.CanTransition(tt.from, tt.to))
		})
	}
}
