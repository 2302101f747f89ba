package http

import (
	"testing"

	"github.com/google/uuid"

	"github.com/carhive/carhive-api/internal/domain"
)

func TestReviewerDisplayName(t *testing.T) {
	name := "  Asha Verma "
	email := "asha.verma@example.com"
	blank := "   "

	cases := []struct {
		label  string
		review domain.Review
		want   string
	}{
		{"name present", domain.Review{ReviewerName: &name, ReviewerEmail: &email}, "Asha Verma"},
		{"blank name falls back to email local part", domain.Review{ReviewerName: &blank, ReviewerEmail: &email}, "asha.verma"},
		{"email only", domain.Review{ReviewerEmail: &email}, "asha.verma"},
		{"nothing known", domain.Review{}, "Anonymous"},
	}
	for _, tc := range cases {
		if got := reviewerDisplayName(tc.review); got != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.label, got, tc.want)
		}
	}
}

func TestToReviewResponse(t *testing.T) {
	review := domain.Review{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		VehicleID: "v-1",
		Rating:    4,
		Comment:   "Comfortable ride",
		Vehicle:   &domain.VehicleRef{Name: "City", Brand: "Honda"},
	}

	resp := toReviewResponse(review)
	if resp.ID != review.ID || resp.VehicleID != "v-1" || resp.Rating != 4 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Reviewer.ID != review.UserID || resp.Reviewer.DisplayName != "Anonymous" {
		t.Fatalf("unexpected reviewer: %+v", resp.Reviewer)
	}
	if resp.Vehicle == nil || resp.Vehicle.Name != "City" || resp.Vehicle.Brand != "Honda" {
		t.Fatalf("expected vehicle decoration, got %+v", resp.Vehicle)
	}

	review.Vehicle = nil
	if resp := toReviewResponse(review); resp.Vehicle != nil {
		t.Fatalf("expected nil vehicle for undecorated review")
	}
}
