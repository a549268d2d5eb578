package store

import (
	"errors"
	"strings"
	"testing"

	"github.com/konstrukt-app/konstrukt-be/models"
)

func TestBuildFindUsersByIDs(t *testing.T) {
	query, args, err := buildFindUsersByIDs([]string{"u1", "u2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(query, "FROM users") || !strings.Contains(query, "id IN") {
		t.Errorf("unexpected query: %s", query)
	}
	if len(args) != 2 {
		t.Errorf("expected 2 args, got %d", len(args))
	}
}

func TestBuildListTemplates_ActiveFilter(t *testing.T) {
	query, args, err := buildListTemplates(true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(query, "is_active") {
		t.Errorf("expected is_active filter in query: %s", query)
	}
	if len(args) != 1 {
		t.Errorf("expected 1 arg, got %d", len(args))
	}

	query, args, err = buildListTemplates(false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(query, "WHERE") {
		t.Errorf("expected no filter in query: %s", query)
	}
	if len(args) != 0 {
		t.Errorf("expected no args, got %d", len(args))
	}
	if !strings.Contains(query, "ORDER BY sort_order ASC, created_at ASC") {
		t.Errorf("expected display ordering in query: %s", query)
	}
}

func TestBuildUpdateTemplate_Partial(t *testing.T) {
	name := "renamed"
	query, args, err := buildUpdateTemplate("t1", models.TemplateInput{Name: &name})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(query, "name = ") {
		t.Errorf("expected name assignment in query: %s", query)
	}
	if strings.Contains(query, "title_ru") {
		t.Errorf("unset fields must not appear in query: %s", query)
	}
	// updated_at bump + name + id
	if len(args) != 2 {
		t.Errorf("expected 2 args, got %d: %v", len(args), args)
	}
}

func TestBuildUpdateTemplate_NoFields(t *testing.T) {
	_, _, err := buildUpdateTemplate("t1", models.TemplateInput{})
	if !errors.Is(err, ErrNothingToUpdate) {
		t.Fatalf("expected ErrNothingToUpdate, got %v", err)
	}
}

func TestBuildReviewOrder_ApprovalClearsComment(t *testing.T) {
	approved := true
	comment := "should be discarded"

	query, args, err := buildReviewOrder(models.OrderReview{
		ID:              "o1",
		Approved:        &approved,
		RevisionComment: &comment,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// single assignment per column, comment forced to empty
	if strings.Count(query, "revision_comment") != 1 {
		t.Errorf("expected exactly one revision_comment assignment: %s", query)
	}
	if len(args) != 3 {
		t.Fatalf("expected 3 args, got %d: %v", len(args), args)
	}
	if args[1] != "" {
		t.Errorf("expected cleared comment, got %v", args[1])
	}
}

func TestBuildReviewOrder_NoFields(t *testing.T) {
	_, _, err := buildReviewOrder(models.OrderReview{ID: "o1"})
	if !errors.Is(err, ErrNothingToUpdate) {
		t.Fatalf("expected ErrNothingToUpdate, got %v", err)
	}
}
