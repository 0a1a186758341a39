package projection

import (
	"testing"
	"time"
)

func TestProject_GroupsRowsByID(t *testing.T) {
	rows := []Row{
		{"id": int64(1), "title": "first", "user:id": int64(10), "user:user_name": "alice", "review:id": int64(100), "review:rating": int64(4)},
		{"id": int64(1), "title": "first", "user:id": int64(10), "user:user_name": "alice", "review:id": int64(101), "review:rating": int64(2)},
		{"id": int64(2), "title": "second", "user:id": int64(11), "user:user_name": "bob", "review:id": nil, "review:rating": nil},
	}

	trees := Project(rows, "id")
	if len(trees) != 2 {
		t.Fatalf("expected 2 trees, got %d", len(trees))
	}

	first := trees[0]
	if first.Root["title"] != "first" {
		t.Fatalf("unexpected root: %+v", first.Root)
	}
	if len(first.Rows) != 2 {
		t.Fatalf("expected 2 rows retained for first tree, got %d", len(first.Rows))
	}
	if first.Nested["user"]["user_name"] != "alice" {
		t.Fatalf("unexpected nested user: %+v", first.Nested["user"])
	}

	second := trees[1]
	if second.Root["title"] != "second" {
		t.Fatalf("trees out of first-appearance order: %+v", second.Root)
	}
}

func TestProject_PreservesRowOrder(t *testing.T) {
	rows := []Row{
		{"id": int64(3), "title": "c"},
		{"id": int64(1), "title": "a"},
		{"id": int64(2), "title": "b"},
		{"id": int64(3), "title": "c"},
	}

	trees := Project(rows, "id")
	got := []string{}
	for _, tree := range trees {
		got = append(got, tree.Root["title"].(string))
	}
	want := []string{"c", "a", "b"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestProject_NestedFromFirstOccurrence(t *testing.T) {
	rows := []Row{
		{"id": int64(1), "user:user_name": "first"},
		{"id": int64(1), "user:user_name": "second"},
	}

	trees := Project(rows, "id")
	if len(trees) != 1 {
		t.Fatalf("expected 1 tree, got %d", len(trees))
	}
	if got := trees[0].Nested["user"]["user_name"]; got != "first" {
		t.Fatalf("nested object must come from the first row of the group, got %v", got)
	}
}

func TestProject_NilNestedValuesSkipped(t *testing.T) {
	rows := []Row{
		{"id": int64(1), "user:id": nil, "user:user_name": nil},
	}

	trees := Project(rows, "id")
	if len(trees[0].Nested["user"]) != 0 {
		t.Fatalf("expected empty user group for unmatched join, got %+v", trees[0].Nested["user"])
	}
}

func TestProject_Empty(t *testing.T) {
	if trees := Project(nil, "id"); len(trees) != 0 {
		t.Fatalf("expected no trees for no rows, got %d", len(trees))
	}
}

func TestReviewStats_RoundsAverage(t *testing.T) {
	rows := []Row{
		{"review:id": int64(1), "review:rating": int64(2)},
		{"review:id": int64(2), "review:rating": int64(3)},
		{"review:id": int64(3), "review:rating": int64(1)},
		{"review:id": int64(4), "review:rating": int64(5)},
	}

	count, average := ReviewStats(rows, "review:id", "review:rating")
	if count != 4 {
		t.Fatalf("expected 4 reviews, got %d", count)
	}
	// (2+3+1+5)/4 = 2.75, rounds to 3
	if average != 3 {
		t.Fatalf("expected average 3, got %d", average)
	}
}

func TestReviewStats_DeduplicatesByID(t *testing.T) {
	rows := []Row{
		{"review:id": int64(1), "review:rating": int64(4)},
		{"review:id": int64(1), "review:rating": int64(4)},
		{"review:id": int64(2), "review:rating": int64(2)},
	}

	count, average := ReviewStats(rows, "review:id", "review:rating")
	if count != 2 {
		t.Fatalf("expected 2 distinct reviews, got %d", count)
	}
	if average != 3 {
		t.Fatalf("expected average 3, got %d", average)
	}
}

func TestReviewStats_NoReviews(t *testing.T) {
	rows := []Row{
		{"review:id": nil, "review:rating": nil},
	}

	count, average := ReviewStats(rows, "review:id", "review:rating")
	if count != 0 || average != 0 {
		t.Fatalf("expected (0, 0) for no reviews, got (%d, %d)", count, average)
	}
}

func TestAsTime_AcceptedLayouts(t *testing.T) {
	cases := []string{
		"2021-03-01T12:00:00.000Z",
		"2021-03-01 12:00:00.000000000+00:00",
		"2021-03-01 12:00:00",
	}
	for _, raw := range cases {
		got := AsTime(raw)
		if got.IsZero() {
			t.Errorf("AsTime(%q) returned zero time", raw)
		}
	}

	now := time.Now()
	if !AsTime(now).Equal(now) {
		t.Errorf("AsTime should pass time.Time through unchanged")
	}
	if !AsTime(nil).IsZero() {
		t.Errorf("AsTime(nil) should be zero")
	}
}

func TestAsInt64(t *testing.T) {
	if AsInt64(int64(7)) != 7 || AsInt64(12) != 12 || AsInt64(12.0) != 12 || AsInt64(nil) != 0 {
		t.Fatalf("AsInt64 conversions failed")
	}
}
