package bank_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/paperpress/paperpress-server/internal/bank"
	"github.com/paperpress/paperpress-server/internal/db"
)

var memDBSeq int

func newTestStore(t *testing.T) *bank.SQLStore {
	t.Helper()
	memDBSeq++
	dsn := fmt.Sprintf("file:banktest%d?mode=memory&cache=shared", memDBSeq)
	dbh, err := db.Open(context.Background(), db.DriverSQLite, dsn)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	// Shared-cache memory DBs vanish when the last connection closes.
	dbh.SetMaxOpenConns(1)
	t.Cleanup(func() { dbh.Close() })
	return bank.NewSQLStore(dbh)
}

func sampleQuestions() []bank.Question {
	correct := 2
	return []bank.Question{
		{ID: "q1", ClassID: "9th", Subject: "Physics", ChapterNumber: 1, Type: bank.TypeMCQ,
			QuestionText: "Unit of force?", Options: []string{"J", "W", "N", "Pa"}, CorrectOption: &correct, Marks: 1},
		{ID: "q2", ClassID: "9th", Subject: "Physics", ChapterNumber: 2, Type: bank.TypeShort,
			QuestionText: "Define velocity.", Difficulty: "easy", Marks: 2},
		{ID: "q3", ClassID: "10th", Subject: "Chemistry", ChapterNumber: 1, Type: bank.TypeLong,
			QuestionText: "Explain ionic bonding.", Difficulty: "hard", Marks: 5},
	}
}

func TestPutAndListQuestions(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	n, err := store.PutQuestions(ctx, sampleQuestions())
	if err != nil {
		t.Fatalf("PutQuestions: %v", err)
	}
	if n != 3 {
		t.Fatalf("written = %d, want 3", n)
	}

	all, err := store.ListQuestions(ctx, bank.Filter{})
	if err != nil {
		t.Fatalf("ListQuestions: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("listed %d questions, want 3", len(all))
	}
	// Ordered by class, subject, chapter: 10th/Chemistry sorts first.
	if all[0].ID != "q3" || all[1].ID != "q1" || all[2].ID != "q2" {
		t.Errorf("order = %s,%s,%s", all[0].ID, all[1].ID, all[2].ID)
	}
}

func TestListQuestionsRoundTripsMCQFields(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	if _, err := store.PutQuestions(ctx, sampleQuestions()); err != nil {
		t.Fatal(err)
	}

	mcqs, err := store.ListQuestions(ctx, bank.Filter{Type: bank.TypeMCQ})
	if err != nil {
		t.Fatal(err)
	}
	if len(mcqs) != 1 {
		t.Fatalf("got %d mcqs, want 1", len(mcqs))
	}
	q := mcqs[0]
	if len(q.Options) != 4 || q.Options[2] != "N" {
		t.Errorf("options = %v", q.Options)
	}
	if q.CorrectOption == nil || *q.CorrectOption != 2 {
		t.Errorf("correctOption = %v", q.CorrectOption)
	}

	shorts, err := store.ListQuestions(ctx, bank.Filter{Type: bank.TypeShort})
	if err != nil {
		t.Fatal(err)
	}
	if len(shorts) != 1 || shorts[0].Options != nil || shorts[0].CorrectOption != nil {
		t.Error("non-mcq rows must come back without option fields")
	}
}

func TestListQuestionsFilters(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	if _, err := store.PutQuestions(ctx, sampleQuestions()); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name   string
		filter bank.Filter
		want   []string
	}{
		{"by class", bank.Filter{ClassID: "9th"}, []string{"q1", "q2"}},
		{"by subject", bank.Filter{Subject: "Chemistry"}, []string{"q3"}},
		{"by difficulty", bank.Filter{Difficulty: "easy"}, []string{"q2"}},
		{"by chapter", bank.Filter{ClassID: "9th", Chapter: 2}, []string{"q2"}},
		{"no match", bank.Filter{ClassID: "11th"}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := store.ListQuestions(ctx, tc.filter)
			if err != nil {
				t.Fatal(err)
			}
			var ids []string
			for _, q := range got {
				ids = append(ids, q.ID)
			}
			if fmt.Sprint(ids) != fmt.Sprint(tc.want) {
				t.Errorf("ids = %v, want %v", ids, tc.want)
			}
		})
	}
}

func TestListQuestionsLimitOffset(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	qs := make([]bank.Question, 10)
	for i := range qs {
		qs[i] = bank.Question{
			ID: fmt.Sprintf("q%02d", i), ClassID: "9th", Subject: "Physics",
			Type: bank.TypeShort, QuestionText: "text", Marks: 2,
		}
	}
	if _, err := store.PutQuestions(ctx, qs); err != nil {
		t.Fatal(err)
	}

	page, err := store.ListQuestions(ctx, bank.Filter{Limit: 3, Offset: 4})
	if err != nil {
		t.Fatal(err)
	}
	if len(page) != 3 || page[0].ID != "q04" {
		t.Fatalf("page = %d rows starting %s, want 3 starting q04", len(page), page[0].ID)
	}
}

func TestPutQuestionsUpsertsAndAssignsIDs(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	if _, err := store.PutQuestions(ctx, sampleQuestions()); err != nil {
		t.Fatal(err)
	}

	// Same id, changed text: must update in place.
	update := []bank.Question{{ID: "q2", ClassID: "9th", Subject: "Physics", Type: bank.TypeShort,
		QuestionText: "Define acceleration.", Marks: 3}}
	if _, err := store.PutQuestions(ctx, update); err != nil {
		t.Fatal(err)
	}

	got, err := store.ListQuestions(ctx, bank.Filter{Type: bank.TypeShort})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].QuestionText != "Define acceleration." || got[0].Marks != 3 {
		t.Fatalf("upsert did not replace the row: %+v", got)
	}
	// Difficulty defaults when omitted.
	if got[0].Difficulty != "medium" {
		t.Errorf("difficulty = %q, want medium default", got[0].Difficulty)
	}

	// Missing id gets one assigned.
	n, err := store.PutQuestions(ctx, []bank.Question{{
		ClassID: "9th", Subject: "Physics", Type: bank.TypeShort, QuestionText: "new", Marks: 2,
	}})
	if err != nil || n != 1 {
		t.Fatalf("put without id: n=%d err=%v", n, err)
	}
	total, err := store.Count(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if total != 4 {
		t.Errorf("count = %d, want 4", total)
	}
}
