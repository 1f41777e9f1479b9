package recommend

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/syntaxlabz/errors-playground/internal/catalog"
)

func recNames(recs []Recommendation) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Error.Name
	}
	return out
}

func sameNames(t *testing.T, got []Recommendation, want ...string) {
	t.Helper()
	g := recNames(got)
	if len(g) != len(want) {
		t.Fatalf("got %v, want %v", g, want)
	}
	for i := range want {
		if g[i] != want[i] {
			t.Fatalf("got %v, want %v", g, want)
		}
	}
}

// ---------- scoring ----------

func TestScore_BlankInput(t *testing.T) {
	s := NewScorer()
	for _, in := range []string{"", "   ", "\n\t"} {
		if got := s.Score(in, catalog.Default()); got != nil {
			t.Fatalf("Score(%q) = %v, want nil", in, recNames(got))
		}
	}
	if got := s.Score("missing", nil); got != nil {
		t.Fatalf("nil catalog should yield nil")
	}
}

func TestScore_AdminDashboardPrefersForbidden(t *testing.T) {
	got := NewScorer().Score("Regular user is trying to access admin-only dashboard", catalog.Default())
	sameNames(t, got, "Forbidden", "NotFound")

	if got[0].Confidence != 95 {
		t.Fatalf("Forbidden confidence = %d, want 95", got[0].Confidence)
	}
	want := `Matches keyword: "access", Matches scenario pattern, Permission/access control context`
	if r := got[0].Reasoning(); r != want {
		t.Fatalf("reasoning = %q, want %q", r, want)
	}
	if got[1].Confidence != 25 {
		t.Fatalf("NotFound confidence = %d, want 25", got[1].Confidence)
	}
}

func TestScore_DatabaseLoginTiesKeepCatalogOrder(t *testing.T) {
	got := NewScorer().Score("Unable to connect to database server during user login", catalog.Default())
	sameNames(t, got, "Unauthorized", "InternalServerError", "Forbidden")

	wantConf := []int{65, 65, 35}
	for i, w := range wantConf {
		if got[i].Confidence != w {
			t.Fatalf("[%d] %s confidence = %d, want %d", i, got[i].Error.Name, got[i].Confidence, w)
		}
	}
	if r := got[1].Reasoning(); r != `Matches keyword: "database", Server/infrastructure context` {
		t.Fatalf("reasoning = %q", r)
	}
}

func TestScore_ScenarioOnlyMatches(t *testing.T) {
	got := NewScorer().Score("User is trying to register but didn't provide an email address", catalog.Default())
	sameNames(t, got, "MissingParameter", "NotFound", "Conflict")
	for _, r := range got {
		if r.Confidence != 25 {
			t.Fatalf("%s confidence = %d, want 25", r.Error.Name, r.Confidence)
		}
		if r.Reasoning() != "Matches scenario pattern" {
			t.Fatalf("%s reasoning = %q", r.Error.Name, r.Reasoning())
		}
	}
}

func TestScore_InvalidEmail(t *testing.T) {
	got := NewScorer().Score("User entered 'invalid-email' as their email address during registration", catalog.Default())
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].Error.Name != "InvalidParameter" || got[0].Confidence != 95 {
		t.Fatalf("top = %s/%d", got[0].Error.Name, got[0].Confidence)
	}
}

func TestScore_OverlappingTriggersRewardBoth(t *testing.T) {
	got := NewScorer().Score("the email is MISSING", catalog.Default())
	sameNames(t, got, "MissingParameter", "NotFound")
	for _, r := range got {
		if r.Confidence != 70 {
			t.Fatalf("%s confidence = %d, want 70", r.Error.Name, r.Confidence)
		}
	}
}

func TestScore_Cap(t *testing.T) {
	got := NewScorer().Score("missing required empty parameter field null", catalog.Default())
	if len(got) == 0 || got[0].Error.Name != "MissingParameter" {
		t.Fatalf("top = %v", recNames(got))
	}
	if got[0].Confidence != DefaultConfidenceCap {
		t.Fatalf("confidence = %d, want %d", got[0].Confidence, DefaultConfidenceCap)
	}
	// six keywords, two scenario phrases and one rule; reasons survive the clamp
	if n := len(got[0].Reasons); n != 9 {
		t.Fatalf("reasons = %d, want 9", n)
	}

	got = NewScorer(WithConfidenceCap(50)).Score("missing required empty parameter field null", catalog.Default())
	if got[0].Confidence != 50 {
		t.Fatalf("custom cap not applied: %d", got[0].Confidence)
	}
}

func TestScore_NoMatchIsEmpty(t *testing.T) {
	if got := NewScorer().Score("xyzzy", catalog.Default()); len(got) != 0 {
		t.Fatalf("expected no results, got %v", recNames(got))
	}
}

// ---------- options ----------

func TestOptions_LimitAndRules(t *testing.T) {
	in := "Unable to connect to database server during user login"

	s := NewScorer(WithLimit(10))
	if s.Limit() != 10 {
		t.Fatalf("Limit() = %d", s.Limit())
	}
	got := s.Score(in, catalog.Default())
	sameNames(t, got, "Unauthorized", "InternalServerError", "Forbidden", "RateLimited", "NotFound")

	if NewScorer(WithLimit(0)).Limit() != DefaultLimit {
		t.Fatalf("non-positive limit should be ignored")
	}

	// without contextual rules only keyword and scenario scoring remains
	got = NewScorer(WithRules(nil), WithLimit(10)).Score(in, catalog.Default())
	sameNames(t, got, "Unauthorized", "InternalServerError", "NotFound")
	for _, r := range got[:2] {
		if r.Confidence != 30 {
			t.Fatalf("%s confidence = %d, want 30", r.Error.Name, r.Confidence)
		}
	}
}

func TestDefaultRules_ReturnsFreshCopy(t *testing.T) {
	a := DefaultRules()
	a[0].Bonus = 1
	if DefaultRules()[0].Bonus != 40 {
		t.Fatalf("DefaultRules shares state")
	}
}

func TestRule_AppliesNeedsTarget(t *testing.T) {
	def, _ := catalog.Default().ByName("Forbidden")
	if (Rule{Triggers: []string{"access"}, Bonus: 1}).Applies("access", def) {
		t.Fatalf("rule without target should never apply")
	}
	r := Rule{Triggers: []string{"access"}, Category: catalog.CategoryAuthentication, Bonus: 1}
	if !r.Applies("access", def) {
		t.Fatalf("category rule should apply")
	}
}

// ---------- purity ----------

func TestScore_ConcurrentCallersShareCatalog(t *testing.T) {
	c := catalog.Default()
	s := NewScorer()
	want := recNames(s.Score("Regular user is trying to access admin-only dashboard", c))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := recNames(s.Score("Regular user is trying to access admin-only dashboard", c))
			if len(got) != len(want) || got[0] != want[0] {
				t.Errorf("got %v, want %v", got, want)
			}
		}()
	}
	wg.Wait()

	if c.At(0).Name != "MissingParameter" || c.Len() != 8 {
		t.Fatalf("catalog mutated")
	}
}

// ---------- delay ----------

func TestDelay(t *testing.T) {
	if err := (NoDelay{}).Wait(context.Background()); err != nil {
		t.Fatalf("NoDelay: %v", err)
	}
	if _, ok := DelayFor(0).(NoDelay); !ok {
		t.Fatalf("DelayFor(0) should be NoDelay")
	}

	start := time.Now()
	if err := Sleep(10 * time.Millisecond).Wait(context.Background()); err != nil {
		t.Fatalf("Sleep: %v", err)
	}
	if time.Since(start) < 10*time.Millisecond {
		t.Fatalf("Sleep returned early")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := DelayFor(time.Hour).Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
