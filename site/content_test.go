package site

import (
	"testing"
	"time"

	"pgregory.net/rapid"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIndexItems(t *testing.T) {
	articles := []Article{
		{Title: "Old post", Date: day(2018, 1, 5), Path: "/articles/old.html"},
		{Title: "New post", Date: day(2021, 3, 1), Path: "/articles/new.html"},
		{Title: "Guest post", Date: day(2019, 7, 9), URL: "https://elsewhere.example/guest", External: true},
	}
	links := []ExternalLink{
		{Title: "Interview", Date: day(2020, 2, 2), URL: "https://podcast.example/42"},
		{Title: "Same day link", Date: day(2018, 1, 5), URL: "https://example.org/x"},
	}
	items := IndexItems(articles, links)
	expect := []string{"New post", "Interview", "Guest post", "Old post", "Same day link"}
	if len(items) != len(expect) {
		t.Fatalf("Expected %d items but got %d", len(expect), len(items))
	}
	for i := range expect {
		if items[i].ItemTitle() != expect[i] {
			t.Errorf("Item %d: expected %q but got %q", i, expect[i], items[i].ItemTitle())
		}
	}
	if items[0].IsExternal() || items[0].ItemURL() != "/articles/new.html" {
		t.Errorf("Local article should link to its page, got %q", items[0].ItemURL())
	}
	if !items[2].IsExternal() || items[2].ItemURL() != "https://elsewhere.example/guest" {
		t.Errorf("External article should link out, got %q", items[2].ItemURL())
	}
	if !items[1].IsExternal() {
		t.Error("Links are always external")
	}
}

func TestIndexItemsEmpty(t *testing.T) {
	if items := IndexItems(nil, nil); len(items) != 0 {
		t.Errorf("Expected no items but got %d", len(items))
	}
}

func TestIndexItemsProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		// Few distinct days so that ties are common.
		genDate := rapid.Custom(func(t *rapid.T) time.Time {
			return day(2020, 1, 1).AddDate(0, 0, rapid.IntRange(0, 5).Draw(t, "offset"))
		})
		nArticles := rapid.IntRange(0, 20).Draw(t, "articles")
		nLinks := rapid.IntRange(0, 20).Draw(t, "links")
		articles := make([]Article, nArticles)
		for i := range articles {
			articles[i] = Article{Title: "a" + string(rune('A'+i)), Date: genDate.Draw(t, "date")}
		}
		links := make([]ExternalLink, nLinks)
		for i := range links {
			links[i] = ExternalLink{Title: "l" + string(rune('A'+i)), Date: genDate.Draw(t, "date")}
		}

		items := IndexItems(articles, links)

		if len(items) != nArticles+nLinks {
			t.Fatalf("length %d, want %d", len(items), nArticles+nLinks)
		}
		// position of each title in the input order
		inputPos := make(map[string]int, len(items))
		for i, a := range articles {
			inputPos[a.Title] = i
		}
		for i, l := range links {
			inputPos[l.Title] = nArticles + i
		}
		for i := 1; i < len(items); i++ {
			prev, cur := items[i-1], items[i]
			if prev.ItemDate().Before(cur.ItemDate()) {
				t.Fatalf("item %d (%v) is newer than item %d (%v)", i, cur.ItemDate(), i-1, prev.ItemDate())
			}
			if prev.ItemDate().Equal(cur.ItemDate()) && inputPos[prev.ItemTitle()] > inputPos[cur.ItemTitle()] {
				t.Fatalf("tie at %v not stable: %q before %q", cur.ItemDate(), prev.ItemTitle(), cur.ItemTitle())
			}
		}
	})
}
