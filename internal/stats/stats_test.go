package stats

import (
	"testing"

	"bloglist/internal/storage"
)

var fixture = []storage.Post{
	{ID: 1, Title: "React patterns", Author: "Michael Chan", URL: "https://reactpatterns.com/", Likes: 7},
	{ID: 2, Title: "Go To Statement Considered Harmful", Author: "Edsger W. Dijkstra", URL: "http://www.u.arizona.edu/~rubinson/copyright_violations/Go_To_Considered_Harmful.html", Likes: 5},
	{ID: 3, Title: "Canonical string reduction", Author: "Edsger W. Dijkstra", URL: "http://www.cs.utexas.edu/~EWD/transcriptions/EWD08xx/EWD808.html", Likes: 12},
	{ID: 4, Title: "First class tests", Author: "Robert C. Martin", URL: "http://blog.cleancoder.com/uncle-bob/2017/05/05/TestDefinitions.htmll", Likes: 10},
	{ID: 5, Title: "TDD harms architecture", Author: "Robert C. Martin", URL: "http://blog.cleancoder.com/uncle-bob/2017/03/03/TDD-Harms-Architecture.html", Likes: 0},
	{ID: 6, Title: "Type wars", Author: "Robert C. Martin", URL: "http://blog.cleancoder.com/uncle-bob/2016/05/01/TypeWars.html", Likes: 2},
}

func TestTotalLikesEmpty(t *testing.T) {
	if got := TotalLikes(nil); got != 0 {
		t.Fatalf("TotalLikes(nil) = %d, want 0", got)
	}
	if got := TotalLikes([]storage.Post{}); got != 0 {
		t.Fatalf("TotalLikes(empty) = %d, want 0", got)
	}
}

func TestTotalLikes(t *testing.T) {
	posts := []storage.Post{{Likes: 7}, {Likes: 5}}
	if got := TotalLikes(posts); got != 12 {
		t.Fatalf("TotalLikes = %d, want 12", got)
	}
	if got := TotalLikes(fixture); got != 36 {
		t.Fatalf("TotalLikes(fixture) = %d, want 36", got)
	}
}

func TestTotalLikesDoesNotMutateInput(t *testing.T) {
	posts := []storage.Post{{Likes: 3}, {Likes: 4}}
	_ = TotalLikes(posts)
	if posts[0].Likes != 3 || posts[1].Likes != 4 {
		t.Fatalf("input mutated: %+v", posts)
	}
}

func TestFavouritePostEmpty(t *testing.T) {
	if got := FavouritePost(nil); got != nil {
		t.Fatalf("FavouritePost(nil) = %+v, want nil", got)
	}
}

func TestFavouritePost(t *testing.T) {
	got := FavouritePost(fixture)
	if got == nil {
		t.Fatal("FavouritePost returned nil for non-empty input")
	}
	if got.Likes != 12 || got.Title != "Canonical string reduction" {
		t.Fatalf("FavouritePost = %+v, want Canonical string reduction with 12 likes", got)
	}
}

func TestFavouritePostTieFirstWins(t *testing.T) {
	posts := []storage.Post{
		{Title: "first", Likes: 9},
		{Title: "second", Likes: 9},
	}
	got := FavouritePost(posts)
	if got == nil || got.Title != "first" {
		t.Fatalf("FavouritePost tie = %+v, want first occurrence", got)
	}
}

func TestFavouritePostReturnsCopy(t *testing.T) {
	posts := []storage.Post{{Title: "only", Likes: 1}}
	got := FavouritePost(posts)
	got.Likes = 99
	if posts[0].Likes != 1 {
		t.Fatalf("input mutated through returned pointer: %+v", posts[0])
	}
}

func TestMostProlificAuthorEmpty(t *testing.T) {
	if got := MostProlificAuthor(nil); got != nil {
		t.Fatalf("MostProlificAuthor(nil) = %+v, want nil", got)
	}
}

func TestMostProlificAuthor(t *testing.T) {
	got := MostProlificAuthor(fixture)
	if got == nil {
		t.Fatal("MostProlificAuthor returned nil for non-empty input")
	}
	if got.Author != "Robert C. Martin" || got.Count != 3 {
		t.Fatalf("MostProlificAuthor = %+v, want {Robert C. Martin 3}", got)
	}
}

func TestMostProlificAuthorThreeVsTwo(t *testing.T) {
	posts := []storage.Post{
		{Author: "A"}, {Author: "A"}, {Author: "B"}, {Author: "A"}, {Author: "B"},
	}
	got := MostProlificAuthor(posts)
	if got == nil || got.Author != "A" || got.Count != 3 {
		t.Fatalf("MostProlificAuthor = %+v, want {A 3}", got)
	}
}

func TestMostProlificAuthorTieFirstSeenWins(t *testing.T) {
	// Z 先达到计数 2，后续 A 的并列不改变结果（先见先得，与字典序无关）。
	posts := []storage.Post{
		{Author: "Z"}, {Author: "A"}, {Author: "Z"}, {Author: "A"},
	}
	got := MostProlificAuthor(posts)
	if got == nil || got.Author != "Z" || got.Count != 2 {
		t.Fatalf("MostProlificAuthor tie = %+v, want {Z 2}", got)
	}
}
