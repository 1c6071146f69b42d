// Package stats 提供对文章集合的纯聚合函数：总点赞数、最受欢迎文章与高产作者。
// 所有函数不修改输入，空集合返回中性值（0 或 nil）。
package stats

import "bloglist/internal/storage"

// AuthorCount 表示某作者及其文章数。
type AuthorCount struct {
	Author string `json:"author"`
	Count  int    `json:"count"`
}

// TotalLikes 返回所有文章点赞数之和，空集合返回 0。
func TotalLikes(posts []storage.Post) int {
	sum := 0
	for _, p := range posts {
		sum += p.Likes
	}
	return sum
}

// FavouritePost 返回点赞数最高的文章；空集合返回 nil。
// 并列时取最先出现者。返回的是副本，调用方修改不影响输入。
func FavouritePost(posts []storage.Post) *storage.Post {
	if len(posts) == 0 {
		return nil
	}
	best := 0
	for i := 1; i < len(posts); i++ {
		if posts[i].Likes > posts[best].Likes {
			best = i
		}
	}
	fav := posts[best]
	return &fav
}

// MostProlificAuthor 按 author 分组计数，返回文章数最多的作者；空集合返回 nil。
// 并列时取从左到右扫描中最先达到最大值的作者（先见先得，与字典序无关）。
func MostProlificAuthor(posts []storage.Post) *AuthorCount {
	if len(posts) == 0 {
		return nil
	}
	counts := make(map[string]int, len(posts))
	var top AuthorCount
	seen := false
	for _, p := range posts {
		counts[p.Author]++
		if !seen || counts[p.Author] > top.Count {
			top = AuthorCount{Author: p.Author, Count: counts[p.Author]}
			seen = true
		}
	}
	return &top
}
