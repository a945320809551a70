package blog

import "sort"

// DefaultRelatedLimit is the number of related posts returned when the
// caller does not specify a limit.
const DefaultRelatedLimit = 3

// RelatedPosts ranks the candidate pool against the current post and returns
// at most limit entries.
//
// Candidates score one point per shared tag plus one for a matching
// category. Positive scorers come first, ordered by score then recency.
// When fewer than limit candidates score, the result is backfilled with the
// most recent remaining candidates so recommendation sections stay populated
// even for under-tagged content.
func RelatedPosts(current PostMetadata, pool []PostMetadata, limit int) []PostMetadata {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}

	currentTags := make(map[string]struct{}, len(current.Tags))
	for _, tag := range current.Tags {
		currentTags[tag] = struct{}{}
	}

	type scored struct {
		post  PostMetadata
		score int
	}

	var ranked []scored
	var unscored []PostMetadata

	for _, candidate := range pool {
		if candidate.Slug == current.Slug {
			continue
		}

		score := 0
		for _, tag := range candidate.Tags {
			if _, ok := currentTags[tag]; ok {
				score++
			}
		}
		if candidate.Category == current.Category {
			score++
		}

		if score > 0 {
			ranked = append(ranked, scored{post: candidate, score: score})
		} else {
			unscored = append(unscored, candidate)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].post.PublishedAt().After(ranked[j].post.PublishedAt())
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	related := make([]PostMetadata, 0, limit)
	for _, entry := range ranked {
		related = append(related, entry.post)
	}

	// Backfill with the most recent leftovers, newest first.
	if len(related) < limit {
		sort.SliceStable(unscored, func(i, j int) bool {
			return unscored[i].PublishedAt().After(unscored[j].PublishedAt())
		})
		for _, post := range unscored {
			if len(related) == limit {
				break
			}
			related = append(related, post)
		}
	}

	return related
}
