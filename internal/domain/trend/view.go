package trend

// BuildViews reduces records into views, grouping by slug. Regions,
// sources, and aliases are accumulated as ordered sets across every
// record sharing the slug; FirstSeen is the earliest CreatedAt and
// LastSeen the latest ObservedAt in the group. Group order follows
// the first occurrence of each slug in the input, so a sorted record
// set projects to an identically sorted view set.
func BuildViews(records []Record) []View {
	views := make([]View, 0, len(records))
	index := make(map[string]int, len(records))

	for _, r := range records {
		i, ok := index[r.Slug]
		if !ok {
			index[r.Slug] = len(views)
			views = append(views, View{
				Slug:      r.Slug,
				Name:      r.Title,
				Score:     r.SearchVolume,
				Regions:   []string{r.Region},
				Sources:   []string{r.Source},
				Aliases:   []string{r.Title},
				FirstSeen: r.CreatedAt,
				LastSeen:  r.ObservedAt,
			})
			continue
		}

		v := &views[i]
		v.Regions = appendUnique(v.Regions, r.Region)
		v.Sources = appendUnique(v.Sources, r.Source)
		v.Aliases = appendUnique(v.Aliases, r.Title)
		if r.SearchVolume > v.Score {
			v.Score = r.SearchVolume
		}
		if r.CreatedAt.Before(v.FirstSeen) {
			v.FirstSeen = r.CreatedAt
		}
		if r.ObservedAt.After(v.LastSeen) {
			v.LastSeen = r.ObservedAt
		}
	}

	return views
}

func appendUnique(set []string, value string) []string {
	for _, s := range set {
		if s == value {
			return set
		}
	}
	return append(set, value)
}
