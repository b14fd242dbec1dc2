package model

// FoodResult is one classified panel item: the food's canonical name and
// category from the project schema, plus the measured concentration and
// the severity tier derived from it. Immutable once built.
type FoodResult struct {
	Name          string
	Category      FoodCategory
	Concentration float64
	Level         AllergyLevel
}

// PatientRecord is the fully validated result of extracting one RawRow.
// Results preserve panel order and always have exactly the item count the
// project schema prescribes. Signature fields hold resolved asset paths
// and are empty when no matching asset exists.
type PatientRecord struct {
	PatientID   string
	PatientName string
	Gender      string
	Age         string
	ProjectCode string
	TemplateID  string
	TestTime    string
	Inspector   string
	Reviewer    string

	Results []FoodResult

	InspectorSignature string
	ReviewerSignature  string
}

// CategoryGroup is one rendered report section: a category and its
// results in panel order.
type CategoryGroup struct {
	Category FoodCategory
	Results  []FoodResult
}

// GroupByCategory partitions the results into canonical category order.
// Categories with no results on this panel are omitted.
func (r *PatientRecord) GroupByCategory() []CategoryGroup {
	byCategory := make(map[FoodCategory][]FoodResult, len(AllCategories))
	for _, fr := range r.Results {
		byCategory[fr.Category] = append(byCategory[fr.Category], fr)
	}

	groups := make([]CategoryGroup, 0, len(byCategory))
	for _, c := range AllCategories {
		if results := byCategory[c]; len(results) > 0 {
			groups = append(groups, CategoryGroup{Category: c, Results: results})
		}
	}
	return groups
}

// LevelSummary lists food names per elevated severity tier, in panel
// order. Normal results are not summarized.
type LevelSummary struct {
	Severe   []string
	Moderate []string
	Mild     []string
}

// SummarizeLevels collects the names of all foods at each elevated tier.
func (r *PatientRecord) SummarizeLevels() LevelSummary {
	var s LevelSummary
	for _, fr := range r.Results {
		switch fr.Level {
		case LevelSevere:
			s.Severe = append(s.Severe, fr.Name)
		case LevelModerate:
			s.Moderate = append(s.Moderate, fr.Name)
		case LevelMild:
			s.Mild = append(s.Mild, fr.Name)
		}
	}
	return s
}

// Pages chunks the results into fixed-size pages for template layout.
// A record with no results yields a single empty page.
func (r *PatientRecord) Pages(perPage int) [][]FoodResult {
	if len(r.Results) == 0 {
		return [][]FoodResult{{}}
	}
	pages := make([][]FoodResult, 0, (len(r.Results)+perPage-1)/perPage)
	for start := 0; start < len(r.Results); start += perPage {
		end := start + perPage
		if end > len(r.Results) {
			end = len(r.Results)
		}
		pages = append(pages, r.Results[start:end])
	}
	return pages
}
