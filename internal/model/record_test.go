package model

import (
	"reflect"
	"testing"
)

func testRecord() *PatientRecord {
	return &PatientRecord{
		Results: []FoodResult{
			{Name: "Chicken", Category: CategoryMeat, Concentration: 10, Level: LevelNormal},
			{Name: "Cow Milk", Category: CategoryEggsDairy, Concentration: 250, Level: LevelSevere},
			{Name: "Shrimp", Category: CategorySeafood, Concentration: 80, Level: LevelMild},
			{Name: "Beef", Category: CategoryMeat, Concentration: 120, Level: LevelModerate},
		},
	}
}

func TestGroupByCategory_CanonicalOrder(t *testing.T) {
	groups := testRecord().GroupByCategory()
	if len(groups) != 3 {
		t.Fatalf("got %d groups, want 3", len(groups))
	}

	wantOrder := []FoodCategory{CategoryMeat, CategoryEggsDairy, CategorySeafood}
	for i, g := range groups {
		if g.Category != wantOrder[i] {
			t.Errorf("group %d category = %s, want %s", i, g.Category, wantOrder[i])
		}
	}

	// Panel order preserved within a group.
	meat := groups[0]
	if meat.Results[0].Name != "Chicken" || meat.Results[1].Name != "Beef" {
		t.Errorf("meat group order: %+v", meat.Results)
	}
}

func TestSummarizeLevels(t *testing.T) {
	s := testRecord().SummarizeLevels()
	if !reflect.DeepEqual(s.Severe, []string{"Cow Milk"}) {
		t.Errorf("severe = %v", s.Severe)
	}
	if !reflect.DeepEqual(s.Moderate, []string{"Beef"}) {
		t.Errorf("moderate = %v", s.Moderate)
	}
	if !reflect.DeepEqual(s.Mild, []string{"Shrimp"}) {
		t.Errorf("mild = %v", s.Mild)
	}
}

func TestPages_Chunking(t *testing.T) {
	rec := &PatientRecord{}
	for i := 0; i < 96; i++ {
		rec.Results = append(rec.Results, FoodResult{Name: "x"})
	}
	pages := rec.Pages(32)
	if len(pages) != 3 {
		t.Fatalf("96 items / 32 per page = %d pages, want 3", len(pages))
	}

	rec.Results = rec.Results[:40]
	pages = rec.Pages(32)
	if len(pages) != 2 || len(pages[1]) != 8 {
		t.Errorf("40 items: %d pages, last has %d", len(pages), len(pages[len(pages)-1]))
	}

	empty := &PatientRecord{}
	if pages := empty.Pages(32); len(pages) != 1 || len(pages[0]) != 0 {
		t.Errorf("empty record pages = %v", pages)
	}
}

func TestAllergyLevel_Order(t *testing.T) {
	if !(LevelNormal < LevelMild && LevelMild < LevelModerate && LevelModerate < LevelSevere) {
		t.Error("levels are not totally ordered")
	}
}

func TestFoodCategory_Labels(t *testing.T) {
	for _, c := range AllCategories {
		if !c.Valid() {
			t.Errorf("category %s invalid", c)
		}
		if c.Label() == string(c) {
			t.Errorf("category %s has no display label", c)
		}
	}
	if FoodCategory("plastics").Valid() {
		t.Error("unknown category reported valid")
	}
}
