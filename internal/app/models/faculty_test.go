package models

import "testing"

func TestExperienceCategoryBoundaries(t *testing.T) {
	tests := []struct {
		exp  float64
		want string
	}{
		{0, ExpCategoryJunior},
		{5.9, ExpCategoryJunior},
		{5.91, ExpCategoryMid},
		{6, ExpCategoryMid},
		{10.9, ExpCategoryMid},
		{10.91, ExpCategorySenior},
		{25, ExpCategorySenior},
	}
	for _, tc := range tests {
		if got := ExperienceCategory(tc.exp); got != tc.want {
			t.Errorf("ExperienceCategory(%v) = %q, want %q", tc.exp, got, tc.want)
		}
	}
}

func TestValidExperienceSum(t *testing.T) {
	if !ValidExperienceSum(5, 3, 2, 10) {
		t.Error("exact sum should be valid")
	}
	if !ValidExperienceSum(5.05, 3, 2, 10) {
		t.Error("drift within tolerance should be valid")
	}
	if ValidExperienceSum(5, 3, 2, 10.2) {
		t.Error("drift beyond tolerance should be invalid")
	}
	if ValidExperienceSum(5, 3, 2, 9) {
		t.Error("undercounted total should be invalid")
	}
}
