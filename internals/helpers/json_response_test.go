package helper

import "testing"

func TestBuildPaginationFromPage(t *testing.T) {
	cases := []struct {
		name       string
		total      int64
		page       int
		perPage    int
		wantPages  int
		wantNext   bool
		wantPrev   bool
	}{
		{"empty set still has one page", 0, 1, 4, 1, false, false},
		{"exact multiple", 8, 1, 4, 2, true, false},
		{"ceil on remainder", 10, 2, 4, 3, true, true},
		{"last page", 10, 3, 4, 3, false, true},
		{"single page", 3, 1, 10, 1, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := BuildPaginationFromPage(tc.total, tc.page, tc.perPage)
			if got.TotalPages != tc.wantPages {
				t.Errorf("TotalPages = %d, want %d", got.TotalPages, tc.wantPages)
			}
			if got.HasNext != tc.wantNext {
				t.Errorf("HasNext = %v, want %v", got.HasNext, tc.wantNext)
			}
			if got.HasPrev != tc.wantPrev {
				t.Errorf("HasPrev = %v, want %v", got.HasPrev, tc.wantPrev)
			}
			if got.Total != tc.total {
				t.Errorf("Total = %d, want %d", got.Total, tc.total)
			}
		})
	}
}

func TestBuildPaginationNormalizesBadInput(t *testing.T) {
	got := BuildPaginationFromPage(10, 0, 0)
	if got.Page != 1 {
		t.Errorf("Page = %d, want 1", got.Page)
	}
	if got.PerPage != 20 {
		t.Errorf("PerPage = %d, want default 20", got.PerPage)
	}
}
