package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestBuildPagination(t *testing.T) {
	tests := []struct {
		name           string
		page, perPage  int
		total          int64
		wantTotalPages int
		wantHasNext    bool
		wantHasPrev    bool
	}{
		{"halaman pertama", 1, 10, 35, 4, true, false},
		{"halaman tengah", 2, 10, 35, 4, true, true},
		{"halaman terakhir", 4, 10, 35, 4, false, true},
		{"kosong", 1, 10, 0, 0, false, false},
		{"pas satu halaman", 1, 10, 10, 1, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildPagination(Paging{Page: tt.page, PerPage: tt.perPage}, tt.total)
			if got.TotalPages != tt.wantTotalPages {
				t.Errorf("TotalPages = %d, want %d", got.TotalPages, tt.wantTotalPages)
			}
			if got.HasNext != tt.wantHasNext {
				t.Errorf("HasNext = %v, want %v", got.HasNext, tt.wantHasNext)
			}
			if got.HasPrev != tt.wantHasPrev {
				t.Errorf("HasPrev = %v, want %v", got.HasPrev, tt.wantHasPrev)
			}
		})
	}
}

func TestStatusToErrorCode(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{fiber.StatusBadRequest, "BAD_REQUEST"},
		{fiber.StatusUnauthorized, "UNAUTHORIZED"},
		{fiber.StatusForbidden, "FORBIDDEN"},
		{fiber.StatusNotFound, "NOT_FOUND"},
		{fiber.StatusConflict, "CONFLICT"},
		{fiber.StatusUnprocessableEntity, "VALIDATION_ERROR"},
		{fiber.StatusTooManyRequests, "RATE_LIMITED"},
		{fiber.StatusInternalServerError, "INTERNAL_ERROR"},
		{fiber.StatusBadGateway, "INTERNAL_ERROR"},
		{fiber.StatusTeapot, "ERROR"},
	}
	for _, tt := range tests {
		if got := statusToErrorCode(tt.status); got != tt.want {
			t.Errorf("statusToErrorCode(%d) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestResolvePaging(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		wantPage    int
		wantPerPage int
		wantOffset  int
	}{
		{"default", "", 1, 20, 0},
		{"explicit", "?page=3&per_page=10", 3, 10, 20},
		{"alias limit", "?page=2&limit=5", 2, 5, 5},
		{"per_page di atas max", "?per_page=500", 1, 100, 0},
		{"page invalid", "?page=-1", 1, 20, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Paging
			app := fiber.New()
			app.Get("/items", func(c *fiber.Ctx) error {
				got = ResolvePaging(c, 20, 100)
				return nil
			})
			req := httptest.NewRequest("GET", "/items"+tt.query, nil)
			if _, err := app.Test(req); err != nil {
				t.Fatalf("app.Test error: %v", err)
			}
			if got.Page != tt.wantPage || got.PerPage != tt.wantPerPage || got.Offset != tt.wantOffset {
				t.Errorf("ResolvePaging(%q) = %+v, want page %d per_page %d offset %d",
					tt.query, got, tt.wantPage, tt.wantPerPage, tt.wantOffset)
			}
		})
	}
}
