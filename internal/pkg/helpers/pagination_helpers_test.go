package helpers

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestCalculateOffsetLimit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		page, size int
		offset     uint64
		limit      int
	}{
		{"first page", 1, 10, 0, 10},
		{"third page", 3, 20, 40, 20},
		{"zero page clamps", 0, 10, 0, 10},
		{"zero size falls back", 2, 0, 10, DefaultPageSize},
		{"oversized falls back", 1, 500, 0, DefaultPageSize},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			offset, limit := CalculateOffsetLimit(tt.page, tt.size)
			if offset != tt.offset || limit != tt.limit {
				t.Fatalf("got offset=%d limit=%d, want offset=%d limit=%d", offset, limit, tt.offset, tt.limit)
			}
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	t.Parallel()

	info := NewPaginationInfo(45, 2, 10)
	if info.TotalPages != 5 {
		t.Errorf("total pages = %d, want 5", info.TotalPages)
	}
	if info.CurrentPage != 2 {
		t.Errorf("current page = %d", info.CurrentPage)
	}
	if !info.HasNext() || !info.HasPrev() {
		t.Error("page 2 of 5 must have both neighbours")
	}

	empty := NewPaginationInfo(0, 1, 10)
	if empty.TotalPages != 1 {
		t.Errorf("empty set: total pages = %d, want 1", empty.TotalPages)
	}

	clamped := NewPaginationInfo(10, 9, 10)
	if clamped.CurrentPage != 1 {
		t.Errorf("page beyond the end must clamp, got %d", clamped.CurrentPage)
	}
}

func TestParsePaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name  string
		query string
		page  int
		size  int
	}{
		{"defaults", "", 1, 10},
		{"explicit", "page=3&limit=25", 3, 25},
		{"garbage", "page=abc&limit=xyz", 1, 10},
		{"negative", "page=-1&limit=-5", 1, 10},
		{"over cap", "page=2&limit=1000", 2, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/?"+tt.query, nil)

			page, size := ParsePaginationParams(c, 10)
			if page != tt.page || size != tt.size {
				t.Fatalf("got page=%d size=%d, want page=%d size=%d", page, size, tt.page, tt.size)
			}
		})
	}
}

func TestParseDuration(t *testing.T) {
	t.Parallel()

	if d := ParseDuration("168h", time.Hour); d != 168*time.Hour {
		t.Errorf("parsed duration = %v", d)
	}
	if d := ParseDuration("one week", time.Hour); d != time.Hour {
		t.Errorf("invalid string must return the default, got %v", d)
	}
}
