package models

import "gorm.io/gorm"

// Page is one page of a feed. Numbers are 1-based; a page number outside
// the valid range is clamped, so the last page is what an over-shooting
// request gets and page 1 is what a non-numeric or missing one gets.
type Page struct {
	Items      []Post
	Number     int
	PerPage    int
	TotalItems int64
	TotalPages int
}

func (p *Page) HasPrev() bool { return p.Number > 1 }
func (p *Page) HasNext() bool { return p.Number < p.TotalPages }
func (p *Page) PrevNumber() int {
	return p.Number - 1
}
func (p *Page) NextNumber() int {
	return p.Number + 1
}

// Numbers lists all page numbers, for the pagination template.
func (p *Page) Numbers() []int {
	numbers := make([]int, p.TotalPages)
	for i := range numbers {
		numbers[i] = i + 1
	}
	return numbers
}

// Paginate runs the feed query and returns the requested page.
func Paginate(query *gorm.DB, page, perPage int) (Page, error) {
	result := Page{Number: page, PerPage: perPage}

	if err := query.Count(&result.TotalItems).Error; err != nil {
		return result, err
	}
	result.TotalPages = int((result.TotalItems + int64(perPage) - 1) / int64(perPage))
	if result.TotalPages < 1 {
		result.TotalPages = 1
	}
	if result.Number < 1 {
		result.Number = 1
	}
	if result.Number > result.TotalPages {
		result.Number = result.TotalPages
	}

	err := query.
		Offset((result.Number - 1) * perPage).
		Limit(perPage).
		Find(&result.Items).Error
	return result, err
}
