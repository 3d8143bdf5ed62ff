package response

import "testing"

func TestNewPagination_MiddlePage(t *testing.T) {
	p := NewPagination("http://api.test/api/v1/public/blogs", 2, 10, 35)

	if p.TotalPages != 4 {
		t.Fatalf("ожидалось 4 страницы, получили %d", p.TotalPages)
	}
	if !p.HasNextPage || !p.HasPreviousPage {
		t.Fatalf("на средней странице должны быть обе соседние")
	}

	if p.Links == nil {
		t.Fatalf("ссылки должны строиться при непустом baseURL")
	}
	if p.Links.Self != "http://api.test/api/v1/public/blogs?page=2&limit=10" {
		t.Fatalf("неверная self ссылка: %q", p.Links.Self)
	}
	if p.Links.Prev == nil || *p.Links.Prev != "http://api.test/api/v1/public/blogs?page=1&limit=10" {
		t.Fatalf("неверная prev ссылка: %v", p.Links.Prev)
	}
	if p.Links.Next == nil || *p.Links.Next != "http://api.test/api/v1/public/blogs?page=3&limit=10" {
		t.Fatalf("неверная next ссылка: %v", p.Links.Next)
	}
	if p.Links.Last != "http://api.test/api/v1/public/blogs?page=4&limit=10" {
		t.Fatalf("неверная last ссылка: %q", p.Links.Last)
	}
}

func TestNewPagination_Boundaries(t *testing.T) {
	first := NewPagination("http://api.test/blogs", 1, 10, 35)
	if first.Links.Prev != nil {
		t.Fatalf("на первой странице prev должен быть null")
	}
	if first.HasPreviousPage {
		t.Fatalf("на первой странице hasPreviousPage должен быть false")
	}

	last := NewPagination("http://api.test/blogs", 4, 10, 35)
	if last.Links.Next != nil {
		t.Fatalf("на последней странице next должен быть null")
	}
	if last.HasNextPage {
		t.Fatalf("на последней странице hasNextPage должен быть false")
	}
}

func TestNewPagination_ExactMultiple(t *testing.T) {
	p := NewPagination("", 2, 10, 20)
	if p.TotalPages != 2 {
		t.Fatalf("20 элементов по 10 — это 2 страницы, получили %d", p.TotalPages)
	}
	if p.HasNextPage {
		t.Fatalf("вторая страница из двух не имеет следующей")
	}
	if p.Links != nil {
		t.Fatalf("без baseURL ссылки не строятся")
	}
}

func TestNewPagination_Empty(t *testing.T) {
	p := NewPagination("http://api.test/blogs", 1, 10, 0)
	if p.TotalPages != 0 {
		t.Fatalf("без элементов ожидалось 0 страниц, получили %d", p.TotalPages)
	}
	if p.HasNextPage || p.HasPreviousPage {
		t.Fatalf("пустой список не имеет соседних страниц")
	}
}
