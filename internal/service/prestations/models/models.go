package models

import (
	"github.com/zohoustanley/barbeshop/internal/domain"
)

// Request модели

// UpsertPrestationRequest запрос на создание или обновление услуги
type UpsertPrestationRequest struct {
	UserID          int64   `json:"userId"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	PriceLabel      string  `json:"priceLabel"`
	DurationMinutes int     `json:"durationMinutes"`
	AllowedStaffIDs []int64 `json:"allowedStaffIds,omitempty"`
	Category        string  `json:"category"`
	Position        int     `json:"position"`
}

// ToDomainPrestation конвертирует запрос в доменную модель
func (r *UpsertPrestationRequest) ToDomainPrestation(id int64) *domain.Prestation {
	return &domain.Prestation{
		ID:              id,
		Title:           r.Title,
		Description:     r.Description,
		PriceLabel:      r.PriceLabel,
		DurationMinutes: r.DurationMinutes,
		AllowedStaffIDs: r.AllowedStaffIDs,
		Category:        r.Category,
		Position:        r.Position,
	}
}

// Response модели

// PrestationResponse ответ с данными услуги
type PrestationResponse struct {
	ID              int64   `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description,omitempty"`
	PriceLabel      string  `json:"priceLabel"`
	DurationMinutes int     `json:"durationMinutes"`
	AllowedStaffIDs []int64 `json:"allowedStaffIds,omitempty"`
	Category        string  `json:"category"`
	Position        int     `json:"position"`
}

// PrestationListResponse ответ с каталогом услуг
type PrestationListResponse struct {
	Prestations []*PrestationResponse `json:"prestations"`
	Total       int                   `json:"total"`
}

// CategoryResponse группа услуг одной категории
type CategoryResponse struct {
	Category    string                `json:"category"`
	Prestations []*PrestationResponse `json:"prestations"`
}

// FromDomainPrestation конвертирует доменную услугу в response модель
func FromDomainPrestation(p *domain.Prestation) *PrestationResponse {
	return &PrestationResponse{
		ID:              p.ID,
		Title:           p.Title,
		Description:     p.Description,
		PriceLabel:      p.PriceLabel,
		DurationMinutes: p.EffectiveDuration(),
		AllowedStaffIDs: p.AllowedStaffIDs,
		Category:        p.Category,
		Position:        p.Position,
	}
}

// FromDomainPrestationList конвертирует список доменных услуг
func FromDomainPrestationList(prestations []*domain.Prestation) *PrestationListResponse {
	items := make([]*PrestationResponse, 0, len(prestations))
	for _, p := range prestations {
		items = append(items, FromDomainPrestation(p))
	}
	return &PrestationListResponse{
		Prestations: items,
		Total:       len(items),
	}
}

// GroupByCategory группирует услуги по категориям, сохраняя порядок каталога
func GroupByCategory(prestations []*domain.Prestation) []*CategoryResponse {
	groups := make([]*CategoryResponse, 0)
	index := make(map[string]*CategoryResponse)

	for _, p := range prestations {
		group, ok := index[p.Category]
		if !ok {
			group = &CategoryResponse{Category: p.Category}
			index[p.Category] = group
			groups = append(groups, group)
		}
		group.Prestations = append(group.Prestations, FromDomainPrestation(p))
	}

	return groups
}
