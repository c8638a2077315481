package dto

import (
	"time"

	"anoa.com/noorautomobiles/internal/model"
)

type PartFilter struct {
	Category     string `form:"category"`
	Availability string `form:"availability"`
	Featured     string `form:"featured"`
	Search       string `form:"search"`
}

type CreatePartRequest struct {
	Name         string   `json:"name" binding:"required"`
	Category     string   `json:"category" binding:"required"`
	Description  *string  `json:"description"`
	Images       []string `json:"images"`
	Availability string   `json:"availability" binding:"omitempty,oneof=in_stock out_of_stock coming_soon"`
	Featured     bool     `json:"featured"`
}

func (r CreatePartRequest) ToModel() *model.Part {
	availability := r.Availability
	if availability == "" {
		availability = model.PartInStock
	}
	return &model.Part{
		Name:         r.Name,
		Category:     r.Category,
		Description:  r.Description,
		Images:       model.StringList(orEmpty(r.Images)),
		Availability: availability,
		Featured:     r.Featured,
	}
}

type UpdatePartRequest struct {
	Name         Nullable[string]   `json:"name"`
	Category     Nullable[string]   `json:"category"`
	Description  Nullable[string]   `json:"description"`
	Images       Nullable[[]string] `json:"images"`
	Availability Nullable[string]   `json:"availability"`
	Featured     Nullable[bool]     `json:"featured"`
}

func (r UpdatePartRequest) Updates() map[string]interface{} {
	updates := map[string]interface{}{}

	putString(updates, "name", r.Name)
	putString(updates, "category", r.Category)
	putString(updates, "description", r.Description)
	putList(updates, "images", r.Images)
	putString(updates, "availability", r.Availability)
	if r.Featured.Set {
		updates["featured"] = r.Featured.Value
	}

	updates["updated_at"] = time.Now()
	return updates
}
