package dto

import (
	"time"

	"anoa.com/noorautomobiles/internal/model"
)

type CarFilter struct {
	Brand    string `form:"brand"`
	Status   string `form:"status"`
	Featured string `form:"featured"`
	Upcoming string `form:"upcoming"`
	Search   string `form:"search"`
}

type CreateCarRequest struct {
	Title        string   `json:"title" binding:"required"`
	Brand        string   `json:"brand" binding:"required"`
	Model        string   `json:"model" binding:"required"`
	Year         int      `json:"year" binding:"required,gte=1900,lte=2030"`
	Mileage      *string  `json:"mileage"`
	Engine       *string  `json:"engine"`
	Transmission *string  `json:"transmission"`
	FuelType     *string  `json:"fuel_type"`
	Color        *string  `json:"color"`
	BodyType     *string  `json:"body_type"`
	Description  *string  `json:"description"`
	Features     []string `json:"features"`
	Images       []string `json:"images"`
	Videos       []string `json:"videos"`
	Status       string   `json:"status" binding:"omitempty,oneof=available sold reserved upcoming"`
	Featured     bool     `json:"featured"`
	DisplayOrder *int     `json:"display_order"`
}

// ToModel builds a car row from the request, defaulting status and the array
// columns so a fresh row never stores NULL for them.
func (r CreateCarRequest) ToModel() *model.Car {
	status := r.Status
	if status == "" {
		status = model.CarStatusAvailable
	}
	return &model.Car{
		Title:        r.Title,
		Brand:        r.Brand,
		Model:        r.Model,
		Year:         r.Year,
		Mileage:      r.Mileage,
		Engine:       r.Engine,
		Transmission: r.Transmission,
		FuelType:     r.FuelType,
		Color:        r.Color,
		BodyType:     r.BodyType,
		Description:  r.Description,
		Features:     model.StringList(orEmpty(r.Features)),
		Images:       model.StringList(orEmpty(r.Images)),
		Videos:       model.StringList(orEmpty(r.Videos)),
		Status:       status,
		Featured:     r.Featured,
		DisplayOrder: r.DisplayOrder,
	}
}

// UpdateCarRequest carries a sparse set of changes. Only keys present in the
// request body are applied; a key sent as null clears the column.
type UpdateCarRequest struct {
	Title        Nullable[string]   `json:"title"`
	Brand        Nullable[string]   `json:"brand"`
	Model        Nullable[string]   `json:"model"`
	Year         Nullable[int]      `json:"year"`
	Mileage      Nullable[string]   `json:"mileage"`
	Engine       Nullable[string]   `json:"engine"`
	Transmission Nullable[string]   `json:"transmission"`
	FuelType     Nullable[string]   `json:"fuel_type"`
	Color        Nullable[string]   `json:"color"`
	BodyType     Nullable[string]   `json:"body_type"`
	Description  Nullable[string]   `json:"description"`
	Features     Nullable[[]string] `json:"features"`
	Images       Nullable[[]string] `json:"images"`
	Videos       Nullable[[]string] `json:"videos"`
	Status       Nullable[string]   `json:"status"`
	Featured     Nullable[bool]     `json:"featured"`
	DisplayOrder Nullable[int]      `json:"display_order"`
}

// Updates translates the sparse request into a column map for a partial
// UPDATE. Absent keys never appear in the map; updated_at is always touched,
// so a body with no recognized keys still produces a timestamp-only update.
func (r UpdateCarRequest) Updates() map[string]interface{} {
	updates := map[string]interface{}{}

	putString(updates, "title", r.Title)
	putString(updates, "brand", r.Brand)
	putString(updates, "model", r.Model)
	if r.Year.Set {
		updates["year"] = r.Year.Ptr()
	}
	putString(updates, "mileage", r.Mileage)
	putString(updates, "engine", r.Engine)
	putString(updates, "transmission", r.Transmission)
	putString(updates, "fuel_type", r.FuelType)
	putString(updates, "color", r.Color)
	putString(updates, "body_type", r.BodyType)
	putString(updates, "description", r.Description)
	putList(updates, "features", r.Features)
	putList(updates, "images", r.Images)
	putList(updates, "videos", r.Videos)
	putString(updates, "status", r.Status)
	if r.Featured.Set {
		updates["featured"] = r.Featured.Value
	}
	if r.DisplayOrder.Set {
		updates["display_order"] = r.DisplayOrder.Ptr()
	}

	updates["updated_at"] = time.Now()
	return updates
}

type ReorderRequest struct {
	Order []uint `json:"order" binding:"required,min=1"`
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func putString(updates map[string]interface{}, column string, field Nullable[string]) {
	if !field.Set {
		return
	}
	updates[column] = field.Ptr()
}

// putList encodes an array field for storage. An explicit null is persisted
// as the empty-array marker, never as NULL.
func putList(updates map[string]interface{}, column string, field Nullable[[]string]) {
	if !field.Set {
		return
	}
	updates[column] = model.StringList(field.Value)
}
