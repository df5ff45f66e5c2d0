package dto

import (
	"frontdesk/internal/domains/room/model"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	"strings"
)

type CreateRoomRequest struct {
	ID    string `json:"room_id"   validate:"required,max=20"`
	Type  string `json:"room_type" validate:"required,max=50"`
	Price string `json:"price"     validate:"required,decimal"`
}

// Normalize trims every field in place so that blank values fail validation.
func (c *CreateRoomRequest) Normalize() {
	c.ID = strings.TrimSpace(c.ID)
	c.Type = strings.TrimSpace(c.Type)
	c.Price = strings.TrimSpace(c.Price)
}

func (c *CreateRoomRequest) ToModel() model.Room {
	return model.Room{
		ID:     strings.TrimSpace(c.ID),
		Type:   model.NormalizeType(c.Type),
		Price:  strings.TrimSpace(c.Price),
		Status: constant.RoomStatusAvailable,
	}
}

// UpdateRoomRequest edits the catalogue fields only. Status follows bookings.
type UpdateRoomRequest struct {
	Type  string `csv:"RoomType" json:"room_type" validate:"omitempty,max=50"`
	Price string `csv:"Price"    json:"price"     validate:"omitempty,decimal"`
}

func (u *UpdateRoomRequest) ToFields() map[string]string {
	fields := shared.TransformFields(*u)
	if roomType, ok := fields[model.FieldType]; ok {
		fields[model.FieldType] = model.NormalizeType(roomType)
	}

	return fields
}

type RoomResponse struct {
	ID     string `json:"room_id"`
	Type   string `json:"room_type"`
	Price  string `json:"price"`
	Status string `json:"status"`
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Type = model.Type
	r.Price = model.Price
	r.Status = model.Status
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
