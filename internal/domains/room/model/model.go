package model

import (
	"frontdesk/shared/constant"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	EntityName = "room"

	FieldID     = "RoomID"
	FieldType   = "RoomType"
	FieldPrice  = "Price"
	FieldStatus = "Status"
)

// Room is one row of the room table. Price is kept as written so an untouched
// row is saved back byte for byte.
type Room struct {
	ID     string `csv:"RoomID"`
	Type   string `csv:"RoomType"`
	Price  string `csv:"Price"`
	Status string `csv:"Status"`
}

func (r Room) IsAvailable() bool {
	return strings.EqualFold(strings.TrimSpace(r.Status), constant.RoomStatusAvailable)
}

func (r Room) IsBooked() bool {
	return strings.EqualFold(strings.TrimSpace(r.Status), constant.RoomStatusBooked)
}

// NormalizeType capitalises a room type the way the desk enters it: "suite" -> "Suite".
func NormalizeType(roomType string) string {
	roomType = strings.TrimSpace(roomType)
	if roomType == "" {
		return roomType
	}

	first, size := utf8.DecodeRuneInString(roomType)

	return string(unicode.ToUpper(first)) + strings.ToLower(roomType[size:])
}
