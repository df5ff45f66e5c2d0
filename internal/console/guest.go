package console

import (
	"context"
	bookingDto "frontdesk/internal/domains/booking/model/dto"
)

func (c *Console) guestMenu(ctx context.Context) error {
	return c.menu(ctx, "Customer", []menuItem{
		{label: "View available rooms", action: c.listAvailableRooms},
		{label: "Search rooms by type", action: c.searchRoomsByType},
		{label: "Book a room", action: c.guestBooking},
	})
}

func (c *Console) searchRoomsByType(ctx context.Context) error {
	roomType, err := c.ask("Room type")
	if err != nil {
		return err
	}

	rooms, err := c.services.Room.SearchAvailableByType(ctx, roomType)
	if err != nil {
		return err
	}

	c.roomTable(rooms)

	return nil
}

// guestBooking books under the guest's own name; the rest matches the desk flow.
func (c *Console) guestBooking(ctx context.Context) error {
	answers, err := c.askAll("Your name", "Room ID", "Check-in (dd-mm-yyyy)", "Check-out (dd-mm-yyyy)")
	if err != nil {
		return err
	}

	booking, err := c.services.Booking.CreateBooking(ctx, bookingDto.CreateBookingRequest{
		CustomerName: answers[0],
		RoomID:       answers[1],
		CheckIn:      answers[2],
		CheckOut:     answers[3],
	})
	if err != nil {
		return err
	}

	c.println("Thank you " + booking.CustomerName + ", your booking ID is " + booking.ID + ".")

	return nil
}
