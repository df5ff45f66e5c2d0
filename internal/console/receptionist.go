package console

import (
	"context"
	billDto "frontdesk/internal/domains/bill/model/dto"
	bookingDto "frontdesk/internal/domains/booking/model/dto"
	customerDto "frontdesk/internal/domains/customer/model/dto"
	"frontdesk/shared"
	gDto "frontdesk/shared/dto"
	"strconv"
)

func (c *Console) receptionistMenu(ctx context.Context) error {
	return c.menu(ctx, "Receptionist", []menuItem{
		{label: "Book room", action: c.bookRoom},
		{label: "Cancel booking", action: c.cancelBooking},
		{label: "List available rooms", action: c.listAvailableRooms},
		{label: "List bookings", action: c.listBookings},
		{label: "Register customer", action: c.addCustomer},
		{label: "Search customers", action: c.searchCustomers},
		{label: "Update customer", action: c.updateCustomer},
		{label: "Delete customer", action: c.deleteCustomer},
		{label: "Generate bill", action: c.generateBill},
	})
}

func (c *Console) bookRoom(ctx context.Context) error {
	answers, err := c.askAll("Customer name", "Room ID", "Check-in (dd-mm-yyyy)", "Check-out (dd-mm-yyyy)")
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

	c.println("Booking " + booking.ID + " confirmed for room " + booking.RoomID + ".")

	return nil
}

func (c *Console) cancelBooking(ctx context.Context) error {
	id, err := c.ask("Booking ID")
	if err != nil {
		return err
	}

	cancelled, err := c.services.Booking.CancelBooking(ctx, id)
	if err != nil {
		return err
	}

	c.println("Booking " + cancelled.BookingID + " cancelled, room " + cancelled.RoomID + " released.")

	return nil
}

func (c *Console) listAvailableRooms(ctx context.Context) error {
	rooms, err := c.services.Booking.ListAvailableRooms(ctx)
	if err != nil {
		return err
	}

	c.roomTable(rooms)

	return nil
}

func (c *Console) listBookings(ctx context.Context) error {
	bookings, err := c.services.Booking.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		return err
	}

	rows := make([][]string, len(bookings.Bookings))
	for i, booking := range bookings.Bookings {
		rows[i] = []string{booking.ID, booking.CustomerName, booking.RoomID, booking.CheckIn, booking.CheckOut}
	}

	c.table([]string{"BookingID", "CustomerName", "RoomID", "CheckIn", "CheckOut"}, rows)

	return nil
}

func (c *Console) customerTable(customers []customerDto.CustomerResponse) {
	rows := make([][]string, len(customers))
	for i, customer := range customers {
		rows[i] = []string{
			customer.ID, customer.Name, customer.Phone, customer.Email,
			customer.RoomID, strconv.Itoa(customer.DaysOfStay), customer.RegDate,
		}
	}

	c.table([]string{"CustomerID", "Name", "Phone", "Email", "RoomID", "DaysOfStay", "RegDate"}, rows)
}

// addCustomer reads days of stay the way the desk always has: anything but a number is zero.
func (c *Console) addCustomer(ctx context.Context) error {
	answers, err := c.askAll("Name", "Phone", "Email", "Room ID", "Days of stay")
	if err != nil {
		return err
	}

	customer, err := c.services.Customer.Create(ctx, customerDto.CreateCustomerRequest{
		Name:       answers[0],
		Phone:      answers[1],
		Email:      answers[2],
		RoomID:     answers[3],
		DaysOfStay: shared.AtoiOrZero(answers[4]),
	})
	if err != nil {
		return err
	}

	c.println("Customer " + customer.ID + " registered.")

	return nil
}

func (c *Console) searchCustomers(ctx context.Context) error {
	key, err := c.ask("Customer ID, name or phone")
	if err != nil {
		return err
	}

	customers, err := c.services.Customer.Search(ctx, key)
	if err != nil {
		return err
	}

	c.customerTable(customers)

	return nil
}

func (c *Console) updateCustomer(ctx context.Context) error {
	answers, err := c.askAll("Customer ID", "New phone (blank to keep)", "New email (blank to keep)",
		"New room (blank to keep)", "New days of stay (blank to keep)")
	if err != nil {
		return err
	}

	customer, err := c.services.Customer.Update(ctx, customerDto.UpdateCustomerRequest{
		Phone:      answers[1],
		Email:      answers[2],
		RoomID:     answers[3],
		DaysOfStay: answers[4],
	}, answers[0])
	if err != nil {
		return err
	}

	c.customerTable([]customerDto.CustomerResponse{customer})

	return nil
}

func (c *Console) deleteCustomer(ctx context.Context) error {
	id, err := c.ask("Customer ID")
	if err != nil {
		return err
	}

	if err := c.services.Customer.Delete(ctx, id); err != nil {
		return err
	}

	c.println("Customer " + id + " deleted.")

	return nil
}

func (c *Console) generateBill(ctx context.Context) error {
	key, err := c.ask("Customer ID, name or phone")
	if err != nil {
		return err
	}

	bill, err := c.services.Bill.Generate(ctx, billDto.GenerateBillRequest{Key: key})
	if err != nil {
		return err
	}

	c.table([]string{"Field", "Value"}, [][]string{
		{"Bill ID", bill.ID},
		{"Customer", bill.CustomerID + " " + bill.Name},
		{"Room", bill.RoomID},
		{"Days of stay", strconv.Itoa(bill.DaysOfStay)},
		{"Price per day", bill.PricePerDay},
		{"Total", bill.TotalAmount},
		{"Date", bill.BillDate},
	})

	return nil
}
