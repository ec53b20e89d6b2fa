package dto

type DashboardResponse struct {
	TotalRooms              int            `json:"total_rooms"`
	AvailableRooms          int            `json:"available_rooms"`
	BookingsByStatus        map[string]int `json:"bookings_by_status"`
	TotalRevenue            float64        `json:"total_revenue"`
	AverageBookingValue     float64        `json:"average_booking_value"`
	VIPGuests               int            `json:"vip_guests"`
	OccupancyRate           float64        `json:"occupancy_rate"`
	TodayCheckIns           int            `json:"today_check_ins"`
	TodayDiningReservations int            `json:"today_dining_reservations"`
}
