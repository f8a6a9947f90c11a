package dto

type UpdateLocationRequest struct {
	Latitude  float64 `form:"latitude" validate:"required"`
	Longitude float64 `form:"longitude" validate:"required"`
}

type StatsData struct {
	FarmerCount int64
	BuyerCount  int64
	TotalUsers  int64
}
