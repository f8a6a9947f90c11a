package services

// ServiceContainer groups every service for injection into the handlers.
type ServiceContainer struct {
	AuthService    AuthService
	MarketService  MarketService
	ListingService ListingService
	ProfileService ProfileService
	StatsService   StatsService
}
