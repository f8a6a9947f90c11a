package handlers

// AppHandlers groups every handler for route registration.
type AppHandlers struct {
	AuthHandler    *AuthHandler
	MarketHandler  *MarketHandler
	ListingHandler *ListingHandler
	ProfileHandler *ProfileHandler
	AdminHandler   *AdminHandler
}
