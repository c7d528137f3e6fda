package handlers

import (
	userRepoPkg "drdhobi/database/repository/user"
)

// HandlerBundle groups all endpoint handlers into one struct so route
// registration has a single dependency.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	Auth         *AuthHandler
	Booking      *BookingHandler
	Pricing      *PricingHandler
	Quote        *QuoteHandler
	Chat         *ChatHandler
	Notification *NotificationHandler
	Catalog      *CatalogHandler
	Settings     *SettingsHandler
	Inbox        *InboxHandler
	Device       *DeviceHandler
	Admin        *AdminHandler
}
