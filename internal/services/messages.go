// internal/services/messages.go
package services

// Pesan error yang ditampilkan ke user (sama dengan front end).
const (
	MsgCityNotFound = "City not found. Please check the spelling and try again."
	MsgNetworkError = "Unable to fetch weather data. Please check your internet connection."
	MsgAPIError     = "An error occurred while fetching weather data. Please try again later."
	MsgInvalidInput = "Please enter a valid city name."
	MsgRateLimit    = "Too many requests. Please wait a moment and try again."
	MsgStorageError = "Unable to save weather data locally."
	MsgNoBriefing   = "Weather briefing is not configured."
)
