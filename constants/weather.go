package constants

// DefaultLocation is used when a weather request names no location.
const DefaultLocation = "北京"

// PlaceholderWeatherKey is the sample value shipped in .env templates; it is
// treated the same as an unset key.
const PlaceholderWeatherKey = "your_weather_api_key_here"

// DateLayout is the storage and wire format for calendar dates.
const DateLayout = "2006-01-02"

// HistoryListLimit caps the number of history rows returned by one query.
const HistoryListLimit = 50
