package config

import "time"

const (
	// Default timeout for session, list, search and auth calls
	RequestTimeout = 15 * time.Second

	// Send-message timeout: the backend makes two LLM round trips,
	// a reply can take 1-2 minutes
	SendMessageTimeout = 120 * time.Second

	// Minimum extracted parameters before a search is worth issuing
	MinParamsForSearch = 3

	// Fixed result limit attached to every car search
	SearchResultLimit = 10

	// Sessions shown per page in /sessions
	SessionsPerPage = 5

	// Car cards rendered per assistant turn
	MaxCardsPerTurn = 5

	// Advisory session-list refresh deadline
	RefreshTimeout = 10 * time.Second
)
