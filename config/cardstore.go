package config

import (
	"os"

	"chinetonusine-backend/cardstore"
)

// Cards is the process-wide business-card store, backed by a JSON file.
var Cards *cardstore.Store

// ConnectCardStore wires the store to its file backend. CARD_STORE_DIR
// defaults to ./data.
func ConnectCardStore() {
	dir := os.Getenv("CARD_STORE_DIR")
	if dir == "" {
		dir = "data"
	}
	Cards = cardstore.NewStore(cardstore.NewFileStorage(dir))
}
