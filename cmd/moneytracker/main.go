// Command moneytracker reads the shared snapshot from the terminal: the widget
// summary and CSV exports. It never writes to the store.
package main

import (
	"os"

	"moneytracker/internal/logger"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	Execute()
}
