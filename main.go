package main

import (
	"guestdesk/core/logger"
	"guestdesk/core/server"
)

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}
