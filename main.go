package main

import (
	"ClipHub/config"
	"ClipHub/internal/repo"
	"ClipHub/internal/service"
	"ClipHub/internal/storage"
	"ClipHub/router"
	"ClipHub/utils"
)

// main initializes services and starts the HTTP server.
func main() {
	config.InitConfig()
	repo.InitMysql()
	repo.InitRedis()
	storage.InitStorage()
	utils.InitAuth(utils.UserLookup{
		ByUsername: service.FindUserByUsername,
		ByID:       service.FindUserByID,
	})

	router := router.InitRouter()

	router.Run(":8000")
}
