package main

import (
	"os"

	"github.com/siddhant1405/fitme/config"
	"github.com/siddhant1405/fitme/routes"
	"github.com/siddhant1405/fitme/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter()
	r.Run(":" + port)
}
