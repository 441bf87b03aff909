package main

import (
	"fmt"

	"github.com/venueops/cashbook/config"
	"github.com/venueops/cashbook/models"
	"github.com/venueops/cashbook/mq_client"
	"github.com/venueops/cashbook/routes"
)

func main() {
	if err := config.InitializeConfig(); err != nil {
		fmt.Println(err.Error())
		return
	}

	if err := mq_client.Connect(); err != nil {
		fmt.Println(err.Error())
		return
	}

	if err := models.Migrate(); err != nil {
		fmt.Println(err.Error())
		return
	}

	r := routes.SetupRouter()
	// running
	r.Listen(":3000")
}
