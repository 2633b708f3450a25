// Command schedsim-api serves the scheduling engines over HTTP: one JSON
// endpoint per discipline under /api/v1, plus /all to run the full set.
package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"schedsim/api"
	"schedsim/config"
)

func main() {
	cfg := config.Get()

	app := fiber.New()
	api.NewSchedulerHandlerImpl(cfg).Register(app)

	log.Fatalln(app.Listen(fmt.Sprintf(":%d", cfg.Port)))
}
