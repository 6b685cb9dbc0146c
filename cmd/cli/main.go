package main

import (
	"context"
	"log"
	"os"

	"github.com/Yvancedric/partage-recettes-optimisation/internal/buildinfo"
	"github.com/Yvancedric/partage-recettes-optimisation/internal/client/cli"
	"github.com/Yvancedric/partage-recettes-optimisation/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
