package main

import (
	"context"
	"flag"

	"github.com/dmitrijs2005/snippr/internal/client/cli"
)

func main() {

	serverURL := flag.String("a", "http://localhost:8080", "server address")
	flag.Parse()

	app := cli.NewApp(*serverURL)
	app.Run(context.Background())

}
