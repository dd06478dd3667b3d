package main

import (
	"isti-portal-core/internal/app"

	"go.uber.org/fx"
)

func main() {
	fx.New(app.AppModule).Run()
}
