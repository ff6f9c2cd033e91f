// @title           Yuletide API
// @version         1.0
// @description     Gift wish-list CRUD backed by SQLite.
// @host            localhost:3000
// @BasePath        /api
package main

import (
	"context"
	"os"
)

func main() {
	if err := NewRootCommand().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
