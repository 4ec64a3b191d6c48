package main

import "minivutto_backend/internal/app"

func main() {
	app.Run()
}
