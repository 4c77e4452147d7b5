package main

import "fazzer/go_backend/internal/app"

func main() {
	app.Run()
}
