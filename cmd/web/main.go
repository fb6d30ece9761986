package main

import "agm_backend/internal/app"

func main() {
	app.Run()
}
