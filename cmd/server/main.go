package main

import "cbl-crm/go_backend/internal/app"

func main() {
	app.Run()
}
