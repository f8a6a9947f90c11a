package main

import "farmline/internal/app"

func main() {
	app.Run()
}
