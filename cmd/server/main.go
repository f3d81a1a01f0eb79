package main

import "github.com/taninigeria-aa/mda-hr/internal/app/server"

func main() {
	server.Run()
}
