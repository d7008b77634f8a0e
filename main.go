package main

import "sober-october-system/cmd/server"

func main() {
	server.Init()
	server.Run()
}
