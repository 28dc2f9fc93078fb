package main

import "github.com/vibast-solutions/ms-go-ski-station/cmd"

func main() {
	cmd.Execute()
}
