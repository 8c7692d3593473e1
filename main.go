package main

import "github.com/mj1618/window-getter/cmd"

func main() {
	cmd.Execute()
}
